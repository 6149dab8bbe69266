package variantClass

import (
	"strings"

	"github.com/JohnMCMa/maftools/models/constants"
)

const (
	Undefined constants.VariantClass = ""

	NonSynonymous constants.VariantClass = "nonSynonymous"
	Synonymous    constants.VariantClass = "synonymous"
	All           constants.VariantClass = "all"
)

var Known = []constants.VariantClass{NonSynonymous, Synonymous, All}

// Variant_Classification values treated as protein altering
var NonSynonymousClassifications = []string{
	"Frame_Shift_Del",
	"Frame_Shift_Ins",
	"Splice_Site",
	"Translation_Start_Site",
	"Nonsense_Mutation",
	"Nonstop_Mutation",
	"In_Frame_Del",
	"In_Frame_Ins",
	"Missense_Mutation",
}

func CastToVariantClass(text string) constants.VariantClass {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "nonsynonymous", "nonsyn":
		return NonSynonymous
	case "synonymous", "syn":
		return Synonymous
	case "all":
		return All
	default:
		return Undefined
	}
}

func IsNonSynonymous(classification string) bool {
	for _, c := range NonSynonymousClassifications {
		if c == classification {
			return true
		}
	}
	return false
}

// Includes reports whether a record with the given classification
// belongs to the view selected by vc.
func Includes(vc constants.VariantClass, classification string) bool {
	switch vc {
	case NonSynonymous:
		return IsNonSynonymous(classification)
	case Synonymous:
		return !IsNonSynonymous(classification)
	default:
		return true
	}
}
