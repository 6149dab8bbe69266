package variantType

import (
	"strings"

	"github.com/JohnMCMa/maftools/models/constants"
)

const (
	SNP constants.VariantType = "SNP"
	DNP constants.VariantType = "DNP"
	TNP constants.VariantType = "TNP"
	ONP constants.VariantType = "ONP"
	INS constants.VariantType = "INS"
	DEL constants.VariantType = "DEL"
	CNV constants.VariantType = "CNV"
)

func IsCopyNumber(text string) bool {
	return strings.EqualFold(strings.TrimSpace(text), string(CNV))
}
