package constants

/*
	Defines a set of base level
	constants and enums to be used
	throughout the summary pipeline and
	its associated services.
*/
type Granularity string
type VariantClass string
type VariantType string
type MutationSource string

// candidate protein-change columns, in resolution order
var ProteinChangeFieldCandidates = []string{"HGVSp_Short", "Protein_Change", "AAChange"}

// MAF columns every mutation store has to provide
var MafRequiredColumns = []string{"Hugo_Symbol", "Variant_Type", "Variant_Classification"}

const DefaultTop = 5
