package models

import "github.com/JohnMCMa/maftools/models/constants"

// MutationQuery selects the view of a mutation store a run works on.
type MutationQuery struct {
	ProteinChangeField string
	VariantClass       constants.VariantClass
	ExcludeCopyNumber  bool
}
