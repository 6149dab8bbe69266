package mutationSource

import (
	"strings"

	"github.com/JohnMCMa/maftools/models/constants"
)

const (
	Unknown constants.MutationSource = "Unknown"

	Maf           constants.MutationSource = "maf"
	Elasticsearch constants.MutationSource = "elasticsearch"
)

func CastToMutationSource(text string) constants.MutationSource {
	switch strings.ToLower(text) {
	case "", "maf":
		return Maf
	case "elasticsearch", "es":
		return Elasticsearch
	default:
		return Unknown
	}
}
