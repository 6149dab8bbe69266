package granularity

import (
	"strings"

	"github.com/JohnMCMa/maftools/models/constants"
)

const (
	Undefined constants.Granularity = ""

	ByPosition          constants.Granularity = "byPosition"
	ByPositionAndChange constants.Granularity = "byPositionAndChange"
)

var All = []constants.Granularity{ByPosition, ByPositionAndChange}

func CastToGranularity(text string) constants.Granularity {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "byposition", "aapos":
		return ByPosition
	case "bypositionandchange", "aachange":
		return ByPositionAndChange
	default:
		return Undefined
	}
}

// PositionColumn is the suffix used to name per-granularity output files.
func PositionColumn(g constants.Granularity) string {
	if g == ByPositionAndChange {
		return "AAChange"
	}
	return "AAPos"
}
