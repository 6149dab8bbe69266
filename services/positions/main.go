package positions

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/JohnMCMa/maftools/models/indexes"
	"github.com/JohnMCMa/maftools/models/summaries"

	"github.com/pkg/errors"
)

var (
	ErrEmptyConversion = errors.New("empty protein change")
	ErrNotANumber      = errors.New("protein change position is not a number")
)

// Parse extracts the amino-acid position from a protein change such as
// "p.V600E", "p.C229Lfs*18" or "p.R123_L125del". The returned conversion is
// the token after the last '.'.
func Parse(raw string) (conversion string, position int, err error) {
	tokens := strings.Split(raw, ".")
	conversion = strings.TrimSpace(tokens[len(tokens)-1])
	if conversion == "" {
		return "", 0, ErrEmptyConversion
	}

	// keep digits and separators only
	pos := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return -1
		}
		return r
	}, conversion)

	pos = strings.TrimSuffix(pos, "*")
	pos = strings.TrimPrefix(pos, "*")

	// frameshift-then-stop, i.e. "229fs*18"
	if i := strings.Index(pos, "*"); i >= 0 {
		pos = pos[:i]
	}

	// ranges, i.e. "123_125"
	if i := strings.Index(pos, "_"); i >= 0 {
		pos = pos[:i]
	}

	position, convErr := strconv.Atoi(pos)
	if convErr != nil || position < 0 {
		return conversion, 0, errors.Wrapf(ErrNotANumber, "%q", raw)
	}

	return conversion, position, nil
}

// ParseAll parses every record and returns the ones with a usable
// position along with the number of records that were dropped.
func ParseAll(records []indexes.MutationRecord) (parsed []summaries.ParsedMutation, failures int) {
	parsed = make([]summaries.ParsedMutation, 0, len(records))
	for _, r := range records {
		conversion, position, err := Parse(r.ProteinChange)
		if err != nil {
			failures++
			continue
		}
		parsed = append(parsed, summaries.ParsedMutation{
			MutationRecord: r,
			Conversion:     conversion,
			Position:       position,
		})
	}
	return parsed, failures
}
