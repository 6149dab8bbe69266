package pfam

import (
	"io"
	"strconv"
	"strings"

	"github.com/JohnMCMa/maftools/models/indexes"
	"github.com/JohnMCMa/maftools/utils"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// label column, newer tables first
var labelColumns = []string{"DomainLabel", "Label"}

var requiredColumns = []string{"HGNC", "Start", "End", "pfam", "Description"}

// Load reads a (possibly gzipped) tab-delimited domain reference table.
func Load(path string) ([]indexes.DomainInterval, error) {
	f, err := utils.OpenMaybeGzipped(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open domain reference %s", path)
	}
	defer f.Close()

	intervals, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load domain reference %s", path)
	}

	log.Info().Str("path", path).Int("intervals", len(intervals)).Msg("domain reference loaded")
	return intervals, nil
}

// Read parses a domain reference table. Rows with non-numeric or inverted
// coordinates are skipped.
func Read(r io.Reader) ([]indexes.DomainInterval, error) {
	df, err := utils.ReadTabDelimited(r)
	if err != nil {
		return nil, err
	}

	names := df.Names()
	for _, c := range requiredColumns {
		if !utils.StringInSlice(c, names) {
			return nil, errors.Errorf("missing column %s (found: %s)", c, strings.Join(names, ", "))
		}
	}

	labelColumn := ""
	for _, c := range labelColumns {
		if utils.StringInSlice(c, names) {
			labelColumn = c
			break
		}
	}
	if labelColumn == "" {
		return nil, errors.Errorf("missing domain label column, one of %s (found: %s)",
			strings.Join(labelColumns, ", "), strings.Join(names, ", "))
	}

	var (
		genes        = df.Col("HGNC").Records()
		starts       = df.Col("Start").Records()
		ends         = df.Col("End").Records()
		labels       = df.Col(labelColumn).Records()
		pfams        = df.Col("pfam").Records()
		descriptions = df.Col("Description").Records()
		refseqIds    = utils.ColumnOrEmpty(df, "refseq.ID")
		proteinIds   = utils.ColumnOrEmpty(df, "protein.ID")
		lengths      = utils.ColumnOrEmpty(df, "aa.length")

		intervals = make([]indexes.DomainInterval, 0, df.Nrow())
		skipped   int
	)

	for i := 0; i < df.Nrow(); i++ {
		start, startErr := strconv.Atoi(strings.TrimSpace(starts[i]))
		end, endErr := strconv.Atoi(strings.TrimSpace(ends[i]))
		if startErr != nil || endErr != nil || start > end || genes[i] == "" {
			skipped++
			continue
		}

		aaLength, _ := strconv.Atoi(strings.TrimSpace(lengths[i]))

		intervals = append(intervals, indexes.DomainInterval{
			Gene:        genes[i],
			RefseqID:    refseqIds[i],
			ProteinID:   proteinIds[i],
			AALength:    aaLength,
			Start:       start,
			End:         end,
			DomainLabel: labels[i],
			Pfam:        pfams[i],
			Description: descriptions[i],
		})
	}

	if skipped > 0 {
		log.Warn().Int("skipped", skipped).Msg("skipped domain reference rows with invalid coordinates")
	}

	return intervals, nil
}

// Overview summarises a reference table for the overview endpoint.
type Overview struct {
	Genes     int `json:"genes"`
	Intervals int `json:"intervals"`
	Labels    int `json:"domainLabels"`
}

func Summarize(intervals []indexes.DomainInterval) Overview {
	genes := map[string]struct{}{}
	labels := map[string]struct{}{}
	for _, d := range intervals {
		genes[d.Gene] = struct{}{}
		labels[d.DomainLabel] = struct{}{}
	}
	return Overview{
		Genes:     len(genes),
		Intervals: len(intervals),
		Labels:    len(labels),
	}
}
