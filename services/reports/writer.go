package reports

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/JohnMCMa/maftools/models/constants/granularity"
	"github.com/JohnMCMa/maftools/models/summaries"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// TSVWriter writes both summary tables as tab-delimited text next to
// Directory/<baseName>.
type TSVWriter struct {
	Directory string
}

func NewTSVWriter(directory string) *TSVWriter {
	return &TSVWriter{Directory: directory}
}

func ProteinSummaryPath(directory string, baseName string, report *summaries.Report) string {
	return filepath.Join(directory, baseName+"_"+granularity.PositionColumn(report.Granularity)+"_summary.txt")
}

func DomainSummaryPath(directory string, baseName string) string {
	return filepath.Join(directory, baseName+"_domainSummary.txt")
}

func (w *TSVWriter) Write(ctx context.Context, baseName string, report *summaries.Report) error {
	if w.Directory != "" {
		if err := os.MkdirAll(w.Directory, 0755); err != nil {
			return errors.Wrapf(err, "failed to create %s", w.Directory)
		}
	}

	header, rows := report.ProteinTable()
	proteinPath := ProteinSummaryPath(w.Directory, baseName, report)
	if err := writeFile(proteinPath, header, rows); err != nil {
		return err
	}

	header, rows = report.DomainTable()
	domainPath := DomainSummaryPath(w.Directory, baseName)
	if err := writeFile(domainPath, header, rows); err != nil {
		return err
	}

	log.Info().Str("proteinSummary", proteinPath).Str("domainSummary", domainPath).Msg("summaries written")
	return ctx.Err()
}

func writeFile(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer f.Close()

	if err := WriteTable(f, header, rows); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return f.Close()
}

// WriteTable writes a header and rows as tab-delimited text.
func WriteTable(w io.Writer, header []string, rows [][]string) error {
	tw := csv.NewWriter(w)
	tw.Comma = '\t'

	if err := tw.Write(header); err != nil {
		return err
	}
	if err := tw.WriteAll(rows); err != nil {
		return err
	}
	return tw.Error()
}
