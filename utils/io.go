package utils

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
)

// OpenMaybeGzipped opens path, transparently decompressing *.gz files.
func OpenMaybeGzipped(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(strings.ToLower(path), ".gz") {
		return f, nil
	}

	gr, err := gzip.NewReader(bufio.NewReader(f))
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "failed to open %s as gzip", path)
	}
	return &gzipFile{Reader: gr, file: f}, nil
}

type gzipFile struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipFile) Close() error {
	gzErr := g.Reader.Close()
	if err := g.file.Close(); err != nil {
		return err
	}
	return gzErr
}

// ReadTabDelimited loads a tab-delimited table with a header row into a
// dataframe. Every column is kept as a string and '#' lines are skipped.
func ReadTabDelimited(r io.Reader) (dataframe.DataFrame, error) {
	df := dataframe.ReadCSV(r,
		dataframe.WithDelimiter('\t'),
		dataframe.WithComments('#'),
		dataframe.WithLazyQuotes(true),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues([]string{}))
	if df.Err != nil {
		return df, errors.Wrap(df.Err, "failed to read tab-delimited table")
	}
	return df, nil
}

// ColumnOrEmpty returns the records of column name, or empty strings when
// the dataframe has no such column.
func ColumnOrEmpty(df dataframe.DataFrame, name string) []string {
	if !StringInSlice(name, df.Names()) {
		return make([]string, df.Nrow())
	}
	return df.Col(name).Records()
}
