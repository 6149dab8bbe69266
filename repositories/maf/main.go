package maf

import (
	"context"
	"io"
	"strings"

	"github.com/JohnMCMa/maftools/models"
	"github.com/JohnMCMa/maftools/models/constants"
	variantClass "github.com/JohnMCMa/maftools/models/constants/variant-class"
	variantType "github.com/JohnMCMa/maftools/models/constants/variant-type"
	"github.com/JohnMCMa/maftools/models/indexes"
	"github.com/JohnMCMa/maftools/utils"

	"github.com/go-gota/gota/dataframe"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// MafStore serves mutations from a tab-delimited MAF file loaded in memory.
// It is read-only once built.
type MafStore struct {
	df dataframe.DataFrame

	genes           []string
	variantTypes    []string
	classifications []string
}

func NewMafStore(path string) (*MafStore, error) {
	f, err := utils.OpenMaybeGzipped(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open MAF %s", path)
	}
	defer f.Close()

	store, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load MAF %s", path)
	}

	log.Info().Str("path", path).Int("records", store.df.Nrow()).Msg("MAF loaded")
	return store, nil
}

func Read(r io.Reader) (*MafStore, error) {
	df, err := utils.ReadTabDelimited(r)
	if err != nil {
		return nil, err
	}

	names := df.Names()
	for _, c := range constants.MafRequiredColumns {
		if !utils.StringInSlice(c, names) {
			return nil, errors.Errorf("missing column %s (found: %s)", c, strings.Join(names, ", "))
		}
	}

	return &MafStore{
		df:              df,
		genes:           df.Col("Hugo_Symbol").Records(),
		variantTypes:    df.Col("Variant_Type").Records(),
		classifications: df.Col("Variant_Classification").Records(),
	}, nil
}

func (s *MafStore) Columns(ctx context.Context) ([]string, error) {
	return s.df.Names(), nil
}

func (s *MafStore) Mutations(ctx context.Context, q models.MutationQuery) ([]indexes.MutationRecord, error) {
	if !utils.StringInSlice(q.ProteinChangeField, s.df.Names()) {
		return nil, errors.Errorf("unknown protein change column %q", q.ProteinChangeField)
	}
	changes := s.df.Col(q.ProteinChangeField).Records()

	rows := s.view(q)
	records := make([]indexes.MutationRecord, 0, len(rows))
	for _, i := range rows {
		records = append(records, indexes.MutationRecord{
			HugoSymbol:            s.genes[i],
			VariantType:           s.variantTypes[i],
			VariantClassification: s.classifications[i],
			ProteinChange:         changes[i],
		})
	}
	return records, ctx.Err()
}

// GeneTotals counts records per gene over the same view Mutations returns.
func (s *MafStore) GeneTotals(ctx context.Context, q models.MutationQuery) (map[string]int, error) {
	totals := map[string]int{}
	for _, i := range s.view(q) {
		totals[s.genes[i]]++
	}
	return totals, ctx.Err()
}

func (s *MafStore) view(q models.MutationQuery) []int {
	var rows []int
	for i := range s.genes {
		if q.ExcludeCopyNumber && variantType.IsCopyNumber(s.variantTypes[i]) {
			continue
		}
		if !variantClass.Includes(q.VariantClass, s.classifications[i]) {
			continue
		}
		rows = append(rows, i)
	}
	return rows
}

// Rows returns every MAF row as a column -> value map, for indexing.
func (s *MafStore) Rows() []map[string]interface{} {
	return s.df.Maps()
}
