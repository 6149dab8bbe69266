package summary

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JohnMCMa/maftools/models"
	"github.com/JohnMCMa/maftools/models/constants/granularity"
	variantClass "github.com/JohnMCMa/maftools/models/constants/variant-class"
	"github.com/JohnMCMa/maftools/models/errs"
	"github.com/JohnMCMa/maftools/models/indexes"
	"github.com/JohnMCMa/maftools/models/summaries"
	"github.com/JohnMCMa/maftools/repositories/maf"
	"github.com/JohnMCMa/maftools/services/matching"
	"github.com/JohnMCMa/maftools/services/reports"

	"github.com/ahmetb/go-linq/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioMaf = `Hugo_Symbol	Variant_Type	Variant_Classification	Protein_Change	HGVSp_Short
TP53	SNP	Missense_Mutation	p.R175H	p.R175H
TP53	SNP	Missense_Mutation	p.R175H	p.R175H
TP53	SNP	Missense_Mutation	p.R248Q	p.R248Q
KRAS	SNP	Missense_Mutation	p.G12D	p.G12D
KRAS	SNP	Silent	p.G13G	p.G13G
TP53	SNP	Nonsense_Mutation	p.X	
EGFR	CNV	Amp		
`

var scenarioReference = []indexes.DomainInterval{
	{Gene: "KRAS", Start: 1, End: 50, DomainLabel: "P-loop", Pfam: "PF00071", Description: "Ras family"},
	{Gene: "TP53", Start: 300, End: 360, DomainLabel: "P53_tetramer", Pfam: "PF07710", Description: "P53 tetramerisation motif"},
}

type countingRenderer struct {
	calls int
}

func (r *countingRenderer) Render(ctx context.Context, baseName string, report *summaries.Report) error {
	r.calls++
	return nil
}

type fakeStore struct {
	columns []string
	records []indexes.MutationRecord
	totals  map[string]int
	err     error
	query   models.MutationQuery
}

func (s *fakeStore) Columns(ctx context.Context) ([]string, error) {
	return s.columns, nil
}

func (s *fakeStore) Mutations(ctx context.Context, q models.MutationQuery) ([]indexes.MutationRecord, error) {
	s.query = q
	return s.records, s.err
}

func (s *fakeStore) GeneTotals(ctx context.Context, q models.MutationQuery) (map[string]int, error) {
	return s.totals, nil
}

func newScenarioService(t *testing.T, dir string) (*SummaryService, *countingRenderer) {
	store, err := maf.Read(strings.NewReader(scenarioMaf))
	require.Nil(t, err)

	renderer := &countingRenderer{}
	return NewSummaryService(matching.NewIndex(scenarioReference), store, reports.NewTSVWriter(dir), renderer), renderer
}

func TestRunEndToEnd(t *testing.T) {
	service, renderer := newScenarioService(t, t.TempDir())

	report, err := service.Run(context.Background(), Request{})
	require.Nil(t, err)

	assert.Equal(t, granularity.ByPosition, report.Granularity)
	assert.Equal(t, variantClass.NonSynonymous, report.VariantClass)
	assert.Equal(t, "HGVSp_Short", report.Diagnostics.ProteinChangeField)
	assert.Equal(t, 5, report.Diagnostics.InputRecords)
	assert.Equal(t, 1, report.Diagnostics.ParseFailures)
	assert.Nil(t, report.ByChange)

	require.Len(t, report.ByPosition, 3)

	first := report.ByPosition[0]
	assert.Equal(t, summaries.PositionKey{Gene: "TP53", Classification: "Missense_Mutation", Position: 175}, first.Key)
	assert.Equal(t, 2, first.N)
	assert.Equal(t, 4, first.Total)
	assert.Nil(t, first.Domain)

	var kras summaries.AnnotatedRecord[summaries.PositionKey]
	linq.From(report.ByPosition).WhereT(func(r summaries.AnnotatedRecord[summaries.PositionKey]) bool {
		return r.Key.Gene == "KRAS"
	}).ForEachT(func(r summaries.AnnotatedRecord[summaries.PositionKey]) {
		kras = r
	})
	assert.Equal(t, 12, kras.Key.Position)
	require.NotNil(t, kras.Domain)
	assert.Equal(t, "P-loop", kras.Domain.DomainLabel)

	assert.Equal(t, []summaries.DomainSummaryRecord{
		{DomainLabel: "P-loop", NMuts: 1, NGenes: 1, Pfam: "PF00071", Description: "Ras family"},
	}, report.Domains)
	assert.Equal(t, []string{"P-loop"}, report.Highlighted)

	// no base name, nothing exported
	assert.Zero(t, renderer.calls)
}

func TestRunByPositionAndChange(t *testing.T) {
	service, _ := newScenarioService(t, t.TempDir())

	report, err := service.Run(context.Background(), Request{
		Granularity:        "byPositionAndChange",
		ProteinChangeField: "Protein_Change",
	})
	require.Nil(t, err)

	assert.Nil(t, report.ByPosition)
	require.Len(t, report.ByChange, 3)
	assert.Equal(t, "p.R175H", report.ByChange[0].Key.ProteinChange)
	assert.Equal(t, "Protein_Change", report.Diagnostics.ProteinChangeField)
	// "p.X" is read from Protein_Change and fails to parse
	assert.Equal(t, 1, report.Diagnostics.ParseFailures)

	header, rows := report.ProteinTable()
	assert.Equal(t, []string{"gene", "AAPos", "Variant_Classification", "AAChange", "N", "total", "fraction", "DomainLabel", "pfam", "Description"}, header)
	assert.Equal(t, []string{"TP53", "175", "Missense_Mutation", "p.R175H", "2", "4", "0.5", "NA", "NA", "NA"}, rows[0])
}

func TestRunWritesOnceAndIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	service, renderer := newScenarioService(t, dir)

	read := func() (string, string) {
		protein, err := os.ReadFile(filepath.Join(dir, "scenario_AAPos_summary.txt"))
		require.Nil(t, err)
		domain, err := os.ReadFile(filepath.Join(dir, "scenario_domainSummary.txt"))
		require.Nil(t, err)
		return string(protein), string(domain)
	}

	_, err := service.Run(context.Background(), Request{BaseName: "scenario"})
	require.Nil(t, err)
	assert.Equal(t, 1, renderer.calls)
	protein1, domain1 := read()

	_, err = service.Run(context.Background(), Request{BaseName: "scenario"})
	require.Nil(t, err)
	assert.Equal(t, 2, renderer.calls)
	protein2, domain2 := read()

	assert.Equal(t, protein1, protein2)
	assert.Equal(t, domain1, domain2)
	assert.Equal(t, "DomainLabel\tnMuts\tnGenes\tpfam\tDescription\nP-loop\t1\t1\tPF00071\tRas family\n", domain1)
	assert.True(t, strings.HasPrefix(protein1, "gene\tAAPos\tVariant_Classification\tN\ttotal\tfraction\tDomainLabel\tpfam\tDescription\n"))
	assert.Len(t, strings.Split(strings.TrimSpace(protein1), "\n"), 4)
}

func TestRunSynonymous(t *testing.T) {
	service, _ := newScenarioService(t, t.TempDir())

	report, err := service.Run(context.Background(), Request{VariantClass: "synonymous"})
	require.Nil(t, err)
	require.Len(t, report.ByPosition, 1)
	assert.Equal(t, "Silent", report.ByPosition[0].Key.Classification)
	assert.Equal(t, 1, report.ByPosition[0].Total)
	assert.Equal(t, 13, report.ByPosition[0].Key.Position)
}

func TestRunConfigurationErrors(t *testing.T) {
	service, _ := newScenarioService(t, t.TempDir())

	for _, req := range []Request{
		{Granularity: "byGene"},
		{Granularity: "byPosition,byPositionAndChange"},
		{VariantClass: "missense"},
		{VariantClass: "nonSynonymous,synonymous"},
	} {
		_, err := service.Run(context.Background(), req)
		require.NotNil(t, err)
		assert.True(t, errors.Is(err, errs.ErrConfiguration), err.Error())
		assert.True(t, errs.IsUserError(err))
	}
}

func TestRunUnknownProteinChangeField(t *testing.T) {
	service, _ := newScenarioService(t, t.TempDir())

	_, err := service.Run(context.Background(), Request{ProteinChangeField: "AAChange"})
	require.NotNil(t, err)
	assert.True(t, errors.Is(err, errs.ErrFieldResolution))
}

func TestRunPropagatesStoreErrors(t *testing.T) {
	store := &fakeStore{
		columns: []string{"Hugo_Symbol", "AAChange"},
		err:     errors.New("connection refused"),
	}
	service := NewSummaryService(matching.NewIndex(scenarioReference), store, nil, nil)

	_, err := service.Run(context.Background(), Request{})
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.False(t, errs.IsUserError(err))

	assert.Equal(t, "AAChange", store.query.ProteinChangeField)
	assert.True(t, store.query.ExcludeCopyNumber)
}

func TestRunJoinIntegrity(t *testing.T) {
	store := &fakeStore{
		columns: []string{"HGVSp_Short"},
		records: []indexes.MutationRecord{{HugoSymbol: "TP53", ProteinChange: "p.R175H"}},
		totals:  map[string]int{},
	}
	service := NewSummaryService(matching.NewIndex(scenarioReference), store, nil, nil)

	_, err := service.Run(context.Background(), Request{})
	assert.True(t, errors.Is(err, errs.ErrJoinIntegrity))
}

func TestResolveProteinChangeField(t *testing.T) {
	cases := []struct {
		requested string
		available []string
		expected  string
	}{
		{"", []string{"Hugo_Symbol", "AAChange", "Protein_Change"}, "Protein_Change"},
		{"", []string{"HGVSp_Short", "AAChange"}, "HGVSp_Short"},
		{"", []string{"AAChange"}, "AAChange"},
		{"HGVSp", []string{"HGVSp", "HGVSp_Short"}, "HGVSp"},
	}
	for _, tc := range cases {
		field, err := ResolveProteinChangeField(tc.requested, tc.available)
		assert.Nil(t, err)
		assert.Equal(t, tc.expected, field)
	}

	_, err := ResolveProteinChangeField("", []string{"Hugo_Symbol"})
	var fieldErr *errs.FieldResolutionError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, []string{"Hugo_Symbol"}, fieldErr.Available)
}

func TestValidateDefaults(t *testing.T) {
	g, vc, err := Validate(Request{})
	assert.Nil(t, err)
	assert.Equal(t, granularity.ByPosition, g)
	assert.Equal(t, variantClass.NonSynonymous, vc)

	g, vc, err = Validate(Request{Granularity: "byPositionAndChange", VariantClass: "all"})
	assert.Nil(t, err)
	assert.Equal(t, granularity.ByPositionAndChange, g)
	assert.Equal(t, variantClass.All, vc)
}
