package maf

import (
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JohnMCMa/maftools/models"
	variantClass "github.com/JohnMCMa/maftools/models/constants/variant-class"
	"github.com/JohnMCMa/maftools/models/indexes"

	"github.com/ahmetb/go-linq/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMaf = `#version 2.4
Hugo_Symbol	Variant_Type	Variant_Classification	Tumor_Sample_Barcode	HGVSp_Short
TP53	SNP	Missense_Mutation	S1	p.R175H
TP53	SNP	Missense_Mutation	S2	p.R175H
TP53	DEL	Frame_Shift_Del	S3	p.C229Lfs*18
TP53	SNP	Silent	S4	p.R213R
KRAS	SNP	Missense_Mutation	S5	p.G12D
ERBB2	CNV	Amp	S6	
`

func readTestMaf(t *testing.T) *MafStore {
	store, err := Read(strings.NewReader(testMaf))
	require.Nil(t, err)
	return store
}

func TestColumns(t *testing.T) {
	store := readTestMaf(t)

	columns, err := store.Columns(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, []string{"Hugo_Symbol", "Variant_Type", "Variant_Classification", "Tumor_Sample_Barcode", "HGVSp_Short"}, columns)
}

func TestMutationsNonSynonymous(t *testing.T) {
	store := readTestMaf(t)
	q := models.MutationQuery{
		ProteinChangeField: "HGVSp_Short",
		VariantClass:       variantClass.NonSynonymous,
		ExcludeCopyNumber:  true,
	}

	records, err := store.Mutations(context.Background(), q)
	require.Nil(t, err)
	assert.Len(t, records, 4)

	linq.From(records).ForEachT(func(r indexes.MutationRecord) {
		assert.True(t, variantClass.IsNonSynonymous(r.VariantClassification))
		assert.NotEqual(t, "CNV", r.VariantType)
	})
	assert.Equal(t, "p.C229Lfs*18", records[2].ProteinChange)

	totals, err := store.GeneTotals(context.Background(), q)
	require.Nil(t, err)
	assert.Equal(t, map[string]int{"TP53": 3, "KRAS": 1}, totals)
}

func TestMutationsSynonymousAndAll(t *testing.T) {
	store := readTestMaf(t)

	synonymous, err := store.Mutations(context.Background(), models.MutationQuery{
		ProteinChangeField: "HGVSp_Short",
		VariantClass:       variantClass.Synonymous,
		ExcludeCopyNumber:  true,
	})
	require.Nil(t, err)
	require.Len(t, synonymous, 1)
	assert.Equal(t, "Silent", synonymous[0].VariantClassification)

	all, err := store.GeneTotals(context.Background(), models.MutationQuery{
		ProteinChangeField: "HGVSp_Short",
		VariantClass:       variantClass.All,
		ExcludeCopyNumber:  true,
	})
	require.Nil(t, err)
	assert.Equal(t, map[string]int{"TP53": 4, "KRAS": 1}, all)
}

func TestMutationsUnknownField(t *testing.T) {
	store := readTestMaf(t)
	_, err := store.Mutations(context.Background(), models.MutationQuery{ProteinChangeField: "Protein_Change"})
	assert.NotNil(t, err)
}

func TestReadMissingColumn(t *testing.T) {
	_, err := Read(strings.NewReader("Hugo_Symbol\tVariant_Type\nTP53\tSNP\n"))
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "Variant_Classification")
}

func TestNewMafStoreGzipped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.maf.gz")
	f, err := os.Create(path)
	require.Nil(t, err)
	gw := gzip.NewWriter(f)
	_, err = gw.Write([]byte(testMaf))
	require.Nil(t, err)
	require.Nil(t, gw.Close())
	require.Nil(t, f.Close())

	store, err := NewMafStore(path)
	require.Nil(t, err)
	assert.Len(t, store.Rows(), 6)
	assert.Equal(t, "TP53", store.Rows()[0]["Hugo_Symbol"])
}
