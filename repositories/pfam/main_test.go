package pfam

import (
	"strings"
	"testing"

	"github.com/JohnMCMa/maftools/models/indexes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testReference = `HGNC	refseq.ID	protein.ID	aa.length	Start	End	DomainLabel	pfam	Description
KRAS	NM_004985	NP_004976	188	5	164	Ras	PF00071	Ras family
PIK3CA	NM_006218	NP_006209	1068	322	483	PI3K_C2	PF00792	Phosphoinositide 3-kinase C2
PIK3CA	NM_006218	NP_006209	1068	797	1014	PI3_PI4_kinase	PF00454	Phosphatidylinositol 3- and 4-kinase
TP53	NM_000546	NP_000537	393	abc	200	P53	PF00870	P53 DNA-binding domain
TP53	NM_000546	NP_000537	393	300	200	P53_tetramer	PF07710	P53 tetramerisation motif
`

func TestRead(t *testing.T) {
	intervals, err := Read(strings.NewReader(testReference))
	require.Nil(t, err)

	// non-numeric and inverted coordinates are skipped
	require.Len(t, intervals, 3)
	assert.Equal(t, indexes.DomainInterval{
		Gene:        "KRAS",
		RefseqID:    "NM_004985",
		ProteinID:   "NP_004976",
		AALength:    188,
		Start:       5,
		End:         164,
		DomainLabel: "Ras",
		Pfam:        "PF00071",
		Description: "Ras family",
	}, intervals[0])
}

func TestReadLabelColumn(t *testing.T) {
	intervals, err := Read(strings.NewReader("HGNC\tStart\tEnd\tLabel\tpfam\tDescription\nKRAS\t5\t164\tRas\tPF00071\tRas family\n"))
	require.Nil(t, err)
	require.Len(t, intervals, 1)
	assert.Equal(t, "Ras", intervals[0].DomainLabel)
	assert.Empty(t, intervals[0].RefseqID)
}

func TestReadMissingColumns(t *testing.T) {
	_, err := Read(strings.NewReader("HGNC\tStart\tEnd\tpfam\tDescription\nKRAS\t5\t164\tPF00071\tRas family\n"))
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "label")

	_, err = Read(strings.NewReader("HGNC\tStart\tDomainLabel\tpfam\tDescription\nKRAS\t5\tRas\tPF00071\tRas family\n"))
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "End")
}

func TestSummarize(t *testing.T) {
	intervals, err := Read(strings.NewReader(testReference))
	require.Nil(t, err)

	assert.Equal(t, Overview{Genes: 2, Intervals: 3, Labels: 3}, Summarize(intervals))
}
