package matching

import (
	"testing"

	"github.com/JohnMCMa/maftools/models/indexes"
	"github.com/JohnMCMa/maftools/models/summaries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func interval(gene string, start, end int, label string) indexes.DomainInterval {
	return indexes.DomainInterval{
		Gene:        gene,
		Start:       start,
		End:         end,
		DomainLabel: label,
		Pfam:        "PF_" + label,
		Description: label + " domain",
	}
}

func TestMatchFirstContainingInterval(t *testing.T) {
	// narrower interval listed first; sorting puts [90,110] ahead
	x := NewIndex([]indexes.DomainInterval{
		interval("G", 95, 105, "narrow"),
		interval("G", 90, 110, "wide"),
	})

	i, ok := x.Match("G", 100, 100)
	require.True(t, ok)
	assert.Equal(t, "wide", x.Intervals()[i].DomainLabel)
}

func TestMatchBounds(t *testing.T) {
	x := NewIndex([]indexes.DomainInterval{
		interval("G", 10, 20, "a"),
		interval("G", 30, 40, "b"),
		interval("H", 10, 20, "c"),
	})

	cases := []struct {
		gene  string
		pos   int
		label string
		found bool
	}{
		{"G", 10, "a", true},
		{"G", 20, "a", true},
		{"G", 25, "", false},
		{"G", 30, "b", true},
		{"G", 41, "", false},
		{"H", 15, "c", true},
		{"X", 15, "", false},
	}

	for _, tc := range cases {
		i, ok := x.Match(tc.gene, tc.pos, tc.pos)
		assert.Equal(t, tc.found, ok, "%s:%d", tc.gene, tc.pos)
		if ok {
			assert.Equal(t, tc.label, x.Intervals()[i].DomainLabel)
		}
	}
}

func TestNewIndexLeavesInputUntouched(t *testing.T) {
	in := []indexes.DomainInterval{
		interval("B", 1, 5, "x"),
		interval("A", 1, 5, "y"),
	}
	x := NewIndex(in)

	assert.Equal(t, "B", in[0].Gene)
	assert.Equal(t, "A", x.Intervals()[0].Gene)
}

func TestAnnotate(t *testing.T) {
	x := NewIndex([]indexes.DomainInterval{
		interval("KRAS", 1, 50, "P-loop"),
	})

	records := []summaries.AggregatedRecord[summaries.PositionKey]{
		{Key: summaries.PositionKey{Gene: "TP53", Position: 175}, N: 2, Total: 3},
		{Key: summaries.PositionKey{Gene: "KRAS", Position: 12}, N: 1, Total: 1},
	}

	annotated, matched := Annotate(x, records)

	require.Len(t, annotated, 2)
	assert.Equal(t, 1, matched)
	assert.Nil(t, annotated[0].Domain)
	require.NotNil(t, annotated[1].Domain)
	assert.Equal(t, "P-loop", annotated[1].Domain.DomainLabel)
	assert.Equal(t, "PF_P-loop", annotated[1].Domain.Pfam)
	assert.Equal(t, 2, annotated[0].N)
}
