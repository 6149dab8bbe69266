package matching

import (
	"sort"

	"github.com/JohnMCMa/maftools/models/indexes"
	"github.com/JohnMCMa/maftools/models/summaries"
)

// Index answers containment lookups over a domain reference table. The
// table is sorted once by (gene, start, end) and the first containing
// interval in that order is returned, not the narrowest one.
type Index struct {
	intervals []indexes.DomainInterval
	byGene    map[string][]int
}

// NewIndex copies and sorts the intervals; the caller's slice is left untouched.
func NewIndex(intervals []indexes.DomainInterval) *Index {
	sorted := SortIntervals(intervals)

	byGene := make(map[string][]int)
	for i, d := range sorted {
		byGene[d.Gene] = append(byGene[d.Gene], i)
	}

	return &Index{
		intervals: sorted,
		byGene:    byGene,
	}
}

// SortIntervals returns a copy of intervals ordered by gene, start, end.
func SortIntervals(intervals []indexes.DomainInterval) []indexes.DomainInterval {
	sorted := make([]indexes.DomainInterval, len(intervals))
	copy(sorted, intervals)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Gene != b.Gene {
			return a.Gene < b.Gene
		}
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return a.End < b.End
	})
	return sorted
}

// Intervals returns the sorted reference rows.
func (x *Index) Intervals() []indexes.DomainInterval {
	return x.intervals
}

// Match returns the position in Intervals() of the first interval of gene
// that contains [start, end].
func (x *Index) Match(gene string, start, end int) (int, bool) {
	candidates := x.byGene[gene]

	// intervals starting after `start` cannot contain it
	limit := sort.Search(len(candidates), func(i int) bool {
		return x.intervals[candidates[i]].Start > start
	})

	for _, i := range candidates[:limit] {
		if x.intervals[i].Contains(gene, start, end) {
			return i, true
		}
	}
	return -1, false
}

// Annotate attaches the first containing domain to each aggregated record.
// Every record is returned; unmatched ones carry a nil Domain.
func Annotate[K summaries.Key[K]](x *Index, records []summaries.AggregatedRecord[K]) (annotated []summaries.AnnotatedRecord[K], matched int) {
	annotated = make([]summaries.AnnotatedRecord[K], 0, len(records))
	for _, r := range records {
		a := summaries.AnnotatedRecord[K]{AggregatedRecord: r}

		pos := r.Key.AAPos()
		if i, ok := x.Match(r.Key.GeneSymbol(), pos, pos); ok {
			d := x.intervals[i]
			a.Domain = &summaries.DomainAnnotation{
				DomainLabel: d.DomainLabel,
				Pfam:        d.Pfam,
				Description: d.Description,
			}
			matched++
		}

		annotated = append(annotated, a)
	}
	return annotated, matched
}
