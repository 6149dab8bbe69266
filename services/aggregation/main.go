package aggregation

import (
	"sort"

	"github.com/JohnMCMa/maftools/models/errs"
	"github.com/JohnMCMa/maftools/models/summaries"

	"github.com/ahmetb/go-linq/v3"
	"github.com/samber/lo"
)

// ByPosition counts mutations per gene, classification and position.
func ByPosition(parsed []summaries.ParsedMutation, totals map[string]int) ([]summaries.AggregatedRecord[summaries.PositionKey], error) {
	return Aggregate(parsed, totals, func(m summaries.ParsedMutation) summaries.PositionKey {
		return summaries.PositionKey{
			Gene:           m.HugoSymbol,
			Classification: m.VariantClassification,
			Position:       m.Position,
		}
	})
}

// ByPositionAndChange counts mutations per gene, classification, protein change and position.
func ByPositionAndChange(parsed []summaries.ParsedMutation, totals map[string]int) ([]summaries.AggregatedRecord[summaries.ChangeKey], error) {
	return Aggregate(parsed, totals, func(m summaries.ParsedMutation) summaries.ChangeKey {
		return summaries.ChangeKey{
			Gene:           m.HugoSymbol,
			Classification: m.VariantClassification,
			ProteinChange:  m.ProteinChange,
			Position:       m.Position,
		}
	})
}

// Aggregate groups parsed mutations by key, joins each group to its gene
// total and sorts the result by count, descending. Ties are ordered by key.
// A gene without a positive total is a JoinIntegrityError.
func Aggregate[K summaries.Key[K]](
	parsed []summaries.ParsedMutation, totals map[string]int,
	key func(summaries.ParsedMutation) K) ([]summaries.AggregatedRecord[K], error) {

	var groups []linq.Group
	linq.From(parsed).
		GroupByT(key, func(m summaries.ParsedMutation) summaries.ParsedMutation {
			return m
		}).
		ToSlice(&groups)

	var (
		records = make([]summaries.AggregatedRecord[K], 0, len(groups))
		missing []string
	)
	for _, g := range groups {
		k := g.Key.(K)
		total, ok := totals[k.GeneSymbol()]
		if !ok || total <= 0 {
			missing = append(missing, k.GeneSymbol())
			continue
		}

		n := len(g.Group)
		records = append(records, summaries.AggregatedRecord[K]{
			Key:      k,
			N:        n,
			Total:    total,
			Fraction: float64(n) / float64(total),
		})
	}

	if len(missing) > 0 {
		genes := lo.Uniq(missing)
		sort.Strings(genes)
		return nil, &errs.JoinIntegrityError{Genes: genes}
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].N != records[j].N {
			return records[i].N > records[j].N
		}
		return records[i].Key.Compare(records[j].Key) < 0
	})

	return records, nil
}

// TotalCount sums N across records.
func TotalCount[K summaries.Key[K]](records []summaries.AggregatedRecord[K]) int {
	return lo.SumBy(records, func(r summaries.AggregatedRecord[K]) int { return r.N })
}
