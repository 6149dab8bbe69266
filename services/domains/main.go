package domains

import (
	"sort"

	"github.com/JohnMCMa/maftools/models/constants"
	"github.com/JohnMCMa/maftools/models/indexes"
	"github.com/JohnMCMa/maftools/models/summaries"

	"github.com/samber/lo"
)

// Summarize rolls matched records up to one row per domain label. Records
// without a domain are ignored. Descriptive columns come from the first
// reference row carrying the label. Rows missing a required field are
// dropped and counted.
func Summarize[K summaries.Key[K]](reference []indexes.DomainInterval, annotated []summaries.AnnotatedRecord[K]) (rows []summaries.DomainSummaryRecord, dropped int) {
	matched := lo.Filter(annotated, func(a summaries.AnnotatedRecord[K], _ int) bool {
		return a.Domain != nil
	})

	byLabel := lo.GroupBy(matched, func(a summaries.AnnotatedRecord[K]) string {
		return a.Domain.DomainLabel
	})

	metadata := lo.KeyBy(
		lo.UniqBy(reference, func(d indexes.DomainInterval) string { return d.DomainLabel }),
		func(d indexes.DomainInterval) string { return d.DomainLabel })

	rows = make([]summaries.DomainSummaryRecord, 0, len(byLabel))
	for label, records := range byLabel {
		row := summaries.DomainSummaryRecord{
			DomainLabel: label,
			NMuts: lo.SumBy(records, func(a summaries.AnnotatedRecord[K]) int {
				return a.N
			}),
			NGenes: len(lo.Uniq(lo.Map(records, func(a summaries.AnnotatedRecord[K], _ int) string {
				return a.Key.GeneSymbol()
			}))),
		}

		if meta, ok := metadata[label]; ok {
			row.Pfam = meta.Pfam
			row.Description = meta.Description
		}

		if !isComplete(row) {
			dropped++
			continue
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].NMuts != rows[j].NMuts {
			return rows[i].NMuts > rows[j].NMuts
		}
		return rows[i].DomainLabel < rows[j].DomainLabel
	})

	return rows, dropped
}

func isComplete(row summaries.DomainSummaryRecord) bool {
	return row.DomainLabel != "" && row.Pfam != "" && row.NMuts > 0 && row.NGenes > 0
}

// Highlight picks the domain labels to call out. An explicit list wins over
// top; its labels are kept in the given order when they match a row exactly.
// Otherwise the first top rows are taken (constants.DefaultTop when top <= 0).
func Highlight(rows []summaries.DomainSummaryRecord, top int, labels []string) []string {
	if len(labels) > 0 {
		present := lo.Associate(rows, func(r summaries.DomainSummaryRecord) (string, struct{}) {
			return r.DomainLabel, struct{}{}
		})
		return lo.Filter(lo.Uniq(labels), func(l string, _ int) bool {
			_, ok := present[l]
			return ok
		})
	}

	if top <= 0 {
		top = constants.DefaultTop
	}
	if top > len(rows) {
		top = len(rows)
	}
	return lo.Map(rows[:top], func(r summaries.DomainSummaryRecord, _ int) string {
		return r.DomainLabel
	})
}
