package summary

import (
	"context"
	"strings"
	"time"

	"github.com/JohnMCMa/maftools/models"
	"github.com/JohnMCMa/maftools/models/constants"
	"github.com/JohnMCMa/maftools/models/constants/granularity"
	variantClass "github.com/JohnMCMa/maftools/models/constants/variant-class"
	"github.com/JohnMCMa/maftools/models/errs"
	"github.com/JohnMCMa/maftools/models/indexes"
	"github.com/JohnMCMa/maftools/models/summaries"
	"github.com/JohnMCMa/maftools/services/aggregation"
	"github.com/JohnMCMa/maftools/services/domains"
	"github.com/JohnMCMa/maftools/services/matching"
	"github.com/JohnMCMa/maftools/services/positions"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

type (
	MutationStore interface {
		Columns(ctx context.Context) ([]string, error)
		Mutations(ctx context.Context, q models.MutationQuery) ([]indexes.MutationRecord, error)
		GeneTotals(ctx context.Context, q models.MutationQuery) (map[string]int, error)
	}

	ReportWriter interface {
		Write(ctx context.Context, baseName string, report *summaries.Report) error
	}

	Renderer interface {
		Render(ctx context.Context, baseName string, report *summaries.Report) error
	}

	// Request carries the raw, unvalidated selectors of a run.
	Request struct {
		Granularity        string
		VariantClass       string
		ProteinChangeField string
		Top                int
		DomainsToLabel     []string
		BaseName           string
	}

	SummaryService struct {
		Index    *matching.Index
		Store    MutationStore
		Writer   ReportWriter
		Renderer Renderer
	}
)

// NewSummaryService builds a service around an already loaded reference
// index. The index is shared read-only by every run.
func NewSummaryService(index *matching.Index, store MutationStore, writer ReportWriter, renderer Renderer) *SummaryService {
	return &SummaryService{
		Index:    index,
		Store:    store,
		Writer:   writer,
		Renderer: renderer,
	}
}

func (s *SummaryService) Run(ctx context.Context, req Request) (*summaries.Report, error) {
	startTime := time.Now()

	g, vc, err := Validate(req)
	if err != nil {
		return nil, err
	}

	columns, err := s.Store.Columns(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list mutation store columns")
	}

	field, err := ResolveProteinChangeField(req.ProteinChangeField, columns)
	if err != nil {
		return nil, err
	}

	query := models.MutationQuery{
		ProteinChangeField: field,
		VariantClass:       vc,
		ExcludeCopyNumber:  true,
	}

	var (
		records []indexes.MutationRecord
		totals  map[string]int
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		records, err = s.Store.Mutations(egCtx, query)
		return errors.Wrap(err, "failed to load mutations")
	})
	eg.Go(func() (err error) {
		totals, err = s.Store.GeneTotals(egCtx, query)
		return errors.Wrap(err, "failed to load gene totals")
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	parsed, failures := positions.ParseAll(records)
	if failures > 0 {
		log.Warn().
			Int("parseFailures", failures).
			Int("inputRecords", len(records)).
			Str("field", field).
			Msg("excluded mutations without a usable amino-acid position")
	}

	report := &summaries.Report{
		Granularity:  g,
		VariantClass: vc,
		Diagnostics: summaries.Diagnostics{
			ProteinChangeField: field,
			InputRecords:       len(records),
			ParseFailures:      failures,
			ParsedRecords:      len(parsed),
		},
	}

	switch g {
	case granularity.ByPositionAndChange:
		report.ByChange, report.Domains, err = summarize(s.Index, parsed, totals, aggregation.ByPositionAndChange, &report.Diagnostics)
	default:
		report.ByPosition, report.Domains, err = summarize(s.Index, parsed, totals, aggregation.ByPosition, &report.Diagnostics)
	}
	if err != nil {
		return nil, err
	}

	report.Highlighted = domains.Highlight(report.Domains, req.Top, req.DomainsToLabel)

	log.Info().
		Str("granularity", string(g)).
		Str("variantClass", string(vc)).
		Int("groups", report.Diagnostics.Groups).
		Int("matched", report.Diagnostics.Matched).
		Int("domains", len(report.Domains)).
		Dur("duration", time.Since(startTime)).
		Msg("summary computed")

	if req.BaseName != "" {
		if err := s.export(ctx, req.BaseName, report); err != nil {
			return nil, err
		}
	}

	return report, nil
}

// export hands the report to the writer and renderer, once each.
func (s *SummaryService) export(ctx context.Context, baseName string, report *summaries.Report) error {
	if s.Writer != nil {
		if err := s.Writer.Write(ctx, baseName, report); err != nil {
			return errors.Wrapf(err, "failed to write summaries to %s", baseName)
		}
	}
	if s.Renderer != nil {
		if err := s.Renderer.Render(ctx, baseName, report); err != nil {
			return errors.Wrapf(err, "failed to render domain summary to %s", baseName)
		}
	}
	return nil
}

func summarize[K summaries.Key[K]](
	index *matching.Index,
	parsed []summaries.ParsedMutation, totals map[string]int,
	aggregate func([]summaries.ParsedMutation, map[string]int) ([]summaries.AggregatedRecord[K], error),
	diag *summaries.Diagnostics) ([]summaries.AnnotatedRecord[K], []summaries.DomainSummaryRecord, error) {

	aggregated, err := aggregate(parsed, totals)
	if err != nil {
		return nil, nil, err
	}

	annotated, matched := matching.Annotate(index, aggregated)
	rows, dropped := domains.Summarize(index.Intervals(), annotated)
	if dropped > 0 {
		log.Debug().Int("dropped", dropped).Msg("dropped incomplete domain summary rows")
	}

	diag.Groups = len(aggregated)
	diag.Matched = matched
	diag.Unmatched = len(aggregated) - matched
	diag.DroppedDomainRows = dropped

	return annotated, rows, nil
}

// Validate checks both selectors. Empty selectors fall back to
// byPosition and nonSynonymous.
func Validate(req Request) (constants.Granularity, constants.VariantClass, error) {
	g, err := ValidateGranularity(req.Granularity)
	if err != nil {
		return "", "", err
	}

	vc, err := ValidateVariantClass(req.VariantClass)
	if err != nil {
		return "", "", err
	}

	return g, vc, nil
}

func ValidateGranularity(raw string) (constants.Granularity, error) {
	return castSelector("granularity", raw, granularity.ByPosition,
		granularity.CastToGranularity, granularity.Undefined, granularity.All)
}

func ValidateVariantClass(raw string) (constants.VariantClass, error) {
	return castSelector("variantClass", raw, variantClass.NonSynonymous,
		variantClass.CastToVariantClass, variantClass.Undefined, variantClass.Known)
}

func castSelector[T ~string](field string, raw string, def T, cast func(string) T, undefined T, allowed []T) (T, error) {
	values := lo.FilterMap(strings.Split(raw, ","), func(v string, _ int) (string, bool) {
		v = strings.TrimSpace(v)
		return v, v != ""
	})

	allowedStrings := lo.Map(allowed, func(a T, _ int) string { return string(a) })

	switch len(values) {
	case 0:
		return def, nil
	case 1:
		if v := cast(values[0]); v != undefined {
			return v, nil
		}
	}

	return undefined, &errs.ConfigurationError{
		Field:   field,
		Values:  values,
		Allowed: allowedStrings,
	}
}

// ResolveProteinChangeField picks the protein change column: the requested
// one when given, otherwise the first known candidate present in available.
func ResolveProteinChangeField(requested string, available []string) (string, error) {
	if requested != "" {
		if lo.Contains(available, requested) {
			return requested, nil
		}
		return "", &errs.FieldResolutionError{
			Requested: requested,
			Available: available,
		}
	}

	for _, candidate := range constants.ProteinChangeFieldCandidates {
		if lo.Contains(available, candidate) {
			return candidate, nil
		}
	}

	return "", &errs.FieldResolutionError{
		Candidates: constants.ProteinChangeFieldCandidates,
		Available:  available,
	}
}
