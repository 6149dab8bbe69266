package bootstrap

import (
	"os"
	"time"

	"github.com/JohnMCMa/maftools/models"
	mutationSource "github.com/JohnMCMa/maftools/models/constants/mutation-source"
	esRepo "github.com/JohnMCMa/maftools/repositories/elasticsearch"
	"github.com/JohnMCMa/maftools/repositories/maf"
	"github.com/JohnMCMa/maftools/repositories/pfam"
	"github.com/JohnMCMa/maftools/services/matching"
	"github.com/JohnMCMa/maftools/services/reports"
	"github.com/JohnMCMa/maftools/services/summary"
	"github.com/JohnMCMa/maftools/utils"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Pipeline bundles everything a summary run needs, built once at start-up.
type Pipeline struct {
	Summaries *summary.SummaryService
	Reference pfam.Overview
}

func ConfigureLogging(debug bool) {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// NewMutationStore opens the store selected by Api.MutationSource.
func NewMutationStore(cfg *models.Config) (summary.MutationStore, error) {
	switch mutationSource.CastToMutationSource(cfg.Api.MutationSource) {
	case mutationSource.Maf:
		if cfg.Api.MafPath == "" {
			return nil, errors.New("no MAF path configured")
		}
		return maf.NewMafStore(cfg.Api.MafPath)
	case mutationSource.Elasticsearch:
		es, err := utils.CreateEsConnection(cfg)
		if err != nil {
			return nil, err
		}
		return esRepo.NewMutationStore(cfg, es), nil
	default:
		return nil, errors.Errorf("unknown mutation source '%s'", cfg.Api.MutationSource)
	}
}

// NewPipeline loads the domain reference and wires the mutation store and
// both exporters into a summary service.
func NewPipeline(cfg *models.Config) (*Pipeline, error) {
	if cfg.Api.DomainReferencePath == "" {
		return nil, errors.New("no domain reference path configured")
	}

	intervals, err := pfam.Load(cfg.Api.DomainReferencePath)
	if err != nil {
		return nil, err
	}

	store, err := NewMutationStore(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open mutation store")
	}

	service := summary.NewSummaryService(
		matching.NewIndex(intervals),
		store,
		reports.NewTSVWriter(cfg.Api.OutputDirectory),
		reports.NewPlotRenderer(cfg.Api.OutputDirectory, cfg.Api.PlotWidthInches, cfg.Api.PlotHeightInches),
	)

	return &Pipeline{
		Summaries: service,
		Reference: pfam.Summarize(intervals),
	}, nil
}
