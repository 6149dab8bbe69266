package runs

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/JohnMCMa/maftools/models"
	runsModels "github.com/JohnMCMa/maftools/models/runs"
	"github.com/JohnMCMa/maftools/models/summaries"
	"github.com/JohnMCMa/maftools/services/summary"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

type (
	Runner interface {
		Run(ctx context.Context, req summary.Request) (*summaries.Report, error)
	}

	// RunService executes summary runs in the background and keeps their
	// state for Config.Runs.TtlMinutes. All state updates go through
	// RequestChan so that a single listener owns the cache writes.
	RunService struct {
		Initialized bool
		RequestChan chan runsModels.SummaryRunRequest
		Requests    *cache.Cache
		Runner      Runner
	}
)

func NewRunService(runner Runner, cfg *models.Config) *RunService {
	ttl := cache.NoExpiration
	if cfg.Runs.TtlMinutes > 0 {
		ttl = time.Duration(cfg.Runs.TtlMinutes) * time.Minute
	}

	rs := &RunService{
		Initialized: false,
		RequestChan: make(chan runsModels.SummaryRunRequest),
		// expired runs are swept by the sanitation service, not by a janitor
		Requests: cache.New(ttl, 0),
		Runner:   runner,
	}

	rs.Init()

	return rs
}

func (rs *RunService) Init() {
	if rs.Initialized {
		return
	}

	go func() {
		for run := range rs.RequestChan {
			if run.State == runsModels.Queued {
				log.Info().Str("runId", run.Id.String()).Msg("queueing a new summary run")
			}

			run.UpdatedAt = now()
			rs.Requests.Set(run.Id.String(), run, cache.DefaultExpiration)
		}
	}()

	rs.Initialized = true
}

// Submit validates the selectors and queues a run. Invalid selectors are
// reported to the caller and nothing is queued.
func (rs *RunService) Submit(req summary.Request) (runsModels.SummaryRunRequest, error) {
	g, vc, err := summary.Validate(req)
	if err != nil {
		return runsModels.SummaryRunRequest{}, err
	}

	run := runsModels.SummaryRunRequest{
		Id: uuid.New(),
		Parameters: runsModels.Parameters{
			Granularity:        g,
			VariantClass:       vc,
			ProteinChangeField: req.ProteinChangeField,
			Top:                req.Top,
			DomainsToLabel:     req.DomainsToLabel,
			BaseName:           req.BaseName,
		},
		State:     runsModels.Queued,
		CreatedAt: now(),
	}
	rs.RequestChan <- run

	go rs.execute(run, req)

	return run, nil
}

func (rs *RunService) execute(run runsModels.SummaryRunRequest, req summary.Request) {
	run.State = runsModels.Running
	rs.RequestChan <- run

	report, err := rs.Runner.Run(context.Background(), req)
	if err != nil {
		log.Error().Err(err).Str("runId", run.Id.String()).Msg("summary run failed")
		run.State = runsModels.Error
		run.Message = err.Error()
	} else {
		run.State = runsModels.Done
		run.Message = fmt.Sprintf("%d domains summarized", len(report.Domains))
		run.Report = report
	}

	rs.RequestChan <- run
}

func (rs *RunService) Get(id string) (runsModels.SummaryRunRequest, bool) {
	item, found := rs.Requests.Get(id)
	if !found {
		return runsModels.SummaryRunRequest{}, false
	}
	return item.(runsModels.SummaryRunRequest), true
}

// List returns the known runs, oldest first.
func (rs *RunService) List() []runsModels.SummaryRunRequest {
	list := lo.MapToSlice(rs.Requests.Items(), func(_ string, item cache.Item) runsModels.SummaryRunRequest {
		return item.Object.(runsModels.SummaryRunRequest)
	})
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt < list[j].CreatedAt
	})
	return list
}

// DeleteExpired drops runs older than the configured TTL and returns how
// many were removed.
func (rs *RunService) DeleteExpired() int {
	before := rs.Requests.ItemCount()
	rs.Requests.DeleteExpired()
	return before - rs.Requests.ItemCount()
}

func now() string {
	return time.Now().UTC().Format(timestampLayout)
}
