package sanitation

import (
	"time"

	"github.com/JohnMCMa/maftools/models"

	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog/log"
)

type (
	ExpiringStore interface {
		DeleteExpired() int
	}

	SanitationService struct {
		Initialized bool
		Runs        ExpiringStore
		Config      *models.Config
		scheduler   *gocron.Scheduler
	}
)

func NewSanitationService(runs ExpiringStore, cfg *models.Config) *SanitationService {
	ss := &SanitationService{
		Initialized: false,
		Runs:        runs,
		Config:      cfg,
	}

	ss.Init()

	return ss
}

func (ss *SanitationService) Init() {
	if ss.Initialized {
		return
	}

	interval := ss.Config.Runs.SanitationIntervalMinutes
	if interval <= 0 {
		ss.Initialized = true
		log.Info().Msg("run sanitation disabled")
		return
	}

	ss.scheduler = gocron.NewScheduler(time.UTC)
	if _, err := ss.scheduler.Every(interval).Minutes().Do(ss.Sweep); err != nil {
		log.Error().Err(err).Msg("failed to schedule run sanitation")
		return
	}
	ss.scheduler.StartAsync()

	ss.Initialized = true
	log.Info().Int("intervalMinutes", interval).Msg("sanitation service initialized")
}

// Sweep removes expired runs once.
func (ss *SanitationService) Sweep() {
	removed := ss.Runs.DeleteExpired()
	if removed > 0 {
		log.Info().Int("removed", removed).Msg("expired summary runs removed")
	}
}

func (ss *SanitationService) Stop() {
	if ss.scheduler != nil {
		ss.scheduler.Stop()
	}
}
