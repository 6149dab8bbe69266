package sanitation

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/JohnMCMa/maftools/models"

	"github.com/stretchr/testify/assert"
)

type countingStore struct {
	sweeps int32
}

func (s *countingStore) DeleteExpired() int {
	atomic.AddInt32(&s.sweeps, 1)
	return 2
}

func TestSweep(t *testing.T) {
	store := &countingStore{}
	var cfg models.Config

	ss := NewSanitationService(store, &cfg)
	assert.True(t, ss.Initialized)
	assert.Nil(t, ss.scheduler)

	// disabled stays disabled on repeated Init
	ss.Init()
	assert.Nil(t, ss.scheduler)

	ss.Sweep()
	assert.Equal(t, int32(1), atomic.LoadInt32(&store.sweeps))
}

func TestScheduledSweep(t *testing.T) {
	store := &countingStore{}
	var cfg models.Config
	cfg.Runs.SanitationIntervalMinutes = 15

	ss := NewSanitationService(store, &cfg)
	defer ss.Stop()
	assert.True(t, ss.Initialized)

	// gocron runs the job once when the scheduler starts
	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&store.sweeps) >= 1
	}, 2*time.Second, 10*time.Millisecond)
}
