package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/hela-notan/internal/metrics"
)

// Scheduler runs the summary refresh and model warm-up periodically.
type Scheduler struct {
	cron   *cron.Cron
	engine *Engine
	log    *slog.Logger

	summaryEntryID cron.EntryID
	warmupEntryID  cron.EntryID
}

// NewScheduler creates a Scheduler. A zero warmupInterval disables the
// model warm-up job.
func NewScheduler(
	eng *Engine,
	summaryInterval time.Duration,
	warmupInterval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:   c,
		engine: eng,
		log:    log,
	}

	id, err := c.AddFunc("@every "+summaryInterval.String(), s.runSummaryRefresh)
	if err != nil {
		return nil, err
	}
	s.summaryEntryID = id

	if warmupInterval > 0 {
		id, err := c.AddFunc("@every "+warmupInterval.String(), s.runModelWarmup)
		if err != nil {
			return nil, err
		}
		s.warmupEntryID = id
	}

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
	s.SyncNextRunTimestamps()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// SyncNextRunTimestamps publishes the next summary run time as a gauge.
func (s *Scheduler) SyncNextRunTimestamps() {
	next := s.cron.Entry(s.summaryEntryID).Next
	if !next.IsZero() {
		metrics.SchedulerNextSummaryTimestamp.Set(float64(next.Unix()))
	}
}

func (s *Scheduler) runSummaryRefresh() {
	defer s.SyncNextRunTimestamps()

	ctx := context.Background()
	s.log.Info("scheduled summary refresh starting")
	if err := s.engine.RunSummaryRefresh(ctx); err != nil {
		s.log.Error("scheduled summary refresh failed", "error", err)
	}
}

func (s *Scheduler) runModelWarmup() {
	ctx := context.Background()
	if err := s.engine.RunModelWarmup(ctx); err != nil {
		s.log.Warn("scheduled model warm-up failed", "error", err)
	}
}
