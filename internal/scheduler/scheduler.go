// Package scheduler drives index rebuilds. The recommender itself only flags
// staleness; this is the dedicated trigger that acts on it.
package scheduler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Rebuilder interface {
	Rebuild(ctx context.Context) bool
	Dirty() bool
}

type RebuildScheduler struct {
	engine   Rebuilder
	interval time.Duration
	logger   *logrus.Logger
}

func New(engine Rebuilder, interval time.Duration, logger *logrus.Logger) *RebuildScheduler {
	return &RebuildScheduler{
		engine:   engine,
		interval: interval,
		logger:   logger,
	}
}

// Run fits the index once at startup, then rebuilds on every tick where the
// index is dirty. A failed rebuild leaves the dirty flag down, so it is
// retried on the next tick.
func (s *RebuildScheduler) Run(ctx context.Context) {
	s.rebuild(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Rebuild scheduler stopped")
			return
		case <-ticker.C:
			if s.engine.Dirty() {
				s.rebuild(ctx)
			}
		}
	}
}

func (s *RebuildScheduler) rebuild(ctx context.Context) {
	jobID := uuid.New()
	s.logger.WithField("job_id", jobID).Info("Starting scheduled index rebuild")

	if !s.engine.Rebuild(ctx) {
		s.logger.WithField("job_id", jobID).Warn("Scheduled index rebuild failed")
	}
}
