package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type eventReconciler interface {
	ReconcileSweep(ctx context.Context) (int, error)
}

type Scheduler struct {
	eventService eventReconciler
	interval     time.Duration
	logger       logger.Logger
}

func New(
	eventService eventReconciler,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		eventService: eventService,
		interval:     interval,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	transitioned, err := s.eventService.ReconcileSweep(ctx)
	if err != nil {
		s.logger.Error("reconcile sweep failed",
			logger.String("error", err.Error()),
		)
		return
	}

	if transitioned > 0 {
		s.logger.Info("reconcile sweep applied transitions",
			logger.Int("transitioned", transitioned),
		)
	}
}
