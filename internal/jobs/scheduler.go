// Package jobs runs the background roster sync on a cron schedule.
package jobs

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/vengeful-vineyard/backend/internal/service"
)

// Scheduler drives the periodic roster sync
type Scheduler struct {
	cron        *cron.Cron
	syncService *service.SyncService
}

// NewScheduler creates a scheduler for the given sync service
func NewScheduler(syncService *service.SyncService) *Scheduler {
	return &Scheduler{
		cron:        cron.New(),
		syncService: syncService,
	}
}

// Start registers the sync job with the given cron expression and starts the
// scheduler.
func (s *Scheduler) Start(ctx context.Context, schedule string) error {
	_, err := s.cron.AddFunc(schedule, func() {
		if err := s.syncService.SyncUsers(ctx); err != nil {
			log.Error().Err(err).Msg("Scheduled roster sync failed")
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Info().Str("schedule", schedule).Msg("Roster sync scheduled")
	return nil
}

// Stop stops the scheduler and waits for a running job to finish
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
