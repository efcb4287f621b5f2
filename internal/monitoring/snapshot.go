package monitoring

import (
	"fmt"

	"github.com/ndelacroix/chatline-be/internal/services"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// StatsSnapshotter periodically records aggregate user counts as an event
// and logs them, on a cron schedule.
type StatsSnapshotter struct {
	presenceSvc services.PresenceServiceProvider
	eventSvc    services.EventServiceProvider
	schedule    string
	cron        *cron.Cron
}

// NewStatsSnapshotter creates a new StatsSnapshotter.
func NewStatsSnapshotter(presenceSvc services.PresenceServiceProvider, eventSvc services.EventServiceProvider, schedule string) *StatsSnapshotter {
	return &StatsSnapshotter{
		presenceSvc: presenceSvc,
		eventSvc:    eventSvc,
		schedule:    schedule,
		cron:        cron.New(),
	}
}

// Run registers the snapshot job and starts the scheduler.
func (s *StatsSnapshotter) Run() error {
	if _, err := s.cron.AddFunc(s.schedule, s.snapshot); err != nil {
		return fmt.Errorf("invalid snapshot schedule %q: %w", s.schedule, err)
	}
	log.Info().Str("schedule", s.schedule).Msg("Starting stats snapshotter...")
	s.cron.Start()
	return nil
}

// Stop halts the scheduler, waiting for a running snapshot to finish.
func (s *StatsSnapshotter) Stop() {
	log.Info().Msg("Stopping stats snapshotter.")
	<-s.cron.Stop().Done()
}

func (s *StatsSnapshotter) snapshot() {
	stats, err := s.presenceSvc.GetStats()
	if err != nil {
		log.Error().Err(err).Msg("Snapshotter: failed to compute stats")
		return
	}

	log.Info().Int("total", stats.Total).Int("online", stats.Online).Msg("Stats snapshot")

	msg := fmt.Sprintf("%d users registered, %d online", stats.Total, stats.Online)
	if err := s.eventSvc.CreateEvent("stats.snapshot", "info", msg, nil); err != nil {
		log.Error().Err(err).Msg("Snapshotter: failed to record event")
	}
}
