package scheduler

import (
	"github.com/granitdvor/monument-backend/internal/export"
	"github.com/granitdvor/monument-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

// ExportScheduler refreshes the static JSON snapshot on a cron schedule
// so the static mirror stays close to the live catalog.
type ExportScheduler struct {
	cron     *cron.Cron
	exporter *export.Exporter
	schedule string
}

func NewExportScheduler(exporter *export.Exporter, schedule string) *ExportScheduler {
	return &ExportScheduler{
		cron:     cron.New(),
		exporter: exporter,
		schedule: schedule,
	}
}

// Start registers the cron job and launches the scheduler
func (s *ExportScheduler) Start() error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		logger.Info("Starting scheduled static export", nil)

		if err := s.exporter.Run(); err != nil {
			logger.Error("Scheduled static export failed", err)
			return
		}

		logger.Info("Scheduled static export finished", nil)
	})

	if err != nil {
		logger.Error("Failed to register static export cron job", err)
		return err
	}

	s.cron.Start()
	logger.Info("Static export scheduler started", map[string]interface{}{
		"schedule": s.schedule,
	})

	return nil
}

// Stop halts the scheduler
func (s *ExportScheduler) Stop() {
	logger.Info("Stopping static export scheduler...", nil)
	s.cron.Stop()
	logger.Info("Static export scheduler stopped", nil)
}
