package cron

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const cleanupInterval = 24 * time.Hour

// LogCleaner deletes notification logs older than a retention window.
type LogCleaner interface {
	CleanupOldLogs(retentionDays int) (int64, error)
}

// StartCleanupTask prunes old notification logs on startup and then once a
// day until ctx is cancelled. The returned channel closes when it stops.
func StartCleanupTask(ctx context.Context, cleaner LogCleaner, retentionDays int, logger *zap.Logger) <-chan struct{} {
	return startCleanup(ctx, cleaner, retentionDays, cleanupInterval, logger)
}

func startCleanup(ctx context.Context, cleaner LogCleaner, retentionDays int, interval time.Duration, logger *zap.Logger) <-chan struct{} {
	done := make(chan struct{})
	logger = logger.With(zap.String("task", "notification-cleanup"), zap.Int("retention_days", retentionDays))

	go func() {
		defer close(done)
		if retentionDays <= 0 {
			logger.Info("notification log cleanup disabled")
			return
		}
		logger.Info("Starting background cleanup task")

		run := func() {
			n, err := cleaner.CleanupOldLogs(retentionDays)
			if err != nil {
				logger.Error("Failed to cleanup old notification logs", zap.Error(err))
				return
			}
			logger.Info("Notification log cleanup completed", zap.Int64("deleted", n))
		}

		// Run immediately on startup
		run()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				run()
			}
		}
	}()
	return done
}
