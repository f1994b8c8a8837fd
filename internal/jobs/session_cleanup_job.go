package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"storefront/internal/core/ports"
)

// SessionCleanupJob removes expired sessions on a schedule. Runs every
// minute; a session's checkout is closed as part of removal, so any
// network completion still in flight for it lands on a closed instance
// and is dropped.
type SessionCleanupJob struct {
	sessions ports.SessionRepository
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionCleanupJob creates a job that reaps expired sessions.
func NewSessionCleanupJob(sessions ports.SessionRepository, logger *slog.Logger) *SessionCleanupJob {
	return &SessionCleanupJob{
		sessions: sessions,
		cron:     cron.New(),
		logger:   logger.With("component", "session_cleanup_job"),
	}
}

// Start begins the cleanup job to run every minute.
func (j *SessionCleanupJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		removed, err := j.sessions.DeleteExpired(ctx, time.Now())
		if err != nil {
			j.logger.ErrorContext(ctx, "Session cleanup job failed", "error", err)
			return
		}
		if removed > 0 {
			j.logger.InfoContext(ctx, "Expired sessions removed", "count", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session cleanup job started (running every minute)")
	return nil
}

// Stop stops the cleanup job.
func (j *SessionCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session cleanup job stopped")
}
