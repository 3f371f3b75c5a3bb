package job

import (
	"context"
	"time"

	"go.uber.org/zap"

	"user-status-service/internal/metrics"
)

// ExpiredStatusClearer deletes statuses whose clearAt has passed
type ExpiredStatusClearer interface {
	ClearExpired(ctx context.Context) (int64, error)
}

// ExpiredStatusCleanupJob removes expired statuses. It implements cron.Job.
type ExpiredStatusCleanupJob struct {
	clearer ExpiredStatusClearer
	metrics *metrics.Metrics
	logger  *zap.Logger
	timeout time.Duration
}

// NewExpiredStatusCleanupJob creates a new ExpiredStatusCleanupJob instance
func NewExpiredStatusCleanupJob(clearer ExpiredStatusClearer, m *metrics.Metrics, logger *zap.Logger) *ExpiredStatusCleanupJob {
	return &ExpiredStatusCleanupJob{
		clearer: clearer,
		metrics: m,
		logger:  logger,
		timeout: 30 * time.Second,
	}
}

// Run executes one sweep
func (j *ExpiredStatusCleanupJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()
	cleared, err := j.clearer.ClearExpired(ctx)
	if err != nil {
		j.logger.Error("Failed to clear expired statuses", zap.Error(err))
		if j.metrics != nil {
			j.metrics.RecordCleanupRun(false)
		}
		return
	}

	if j.metrics != nil {
		j.metrics.RecordCleanupRun(true)
	}

	if cleared == 0 {
		j.logger.Debug("No expired statuses found")
		return
	}

	j.logger.Info("Cleared expired statuses",
		zap.Int64("count", cleared),
		zap.Duration("duration", time.Since(start)),
	)
}
