package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/auth"
)

// TokenJobs purges refresh tokens that can no longer be used
type TokenJobs struct {
	repo      auth.RefreshTokenRepository
	retention time.Duration
	now       func() time.Time
}

// NewTokenJobs keeps stale tokens for retention before deleting them.
func NewTokenJobs(repo auth.RefreshTokenRepository, retention time.Duration) *TokenJobs {
	return &TokenJobs{repo: repo, retention: retention, now: time.Now}
}

func (j *TokenJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("cleanup_stale_refresh_tokens", interval, j.CleanupStaleRefreshTokens)
}

// CleanupStaleRefreshTokens deletes tokens expired or revoked more than retention ago
func (j *TokenJobs) CleanupStaleRefreshTokens(ctx context.Context) error {
	cutoff := j.now().Add(-j.retention)
	deleted, err := j.repo.DeleteStaleRefreshTokens(ctx, cutoff)
	if err != nil {
		return err
	}
	if deleted > 0 {
		slog.Info("Stale refresh tokens deleted", "count", deleted, "cutoff", cutoff)
	}
	return nil
}
