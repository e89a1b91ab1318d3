package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokenRepo struct {
	auth.RefreshTokenRepository
	cutoffs []time.Time
	deleted int64
	err     error
}

func (f *fakeTokenRepo) DeleteStaleRefreshTokens(ctx context.Context, cutoff time.Time) (int64, error) {
	f.cutoffs = append(f.cutoffs, cutoff)
	return f.deleted, f.err
}

func TestTokenJobs_CleanupUsesRetention(t *testing.T) {
	repo := &fakeTokenRepo{deleted: 3}
	jobs := NewTokenJobs(repo, 24*time.Hour)
	now := time.Date(2024, 5, 6, 12, 0, 0, 0, time.UTC)
	jobs.now = func() time.Time { return now }

	require.NoError(t, jobs.CleanupStaleRefreshTokens(context.Background()))
	require.Len(t, repo.cutoffs, 1)
	assert.Equal(t, now.Add(-24*time.Hour), repo.cutoffs[0])

	repo.err = errors.New("db down")
	assert.ErrorIs(t, jobs.CleanupStaleRefreshTokens(context.Background()), repo.err)
}

func TestScheduler_RunOnce(t *testing.T) {
	repo := &fakeTokenRepo{}
	s := NewScheduler()
	NewTokenJobs(repo, time.Hour).RegisterJobs(s, time.Minute)

	var failing atomic.Int32
	s.AddJob("failing", time.Minute, func(ctx context.Context) error {
		failing.Add(1)
		return errors.New("boom")
	})

	s.RunOnce(context.Background())
	assert.Len(t, repo.cutoffs, 1)
	assert.Equal(t, int32(1), failing.Load(), "a failing job does not stop the others")
}

func TestScheduler_StartRunsImmediatelyAndStops(t *testing.T) {
	var runs atomic.Int32
	started := make(chan struct{}, 1)

	s := NewScheduler()
	s.AddJob("counter", time.Hour, func(ctx context.Context) error {
		if runs.Add(1) == 1 {
			started <- struct{}{}
		}
		return nil
	})

	s.Start(context.Background())
	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}
	s.Stop()
	assert.Equal(t, int32(1), runs.Load())
}
