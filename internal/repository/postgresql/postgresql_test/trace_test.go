package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/trace"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-attendance-go/internal/repository/postgresql"
	traceService "github.com/cmlabs-hris/hris-attendance-go/internal/service/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceRepository_OneOpenTracePerUser(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	users := postgresql.NewUserRepository(setup.DB)
	traces := postgresql.NewTraceRepository(setup.DB)

	u := createTestUser(t, ctx, users, "Dewi", "dewi@example.com", user.RoleEmployee, nil)
	loginAt := time.Date(2024, 5, 6, 8, 0, 0, 0, time.UTC)

	first, err := traces.Create(ctx, u.ID, loginAt)
	require.NoError(t, err)
	second, err := traces.Create(ctx, u.ID, loginAt.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "a second login reuses the open trace")
	assert.True(t, second.LoginAt.Equal(loginAt))

	closed, err := traces.Close(ctx, first.ID, loginAt.Add(5*time.Hour), true)
	require.NoError(t, err)
	require.NotNil(t, closed.LogoutAt)
	assert.True(t, closed.Attendance)

	_, err = traces.Close(ctx, first.ID, loginAt.Add(6*time.Hour), false)
	assert.ErrorIs(t, err, trace.ErrTraceNotFound)

	_, err = traces.FindOpenByUser(ctx, u.ID)
	assert.ErrorIs(t, err, trace.ErrTraceNotFound)

	third, err := traces.Create(ctx, u.ID, loginAt.Add(24*time.Hour))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, third.ID)
}

func TestTraceRepository_ListFilters(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	users := postgresql.NewUserRepository(setup.DB)
	traces := postgresql.NewTraceRepository(setup.DB)

	dewi := createTestUser(t, ctx, users, "Dewi", "dewi@example.com", user.RoleEmployee, nil)
	oka := createTestUser(t, ctx, users, "Oka_1%", "oka@example.com", user.RoleEmployee, nil)
	day := time.Date(2024, 5, 6, 8, 0, 0, 0, time.UTC)

	for i, id := range []int64{dewi.ID, oka.ID} {
		tr, err := traces.Create(ctx, id, day.Add(time.Duration(i)*time.Hour))
		require.NoError(t, err)
		_, err = traces.Close(ctx, tr.ID, tr.LoginAt.Add(2*time.Hour), false)
		require.NoError(t, err)
	}
	_, err := traces.Create(ctx, dewi.ID, day.Add(24*time.Hour))
	require.NoError(t, err)

	all, total, err := traces.List(ctx, trace.Query{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, all, 3)
	assert.Equal(t, "Dewi", all[0].UserName, "newest first")

	page, total, err := traces.List(ctx, trace.Query{Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, page, 1)

	// LIKE wildcards in the name are matched literally
	byName, _, err := traces.List(ctx, trace.Query{Name: "_1%", Limit: 10})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, oka.ID, byName[0].UserID)

	from, to := day, day.Add(24*time.Hour)
	firstDay, err := traces.ListAll(ctx, trace.Query{From: &from, To: &to})
	require.NoError(t, err)
	assert.Len(t, firstDay, 2)

	open, _, err := traces.List(ctx, trace.Query{OpenOnly: true, Limit: 10})
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.True(t, open[0].IsOpen())
}

func TestTraceService_LogoutAgainstDatabase(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	users := postgresql.NewUserRepository(setup.DB)
	traces := postgresql.NewTraceRepository(setup.DB)
	svc := traceService.NewTraceService(traces, postgresql.NewTxManager(setup.DB), time.UTC)

	u := createTestUser(t, ctx, users, "Dewi", "dewi@example.com", user.RoleEmployee, nil)
	opened, err := svc.Open(ctx, u.ID)
	require.NoError(t, err)

	principal := auth.Principal{UserID: u.ID, Role: user.RoleEmployee}
	resp, err := svc.Logout(ctx, principal, trace.LogoutRequest{UserID: u.ID})
	require.NoError(t, err)
	assert.Equal(t, opened.ID, resp.TraceID)
	assert.False(t, resp.Attendance)

	_, err = svc.Logout(ctx, principal, trace.LogoutRequest{UserID: u.ID})
	assert.ErrorIs(t, err, trace.ErrNoActiveSession)
}
