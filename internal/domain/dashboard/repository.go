package dashboard

import (
	"context"
	"time"
)

// DashboardRepository counts records for the dashboard. A nil userID counts
// across all users.
type DashboardRepository interface {
	CountTracesSince(ctx context.Context, since time.Time, userID *int64) (int64, error)
	CountLeaveRequestsSince(ctx context.Context, since time.Time, userID *int64) (int64, error)
	CountPendingLeaveRequests(ctx context.Context, userID *int64) (int64, error)
	CountDepartments(ctx context.Context) (int64, error)
}
