package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// count runs query with args, appending a user filter when userID is set.
func (r *dashboardRepositoryImpl) count(ctx context.Context, query string, userID *int64, args ...interface{}) (int64, error) {
	q := GetQuerier(ctx, r.db)

	if userID != nil {
		args = append(args, *userID)
		query += fmt.Sprintf(" AND user_id = $%d", len(args))
	}

	var n int64
	if err := q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// CountTracesSince implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountTracesSince(ctx context.Context, since time.Time, userID *int64) (int64, error) {
	n, err := r.count(ctx, `SELECT COUNT(*) FROM traces WHERE login_at >= $1`, userID, since)
	if err != nil {
		return 0, fmt.Errorf("failed to count traces: %w", err)
	}
	return n, nil
}

// CountLeaveRequestsSince implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountLeaveRequestsSince(ctx context.Context, since time.Time, userID *int64) (int64, error) {
	n, err := r.count(ctx, `SELECT COUNT(*) FROM leave_requests WHERE created_at >= $1`, userID, since)
	if err != nil {
		return 0, fmt.Errorf("failed to count leave requests: %w", err)
	}
	return n, nil
}

// CountPendingLeaveRequests implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountPendingLeaveRequests(ctx context.Context, userID *int64) (int64, error) {
	n, err := r.count(ctx, `SELECT COUNT(*) FROM leave_requests WHERE status = 'PENDING'`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending leave requests: %w", err)
	}
	return n, nil
}

// CountDepartments implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountDepartments(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var n int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM departments`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count departments: %w", err)
	}
	return n, nil
}
