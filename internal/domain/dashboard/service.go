package dashboard

import (
	"context"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/auth"
)

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetSummary returns the global summary for admins and the caller's own
	// summary for employees.
	GetSummary(ctx context.Context, principal auth.Principal, targetUserID int64) (Summary, error)
}
