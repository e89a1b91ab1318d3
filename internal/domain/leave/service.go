package leave

import (
	"context"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/auth"
)

type LeaveService interface {
	Create(ctx context.Context, principal auth.Principal, req CreateLeaveRequest) (LeaveRequestResponse, error)
	List(ctx context.Context, principal auth.Principal) ([]LeaveRequestResponse, error)
	Get(ctx context.Context, principal auth.Principal, id int64) (LeaveRequestResponse, error)
	// UpdateStatus sets any status from any status.
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (LeaveRequestResponse, error)
}
