package leave

import "context"

type LeaveRequestRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id int64) (LeaveRequest, error)
	// List returns requests newest first; a nil userID lists every user's requests.
	List(ctx context.Context, userID *int64) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, id int64, status LeaveRequestStatus) (LeaveRequest, error)
}
