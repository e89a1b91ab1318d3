package trace

import (
	"context"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/auth"
)

type TraceService interface {
	// Open starts a session for the user or returns the one already open.
	Open(ctx context.Context, userID int64) (Trace, error)
	// Logout closes the user's most recent open session and derives attendance.
	Logout(ctx context.Context, principal auth.Principal, req LogoutRequest) (LogoutResponse, error)
	List(ctx context.Context, filter TraceFilter) (TraceListResponse, error)
	Summarize(ctx context.Context, filter TraceFilter) ([]SummaryRow, error)
	Export(ctx context.Context, filter TraceFilter) (ExportFile, error)
}
