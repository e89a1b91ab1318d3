package trace

import (
	"context"
	"time"
)

type TraceRepository interface {
	// FindOpenByUser returns the most recent trace with no logout for the user.
	// Inside a transaction the row is locked until commit.
	FindOpenByUser(ctx context.Context, userID int64) (Trace, error)
	Create(ctx context.Context, userID int64, loginAt time.Time) (Trace, error)
	Close(ctx context.Context, id int64, logoutAt time.Time, attendance bool) (Trace, error)
	List(ctx context.Context, filter Query) ([]Trace, int64, error)
	// ListAll returns every trace matching filter, ignoring pagination.
	ListAll(ctx context.Context, filter Query) ([]Trace, error)
}

// Query is the parsed form of TraceFilter used by repositories.
type Query struct {
	UserID   *int64
	Name     string
	From     *time.Time
	To       *time.Time
	OpenOnly bool
	Limit    int
	Offset   int
}
