package leave

import (
	"strings"
	"time"
)

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "PENDING"
	LeaveRequestStatusApproved LeaveRequestStatus = "APPROVED"
	LeaveRequestStatusRejected LeaveRequestStatus = "REJECTED"
)

// ParseStatus accepts a status name in any letter case.
func ParseStatus(s string) (LeaveRequestStatus, error) {
	switch st := LeaveRequestStatus(strings.ToUpper(strings.TrimSpace(s))); st {
	case LeaveRequestStatusPending, LeaveRequestStatusApproved, LeaveRequestStatusRejected:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

// LeaveRequest entity. Reason and dates are fixed after creation; only Status changes.
type LeaveRequest struct {
	ID        int64
	UserID    int64
	Reason    string
	StartDate time.Time
	EndDate   time.Time
	Status    LeaveRequestStatus
	CreatedAt time.Time
	UpdatedAt time.Time

	// Join
	UserName       string
	UserEmail      string
	DepartmentName *string
}
