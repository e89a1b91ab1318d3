package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrInvalidStatus        = errors.New("invalid leave status")
	ErrForeignLeaveRequest  = errors.New("cannot submit a leave request for another user")
)
