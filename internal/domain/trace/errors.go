package trace

import "errors"

var (
	ErrNoActiveSession = errors.New("no active session to log out")
	ErrTraceNotFound   = errors.New("trace not found")
	ErrForeignSession  = errors.New("cannot close another user's session")
	ErrInvalidFilter   = errors.New("invalid trace filter")
)
