package trace

import "time"

// AttendanceThreshold is the minimum session length counted as present.
const AttendanceThreshold = 4 * time.Hour

// Trace is one login-to-logout interval. LogoutAt is nil while the session is open.
type Trace struct {
	ID         int64
	UserID     int64
	LoginAt    time.Time
	LogoutAt   *time.Time
	Attendance bool

	// Join
	UserName  string
	UserEmail string
}

func (t *Trace) IsOpen() bool {
	return t.LogoutAt == nil
}

// Hours is the closed session length in hours; an open session counts as zero.
func (t *Trace) Hours() float64 {
	if t.LogoutAt == nil {
		return 0
	}
	return Derive(t.LoginAt, *t.LogoutAt).DurationHours
}

// Derivation is the attendance outcome of a closed session.
type Derivation struct {
	Duration      time.Duration
	DurationHours float64
	Present       bool
}

// Derive computes the session duration and whether it meets AttendanceThreshold.
// A session of exactly four hours is present.
func Derive(loginAt, logoutAt time.Time) Derivation {
	d := logoutAt.Sub(loginAt)
	return Derivation{
		Duration:      d,
		DurationHours: d.Hours(),
		Present:       d >= AttendanceThreshold,
	}
}
