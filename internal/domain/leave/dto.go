package leave

import (
	"time"

	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/validator"
)

// CreateLeaveRequest is the body of POST /leave/request. Dates accept
// YYYY-MM-DD or RFC3339.
type CreateLeaveRequest struct {
	UserID    int64  `json:"userId"`
	Reason    string `json:"reason"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`

	start time.Time
	end   time.Time
}

func (r *CreateLeaveRequest) Validate(loc *time.Location) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs.Add("reason", "reason is required")
	} else if len(r.Reason) > 1000 {
		errs.Add("reason", "reason must not exceed 1000 characters")
	}

	var startOK, endOK bool
	if validator.IsEmpty(r.StartDate) {
		errs.Add("startDate", "startDate is required")
	} else if r.start, startOK = validator.ParseDateOrDateTime(r.StartDate, loc); !startOK {
		errs.Add("startDate", "startDate must be a date or RFC3339 timestamp")
	}
	if validator.IsEmpty(r.EndDate) {
		errs.Add("endDate", "endDate is required")
	} else if r.end, endOK = validator.ParseDateOrDateTime(r.EndDate, loc); !endOK {
		errs.Add("endDate", "endDate must be a date or RFC3339 timestamp")
	}
	if startOK && endOK && !r.start.Before(r.end) {
		errs.Add("endDate", "endDate must be after startDate")
	}

	if r.UserID < 0 {
		errs.Add("userId", "userId must be a positive integer")
	}

	return errs.Err()
}

// Start and End are available after a successful Validate.
func (r *CreateLeaveRequest) Start() time.Time { return r.start }
func (r *CreateLeaveRequest) End() time.Time   { return r.end }

// UpdateStatusRequest is the body of PUT /leave/update
type UpdateStatusRequest struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID <= 0 {
		errs.Add("id", "id is required")
	}
	if validator.IsEmpty(r.Status) {
		errs.Add("status", "status is required")
	} else if _, err := ParseStatus(r.Status); err != nil {
		errs.Add("status", "status must be one of: PENDING, APPROVED, REJECTED")
	}

	return errs.Err()
}

type LeaveUser struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Department *string `json:"department"`
}

type LeaveRequestResponse struct {
	ID        int64              `json:"id"`
	UserID    int64              `json:"userId"`
	Reason    string             `json:"reason"`
	StartDate time.Time          `json:"startDate"`
	EndDate   time.Time          `json:"endDate"`
	Status    LeaveRequestStatus `json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
	User      LeaveUser          `json:"user"`
}

func NewLeaveRequestResponse(l LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:        l.ID,
		UserID:    l.UserID,
		Reason:    l.Reason,
		StartDate: l.StartDate,
		EndDate:   l.EndDate,
		Status:    l.Status,
		CreatedAt: l.CreatedAt,
		User: LeaveUser{
			ID:         l.UserID,
			Name:       l.UserName,
			Email:      l.UserEmail,
			Department: l.DepartmentName,
		},
	}
}
