package trace

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/validator"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
	// MaxPage keeps (page-1)*limit within a Postgres integer OFFSET.
	MaxPage = math.MaxInt32 / MaxPageLimit
)

// LogoutRequest is the body of POST /logout
type LogoutRequest struct {
	UserID int64 `json:"userId"`
}

func (r *LogoutRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.UserID <= 0 {
		errs.Add("userId", "userId is required")
	}

	return errs.Err()
}

type LogoutResponse struct {
	TraceID       int64     `json:"traceId"`
	UserID        int64     `json:"userId"`
	LoginAt       time.Time `json:"loginAt"`
	LogoutAt      time.Time `json:"logoutAt"`
	DurationHours float64   `json:"durationHours"`
	Attendance    bool      `json:"attendance"`
}

// TraceFilter holds the raw query string filters of the admin trace endpoints.
type TraceFilter struct {
	Name   string
	Date   string // YYYY-MM-DD in the application time zone
	From   string
	To     string
	UserID string
	Page   string
	Limit  string
}

// Parse validates the filter and converts it to a repository Query.
func (f TraceFilter) Parse(loc *time.Location) (Query, int, error) {
	var errs validator.ValidationErrors
	q := Query{Name: strings.TrimSpace(f.Name)}

	if f.Date != "" {
		day, err := time.ParseInLocation("2006-01-02", f.Date, loc)
		if err != nil {
			errs.Add("date", "date must use YYYY-MM-DD format")
		} else {
			next := day.AddDate(0, 0, 1)
			q.From, q.To = &day, &next
		}
	}
	if f.From != "" {
		if from, ok := validator.ParseDateOrDateTime(f.From, loc); ok {
			if q.From == nil || from.After(*q.From) {
				q.From = &from
			}
		} else {
			errs.Add("from", "from must be a date or RFC3339 timestamp")
		}
	}
	if f.To != "" {
		if to, ok := validator.ParseDateOrDateTime(f.To, loc); ok {
			// a calendar date includes that whole day
			if _, isTimestamp := validator.IsValidDateTime(f.To); !isTimestamp {
				to = to.AddDate(0, 0, 1)
			}
			if q.To == nil || to.Before(*q.To) {
				q.To = &to
			}
		} else {
			errs.Add("to", "to must be a date or RFC3339 timestamp")
		}
	}
	if q.From != nil && q.To != nil && !q.From.Before(*q.To) {
		errs.Add("to", "to must be after from")
	}
	if f.UserID != "" {
		id, err := strconv.ParseInt(f.UserID, 10, 64)
		if err != nil || id <= 0 {
			errs.Add("userId", "userId must be a positive integer")
		} else {
			q.UserID = &id
		}
	}

	page := 1
	q.Limit = DefaultPageLimit
	if f.Page != "" {
		p, err := strconv.Atoi(f.Page)
		if err != nil || p < 1 || p > MaxPage {
			errs.Add("page", "page must be between 1 and "+strconv.Itoa(MaxPage))
		} else {
			page = p
		}
	}
	if f.Limit != "" {
		l, err := strconv.Atoi(f.Limit)
		if err != nil || l < 1 || l > MaxPageLimit {
			errs.Add("limit", "limit must be between 1 and "+strconv.Itoa(MaxPageLimit))
		} else {
			q.Limit = l
		}
	}
	q.Offset = (page - 1) * q.Limit

	if err := errs.Err(); err != nil {
		return Query{}, 0, fmt.Errorf("%w: %w", ErrInvalidFilter, err)
	}
	return q, page, nil
}

type TraceResponse struct {
	ID            int64      `json:"id"`
	UserID        int64      `json:"userId"`
	UserName      string     `json:"userName"`
	UserEmail     string     `json:"userEmail"`
	LoginAt       time.Time  `json:"loginAt"`
	LogoutAt      *time.Time `json:"logoutAt"`
	Attendance    bool       `json:"attendance"`
	DurationHours *float64   `json:"durationHours"`
}

func NewTraceResponse(t Trace) TraceResponse {
	resp := TraceResponse{
		ID:         t.ID,
		UserID:     t.UserID,
		UserName:   t.UserName,
		UserEmail:  t.UserEmail,
		LoginAt:    t.LoginAt,
		LogoutAt:   t.LogoutAt,
		Attendance: t.Attendance,
	}
	if !t.IsOpen() {
		h := RoundHours(t.Hours())
		resp.DurationHours = &h
	}
	return resp
}

type TraceListResponse struct {
	Traces     []TraceResponse `json:"traces"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalItems int64           `json:"total_items"`
	TotalPages int             `json:"total_pages"`
}

// SummaryRow aggregates one employee's sessions on one calendar day.
type SummaryRow struct {
	UserID     int64   `json:"userId"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Date       string  `json:"date"`
	Sessions   int     `json:"sessions"`
	TotalHours float64 `json:"totalHours"`
	Present    bool    `json:"present"`
}

// ExportFile is a generated spreadsheet ready to be streamed.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// RoundHours rounds to two decimals for presentation.
func RoundHours(h float64) float64 {
	return math.Round(h*100) / 100
}
