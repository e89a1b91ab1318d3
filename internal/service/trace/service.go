package trace

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/trace"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/spreadsheet"
	"github.com/cmlabs-hris/hris-attendance-go/internal/repository/postgresql"
	"github.com/google/uuid"
)

type TraceServiceImpl struct {
	trace.TraceRepository
	txManager postgresql.TxManager
	location  *time.Location
	now       func() time.Time
}

func NewTraceService(repo trace.TraceRepository, txManager postgresql.TxManager, location *time.Location) trace.TraceService {
	return &TraceServiceImpl{
		TraceRepository: repo,
		txManager:       txManager,
		location:        location,
		now:             time.Now,
	}
}

// Open implements trace.TraceService.
func (s *TraceServiceImpl) Open(ctx context.Context, userID int64) (trace.Trace, error) {
	t, err := s.TraceRepository.Create(ctx, userID, s.now())
	if err != nil {
		return trace.Trace{}, fmt.Errorf("failed to open trace: %w", err)
	}
	return t, nil
}

// Logout implements trace.TraceService.
func (s *TraceServiceImpl) Logout(ctx context.Context, principal auth.Principal, req trace.LogoutRequest) (trace.LogoutResponse, error) {
	if req.UserID != principal.UserID && !principal.Can(user.PermissionSessionCloseAny) {
		return trace.LogoutResponse{}, trace.ErrForeignSession
	}

	var closed trace.Trace
	var derived trace.Derivation
	err := s.txManager.WithinTx(ctx, func(txCtx context.Context) error {
		open, err := s.TraceRepository.FindOpenByUser(txCtx, req.UserID)
		if err != nil {
			if errors.Is(err, trace.ErrTraceNotFound) {
				return trace.ErrNoActiveSession
			}
			return err
		}

		logoutAt := s.now()
		derived = trace.Derive(open.LoginAt, logoutAt)

		closed, err = s.TraceRepository.Close(txCtx, open.ID, logoutAt, derived.Present)
		if err != nil {
			if errors.Is(err, trace.ErrTraceNotFound) {
				return trace.ErrNoActiveSession
			}
			return err
		}
		return nil
	})
	if err != nil {
		return trace.LogoutResponse{}, err
	}

	slog.Info("Session closed",
		"trace_id", closed.ID,
		"user_id", closed.UserID,
		"duration_hours", trace.RoundHours(derived.DurationHours),
		"attendance", derived.Present,
	)

	return trace.LogoutResponse{
		TraceID:       closed.ID,
		UserID:        closed.UserID,
		LoginAt:       closed.LoginAt,
		LogoutAt:      *closed.LogoutAt,
		DurationHours: trace.RoundHours(derived.DurationHours),
		Attendance:    closed.Attendance,
	}, nil
}

// List implements trace.TraceService.
func (s *TraceServiceImpl) List(ctx context.Context, filter trace.TraceFilter) (trace.TraceListResponse, error) {
	q, page, err := filter.Parse(s.location)
	if err != nil {
		return trace.TraceListResponse{}, err
	}

	traces, total, err := s.TraceRepository.List(ctx, q)
	if err != nil {
		return trace.TraceListResponse{}, fmt.Errorf("failed to list traces: %w", err)
	}

	resp := trace.TraceListResponse{
		Traces:     make([]trace.TraceResponse, 0, len(traces)),
		Page:       page,
		Limit:      q.Limit,
		TotalItems: total,
		TotalPages: int((total + int64(q.Limit) - 1) / int64(q.Limit)),
	}
	for _, t := range traces {
		resp.Traces = append(resp.Traces, trace.NewTraceResponse(t))
	}
	return resp, nil
}

// Summarize implements trace.TraceService.
func (s *TraceServiceImpl) Summarize(ctx context.Context, filter trace.TraceFilter) ([]trace.SummaryRow, error) {
	q, _, err := filter.Parse(s.location)
	if err != nil {
		return nil, err
	}

	traces, err := s.TraceRepository.ListAll(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to load traces: %w", err)
	}
	return Summarize(traces, s.location), nil
}

// Summarize groups traces per employee and calendar day in loc. Open traces
// count as a session with zero hours.
func Summarize(traces []trace.Trace, loc *time.Location) []trace.SummaryRow {
	type key struct {
		userID int64
		date   string
	}

	rows := make(map[key]*trace.SummaryRow)
	for i := range traces {
		t := &traces[i]
		k := key{userID: t.UserID, date: t.LoginAt.In(loc).Format("2006-01-02")}

		row, ok := rows[k]
		if !ok {
			row = &trace.SummaryRow{UserID: t.UserID, Name: t.UserName, Email: t.UserEmail, Date: k.date}
			rows[k] = row
		}
		row.Sessions++
		row.TotalHours += t.Hours()
		row.Present = row.Present || t.Attendance
	}

	result := make([]trace.SummaryRow, 0, len(rows))
	for _, row := range rows {
		row.TotalHours = trace.RoundHours(row.TotalHours)
		result = append(result, *row)
	}
	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name); an != bn {
			return an < bn
		}
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.UserID < b.UserID
	})
	return result
}

// Export implements trace.TraceService.
func (s *TraceServiceImpl) Export(ctx context.Context, filter trace.TraceFilter) (trace.ExportFile, error) {
	rows, err := s.Summarize(ctx, filter)
	if err != nil {
		return trace.ExportFile{}, err
	}

	table := spreadsheet.Table{
		Sheet:   "Time Status",
		Headers: []string{"Employee", "Email", "Date", "Sessions", "Total Hours", "Present"},
		Rows:    make([][]interface{}, 0, len(rows)),
	}
	for _, r := range rows {
		present := "No"
		if r.Present {
			present = "Yes"
		}
		table.Rows = append(table.Rows, []interface{}{r.Name, r.Email, r.Date, r.Sessions, r.TotalHours, present})
	}

	content, err := spreadsheet.Render(table)
	if err != nil {
		return trace.ExportFile{}, fmt.Errorf("failed to render trace summary: %w", err)
	}

	return trace.ExportFile{
		Filename:    fmt.Sprintf("time-status-%s-%s.xlsx", s.now().In(s.location).Format("20060102"), uuid.NewString()[:8]),
		ContentType: spreadsheet.ContentType,
		Content:     content,
	}, nil
}
