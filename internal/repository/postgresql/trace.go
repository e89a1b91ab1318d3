package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/trace"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type traceRepositoryImpl struct {
	db *database.DB
}

func NewTraceRepository(db *database.DB) trace.TraceRepository {
	return &traceRepositoryImpl{db: db}
}

func scanTrace(row pgx.Row) (trace.Trace, error) {
	var t trace.Trace
	err := row.Scan(&t.ID, &t.UserID, &t.LoginAt, &t.LogoutAt, &t.Attendance, &t.UserName, &t.UserEmail)
	return t, err
}

// FindOpenByUser implements trace.TraceRepository.
func (r *traceRepositoryImpl) FindOpenByUser(ctx context.Context, userID int64) (trace.Trace, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.user_id, t.login_at, t.logout_at, t.attendance, u.name, u.email
		FROM traces t
		JOIN users u ON u.id = t.user_id
		WHERE t.user_id = $1 AND t.logout_at IS NULL
		ORDER BY t.login_at DESC
		LIMIT 1
		FOR UPDATE OF t
	`

	t, err := scanTrace(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return trace.Trace{}, trace.ErrTraceNotFound
		}
		return trace.Trace{}, fmt.Errorf("failed to find open trace for user %d: %w", userID, err)
	}
	return t, nil
}

// Create implements trace.TraceRepository. When the user already has an open
// trace the existing one is returned instead.
func (r *traceRepositoryImpl) Create(ctx context.Context, userID int64, loginAt time.Time) (trace.Trace, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO traces (user_id, login_at)
			VALUES ($1, $2)
			ON CONFLICT (user_id) WHERE logout_at IS NULL DO NOTHING
			RETURNING id, user_id, login_at, logout_at, attendance
		)
		SELECT i.id, i.user_id, i.login_at, i.logout_at, i.attendance, u.name, u.email
		FROM inserted i
		JOIN users u ON u.id = i.user_id
	`

	t, err := scanTrace(q.QueryRow(ctx, query, userID, loginAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return r.FindOpenByUser(ctx, userID)
		}
		return trace.Trace{}, fmt.Errorf("failed to create trace: %w", err)
	}
	return t, nil
}

// Close implements trace.TraceRepository.
func (r *traceRepositoryImpl) Close(ctx context.Context, id int64, logoutAt time.Time, attendance bool) (trace.Trace, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH updated AS (
			UPDATE traces
			SET logout_at = $2, attendance = $3
			WHERE id = $1 AND logout_at IS NULL
			RETURNING id, user_id, login_at, logout_at, attendance
		)
		SELECT p.id, p.user_id, p.login_at, p.logout_at, p.attendance, u.name, u.email
		FROM updated p
		JOIN users u ON u.id = p.user_id
	`

	t, err := scanTrace(q.QueryRow(ctx, query, id, logoutAt, attendance))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return trace.Trace{}, trace.ErrTraceNotFound
		}
		return trace.Trace{}, fmt.Errorf("failed to close trace %d: %w", id, err)
	}
	return t, nil
}

func buildTraceWhere(filter trace.Query) (string, []interface{}) {
	var (
		conds []string
		args  []interface{}
	)
	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.UserID != nil {
		add("t.user_id = $%d", *filter.UserID)
	}
	if filter.Name != "" {
		add("u.name ILIKE '%%' || $%d || '%%'", escapeLike(filter.Name))
	}
	if filter.From != nil {
		add("t.login_at >= $%d", *filter.From)
	}
	if filter.To != nil {
		add("t.login_at < $%d", *filter.To)
	}
	if filter.OpenOnly {
		conds = append(conds, "t.logout_at IS NULL")
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// List implements trace.TraceRepository.
func (r *traceRepositoryImpl) List(ctx context.Context, filter trace.Query) ([]trace.Trace, int64, error) {
	q := GetQuerier(ctx, r.db)
	where, args := buildTraceWhere(filter)

	var total int64
	countQuery := `SELECT COUNT(*) FROM traces t JOIN users u ON u.id = t.user_id` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count traces: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`
		SELECT t.id, t.user_id, t.login_at, t.logout_at, t.attendance, u.name, u.email
		FROM traces t
		JOIN users u ON u.id = t.user_id%s
		ORDER BY t.login_at DESC, t.id DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args))

	traces, err := r.query(ctx, q, query, args)
	if err != nil {
		return nil, 0, err
	}
	return traces, total, nil
}

// ListAll implements trace.TraceRepository.
func (r *traceRepositoryImpl) ListAll(ctx context.Context, filter trace.Query) ([]trace.Trace, error) {
	q := GetQuerier(ctx, r.db)
	where, args := buildTraceWhere(filter)

	query := `
		SELECT t.id, t.user_id, t.login_at, t.logout_at, t.attendance, u.name, u.email
		FROM traces t
		JOIN users u ON u.id = t.user_id` + where + `
		ORDER BY u.name ASC, t.login_at ASC`

	return r.query(ctx, q, query, args)
}

func (r *traceRepositoryImpl) query(ctx context.Context, q database.Querier, query string, args []interface{}) ([]trace.Trace, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query traces: %w", err)
	}
	defer rows.Close()

	traces := make([]trace.Trace, 0)
	for rows.Next() {
		t, err := scanTrace(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trace: %w", err)
		}
		traces = append(traces, t)
	}
	return traces, rows.Err()
}
