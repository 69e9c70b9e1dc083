// Package vacation implements the vacation request repository using PostgreSQL.
// It provides typed CRUD plus the single-field review status operations the
// review workflow relies on.
package vacation

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/opsdesk/opsdesk-backend/internal/adapter/postgres"
	"github.com/opsdesk/opsdesk-backend/internal/domain"
)

// Repo provides vacation request persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new vacation request repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const columns = `id, employee_name, employee_email, start_date, end_date, comment, review_status, created_at, updated_at`

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const getByIDSQL = `
SELECT ` + columns + `
FROM vacation_requests
WHERE id = $1`

const listSQL = `
SELECT ` + columns + `
FROM vacation_requests
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

const countSQL = `SELECT count(*) FROM vacation_requests`

const insertSQL = `
INSERT INTO vacation_requests (id, employee_name, employee_email, start_date, end_date, comment, review_status)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + columns

const getReviewStatusSQL = `SELECT review_status FROM vacation_requests WHERE id = $1`

const setReviewStatusSQL = `UPDATE vacation_requests SET review_status = $2, updated_at = now() WHERE id = $1`

const deleteSQL = `DELETE FROM vacation_requests WHERE id = $1`

const hardDeleteDoneBeforeSQL = `
DELETE FROM vacation_requests
WHERE review_status = 'done' AND updated_at < $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a vacation request by primary key.
// Returns domain.ErrNotFound if the request does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.VacationRequest, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	req, err := scanRequest(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, mapError(err, "vacation_request", id)
	}

	return req, nil
}

// List returns vacation requests ordered by created_at DESC with pagination.
// Returns requests, total count, and error. The slice is empty, not nil,
// when the collection is empty.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]*domain.VacationRequest, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var totalCount int
	if err := querier.QueryRow(ctx, countSQL).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("count vacation_requests: %w", err)
	}

	rows, err := querier.Query(ctx, listSQL, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list vacation_requests: %w", err)
	}
	defer rows.Close()

	requests, err := scanRequests(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list vacation_requests: %w", err)
	}

	return requests, totalCount, nil
}

// GetReviewStatus returns the stored review status of a request.
// NULL and legacy values map to unreviewed.
// Returns domain.ErrNotFound if the request does not exist.
func (r *Repo) GetReviewStatus(ctx context.Context, id uuid.UUID) (domain.ReviewStatus, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var status pgtype.Text
	if err := querier.QueryRow(ctx, getReviewStatusSQL, id).Scan(&status); err != nil {
		return "", mapError(err, "vacation_request", id)
	}

	return domain.ParseReviewStatus(status.String), nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Insert stores a new vacation request and returns the persisted row.
func (r *Repo) Insert(ctx context.Context, req *domain.VacationRequest) (*domain.VacationRequest, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, insertSQL,
		req.ID,
		req.EmployeeName,
		req.EmployeeEmail,
		req.StartDate,
		req.EndDate,
		ptrStringToPgText(req.Comment),
		req.ReviewStatus.String(),
	)

	created, err := scanRequest(row)
	if err != nil {
		return nil, mapError(err, "vacation_request", req.ID)
	}

	return created, nil
}

// Update applies a partial update built from the non-nil fields of params
// as a single UPDATE statement, then returns the updated row.
// Returns domain.ErrNotFound if the request does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.VacationUpdate) (*domain.VacationRequest, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	b := qb.Update("vacation_requests").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + columns)

	if params.StartDate != nil {
		b = b.Set("start_date", *params.StartDate)
	}
	if params.EndDate != nil {
		b = b.Set("end_date", *params.EndDate)
	}
	if params.Comment != nil {
		// ptr("") means clear (set NULL in DB).
		if *params.Comment == "" {
			b = b.Set("comment", nil)
		} else {
			b = b.Set("comment", *params.Comment)
		}
	}

	sqlStr, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update vacation_request: %w", err)
	}

	updated, err := scanRequest(querier.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, mapError(err, "vacation_request", id)
	}

	return updated, nil
}

// SetReviewStatus writes the review status in a single UPDATE.
// Returns domain.ErrNotFound if the request does not exist.
func (r *Repo) SetReviewStatus(ctx context.Context, id uuid.UUID, status domain.ReviewStatus) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, setReviewStatusSQL, id, status.String())
	if err != nil {
		return mapError(err, "vacation_request", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("vacation_request %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a vacation request.
// Returns domain.ErrNotFound if the request does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return mapError(err, "vacation_request", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("vacation_request %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// HardDeleteDoneBefore removes requests reviewed to done whose last update is
// older than threshold. Returns the number of deleted rows.
func (r *Repo) HardDeleteDoneBefore(ctx context.Context, threshold time.Time) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, hardDeleteDoneBeforeSQL, threshold)
	if err != nil {
		return 0, fmt.Errorf("hard delete vacation_requests: %w", err)
	}

	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

// scanRequest scans a single row into a domain.VacationRequest.
func scanRequest(row rowScanner) (*domain.VacationRequest, error) {
	var (
		req          domain.VacationRequest
		comment      pgtype.Text
		reviewStatus pgtype.Text
	)

	err := row.Scan(
		&req.ID,
		&req.EmployeeName,
		&req.EmployeeEmail,
		&req.StartDate,
		&req.EndDate,
		&comment,
		&reviewStatus,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if comment.Valid {
		req.Comment = &comment.String
	}
	req.ReviewStatus = domain.ParseReviewStatus(reviewStatus.String)

	return &req, nil
}

// scanRequests scans multiple rows into a []*domain.VacationRequest.
func scanRequests(rows pgx.Rows) ([]*domain.VacationRequest, error) {
	result := []*domain.VacationRequest{}
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	// pgx.ErrNoRows -> domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, id, err)
}

// ---------------------------------------------------------------------------
// pgtype helpers
// ---------------------------------------------------------------------------

// ptrStringToPgText converts a *string to pgtype.Text (nil -> NULL).
func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
