// Package equipment implements the equipment request repository using PostgreSQL.
package equipment

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

// Repo provides equipment request persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new equipment request repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const columns = `id, employee_name, employee_email, item, justification, review_status, created_at, updated_at`

const getByIDSQL = `
SELECT ` + columns + `
FROM equipment_requests
WHERE id = $1`

const listSQL = `
SELECT ` + columns + `
FROM equipment_requests
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

const countSQL = `SELECT count(*) FROM equipment_requests`

const insertSQL = `
INSERT INTO equipment_requests (id, employee_name, employee_email, item, justification, review_status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + columns

const getReviewStatusSQL = `SELECT review_status FROM equipment_requests WHERE id = $1`

const setReviewStatusSQL = `UPDATE equipment_requests SET review_status = $2, updated_at = now() WHERE id = $1`

const deleteSQL = `DELETE FROM equipment_requests WHERE id = $1`

const hardDeleteDoneBeforeSQL = `
DELETE FROM equipment_requests
WHERE review_status = 'done' AND updated_at < $1`

// GetByID returns an equipment request by primary key.
// Returns domain.ErrNotFound if the request does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.EquipmentRequest, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	req, err := scanRequest(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, mapError(err, "equipment_request", id)
	}

	return req, nil
}

// List returns equipment requests ordered by created_at DESC with pagination.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]*domain.EquipmentRequest, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var totalCount int
	if err := querier.QueryRow(ctx, countSQL).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("count equipment_requests: %w", err)
	}

	rows, err := querier.Query(ctx, listSQL, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list equipment_requests: %w", err)
	}
	defer rows.Close()

	requests, err := scanRequests(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list equipment_requests: %w", err)
	}

	return requests, totalCount, nil
}

// GetReviewStatus returns the stored review status of a request.
// NULL and legacy values map to unreviewed.
func (r *Repo) GetReviewStatus(ctx context.Context, id uuid.UUID) (domain.ReviewStatus, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var status pgtype.Text
	if err := querier.QueryRow(ctx, getReviewStatusSQL, id).Scan(&status); err != nil {
		return "", mapError(err, "equipment_request", id)
	}

	return domain.ParseReviewStatus(status.String), nil
}

// Insert stores a new equipment request and returns the persisted row.
func (r *Repo) Insert(ctx context.Context, req *domain.EquipmentRequest) (*domain.EquipmentRequest, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, insertSQL,
		req.ID,
		req.EmployeeName,
		req.EmployeeEmail,
		req.Item,
		ptrStringToPgText(req.Justification),
		req.ReviewStatus.String(),
	)

	created, err := scanRequest(row)
	if err != nil {
		return nil, mapError(err, "equipment_request", req.ID)
	}

	return created, nil
}

// Update applies a partial update built from the non-nil fields of params.
// Returns domain.ErrNotFound if the request does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.EquipmentUpdate) (*domain.EquipmentRequest, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	b := qb.Update("equipment_requests").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + columns)

	if params.Item != nil {
		b = b.Set("item", *params.Item)
	}
	if params.Justification != nil {
		if *params.Justification == "" {
			b = b.Set("justification", nil)
		} else {
			b = b.Set("justification", *params.Justification)
		}
	}

	sqlStr, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update equipment_request: %w", err)
	}

	updated, err := scanRequest(querier.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, mapError(err, "equipment_request", id)
	}

	return updated, nil
}

// SetReviewStatus writes the review status in a single UPDATE.
// Returns domain.ErrNotFound if the request does not exist.
func (r *Repo) SetReviewStatus(ctx context.Context, id uuid.UUID, status domain.ReviewStatus) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, setReviewStatusSQL, id, status.String())
	if err != nil {
		return mapError(err, "equipment_request", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("equipment_request %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Delete removes an equipment request.
// Returns domain.ErrNotFound if the request does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return mapError(err, "equipment_request", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("equipment_request %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// HardDeleteDoneBefore removes requests reviewed to done whose last update is
// older than threshold. Returns the number of deleted rows.
func (r *Repo) HardDeleteDoneBefore(ctx context.Context, threshold time.Time) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, hardDeleteDoneBeforeSQL, threshold)
	if err != nil {
		return 0, fmt.Errorf("hard delete equipment_requests: %w", err)
	}

	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequest(row rowScanner) (*domain.EquipmentRequest, error) {
	var (
		req           domain.EquipmentRequest
		justification pgtype.Text
		reviewStatus  pgtype.Text
	)

	err := row.Scan(
		&req.ID,
		&req.EmployeeName,
		&req.EmployeeEmail,
		&req.Item,
		&justification,
		&reviewStatus,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if justification.Valid {
		req.Justification = &justification.String
	}
	req.ReviewStatus = domain.ParseReviewStatus(reviewStatus.String)

	return &req, nil
}

func scanRequests(rows pgx.Rows) ([]*domain.EquipmentRequest, error) {
	result := []*domain.EquipmentRequest{}
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

// ptrStringToPgText converts a *string to pgtype.Text (nil -> NULL).
func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
