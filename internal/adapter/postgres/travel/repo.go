// Package travel implements the travel notice repository using PostgreSQL.
package travel

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

// Repo provides travel notice persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new travel notice repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const columns = `id, employee_name, employee_email, destination, start_date, end_date, purpose, review_status, created_at, updated_at`

const getByIDSQL = `
SELECT ` + columns + `
FROM travel_notices
WHERE id = $1`

const listSQL = `
SELECT ` + columns + `
FROM travel_notices
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

const countSQL = `SELECT count(*) FROM travel_notices`

const insertSQL = `
INSERT INTO travel_notices (id, employee_name, employee_email, destination, start_date, end_date, purpose, review_status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + columns

const getReviewStatusSQL = `SELECT review_status FROM travel_notices WHERE id = $1`

const setReviewStatusSQL = `UPDATE travel_notices SET review_status = $2, updated_at = now() WHERE id = $1`

const deleteSQL = `DELETE FROM travel_notices WHERE id = $1`

const hardDeleteDoneBeforeSQL = `
DELETE FROM travel_notices
WHERE review_status = 'done' AND updated_at < $1`

// GetByID returns a travel notice by primary key.
// Returns domain.ErrNotFound if the notice does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TravelNotice, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	notice, err := scanNotice(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, mapError(err, "travel_notice", id)
	}

	return notice, nil
}

// List returns travel notices ordered by created_at DESC with pagination.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]*domain.TravelNotice, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var totalCount int
	if err := querier.QueryRow(ctx, countSQL).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("count travel_notices: %w", err)
	}

	rows, err := querier.Query(ctx, listSQL, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list travel_notices: %w", err)
	}
	defer rows.Close()

	notices, err := scanNotices(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list travel_notices: %w", err)
	}

	return notices, totalCount, nil
}

// GetReviewStatus returns the stored review status of a notice.
// NULL and legacy values map to unreviewed.
func (r *Repo) GetReviewStatus(ctx context.Context, id uuid.UUID) (domain.ReviewStatus, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var status pgtype.Text
	if err := querier.QueryRow(ctx, getReviewStatusSQL, id).Scan(&status); err != nil {
		return "", mapError(err, "travel_notice", id)
	}

	return domain.ParseReviewStatus(status.String), nil
}

// Insert stores a new travel notice and returns the persisted row.
func (r *Repo) Insert(ctx context.Context, notice *domain.TravelNotice) (*domain.TravelNotice, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, insertSQL,
		notice.ID,
		notice.EmployeeName,
		notice.EmployeeEmail,
		notice.Destination,
		notice.StartDate,
		notice.EndDate,
		ptrStringToPgText(notice.Purpose),
		notice.ReviewStatus.String(),
	)

	created, err := scanNotice(row)
	if err != nil {
		return nil, mapError(err, "travel_notice", notice.ID)
	}

	return created, nil
}

// Update applies a partial update built from the non-nil fields of params.
// Returns domain.ErrNotFound if the notice does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.TravelUpdate) (*domain.TravelNotice, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	b := qb.Update("travel_notices").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + columns)

	if params.Destination != nil {
		b = b.Set("destination", *params.Destination)
	}
	if params.StartDate != nil {
		b = b.Set("start_date", *params.StartDate)
	}
	if params.EndDate != nil {
		b = b.Set("end_date", *params.EndDate)
	}
	if params.Purpose != nil {
		if *params.Purpose == "" {
			b = b.Set("purpose", nil)
		} else {
			b = b.Set("purpose", *params.Purpose)
		}
	}

	sqlStr, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update travel_notice: %w", err)
	}

	updated, err := scanNotice(querier.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, mapError(err, "travel_notice", id)
	}

	return updated, nil
}

// SetReviewStatus writes the review status in a single UPDATE.
// Returns domain.ErrNotFound if the notice does not exist.
func (r *Repo) SetReviewStatus(ctx context.Context, id uuid.UUID, status domain.ReviewStatus) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, setReviewStatusSQL, id, status.String())
	if err != nil {
		return mapError(err, "travel_notice", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("travel_notice %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a travel notice.
// Returns domain.ErrNotFound if the notice does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return mapError(err, "travel_notice", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("travel_notice %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// HardDeleteDoneBefore removes notices reviewed to done whose last update is
// older than threshold. Returns the number of deleted rows.
func (r *Repo) HardDeleteDoneBefore(ctx context.Context, threshold time.Time) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, hardDeleteDoneBeforeSQL, threshold)
	if err != nil {
		return 0, fmt.Errorf("hard delete travel_notices: %w", err)
	}

	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNotice(row rowScanner) (*domain.TravelNotice, error) {
	var (
		notice       domain.TravelNotice
		purpose      pgtype.Text
		reviewStatus pgtype.Text
	)

	err := row.Scan(
		&notice.ID,
		&notice.EmployeeName,
		&notice.EmployeeEmail,
		&notice.Destination,
		&notice.StartDate,
		&notice.EndDate,
		&purpose,
		&reviewStatus,
		&notice.CreatedAt,
		&notice.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if purpose.Valid {
		notice.Purpose = &purpose.String
	}
	notice.ReviewStatus = domain.ParseReviewStatus(reviewStatus.String)

	return &notice, nil
}

func scanNotices(rows pgx.Rows) ([]*domain.TravelNotice, error) {
	result := []*domain.TravelNotice{}
	for rows.Next() {
		notice, err := scanNotice(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, notice)
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
