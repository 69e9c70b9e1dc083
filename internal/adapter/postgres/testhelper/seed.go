package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opsdesk/opsdesk-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedVacationRequest creates a vacation request row with the given created_at
// and review status. Pass an empty status to leave the column NULL (legacy row).
// Returns a filled domain.VacationRequest.
func SeedVacationRequest(t *testing.T, pool *pgxpool.Pool, createdAt time.Time, status domain.ReviewStatus) domain.VacationRequest {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	req := domain.VacationRequest{
		ID:            uuid.New(),
		EmployeeName:  "Employee " + suffix,
		EmployeeEmail: "employee-" + suffix + "@example.com",
		StartDate:     createdAt.AddDate(0, 0, 14).Truncate(24 * time.Hour),
		EndDate:       createdAt.AddDate(0, 0, 21).Truncate(24 * time.Hour),
		ReviewStatus:  status,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}

	var statusArg *string
	if status != "" {
		s := status.String()
		statusArg = &s
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO vacation_requests (id, employee_name, employee_email, start_date, end_date, review_status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		req.ID, req.EmployeeName, req.EmployeeEmail, req.StartDate, req.EndDate, statusArg, req.CreatedAt, req.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedVacationRequest insert: %v", err)
	}

	return req
}

// SeedTravelNotice creates a travel notice row.
// Returns a filled domain.TravelNotice.
func SeedTravelNotice(t *testing.T, pool *pgxpool.Pool, createdAt time.Time, status domain.ReviewStatus) domain.TravelNotice {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	notice := domain.TravelNotice{
		ID:            uuid.New(),
		EmployeeName:  "Employee " + suffix,
		EmployeeEmail: "employee-" + suffix + "@example.com",
		Destination:   "City " + suffix,
		StartDate:     createdAt.AddDate(0, 0, 7).Truncate(24 * time.Hour),
		EndDate:       createdAt.AddDate(0, 0, 10).Truncate(24 * time.Hour),
		ReviewStatus:  status,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}

	var statusArg *string
	if status != "" {
		s := status.String()
		statusArg = &s
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO travel_notices (id, employee_name, employee_email, destination, start_date, end_date, review_status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		notice.ID, notice.EmployeeName, notice.EmployeeEmail, notice.Destination, notice.StartDate, notice.EndDate, statusArg, notice.CreatedAt, notice.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTravelNotice insert: %v", err)
	}

	return notice
}

// SeedEquipmentRequest creates an equipment request row.
// Returns a filled domain.EquipmentRequest.
func SeedEquipmentRequest(t *testing.T, pool *pgxpool.Pool, createdAt time.Time, status domain.ReviewStatus) domain.EquipmentRequest {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	req := domain.EquipmentRequest{
		ID:            uuid.New(),
		EmployeeName:  "Employee " + suffix,
		EmployeeEmail: "employee-" + suffix + "@example.com",
		Item:          "Laptop " + suffix,
		ReviewStatus:  status,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}

	var statusArg *string
	if status != "" {
		s := status.String()
		statusArg = &s
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO equipment_requests (id, employee_name, employee_email, item, review_status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		req.ID, req.EmployeeName, req.EmployeeEmail, req.Item, statusArg, req.CreatedAt, req.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEquipmentRequest insert: %v", err)
	}

	return req
}
