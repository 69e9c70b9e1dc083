package requests

import (
	"strings"
	"time"

	"github.com/opsdesk/opsdesk-backend/internal/domain"
)

// SubmitVacationInput holds the parameters for submitting a vacation request.
type SubmitVacationInput struct {
	EmployeeName  string
	EmployeeEmail string
	StartDate     time.Time
	EndDate       time.Time
	Comment       *string
}

// Validate checks all fields and collects all errors.
func (i SubmitVacationInput) Validate() error {
	errs := validateEmployee(i.EmployeeName, i.EmployeeEmail)
	errs = append(errs, validateDateRange(i.StartDate, i.EndDate)...)

	if i.Comment != nil && len(strings.TrimSpace(*i.Comment)) > 2000 {
		errs = append(errs, domain.FieldError{Field: "comment", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SubmitTravelInput holds the parameters for submitting a travel notice.
type SubmitTravelInput struct {
	EmployeeName  string
	EmployeeEmail string
	Destination   string
	StartDate     time.Time
	EndDate       time.Time
	Purpose       *string
}

// Validate checks all fields and collects all errors.
func (i SubmitTravelInput) Validate() error {
	errs := validateEmployee(i.EmployeeName, i.EmployeeEmail)
	errs = append(errs, validateDateRange(i.StartDate, i.EndDate)...)

	destination := strings.TrimSpace(i.Destination)
	if destination == "" {
		errs = append(errs, domain.FieldError{Field: "destination", Message: "required"})
	}
	if len(destination) > 200 {
		errs = append(errs, domain.FieldError{Field: "destination", Message: "max 200 characters"})
	}
	if i.Purpose != nil && len(strings.TrimSpace(*i.Purpose)) > 2000 {
		errs = append(errs, domain.FieldError{Field: "purpose", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SubmitEquipmentInput holds the parameters for submitting an equipment request.
type SubmitEquipmentInput struct {
	EmployeeName  string
	EmployeeEmail string
	Item          string
	Justification *string
}

// Validate checks all fields and collects all errors.
func (i SubmitEquipmentInput) Validate() error {
	errs := validateEmployee(i.EmployeeName, i.EmployeeEmail)

	item := strings.TrimSpace(i.Item)
	if item == "" {
		errs = append(errs, domain.FieldError{Field: "item", Message: "required"})
	}
	if len(item) > 200 {
		errs = append(errs, domain.FieldError{Field: "item", Message: "max 200 characters"})
	}
	if i.Justification != nil && len(strings.TrimSpace(*i.Justification)) > 2000 {
		errs = append(errs, domain.FieldError{Field: "justification", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateVacationInput holds partial-update parameters for a vacation request.
type UpdateVacationInput struct {
	StartDate *time.Time
	EndDate   *time.Time
	Comment   *string
}

// Validate checks all fields and collects all errors.
func (i UpdateVacationInput) Validate() error {
	var errs []domain.FieldError
	if i.StartDate == nil && i.EndDate == nil && i.Comment == nil {
		errs = append(errs, domain.FieldError{Field: "body", Message: "no fields to update"})
	}
	if i.StartDate != nil && i.EndDate != nil && i.EndDate.Before(*i.StartDate) {
		errs = append(errs, domain.FieldError{Field: "end_date", Message: "must not be before start_date"})
	}
	if i.Comment != nil && len(strings.TrimSpace(*i.Comment)) > 2000 {
		errs = append(errs, domain.FieldError{Field: "comment", Message: "max 2000 characters"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTravelInput holds partial-update parameters for a travel notice.
type UpdateTravelInput struct {
	Destination *string
	StartDate   *time.Time
	EndDate     *time.Time
	Purpose     *string
}

// Validate checks all fields and collects all errors.
func (i UpdateTravelInput) Validate() error {
	var errs []domain.FieldError
	if i.Destination == nil && i.StartDate == nil && i.EndDate == nil && i.Purpose == nil {
		errs = append(errs, domain.FieldError{Field: "body", Message: "no fields to update"})
	}
	if i.Destination != nil && strings.TrimSpace(*i.Destination) == "" {
		errs = append(errs, domain.FieldError{Field: "destination", Message: "must not be empty"})
	}
	if i.StartDate != nil && i.EndDate != nil && i.EndDate.Before(*i.StartDate) {
		errs = append(errs, domain.FieldError{Field: "end_date", Message: "must not be before start_date"})
	}
	if i.Purpose != nil && len(strings.TrimSpace(*i.Purpose)) > 2000 {
		errs = append(errs, domain.FieldError{Field: "purpose", Message: "max 2000 characters"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateEquipmentInput holds partial-update parameters for an equipment request.
type UpdateEquipmentInput struct {
	Item          *string
	Justification *string
}

// Validate checks all fields and collects all errors.
func (i UpdateEquipmentInput) Validate() error {
	var errs []domain.FieldError
	if i.Item == nil && i.Justification == nil {
		errs = append(errs, domain.FieldError{Field: "body", Message: "no fields to update"})
	}
	if i.Item != nil && strings.TrimSpace(*i.Item) == "" {
		errs = append(errs, domain.FieldError{Field: "item", Message: "must not be empty"})
	}
	if i.Justification != nil && len(strings.TrimSpace(*i.Justification)) > 2000 {
		errs = append(errs, domain.FieldError{Field: "justification", Message: "max 2000 characters"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds the parameters for listing records of one collection.
type ListInput struct {
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateEmployee(name, email string) []domain.FieldError {
	var errs []domain.FieldError

	name = strings.TrimSpace(name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "employee_name", Message: "required"})
	}
	if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "employee_name", Message: "max 200 characters"})
	}

	email = strings.TrimSpace(email)
	if email == "" {
		errs = append(errs, domain.FieldError{Field: "employee_email", Message: "required"})
	} else if !strings.Contains(email, "@") {
		errs = append(errs, domain.FieldError{Field: "employee_email", Message: "invalid email"})
	}
	if len(email) > 320 {
		errs = append(errs, domain.FieldError{Field: "employee_email", Message: "max 320 characters"})
	}

	return errs
}

func validateDateRange(start, end time.Time) []domain.FieldError {
	var errs []domain.FieldError
	if start.IsZero() {
		errs = append(errs, domain.FieldError{Field: "start_date", Message: "required"})
	}
	if end.IsZero() {
		errs = append(errs, domain.FieldError{Field: "end_date", Message: "required"})
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		errs = append(errs, domain.FieldError{Field: "end_date", Message: "must not be before start_date"})
	}
	return errs
}
