package domain

import (
	"time"

	"github.com/google/uuid"
)

// VacationRequest is a stored row of the vacation collection.
type VacationRequest struct {
	ID            uuid.UUID
	EmployeeName  string
	EmployeeEmail string
	StartDate     time.Time
	EndDate       time.Time
	Comment       *string
	ReviewStatus  ReviewStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (r *VacationRequest) RecordCollection() string { return CollectionVacation }

// TravelNotice is a stored row of the travel collection.
type TravelNotice struct {
	ID            uuid.UUID
	EmployeeName  string
	EmployeeEmail string
	Destination   string
	StartDate     time.Time
	EndDate       time.Time
	Purpose       *string
	ReviewStatus  ReviewStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (r *TravelNotice) RecordCollection() string { return CollectionTravel }

// EquipmentRequest is a stored row of the equipment collection.
type EquipmentRequest struct {
	ID            uuid.UUID
	EmployeeName  string
	EmployeeEmail string
	Item          string
	Justification *string
	ReviewStatus  ReviewStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (r *EquipmentRequest) RecordCollection() string { return CollectionEquipment }

// VacationUpdate holds partial-update parameters for a vacation request.
// Nil pointers mean "leave unchanged". For optional text fields, a pointer
// to "" clears the value (sets NULL).
type VacationUpdate struct {
	StartDate *time.Time
	EndDate   *time.Time
	Comment   *string
}

// IsEmpty reports whether no fields are set.
func (u VacationUpdate) IsEmpty() bool {
	return u.StartDate == nil && u.EndDate == nil && u.Comment == nil
}

// TravelUpdate holds partial-update parameters for a travel notice.
type TravelUpdate struct {
	Destination *string
	StartDate   *time.Time
	EndDate     *time.Time
	Purpose     *string
}

// IsEmpty reports whether no fields are set.
func (u TravelUpdate) IsEmpty() bool {
	return u.Destination == nil && u.StartDate == nil && u.EndDate == nil && u.Purpose == nil
}

// EquipmentUpdate holds partial-update parameters for an equipment request.
type EquipmentUpdate struct {
	Item          *string
	Justification *string
}

// IsEmpty reports whether no fields are set.
func (u EquipmentUpdate) IsEmpty() bool {
	return u.Item == nil && u.Justification == nil
}
