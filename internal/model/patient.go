package model

import "time"

// Patient is a registered patient. Appointments are loaded alongside the
// record from the appointment store; they are not a stored column.
type Patient struct {
	Person
	Diagnosis    string         `db:"diagnosis" json:"diagnosis"`
	DepartmentID string         `db:"department_id" json:"department_id,omitempty"`
	Appointments []*Appointment `db:"-" json:"appointments,omitempty"`
}

type CreatePatientRequest struct {
	Name         string    `json:"name" binding:"required" validate:"required,personname"`
	BirthDate    time.Time `json:"birth_date" binding:"required"`
	Address      string    `json:"address" binding:"required" validate:"required"`
	Diagnosis    string    `json:"diagnosis" binding:"required" validate:"required,diagnosis"`
	DepartmentID string    `json:"department_id"`
}

// UpdatePatientRequest uses pointer fields: nil means "keep the current
// value", matching the interactive update flows.
type UpdatePatientRequest struct {
	Name         *string    `json:"name" validate:"omitempty,personname"`
	BirthDate    *time.Time `json:"birth_date"`
	Address      *string    `json:"address"`
	Diagnosis    *string    `json:"diagnosis" validate:"omitempty,diagnosis"`
	DepartmentID *string    `json:"department_id"`
}
