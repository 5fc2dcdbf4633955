package model

import "time"

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Valid reports whether s is one of the recognised appointment statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Appointment belongs to exactly one patient and references exactly one
// doctor. References are soft: no foreign key is enforced by the store.
type Appointment struct {
	ID        string            `db:"id" json:"id"`
	DoctorID  string            `db:"doctor_id" json:"doctor_id"`
	PatientID string            `db:"patient_id" json:"patient_id"`
	Reason    string            `db:"reason" json:"reason"`
	Fee       float64           `db:"fee" json:"fee"`
	Date      time.Time         `db:"date" json:"date"`
	Status    AppointmentStatus `db:"status" json:"status"`
}

type CreateAppointmentRequest struct {
	DoctorID  string    `json:"doctor_id" binding:"required"`
	PatientID string    `json:"patient_id" binding:"required"`
	Reason    string    `json:"reason" binding:"required" validate:"required"`
	Fee       float64   `json:"fee" validate:"gte=0"`
	Date      time.Time `json:"date"`
}

type UpdateAppointmentRequest struct {
	Reason *string            `json:"reason"`
	Fee    *float64           `json:"fee" validate:"omitempty,gte=0"`
	Status *AppointmentStatus `json:"status"`
}
