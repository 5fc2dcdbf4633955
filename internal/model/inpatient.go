package model

import "time"

// Inpatient is an admitted patient bound to a room. The record shares the
// patient's identifier. DischargeDate is nil while the stay is active and,
// once set, is never unset and never precedes AdmissionDate.
type Inpatient struct {
	Person
	Diagnosis     string     `db:"diagnosis" json:"diagnosis"`
	RoomID        string     `db:"room_id" json:"room_id"`
	AdmissionDate time.Time  `db:"admission_date" json:"admission_date"`
	DischargeDate *time.Time `db:"discharge_date" json:"discharge_date,omitempty"`
	DailyRate     float64    `db:"daily_rate" json:"daily_rate"`
}

// Active reports whether the stay is still open.
func (i *Inpatient) Active() bool {
	return i.DischargeDate == nil
}

type AdmitRequest struct {
	PatientID string `json:"patient_id" binding:"required"`
	RoomID    string `json:"room_id" binding:"required"`
}
