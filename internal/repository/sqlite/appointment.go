package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/repository"
	apperrors "github.com/jwalitptl/hospital-api/pkg/errors"
)

type appointmentRepository struct {
	db *sqlx.DB
}

func NewAppointmentRepository(db *sqlx.DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) List(ctx context.Context) ([]*model.Appointment, error) {
	query := `SELECT id, doctor_id, patient_id, reason, fee, date, status FROM appointments ORDER BY date`
	var appointments []*model.Appointment
	if err := r.db.SelectContext(ctx, &appointments, query); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) ListByPatient(ctx context.Context, patientID string) ([]*model.Appointment, error) {
	query := `SELECT id, doctor_id, patient_id, reason, fee, date, status FROM appointments WHERE patient_id = ? ORDER BY date`
	var appointments []*model.Appointment
	if err := r.db.SelectContext(ctx, &appointments, query, patientID); err != nil {
		return nil, fmt.Errorf("failed to list appointments for patient: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) Get(ctx context.Context, id string) (*model.Appointment, error) {
	query := `SELECT id, doctor_id, patient_id, reason, fee, date, status FROM appointments WHERE id = ?`
	var appointment model.Appointment
	if err := r.db.GetContext(ctx, &appointment, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFound("appointment", err)
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &appointment, nil
}

func (r *appointmentRepository) Save(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (id, doctor_id, patient_id, reason, fee, date, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			doctor_id = excluded.doctor_id,
			patient_id = excluded.patient_id,
			reason = excluded.reason,
			fee = excluded.fee,
			date = excluded.date,
			status = excluded.status
	`
	_, err := r.db.ExecContext(ctx, query,
		appointment.ID,
		appointment.DoctorID,
		appointment.PatientID,
		appointment.Reason,
		appointment.Fee,
		appointment.Date,
		appointment.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to save appointment: %w", err)
	}
	return nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM appointments WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	return nil
}

func (r *appointmentRepository) DeleteByPatient(ctx context.Context, patientID string) error {
	query := `DELETE FROM appointments WHERE patient_id = ?`
	if _, err := r.db.ExecContext(ctx, query, patientID); err != nil {
		return fmt.Errorf("failed to delete patient appointments: %w", err)
	}
	return nil
}

func (r *appointmentRepository) NextID(ctx context.Context) (string, error) {
	return nextID(ctx, r.db, seqAppointment, "A")
}
