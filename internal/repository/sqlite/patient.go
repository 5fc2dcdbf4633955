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

type patientRepository struct {
	db *sqlx.DB
}

func NewPatientRepository(db *sqlx.DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	query := `SELECT id, name, birth_date, address, diagnosis, department_id FROM patients ORDER BY id`
	var patients []*model.Patient
	if err := r.db.SelectContext(ctx, &patients, query); err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}

	if err := r.attachAppointments(ctx, patients); err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) Get(ctx context.Context, id string) (*model.Patient, error) {
	query := `SELECT id, name, birth_date, address, diagnosis, department_id FROM patients WHERE id = ?`
	var patient model.Patient
	if err := r.db.GetContext(ctx, &patient, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFound("patient", err)
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	if err := r.attachAppointments(ctx, []*model.Patient{&patient}); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) Save(ctx context.Context, patient *model.Patient) error {
	query := `
		INSERT INTO patients (id, name, birth_date, address, diagnosis, department_id)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			birth_date = excluded.birth_date,
			address = excluded.address,
			diagnosis = excluded.diagnosis,
			department_id = excluded.department_id
	`
	_, err := r.db.ExecContext(ctx, query,
		patient.ID,
		patient.Name,
		patient.BirthDate,
		patient.Address,
		patient.Diagnosis,
		patient.DepartmentID,
	)
	if err != nil {
		return fmt.Errorf("failed to save patient: %w", err)
	}
	return nil
}

func (r *patientRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM patients WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	return nil
}

func (r *patientRepository) NextID(ctx context.Context) (string, error) {
	return nextID(ctx, r.db, seqPatient, "P")
}

// attachAppointments loads the appointments for the given patients in one
// query and distributes them by patient ID.
func (r *patientRepository) attachAppointments(ctx context.Context, patients []*model.Patient) error {
	if len(patients) == 0 {
		return nil
	}

	query := `SELECT id, doctor_id, patient_id, reason, fee, date, status FROM appointments ORDER BY date`
	var appointments []*model.Appointment
	if err := r.db.SelectContext(ctx, &appointments, query); err != nil {
		return fmt.Errorf("failed to load appointments: %w", err)
	}

	byPatient := make(map[string][]*model.Appointment, len(patients))
	for _, apt := range appointments {
		byPatient[apt.PatientID] = append(byPatient[apt.PatientID], apt)
	}
	for _, p := range patients {
		p.Appointments = byPatient[p.ID]
	}
	return nil
}
