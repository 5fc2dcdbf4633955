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

type inpatientRepository struct {
	db *sqlx.DB
}

func NewInpatientRepository(db *sqlx.DB) repository.InpatientRepository {
	return &inpatientRepository{db: db}
}

func (r *inpatientRepository) List(ctx context.Context) ([]*model.Inpatient, error) {
	query := `SELECT id, name, birth_date, address, diagnosis, room_id, admission_date, discharge_date, daily_rate FROM inpatients ORDER BY admission_date`
	var inpatients []*model.Inpatient
	if err := r.db.SelectContext(ctx, &inpatients, query); err != nil {
		return nil, fmt.Errorf("failed to list inpatients: %w", err)
	}
	return inpatients, nil
}

func (r *inpatientRepository) ListActive(ctx context.Context) ([]*model.Inpatient, error) {
	query := `SELECT id, name, birth_date, address, diagnosis, room_id, admission_date, discharge_date, daily_rate FROM inpatients WHERE discharge_date IS NULL ORDER BY admission_date`
	var inpatients []*model.Inpatient
	if err := r.db.SelectContext(ctx, &inpatients, query); err != nil {
		return nil, fmt.Errorf("failed to list active inpatients: %w", err)
	}
	return inpatients, nil
}

func (r *inpatientRepository) Get(ctx context.Context, patientID string) (*model.Inpatient, error) {
	query := `SELECT id, name, birth_date, address, diagnosis, room_id, admission_date, discharge_date, daily_rate FROM inpatients WHERE id = ?`
	var inpatient model.Inpatient
	if err := r.db.GetContext(ctx, &inpatient, query, patientID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFound("inpatient", err)
		}
		return nil, fmt.Errorf("failed to get inpatient: %w", err)
	}
	return &inpatient, nil
}

func (r *inpatientRepository) Save(ctx context.Context, inpatient *model.Inpatient) error {
	query := `
		INSERT INTO inpatients (id, name, birth_date, address, diagnosis, room_id, admission_date, discharge_date, daily_rate)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			birth_date = excluded.birth_date,
			address = excluded.address,
			diagnosis = excluded.diagnosis,
			room_id = excluded.room_id,
			admission_date = excluded.admission_date,
			discharge_date = excluded.discharge_date,
			daily_rate = excluded.daily_rate
	`
	_, err := r.db.ExecContext(ctx, query,
		inpatient.ID,
		inpatient.Name,
		inpatient.BirthDate,
		inpatient.Address,
		inpatient.Diagnosis,
		inpatient.RoomID,
		inpatient.AdmissionDate,
		inpatient.DischargeDate,
		inpatient.DailyRate,
	)
	if err != nil {
		return fmt.Errorf("failed to save inpatient: %w", err)
	}
	return nil
}
