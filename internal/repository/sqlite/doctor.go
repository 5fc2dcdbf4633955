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

type doctorRepository struct {
	db *sqlx.DB
}

func NewDoctorRepository(db *sqlx.DB) repository.DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) List(ctx context.Context) ([]*model.Doctor, error) {
	query := `SELECT id, name, birth_date, address, department_name, department_id, salary, specialty FROM doctors ORDER BY id`
	var doctors []*model.Doctor
	if err := r.db.SelectContext(ctx, &doctors, query); err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

func (r *doctorRepository) Get(ctx context.Context, id string) (*model.Doctor, error) {
	query := `SELECT id, name, birth_date, address, department_name, department_id, salary, specialty FROM doctors WHERE id = ?`
	var doctor model.Doctor
	if err := r.db.GetContext(ctx, &doctor, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFound("doctor", err)
		}
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	return &doctor, nil
}

func (r *doctorRepository) Save(ctx context.Context, doctor *model.Doctor) error {
	query := `
		INSERT INTO doctors (id, name, birth_date, address, department_name, department_id, salary, specialty)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			birth_date = excluded.birth_date,
			address = excluded.address,
			department_name = excluded.department_name,
			department_id = excluded.department_id,
			salary = excluded.salary,
			specialty = excluded.specialty
	`
	_, err := r.db.ExecContext(ctx, query,
		doctor.ID,
		doctor.Name,
		doctor.BirthDate,
		doctor.Address,
		doctor.DepartmentName,
		doctor.DepartmentID,
		doctor.Salary,
		doctor.Specialty,
	)
	if err != nil {
		return fmt.Errorf("failed to save doctor: %w", err)
	}
	return nil
}

func (r *doctorRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM doctors WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete doctor: %w", err)
	}
	return nil
}

func (r *doctorRepository) NextID(ctx context.Context) (string, error) {
	return nextID(ctx, r.db, seqDoctor, "D")
}
