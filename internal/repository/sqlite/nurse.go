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

type nurseRepository struct {
	db *sqlx.DB
}

func NewNurseRepository(db *sqlx.DB) repository.NurseRepository {
	return &nurseRepository{db: db}
}

func (r *nurseRepository) List(ctx context.Context) ([]*model.Nurse, error) {
	query := `SELECT id, name, birth_date, address, department_name, department_id, salary, shift_hours FROM nurses ORDER BY id`
	var nurses []*model.Nurse
	if err := r.db.SelectContext(ctx, &nurses, query); err != nil {
		return nil, fmt.Errorf("failed to list nurses: %w", err)
	}
	return nurses, nil
}

func (r *nurseRepository) Get(ctx context.Context, id string) (*model.Nurse, error) {
	query := `SELECT id, name, birth_date, address, department_name, department_id, salary, shift_hours FROM nurses WHERE id = ?`
	var nurse model.Nurse
	if err := r.db.GetContext(ctx, &nurse, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFound("nurse", err)
		}
		return nil, fmt.Errorf("failed to get nurse: %w", err)
	}
	return &nurse, nil
}

func (r *nurseRepository) Save(ctx context.Context, nurse *model.Nurse) error {
	query := `
		INSERT INTO nurses (id, name, birth_date, address, department_name, department_id, salary, shift_hours)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			birth_date = excluded.birth_date,
			address = excluded.address,
			department_name = excluded.department_name,
			department_id = excluded.department_id,
			salary = excluded.salary,
			shift_hours = excluded.shift_hours
	`
	_, err := r.db.ExecContext(ctx, query,
		nurse.ID,
		nurse.Name,
		nurse.BirthDate,
		nurse.Address,
		nurse.DepartmentName,
		nurse.DepartmentID,
		nurse.Salary,
		nurse.ShiftHours,
	)
	if err != nil {
		return fmt.Errorf("failed to save nurse: %w", err)
	}
	return nil
}

func (r *nurseRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM nurses WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete nurse: %w", err)
	}
	return nil
}

func (r *nurseRepository) NextID(ctx context.Context) (string, error) {
	return nextID(ctx, r.db, seqNurse, "N")
}
