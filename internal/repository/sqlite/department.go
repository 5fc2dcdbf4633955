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

type departmentRepository struct {
	db *sqlx.DB
}

func NewDepartmentRepository(db *sqlx.DB) repository.DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) List(ctx context.Context) ([]*model.Department, error) {
	query := `SELECT id, name, head_id FROM departments ORDER BY id`
	var departments []*model.Department
	if err := r.db.SelectContext(ctx, &departments, query); err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return departments, nil
}

func (r *departmentRepository) Get(ctx context.Context, id string) (*model.Department, error) {
	query := `SELECT id, name, head_id FROM departments WHERE id = ?`
	var department model.Department
	if err := r.db.GetContext(ctx, &department, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFound("department", err)
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}
	return &department, nil
}

func (r *departmentRepository) Save(ctx context.Context, department *model.Department) error {
	query := `
		INSERT INTO departments (id, name, head_id)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			head_id = excluded.head_id
	`
	_, err := r.db.ExecContext(ctx, query, department.ID, department.Name, department.HeadID)
	if err != nil {
		return fmt.Errorf("failed to save department: %w", err)
	}
	return nil
}

func (r *departmentRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM departments WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	return nil
}

func (r *departmentRepository) NextID(ctx context.Context) (string, error) {
	return nextID(ctx, r.db, seqDepartment, "DEP")
}
