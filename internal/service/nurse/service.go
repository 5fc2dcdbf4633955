package nurse

import (
	"context"
	"fmt"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/repository"
	apperrors "github.com/jwalitptl/hospital-api/pkg/errors"
	"github.com/jwalitptl/hospital-api/pkg/validator"
)

type Service struct {
	nurses      repository.NurseRepository
	departments repository.DepartmentRepository
	validate    *validator.Validator
}

func NewService(nurses repository.NurseRepository, departments repository.DepartmentRepository, validate *validator.Validator) *Service {
	return &Service{
		nurses:      nurses,
		departments: departments,
		validate:    validate,
	}
}

func (s *Service) Create(ctx context.Context, req *model.CreateNurseRequest) (*model.Nurse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	department, err := s.resolveDepartment(ctx, req.DepartmentID)
	if err != nil {
		return nil, err
	}

	id, err := s.nurses.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate nurse ID: %w", err)
	}

	nurse := &model.Nurse{
		Employee: model.Employee{
			Person: model.Person{
				ID:   id,
				Name: req.Name,
			},
			DepartmentName: department.Name,
			Salary:         req.Salary,
		},
		ShiftHours:   req.ShiftHours,
		DepartmentID: req.DepartmentID,
	}
	if err := s.nurses.Save(ctx, nurse); err != nil {
		return nil, fmt.Errorf("failed to save nurse: %w", err)
	}
	return nurse, nil
}

func (s *Service) Get(ctx context.Context, id string) (*model.Nurse, error) {
	return s.nurses.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*model.Nurse, error) {
	return s.nurses.List(ctx)
}

// Update applies the provided fields; nil fields keep the stored value.
func (s *Service) Update(ctx context.Context, id string, req *model.UpdateNurseRequest) (*model.Nurse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	nurse, err := s.nurses.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		nurse.Name = *req.Name
	}
	if req.DepartmentID != nil {
		department, err := s.resolveDepartment(ctx, *req.DepartmentID)
		if err != nil {
			return nil, err
		}
		nurse.DepartmentID = department.ID
		nurse.DepartmentName = department.Name
	}
	if req.Salary != nil {
		nurse.Salary = *req.Salary
	}
	if req.ShiftHours != nil {
		nurse.ShiftHours = *req.ShiftHours
	}

	if err := s.nurses.Save(ctx, nurse); err != nil {
		return nil, fmt.Errorf("failed to save nurse: %w", err)
	}
	return nurse, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.nurses.Get(ctx, id); err != nil {
		return err
	}
	return s.nurses.Delete(ctx, id)
}

func (s *Service) resolveDepartment(ctx context.Context, departmentID string) (*model.Department, error) {
	department, err := s.departments.Get(ctx, departmentID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewValidation(fmt.Sprintf("department %s does not exist", departmentID), err)
		}
		return nil, fmt.Errorf("failed to resolve department: %w", err)
	}
	return department, nil
}
