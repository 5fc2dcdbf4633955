package doctor

import (
	"context"
	"fmt"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/repository"
	apperrors "github.com/jwalitptl/hospital-api/pkg/errors"
	"github.com/jwalitptl/hospital-api/pkg/validator"
)

type Service struct {
	doctors     repository.DoctorRepository
	departments repository.DepartmentRepository
	validate    *validator.Validator
}

func NewService(doctors repository.DoctorRepository, departments repository.DepartmentRepository, validate *validator.Validator) *Service {
	return &Service{
		doctors:     doctors,
		departments: departments,
		validate:    validate,
	}
}

func (s *Service) Create(ctx context.Context, req *model.CreateDoctorRequest) (*model.Doctor, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	department, err := s.resolveDepartment(ctx, req.DepartmentID)
	if err != nil {
		return nil, err
	}

	id, err := s.doctors.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate doctor ID: %w", err)
	}

	doctor := &model.Doctor{
		Employee: model.Employee{
			Person: model.Person{
				ID:   id,
				Name: req.Name,
			},
			DepartmentName: department.Name,
			Salary:         req.Salary,
		},
		Specialty:    req.Specialty,
		DepartmentID: req.DepartmentID,
	}
	if err := s.doctors.Save(ctx, doctor); err != nil {
		return nil, fmt.Errorf("failed to save doctor: %w", err)
	}
	return doctor, nil
}

func (s *Service) Get(ctx context.Context, id string) (*model.Doctor, error) {
	return s.doctors.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*model.Doctor, error) {
	return s.doctors.List(ctx)
}

// Update applies the provided fields; nil fields keep the stored value.
func (s *Service) Update(ctx context.Context, id string, req *model.UpdateDoctorRequest) (*model.Doctor, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	doctor, err := s.doctors.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		doctor.Name = *req.Name
	}
	if req.Specialty != nil {
		doctor.Specialty = *req.Specialty
	}
	if req.DepartmentID != nil {
		department, err := s.resolveDepartment(ctx, *req.DepartmentID)
		if err != nil {
			return nil, err
		}
		doctor.DepartmentID = department.ID
		doctor.DepartmentName = department.Name
	}
	if req.Salary != nil {
		doctor.Salary = *req.Salary
	}

	if err := s.doctors.Save(ctx, doctor); err != nil {
		return nil, fmt.Errorf("failed to save doctor: %w", err)
	}
	return doctor, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.doctors.Get(ctx, id); err != nil {
		return err
	}
	return s.doctors.Delete(ctx, id)
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
