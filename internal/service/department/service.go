package department

import (
	"context"
	"fmt"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/repository"
	apperrors "github.com/jwalitptl/hospital-api/pkg/errors"
	"github.com/jwalitptl/hospital-api/pkg/validator"
)

// Service manages departments and builds their staff/patient views.
// Membership is never stored on the department; it is recomputed from
// the department ID carried on each doctor, nurse and patient record.
type Service struct {
	departments repository.DepartmentRepository
	doctors     repository.DoctorRepository
	nurses      repository.NurseRepository
	patients    repository.PatientRepository
	validate    *validator.Validator
}

func NewService(departments repository.DepartmentRepository, doctors repository.DoctorRepository, nurses repository.NurseRepository, patients repository.PatientRepository, validate *validator.Validator) *Service {
	return &Service{
		departments: departments,
		doctors:     doctors,
		nurses:      nurses,
		patients:    patients,
		validate:    validate,
	}
}

func (s *Service) Create(ctx context.Context, req *model.CreateDepartmentRequest) (*model.Department, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	if req.HeadID != "" {
		if _, err := s.doctors.Get(ctx, req.HeadID); err != nil {
			if apperrors.IsNotFound(err) {
				return nil, apperrors.NewValidation(fmt.Sprintf("head doctor %s does not exist", req.HeadID), err)
			}
			return nil, fmt.Errorf("failed to resolve head doctor: %w", err)
		}
	}

	id, err := s.departments.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate department ID: %w", err)
	}

	department := &model.Department{
		ID:     id,
		Name:   req.Name,
		HeadID: req.HeadID,
	}
	if err := s.departments.Save(ctx, department); err != nil {
		return nil, fmt.Errorf("failed to save department: %w", err)
	}
	return department, nil
}

func (s *Service) Get(ctx context.Context, id string) (*model.Department, error) {
	return s.departments.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*model.Department, error) {
	return s.departments.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.departments.Get(ctx, id); err != nil {
		return err
	}
	return s.departments.Delete(ctx, id)
}

// View returns one department with its members.
func (s *Service) View(ctx context.Context, id string) (*model.DepartmentView, error) {
	department, err := s.departments.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	views, err := s.buildViews(ctx, []*model.Department{department})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

// Partition returns every department with its members. Records carrying
// a blank or unknown department ID belong to no view.
func (s *Service) Partition(ctx context.Context) ([]*model.DepartmentView, error) {
	departments, err := s.departments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return s.buildViews(ctx, departments)
}

func (s *Service) buildViews(ctx context.Context, departments []*model.Department) ([]*model.DepartmentView, error) {
	doctors, err := s.doctors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	nurses, err := s.nurses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list nurses: %w", err)
	}
	patients, err := s.patients.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}

	views := make([]*model.DepartmentView, 0, len(departments))
	for _, department := range departments {
		view := &model.DepartmentView{Department: *department}
		for _, d := range doctors {
			if d.DepartmentID == department.ID {
				view.Doctors = append(view.Doctors, d)
			}
		}
		for _, n := range nurses {
			if n.DepartmentID == department.ID {
				view.Nurses = append(view.Nurses, n)
			}
		}
		for _, p := range patients {
			if p.DepartmentID == department.ID {
				view.Patients = append(view.Patients, p)
			}
		}
		views = append(views, view)
	}
	return views, nil
}
