package patient

import (
	"context"
	"fmt"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/repository"
	apperrors "github.com/jwalitptl/hospital-api/pkg/errors"
	"github.com/jwalitptl/hospital-api/pkg/validator"
)

// Service manages patient records. Appointment rows ride along with the
// patient and are removed with it.
type Service struct {
	patients     repository.PatientRepository
	appointments repository.AppointmentRepository
	departments  repository.DepartmentRepository
	validate     *validator.Validator
}

func NewService(patients repository.PatientRepository, appointments repository.AppointmentRepository, departments repository.DepartmentRepository, validate *validator.Validator) *Service {
	return &Service{
		patients:     patients,
		appointments: appointments,
		departments:  departments,
		validate:     validate,
	}
}

func (s *Service) Create(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	if err := s.validate.BirthDate(req.BirthDate); err != nil {
		return nil, err
	}
	if err := s.resolveDepartment(ctx, req.DepartmentID); err != nil {
		return nil, err
	}

	id, err := s.patients.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate patient ID: %w", err)
	}

	patient := &model.Patient{
		Person: model.Person{
			ID:        id,
			Name:      req.Name,
			BirthDate: req.BirthDate,
			Address:   req.Address,
		},
		Diagnosis:    req.Diagnosis,
		DepartmentID: req.DepartmentID,
	}
	if err := s.patients.Save(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to save patient: %w", err)
	}
	return patient, nil
}

func (s *Service) Get(ctx context.Context, id string) (*model.Patient, error) {
	return s.patients.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*model.Patient, error) {
	return s.patients.List(ctx)
}

// Update applies the provided fields; nil fields keep the stored value.
func (s *Service) Update(ctx context.Context, id string, req *model.UpdatePatientRequest) (*model.Patient, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	patient, err := s.patients.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		patient.Name = *req.Name
	}
	if req.BirthDate != nil {
		if err := s.validate.BirthDate(*req.BirthDate); err != nil {
			return nil, err
		}
		patient.BirthDate = *req.BirthDate
	}
	if req.Address != nil {
		patient.Address = *req.Address
	}
	if req.Diagnosis != nil {
		patient.Diagnosis = *req.Diagnosis
	}
	if req.DepartmentID != nil {
		if err := s.resolveDepartment(ctx, *req.DepartmentID); err != nil {
			return nil, err
		}
		patient.DepartmentID = *req.DepartmentID
	}

	if err := s.patients.Save(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to save patient: %w", err)
	}
	return patient, nil
}

// Delete removes the patient and every appointment booked for them.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.patients.Get(ctx, id); err != nil {
		return err
	}
	if err := s.appointments.DeleteByPatient(ctx, id); err != nil {
		return fmt.Errorf("failed to delete patient appointments: %w", err)
	}
	return s.patients.Delete(ctx, id)
}

func (s *Service) resolveDepartment(ctx context.Context, departmentID string) error {
	if departmentID == "" {
		return nil
	}
	if _, err := s.departments.Get(ctx, departmentID); err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NewValidation(fmt.Sprintf("department %s does not exist", departmentID), err)
		}
		return fmt.Errorf("failed to resolve department: %w", err)
	}
	return nil
}
