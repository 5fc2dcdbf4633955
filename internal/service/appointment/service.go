package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/repository"
	apperrors "github.com/jwalitptl/hospital-api/pkg/errors"
	"github.com/jwalitptl/hospital-api/pkg/validator"
)

// Service books and manages appointments. Both sides of a booking must
// resolve to stored records before the appointment is written.
type Service struct {
	appointments repository.AppointmentRepository
	doctors      repository.DoctorRepository
	patients     repository.PatientRepository
	validate     *validator.Validator
	now          func() time.Time
}

func NewService(appointments repository.AppointmentRepository, doctors repository.DoctorRepository, patients repository.PatientRepository, validate *validator.Validator) *Service {
	return &Service{
		appointments: appointments,
		doctors:      doctors,
		patients:     patients,
		validate:     validate,
		now:          time.Now,
	}
}

// Book creates a scheduled appointment. A zero date defaults to now.
func (s *Service) Book(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	if _, err := s.doctors.Get(ctx, req.DoctorID); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewValidation(fmt.Sprintf("doctor %s does not exist", req.DoctorID), err)
		}
		return nil, fmt.Errorf("failed to resolve doctor: %w", err)
	}
	if _, err := s.patients.Get(ctx, req.PatientID); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewValidation(fmt.Sprintf("patient %s does not exist", req.PatientID), err)
		}
		return nil, fmt.Errorf("failed to resolve patient: %w", err)
	}

	id, err := s.appointments.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate appointment ID: %w", err)
	}

	date := req.Date
	if date.IsZero() {
		date = s.now()
	}

	appointment := &model.Appointment{
		ID:        id,
		DoctorID:  req.DoctorID,
		PatientID: req.PatientID,
		Reason:    req.Reason,
		Fee:       req.Fee,
		Date:      date,
		Status:    model.AppointmentStatusScheduled,
	}
	if err := s.appointments.Save(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to save appointment: %w", err)
	}
	return appointment, nil
}

func (s *Service) Get(ctx context.Context, id string) (*model.Appointment, error) {
	return s.appointments.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*model.Appointment, error) {
	return s.appointments.List(ctx)
}

func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]*model.Appointment, error) {
	if _, err := s.patients.Get(ctx, patientID); err != nil {
		return nil, err
	}
	return s.appointments.ListByPatient(ctx, patientID)
}

// Update applies the provided fields; nil fields keep the stored value.
func (s *Service) Update(ctx context.Context, id string, req *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	if req.Status != nil && !req.Status.Valid() {
		return nil, apperrors.NewValidation(fmt.Sprintf("unknown appointment status %q", *req.Status), nil)
	}

	appointment, err := s.appointments.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Reason != nil {
		appointment.Reason = *req.Reason
	}
	if req.Fee != nil {
		appointment.Fee = *req.Fee
	}
	if req.Status != nil {
		appointment.Status = *req.Status
	}

	if err := s.appointments.Save(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to save appointment: %w", err)
	}
	return appointment, nil
}

// Cancel removes the appointment entirely, matching the booking desks'
// expectation that cancelled slots disappear from the ledger.
func (s *Service) Cancel(ctx context.Context, id string) error {
	if _, err := s.appointments.Get(ctx, id); err != nil {
		return err
	}
	return s.appointments.Delete(ctx, id)
}
