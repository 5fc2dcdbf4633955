package admission

import (
	"context"
	"fmt"
	"time"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/repository"
	apperrors "github.com/jwalitptl/hospital-api/pkg/errors"
	"github.com/jwalitptl/hospital-api/pkg/metrics"
	"github.com/jwalitptl/hospital-api/pkg/validator"
)

// Service allocates beds: it admits registered patients into rooms with
// free capacity and discharges them. Room occupancy is never stored, it
// is always derived from the active inpatient records.
type Service struct {
	patients   repository.PatientRepository
	rooms      repository.RoomRepository
	inpatients repository.InpatientRepository
	metrics    *metrics.Metrics
	validate   *validator.Validator
	now        func() time.Time
}

func NewService(patients repository.PatientRepository, rooms repository.RoomRepository, inpatients repository.InpatientRepository, m *metrics.Metrics, validate *validator.Validator) *Service {
	return &Service{
		patients:   patients,
		rooms:      rooms,
		inpatients: inpatients,
		metrics:    m,
		validate:   validate,
		now:        time.Now,
	}
}

// Admit places a registered patient into a room. The patient must not
// already be an active inpatient, and the room must have a free bed.
// Identity fields are copied from the patient record at admission time;
// a blank diagnosis is recorded as "Unknown" and a future birth date is
// clamped to the admission time.
func (s *Service) Admit(ctx context.Context, req *model.AdmitRequest) (*model.Inpatient, error) {
	patient, err := s.patients.Get(ctx, req.PatientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load patient for admission: %w", err)
	}

	existing, err := s.inpatients.Get(ctx, req.PatientID)
	if err != nil && !apperrors.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check admission status: %w", err)
	}
	if existing != nil && existing.Active() {
		return nil, apperrors.NewValidation(fmt.Sprintf("patient %s is already admitted to room %s", existing.ID, existing.RoomID), nil)
	}

	room, err := s.rooms.Get(ctx, req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("failed to load room for admission: %w", err)
	}
	if room.Capacity <= 0 {
		if s.metrics != nil {
			s.metrics.CapacityRejections.Inc()
		}
		return nil, apperrors.NewCapacity(fmt.Sprintf("room %s has no beds", room.ID), nil)
	}

	occupied, err := s.occupancy(ctx, room.ID)
	if err != nil {
		return nil, err
	}
	if occupied >= room.Capacity {
		if s.metrics != nil {
			s.metrics.CapacityRejections.Inc()
		}
		return nil, apperrors.NewCapacity(fmt.Sprintf("room %s is full (%d/%d)", room.ID, occupied, room.Capacity), nil)
	}

	now := s.now()

	diagnosis := patient.Diagnosis
	if diagnosis == "" {
		diagnosis = "Unknown"
	}
	birthDate := patient.BirthDate
	if birthDate.After(now) {
		birthDate = now
	}

	inpatient := &model.Inpatient{
		Person: model.Person{
			ID:        patient.ID,
			Name:      patient.Name,
			BirthDate: birthDate,
			Address:   patient.Address,
		},
		Diagnosis:     diagnosis,
		RoomID:        room.ID,
		AdmissionDate: now,
		DailyRate:     room.DailyRate,
	}

	if err := s.inpatients.Save(ctx, inpatient); err != nil {
		return nil, fmt.Errorf("failed to save admission: %w", err)
	}

	if s.metrics != nil {
		s.metrics.AdmissionsTotal.Inc()
	}
	return inpatient, nil
}

// Discharge closes an active stay. Discharging an already discharged
// patient is a no-op and returns the existing record. The discharge date
// never precedes the admission date.
func (s *Service) Discharge(ctx context.Context, patientID string) (*model.Inpatient, error) {
	inpatient, err := s.inpatients.Get(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load inpatient for discharge: %w", err)
	}
	if !inpatient.Active() {
		return inpatient, nil
	}

	discharge := s.now()
	if dateOf(discharge).Before(dateOf(inpatient.AdmissionDate)) {
		discharge = inpatient.AdmissionDate
	}
	inpatient.DischargeDate = &discharge

	if err := s.inpatients.Save(ctx, inpatient); err != nil {
		return nil, fmt.Errorf("failed to save discharge: %w", err)
	}

	if s.metrics != nil {
		s.metrics.DischargesTotal.Inc()
	}
	return inpatient, nil
}

// Occupancy returns the number of active inpatients in the room.
func (s *Service) Occupancy(ctx context.Context, roomID string) (int, error) {
	if _, err := s.rooms.Get(ctx, roomID); err != nil {
		return 0, fmt.Errorf("failed to load room: %w", err)
	}
	return s.occupancy(ctx, roomID)
}

// ListRooms returns every room with its derived occupancy.
func (s *Service) ListRooms(ctx context.Context) ([]*model.RoomStatus, error) {
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	counts, err := s.occupancyByRoom(ctx)
	if err != nil {
		return nil, err
	}

	statuses := make([]*model.RoomStatus, 0, len(rooms))
	for _, room := range rooms {
		statuses = append(statuses, &model.RoomStatus{Room: *room, Occupied: counts[room.ID]})
	}
	return statuses, nil
}

// AvailableRooms returns the rooms that still have a free bed.
func (s *Service) AvailableRooms(ctx context.Context) ([]*model.RoomStatus, error) {
	statuses, err := s.ListRooms(ctx)
	if err != nil {
		return nil, err
	}

	available := make([]*model.RoomStatus, 0, len(statuses))
	for _, status := range statuses {
		if status.HasSpace() {
			available = append(available, status)
		}
	}
	return available, nil
}

// CreateRoom registers a new room with a sequence-assigned ID.
func (s *Service) CreateRoom(ctx context.Context, req *model.CreateRoomRequest) (*model.Room, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	id, err := s.rooms.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate room ID: %w", err)
	}

	room := &model.Room{
		ID:        id,
		Type:      req.Type,
		Capacity:  req.Capacity,
		DailyRate: req.DailyRate,
	}
	if err := s.rooms.Save(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to save room: %w", err)
	}
	return room, nil
}

func (s *Service) occupancy(ctx context.Context, roomID string) (int, error) {
	counts, err := s.occupancyByRoom(ctx)
	if err != nil {
		return 0, err
	}
	return counts[roomID], nil
}

func (s *Service) occupancyByRoom(ctx context.Context) (map[string]int, error) {
	active, err := s.inpatients.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active inpatients: %w", err)
	}
	counts := make(map[string]int, len(active))
	for _, inp := range active {
		counts[inp.RoomID]++
	}
	return counts, nil
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
