package directory

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/repository"
)

const (
	cacheKeyPatients   = "patients"
	cacheKeyDoctors    = "doctors"
	cacheKeyNurses     = "nurses"
	cacheKeyInpatients = "inpatients"
)

// Service serves read-mostly directory snapshots for the search and
// sorting endpoints. Snapshots are cached briefly so repeated lookups do
// not rescan the store; mutating handlers call Invalidate after a write.
type Service struct {
	patients   repository.PatientRepository
	doctors    repository.DoctorRepository
	nurses     repository.NurseRepository
	inpatients repository.InpatientRepository
	cache      *cache.Cache
}

func NewService(patients repository.PatientRepository, doctors repository.DoctorRepository, nurses repository.NurseRepository, inpatients repository.InpatientRepository, ttl time.Duration) *Service {
	return &Service{
		patients:   patients,
		doctors:    doctors,
		nurses:     nurses,
		inpatients: inpatients,
		cache:      cache.New(ttl, 2*ttl),
	}
}

// Patients returns the patient snapshot, from cache when fresh.
func (s *Service) Patients(ctx context.Context) ([]*model.Patient, error) {
	if cached, ok := s.cache.Get(cacheKeyPatients); ok {
		return cached.([]*model.Patient), nil
	}
	patients, err := s.patients.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot patients: %w", err)
	}
	s.cache.SetDefault(cacheKeyPatients, patients)
	return patients, nil
}

func (s *Service) Doctors(ctx context.Context) ([]*model.Doctor, error) {
	if cached, ok := s.cache.Get(cacheKeyDoctors); ok {
		return cached.([]*model.Doctor), nil
	}
	doctors, err := s.doctors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot doctors: %w", err)
	}
	s.cache.SetDefault(cacheKeyDoctors, doctors)
	return doctors, nil
}

func (s *Service) Nurses(ctx context.Context) ([]*model.Nurse, error) {
	if cached, ok := s.cache.Get(cacheKeyNurses); ok {
		return cached.([]*model.Nurse), nil
	}
	nurses, err := s.nurses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot nurses: %w", err)
	}
	s.cache.SetDefault(cacheKeyNurses, nurses)
	return nurses, nil
}

func (s *Service) Inpatients(ctx context.Context) ([]*model.Inpatient, error) {
	if cached, ok := s.cache.Get(cacheKeyInpatients); ok {
		return cached.([]*model.Inpatient), nil
	}
	inpatients, err := s.inpatients.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot inpatients: %w", err)
	}
	s.cache.SetDefault(cacheKeyInpatients, inpatients)
	return inpatients, nil
}

// Invalidate drops every cached snapshot.
func (s *Service) Invalidate() {
	s.cache.Flush()
}
