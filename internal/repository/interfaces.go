package repository

import (
	"context"

	"github.com/jwalitptl/hospital-api/internal/model"
)

// All repository interfaces in one file. Save is an upsert keyed by the
// record identifier. NextID hands out the store's sequence-generated
// identifiers; the services never invent their own.
type (
	PatientRepository interface {
		List(ctx context.Context) ([]*model.Patient, error)
		Get(ctx context.Context, id string) (*model.Patient, error)
		Save(ctx context.Context, patient *model.Patient) error
		Delete(ctx context.Context, id string) error
		NextID(ctx context.Context) (string, error)
	}

	DoctorRepository interface {
		List(ctx context.Context) ([]*model.Doctor, error)
		Get(ctx context.Context, id string) (*model.Doctor, error)
		Save(ctx context.Context, doctor *model.Doctor) error
		Delete(ctx context.Context, id string) error
		NextID(ctx context.Context) (string, error)
	}

	NurseRepository interface {
		List(ctx context.Context) ([]*model.Nurse, error)
		Get(ctx context.Context, id string) (*model.Nurse, error)
		Save(ctx context.Context, nurse *model.Nurse) error
		Delete(ctx context.Context, id string) error
		NextID(ctx context.Context) (string, error)
	}

	AppointmentRepository interface {
		List(ctx context.Context) ([]*model.Appointment, error)
		ListByPatient(ctx context.Context, patientID string) ([]*model.Appointment, error)
		Get(ctx context.Context, id string) (*model.Appointment, error)
		Save(ctx context.Context, appointment *model.Appointment) error
		Delete(ctx context.Context, id string) error
		DeleteByPatient(ctx context.Context, patientID string) error
		NextID(ctx context.Context) (string, error)
	}

	RoomRepository interface {
		List(ctx context.Context) ([]*model.Room, error)
		Get(ctx context.Context, id string) (*model.Room, error)
		Save(ctx context.Context, room *model.Room) error
		NextID(ctx context.Context) (string, error)
	}

	InpatientRepository interface {
		List(ctx context.Context) ([]*model.Inpatient, error)
		ListActive(ctx context.Context) ([]*model.Inpatient, error)
		Get(ctx context.Context, patientID string) (*model.Inpatient, error)
		Save(ctx context.Context, inpatient *model.Inpatient) error
	}

	DepartmentRepository interface {
		List(ctx context.Context) ([]*model.Department, error)
		Get(ctx context.Context, id string) (*model.Department, error)
		Save(ctx context.Context, department *model.Department) error
		Delete(ctx context.Context, id string) error
		NextID(ctx context.Context) (string, error)
	}
)
