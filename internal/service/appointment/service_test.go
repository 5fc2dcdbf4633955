package appointment

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/hospital-api/internal/model"
	apperrors "github.com/jwalitptl/hospital-api/pkg/errors"
	"github.com/jwalitptl/hospital-api/pkg/validator"
)

type fakeAppointmentRepo struct {
	appointments map[string]*model.Appointment
	seq          int
}

func (f *fakeAppointmentRepo) List(ctx context.Context) ([]*model.Appointment, error) {
	out := make([]*model.Appointment, 0, len(f.appointments))
	for _, a := range f.appointments {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAppointmentRepo) ListByPatient(ctx context.Context, patientID string) ([]*model.Appointment, error) {
	var out []*model.Appointment
	for _, a := range f.appointments {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) Get(ctx context.Context, id string) (*model.Appointment, error) {
	a, ok := f.appointments[id]
	if !ok {
		return nil, apperrors.NewNotFound("appointment", nil)
	}
	return a, nil
}

func (f *fakeAppointmentRepo) Save(ctx context.Context, a *model.Appointment) error {
	f.appointments[a.ID] = a
	return nil
}

func (f *fakeAppointmentRepo) Delete(ctx context.Context, id string) error {
	delete(f.appointments, id)
	return nil
}

func (f *fakeAppointmentRepo) DeleteByPatient(ctx context.Context, patientID string) error {
	for id, a := range f.appointments {
		if a.PatientID == patientID {
			delete(f.appointments, id)
		}
	}
	return nil
}

func (f *fakeAppointmentRepo) NextID(ctx context.Context) (string, error) {
	f.seq++
	return fmt.Sprintf("A%03d", f.seq), nil
}

type fakeDoctorRepo struct {
	doctors map[string]*model.Doctor
}

func (f *fakeDoctorRepo) List(ctx context.Context) ([]*model.Doctor, error) {
	out := make([]*model.Doctor, 0, len(f.doctors))
	for _, d := range f.doctors {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeDoctorRepo) Get(ctx context.Context, id string) (*model.Doctor, error) {
	d, ok := f.doctors[id]
	if !ok {
		return nil, apperrors.NewNotFound("doctor", nil)
	}
	return d, nil
}

func (f *fakeDoctorRepo) Save(ctx context.Context, d *model.Doctor) error {
	f.doctors[d.ID] = d
	return nil
}

func (f *fakeDoctorRepo) Delete(ctx context.Context, id string) error {
	delete(f.doctors, id)
	return nil
}

func (f *fakeDoctorRepo) NextID(ctx context.Context) (string, error) {
	return fmt.Sprintf("D%03d", len(f.doctors)+1), nil
}

type fakePatientRepo struct {
	patients map[string]*model.Patient
}

func (f *fakePatientRepo) List(ctx context.Context) ([]*model.Patient, error) {
	out := make([]*model.Patient, 0, len(f.patients))
	for _, p := range f.patients {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePatientRepo) Get(ctx context.Context, id string) (*model.Patient, error) {
	p, ok := f.patients[id]
	if !ok {
		return nil, apperrors.NewNotFound("patient", nil)
	}
	return p, nil
}

func (f *fakePatientRepo) Save(ctx context.Context, p *model.Patient) error {
	f.patients[p.ID] = p
	return nil
}

func (f *fakePatientRepo) Delete(ctx context.Context, id string) error {
	delete(f.patients, id)
	return nil
}

func (f *fakePatientRepo) NextID(ctx context.Context) (string, error) {
	return fmt.Sprintf("P%03d", len(f.patients)+1), nil
}

func newTestService() (*Service, *fakeAppointmentRepo) {
	appointments := &fakeAppointmentRepo{appointments: map[string]*model.Appointment{}}
	doctors := &fakeDoctorRepo{doctors: map[string]*model.Doctor{
		"D001": {Employee: model.Employee{Person: model.Person{ID: "D001", Name: "Greg House"}}},
	}}
	patients := &fakePatientRepo{patients: map[string]*model.Patient{
		"P001": {Person: model.Person{ID: "P001", Name: "John Doe"}},
	}}
	return NewService(appointments, doctors, patients, validator.New()), appointments
}

func TestBookDefaults(t *testing.T) {
	svc, _ := newTestService()
	now := time.Date(2026, time.April, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	apt, err := svc.Book(context.Background(), &model.CreateAppointmentRequest{
		DoctorID:  "D001",
		PatientID: "P001",
		Reason:    "Checkup",
		Fee:       120,
	})
	require.NoError(t, err)
	assert.Equal(t, "A001", apt.ID)
	assert.Equal(t, model.AppointmentStatusScheduled, apt.Status)
	assert.Equal(t, now, apt.Date)
}

func TestBookKeepsExplicitDate(t *testing.T) {
	svc, _ := newTestService()
	date := time.Date(2026, time.May, 2, 14, 30, 0, 0, time.UTC)

	apt, err := svc.Book(context.Background(), &model.CreateAppointmentRequest{
		DoctorID:  "D001",
		PatientID: "P001",
		Reason:    "Follow-up",
		Date:      date,
	})
	require.NoError(t, err)
	assert.Equal(t, date, apt.Date)
}

func TestBookUnknownDoctor(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Book(context.Background(), &model.CreateAppointmentRequest{
		DoctorID:  "D999",
		PatientID: "P001",
		Reason:    "Checkup",
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestBookUnknownPatient(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Book(context.Background(), &model.CreateAppointmentRequest{
		DoctorID:  "D001",
		PatientID: "P999",
		Reason:    "Checkup",
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdateNilFieldsKeepCurrent(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	apt, err := svc.Book(ctx, &model.CreateAppointmentRequest{
		DoctorID:  "D001",
		PatientID: "P001",
		Reason:    "Checkup",
		Fee:       120,
	})
	require.NoError(t, err)

	fee := 150.0
	updated, err := svc.Update(ctx, apt.ID, &model.UpdateAppointmentRequest{Fee: &fee})
	require.NoError(t, err)
	assert.Equal(t, "Checkup", updated.Reason)
	assert.Equal(t, 150.0, updated.Fee)
	assert.Equal(t, model.AppointmentStatusScheduled, updated.Status)
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	apt, err := svc.Book(ctx, &model.CreateAppointmentRequest{
		DoctorID:  "D001",
		PatientID: "P001",
		Reason:    "Checkup",
	})
	require.NoError(t, err)

	bad := model.AppointmentStatus("postponed")
	_, err = svc.Update(ctx, apt.ID, &model.UpdateAppointmentRequest{Status: &bad})
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdateStatusTransition(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	apt, err := svc.Book(ctx, &model.CreateAppointmentRequest{
		DoctorID:  "D001",
		PatientID: "P001",
		Reason:    "Checkup",
	})
	require.NoError(t, err)

	done := model.AppointmentStatusCompleted
	updated, err := svc.Update(ctx, apt.ID, &model.UpdateAppointmentRequest{Status: &done})
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusCompleted, updated.Status)
}

func TestCancelRemovesAppointment(t *testing.T) {
	svc, appointments := newTestService()
	ctx := context.Background()

	apt, err := svc.Book(ctx, &model.CreateAppointmentRequest{
		DoctorID:  "D001",
		PatientID: "P001",
		Reason:    "Checkup",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, apt.ID))
	assert.NotContains(t, appointments.appointments, apt.ID)

	err = svc.Cancel(ctx, apt.ID)
	assert.True(t, apperrors.IsNotFound(err))
}
