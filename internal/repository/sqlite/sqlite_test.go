package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/hospital-api/internal/model"
	apperrors "github.com/jwalitptl/hospital-api/pkg/errors"
)

func TestNewDBSeedsDefaultRooms(t *testing.T) {
	db, err := NewDB(":memory:")
	require.NoError(t, err)
	defer db.Close()

	rooms, err := NewRoomRepository(db).List(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 3)

	assert.Equal(t, "R001", rooms[0].ID)
	assert.Equal(t, "General", rooms[0].Type)
	assert.Equal(t, 10, rooms[0].Capacity)
	assert.Equal(t, 150.0, rooms[0].DailyRate)
	assert.Equal(t, "ICU", rooms[2].Type)
	assert.Equal(t, 800.0, rooms[2].DailyRate)
}

func TestSequenceIDFormat(t *testing.T) {
	db, err := NewDB(":memory:")
	require.NoError(t, err)
	defer db.Close()
	ctx := context.Background()

	patients := NewPatientRepository(db)
	id, err := patients.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "P001", id)

	id, err = patients.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "P002", id)

	// Sequences are independent per entity.
	departments := NewDepartmentRepository(db)
	id, err = departments.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "DEP001", id)
}

func TestPatientRoundtripWithAppointments(t *testing.T) {
	db, err := NewDB(":memory:")
	require.NoError(t, err)
	defer db.Close()
	ctx := context.Background()

	patients := NewPatientRepository(db)
	appointments := NewAppointmentRepository(db)

	p := &model.Patient{
		Person: model.Person{
			ID:        "P001",
			Name:      "Ada Lovelace",
			BirthDate: time.Date(1990, time.May, 1, 0, 0, 0, 0, time.UTC),
			Address:   "12 Analytical Way",
		},
		Diagnosis: "Pneumonia",
	}
	require.NoError(t, patients.Save(ctx, p))

	apt := &model.Appointment{
		ID:        "A001",
		DoctorID:  "D001",
		PatientID: "P001",
		Reason:    "Checkup",
		Fee:       120,
		Date:      time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC),
		Status:    model.AppointmentStatusScheduled,
	}
	require.NoError(t, appointments.Save(ctx, apt))

	got, err := patients.Get(ctx, "P001")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", got.Name)
	assert.Equal(t, "Pneumonia", got.Diagnosis)
	require.Len(t, got.Appointments, 1)
	assert.Equal(t, "A001", got.Appointments[0].ID)
	assert.Equal(t, 120.0, got.Appointments[0].Fee)
}

func TestPatientSaveIsUpsert(t *testing.T) {
	db, err := NewDB(":memory:")
	require.NoError(t, err)
	defer db.Close()
	ctx := context.Background()

	patients := NewPatientRepository(db)
	p := &model.Patient{
		Person:    model.Person{ID: "P001", Name: "Ada Lovelace", BirthDate: time.Now().AddDate(-30, 0, 0), Address: "Old Address"},
		Diagnosis: "Pneumonia",
	}
	require.NoError(t, patients.Save(ctx, p))

	p.Address = "New Address"
	require.NoError(t, patients.Save(ctx, p))

	got, err := patients.Get(ctx, "P001")
	require.NoError(t, err)
	assert.Equal(t, "New Address", got.Address)
}

func TestGetMissingPatientIsNotFound(t *testing.T) {
	db, err := NewDB(":memory:")
	require.NoError(t, err)
	defer db.Close()

	_, err = NewPatientRepository(db).Get(context.Background(), "P999")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestInpatientActiveFiltering(t *testing.T) {
	db, err := NewDB(":memory:")
	require.NoError(t, err)
	defer db.Close()
	ctx := context.Background()

	inpatients := NewInpatientRepository(db)
	admitted := &model.Inpatient{
		Person:        model.Person{ID: "P001", Name: "Ada Lovelace", BirthDate: time.Now().AddDate(-30, 0, 0)},
		Diagnosis:     "Pneumonia",
		RoomID:        "R001",
		AdmissionDate: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		DailyRate:     150,
	}
	require.NoError(t, inpatients.Save(ctx, admitted))

	discharge := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)
	discharged := &model.Inpatient{
		Person:        model.Person{ID: "P002", Name: "Grace Hopper", BirthDate: time.Now().AddDate(-40, 0, 0)},
		Diagnosis:     "Fractured Wrist",
		RoomID:        "R001",
		AdmissionDate: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		DischargeDate: &discharge,
		DailyRate:     150,
	}
	require.NoError(t, inpatients.Save(ctx, discharged))

	active, err := inpatients.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "P001", active[0].ID)

	all, err := inpatients.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestAppointmentDeleteByPatient(t *testing.T) {
	db, err := NewDB(":memory:")
	require.NoError(t, err)
	defer db.Close()
	ctx := context.Background()

	appointments := NewAppointmentRepository(db)
	for _, apt := range []*model.Appointment{
		{ID: "A001", DoctorID: "D001", PatientID: "P001", Reason: "Checkup", Date: time.Now(), Status: model.AppointmentStatusScheduled},
		{ID: "A002", DoctorID: "D001", PatientID: "P001", Reason: "Follow-up", Date: time.Now(), Status: model.AppointmentStatusScheduled},
		{ID: "A003", DoctorID: "D001", PatientID: "P002", Reason: "Checkup", Date: time.Now(), Status: model.AppointmentStatusScheduled},
	} {
		require.NoError(t, appointments.Save(ctx, apt))
	}

	require.NoError(t, appointments.DeleteByPatient(ctx, "P001"))

	remaining, err := appointments.List(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "A003", remaining[0].ID)
}
