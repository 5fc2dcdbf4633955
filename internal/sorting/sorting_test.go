package sorting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/hospital-api/internal/model"
)

func patient(id, name, diagnosis string) *model.Patient {
	return &model.Patient{Person: model.Person{ID: id, Name: name}, Diagnosis: diagnosis}
}

func names(patients []*model.Patient) []string {
	out := make([]string, len(patients))
	for i, p := range patients {
		out[i] = p.Name
	}
	return out
}

func ids(patients []*model.Patient) []string {
	out := make([]string, len(patients))
	for i, p := range patients {
		out[i] = p.ID
	}
	return out
}

func TestPatientsByNameCaseInsensitive(t *testing.T) {
	in := []*model.Patient{
		patient("P001", "mary Shelley", "Migraine"),
		patient("P002", "Ada Lovelace", "Pneumonia"),
		patient("P003", "grace Hopper", "Fractured Wrist"),
	}
	got := PatientsByName(in)
	assert.Equal(t, []string{"Ada Lovelace", "grace Hopper", "mary Shelley"}, names(got))
	// Input untouched.
	assert.Equal(t, "mary Shelley", in[0].Name)
}

func TestPatientsByNameStable(t *testing.T) {
	in := []*model.Patient{
		patient("P001", "John Doe", "Flu"),
		patient("P002", "Ada Lovelace", "Pneumonia"),
		patient("P003", "John Doe", "Migraine"),
	}
	got := PatientsByName(in)
	assert.Equal(t, []string{"P002", "P001", "P003"}, ids(got))
}

func TestPatientsByNameEmptyAndSingle(t *testing.T) {
	assert.Empty(t, PatientsByName(nil))

	one := []*model.Patient{patient("P001", "Ada Lovelace", "Pneumonia")}
	got := PatientsByName(one)
	require.Len(t, got, 1)
	assert.Equal(t, "P001", got[0].ID)
}

func TestPatientsByDiagnosis(t *testing.T) {
	in := []*model.Patient{
		patient("P001", "Ada Lovelace", "pneumonia"),
		patient("P002", "Grace Hopper", "Arrhythmia"),
		patient("P003", "John Doe", "Migraine"),
	}
	got := PatientsByDiagnosis(in)
	assert.Equal(t, []string{"P002", "P003", "P001"}, ids(got))
}

func TestPatientsByBillDescending(t *testing.T) {
	in := []*model.Patient{
		patient("P001", "Ada Lovelace", "Pneumonia"),
		patient("P002", "Grace Hopper", "Arrhythmia"),
		patient("P003", "John Doe", "Migraine"),
	}
	bills := map[string]float64{"P001": 120, "P002": 900, "P003": 450}
	got := PatientsByBill(in, func(p *model.Patient) float64 { return bills[p.ID] })
	assert.Equal(t, []string{"P002", "P003", "P001"}, ids(got))
}

func TestPatientsByBillTiesKeepInputOrder(t *testing.T) {
	in := []*model.Patient{
		patient("P001", "Ada Lovelace", "Pneumonia"),
		patient("P002", "Grace Hopper", "Arrhythmia"),
		patient("P003", "John Doe", "Migraine"),
		patient("P004", "Mary Shelley", "Flu"),
	}
	bills := map[string]float64{"P001": 100, "P002": 500, "P003": 100, "P004": 100}
	got := PatientsByBill(in, func(p *model.Patient) float64 { return bills[p.ID] })
	assert.Equal(t, []string{"P002", "P001", "P003", "P004"}, ids(got))
}

func TestPatientsByBillEmptyAndSingle(t *testing.T) {
	flat := func(*model.Patient) float64 { return 0 }
	assert.Empty(t, PatientsByBill(nil, flat))

	one := []*model.Patient{patient("P001", "Ada Lovelace", "Pneumonia")}
	got := PatientsByBill(one, flat)
	require.Len(t, got, 1)
	assert.Equal(t, "P001", got[0].ID)
}

func TestDoctorsBySpecialtyThenName(t *testing.T) {
	in := []*model.Doctor{
		{Employee: model.Employee{Person: model.Person{ID: "D001", Name: "Lisa Cuddy"}}, Specialty: "Endocrinology"},
		{Employee: model.Employee{Person: model.Person{ID: "D002", Name: "James Wilson"}}, Specialty: "Oncology"},
		{Employee: model.Employee{Person: model.Person{ID: "D003", Name: "Eric Foreman"}}, Specialty: "endocrinology"},
	}
	got := DoctorsBySpecialty(in)
	assert.Equal(t, "D003", got[0].ID)
	assert.Equal(t, "D001", got[1].ID)
	assert.Equal(t, "D002", got[2].ID)
}

func TestNursesByShiftHoursLongestFirst(t *testing.T) {
	in := []*model.Nurse{
		{Employee: model.Employee{Person: model.Person{ID: "N001", Name: "Carol Hathaway"}}, ShiftHours: 8},
		{Employee: model.Employee{Person: model.Person{ID: "N002", Name: "Abby Lockhart"}}, ShiftHours: 12},
	}
	got := NursesByShiftHours(in)
	assert.Equal(t, "N002", got[0].ID)
}

func TestInpatientsByRoomThenName(t *testing.T) {
	in := []*model.Inpatient{
		{Person: model.Person{ID: "P001", Name: "Walter White"}, RoomID: "R002"},
		{Person: model.Person{ID: "P002", Name: "Ada Lovelace"}, RoomID: "R002"},
		{Person: model.Person{ID: "P003", Name: "Zoe Hart"}, RoomID: "R001"},
	}
	got := InpatientsByRoom(in)
	assert.Equal(t, "P003", got[0].ID)
	assert.Equal(t, "P002", got[1].ID)
	assert.Equal(t, "P001", got[2].ID)
}
