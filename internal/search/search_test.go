package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/hospital-api/internal/model"
)

func patientsByName() []*model.Patient {
	// Sorted by lowercased name.
	return []*model.Patient{
		{Person: model.Person{ID: "P003", Name: "Ada Lovelace"}, Diagnosis: "Pneumonia"},
		{Person: model.Person{ID: "P001", Name: "Grace Hopper"}, Diagnosis: "Fractured Wrist"},
		{Person: model.Person{ID: "P002", Name: "John Doe"}, Diagnosis: "Chronic Back Pain"},
		{Person: model.Person{ID: "P004", Name: "Mary Shelley"}, Diagnosis: "Migraine"},
	}
}

func TestFindHitsEveryPosition(t *testing.T) {
	patients := patientsByName()
	for i, p := range patients {
		idx, ok := Find(patients, func(p *model.Patient) string { return p.Name }, p.Name)
		require.True(t, ok, p.Name)
		assert.Equal(t, i, idx)
	}
}

func TestFindIsCaseInsensitive(t *testing.T) {
	patients := patientsByName()
	_, ok := Find(patients, func(p *model.Patient) string { return p.Name }, "gRACE hOPPER")
	assert.True(t, ok)
}

func TestFindMiss(t *testing.T) {
	patients := patientsByName()
	_, ok := Find(patients, func(p *model.Patient) string { return p.Name }, "Nobody Here")
	assert.False(t, ok)

	_, ok = Find(nil, func(p *model.Patient) string { return p.Name }, "Ada Lovelace")
	assert.False(t, ok)
}

func TestFindSingleElement(t *testing.T) {
	patients := patientsByName()[:1]
	idx, ok := Find(patients, func(p *model.Patient) string { return p.Name }, "ada lovelace")
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestPatientByName(t *testing.T) {
	p, ok := PatientByName(patientsByName(), "John Doe")
	require.True(t, ok)
	assert.Equal(t, "P002", p.ID)
}

func TestPatientByID(t *testing.T) {
	// Sorted by ID.
	patients := []*model.Patient{
		{Person: model.Person{ID: "P001", Name: "Grace Hopper"}},
		{Person: model.Person{ID: "P002", Name: "John Doe"}},
		{Person: model.Person{ID: "P003", Name: "Ada Lovelace"}},
	}
	p, ok := PatientByID(patients, "p002")
	require.True(t, ok)
	assert.Equal(t, "John Doe", p.Name)
}

func TestPatientsByDiagnosisSubstring(t *testing.T) {
	got := PatientsByDiagnosis(patientsByName(), "back")
	require.Len(t, got, 1)
	assert.Equal(t, "P002", got[0].ID)

	assert.Empty(t, PatientsByDiagnosis(patientsByName(), "malaria"))
}

func TestDoctorAndNurseByID(t *testing.T) {
	doctors := []*model.Doctor{
		{Employee: model.Employee{Person: model.Person{ID: "D001", Name: "Greg House"}}},
		{Employee: model.Employee{Person: model.Person{ID: "D002", Name: "Lisa Cuddy"}}},
	}
	d, ok := DoctorByID(doctors, "D002")
	require.True(t, ok)
	assert.Equal(t, "Lisa Cuddy", d.Name)

	nurses := []*model.Nurse{
		{Employee: model.Employee{Person: model.Person{ID: "N001", Name: "Carol Hathaway"}}},
	}
	n, ok := NurseByID(nurses, "n001")
	require.True(t, ok)
	assert.Equal(t, "Carol Hathaway", n.Name)

	_, ok = NurseByID(nurses, "N999")
	assert.False(t, ok)
}

func TestDoctorsBySpecialty(t *testing.T) {
	doctors := []*model.Doctor{
		{Employee: model.Employee{Person: model.Person{ID: "D001", Name: "Greg House"}}, Specialty: "Diagnostic Medicine"},
		{Employee: model.Employee{Person: model.Person{ID: "D002", Name: "Lisa Cuddy"}}, Specialty: "Endocrinology"},
	}
	got := DoctorsBySpecialty(doctors, "MEDICINE")
	require.Len(t, got, 1)
	assert.Equal(t, "D001", got[0].ID)
}

func TestNursesByDepartment(t *testing.T) {
	nurses := []*model.Nurse{
		{Employee: model.Employee{Person: model.Person{ID: "N001", Name: "Carol Hathaway"}}, DepartmentID: "DEP001"},
		{Employee: model.Employee{Person: model.Person{ID: "N002", Name: "Abby Lockhart"}}, DepartmentID: "DEP002"},
	}
	got := NursesByDepartment(nurses, "DEP002")
	require.Len(t, got, 1)
	assert.Equal(t, "N002", got[0].ID)
}
