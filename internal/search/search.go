package search

import (
	"strings"

	"github.com/jwalitptl/hospital-api/internal/model"
)

// Find binary-searches items for the target key. The slice must already
// be sorted by the same key function under the same comparison: byte-wise
// ordinal order on the lowercased key. It returns the index of a match
// and whether one was found; with duplicate keys, which duplicate is
// returned is unspecified.
func Find[T any](items []T, key func(T) string, target string) (int, bool) {
	want := strings.ToLower(target)

	lo, hi := 0, len(items)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		got := strings.ToLower(key(items[mid]))
		switch {
		case got == want:
			return mid, true
		case got < want:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return 0, false
}

// PatientByName searches patients sorted by name.
func PatientByName(patients []*model.Patient, name string) (*model.Patient, bool) {
	i, ok := Find(patients, func(p *model.Patient) string { return p.Name }, name)
	if !ok {
		return nil, false
	}
	return patients[i], true
}

// PatientByID searches patients sorted by ID.
func PatientByID(patients []*model.Patient, id string) (*model.Patient, bool) {
	i, ok := Find(patients, func(p *model.Patient) string { return p.ID }, id)
	if !ok {
		return nil, false
	}
	return patients[i], true
}

// DoctorByName searches doctors sorted by name.
func DoctorByName(doctors []*model.Doctor, name string) (*model.Doctor, bool) {
	i, ok := Find(doctors, func(d *model.Doctor) string { return d.Name }, name)
	if !ok {
		return nil, false
	}
	return doctors[i], true
}

// DoctorByID searches doctors sorted by ID.
func DoctorByID(doctors []*model.Doctor, id string) (*model.Doctor, bool) {
	i, ok := Find(doctors, func(d *model.Doctor) string { return d.ID }, id)
	if !ok {
		return nil, false
	}
	return doctors[i], true
}

// NurseByName searches nurses sorted by name.
func NurseByName(nurses []*model.Nurse, name string) (*model.Nurse, bool) {
	i, ok := Find(nurses, func(n *model.Nurse) string { return n.Name }, name)
	if !ok {
		return nil, false
	}
	return nurses[i], true
}

// NurseByID searches nurses sorted by ID.
func NurseByID(nurses []*model.Nurse, id string) (*model.Nurse, bool) {
	i, ok := Find(nurses, func(n *model.Nurse) string { return n.ID }, id)
	if !ok {
		return nil, false
	}
	return nurses[i], true
}

// PatientsByDiagnosis scans for patients whose diagnosis contains the
// fragment, case-insensitively. Unlike Find it needs no ordering.
func PatientsByDiagnosis(patients []*model.Patient, fragment string) []*model.Patient {
	want := strings.ToLower(fragment)
	var out []*model.Patient
	for _, p := range patients {
		if strings.Contains(strings.ToLower(p.Diagnosis), want) {
			out = append(out, p)
		}
	}
	return out
}

// DoctorsBySpecialty scans for doctors whose specialty contains the
// fragment, case-insensitively.
func DoctorsBySpecialty(doctors []*model.Doctor, fragment string) []*model.Doctor {
	want := strings.ToLower(fragment)
	var out []*model.Doctor
	for _, d := range doctors {
		if strings.Contains(strings.ToLower(d.Specialty), want) {
			out = append(out, d)
		}
	}
	return out
}

// NursesByDepartment scans for nurses assigned to the department ID.
func NursesByDepartment(nurses []*model.Nurse, departmentID string) []*model.Nurse {
	var out []*model.Nurse
	for _, n := range nurses {
		if n.DepartmentID == departmentID {
			out = append(out, n)
		}
	}
	return out
}
