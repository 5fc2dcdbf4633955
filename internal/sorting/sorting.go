package sorting

import (
	"sort"
	"strings"

	"github.com/jwalitptl/hospital-api/internal/model"
)

// The classic sorts below operate on copies so callers can hand in shared
// snapshots. Bubble sort keeps equal names in input order; selection sort
// makes no such promise.

// PatientsByName bubble-sorts patients by name, case-insensitively.
// Stable: patients with equal names keep their relative order.
func PatientsByName(patients []*model.Patient) []*model.Patient {
	out := make([]*model.Patient, len(patients))
	copy(out, patients)

	for i := 0; i < len(out)-1; i++ {
		swapped := false
		for j := 0; j < len(out)-1-i; j++ {
			if strings.ToLower(out[j].Name) > strings.ToLower(out[j+1].Name) {
				out[j], out[j+1] = out[j+1], out[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return out
}

// PatientsByDiagnosis selection-sorts patients by diagnosis,
// case-insensitively.
func PatientsByDiagnosis(patients []*model.Patient) []*model.Patient {
	out := make([]*model.Patient, len(patients))
	copy(out, patients)

	for i := 0; i < len(out)-1; i++ {
		min := i
		for j := i + 1; j < len(out); j++ {
			if strings.ToLower(out[j].Diagnosis) < strings.ToLower(out[min].Diagnosis) {
				min = j
			}
		}
		if min != i {
			out[i], out[min] = out[min], out[i]
		}
	}
	return out
}

// PatientsByBill merge-sorts patients by their bill, highest first.
// bill is evaluated once per patient. Stable: on ties the left-hand run
// wins, so equal bills keep their input order.
func PatientsByBill(patients []*model.Patient, bill func(*model.Patient) float64) []*model.Patient {
	bills := make(map[*model.Patient]float64, len(patients))
	for _, p := range patients {
		bills[p] = bill(p)
	}

	out := make([]*model.Patient, len(patients))
	copy(out, patients)
	return mergeSort(out, bills)
}

func mergeSort(patients []*model.Patient, bills map[*model.Patient]float64) []*model.Patient {
	if len(patients) <= 1 {
		return patients
	}
	mid := len(patients) / 2
	left := mergeSort(patients[:mid], bills)
	right := mergeSort(patients[mid:], bills)
	return merge(left, right, bills)
}

func merge(left, right []*model.Patient, bills map[*model.Patient]float64) []*model.Patient {
	out := make([]*model.Patient, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		// Descending; ties take from the left run to keep stability.
		if bills[left[i]] >= bills[right[j]] {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}
	out = append(out, left[i:]...)
	out = append(out, right[j:]...)
	return out
}

// DoctorsByName returns doctors ordered by name, case-insensitively.
func DoctorsByName(doctors []*model.Doctor) []*model.Doctor {
	out := make([]*model.Doctor, len(doctors))
	copy(out, doctors)
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// DoctorsBySpecialty returns doctors ordered by specialty, then name.
func DoctorsBySpecialty(doctors []*model.Doctor) []*model.Doctor {
	out := make([]*model.Doctor, len(doctors))
	copy(out, doctors)
	sort.SliceStable(out, func(i, j int) bool {
		si, sj := strings.ToLower(out[i].Specialty), strings.ToLower(out[j].Specialty)
		if si != sj {
			return si < sj
		}
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// NursesByName returns nurses ordered by name, case-insensitively.
func NursesByName(nurses []*model.Nurse) []*model.Nurse {
	out := make([]*model.Nurse, len(nurses))
	copy(out, nurses)
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// NursesByShiftHours returns nurses ordered by shift hours, longest first.
func NursesByShiftHours(nurses []*model.Nurse) []*model.Nurse {
	out := make([]*model.Nurse, len(nurses))
	copy(out, nurses)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ShiftHours > out[j].ShiftHours
	})
	return out
}

// InpatientsByRoom returns inpatients ordered by room, then name.
func InpatientsByRoom(inpatients []*model.Inpatient) []*model.Inpatient {
	out := make([]*model.Inpatient, len(inpatients))
	copy(out, inpatients)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].RoomID != out[j].RoomID {
			return out[i].RoomID < out[j].RoomID
		}
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}
