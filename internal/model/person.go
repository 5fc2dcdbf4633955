package model

import (
	"time"
)

// Person holds the identity fields shared by every people-record in the
// system. Identifiers are opaque strings assigned by the store's sequence
// generator (e.g. "P001", "D002") and never change once assigned.
type Person struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	BirthDate time.Time `db:"birth_date" json:"birth_date"`
	Address   string    `db:"address" json:"address"`
}

// MinBirthYear is the oldest birth year accepted for newly created records.
const MinBirthYear = 1900

// Employee extends Person with employment fields shared by doctors and
// nurses.
type Employee struct {
	Person
	DepartmentName string  `db:"department_name" json:"department_name"`
	Salary         float64 `db:"salary" json:"salary"`
}
