package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Sequence names and identifier prefixes, one per entity kind. Identifiers
// come out as prefix + zero-padded counter: P001, D002, A003.
const (
	seqPatient     = "PATIENT"
	seqDoctor      = "DOCTOR"
	seqNurse       = "NURSE"
	seqAppointment = "APPOINTMENT"
	seqRoom        = "ROOM"
	seqDepartment  = "DEPARTMENT"
)

func nextID(ctx context.Context, db *sqlx.DB, name, prefix string) (string, error) {
	if _, err := db.ExecContext(ctx,
		`INSERT INTO sequences (name, current_value) VALUES (?, 0)
		 ON CONFLICT(name) DO NOTHING`, name); err != nil {
		return "", fmt.Errorf("failed to init sequence %s: %w", name, err)
	}

	if _, err := db.ExecContext(ctx,
		`UPDATE sequences SET current_value = current_value + 1 WHERE name = ?`, name); err != nil {
		return "", fmt.Errorf("failed to advance sequence %s: %w", name, err)
	}

	var current int
	if err := db.GetContext(ctx, &current,
		`SELECT current_value FROM sequences WHERE name = ?`, name); err != nil {
		return "", fmt.Errorf("failed to read sequence %s: %w", name, err)
	}

	return fmt.Sprintf("%s%03d", prefix, current), nil
}
