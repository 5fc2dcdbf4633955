package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS sequences (
	name TEXT PRIMARY KEY,
	current_value INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS patients (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	birth_date TIMESTAMP NOT NULL,
	address TEXT NOT NULL,
	diagnosis TEXT,
	department_id TEXT
);

CREATE TABLE IF NOT EXISTS doctors (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	birth_date TIMESTAMP,
	address TEXT,
	department_name TEXT,
	department_id TEXT,
	salary REAL,
	specialty TEXT
);

CREATE TABLE IF NOT EXISTS nurses (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	birth_date TIMESTAMP,
	address TEXT,
	department_name TEXT,
	department_id TEXT,
	salary REAL,
	shift_hours INTEGER
);

CREATE TABLE IF NOT EXISTS appointments (
	id TEXT PRIMARY KEY,
	doctor_id TEXT NOT NULL,
	patient_id TEXT NOT NULL,
	reason TEXT,
	fee REAL,
	date TIMESTAMP,
	status TEXT
);

CREATE TABLE IF NOT EXISTS rooms (
	id TEXT PRIMARY KEY,
	type TEXT,
	capacity INTEGER,
	daily_rate REAL
);

CREATE TABLE IF NOT EXISTS inpatients (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	birth_date TIMESTAMP,
	address TEXT,
	diagnosis TEXT,
	room_id TEXT NOT NULL,
	admission_date TIMESTAMP NOT NULL,
	discharge_date TIMESTAMP,
	daily_rate REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS departments (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	head_id TEXT
);
`

// NewDB opens the SQLite store, creates the schema when missing and seeds
// the default rooms.
func NewDB(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// The driver is pure Go but SQLite still serialises writers; a single
	// connection avoids SQLITE_BUSY under the synchronous usage model.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	if err := seedDefaultRooms(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to seed rooms: %w", err)
	}

	return db, nil
}

// seedDefaultRooms upserts the standard ward layout so a fresh database is
// immediately usable.
func seedDefaultRooms(db *sqlx.DB) error {
	rooms := []struct {
		id       string
		typ      string
		capacity int
		rate     float64
	}{
		{"R001", "General", 10, 150},
		{"R002", "Private", 10, 300},
		{"R003", "ICU", 6, 800},
	}

	query := `
		INSERT INTO rooms (id, type, capacity, daily_rate)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			type = excluded.type,
			capacity = excluded.capacity,
			daily_rate = excluded.daily_rate
	`
	for _, r := range rooms {
		if _, err := db.Exec(query, r.id, r.typ, r.capacity, r.rate); err != nil {
			return err
		}
	}
	return nil
}
