package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/repository"
	apperrors "github.com/jwalitptl/hospital-api/pkg/errors"
)

type roomRepository struct {
	db *sqlx.DB
}

func NewRoomRepository(db *sqlx.DB) repository.RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) List(ctx context.Context) ([]*model.Room, error) {
	query := `SELECT id, type, capacity, daily_rate FROM rooms ORDER BY id`
	var rooms []*model.Room
	if err := r.db.SelectContext(ctx, &rooms, query); err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (r *roomRepository) Get(ctx context.Context, id string) (*model.Room, error) {
	query := `SELECT id, type, capacity, daily_rate FROM rooms WHERE id = ?`
	var room model.Room
	if err := r.db.GetContext(ctx, &room, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFound("room", err)
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	return &room, nil
}

func (r *roomRepository) Save(ctx context.Context, room *model.Room) error {
	query := `
		INSERT INTO rooms (id, type, capacity, daily_rate)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			type = excluded.type,
			capacity = excluded.capacity,
			daily_rate = excluded.daily_rate
	`
	_, err := r.db.ExecContext(ctx, query, room.ID, room.Type, room.Capacity, room.DailyRate)
	if err != nil {
		return fmt.Errorf("failed to save room: %w", err)
	}
	return nil
}

func (r *roomRepository) NextID(ctx context.Context) (string, error) {
	return nextID(ctx, r.db, seqRoom, "R")
}
