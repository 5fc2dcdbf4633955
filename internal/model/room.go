package model

// Room is a bookable ward room. Occupancy is never stored: it is derived
// from the active inpatients referencing the room.
type Room struct {
	ID        string  `db:"id" json:"id"`
	Type      string  `db:"type" json:"type"`
	Capacity  int     `db:"capacity" json:"capacity"`
	DailyRate float64 `db:"daily_rate" json:"daily_rate"`
}

// RoomStatus is a room with its derived occupancy at read time.
type RoomStatus struct {
	Room
	Occupied int `json:"occupied"`
}

// HasSpace reports whether another admission would fit given the derived
// occupancy.
func (r *RoomStatus) HasSpace() bool {
	return r.Occupied < r.Capacity
}

type CreateRoomRequest struct {
	Type      string  `json:"type" binding:"required"`
	Capacity  int     `json:"capacity" binding:"required" validate:"gt=0"`
	DailyRate float64 `json:"daily_rate" validate:"gte=0"`
}
