package models

import (
	"time"

	"github.com/google/uuid"
)

// Participation links one user to one event they have joined. Uniqueness of
// (event_id, user_id) is left to the store's constraint.
type Participation struct {
	ID       uuid.UUID `db:"id" json:"id"`
	EventID  uuid.UUID `db:"event_id" json:"event_id"`
	UserID   uuid.UUID `db:"user_id" json:"user_id"`
	JoinedAt time.Time `db:"joined_at" json:"joined_at"`
}
