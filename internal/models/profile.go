package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the per-user row the identity provider maintains in the
// profiles table. Created out-of-band on signup; this service only reads it.
type Profile struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
