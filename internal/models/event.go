package models

import (
	"time"

	"github.com/google/uuid"
)

// Event categories accepted by the events table check constraint.
const (
	CategoryTech      = "Tech"
	CategoryMusic     = "Music"
	CategorySports    = "Sports"
	CategoryArt       = "Art"
	CategoryBusiness  = "Business"
	CategoryFood      = "Food"
	CategoryHealth    = "Health"
	CategoryEducation = "Education"
	CategoryOther     = "Other"
)

// Categories lists every valid event category, in display order.
var Categories = []string{
	CategoryTech,
	CategoryMusic,
	CategorySports,
	CategoryArt,
	CategoryBusiness,
	CategoryFood,
	CategoryHealth,
	CategoryEducation,
	CategoryOther,
}

type Event struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Title       string    `db:"title" json:"title" validate:"required"`
	Description string    `db:"description" json:"description,omitempty"`
	Location    string    `db:"location" json:"location" validate:"required"` // e.g., "San Francisco, CA"

	// Latitude/Longitude are set only when the creator pinned the event on
	// the map. (0,0) is a real coordinate, so absence is a nil pointer, not
	// a zero value.
	Latitude  *float64 `db:"latitude" json:"latitude,omitempty"`
	Longitude *float64 `db:"longitude" json:"longitude,omitempty"`

	Category        string    `db:"category" json:"category" validate:"required,oneof=Tech Music Sports Art Business Food Health Education Other"`
	Date            time.Time `db:"date" json:"date"`
	MaxParticipants int       `db:"max_participants" json:"max_participants" validate:"required,gte=1"`
	CreatedBy       uuid.UUID `db:"created_by" json:"created_by"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// Coordinates returns the event's position, or nil when the creator never
// set one.
func (e *Event) Coordinates() *Coordinates {
	if e.Latitude == nil || e.Longitude == nil {
		return nil
	}
	return &Coordinates{Latitude: *e.Latitude, Longitude: *e.Longitude}
}
