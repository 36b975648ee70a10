package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/idilsaglam/meetings/internal/tz"
)

// Meeting is the domain model for a scheduled meeting.
// Local has no zone of its own; it is only meaningful together with Zone.
type Meeting struct {
	ID    uuid.UUID
	Title string
	Local time.Time
	Zone  tz.Zone
}

// New assigns a fresh identity. IDs live only in memory.
func New(title string, local time.Time, zone tz.Zone) Meeting {
	return Meeting{ID: uuid.New(), Title: title, Local: local, Zone: zone}
}

// Instant is the absolute point in time the meeting takes place at.
func (m Meeting) Instant() (time.Time, error) {
	return tz.Localize(m.Local, m.Zone)
}

// Times returns the meeting's local time formatted for every zone.
func (m Meeting) Times() (map[tz.Zone]string, error) {
	return tz.Convert(m.Local, m.Zone)
}
