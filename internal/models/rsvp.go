package models

import (
	"time"

	"github.com/google/uuid"
)

// RSVP is one response to an event. UserID is a weak reference: nil for
// anonymous responses to public events, and the user's lifetime is
// independent of the row's.
type RSVP struct {
	ID        uuid.UUID  `bson:"_id" json:"id"`
	EventID   uuid.UUID  `bson:"event_id" json:"event_id"`
	UserID    *uuid.UUID `bson:"user_id,omitempty" json:"user_id"`
	Attending bool       `bson:"attending" json:"attending"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
}

type RSVPView struct {
	ID        uuid.UUID  `json:"id"`
	EventID   uuid.UUID  `json:"event_id"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	Attending bool       `json:"attending"`
}

func (r *RSVP) Sanitize() RSVPView {
	return RSVPView{
		ID:        r.ID,
		EventID:   r.EventID,
		UserID:    r.UserID,
		Attending: r.Attending,
	}
}
