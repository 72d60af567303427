package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID            uuid.UUID  `bson:"_id" json:"id"`
	Title         string     `bson:"title" json:"title" validate:"required,max=200"`
	Description   string     `bson:"description" json:"description"`
	Date          time.Time  `bson:"date" json:"date" validate:"required"`
	Location      string     `bson:"location" json:"location"`
	Capacity      int        `bson:"capacity" json:"capacity" validate:"gt=0"` // advisory, not enforced against RSVP count
	IsPublic      bool       `bson:"is_public" json:"is_public"`
	RequiresAdmin bool       `bson:"requires_admin" json:"requires_admin"`
	CreatedBy     *uuid.UUID `bson:"created_by,omitempty" json:"created_by"`
	CreatedAt     time.Time  `bson:"created_at" json:"created_at"`
}

// EventView is the outward serialization of an Event plus the two
// attendance fields derived from its RSVP collection.
type EventView struct {
	ID            uuid.UUID   `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Date          time.Time   `json:"date"`
	Location      string      `json:"location"`
	Capacity      int         `json:"capacity"`
	IsPublic      bool        `json:"is_public"`
	RequiresAdmin bool        `json:"requires_admin"`
	CreatedBy     *uuid.UUID  `json:"created_by"`
	RSVPCount     int         `json:"rsvp_count"`
	Attendees     []uuid.UUID `json:"attendees"`
}

// Sanitize builds the public view of the event over its current RSVPs.
// rsvp_count counts every response, including declines and anonymous
// ones; attendees lists only the distinct non-anonymous users whose
// answer is attending. The asymmetry is deliberate. Attendees are
// sorted so the view does not depend on storage order.
func (e *Event) Sanitize(rsvps []*RSVP) EventView {
	attendees := make([]uuid.UUID, 0)
	seen := make(map[uuid.UUID]struct{})
	for _, r := range rsvps {
		if !r.Attending || r.UserID == nil {
			continue
		}
		if _, ok := seen[*r.UserID]; ok {
			continue
		}
		seen[*r.UserID] = struct{}{}
		attendees = append(attendees, *r.UserID)
	}
	sort.Slice(attendees, func(i, j int) bool {
		return attendees[i].String() < attendees[j].String()
	})

	return EventView{
		ID:            e.ID,
		Title:         e.Title,
		Description:   e.Description,
		Date:          e.Date,
		Location:      e.Location,
		Capacity:      e.Capacity,
		IsPublic:      e.IsPublic,
		RequiresAdmin: e.RequiresAdmin,
		CreatedBy:     e.CreatedBy,
		RSVPCount:     len(rsvps),
		Attendees:     attendees,
	}
}
