package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gatherly/server/internal/helpers"
	"github.com/gatherly/server/internal/models"
	"github.com/gatherly/server/internal/policy"
)

type EventService struct {
	store models.EventRepo
}

func NewEventService(store models.EventRepo) *EventService {
	return &EventService{
		store: store,
	}
}

// CreateEvent runs the access check, then persists the event owned by
// the actor and returns its sanitized view. The policy decision always
// completes before the insert is attempted.
func (es *EventService) CreateEvent(ctx context.Context, actor helpers.Actor, event *models.Event) (*models.EventView, error) {
	if err := policy.CanCreateEvent(actor, event.RequiresAdmin); err != nil {
		return nil, err
	}
	if err := models.Validate.Struct(event); err != nil {
		return nil, models.ErrValidation
	}

	event.ID = uuid.New()
	creator := actor.UserID
	event.CreatedBy = &creator
	event.CreatedAt = time.Now().UTC()

	if err := es.store.CreateEvent(ctx, event); err != nil {
		return nil, err
	}

	view := event.Sanitize(nil)
	return &view, nil
}

// GetEvent resolves the event, checks visibility against its flags and
// returns the view with derived attendance.
func (es *EventService) GetEvent(ctx context.Context, actor helpers.Actor, id uuid.UUID) (*models.EventView, error) {
	event, err := es.store.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.CanViewEvent(actor, event); err != nil {
		return nil, err
	}

	rsvps, err := es.store.ListRSVPsForEvent(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	view := event.Sanitize(rsvps)
	return &view, nil
}

// ListEvents returns one page of events, keeping only those the actor
// is allowed to see. The total reflects all stored events.
func (es *EventService) ListEvents(ctx context.Context, actor helpers.Actor, page, limit int) ([]models.EventView, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	events, total, err := es.store.ListEvents(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}

	views := make([]models.EventView, 0, len(events))
	for _, event := range events {
		if policy.CanViewEvent(actor, event) != nil {
			continue
		}
		rsvps, err := es.store.ListRSVPsForEvent(ctx, event.ID)
		if err != nil {
			return nil, 0, err
		}
		views = append(views, event.Sanitize(rsvps))
	}
	return views, total, nil
}

// RSVP records a response to an event. The gate is evaluated against
// the resolved event's own flags, and anonymous responses carry no
// user reference.
func (es *EventService) RSVP(ctx context.Context, actor helpers.Actor, eventID uuid.UUID, attending bool) (*models.RSVPView, error) {
	event, err := es.store.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := policy.CanRSVP(actor, event); err != nil {
		return nil, err
	}

	rsvp := &models.RSVP{
		ID:        uuid.New(),
		EventID:   event.ID,
		Attending: attending,
		CreatedAt: time.Now().UTC(),
	}
	if !actor.IsAnonymous() {
		userID := actor.UserID
		rsvp.UserID = &userID
	}

	if err := es.store.CreateRSVP(ctx, rsvp); err != nil {
		return nil, err
	}
	view := rsvp.Sanitize()
	return &view, nil
}
