package models

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var Validate = validator.New()

type UserRepo interface {
	// CreateUser inserts the user, returning ErrDuplicateUsername if the
	// username is already taken. The uniqueness check and the insert are
	// atomic at the storage layer.
	CreateUser(ctx context.Context, user *User) error
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
}

type EventRepo interface {
	CreateEvent(ctx context.Context, event *Event) error
	GetEventByID(ctx context.Context, id uuid.UUID) (*Event, error)
	// ListEvents returns one page of events plus the total count.
	ListEvents(ctx context.Context, offset, limit int) ([]*Event, int, error)
	CreateRSVP(ctx context.Context, rsvp *RSVP) error
	ListRSVPsForEvent(ctx context.Context, eventID uuid.UUID) ([]*RSVP, error)
}

// Store is the persistence collaborator the services are written
// against. The core never knows whether it is Mongo or in-memory.
type Store interface {
	UserRepo
	EventRepo
	Close(ctx context.Context) error
}
