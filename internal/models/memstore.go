package models

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemStore is an in-process Store used by unit tests and the
// STORE=memory development mode. A single mutex stands in for the
// transaction discipline a durable store would provide; in particular
// it makes username registration an atomic check-then-insert.
type MemStore struct {
	mu     sync.RWMutex
	users  map[uuid.UUID]*User
	byName map[string]uuid.UUID
	events map[uuid.UUID]*Event
	order  []uuid.UUID
	rsvps  map[uuid.UUID][]*RSVP
}

func NewMemStore() *MemStore {
	return &MemStore{
		users:  make(map[uuid.UUID]*User),
		byName: make(map[string]uuid.UUID),
		events: make(map[uuid.UUID]*Event),
		rsvps:  make(map[uuid.UUID][]*RSVP),
	}
}

func (s *MemStore) Close(ctx context.Context) error {
	return nil
}

func (s *MemStore) CreateUser(ctx context.Context, user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byName[user.Username]; exists {
		return ErrDuplicateUsername
	}
	u := *user
	s.users[u.ID] = &u
	s.byName[u.Username] = u.ID
	return nil
}

func (s *MemStore) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byName[username]
	if !ok {
		return nil, ErrNotFound
	}
	u := *s.users[id]
	return &u, nil
}

func (s *MemStore) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (s *MemStore) CreateEvent(ctx context.Context, event *Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := *event
	s.events[e.ID] = &e
	s.order = append(s.order, e.ID)
	return nil
}

func (s *MemStore) GetEventByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.events[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *e
	return &copied, nil
}

func (s *MemStore) ListEvents(ctx context.Context, offset, limit int) ([]*Event, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := len(s.order)
	if offset >= total {
		return []*Event{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	page := make([]*Event, 0, end-offset)
	for _, id := range s.order[offset:end] {
		e := *s.events[id]
		page = append(page, &e)
	}
	return page, total, nil
}

func (s *MemStore) CreateRSVP(ctx context.Context, rsvp *RSVP) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := *rsvp
	s.rsvps[r.EventID] = append(s.rsvps[r.EventID], &r)
	return nil
}

func (s *MemStore) ListRSVPsForEvent(ctx context.Context, eventID uuid.UUID) ([]*RSVP, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored := s.rsvps[eventID]
	out := make([]*RSVP, 0, len(stored))
	for _, r := range stored {
		copied := *r
		out = append(out, &copied)
	}
	return out, nil
}
