package helpers

import "github.com/google/uuid"

// Actor is the resolved identity behind a request. The zero value is
// the anonymous actor: no credential was supplied at all. An invalid
// credential never resolves to an Actor; it is rejected upstream.
type Actor struct {
	UserID        uuid.UUID
	Username      string
	Admin         bool
	Authenticated bool
}

func Anonymous() Actor {
	return Actor{}
}

func (a Actor) IsAnonymous() bool {
	return !a.Authenticated
}

func (a Actor) IsAdmin() bool {
	return a.Authenticated && a.Admin
}
