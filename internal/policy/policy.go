// Package policy holds the pure access decisions. Every function takes
// the acting identity and the target event's own flags; nothing here
// touches storage or transport. Visibility and admin-gating are
// per-event properties, so decisions are made against the target
// event rather than a global role table.
package policy

import (
	"github.com/gatherly/server/internal/helpers"
	"github.com/gatherly/server/internal/models"
)

// CanCreateEvent requires an authenticated actor; creating an
// admin-gated event additionally requires the admin flag.
func CanCreateEvent(actor helpers.Actor, requiresAdmin bool) error {
	if actor.IsAnonymous() {
		return models.ErrUnauthenticated
	}
	if requiresAdmin && !actor.IsAdmin() {
		return models.ErrForbidden
	}
	return nil
}

// CanViewEvent allows anyone, anonymous included, to view a public
// event. Private events need authentication, and admin-gated private
// events need the admin flag.
func CanViewEvent(actor helpers.Actor, event *models.Event) error {
	if event.IsPublic {
		return nil
	}
	if actor.IsAnonymous() {
		return models.ErrUnauthenticated
	}
	if event.RequiresAdmin && !actor.IsAdmin() {
		return models.ErrForbidden
	}
	return nil
}

// CanRSVP mirrors CanViewEvent: whoever may see an event may respond
// to it. The decision is evaluated against the target event's flags.
func CanRSVP(actor helpers.Actor, event *models.Event) error {
	return CanViewEvent(actor, event)
}
