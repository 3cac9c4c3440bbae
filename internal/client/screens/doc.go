// Package screens implements the controllers behind the four PostFeed
// screens. A controller owns its screen's transient state, calls the
// services, reports outcomes through a Prompter and requests navigation by
// dispatching events; it never renders anything itself.
//
// Controllers are created when their screen is mounted and dropped when the
// navigator leaves it, so their state never outlives the screen.
package screens

import (
	"errors"

	"github.com/dmitrijs2005/postfeed/internal/client/navigation"
)

// ErrSubmitInProgress is returned when a submit arrives while a previous one
// is still running; the submit button is disabled during that time.
var ErrSubmitInProgress = errors.New("submit already in progress")

// Navigator is the part of navigation.Navigator the screens use.
type Navigator interface {
	Dispatch(ev navigation.Event) error
}

// Prompter shows blocking messages to the user.
type Prompter interface {
	// Alert shows a message and returns once it has been acknowledged.
	Alert(title, message string)
	// Confirm shows a two-option prompt and reports whether the user picked
	// okLabel.
	Confirm(title, message, cancelLabel, okLabel string) bool
}
