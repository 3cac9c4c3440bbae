// Package forms models the transient state of the Login and Registration
// screens as plain values. Every change goes through a pure Reduce method, so
// the state can be tested without any terminal or network involved.
package forms

import (
	"errors"

	"github.com/dmitrijs2005/postfeed/internal/common"
)

// Phase is the submit state of a form. A form returns to PhaseIdle after
// every outcome.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
)

// Outcome records how the last submission ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeSuccess
	OutcomeFailed
)

// Action is a single change to a form. The set is closed.
type Action interface {
	isAction()
}

type (
	EmailChanged           struct{ Value string }
	PasswordChanged        struct{ Value string }
	ConfirmPasswordChanged struct{ Value string }

	PasswordVisibilityToggled        struct{}
	ConfirmPasswordVisibilityToggled struct{}

	SubmitStarted   struct{}
	SubmitSucceeded struct{}
	SubmitFailed    struct{ Err error }
)

func (EmailChanged) isAction()                     {}
func (PasswordChanged) isAction()                  {}
func (ConfirmPasswordChanged) isAction()           {}
func (PasswordVisibilityToggled) isAction()        {}
func (ConfirmPasswordVisibilityToggled) isAction() {}
func (SubmitStarted) isAction()                    {}
func (SubmitSucceeded) isAction()                  {}
func (SubmitFailed) isAction()                     {}

// validationFailure extracts the field error, if err is one.
func validationFailure(err error) (*common.ValidationError, bool) {
	var ve *common.ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
