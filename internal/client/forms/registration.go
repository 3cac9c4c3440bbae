package forms

import (
	"errors"

	"github.com/dmitrijs2005/postfeed/internal/common"
)

// RegistrationForm is the state of the Registration screen.
type RegistrationForm struct {
	Email               string
	Password            string
	ConfirmPassword     string
	ShowPassword        bool
	ShowConfirmPassword bool
	Loading             bool

	EmailError           string
	PasswordError        string
	ConfirmPasswordError string

	Phase   Phase
	Outcome Outcome
}

var registrationMessages = map[string]string{
	common.ReasonEmailRequired:           "Please enter an email.",
	common.ReasonInvalidFormat:           "Invalid email format.",
	common.ReasonPasswordRequired:        "Please enter a password.",
	common.ReasonPasswordTooShort:        "Password must be at least 6 characters long.",
	common.ReasonConfirmPasswordRequired: "Please confirm your password.",
	common.ReasonPasswordsDoNotMatch:     "Passwords do not match. Please try again.",
}

// RegistrationMessage returns the text shown for a failed registration.
func RegistrationMessage(err error) string {
	if ve, ok := validationFailure(err); ok {
		if m, ok := registrationMessages[ve.Reason]; ok {
			return m
		}
		return ve.Reason
	}
	if errors.Is(err, common.ErrEmailInUse) {
		return "The email address is already in use. Please use a different email."
	}
	return "Registration failed. Please try again."
}

// Reduce returns the form with a applied.
func (f RegistrationForm) Reduce(a Action) RegistrationForm {
	switch a := a.(type) {
	case EmailChanged:
		f.Email = a.Value
	case PasswordChanged:
		f.Password = a.Value
	case ConfirmPasswordChanged:
		f.ConfirmPassword = a.Value
	case PasswordVisibilityToggled:
		f.ShowPassword = !f.ShowPassword
	case ConfirmPasswordVisibilityToggled:
		f.ShowConfirmPassword = !f.ShowConfirmPassword

	case SubmitStarted:
		f.EmailError, f.PasswordError, f.ConfirmPasswordError = "", "", ""
		f.Loading = true
		f.Phase = PhaseSubmitting

	case SubmitSucceeded:
		f.Email, f.Password, f.ConfirmPassword = "", "", ""
		f.Loading = false
		f.Phase, f.Outcome = PhaseIdle, OutcomeSuccess

	case SubmitFailed:
		f.Loading = false
		f.Phase, f.Outcome = PhaseIdle, OutcomeFailed
		if ve, ok := validationFailure(a.Err); ok {
			msg := RegistrationMessage(ve)
			switch ve.Field {
			case common.FieldEmail:
				f.EmailError = msg
			case common.FieldPassword:
				f.PasswordError = msg
			default:
				f.ConfirmPasswordError = msg
			}
			break
		}
		f.Email, f.Password, f.ConfirmPassword = "", "", ""
	}
	return f
}

// CanSubmit reports whether the submit action is enabled.
func (f RegistrationForm) CanSubmit() bool {
	return !f.Loading
}
