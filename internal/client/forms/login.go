package forms

import "github.com/dmitrijs2005/postfeed/internal/common"

// LoginForm is the state of the Login screen.
type LoginForm struct {
	Email        string
	Password     string
	ShowPassword bool
	Loading      bool

	EmailError    string
	PasswordError string

	Phase   Phase
	Outcome Outcome
}

var loginMessages = map[string]string{
	common.ReasonEmailRequired:    "Email is required.",
	common.ReasonInvalidFormat:    "Invalid email format.",
	common.ReasonPasswordRequired: "Password is required.",
}

// LoginMessage returns the inline text shown for a login validation failure.
func LoginMessage(ve *common.ValidationError) string {
	if m, ok := loginMessages[ve.Reason]; ok {
		return m
	}
	return ve.Reason
}

// Reduce returns the form with a applied.
func (f LoginForm) Reduce(a Action) LoginForm {
	switch a := a.(type) {
	case EmailChanged:
		f.Email = a.Value
	case PasswordChanged:
		f.Password = a.Value
	case PasswordVisibilityToggled:
		f.ShowPassword = !f.ShowPassword

	case SubmitStarted:
		f.EmailError, f.PasswordError = "", ""
		f.Loading = true
		f.Phase = PhaseSubmitting

	case SubmitSucceeded:
		f.Email, f.Password = "", ""
		f.Loading = false
		f.Phase, f.Outcome = PhaseIdle, OutcomeSuccess

	case SubmitFailed:
		f.Loading = false
		f.Phase, f.Outcome = PhaseIdle, OutcomeFailed
		if ve, ok := validationFailure(a.Err); ok {
			switch ve.Field {
			case common.FieldEmail:
				f.EmailError = LoginMessage(ve)
			default:
				f.PasswordError = LoginMessage(ve)
			}
			break
		}
		// credential and infrastructure failures reset the inputs
		f.Email, f.Password = "", ""
	}
	return f
}

// CanSubmit reports whether the submit action is enabled.
func (f LoginForm) CanSubmit() bool {
	return !f.Loading
}
