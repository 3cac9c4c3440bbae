package navigation

// Event is a navigation trigger. The set is closed: only the types in this
// file implement it.
type Event interface {
	eventName() string
}

// LoginSucceeded is sent by the Login screen after a successful submit.
type LoginSucceeded struct{}

// SignupTapped opens the registration form.
type SignupTapped struct{}

// RegistrationSucceeded is sent by the Registration screen after the account
// was stored.
type RegistrationSucceeded struct{}

// HaveAccountTapped returns from registration without submitting.
type HaveAccountTapped struct{}

// PostSelected opens the detail view of one post.
type PostSelected struct {
	PostID int
}

// LogoutConfirmed is sent only after the user confirmed the logout prompt.
type LogoutConfirmed struct{}

// BackPressed pops the current entry (go back / hardware back).
type BackPressed struct{}

func (LoginSucceeded) eventName() string        { return "LoginSucceeded" }
func (SignupTapped) eventName() string          { return "SignupTapped" }
func (RegistrationSucceeded) eventName() string { return "RegistrationSucceeded" }
func (HaveAccountTapped) eventName() string     { return "HaveAccountTapped" }
func (PostSelected) eventName() string          { return "PostSelected" }
func (LogoutConfirmed) eventName() string       { return "LogoutConfirmed" }
func (BackPressed) eventName() string           { return "BackPressed" }
