package screens

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/atomic"

	"github.com/dmitrijs2005/postfeed/internal/client/forms"
	"github.com/dmitrijs2005/postfeed/internal/client/models"
	"github.com/dmitrijs2005/postfeed/internal/client/navigation"
	"github.com/dmitrijs2005/postfeed/internal/client/services"
	"github.com/dmitrijs2005/postfeed/internal/common"
	"github.com/dmitrijs2005/postfeed/internal/logging"
)

// LoginScreen drives the login form.
type LoginScreen struct {
	mu   sync.Mutex
	form forms.LoginForm
	busy *atomic.Bool

	auth      services.AuthService
	nav       Navigator
	prompt    Prompter
	log       logging.Logger
	onSession func(*models.Session)
}

// NewLoginScreen mounts a fresh login form. onSession, if not nil, receives
// the session of every successful login before navigation happens.
func NewLoginScreen(auth services.AuthService, nav Navigator, prompt Prompter, log logging.Logger, onSession func(*models.Session)) *LoginScreen {
	return &LoginScreen{
		busy:      atomic.NewBool(false),
		auth:      auth,
		nav:       nav,
		prompt:    prompt,
		log:       log.With("screen", navigation.ScreenLogin.String()),
		onSession: onSession,
	}
}

func (s *LoginScreen) apply(a forms.Action) forms.LoginForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = s.form.Reduce(a)
	return s.form
}

// State returns a snapshot of the form.
func (s *LoginScreen) State() forms.LoginForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

func (s *LoginScreen) SetEmail(v string)         { s.apply(forms.EmailChanged{Value: v}) }
func (s *LoginScreen) SetPassword(v string)      { s.apply(forms.PasswordChanged{Value: v}) }
func (s *LoginScreen) TogglePasswordVisibility() { s.apply(forms.PasswordVisibilityToggled{}) }

// Signup opens the registration screen.
func (s *LoginScreen) Signup() error {
	return s.nav.Dispatch(navigation.SignupTapped{})
}

// Submit validates the form and logs in. Validation failures are reported
// inline through the form; credential and storage failures through an alert.
// On success the form is cleared and the navigator moves to the post list.
func (s *LoginScreen) Submit(ctx context.Context) error {
	if !s.busy.CompareAndSwap(false, true) {
		return ErrSubmitInProgress
	}
	defer s.busy.Store(false)

	st := s.apply(forms.SubmitStarted{})

	session, err := s.auth.Login(ctx, st.Email, st.Password)
	if err != nil {
		s.apply(forms.SubmitFailed{Err: err})
		switch {
		case errors.Is(err, common.ErrValidation):
			s.log.Debug(ctx, "login input rejected", "error", err)
		case errors.Is(err, common.ErrAuth):
			s.prompt.Alert("Login Failed", "Invalid email or password. Please try again.")
		default:
			s.log.Error(ctx, "login failed", "error", err)
			s.prompt.Alert("Login Failed", "Something went wrong. Please try again.")
		}
		return err
	}

	s.apply(forms.SubmitSucceeded{})
	s.prompt.Alert("Login Successful", "Welcome back, "+session.Email+"!")
	if s.onSession != nil {
		s.onSession(session)
	}
	return s.nav.Dispatch(navigation.LoginSucceeded{})
}
