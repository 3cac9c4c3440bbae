package screens

import (
	"context"
	"sync"

	"go.uber.org/atomic"

	"github.com/dmitrijs2005/postfeed/internal/client/forms"
	"github.com/dmitrijs2005/postfeed/internal/client/navigation"
	"github.com/dmitrijs2005/postfeed/internal/client/services"
	"github.com/dmitrijs2005/postfeed/internal/logging"
)

// RegistrationScreen drives the sign-up form.
type RegistrationScreen struct {
	mu   sync.Mutex
	form forms.RegistrationForm
	busy *atomic.Bool

	auth   services.AuthService
	nav    Navigator
	prompt Prompter
	log    logging.Logger
}

func NewRegistrationScreen(auth services.AuthService, nav Navigator, prompt Prompter, log logging.Logger) *RegistrationScreen {
	return &RegistrationScreen{
		busy:   atomic.NewBool(false),
		auth:   auth,
		nav:    nav,
		prompt: prompt,
		log:    log.With("screen", navigation.ScreenRegistration.String()),
	}
}

func (s *RegistrationScreen) apply(a forms.Action) forms.RegistrationForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = s.form.Reduce(a)
	return s.form
}

func (s *RegistrationScreen) State() forms.RegistrationForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

func (s *RegistrationScreen) SetEmail(v string)           { s.apply(forms.EmailChanged{Value: v}) }
func (s *RegistrationScreen) SetPassword(v string)        { s.apply(forms.PasswordChanged{Value: v}) }
func (s *RegistrationScreen) SetConfirmPassword(v string) { s.apply(forms.ConfirmPasswordChanged{Value: v}) }
func (s *RegistrationScreen) TogglePasswordVisibility()   { s.apply(forms.PasswordVisibilityToggled{}) }
func (s *RegistrationScreen) ToggleConfirmVisibility()    { s.apply(forms.ConfirmPasswordVisibilityToggled{}) }

// HaveAccount returns to the login screen without submitting.
func (s *RegistrationScreen) HaveAccount() error {
	return s.nav.Dispatch(navigation.HaveAccountTapped{})
}

// Submit validates the form and creates the account. Every failure is
// reported through an "Error" alert; on success the form is cleared and the
// navigator returns to the login screen.
func (s *RegistrationScreen) Submit(ctx context.Context) error {
	if !s.busy.CompareAndSwap(false, true) {
		return ErrSubmitInProgress
	}
	defer s.busy.Store(false)

	st := s.apply(forms.SubmitStarted{})

	if err := s.auth.Register(ctx, st.Email, st.Password, st.ConfirmPassword); err != nil {
		s.apply(forms.SubmitFailed{Err: err})
		s.log.Info(ctx, "registration failed", "error", err)
		s.prompt.Alert("Error", forms.RegistrationMessage(err))
		return err
	}

	s.apply(forms.SubmitSucceeded{})
	s.prompt.Alert("Registration Successful", "Welcome, "+st.Email+"!")
	return s.nav.Dispatch(navigation.RegistrationSucceeded{})
}
