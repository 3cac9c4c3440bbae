package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/postfeed/internal/common"
)

func (a *App) readSecret(label string, visible bool) (string, error) {
	if visible {
		return GetSimpleText(a.reader, label, a.out)
	}
	pw, err := GetPassword(a.reader, label, a.out)
	defer common.WipeByteArray(pw)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// Login asks for credentials and submits the login form.
func (a *App) Login(ctx context.Context) error {
	s := a.login
	if s == nil {
		return errWrongScreen
	}

	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := a.readSecret("Password", s.State().ShowPassword)
	if err != nil {
		return err
	}

	s.SetEmail(email)
	s.SetPassword(password)

	err = s.Submit(ctx)
	if errors.Is(err, common.ErrValidation) {
		st := s.State()
		a.renderFieldError("email", st.EmailError)
		a.renderFieldError("password", st.PasswordError)
	}
	return err
}

// Signup opens the registration form.
func (a *App) Signup(context.Context) error {
	if a.login == nil {
		return errWrongScreen
	}
	return a.login.Signup()
}

// Register asks for the new account's details and submits them.
func (a *App) Register(ctx context.Context) error {
	s := a.registration
	if s == nil {
		return errWrongScreen
	}

	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := a.readSecret("Password", s.State().ShowPassword)
	if err != nil {
		return err
	}
	confirm, err := a.readSecret("Confirm password", s.State().ShowConfirmPassword)
	if err != nil {
		return err
	}

	s.SetEmail(email)
	s.SetPassword(password)
	s.SetConfirmPassword(confirm)

	return s.Submit(ctx)
}

// HaveAccount goes back to the login form.
func (a *App) HaveAccount(context.Context) error {
	if a.registration == nil {
		return errWrongScreen
	}
	return a.registration.HaveAccount()
}

// Toggle flips whether the password (or, on registration, the confirmation
// when confirm is set) is typed visibly.
func (a *App) Toggle(_ context.Context, confirm bool) error {
	var visible bool
	switch {
	case a.login != nil:
		a.login.TogglePasswordVisibility()
		visible = a.login.State().ShowPassword
	case a.registration != nil && confirm:
		a.registration.ToggleConfirmVisibility()
		visible = a.registration.State().ShowConfirmPassword
	case a.registration != nil:
		a.registration.TogglePasswordVisibility()
		visible = a.registration.State().ShowPassword
	default:
		return errWrongScreen
	}

	state := "hidden"
	if visible {
		state = "visible"
	}
	what := "Password"
	if confirm && a.registration != nil {
		what = "Password confirmation"
	}
	fmt.Fprintf(a.out, "%s input is now %s\n", what, state)
	return nil
}

func (a *App) renderFieldError(field, msg string) {
	if msg != "" {
		fmt.Fprintf(a.out, "  %s: %s\n", field, msg)
	}
}
