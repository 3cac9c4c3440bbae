// Package services contains application services for the PostFeed client.
// This file defines the authentication service: credential validation, login
// against the local user store and registration of new accounts.
package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/postfeed/internal/client/models"
	"github.com/dmitrijs2005/postfeed/internal/common"
	"github.com/dmitrijs2005/postfeed/internal/logging"
	"github.com/dmitrijs2005/postfeed/internal/validation"
)

// AuthService defines authentication operations for the screens.
//
// Contract:
//   - Login: validate input, then check credentials. Unknown emails and wrong
//     passwords both fail with common.ErrInvalidCredentials.
//   - Register: validate input, reject taken emails with common.ErrEmailInUse,
//     otherwise persist the new account.
//
// Validation failures are *common.ValidationError and never touch the store.
// Store failures are *common.StorageError.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Register(ctx context.Context, email, password, confirmPassword string) error
}

// UserStore is the persistence contract the auth service needs.
type UserStore interface {
	LoadUsers(ctx context.Context) ([]models.UserRecord, error)
	FindUser(ctx context.Context, email string) (*models.UserRecord, error)
	SaveUsers(ctx context.Context, users []models.UserRecord) error
}

// authService is the AuthService backed by the local user store.
type authService struct {
	store UserStore
	log   logging.Logger
}

// NewAuthService constructs an AuthService bound to the given user store.
func NewAuthService(store UserStore, log logging.Logger) AuthService {
	return &authService{store: store, log: log}
}

// ValidateLogin checks login input in order: email present, email shape,
// password present. It returns the first failure.
func ValidateLogin(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return common.NewValidationError(common.FieldEmail, common.ReasonEmailRequired)
	}
	if !validation.IsValidEmail(email) {
		return common.NewValidationError(common.FieldEmail, common.ReasonInvalidFormat)
	}
	if strings.TrimSpace(password) == "" {
		return common.NewValidationError(common.FieldPassword, common.ReasonPasswordRequired)
	}
	return nil
}

// ValidateRegistration checks registration input in order: email, password,
// confirmation. It returns the first failure.
func ValidateRegistration(email, password, confirmPassword string) error {
	if strings.TrimSpace(email) == "" {
		return common.NewValidationError(common.FieldEmail, common.ReasonEmailRequired)
	}
	if !validation.IsValidEmail(email) {
		return common.NewValidationError(common.FieldEmail, common.ReasonInvalidFormat)
	}
	if strings.TrimSpace(password) == "" {
		return common.NewValidationError(common.FieldPassword, common.ReasonPasswordRequired)
	}
	if !validation.IsValidPassword(password) {
		return common.NewValidationError(common.FieldPassword, common.ReasonPasswordTooShort)
	}
	if strings.TrimSpace(confirmPassword) == "" {
		return common.NewValidationError(common.FieldConfirmPassword, common.ReasonConfirmPasswordRequired)
	}
	if password != confirmPassword {
		return common.NewValidationError(common.FieldConfirmPassword, common.ReasonPasswordsDoNotMatch)
	}
	return nil
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	if err := ValidateLogin(email, password); err != nil {
		return nil, err
	}

	user, err := a.store.FindUser(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if user == nil || subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
		a.log.Info(ctx, "login rejected", "email", email)
		return nil, common.ErrInvalidCredentials
	}

	s := models.NewSession(email)
	a.log.Info(ctx, "login successful", "email", email, "session_id", s.ID)
	return s, nil
}

func (a *authService) Register(ctx context.Context, email, password, confirmPassword string) error {
	if err := ValidateRegistration(email, password, confirmPassword); err != nil {
		return err
	}

	users, err := a.store.LoadUsers(ctx)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	for _, u := range users {
		if u.Email == email {
			a.log.Info(ctx, "registration rejected, email in use", "email", email)
			return common.ErrEmailInUse
		}
	}

	users = append(users, models.UserRecord{Email: email, Password: password})
	if err := a.store.SaveUsers(ctx, users); err != nil {
		return fmt.Errorf("register: %w", err)
	}

	a.log.Info(ctx, "user registered", "email", email, "users", len(users))
	return nil
}
