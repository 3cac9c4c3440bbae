package forms

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/postfeed/internal/common"
)

func filledRegistration() RegistrationForm {
	return RegistrationForm{}.
		Reduce(EmailChanged{Value: "a@b.c"}).
		Reduce(PasswordChanged{Value: "secret"}).
		Reduce(ConfirmPasswordChanged{Value: "secret"})
}

func TestRegistrationForm_Visibility(t *testing.T) {
	f := filledRegistration().Reduce(ConfirmPasswordVisibilityToggled{})
	assert.False(t, f.ShowPassword)
	assert.True(t, f.ShowConfirmPassword)
}

func TestRegistrationForm_ValidationFailureSetsFieldError(t *testing.T) {
	tests := []struct {
		err   *common.ValidationError
		check func(RegistrationForm) string
		want  string
	}{
		{
			common.NewValidationError(common.FieldEmail, common.ReasonEmailRequired),
			func(f RegistrationForm) string { return f.EmailError },
			"Please enter an email.",
		},
		{
			common.NewValidationError(common.FieldPassword, common.ReasonPasswordTooShort),
			func(f RegistrationForm) string { return f.PasswordError },
			"Password must be at least 6 characters long.",
		},
		{
			common.NewValidationError(common.FieldConfirmPassword, common.ReasonPasswordsDoNotMatch),
			func(f RegistrationForm) string { return f.ConfirmPasswordError },
			"Passwords do not match. Please try again.",
		},
	}
	for _, tt := range tests {
		f := filledRegistration().Reduce(SubmitStarted{}).Reduce(SubmitFailed{Err: tt.err})
		assert.Equal(t, tt.want, tt.check(f))
		assert.Equal(t, "secret", f.ConfirmPassword, "validation failures keep the inputs")
		assert.False(t, f.Loading)
	}
}

func TestRegistrationForm_SuccessClearsFields(t *testing.T) {
	f := filledRegistration().Reduce(SubmitStarted{}).Reduce(SubmitSucceeded{})
	assert.Equal(t, RegistrationForm{Outcome: OutcomeSuccess}, f)
}

func TestRegistrationForm_AuthFailureClearsFields(t *testing.T) {
	f := filledRegistration().Reduce(SubmitStarted{}).Reduce(SubmitFailed{Err: common.ErrEmailInUse})
	assert.Empty(t, f.Email)
	assert.Empty(t, f.Password)
	assert.Empty(t, f.ConfirmPassword)
	assert.Equal(t, OutcomeFailed, f.Outcome)
}

func TestRegistrationMessage(t *testing.T) {
	assert.Equal(t,
		"The email address is already in use. Please use a different email.",
		RegistrationMessage(fmt.Errorf("register: %w", common.ErrEmailInUse)))
	assert.Equal(t,
		"Registration failed. Please try again.",
		RegistrationMessage(&common.StorageError{Op: "save users", Err: errors.New("io")}))
	assert.Equal(t,
		"Please confirm your password.",
		RegistrationMessage(common.NewValidationError(common.FieldConfirmPassword, common.ReasonConfirmPasswordRequired)))
}
