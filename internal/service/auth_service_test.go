package service

import (
	"errors"
	"testing"

	"ai-clinic-backend/internal/models"
	"ai-clinic-backend/pkg/utils"
)

func newAuthFixture() (*AuthService, *registrationFixture, *fakeActivityRepo) {
	reg := newRegistrationFixture()
	activity := newFakeActivityRepo()
	return NewAuthService(reg.users, reg.service, activity), reg, activity
}

func TestRegisterIssuesBoundToken(t *testing.T) {
	auth, _, activity := newAuthFixture()

	resp, err := auth.Register(RegisterInput{
		Name:     "Jane Roe",
		Email:    "jane@example.com",
		Password: "secret123",
		Role:     models.RolePatient,
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	claims, err := utils.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.UserID != resp.ID {
		t.Errorf("token bound to user %d, account is %d", claims.UserID, resp.ID)
	}
	if claims.Role != models.RolePatient {
		t.Errorf("token carries role %q, expected Patient", claims.Role)
	}

	if len(activity.entries) == 0 {
		t.Error("registration should leave an activity entry")
	}
}

func TestRegisterPropagatesProvisioningFailure(t *testing.T) {
	auth, reg, _ := newAuthFixture()
	reg.patients.createErr = errors.New("disk full")

	_, err := auth.Register(RegisterInput{
		Name:     "Jane Roe",
		Email:    "jane@example.com",
		Password: "secret123",
		Role:     models.RolePatient,
	})

	var provErr *ProfileProvisioningError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected ProfileProvisioningError, got %v", err)
	}
}

func TestLoginSucceedsWithCorrectPassword(t *testing.T) {
	auth, _, _ := newAuthFixture()

	if _, err := auth.Register(RegisterInput{
		Name:     "Jane Roe",
		Email:    "jane@example.com",
		Password: "secret123",
		Role:     models.RolePatient,
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	resp, err := auth.Login("jane@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Email != "jane@example.com" || resp.Role != models.RolePatient {
		t.Errorf("unexpected login projection: %+v", resp)
	}
	if _, err := utils.ValidateToken(resp.Token); err != nil {
		t.Errorf("login token does not validate: %v", err)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	auth, _, _ := newAuthFixture()

	if _, err := auth.Register(RegisterInput{
		Name:     "Jane Roe",
		Email:    "jane@example.com",
		Password: "secret123",
		Role:     models.RolePatient,
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, wrongPassword := auth.Login("jane@example.com", "not-it")
	_, unknownEmail := auth.Login("nobody@example.com", "secret123")

	if !errors.Is(wrongPassword, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassword)
	}
	if !errors.Is(unknownEmail, ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownEmail)
	}
	// A caller probing for registered emails must not learn anything from
	// the error text.
	if wrongPassword.Error() != unknownEmail.Error() {
		t.Errorf("error messages differ: %q vs %q", wrongPassword, unknownEmail)
	}
}
