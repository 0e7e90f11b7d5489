package service

import (
	"errors"
	"fmt"
)

// Sentinel errors translated to HTTP statuses at the handler boundary.
var (
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
)

// ProfileProvisioningError reports a phase-2 failure of the registration
// workflow after the account row was compensated away.
type ProfileProvisioningError struct {
	Cause error
}

func (e *ProfileProvisioningError) Error() string {
	return fmt.Sprintf("profile creation failed: %v", e.Cause)
}

func (e *ProfileProvisioningError) Unwrap() error {
	return e.Cause
}
