package service

import (
	"errors"
	"strings"
	"testing"

	"ai-clinic-backend/internal/models"
)

type registrationFixture struct {
	users         *fakeUserRepo
	patients      *fakePatientRepo
	doctors       *fakeDoctorRepo
	receptionists *fakeReceptionistRepo
	service       *RegistrationService
}

func newRegistrationFixture() *registrationFixture {
	f := &registrationFixture{
		users:         newFakeUserRepo(),
		patients:      newFakePatientRepo(),
		doctors:       newFakeDoctorRepo(),
		receptionists: newFakeReceptionistRepo(),
	}
	f.service = NewRegistrationService(f.users, f.patients, f.doctors, f.receptionists)
	return f
}

func TestProvisionPatientWithDefaults(t *testing.T) {
	f := newRegistrationFixture()

	user, err := f.service.Provision(RegisterInput{
		Name:     "Jane Roe",
		Email:    "jane@example.com",
		Password: "secret123",
		Role:     models.RolePatient,
	})
	if err != nil {
		t.Fatalf("Provision failed: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected user ID to be assigned")
	}
	if user.PasswordHash == "secret123" {
		t.Fatal("password stored in plaintext")
	}

	patient, err := f.patients.FindByUserID(user.ID)
	if err != nil {
		t.Fatalf("patient profile not created: %v", err)
	}
	if patient.Gender != "Other" {
		t.Errorf("expected default gender Other, got %q", patient.Gender)
	}
	if patient.Contact != "N/A" {
		t.Errorf("expected default contact N/A, got %q", patient.Contact)
	}
	if patient.InsuranceStatus != "None" {
		t.Errorf("expected default insurance None, got %q", patient.InsuranceStatus)
	}
	if patient.CreatedBy != nil {
		t.Errorf("self-registration should not record a creator, got %v", *patient.CreatedBy)
	}
}

func TestProvisionDoctorDefaults(t *testing.T) {
	f := newRegistrationFixture()

	user, err := f.service.Provision(RegisterInput{
		Name:     "Gregory House",
		Email:    "house@example.com",
		Password: "secret123",
		Role:     models.RoleDoctor,
	})
	if err != nil {
		t.Fatalf("Provision failed: %v", err)
	}

	doctor, err := f.doctors.FindByUserID(user.ID)
	if err != nil {
		t.Fatalf("doctor profile not created: %v", err)
	}
	if doctor.Specialization != "General" {
		t.Errorf("expected default specialization General, got %q", doctor.Specialization)
	}
}

func TestProvisionReceptionistGeneratesEmployeeID(t *testing.T) {
	f := newRegistrationFixture()

	user, err := f.service.Provision(RegisterInput{
		Name:     "Front Desk",
		Email:    "desk@example.com",
		Password: "secret123",
		Role:     models.RoleReceptionist,
	})
	if err != nil {
		t.Fatalf("Provision failed: %v", err)
	}

	receptionist, err := f.receptionists.FindByUserID(user.ID)
	if err != nil {
		t.Fatalf("receptionist profile not created: %v", err)
	}
	if !strings.HasPrefix(receptionist.EmployeeID, "EMP-") {
		t.Errorf("expected generated employee ID, got %q", receptionist.EmployeeID)
	}
}

func TestProvisionAdminHasNoProfile(t *testing.T) {
	f := newRegistrationFixture()

	user, err := f.service.Provision(RegisterInput{
		Name:     "Root",
		Email:    "root@example.com",
		Password: "secret123",
		Role:     models.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("Provision failed: %v", err)
	}
	if _, err := f.patients.FindByUserID(user.ID); err == nil {
		t.Error("admin should not own a patient profile")
	}
	if _, err := f.doctors.FindByUserID(user.ID); err == nil {
		t.Error("admin should not own a doctor profile")
	}
}

func TestProvisionValidation(t *testing.T) {
	f := newRegistrationFixture()

	cases := []struct {
		name string
		in   RegisterInput
	}{
		{"missing fields", RegisterInput{Email: "x@example.com", Password: "secret123", Role: models.RolePatient}},
		{"unknown role", RegisterInput{Name: "X", Email: "x@example.com", Password: "secret123", Role: "Janitor"}},
		{"negative age", RegisterInput{Name: "X", Email: "x@example.com", Password: "secret123", Role: models.RolePatient, Profile: ProfileData{Age: -1}}},
		{"negative fee", RegisterInput{Name: "X", Email: "x@example.com", Password: "secret123", Role: models.RoleDoctor, Profile: ProfileData{ConsultationFee: -10}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.service.Provision(tc.in)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}

	if len(f.users.users) != 0 {
		t.Errorf("rejected inputs must not leave accounts behind, found %d", len(f.users.users))
	}
}

func TestProvisionProfileFailureRollsBackUser(t *testing.T) {
	f := newRegistrationFixture()
	f.patients.createErr = errors.New("disk full")

	_, err := f.service.Provision(RegisterInput{
		Name:     "Jane Roe",
		Email:    "jane@example.com",
		Password: "secret123",
		Role:     models.RolePatient,
	})

	var provErr *ProfileProvisioningError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected ProfileProvisioningError, got %v", err)
	}
	if len(f.users.users) != 0 {
		t.Fatalf("compensating delete did not run, %d accounts remain", len(f.users.users))
	}

	// A retry with the same email must succeed once the profile store
	// recovers.
	f.patients.createErr = nil
	if _, err := f.service.Provision(RegisterInput{
		Name:     "Jane Roe",
		Email:    "jane@example.com",
		Password: "secret123",
		Role:     models.RolePatient,
	}); err != nil {
		t.Fatalf("retry after rollback failed: %v", err)
	}
}

func TestProvisionCompensationIsRetried(t *testing.T) {
	f := newRegistrationFixture()
	f.patients.createErr = errors.New("disk full")
	f.users.deleteFailures = 2

	_, err := f.service.Provision(RegisterInput{
		Name:     "Jane Roe",
		Email:    "jane@example.com",
		Password: "secret123",
		Role:     models.RolePatient,
	})

	var provErr *ProfileProvisioningError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected ProfileProvisioningError, got %v", err)
	}
	if f.users.deleteCalls != 3 {
		t.Errorf("expected 3 delete attempts, got %d", f.users.deleteCalls)
	}
	if len(f.users.users) != 0 {
		t.Error("third delete attempt should have succeeded")
	}
}

func TestProvisionCompensationExhausted(t *testing.T) {
	f := newRegistrationFixture()
	f.patients.createErr = errors.New("disk full")
	f.users.deleteFailures = 3

	_, err := f.service.Provision(RegisterInput{
		Name:     "Jane Roe",
		Email:    "jane@example.com",
		Password: "secret123",
		Role:     models.RolePatient,
	})

	var provErr *ProfileProvisioningError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected ProfileProvisioningError, got %v", err)
	}
	if f.users.deleteCalls != 3 {
		t.Errorf("expected exactly 3 delete attempts, got %d", f.users.deleteCalls)
	}
	// The orphan stays behind for manual cleanup; the caller still sees
	// the provisioning failure.
	if len(f.users.users) != 1 {
		t.Errorf("expected the orphaned account to remain, found %d", len(f.users.users))
	}
}

func TestProvisionDuplicateEmail(t *testing.T) {
	f := newRegistrationFixture()

	first, err := f.service.Provision(RegisterInput{
		Name:     "Jane Roe",
		Email:    "jane@example.com",
		Password: "secret123",
		Role:     models.RolePatient,
	})
	if err != nil {
		t.Fatalf("first Provision failed: %v", err)
	}

	_, err = f.service.Provision(RegisterInput{
		Name:     "Impostor",
		Email:    "jane@example.com",
		Password: "different",
		Role:     models.RolePatient,
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// The original account must be untouched
	kept, err := f.users.FindByID(first.ID)
	if err != nil {
		t.Fatalf("original account disappeared: %v", err)
	}
	if kept.Name != "Jane Roe" {
		t.Errorf("original account was altered: %+v", kept)
	}
	if len(f.users.users) != 1 {
		t.Errorf("expected exactly one account, found %d", len(f.users.users))
	}
}
