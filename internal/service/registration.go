package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"ai-clinic-backend/internal/models"
	"ai-clinic-backend/pkg/utils"

	"gorm.io/gorm"
)

// ProfileData carries the role-specific fields submitted alongside a
// registration. Only the fields matching the requested role are read;
// everything optional gets a default.
type ProfileData struct {
	Age              int     `json:"age"`
	Gender           string  `json:"gender"`
	Contact          string  `json:"contact"`
	Address          string  `json:"address"`
	InsuranceStatus  string  `json:"insurance_status"`
	BloodGroup       string  `json:"blood_group"`
	EmergencyContact string  `json:"emergency_contact"`
	Specialization   string  `json:"specialization"`
	Experience       int     `json:"experience"`
	ConsultationFee  float64 `json:"consultation_fee"`
	About            string  `json:"about"`
	EmployeeID       string  `json:"employee_id"`
}

// RegisterInput is the full input of the provisioning workflow.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Profile  ProfileData
	// CreatedBy is the staff account provisioning on someone's behalf,
	// nil for self-registration.
	CreatedBy *uint
}

// RegistrationService runs the two-phase account + role-profile creation
// with a compensating delete. Every creation path (public registration,
// admin staff provisioning, receptionist walk-in registration) goes
// through Provision so the "no account without its profile" invariant
// holds on every failure path.
type RegistrationService struct {
	users         UserRepository
	patients      PatientRepository
	doctors       DoctorRepository
	receptionists ReceptionistRepository
}

func NewRegistrationService(
	users UserRepository,
	patients PatientRepository,
	doctors DoctorRepository,
	receptionists ReceptionistRepository,
) *RegistrationService {
	return &RegistrationService{
		users:         users,
		patients:      patients,
		doctors:       doctors,
		receptionists: receptionists,
	}
}

// Provision creates exactly one user and exactly one matching role profile,
// or neither.
func (s *RegistrationService) Provision(in RegisterInput) (*models.User, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.Role == "" {
		return nil, fmt.Errorf("%w: please add all fields", ErrValidation)
	}
	if !models.ValidRole(in.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, in.Role)
	}

	// Friendly pre-check; the unique index on users.email is the real
	// guard against concurrent registrations.
	if existing, err := s.users.FindByEmail(in.Email); err == nil && existing != nil {
		return nil, ErrConflict
	}

	passwordHash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Phase 1: create the account
	user := &models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: passwordHash,
		Role:         in.Role,
	}
	if err := s.users.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Phase 2: create the role profile. On failure the account from
	// phase 1 is deleted so the caller can try again.
	if err := s.createProfile(user, in.Profile, in.CreatedBy); err != nil {
		s.compensate(user.ID)
		return nil, &ProfileProvisioningError{Cause: err}
	}

	return user, nil
}

func (s *RegistrationService) createProfile(user *models.User, profile ProfileData, createdBy *uint) error {
	switch user.Role {
	case models.RolePatient:
		if profile.Age < 0 {
			return fmt.Errorf("%w: age must not be negative", ErrValidation)
		}
		return s.patients.Create(&models.Patient{
			UserID:           user.ID,
			Name:             user.Name,
			Age:              profile.Age,
			Gender:           defaultString(profile.Gender, "Other"),
			Contact:          defaultString(profile.Contact, "N/A"),
			Address:          defaultString(profile.Address, "N/A"),
			InsuranceStatus:  defaultString(profile.InsuranceStatus, "None"),
			BloodGroup:       profile.BloodGroup,
			EmergencyContact: profile.EmergencyContact,
			CreatedBy:        createdBy,
		})
	case models.RoleDoctor:
		if profile.Experience < 0 || profile.ConsultationFee < 0 {
			return fmt.Errorf("%w: experience and consultation fee must not be negative", ErrValidation)
		}
		return s.doctors.Create(&models.Doctor{
			UserID:          user.ID,
			Name:            user.Name,
			Specialization:  defaultString(profile.Specialization, "General"),
			Experience:      profile.Experience,
			ConsultationFee: profile.ConsultationFee,
			Contact:         defaultString(profile.Contact, "N/A"),
			About:           profile.About,
			Gender:          defaultString(profile.Gender, "Other"),
			Age:             profile.Age,
		})
	case models.RoleReceptionist:
		employeeID := profile.EmployeeID
		if employeeID == "" {
			employeeID = fmt.Sprintf("EMP-%d", time.Now().UnixMilli())
		}
		return s.receptionists.Create(&models.Receptionist{
			UserID:     user.ID,
			Name:       user.Name,
			Contact:    defaultString(profile.Contact, "N/A"),
			EmployeeID: employeeID,
		})
	case models.RoleAdmin:
		// Admins carry no role profile
		return nil
	}
	return fmt.Errorf("%w: unknown role %q", ErrValidation, user.Role)
}

const compensateAttempts = 3

// compensate deletes the phase-1 account after a phase-2 failure. The
// delete is idempotent, so it is retried; if it still fails the orphaned
// account is alert-logged rather than silently left behind.
func (s *RegistrationService) compensate(userID uint) {
	var err error
	for attempt := 1; attempt <= compensateAttempts; attempt++ {
		if err = s.users.Delete(userID); err == nil {
			return
		}
		log.Printf("Compensating delete of user %d failed (attempt %d/%d): %v", userID, attempt, compensateAttempts, err)
	}
	log.Printf("ALERT: user %d left without a role profile, manual cleanup required: %v", userID, err)
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
