package service

import (
	"errors"
	"fmt"
	"time"

	"ai-clinic-backend/internal/models"
	"ai-clinic-backend/pkg/utils"

	"gorm.io/gorm"
)

type AdminService struct {
	users         UserRepository
	patients      PatientRepository
	doctors       DoctorRepository
	receptionists ReceptionistRepository
	appointments  AppointmentRepository
	prescriptions PrescriptionRepository
	diagnoses     DiagnosisRepository
	registration  *RegistrationService
	activity      ActivityRepository
}

func NewAdminService(
	users UserRepository,
	patients PatientRepository,
	doctors DoctorRepository,
	receptionists ReceptionistRepository,
	appointments AppointmentRepository,
	prescriptions PrescriptionRepository,
	diagnoses DiagnosisRepository,
	registration *RegistrationService,
	activity ActivityRepository,
) *AdminService {
	return &AdminService{
		users:         users,
		patients:      patients,
		doctors:       doctors,
		receptionists: receptionists,
		appointments:  appointments,
		prescriptions: prescriptions,
		diagnoses:     diagnoses,
		registration:  registration,
		activity:      activity,
	}
}

// ListUsers returns users filtered by role; with no filter it returns the
// staff roles (Doctor, Receptionist)
func (s *AdminService) ListUsers(role string) ([]models.User, error) {
	if role != "" {
		return s.users.ListByRoles(role)
	}
	return s.users.ListByRoles(models.RoleDoctor, models.RoleReceptionist)
}

// CreateUser provisions a staff account on behalf of an admin. Only Doctor
// and Receptionist roles may be created here, and no session is issued.
// The two-phase workflow (and its compensation) is the same one public
// registration uses.
func (s *AdminService) CreateUser(actorID uint, in RegisterInput) (*models.User, error) {
	if in.Role != models.RoleDoctor && in.Role != models.RoleReceptionist {
		return nil, fmt.Errorf("%w: can only create Doctor or Receptionist", ErrValidation)
	}

	user, err := s.registration.Provision(in)
	if err != nil {
		return nil, err
	}

	logActivity(s.activity, actorName(s.users, actorID), fmt.Sprintf("Created %s account for %s", user.Role, user.Name), "admin", "CREATE")

	return user, nil
}

// UpdateUserInput carries the optional fields of an admin user update
type UpdateUserInput struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	Role             string `json:"role"`
	SubscriptionPlan string `json:"subscription_plan"`
}

// UpdateUser applies an admin edit. Admin records other than the caller's
// own are untouchable, and role changes are limited to the staff roles.
func (s *AdminService) UpdateUser(actorID, id uint, in UpdateUserInput) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: user not found", ErrNotFound)
	}

	if user.Role == models.RoleAdmin && actorID != user.ID {
		return nil, fmt.Errorf("%w: cannot modify other admins", ErrForbidden)
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if in.Role == models.RoleDoctor || in.Role == models.RoleReceptionist {
		user.Role = in.Role
	}
	if in.SubscriptionPlan != "" {
		user.SubscriptionPlan = in.SubscriptionPlan
	}
	if in.Password != "" {
		hash, err := utils.HashPassword(in.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	logActivity(s.activity, user.Name, "Updated account", "admin", "UPDATE")

	return user, nil
}

// DeleteUser removes a non-admin account together with its role profile.
// The profile goes first so a crash in between never leaves a profile
// without its account.
func (s *AdminService) DeleteUser(actorID, id uint) error {
	user, err := s.users.FindByID(id)
	if err != nil {
		return fmt.Errorf("%w: user not found", ErrNotFound)
	}

	if user.Role == models.RoleAdmin {
		return fmt.Errorf("%w: cannot delete admin users", ErrForbidden)
	}

	switch user.Role {
	case models.RolePatient:
		err = s.patients.DeleteByUserID(id)
	case models.RoleDoctor:
		err = s.doctors.DeleteByUserID(id)
	case models.RoleReceptionist:
		err = s.receptionists.DeleteByUserID(id)
	}
	if err != nil {
		return fmt.Errorf("failed to delete role profile: %w", err)
	}

	if err := s.users.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	logActivity(s.activity, actorName(s.users, actorID), fmt.Sprintf("Deleted %s account %s", user.Role, user.Name), "admin", "DELETE")

	return nil
}

// Analytics is the admin dashboard summary
type Analytics struct {
	TotalPatients       int64 `json:"total_patients"`
	TotalDoctors        int64 `json:"total_doctors"`
	MonthlyAppointments int64 `json:"monthly_appointments"`
	SimulatedRevenue    int64 `json:"simulated_revenue"`
	SystemUsage         struct {
		TotalPrescriptions int64 `json:"total_prescriptions"`
		AIUsageLogs        int64 `json:"ai_usage_logs"`
	} `json:"system_usage"`
}

// GetAnalytics aggregates the clinic-wide counters
func (s *AdminService) GetAnalytics() (*Analytics, error) {
	var a Analytics
	var err error

	if a.TotalPatients, err = s.patients.Count(); err != nil {
		return nil, err
	}
	if a.TotalDoctors, err = s.users.CountByRole(models.RoleDoctor); err != nil {
		return nil, err
	}

	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	if a.MonthlyAppointments, err = s.appointments.CountSince(startOfMonth); err != nil {
		return nil, err
	}

	// Revenue is simulated at a flat rate per completed appointment
	completed, err := s.appointments.CountByStatusSince(models.AppointmentCompleted, startOfMonth)
	if err != nil {
		return nil, err
	}
	a.SimulatedRevenue = completed * 50

	if a.SystemUsage.TotalPrescriptions, err = s.prescriptions.Count(); err != nil {
		return nil, err
	}
	if a.SystemUsage.AIUsageLogs, err = s.diagnoses.CountWithAIResponse(); err != nil {
		return nil, err
	}

	return &a, nil
}
