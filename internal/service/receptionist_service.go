package service

import (
	"errors"
	"fmt"
	"time"

	"ai-clinic-backend/internal/models"

	"gorm.io/gorm"
)

type ReceptionistService struct {
	users         UserRepository
	patients      PatientRepository
	appointments  AppointmentRepository
	notifications NotificationRepository
	registration  *RegistrationService
	activity      ActivityRepository
}

func NewReceptionistService(
	users UserRepository,
	patients PatientRepository,
	appointments AppointmentRepository,
	notifications NotificationRepository,
	registration *RegistrationService,
	activity ActivityRepository,
) *ReceptionistService {
	return &ReceptionistService{
		users:         users,
		patients:      patients,
		appointments:  appointments,
		notifications: notifications,
		registration:  registration,
		activity:      activity,
	}
}

// RegisterPatient provisions a walk-in patient through the shared two-phase
// workflow, recording the staff account that created the profile.
func (s *ReceptionistService) RegisterPatient(staffUserID uint, in RegisterInput) (*models.Patient, error) {
	in.Role = models.RolePatient
	in.CreatedBy = &staffUserID

	user, err := s.registration.Provision(in)
	if err != nil {
		return nil, err
	}

	patient, err := s.patients.FindByUserID(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load created patient: %w", err)
	}

	logActivity(s.activity, actorName(s.users, staffUserID), fmt.Sprintf("Registered patient %s", user.Name), "reception", "CREATE")

	return patient, nil
}

// UpdatePatientInput carries the editable walk-in patient fields
type UpdatePatientInput struct {
	Name    string `json:"name"`
	Age     *int   `json:"age"`
	Gender  string `json:"gender"`
	Contact string `json:"contact"`
}

// UpdatePatient edits a patient profile, keeping the denormalized name on
// the owning account in sync.
func (s *ReceptionistService) UpdatePatient(id uint, in UpdatePatientInput) (*models.Patient, error) {
	patient, err := s.patients.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: patient not found", ErrNotFound)
	}

	if in.Name != "" {
		patient.Name = in.Name
	}
	if in.Age != nil {
		if *in.Age < 0 {
			return nil, fmt.Errorf("%w: age must not be negative", ErrValidation)
		}
		patient.Age = *in.Age
	}
	if in.Gender != "" {
		patient.Gender = in.Gender
	}
	if in.Contact != "" {
		patient.Contact = in.Contact
	}

	if err := s.patients.Update(patient); err != nil {
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}

	if in.Name != "" {
		if user, err := s.users.FindByID(patient.UserID); err == nil {
			user.Name = in.Name
			_ = s.users.Update(user)
		}
	}

	return patient, nil
}

// ListPatients returns every registered patient
func (s *ReceptionistService) ListPatients() ([]models.Patient, error) {
	return s.patients.List()
}

// BookAppointment schedules a visit. The composite unique index on
// (doctor_id, date) rejects a concurrent double-booking; the lookup before
// the insert only produces the friendlier message.
func (s *ReceptionistService) BookAppointment(patientID, doctorID uint, date time.Time) (*models.Appointment, error) {
	if patientID == 0 || doctorID == 0 || date.IsZero() {
		return nil, fmt.Errorf("%w: please provide patient, doctor and date", ErrValidation)
	}

	if existing, err := s.appointments.FindByDoctorAndDate(doctorID, date); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: doctor already has an appointment at this time", ErrConflict)
	}

	appointment := &models.Appointment{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      date,
		Status:    models.AppointmentPending,
	}
	if err := s.appointments.Create(appointment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: doctor already has an appointment at this time", ErrConflict)
		}
		return nil, fmt.Errorf("failed to book appointment: %w", err)
	}

	s.notifyPatient(patientID, "Appointment booked",
		fmt.Sprintf("Your appointment on %s is pending confirmation", date.Format("Jan 2, 2006 3:04 PM")))

	return appointment, nil
}

// UpdateAppointmentStatus moves an appointment through its status enum
func (s *ReceptionistService) UpdateAppointmentStatus(id uint, status string) (*models.Appointment, error) {
	if !models.ValidAppointmentStatus(status) {
		return nil, fmt.Errorf("%w: invalid status", ErrValidation)
	}

	appointment, err := s.appointments.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: appointment not found", ErrNotFound)
	}

	appointment.Status = status
	if err := s.appointments.Update(appointment); err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}

	s.notifyPatient(appointment.PatientID, "Appointment "+status,
		fmt.Sprintf("Your appointment on %s is now %s", appointment.Date.Format("Jan 2, 2006 3:04 PM"), status))

	return appointment, nil
}

// CancelAppointment marks an appointment cancelled; the row is kept for
// the history timeline
func (s *ReceptionistService) CancelAppointment(id uint) (*models.Appointment, error) {
	return s.UpdateAppointmentStatus(id, models.AppointmentCancelled)
}

// DailySchedule returns the appointments of one calendar day, sorted by time
func (s *ReceptionistService) DailySchedule(day time.Time) ([]models.Appointment, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)
	return s.appointments.ListBetween(start, end)
}

func (s *ReceptionistService) notifyPatient(patientID uint, title, desc string) {
	patient, err := s.patients.FindByID(patientID)
	if err != nil {
		return
	}
	_ = s.notifications.Create(&models.Notification{
		UserID: patient.UserID,
		Title:  title,
		Desc:   desc,
		Type:   models.NotificationAppointment,
		Time:   time.Now().Format(time.Kitchen),
	})
}
