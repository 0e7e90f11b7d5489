package service

import (
	"fmt"
	"time"

	"ai-clinic-backend/internal/models"
)

type DoctorService struct {
	doctors       DoctorRepository
	patients      PatientRepository
	appointments  AppointmentRepository
	prescriptions PrescriptionRepository
	diagnoses     DiagnosisRepository
	notifications NotificationRepository
}

func NewDoctorService(
	doctors DoctorRepository,
	patients PatientRepository,
	appointments AppointmentRepository,
	prescriptions PrescriptionRepository,
	diagnoses DiagnosisRepository,
	notifications NotificationRepository,
) *DoctorService {
	return &DoctorService{
		doctors:       doctors,
		patients:      patients,
		appointments:  appointments,
		prescriptions: prescriptions,
		diagnoses:     diagnoses,
		notifications: notifications,
	}
}

// GetProfile returns the doctor profile owned by the authenticated account
func (s *DoctorService) GetProfile(userID uint) (*models.Doctor, error) {
	doctor, err := s.doctors.FindByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: doctor profile not found", ErrNotFound)
	}
	return doctor, nil
}

// AssignedAppointments lists the doctor's appointments, earliest first
func (s *DoctorService) AssignedAppointments(userID uint) ([]models.Appointment, error) {
	doctor, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	return s.appointments.ListByDoctor(doctor.ID)
}

// HistoryTimeline is a patient's full record, newest entries first
type HistoryTimeline struct {
	Appointments  []models.Appointment  `json:"appointments"`
	DiagnosisLogs []models.DiagnosisLog `json:"diagnosis_logs"`
	Prescriptions []models.Prescription `json:"prescriptions"`
}

// PatientHistory collects everything recorded for one patient
func (s *DoctorService) PatientHistory(patientID uint) (*models.Patient, *HistoryTimeline, error) {
	patient, err := s.patients.FindByID(patientID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: patient not found", ErrNotFound)
	}

	timeline := &HistoryTimeline{}
	if timeline.Appointments, err = s.appointments.ListByPatient(patientID); err != nil {
		return nil, nil, err
	}
	if timeline.DiagnosisLogs, err = s.diagnoses.ListByPatient(patientID); err != nil {
		return nil, nil, err
	}
	if timeline.Prescriptions, err = s.prescriptions.ListByPatient(patientID); err != nil {
		return nil, nil, err
	}

	return patient, timeline, nil
}

// AddDiagnosis records a diagnosis for a patient, optionally storing the
// AI triage text that informed it
func (s *DoctorService) AddDiagnosis(userID, patientID uint, symptoms, riskLevel, notes, aiResponse string) (*models.DiagnosisLog, error) {
	doctor, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if symptoms == "" {
		return nil, fmt.Errorf("%w: symptoms are required", ErrValidation)
	}
	if riskLevel == "" {
		riskLevel = models.RiskLow
	}
	if !models.ValidRiskLevel(riskLevel) {
		return nil, fmt.Errorf("%w: invalid risk level", ErrValidation)
	}

	if _, err := s.patients.FindByID(patientID); err != nil {
		return nil, fmt.Errorf("%w: patient not found", ErrNotFound)
	}

	diagnosis := &models.DiagnosisLog{
		PatientID:  patientID,
		DoctorID:   doctor.ID,
		Symptoms:   symptoms,
		RiskLevel:  riskLevel,
		Notes:      notes,
		AIResponse: aiResponse,
	}
	if err := s.diagnoses.Create(diagnosis); err != nil {
		return nil, fmt.Errorf("failed to create diagnosis: %w", err)
	}

	return diagnosis, nil
}

// CreatePrescription writes a prescription with at least one medicine,
// preserving submission order, and notifies the patient
func (s *DoctorService) CreatePrescription(userID, patientID uint, medicines []models.Medicine, instructions string) (*models.Prescription, error) {
	doctor, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if len(medicines) == 0 {
		return nil, fmt.Errorf("%w: medicines cannot be empty", ErrValidation)
	}

	patient, err := s.patients.FindByID(patientID)
	if err != nil {
		return nil, fmt.Errorf("%w: patient not found", ErrNotFound)
	}

	prescription := &models.Prescription{
		PatientID:    patientID,
		DoctorID:     doctor.ID,
		Medicines:    medicines,
		Instructions: instructions,
	}
	if err := s.prescriptions.Create(prescription); err != nil {
		return nil, fmt.Errorf("failed to create prescription: %w", err)
	}

	_ = s.notifications.Create(&models.Notification{
		UserID: patient.UserID,
		Title:  "New prescription",
		Desc:   fmt.Sprintf("Dr. %s issued you a prescription", doctor.Name),
		Type:   models.NotificationPrescription,
		Time:   time.Now().Format(time.Kitchen),
	})

	return prescription, nil
}

// DoctorAnalytics is the per-doctor dashboard summary
type DoctorAnalytics struct {
	PatientsThisWeek  int64          `json:"patients_this_week"`
	DiagnosesMade     int64          `json:"diagnoses_made"`
	SatisfactionScore string         `json:"satisfaction_score"`
	WeekdayVolume     []WeekdayCount `json:"weekday_volume"`
}

type WeekdayCount struct {
	Name     string `json:"name"`
	Patients int    `json:"patients"`
}

// GetAnalytics aggregates the doctor's own counters. The satisfaction
// score stays static - nothing in the data model backs it.
func (s *DoctorService) GetAnalytics(userID uint) (*DoctorAnalytics, error) {
	doctor, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	patientsThisWeek, err := s.appointments.CountByDoctorSince(doctor.ID, weekAgo)
	if err != nil {
		return nil, err
	}
	diagnosesMade, err := s.diagnoses.CountByDoctor(doctor.ID)
	if err != nil {
		return nil, err
	}

	analytics := &DoctorAnalytics{
		PatientsThisWeek:  patientsThisWeek,
		DiagnosesMade:     diagnosesMade,
		SatisfactionScore: "4.9/5",
	}

	appointments, err := s.appointments.ListByDoctor(doctor.ID)
	if err != nil {
		return nil, err
	}
	counts := map[time.Weekday]int{}
	for _, a := range appointments {
		if a.Date.After(weekAgo) {
			counts[a.Date.Weekday()]++
		}
	}
	for day := time.Monday; day <= time.Saturday; day++ {
		analytics.WeekdayVolume = append(analytics.WeekdayVolume, WeekdayCount{
			Name:     day.String()[:3],
			Patients: counts[day],
		})
	}

	return analytics, nil
}
