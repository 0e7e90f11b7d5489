package service

import (
	"fmt"

	"ai-clinic-backend/internal/models"
)

type PatientService struct {
	patients      PatientRepository
	appointments  AppointmentRepository
	prescriptions PrescriptionRepository
}

func NewPatientService(
	patients PatientRepository,
	appointments AppointmentRepository,
	prescriptions PrescriptionRepository,
) *PatientService {
	return &PatientService{
		patients:      patients,
		appointments:  appointments,
		prescriptions: prescriptions,
	}
}

// GetProfile returns the patient profile owned by the authenticated account
func (s *PatientService) GetProfile(userID uint) (*models.Patient, error) {
	patient, err := s.patients.FindByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: patient profile not found", ErrNotFound)
	}
	return patient, nil
}

// UpdateContact lets a patient edit their own contact string. Other
// profile fields are staff-managed.
func (s *PatientService) UpdateContact(userID uint, contact string) (*models.Patient, error) {
	patient, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if contact != "" {
		patient.Contact = contact
		if err := s.patients.Update(patient); err != nil {
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
	}

	return patient, nil
}

// AppointmentHistory lists the patient's appointments, newest first
func (s *PatientService) AppointmentHistory(userID uint) ([]models.Appointment, error) {
	patient, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	return s.appointments.ListByPatient(patient.ID)
}

// Prescriptions lists the patient's prescriptions, newest first
func (s *PatientService) Prescriptions(userID uint) ([]models.Prescription, error) {
	patient, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	return s.prescriptions.ListByPatient(patient.ID)
}

// PrescriptionForDownload returns a prescription only when the caller
// owns it, together with the owning profile for PDF rendering
func (s *PatientService) PrescriptionForDownload(userID, prescriptionID uint) (*models.Prescription, *models.Patient, error) {
	patient, err := s.GetProfile(userID)
	if err != nil {
		return nil, nil, err
	}

	prescription, err := s.prescriptions.FindByIDForPatient(prescriptionID, patient.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: prescription not found", ErrNotFound)
	}

	return prescription, patient, nil
}
