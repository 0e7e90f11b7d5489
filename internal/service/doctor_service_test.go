package service

import (
	"errors"
	"testing"
	"time"

	"ai-clinic-backend/internal/models"
)

type doctorFixture struct {
	doctors       *fakeDoctorRepo
	patients      *fakePatientRepo
	appointments  *fakeAppointmentRepo
	prescriptions *fakePrescriptionRepo
	diagnoses     *fakeDiagnosisRepo
	notifications *fakeNotificationRepo
	service       *DoctorService

	doctorUserID uint
	doctor       *models.Doctor
	patient      *models.Patient
}

func newDoctorFixture(t *testing.T) *doctorFixture {
	t.Helper()

	f := &doctorFixture{
		doctors:       newFakeDoctorRepo(),
		patients:      newFakePatientRepo(),
		appointments:  newFakeAppointmentRepo(),
		prescriptions: newFakePrescriptionRepo(),
		diagnoses:     newFakeDiagnosisRepo(),
		notifications: newFakeNotificationRepo(),
		doctorUserID:  10,
	}
	f.service = NewDoctorService(
		f.doctors,
		f.patients,
		f.appointments,
		f.prescriptions,
		f.diagnoses,
		f.notifications,
	)

	doctor := &models.Doctor{UserID: f.doctorUserID, Name: "Gregory House", Specialization: "Diagnostics"}
	if err := f.doctors.Create(doctor); err != nil {
		t.Fatal(err)
	}
	f.doctor = doctor

	patient := &models.Patient{UserID: 20, Name: "Jane Roe", Age: 34}
	if err := f.patients.Create(patient); err != nil {
		t.Fatal(err)
	}
	f.patient = patient

	return f
}

func TestCreatePrescriptionRejectsEmptyMedicines(t *testing.T) {
	f := newDoctorFixture(t)

	_, err := f.service.CreatePrescription(f.doctorUserID, f.patient.ID, nil, "rest")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(f.prescriptions.prescriptions) != 0 {
		t.Error("rejected prescription must not be stored")
	}
}

func TestCreatePrescriptionKeepsMedicineOrder(t *testing.T) {
	f := newDoctorFixture(t)

	medicines := []models.Medicine{
		{Name: "Paracetamol", Dosage: "500mg twice daily", Duration: "5 days"},
		{Name: "Amoxicillin", Dosage: "250mg thrice daily", Duration: "7 days"},
		{Name: "Vitamin D", Dosage: "1000 IU daily"},
	}

	prescription, err := f.service.CreatePrescription(f.doctorUserID, f.patient.ID, medicines, "with food")
	if err != nil {
		t.Fatalf("CreatePrescription failed: %v", err)
	}

	stored, err := f.prescriptions.FindByIDForPatient(prescription.ID, f.patient.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(stored.Medicines) != 3 {
		t.Fatalf("expected 3 medicines, got %d", len(stored.Medicines))
	}
	for i, m := range medicines {
		if stored.Medicines[i].Name != m.Name {
			t.Errorf("medicine %d out of order: got %q, want %q", i, stored.Medicines[i].Name, m.Name)
		}
	}

	notifications, _ := f.notifications.ListByUser(f.patient.UserID)
	if len(notifications) != 1 || notifications[0].Type != models.NotificationPrescription {
		t.Errorf("patient should get one prescription notification, got %+v", notifications)
	}
}

func TestAddDiagnosis(t *testing.T) {
	f := newDoctorFixture(t)

	if _, err := f.service.AddDiagnosis(f.doctorUserID, f.patient.ID, "", "", "", ""); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for empty symptoms, got %v", err)
	}
	if _, err := f.service.AddDiagnosis(f.doctorUserID, f.patient.ID, "fever", "Apocalyptic", "", ""); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown risk level, got %v", err)
	}

	diagnosis, err := f.service.AddDiagnosis(f.doctorUserID, f.patient.ID, "fever, cough", "", "viral", "")
	if err != nil {
		t.Fatalf("AddDiagnosis failed: %v", err)
	}
	if diagnosis.RiskLevel != models.RiskLow {
		t.Errorf("risk level should default to Low, got %q", diagnosis.RiskLevel)
	}
	if diagnosis.DoctorID != f.doctor.ID {
		t.Errorf("diagnosis bound to doctor %d, expected %d", diagnosis.DoctorID, f.doctor.ID)
	}
}

func TestAddDiagnosisUnknownPatient(t *testing.T) {
	f := newDoctorFixture(t)

	if _, err := f.service.AddDiagnosis(f.doctorUserID, 999, "fever", "", "", ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPatientHistory(t *testing.T) {
	f := newDoctorFixture(t)

	if err := f.appointments.Create(&models.Appointment{
		PatientID: f.patient.ID,
		DoctorID:  f.doctor.ID,
		Date:      time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		Status:    models.AppointmentCompleted,
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.service.AddDiagnosis(f.doctorUserID, f.patient.ID, "fever", "", "", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := f.service.CreatePrescription(f.doctorUserID, f.patient.ID,
		[]models.Medicine{{Name: "Paracetamol", Dosage: "500mg"}}, ""); err != nil {
		t.Fatal(err)
	}

	patient, timeline, err := f.service.PatientHistory(f.patient.ID)
	if err != nil {
		t.Fatalf("PatientHistory failed: %v", err)
	}
	if patient.ID != f.patient.ID {
		t.Errorf("wrong patient returned: %d", patient.ID)
	}
	if len(timeline.Appointments) != 1 || len(timeline.DiagnosisLogs) != 1 || len(timeline.Prescriptions) != 1 {
		t.Errorf("incomplete timeline: %d appointments, %d diagnoses, %d prescriptions",
			len(timeline.Appointments), len(timeline.DiagnosisLogs), len(timeline.Prescriptions))
	}

	if _, _, err := f.service.PatientHistory(999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown patient, got %v", err)
	}
}

func TestDoctorAnalytics(t *testing.T) {
	f := newDoctorFixture(t)

	recent := time.Now().Add(-24 * time.Hour)
	old := time.Now().AddDate(0, 0, -30)

	for _, date := range []time.Time{recent, recent.Add(time.Hour), old} {
		if err := f.appointments.Create(&models.Appointment{
			PatientID: f.patient.ID,
			DoctorID:  f.doctor.ID,
			Date:      date,
			Status:    models.AppointmentCompleted,
		}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := f.service.AddDiagnosis(f.doctorUserID, f.patient.ID, "fever", "", "", ""); err != nil {
		t.Fatal(err)
	}

	analytics, err := f.service.GetAnalytics(f.doctorUserID)
	if err != nil {
		t.Fatalf("GetAnalytics failed: %v", err)
	}
	if analytics.PatientsThisWeek != 2 {
		t.Errorf("expected 2 patients this week, got %d", analytics.PatientsThisWeek)
	}
	if analytics.DiagnosesMade != 1 {
		t.Errorf("expected 1 diagnosis, got %d", analytics.DiagnosesMade)
	}
	if len(analytics.WeekdayVolume) != 6 {
		t.Errorf("expected Mon-Sat volume buckets, got %d", len(analytics.WeekdayVolume))
	}
}

func TestDoctorProfileRequired(t *testing.T) {
	f := newDoctorFixture(t)

	if _, err := f.service.GetProfile(999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for account without a doctor profile, got %v", err)
	}
	if _, err := f.service.AssignedAppointments(999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
