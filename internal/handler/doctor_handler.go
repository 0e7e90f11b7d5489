package handler

import (
	"net/http"
	"strconv"

	"ai-clinic-backend/internal/models"
	"ai-clinic-backend/internal/service"
	"ai-clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	doctorService *service.DoctorService
}

func NewDoctorHandler(doctorService *service.DoctorService) *DoctorHandler {
	return &DoctorHandler{
		doctorService: doctorService,
	}
}

// GetProfile returns the authenticated doctor's own profile
func (h *DoctorHandler) GetProfile(c *gin.Context) {
	userID, _ := identity(c)

	doctor, err := h.doctorService.GetProfile(userID)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.SuccessResponse(c, doctor)
}

// GetAppointments lists the doctor's assigned appointments
func (h *DoctorHandler) GetAppointments(c *gin.Context) {
	userID, _ := identity(c)

	appointments, err := h.doctorService.AssignedAppointments(userID)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.SuccessResponse(c, appointments)
}

// GetPatientHistory returns a patient's full medical timeline
func (h *DoctorHandler) GetPatientHistory(c *gin.Context) {
	patientID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	patient, timeline, err := h.doctorService.PatientHistory(uint(patientID))
	if err != nil {
		serviceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"patient":  patient,
		"timeline": timeline,
	})
}

type AddDiagnosisRequest struct {
	Symptoms   string `json:"symptoms" binding:"required"`
	RiskLevel  string `json:"risk_level"`
	Notes      string `json:"notes"`
	AIResponse string `json:"ai_response"`
}

// AddDiagnosis records a diagnosis for a patient
func (h *DoctorHandler) AddDiagnosis(c *gin.Context) {
	patientID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	var req AddDiagnosisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Symptoms are required")
		return
	}

	userID, _ := identity(c)

	diagnosis, err := h.doctorService.AddDiagnosis(userID, uint(patientID), req.Symptoms, req.RiskLevel, req.Notes, req.AIResponse)
	if err != nil {
		serviceError(c, err)
		return
	}

	utils.CreatedResponse(c, diagnosis)
}

type CreatePrescriptionRequest struct {
	Medicines    []models.Medicine `json:"medicines"`
	Instructions string            `json:"instructions"`
}

// CreatePrescription writes a prescription for a patient
func (h *DoctorHandler) CreatePrescription(c *gin.Context) {
	patientID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	var req CreatePrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, _ := identity(c)

	prescription, err := h.doctorService.CreatePrescription(userID, uint(patientID), req.Medicines, req.Instructions)
	if err != nil {
		serviceError(c, err)
		return
	}

	utils.CreatedResponse(c, prescription)
}

// GetAnalytics returns the doctor's own dashboard counters
func (h *DoctorHandler) GetAnalytics(c *gin.Context) {
	userID, _ := identity(c)

	analytics, err := h.doctorService.GetAnalytics(userID)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.SuccessResponse(c, analytics)
}
