package handler

import (
	"net/http"
	"strconv"
	"time"

	"ai-clinic-backend/internal/service"
	"ai-clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ReceptionistHandler struct {
	receptionistService *service.ReceptionistService
}

func NewReceptionistHandler(receptionistService *service.ReceptionistService) *ReceptionistHandler {
	return &ReceptionistHandler{
		receptionistService: receptionistService,
	}
}

type RegisterPatientRequest struct {
	Name        string              `json:"name" binding:"required"`
	Email       string              `json:"email" binding:"required,email"`
	Password    string              `json:"password" binding:"required,min=6"`
	ProfileData service.ProfileData `json:"profile_data"`
}

// RegisterPatient provisions a walk-in patient account and profile
func (h *ReceptionistHandler) RegisterPatient(c *gin.Context) {
	var req RegisterPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Please add all fields")
		return
	}

	staffID, _ := identity(c)

	patient, err := h.receptionistService.RegisterPatient(staffID, service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Profile:  req.ProfileData,
	})
	if err != nil {
		serviceError(c, err)
		return
	}

	utils.CreatedResponse(c, patient)
}

// UpdatePatient edits a patient's profile fields
func (h *ReceptionistHandler) UpdatePatient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	var req service.UpdatePatientInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	patient, err := h.receptionistService.UpdatePatient(uint(id), req)
	if err != nil {
		serviceError(c, err)
		return
	}

	utils.SuccessResponse(c, patient)
}

// GetPatients lists every registered patient
func (h *ReceptionistHandler) GetPatients(c *gin.Context) {
	patients, err := h.receptionistService.ListPatients()
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.SuccessResponse(c, patients)
}

type BookAppointmentRequest struct {
	PatientID uint      `json:"patient_id" binding:"required"`
	DoctorID  uint      `json:"doctor_id" binding:"required"`
	Date      time.Time `json:"date" binding:"required"`
}

// BookAppointment schedules a visit for a patient
func (h *ReceptionistHandler) BookAppointment(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Please provide patient, doctor and date")
		return
	}

	appointment, err := h.receptionistService.BookAppointment(req.PatientID, req.DoctorID, req.Date)
	if err != nil {
		serviceError(c, err)
		return
	}

	utils.CreatedResponse(c, appointment)
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateAppointmentStatus moves an appointment through its lifecycle
func (h *ReceptionistHandler) UpdateAppointmentStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Status is required")
		return
	}

	appointment, err := h.receptionistService.UpdateAppointmentStatus(uint(id), req.Status)
	if err != nil {
		serviceError(c, err)
		return
	}

	utils.SuccessResponse(c, appointment)
}

// CancelAppointment marks an appointment cancelled
func (h *ReceptionistHandler) CancelAppointment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	appointment, err := h.receptionistService.CancelAppointment(uint(id))
	if err != nil {
		serviceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":     "Appointment cancelled successfully",
		"appointment": appointment,
	})
}

// GetDailySchedule lists the appointments of one day (?date=YYYY-MM-DD,
// today when absent)
func (h *ReceptionistHandler) GetDailySchedule(c *gin.Context) {
	day := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		day = parsed
	}

	appointments, err := h.receptionistService.DailySchedule(day)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.SuccessResponse(c, appointments)
}
