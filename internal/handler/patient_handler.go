package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"ai-clinic-backend/internal/pdf"
	"ai-clinic-backend/internal/service"
	"ai-clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	patientService *service.PatientService
}

func NewPatientHandler(patientService *service.PatientService) *PatientHandler {
	return &PatientHandler{
		patientService: patientService,
	}
}

// GetProfile returns the authenticated patient's own profile
func (h *PatientHandler) GetProfile(c *gin.Context) {
	userID, _ := identity(c)

	patient, err := h.patientService.GetProfile(userID)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.SuccessResponse(c, patient)
}

type UpdateProfileRequest struct {
	Contact string `json:"contact"`
}

// UpdateProfile lets the patient edit their contact string
func (h *PatientHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, _ := identity(c)

	patient, err := h.patientService.UpdateContact(userID, req.Contact)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.SuccessResponse(c, patient)
}

// GetAppointments lists the patient's appointment history
func (h *PatientHandler) GetAppointments(c *gin.Context) {
	userID, _ := identity(c)

	appointments, err := h.patientService.AppointmentHistory(userID)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.SuccessResponse(c, appointments)
}

// GetPrescriptions lists the patient's prescriptions
func (h *PatientHandler) GetPrescriptions(c *gin.Context) {
	userID, _ := identity(c)

	prescriptions, err := h.patientService.Prescriptions(userID)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.SuccessResponse(c, prescriptions)
}

// DownloadPrescription streams one owned prescription as a PDF
func (h *PatientHandler) DownloadPrescription(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid prescription ID")
		return
	}

	userID, _ := identity(c)

	prescription, patient, err := h.patientService.PrescriptionForDownload(userID, uint(id))
	if err != nil {
		serviceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="prescription-%d.pdf"`, prescription.ID))
	c.Header("Content-Type", "application/pdf")

	if err := pdf.RenderPrescription(c.Writer, prescription, patient, prescription.Doctor.Name); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to render PDF")
	}
}
