package handler

import (
	"net/http"
	"strconv"

	"ai-clinic-backend/internal/service"
	"ai-clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AIHandler struct {
	aiService      *service.AIService
	patientService *service.PatientService
}

func NewAIHandler(aiService *service.AIService, patientService *service.PatientService) *AIHandler {
	return &AIHandler{
		aiService:      aiService,
		patientService: patientService,
	}
}

// Diagnose runs symptom triage for a doctor. The endpoint always answers
// 200, a failed upstream call yields the fallback payload.
func (h *AIHandler) Diagnose(c *gin.Context) {
	var req service.DiagnoseInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Symptoms are required")
		return
	}

	result := h.aiService.Diagnose(c.Request.Context(), req)
	utils.SuccessResponse(c, result)
}

// ExplainPrescription explains one of the caller's own prescriptions in
// plain language
func (h *AIHandler) ExplainPrescription(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid prescription ID")
		return
	}

	userID, _ := identity(c)

	prescription, _, err := h.patientService.PrescriptionForDownload(userID, uint(id))
	if err != nil {
		serviceError(c, err)
		return
	}

	result := h.aiService.Explain(c.Request.Context(), prescription)
	utils.SuccessResponse(c, result)
}
