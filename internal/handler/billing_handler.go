package handler

import (
	"net/http"
	"strconv"

	"ai-clinic-backend/internal/service"
	"ai-clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type BillingHandler struct {
	billingService *service.BillingService
}

func NewBillingHandler(billingService *service.BillingService) *BillingHandler {
	return &BillingHandler{
		billingService: billingService,
	}
}

// GetInvoices lists all invoices
func (h *BillingHandler) GetInvoices(c *gin.Context) {
	invoices, err := h.billingService.ListInvoices()
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.SuccessResponse(c, invoices)
}

// CreateInvoice writes a new invoice
func (h *BillingHandler) CreateInvoice(c *gin.Context) {
	var req service.CreateInvoiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Patient, type and amount are required")
		return
	}

	staffID, _ := identity(c)

	invoice, err := h.billingService.CreateInvoice(staffID, req)
	if err != nil {
		serviceError(c, err)
		return
	}

	utils.CreatedResponse(c, invoice)
}

// CollectPayment marks an invoice paid
func (h *BillingHandler) CollectPayment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid invoice ID")
		return
	}

	staffID, _ := identity(c)

	invoice, err := h.billingService.CollectPayment(staffID, uint(id))
	if err != nil {
		serviceError(c, err)
		return
	}

	utils.SuccessResponse(c, invoice)
}
