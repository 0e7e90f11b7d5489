package service

import (
	"fmt"
	"strings"
	"time"

	"ai-clinic-backend/internal/models"

	"github.com/google/uuid"
)

type BillingService struct {
	invoices InvoiceRepository
	users    UserRepository
	activity ActivityRepository
}

func NewBillingService(invoices InvoiceRepository, users UserRepository, activity ActivityRepository) *BillingService {
	return &BillingService{
		invoices: invoices,
		users:    users,
		activity: activity,
	}
}

// ListInvoices returns every invoice, newest first
func (s *BillingService) ListInvoices() ([]models.Invoice, error) {
	return s.invoices.List()
}

// CreateInvoiceInput carries the fields of a new invoice
type CreateInvoiceInput struct {
	Patient string `json:"patient" binding:"required"`
	Type    string `json:"type" binding:"required"`
	Amount  string `json:"amount" binding:"required"`
	Date    string `json:"date"`
}

// CreateInvoice writes an invoice with a generated invoice number
func (s *BillingService) CreateInvoice(actorID uint, in CreateInvoiceInput) (*models.Invoice, error) {
	if in.Patient == "" || in.Type == "" || in.Amount == "" {
		return nil, fmt.Errorf("%w: patient, type and amount are required", ErrValidation)
	}
	if in.Date == "" {
		in.Date = time.Now().Format("2006-01-02")
	}

	invoice := &models.Invoice{
		InvoiceID: "INV-" + strings.ToUpper(uuid.New().String()[:8]),
		Patient:   in.Patient,
		Type:      in.Type,
		Amount:    in.Amount,
		Status:    "Pending",
		Date:      in.Date,
	}
	if err := s.invoices.Create(invoice); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	logActivity(s.activity, actorName(s.users, actorID), fmt.Sprintf("Created invoice %s for %s", invoice.InvoiceID, invoice.Patient), "billing", "CREATE")

	return invoice, nil
}

// CollectPayment marks an invoice as paid
func (s *BillingService) CollectPayment(actorID, id uint) (*models.Invoice, error) {
	invoice, err := s.invoices.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invoice not found", ErrNotFound)
	}

	invoice.Status = "Paid"
	if err := s.invoices.Update(invoice); err != nil {
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}

	logActivity(s.activity, actorName(s.users, actorID), fmt.Sprintf("Collected payment for %s", invoice.InvoiceID), "billing", "UPDATE")

	return invoice, nil
}
