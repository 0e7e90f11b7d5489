package pdf

import (
	"fmt"
	"io"

	"ai-clinic-backend/internal/models"

	"github.com/jung-kurt/gofpdf"
)

// RenderPrescription writes a prescription as a PDF document
func RenderPrescription(w io.Writer, prescription *models.Prescription, patient *models.Patient, doctorName string) error {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	// Title
	doc.SetFont("Helvetica", "B", 20)
	doc.CellFormat(0, 12, "Medical Prescription", "", 1, "C", false, 0, "")
	doc.Ln(4)

	// Doctor & patient info
	doc.SetFont("Helvetica", "", 12)
	doc.CellFormat(0, 7, fmt.Sprintf("Doctor: %s", doctorName), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 7, fmt.Sprintf("Date: %s", prescription.CreatedAt.Format("January 2, 2006")), "", 1, "L", false, 0, "")
	doc.Ln(4)
	doc.CellFormat(0, 7, fmt.Sprintf("Patient: %s", patient.Name), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 7, fmt.Sprintf("Age: %d | Gender: %s", patient.Age, patient.Gender), "", 1, "L", false, 0, "")
	doc.Ln(6)

	// Medicines, in prescribed order
	doc.SetFont("Helvetica", "BU", 14)
	doc.CellFormat(0, 8, "Medicines:", "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 12)
	for i, med := range prescription.Medicines {
		line := fmt.Sprintf("%d. %s - Dosage: %s", i+1, med.Name, med.Dosage)
		if med.Duration != "" {
			line += fmt.Sprintf(" (%s)", med.Duration)
		}
		doc.CellFormat(0, 7, line, "", 1, "L", false, 0, "")
	}
	doc.Ln(6)

	// Instructions
	doc.SetFont("Helvetica", "BU", 14)
	doc.CellFormat(0, 8, "Instructions:", "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 12)
	doc.MultiCell(0, 7, prescription.Instructions, "", "L", false)

	return doc.Output(w)
}
