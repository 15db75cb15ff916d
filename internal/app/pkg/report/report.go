package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

// Data is the flattened view of one stored prediction rendered into the
// PDF. It carries no scoring logic of its own.
type Data struct {
	PredictionID string
	Disease      string
	Confidence   float64
	RiskLevel    string
	CreatedAt    time.Time
	Symptoms     []string
	UserName     string
	UserEmail    string
}

const disclaimer = "This prediction is for informational purposes only and is not a substitute " +
	"for professional medical advice, diagnosis, or treatment. Always consult with qualified " +
	"healthcare professionals for medical concerns."

// RecommendationsForRisk returns the static recommendation list for a risk
// level.
func RecommendationsForRisk(risk string) []string {
	switch strings.ToLower(risk) {
	case "high":
		return []string{
			"Consult with a healthcare professional immediately",
			"Schedule a comprehensive medical examination",
			"Monitor your symptoms closely and keep a health diary",
			"Follow prescribed treatment plans strictly",
			"Maintain regular follow-up appointments",
		}
	case "medium":
		return []string{
			"Schedule a medical consultation soon",
			"Monitor your symptoms regularly",
			"Maintain a healthy lifestyle",
			"Consider preventive measures",
			"Keep track of any health changes",
		}
	default:
		return []string{
			"Continue maintaining a healthy lifestyle",
			"Schedule regular health check-ups",
			"Stay aware of any new symptoms",
			"Maintain preventive care practices",
			"Monitor for any changes in your health",
		}
	}
}

// Filename builds the download name for a report.
func Filename(userName, predictionID string) string {
	name := strings.ReplaceAll(strings.TrimSpace(userName), " ", "_")
	if name == "" {
		name = "Patient"
	}
	id := predictionID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("HealthPredict_Report_%s_%s.pdf", name, id)
}

// Generate renders the prediction report PDF.
func Generate(d Data) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("HealthPredict Medical Report", false)
	pdf.SetAutoPageBreak(true, 20)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-14)
		pdf.SetFont("Helvetica", "", 7)
		pdf.SetTextColor(107, 114, 128)
		pdf.CellFormat(0, 5, "CONFIDENTIAL MEDICAL REPORT", "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 5, time.Now().Format("2006-01-02"), "", 0, "R", false, 0, "")
	})
	pdf.AddPage()

	// header
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(37, 99, 235)
	pdf.CellFormat(0, 12, "HealthPredict", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(107, 114, 128)
	pdf.CellFormat(0, 6, "AI-Assisted Health Assessment Report", "", 1, "L", false, 0, "")
	pdf.SetDrawColor(37, 99, 235)
	pdf.SetLineWidth(0.8)
	pdf.Line(10, pdf.GetY()+2, 200, pdf.GetY()+2)
	pdf.Ln(8)

	// patient block
	pdf.SetTextColor(0, 0, 0)
	sectionTitle(pdf, "Patient Information")
	keyValue(pdf, "Name", d.UserName)
	keyValue(pdf, "Email", d.UserEmail)
	keyValue(pdf, "Report ID", d.PredictionID)
	keyValue(pdf, "Generated", d.CreatedAt.Format("2006-01-02 15:04:05"))
	pdf.Ln(4)

	// assessment block
	sectionTitle(pdf, "Assessment Summary")
	keyValue(pdf, "Primary Finding", d.Disease)
	keyValue(pdf, "Confidence", fmt.Sprintf("%.0f%%", d.Confidence*100))

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(45, 7, "Risk Level", "", 0, "L", false, 0, "")
	setRiskColor(pdf, d.RiskLevel)
	pdf.CellFormat(0, 7, strings.ToUpper(d.RiskLevel), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	// symptoms
	sectionTitle(pdf, "Reported Symptoms")
	if len(d.Symptoms) == 0 {
		bullet(pdf, "None recorded")
	}
	for _, s := range d.Symptoms {
		bullet(pdf, s)
	}
	pdf.Ln(4)

	// recommendations
	sectionTitle(pdf, "Recommendations")
	for _, rec := range RecommendationsForRisk(d.RiskLevel) {
		bullet(pdf, rec)
	}
	pdf.Ln(6)

	// disclaimer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(107, 114, 128)
	pdf.MultiCell(0, 4, disclaimer, "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}

func sectionTitle(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(37, 99, 235)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func keyValue(pdf *fpdf.Fpdf, key, value string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(45, 7, key, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
}

func bullet(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(6, 6, "-", "", 0, "R", false, 0, "")
	pdf.MultiCell(0, 6, text, "", "L", false)
}

func setRiskColor(pdf *fpdf.Fpdf, risk string) {
	switch strings.ToLower(risk) {
	case "high":
		pdf.SetTextColor(220, 38, 38)
	case "medium":
		pdf.SetTextColor(245, 158, 11)
	default:
		pdf.SetTextColor(16, 185, 129)
	}
	pdf.SetFont("Helvetica", "B", 10)
}
