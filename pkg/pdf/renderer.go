package pdf

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"
)

// SectionContent is one rendered section: its type as heading, its text as body.
type SectionContent struct {
	Type    string
	Content string
}

// PlanDocument is everything the renderer needs: it carries no store types so
// the package stays independent of the domain layer.
type PlanDocument struct {
	Title            string
	ExecutiveSummary string
	Sections         []SectionContent
}

// RenderPlan builds the export PDF: a title page with the executive summary,
// then one page per section. An empty plan still produces a valid document.
func RenderPlan(doc PlanDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.Title, true)

	// Core fonts are cp1252; translate so Spanish accents survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 22)
	pdf.MultiCell(0, 12, tr(doc.Title), "", "C", false)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, tr("Resumen ejecutivo"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, tr(doc.ExecutiveSummary), "", "L", false)

	for _, section := range doc.Sections {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 16)
		pdf.CellFormat(0, 10, tr(section.Type), "", 1, "L", false, 0, "")
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr(section.Content), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
