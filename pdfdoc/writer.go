// Package pdfdoc renders a letter as a PDF document.
//
// Page margins arrive in centimeters and are converted to points, PDF's
// native layout unit. The body uses justified alignment; the watermark,
// when requested, is drawn diagonally at low opacity on every page. PDF
// text uses the core font set, so unmapped font families degrade to
// Helvetica with a warning.
package pdfdoc

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/motivationletter/plume/layout"
	"github.com/motivationletter/plume/model"
	"github.com/motivationletter/plume/render"
)

// lineSpacing scales the body line height relative to the font size.
const lineSpacing = 1.5

// watermarkFontSize is the size of the diagonal watermark text.
const watermarkFontSize = 50

// Writer renders the shared content contract as a PDF.
type Writer struct{}

// New creates a PDF writer.
func New() *Writer {
	return &Writer{}
}

// Render produces the complete PDF byte buffer. The underlying generator
// streams the file into a buffer that is returned only once the document is
// closed, so partial output is never surfaced. Generator failures are
// wrapped with their cause.
func (w *Writer) Render(doc *render.Document) ([]byte, []string, error) {
	var warnings []string
	margins := layout.ToPoints(doc.Margins)

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreationDate(doc.RenderedAt)
	pdf.SetModificationDate(doc.RenderedAt)
	pdf.SetCompression(doc.Quality != model.QualityStandard)
	pdf.SetMargins(margins.Left, margins.Top, margins.Right)
	pdf.SetAutoPageBreak(true, margins.Bottom)
	pdf.AddPage()

	family, mapped := coreFamily(doc.FontFamily)
	if !mapped {
		warnings = append(warnings, fmt.Sprintf("police %q indisponible en PDF ; Helvetica utilisée", doc.FontFamily))
	}

	// Core fonts are cp1252; translate UTF-8 accents.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	size := float64(doc.FontSize)
	line := size * lineSpacing
	pageWidth, _ := pdf.GetPageSize()

	pdf.SetFont(family, "", size)
	for _, senderLine := range doc.SenderLines {
		pdf.CellFormat(0, line, tr(senderLine), "", 1, "L", false, 0, "")
	}
	pdf.Ln(line)
	pdf.CellFormat(0, line, tr(doc.DateLine), "", 1, "R", false, 0, "")
	pdf.Ln(line)

	if doc.RecipientLine != "" {
		pdf.CellFormat(0, line, tr(doc.RecipientLine), "", 1, "L", false, 0, "")
		pdf.Ln(line)
	}

	y := pdf.GetY()
	pdf.SetDrawColor(26, 26, 26)
	pdf.Line(margins.Left, y, pageWidth-margins.Right, y)
	pdf.Ln(line)

	pdf.SetFont(family, "B", size+1)
	pdf.MultiCell(0, line, tr(doc.Subject), "", "L", false)
	pdf.Ln(line)

	pdf.SetFont(family, "", size)
	pdf.CellFormat(0, line, tr(doc.Salutation), "", 1, "L", false, 0, "")
	pdf.Ln(line)

	for _, paragraph := range doc.Paragraphs {
		pdf.MultiCell(0, line, tr(paragraph), "", "J", false)
		pdf.Ln(line / 2)
	}

	if len(doc.FooterLines) > 0 {
		pdf.Ln(line)
		pdf.SetFont(family, "", 8)
		pdf.SetTextColor(119, 119, 119)
		for _, footerLine := range doc.FooterLines {
			pdf.CellFormat(0, 12, tr(footerLine), "", 1, "L", false, 0, "")
		}
		pdf.SetTextColor(0, 0, 0)
	}

	if doc.Watermark != "" {
		stampWatermark(pdf, family, tr(doc.Watermark))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, nil, fmt.Errorf("pdfdoc: write document: %w", err)
	}
	return buf.Bytes(), warnings, nil
}

// stampWatermark draws the diagonal low-opacity watermark on every page of
// the generated document.
func stampWatermark(pdf *fpdf.Fpdf, family, text string) {
	pageWidth, pageHeight := pdf.GetPageSize()
	for page := 1; page <= pdf.PageCount(); page++ {
		pdf.SetPage(page)
		pdf.SetFont(family, "B", watermarkFontSize)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetAlpha(0.08, "Normal")
		pdf.TransformBegin()
		pdf.TransformRotate(35, pageWidth/2, pageHeight/2)
		width := pdf.GetStringWidth(text)
		pdf.Text(pageWidth/2-width/2, pageHeight/2, text)
		pdf.TransformEnd()
		pdf.SetAlpha(1, "Normal")
	}
}

// coreFamily maps a requested font family onto the PDF core font set. The
// second return value reports whether the family was recognized.
func coreFamily(family string) (string, bool) {
	switch {
	case family == "":
		return "Helvetica", true
	case strings.Contains(strings.ToLower(family), "times"):
		return "Times", true
	case strings.Contains(strings.ToLower(family), "courier"):
		return "Courier", true
	case strings.Contains(strings.ToLower(family), "helvetica"),
		strings.Contains(strings.ToLower(family), "arial"):
		return "Helvetica", true
	default:
		return "Helvetica", false
	}
}
