// Package txtdoc renders a letter as a UTF-8 plain-text document.
//
// Plain text cannot carry a watermark. When one is requested the renderer
// reports the limitation as a warning instead of dropping it silently.
package txtdoc

import (
	"strings"

	"github.com/motivationletter/plume/render"
)

// dividerWidth is the width of the horizontal divider line.
const dividerWidth = 40

// WatermarkWarning is reported when a watermark is requested on a format
// that cannot carry one.
const WatermarkWarning = "le format txt ne prend pas en charge le filigrane ; option ignorée"

// Writer renders the shared content contract as plain text.
type Writer struct{}

// New creates a plain-text writer.
func New() *Writer {
	return &Writer{}
}

// Render produces the UTF-8 text representation of the document. It never
// fails: plain-text encoding has no error paths.
func (w *Writer) Render(doc *render.Document) ([]byte, []string, error) {
	var warnings []string
	if doc.Watermark != "" {
		warnings = append(warnings, WatermarkWarning)
	}

	var sb strings.Builder

	for _, line := range doc.SenderLines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(doc.DateLine)
	sb.WriteString("\n\n")

	if doc.RecipientLine != "" {
		sb.WriteString(doc.RecipientLine)
		sb.WriteString("\n\n")
	}

	sb.WriteString(strings.Repeat("-", dividerWidth))
	sb.WriteString("\n\n")

	sb.WriteString(doc.Subject)
	sb.WriteString("\n\n")
	sb.WriteString(doc.Salutation)
	sb.WriteString("\n\n")

	for _, paragraph := range doc.Paragraphs {
		sb.WriteString(paragraph)
		sb.WriteString("\n\n")
	}

	if len(doc.FooterLines) > 0 {
		sb.WriteString(strings.Repeat("-", dividerWidth))
		sb.WriteString("\n")
		for _, line := range doc.FooterLines {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}

	return []byte(sb.String()), warnings, nil
}
