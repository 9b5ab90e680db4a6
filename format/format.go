// Package format enumerates the export formats supported by the plume
// engine and provides signature checks for generated output.
package format

import (
	"strings"
)

// Format represents a supported export format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a PDF document.
	PDF
	// DOCX indicates a Microsoft Word (.docx) document.
	DOCX
	// TXT indicates a plain-text document.
	TXT
	// HTML indicates an HTML document.
	HTML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "pdf"
	case DOCX:
		return "docx"
	case TXT:
		return "txt"
	case HTML:
		return "html"
	default:
		return "unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PDF:
		return ".pdf"
	case DOCX:
		return ".docx"
	case TXT:
		return ".txt"
	case HTML:
		return ".html"
	default:
		return ""
	}
}

// MIMEType returns the MIME type emitted with an export of this format.
func (f Format) MIMEType() string {
	switch f {
	case PDF:
		return "application/pdf"
	case DOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case TXT:
		return "text/plain"
	case HTML:
		return "text/html"
	default:
		return "application/octet-stream"
	}
}

// SupportsWatermark reports whether the format can carry a watermark.
// Plain text has no watermark support; callers must surface this as a
// warning rather than silently dropping the option.
func (f Format) SupportsWatermark() bool {
	return f == PDF || f == DOCX || f == HTML
}

// Parse maps a caller-supplied format value to a Format. Exactly the four
// contract values "pdf", "docx", "txt", and "html" are recognized, matching
// the validation applied at the engine boundary; anything else maps to
// Unknown.
func Parse(value string) Format {
	switch value {
	case "pdf":
		return PDF
	case "docx":
		return DOCX
	case "txt":
		return TXT
	case "html":
		return HTML
	default:
		return Unknown
	}
}

// All returns the supported formats in a stable order.
func All() []Format {
	return []Format{PDF, DOCX, TXT, HTML}
}

// DetectFromMagic checks leading bytes to determine the format of a
// generated buffer. This backs the post-render sanity check: a PDF export
// must start with %PDF and a DOCX export with the ZIP local-file header.
func DetectFromMagic(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}

	// PDF magic: %PDF
	if data[0] == '%' && data[1] == 'P' && data[2] == 'D' && data[3] == 'F' {
		return PDF
	}

	// ZIP magic (DOCX is a ZIP archive): PK\x03\x04
	if data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04 {
		return DOCX
	}

	if detectHTMLMagic(data) {
		return HTML
	}

	return Unknown
}

// detectHTMLMagic checks if the data looks like HTML content.
func detectHTMLMagic(data []byte) bool {
	start := 0
	for start < len(data) && (data[start] == ' ' || data[start] == '\t' || data[start] == '\n' || data[start] == '\r') {
		start++
	}
	if start >= len(data) {
		return false
	}

	upper := strings.ToUpper(string(data[start:min(start+512, len(data))]))
	return strings.HasPrefix(upper, "<!DOCTYPE HTML") || strings.HasPrefix(upper, "<HTML")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
