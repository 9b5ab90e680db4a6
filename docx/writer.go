// Package docx renders a letter as a Microsoft Word (.docx) document.
//
// A .docx file is a ZIP container of OOXML parts. The writer emits the
// minimal part set for a letter: content types, package relationships, the
// document body, a styles part, and optionally a watermark header. Page
// margins arrive in centimeters and are converted to twips (1/20 point),
// DOCX's native layout unit. The export quality maps to the deflate level
// of the container; content is identical across qualities.
package docx

import (
	"archive/zip"
	"bytes"
	"compress/flate"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/motivationletter/plume/layout"
	"github.com/motivationletter/plume/model"
	"github.com/motivationletter/plume/render"
)

// A4 page size in twips.
const (
	pageWidthTwips  = 11906
	pageHeightTwips = 16838
)

// Writer renders the shared content contract as a .docx container.
type Writer struct{}

// New creates a DOCX writer.
func New() *Writer {
	return &Writer{}
}

// Render produces the complete .docx byte buffer. The ZIP stream is
// buffered until the container is closed, so the returned slice is always
// a complete archive. Encoding failures are wrapped with their cause.
func (w *Writer) Render(doc *render.Document) ([]byte, []string, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	level := compressionLevel(doc.Quality)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, level)
	})

	withHeader := doc.Watermark != ""
	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML(withHeader)},
		{"_rels/.rels", packageRelsXML},
		{"word/document.xml", documentXML(doc, withHeader)},
		{"word/_rels/document.xml.rels", documentRelsXML(withHeader)},
		{"word/styles.xml", stylesXML(doc)},
	}
	if withHeader {
		parts = append(parts, struct {
			name    string
			content string
		}{"word/header1.xml", headerXML(doc.Watermark)})
	}

	for _, part := range parts {
		f, err := zw.Create(part.name)
		if err != nil {
			return nil, nil, fmt.Errorf("docx: create part %s: %w", part.name, err)
		}
		if _, err := f.Write([]byte(part.content)); err != nil {
			return nil, nil, fmt.Errorf("docx: write part %s: %w", part.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, nil, fmt.Errorf("docx: close container: %w", err)
	}
	return buf.Bytes(), nil, nil
}

// compressionLevel maps the export quality to a deflate level.
func compressionLevel(q model.Quality) int {
	switch q {
	case model.QualityHigh:
		return flate.DefaultCompression
	case model.QualityUltra:
		return flate.BestCompression
	default:
		return flate.BestSpeed
	}
}

// paragraph holds the properties of one emitted <w:p> element.
type paragraph struct {
	text     string
	bold     bool
	justify  bool
	alignEnd bool
	small    bool
	border   bool
	heading  bool
}

// documentXML builds word/document.xml: the letter content followed by the
// section properties carrying the page margins.
func documentXML(doc *render.Document, withHeader bool) string {
	margins := layout.ToTwips(doc.Margins)

	var paragraphs []paragraph
	for _, line := range doc.SenderLines {
		paragraphs = append(paragraphs, paragraph{text: line})
	}
	paragraphs = append(paragraphs,
		paragraph{},
		paragraph{text: doc.DateLine, alignEnd: true},
		paragraph{},
	)
	if doc.RecipientLine != "" {
		paragraphs = append(paragraphs, paragraph{text: doc.RecipientLine}, paragraph{})
	}
	paragraphs = append(paragraphs,
		paragraph{border: true},
		paragraph{},
		paragraph{text: doc.Subject, bold: true, heading: true},
		paragraph{},
		paragraph{text: doc.Salutation},
		paragraph{},
	)
	for _, body := range doc.Paragraphs {
		paragraphs = append(paragraphs, paragraph{text: body, justify: true}, paragraph{})
	}
	for _, line := range doc.FooterLines {
		paragraphs = append(paragraphs, paragraph{text: line, small: true})
	}

	var sb strings.Builder
	sb.WriteString(xml.Header)
	sb.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"><w:body>`)
	for _, p := range paragraphs {
		writeParagraph(&sb, doc, p)
	}

	sb.WriteString(`<w:sectPr>`)
	if withHeader {
		sb.WriteString(`<w:headerReference w:type="default" r:id="rIdHeader"/>`)
	}
	fmt.Fprintf(&sb, `<w:pgSz w:w="%d" w:h="%d"/>`, pageWidthTwips, pageHeightTwips)
	fmt.Fprintf(&sb, `<w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d" w:header="708" w:footer="708" w:gutter="0"/>`,
		margins.Top, margins.Right, margins.Bottom, margins.Left)
	sb.WriteString(`</w:sectPr></w:body></w:document>`)
	return sb.String()
}

// writeParagraph emits one <w:p> element. Font sizes are expressed in
// half-points; justified body text uses <w:jc w:val="both"/>.
func writeParagraph(sb *strings.Builder, doc *render.Document, p paragraph) {
	sb.WriteString(`<w:p>`)

	var props strings.Builder
	if p.justify {
		props.WriteString(`<w:jc w:val="both"/>`)
	}
	if p.alignEnd {
		props.WriteString(`<w:jc w:val="right"/>`)
	}
	if p.border {
		props.WriteString(`<w:pBdr><w:bottom w:val="single" w:sz="6" w:space="1" w:color="1A1A1A"/></w:pBdr>`)
	}
	if props.Len() > 0 {
		sb.WriteString(`<w:pPr>`)
		sb.WriteString(props.String())
		sb.WriteString(`</w:pPr>`)
	}

	if p.text != "" {
		family := doc.FontFamily
		if p.heading {
			family = render.HeadingFont(doc.FontFamily)
		}
		size := doc.FontSize * 2
		if p.small {
			size = 16 // 8pt footer
		}

		sb.WriteString(`<w:r><w:rPr>`)
		fmt.Fprintf(sb, `<w:rFonts w:ascii="%s" w:hAnsi="%s"/>`, escape(family), escape(family))
		if p.bold {
			sb.WriteString(`<w:b/>`)
		}
		if p.small {
			sb.WriteString(`<w:color w:val="777777"/>`)
		}
		fmt.Fprintf(sb, `<w:sz w:val="%d"/>`, size)
		sb.WriteString(`</w:rPr>`)
		fmt.Fprintf(sb, `<w:t xml:space="preserve">%s</w:t>`, escape(p.text))
		sb.WriteString(`</w:r>`)
	}

	sb.WriteString(`</w:p>`)
}

// headerXML builds the watermark header part: a centered, oversized,
// light-gray run of the watermark text.
func headerXML(watermark string) string {
	var sb strings.Builder
	sb.WriteString(xml.Header)
	sb.WriteString(`<w:hdr xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">`)
	sb.WriteString(`<w:p><w:pPr><w:jc w:val="center"/></w:pPr>`)
	sb.WriteString(`<w:r><w:rPr><w:color w:val="E8E8E8"/><w:sz w:val="72"/></w:rPr>`)
	fmt.Fprintf(&sb, `<w:t xml:space="preserve">%s</w:t>`, escape(watermark))
	sb.WriteString(`</w:r></w:p></w:hdr>`)
	return sb.String()
}

// stylesXML builds a minimal styles part establishing the document default
// font and size.
func stylesXML(doc *render.Document) string {
	var sb strings.Builder
	sb.WriteString(xml.Header)
	sb.WriteString(`<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:docDefaults><w:rPrDefault><w:rPr>`)
	fmt.Fprintf(&sb, `<w:rFonts w:ascii="%s" w:hAnsi="%s"/>`, escape(doc.FontFamily), escape(doc.FontFamily))
	fmt.Fprintf(&sb, `<w:sz w:val="%d"/>`, doc.FontSize*2)
	sb.WriteString(`</w:rPr></w:rPrDefault></w:docDefaults></w:styles>`)
	return sb.String()
}

func contentTypesXML(withHeader bool) string {
	var sb strings.Builder
	sb.WriteString(xml.Header)
	sb.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	sb.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	sb.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	sb.WriteString(`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>`)
	sb.WriteString(`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>`)
	if withHeader {
		sb.WriteString(`<Override PartName="/word/header1.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.header+xml"/>`)
	}
	sb.WriteString(`</Types>`)
	return sb.String()
}

const packageRelsXML = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

func documentRelsXML(withHeader bool) string {
	var sb strings.Builder
	sb.WriteString(xml.Header)
	sb.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	sb.WriteString(`<Relationship Id="rIdStyles" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>`)
	if withHeader {
		sb.WriteString(`<Relationship Id="rIdHeader" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/header" Target="header1.xml"/>`)
	}
	sb.WriteString(`</Relationships>`)
	return sb.String()
}

// escape XML-escapes text content and attribute values.
func escape(s string) string {
	var buf bytes.Buffer
	// EscapeText only fails on a failing writer; bytes.Buffer never fails.
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
