// Package htmldoc renders a letter as a standalone UTF-8 HTML document.
//
// The page skeleton is a html/template; the body paragraphs go through
// goldmark, for which blank-line-separated plain text is a sequence of
// paragraphs. Letter content is authored as plain text, not Markdown, so
// every structural punctuation character is backslash-escaped before
// conversion: goldmark contributes paragraph and soft-break handling while
// the authored text survives verbatim. Page margins are emitted directly
// in centimeters, the unit they arrive in at the engine boundary. The
// watermark, when requested, is a fixed-position low-opacity overlay.
package htmldoc

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/motivationletter/plume/model"
	"github.com/motivationletter/plume/render"
)

// Writer renders the shared content contract as HTML.
type Writer struct {
	md   goldmark.Markdown
	tmpl *template.Template
}

// New creates an HTML writer.
func New() *Writer {
	return &Writer{
		md:   goldmark.New(),
		tmpl: template.Must(template.New("letter").Parse(pageTemplate)),
	}
}

// templateData is the input of the page template.
type templateData struct {
	Lang       string
	Title      string
	FontFamily string
	FontSize   int
	Margins    model.Margins
	Sender     []string
	DateLine   string
	Recipient  string
	Subject    string
	Salutation string
	Body       template.HTML
	Footer     []string
	Watermark  string
}

// Render produces the HTML representation of the document. Encoding
// failures are wrapped with their original cause preserved.
func (w *Writer) Render(doc *render.Document) ([]byte, []string, error) {
	escaped := make([]string, len(doc.Paragraphs))
	for i, paragraph := range doc.Paragraphs {
		escaped[i] = escapeMarkdown(paragraph)
	}

	var body bytes.Buffer
	source := []byte(model.JoinParagraphs(escaped))
	if err := w.md.Convert(source, &body); err != nil {
		return nil, nil, fmt.Errorf("htmldoc: convert body: %w", err)
	}

	margins := model.DefaultMargins()
	if doc.Margins != nil {
		margins = *doc.Margins
	}

	data := templateData{
		Lang:       "fr",
		Title:      doc.Title,
		FontFamily: doc.FontFamily,
		FontSize:   doc.FontSize,
		Margins:    margins,
		Sender:     doc.SenderLines,
		DateLine:   doc.DateLine,
		Recipient:  doc.RecipientLine,
		Subject:    doc.Subject,
		Salutation: doc.Salutation,
		Body:       template.HTML(body.String()),
		Footer:     doc.FooterLines,
		Watermark:  doc.Watermark,
	}

	var out bytes.Buffer
	if err := w.tmpl.Execute(&out, data); err != nil {
		return nil, nil, fmt.Errorf("htmldoc: execute template: %w", err)
	}
	return out.Bytes(), nil, nil
}

// markdownPunctuation is the ASCII punctuation CommonMark treats as
// structural and allows a backslash to escape.
const markdownPunctuation = "\\!\"#$%&'()*+,-./:;<=>?@[]^_`{|}~"

// escapeMarkdown backslash-escapes every structural punctuation character
// so goldmark renders the text literally: no headings, emphasis, lists, or
// other constructs form, and body content stays inside <p> elements.
func escapeMarkdown(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(markdownPunctuation, s[i]) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

const pageTemplate = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body {
  font-family: "{{.FontFamily}}", sans-serif;
  font-size: {{.FontSize}}pt;
  margin: {{.Margins.Top}}cm {{.Margins.Right}}cm {{.Margins.Bottom}}cm {{.Margins.Left}}cm;
  color: #1a1a1a;
}
.sender p, .recipient p { margin: 0; }
.date { text-align: right; }
hr { border: none; border-top: 1px solid #1a1a1a; margin: 1.2em 0; }
.subject { font-weight: bold; }
.body p { text-align: justify; }
.footer { margin-top: 2em; font-size: 8pt; color: #777777; }
.watermark {
  position: fixed;
  top: 45%;
  left: 20%;
  transform: rotate(-35deg);
  font-size: 48pt;
  color: #000000;
  opacity: 0.08;
  pointer-events: none;
}
</style>
</head>
<body>
{{- if .Watermark}}
<div class="watermark">{{.Watermark}}</div>
{{- end}}
<div class="sender">
{{- range .Sender}}
<p>{{.}}</p>
{{- end}}
</div>
<p class="date">{{.DateLine}}</p>
{{- if .Recipient}}
<div class="recipient"><p>{{.Recipient}}</p></div>
{{- end}}
<hr>
<p class="subject">{{.Subject}}</p>
<p class="salutation">{{.Salutation}}</p>
<div class="body">
{{.Body}}</div>
{{- if .Footer}}
<div class="footer">
{{- range .Footer}}
<p>{{.}}</p>
{{- end}}
</div>
{{- end}}
</body>
</html>
`
