package plume

import (
	"time"

	"github.com/motivationletter/plume/format"
	"github.com/motivationletter/plume/model"
	"github.com/motivationletter/plume/render"

	"github.com/motivationletter/plume/docx"
	"github.com/motivationletter/plume/htmldoc"
	"github.com/motivationletter/plume/pdfdoc"
	"github.com/motivationletter/plume/txtdoc"
)

// Exporter provides fluent configuration for rendering one letter.
// Configuration methods return the receiver for chaining; Bytes is the
// terminal operation.
type Exporter struct {
	letter  model.LetterRecord
	profile model.UserProfile
	opts    model.ExportOptions
	clock   func() time.Time
}

// Letter starts an export for the given letter and sender profile with
// default options (PDF, standard quality, 11pt Helvetica, 2.5cm margins).
//
// Example:
//
//	buf, warnings, err := plume.Letter(letter, profile).Format("docx").Bytes()
func Letter(letter model.LetterRecord, profile model.UserProfile) *Exporter {
	return &Exporter{
		letter:  letter,
		profile: profile,
		opts:    model.DefaultExportOptions(),
		clock:   time.Now,
	}
}

// Format selects the export format: "pdf", "docx", "txt", or "html".
func (e *Exporter) Format(name string) *Exporter {
	e.opts.Format = name
	return e
}

// Quality selects the compression profile. Content is unaffected.
func (e *Exporter) Quality(q model.Quality) *Exporter {
	e.opts.Quality = q
	return e
}

// FontSize sets the body font size in points.
func (e *Exporter) FontSize(points int) *Exporter {
	e.opts.FontSize = points
	return e
}

// FontFamily sets the body font family.
func (e *Exporter) FontFamily(family string) *Exporter {
	e.opts.FontFamily = family
	return e
}

// Margins sets the page margins in centimeters.
func (e *Exporter) Margins(m model.Margins) *Exporter {
	e.opts.Margins = &m
	return e
}

// WithMetadata appends the letter's creation and modification timestamps
// as a document footer.
func (e *Exporter) WithMetadata() *Exporter {
	e.opts.IncludeMetadata = true
	return e
}

// Watermark requests the watermark in formats that support one. Plain text
// cannot carry it; the limitation is reported as a warning.
func (e *Exporter) Watermark() *Exporter {
	e.opts.IncludeWatermark = true
	return e
}

// Options replaces the accumulated configuration wholesale.
func (e *Exporter) Options(opts model.ExportOptions) *Exporter {
	e.opts = opts
	return e
}

// Clock overrides the render timestamp source. The date is computed once
// per Bytes call and threaded through every renderer, keeping output
// structurally identical for identical inputs.
func (e *Exporter) Clock(clock func() time.Time) *Exporter {
	if clock != nil {
		e.clock = clock
	}
	return e
}

// Bytes renders the letter and returns the complete output buffer along
// with any format-limitation warnings. An unsupported format yields a
// *ValidationError; renderer failures yield a *RenderError wrapping the
// cause.
func (e *Exporter) Bytes() ([]byte, []string, error) {
	result, err := e.Result()
	if err != nil {
		return nil, nil, err
	}
	return result.Buffer, result.Warnings, nil
}

// ExportResult is the outcome of a successful export.
type ExportResult struct {
	// Buffer is the complete rendered document.
	Buffer []byte
	// MIMEType identifies the buffer's format.
	MIMEType string
	// Filename is a suggested download name derived from the letter title.
	Filename string
	// Warnings lists format limitations encountered while rendering.
	Warnings []string
}

// Result renders the letter and returns the buffer with its MIME type and
// a suggested filename.
func (e *Exporter) Result() (*ExportResult, error) {
	opts := e.opts.Normalized()

	f := format.Parse(opts.Format)
	if f == format.Unknown {
		return nil, &ValidationError{Field: "format", Reason: "unsupported export format " + opts.Format}
	}

	doc := render.Build(e.letter, e.profile, opts, e.clock())

	buf, warnings, err := rendererFor(f).Render(doc)
	if err != nil {
		return nil, &RenderError{Format: f.String(), Err: err}
	}

	return &ExportResult{
		Buffer:   buf,
		MIMEType: f.MIMEType(),
		Filename: exportFilename(e.letter.Title, f),
		Warnings: warnings,
	}, nil
}

// rendererFor returns the renderer implementing the given format. Callers
// must have validated the format first.
func rendererFor(f format.Format) render.Renderer {
	switch f {
	case format.DOCX:
		return docx.New()
	case format.TXT:
		return txtdoc.New()
	case format.HTML:
		return htmldoc.New()
	default:
		return pdfdoc.New()
	}
}

// exportFilename derives a safe download name from the letter title.
func exportFilename(title string, f format.Format) string {
	name := make([]rune, 0, len(title))
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			name = append(name, r)
		case r == ' ':
			name = append(name, '-')
		}
	}
	if len(name) == 0 {
		name = []rune("lettre")
	}
	return string(name) + f.Extension()
}
