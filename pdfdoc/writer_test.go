package pdfdoc

import (
	"bytes"
	"testing"
	"time"

	"github.com/motivationletter/plume/model"
	"github.com/motivationletter/plume/render"
)

func testDocument(opts model.ExportOptions) *render.Document {
	letter := model.LetterRecord{
		Title:    "Ma lettre",
		Content:  "Madame, Monsieur,\n\nPremier paragraphe avec quelques mots.\n\nCordialement.",
		JobTitle: "Ingénieur",
		Company:  "Acme",
	}
	return render.Build(letter, model.UserProfile{Name: "Marie Curie"}, opts.Normalized(), time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC))
}

func TestWriter_PDFSignature(t *testing.T) {
	out, warnings, err := New().Render(testDocument(model.ExportOptions{Format: "pdf"}))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none for a core font", warnings)
	}
	if len(out) == 0 {
		t.Fatal("empty output buffer")
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("output missing PDF signature: % x", out[:4])
	}
}

func TestWriter_WatermarkRenders(t *testing.T) {
	doc := testDocument(model.ExportOptions{Format: "pdf", IncludeWatermark: true})

	out, _, err := New().Render(doc)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatal("watermarked output not a PDF")
	}
}

func TestWriter_UnknownFontFamilyWarns(t *testing.T) {
	doc := testDocument(model.ExportOptions{Format: "pdf", FontFamily: "Comic Sans"})

	out, warnings, err := New().Render(doc)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want the font fallback warning", warnings)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Error("fallback font output not a PDF")
	}
}

func TestWriter_QualityVariantsAllRender(t *testing.T) {
	for _, q := range []model.Quality{model.QualityStandard, model.QualityHigh, model.QualityUltra} {
		out, _, err := New().Render(testDocument(model.ExportOptions{Format: "pdf", Quality: q}))
		if err != nil {
			t.Fatalf("Render(%s) error = %v", q, err)
		}
		if !bytes.HasPrefix(out, []byte("%PDF")) {
			t.Errorf("quality %s output not a PDF", q)
		}
	}
}

func TestCoreFamily(t *testing.T) {
	tests := []struct {
		family     string
		want       string
		wantMapped bool
	}{
		{"", "Helvetica", true},
		{"Helvetica", "Helvetica", true},
		{"arial", "Helvetica", true},
		{"Times New Roman", "Times", true},
		{"courier new", "Courier", true},
		{"Comic Sans", "Helvetica", false},
	}

	for _, tt := range tests {
		got, mapped := coreFamily(tt.family)
		if got != tt.want || mapped != tt.wantMapped {
			t.Errorf("coreFamily(%q) = %q, %v; want %q, %v", tt.family, got, mapped, tt.want, tt.wantMapped)
		}
	}
}

func TestWriter_LongBodySpansPages(t *testing.T) {
	doc := testDocument(model.ExportOptions{Format: "pdf", IncludeWatermark: true})
	long := make([]string, 40)
	for i := range long {
		long[i] = "Un paragraphe de remplissage suffisamment long pour occuper de la place sur la page et forcer un saut."
	}
	doc.Paragraphs = long

	out, _, err := New().Render(doc)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Error("multi-page output not a PDF")
	}
}
