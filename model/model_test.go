package model

import (
	"testing"
)

func TestSplitParagraphs(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "three paragraphs",
			text: "A\n\nB\n\nC",
			want: []string{"A", "B", "C"},
		},
		{
			name: "windows line endings",
			text: "A\r\n\r\nB",
			want: []string{"A", "B"},
		},
		{
			name: "surrounding whitespace trimmed",
			text: "  A  \n\n  B  ",
			want: []string{"A", "B"},
		},
		{
			name: "empty blocks dropped",
			text: "A\n\n\n\nB",
			want: []string{"A", "B"},
		},
		{
			name: "separator line with stray whitespace",
			text: "\nA \n \nB",
			want: []string{"A", "B"},
		},
		{
			name: "tab-only separator line",
			text: "A\n\t\nB",
			want: []string{"A", "B"},
		},
		{
			name: "internal line breaks preserved",
			text: "A\nB\n\nC",
			want: []string{"A\nB", "C"},
		},
		{
			name: "single paragraph",
			text: "only one",
			want: []string{"only one"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "whitespace only",
			text: "   \n\n  ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitParagraphs(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("SplitParagraphs() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("paragraph %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLetterRecord_WordCount(t *testing.T) {
	letter := LetterRecord{Content: "un deux   trois\nquatre"}
	if got := letter.WordCount(); got != 4 {
		t.Errorf("WordCount() = %d, want 4", got)
	}
}

func TestLetterStatus_Valid(t *testing.T) {
	tests := []struct {
		status LetterStatus
		want   bool
	}{
		{StatusDraft, true},
		{StatusFinal, true},
		{LetterStatus("archived"), false},
		{LetterStatus(""), false},
	}

	for _, tt := range tests {
		if got := tt.status.Valid(); got != tt.want {
			t.Errorf("LetterStatus(%q).Valid() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestUserProfile_Placeholders(t *testing.T) {
	var empty UserProfile
	if got := empty.DisplayName(); got != PlaceholderName {
		t.Errorf("DisplayName() = %q, want %q", got, PlaceholderName)
	}
	if got := empty.DisplayEmail(); got != PlaceholderEmail {
		t.Errorf("DisplayEmail() = %q, want %q", got, PlaceholderEmail)
	}
	if got := empty.DisplayPhone(); got != PlaceholderPhone {
		t.Errorf("DisplayPhone() = %q, want %q", got, PlaceholderPhone)
	}
	if got := empty.DisplayAddress(); got != PlaceholderAddress {
		t.Errorf("DisplayAddress() = %q, want %q", got, PlaceholderAddress)
	}

	full := UserProfile{Name: "Marie Curie", Email: "marie@exemple.fr", Phone: "0600000000", Address: "1 rue des Lilas"}
	if got := full.DisplayName(); got != "Marie Curie" {
		t.Errorf("DisplayName() = %q, want profile name", got)
	}
}

func TestExportOptions_Normalized(t *testing.T) {
	var opts ExportOptions
	got := opts.Normalized()

	if got.Quality != QualityStandard {
		t.Errorf("Quality = %q, want %q", got.Quality, QualityStandard)
	}
	if got.FontSize != 11 {
		t.Errorf("FontSize = %d, want 11", got.FontSize)
	}
	if got.FontFamily != "Helvetica" {
		t.Errorf("FontFamily = %q, want Helvetica", got.FontFamily)
	}
	if got.Margins == nil || *got.Margins != DefaultMargins() {
		t.Errorf("Margins = %v, want defaults", got.Margins)
	}

	// The original value must be untouched.
	if opts.Margins != nil {
		t.Error("Normalized() mutated the receiver")
	}

	custom := ExportOptions{Format: "docx", Quality: QualityUltra, FontSize: 14, FontFamily: "Times", Margins: &Margins{Top: 1, Right: 1, Bottom: 1, Left: 1}}
	got = custom.Normalized()
	if got.Quality != QualityUltra || got.FontSize != 14 || got.FontFamily != "Times" || got.Margins.Top != 1 {
		t.Errorf("Normalized() overrode explicit values: %+v", got)
	}
}
