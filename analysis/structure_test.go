package analysis

import (
	"strings"
	"testing"
)

func TestAnalyzeStructure_MaxScore(t *testing.T) {
	// Both salutations present, 4 paragraphs, 266 characters.
	content := strings.Join([]string{
		"Madame, Monsieur,",
		strings.Repeat("a", 80),
		strings.Repeat("b", 150),
		"Cordialement.",
	}, "\n\n")

	got := AnalyzeStructure(content)
	if got.Length < 200 || got.Length > 500 {
		t.Fatalf("test content length %d outside [200, 500]", got.Length)
	}
	if !got.HasOpening {
		t.Error("HasOpening = false, want true")
	}
	if !got.HasClosing {
		t.Error("HasClosing = false, want true")
	}
	if got.Paragraphs != 4 {
		t.Errorf("Paragraphs = %d, want 4", got.Paragraphs)
	}
	if got.Score != 100 {
		t.Errorf("Score = %d, want 100 (length %d)", got.Score, got.Length)
	}
}

func TestAnalyzeStructure_Empty(t *testing.T) {
	got := AnalyzeStructure("")
	if got.Score != 0 {
		t.Errorf("Score = %d, want 0", got.Score)
	}
	if got.Tone != ToneProfessional {
		t.Errorf("Tone = %q, want professional default", got.Tone)
	}
	if got.Paragraphs != 0 {
		t.Errorf("Paragraphs = %d, want 0", got.Paragraphs)
	}
}

func TestAnalyzeStructure_Criteria(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{
			name:    "opening only",
			content: "Bonjour Madame Dupont",
			want:    25,
		},
		{
			name:    "closing only",
			content: "Cordialement",
			want:    25,
		},
		{
			name:    "paragraph range only",
			content: "aa\n\nbb\n\ncc",
			want:    30,
		},
		{
			name:    "length range only",
			content: strings.Repeat("x", 250),
			want:    20,
		},
		{
			name:    "too many paragraphs",
			content: "a\n\nb\n\nc\n\nd\n\ne\n\nf\n\ng",
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AnalyzeStructure(tt.content); got.Score != tt.want {
				t.Errorf("Score = %d, want %d", got.Score, tt.want)
			}
		})
	}
}

func TestDetectTone(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Tone
	}{
		{
			name:    "enthusiasm markers win",
			content: "Bonjour, je suis passionné par ce domaine.",
			want:    ToneEnthusiastic,
		},
		{
			name:    "enthousiaste variant",
			content: "Madame, je suis enthousiaste à l'idée de vous rejoindre.",
			want:    ToneEnthusiastic,
		},
		{
			name:    "bonjour without madame is casual",
			content: "Bonjour, je vous écris au sujet du poste.",
			want:    ToneCasual,
		},
		{
			name:    "bonjour with madame stays professional",
			content: "Bonjour Madame, je vous écris au sujet du poste.",
			want:    ToneProfessional,
		},
		{
			name:    "default professional",
			content: "Je vous prie d'agréer mes salutations distinguées.",
			want:    ToneProfessional,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AnalyzeStructure(tt.content); got.Tone != tt.want {
				t.Errorf("Tone = %q, want %q", got.Tone, tt.want)
			}
		})
	}
}

func TestDetectProfile(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		jobTitle     string
		wantType     string
		wantIndustry string
		wantLevel    string
	}{
		{
			name:         "internship tech junior",
			content:      "Je recherche un stage en développement logiciel.",
			jobTitle:     "Développeur",
			wantType:     "internship",
			wantIndustry: "tech",
			wantLevel:    "junior",
		},
		{
			name:         "job application finance senior",
			content:      "Je présente ma candidature au poste d'auditeur senior en banque.",
			jobTitle:     "Auditeur",
			wantType:     "job-application",
			wantIndustry: "finance",
			wantLevel:    "senior",
		},
		{
			name:         "unrecognized content falls back to defaults",
			content:      "Quelques mots sans signal particulier.",
			jobTitle:     "",
			wantType:     "general",
			wantIndustry: "general",
			wantLevel:    "any",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectProfile(tt.content, tt.jobTitle)
			if got.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", got.Type, tt.wantType)
			}
			if got.Industry != tt.wantIndustry {
				t.Errorf("Industry = %q, want %q", got.Industry, tt.wantIndustry)
			}
			if got.Level != tt.wantLevel {
				t.Errorf("Level = %q, want %q", got.Level, tt.wantLevel)
			}
		})
	}
}
