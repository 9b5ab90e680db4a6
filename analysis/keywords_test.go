package analysis

import (
	"strings"
	"testing"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty input yields empty list",
			text: "",
			want: nil,
		},
		{
			name: "whitespace only",
			text: "   \n\t  ",
			want: nil,
		},
		{
			name: "frequency ordering",
			text: "développement équipe développement projet développement équipe projet motivation",
			want: []string{"développement", "équipe", "projet", "motivation"},
		},
		{
			name: "short tokens discarded",
			text: "une api web dev code code code",
			want: []string{"code"},
		},
		{
			name: "stopwords discarded even when long enough",
			text: "mais donc votre entreprise entreprise",
			want: []string{"entreprise", "votre"},
		},
		{
			name: "punctuation stripped before tokenizing",
			text: "motivation, motivation! (motivation) expérience; expérience.",
			want: []string{"motivation", "expérience"},
		},
		{
			name: "ties broken by first-seen order",
			text: "alpha beta gamma alpha beta gamma delta",
			want: []string{"alpha", "beta", "gamma", "delta"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractKeywords(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("ExtractKeywords() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("keyword %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestExtractKeywords_Bounds(t *testing.T) {
	// Build text with 15 distinct candidate tokens at decreasing frequency.
	var sb strings.Builder
	tokens := []string{
		"motivation", "entreprise", "compétences", "projet", "expérience",
		"développement", "formation", "équipe", "mission", "qualité",
		"rigueur", "autonomie", "communication", "gestion", "innovation",
	}
	for i, token := range tokens {
		for j := 0; j < len(tokens)-i; j++ {
			sb.WriteString(token)
			sb.WriteString(" ")
		}
	}

	got := ExtractKeywords(sb.String())
	if len(got) > MaxKeywords {
		t.Fatalf("got %d keywords, want at most %d", len(got), MaxKeywords)
	}
	for i, kw := range got {
		if len([]rune(kw)) <= 3 {
			t.Errorf("keyword %q has length ≤3", kw)
		}
		if _, stop := stopwords[kw]; stop {
			t.Errorf("keyword %q is a stopword", kw)
		}
		if kw != tokens[i] {
			t.Errorf("keyword %d = %q, want %q (descending frequency)", i, kw, tokens[i])
		}
	}
}
