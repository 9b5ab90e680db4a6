package analysis

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/motivationletter/plume/model"
)

// Tone classifies the overall register of a letter.
type Tone string

const (
	// ToneProfessional is the default tone.
	ToneProfessional Tone = "professional"
	// ToneEnthusiastic is detected from expressions of passion or enthusiasm.
	ToneEnthusiastic Tone = "enthusiastic"
	// ToneCasual is detected from an informal greeting without a formal one.
	ToneCasual Tone = "casual"
)

// Structure score weights. The total spans 0–100.
const (
	openingWeight    = 25
	closingWeight    = 25
	paragraphsWeight = 30
	lengthWeight     = 20
)

// Acceptable ranges for the paragraph and length criteria.
const (
	minParagraphs = 3
	maxParagraphs = 6
	minLength     = 200
	maxLength     = 500
)

// Structure is the result of analyzing a letter's structural completeness.
type Structure struct {
	// Paragraphs is the count of non-empty blocks split on blank lines.
	Paragraphs int `json:"paragraphs"`
	// HasOpening reports the presence of an opening salutation.
	HasOpening bool `json:"hasOpening"`
	// HasClosing reports the presence of a closing formula.
	HasClosing bool `json:"hasClosing"`
	// Tone is the detected register.
	Tone Tone `json:"tone"`
	// Length is the content length in characters.
	Length int `json:"length"`
	// Score is the 0–100 structural completeness score.
	Score int `json:"score"`
}

var (
	openingMarkers = []string{"madame", "monsieur", "bonjour"}
	closingMarkers = []string{"salutations", "cordialement", "sincèrement"}
)

// AnalyzeStructure scores a letter's structural completeness and classifies
// its tone. It never fails: empty content scores 0 with tone professional.
func AnalyzeStructure(content string) Structure {
	lower := strings.ToLower(norm.NFC.String(content))
	paragraphs := model.SplitParagraphs(content)

	s := Structure{
		Paragraphs: len(paragraphs),
		HasOpening: containsAny(lower, openingMarkers),
		HasClosing: containsAny(lower, closingMarkers),
		Tone:       detectTone(lower),
		Length:     utf8.RuneCountInString(content),
	}

	if s.HasOpening {
		s.Score += openingWeight
	}
	if s.HasClosing {
		s.Score += closingWeight
	}
	if s.Paragraphs >= minParagraphs && s.Paragraphs <= maxParagraphs {
		s.Score += paragraphsWeight
	}
	if s.Length >= minLength && s.Length <= maxLength {
		s.Score += lengthWeight
	}
	return s
}

// detectTone applies the tone priority order: enthusiasm markers win, then
// an informal greeting without a formal one reads as casual, otherwise the
// tone is professional.
func detectTone(lower string) Tone {
	if strings.Contains(lower, "passionné") || strings.Contains(lower, "enthousiaste") {
		return ToneEnthusiastic
	}
	if strings.Contains(lower, "bonjour") && !strings.Contains(lower, "madame") {
		return ToneCasual
	}
	return ToneProfessional
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
