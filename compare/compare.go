// Package compare builds a side-by-side comparison report for two letters,
// composing structural analysis with word-count heuristics.
package compare

import (
	"fmt"

	"github.com/motivationletter/plume/analysis"
	"github.com/motivationletter/plume/model"
)

// OptimalWordCount is the word count considered ideal for a letter.
const OptimalWordCount = 300

// Word-count thresholds driving the length suggestions.
const (
	longLetterWords  = 400
	shortLetterWords = 200
)

// structureSuggestionBelow triggers the structural suggestion when both
// letters score under it.
const structureSuggestionBelow = 75

// Winner labels. On equal scores the second letter wins; this mirrors the
// historical behavior and is kept deliberately.
const (
	WinnerLetterOne = "letter1"
	WinnerLetterTwo = "letter2"
)

// Criterion is a per-criterion score pair with the winning letter's label.
type Criterion struct {
	Score1 int    `json:"score1"`
	Score2 int    `json:"score2"`
	Winner string `json:"winner"`
}

// WordCounts reports both letters' word counts next to the optimal value.
type WordCounts struct {
	Letter1 int `json:"letter1"`
	Letter2 int `json:"letter2"`
	Optimal int `json:"optimal"`
}

// Tones carries the detected tone pair and a recommendation.
type Tones struct {
	Letter1        analysis.Tone `json:"letter1"`
	Letter2        analysis.Tone `json:"letter2"`
	Recommendation string        `json:"recommendation"`
}

// Result is the full comparison report for two letters.
type Result struct {
	Structure     Criterion  `json:"structure"`
	Content       Criterion  `json:"content"`
	WordCounts    WordCounts `json:"wordCounts"`
	Tones         Tones      `json:"tones"`
	Suggestions   []string   `json:"suggestions"`
	BestPractices []string   `json:"bestPractices"`
}

// bestPractices is static and format-independent.
var bestPractices = []string{
	"Adressez-vous à une personne identifiée quand c'est possible.",
	"Ouvrez par une formule de salutation et fermez par une formule de politesse.",
	"Visez 3 à 6 paragraphes et environ 300 mots.",
	"Reliez explicitement vos compétences au poste visé.",
	"Relisez-vous : une lettre sans faute inspire confiance.",
}

// Letters compares two letters and produces a comparison report. Like every
// analyzer, it never fails: malformed content degrades to zero scores.
func Letters(one, two model.LetterRecord) Result {
	s1 := analysis.AnalyzeStructure(one.Content)
	s2 := analysis.AnalyzeStructure(two.Content)
	wc1 := one.WordCount()
	wc2 := two.WordCount()
	c1 := contentScore(wc1)
	c2 := contentScore(wc2)

	result := Result{
		Structure: Criterion{Score1: s1.Score, Score2: s2.Score, Winner: winner(s1.Score, s2.Score)},
		Content:   Criterion{Score1: c1, Score2: c2, Winner: winner(c1, c2)},
		WordCounts: WordCounts{
			Letter1: wc1,
			Letter2: wc2,
			Optimal: OptimalWordCount,
		},
		Tones: Tones{
			Letter1:        s1.Tone,
			Letter2:        s2.Tone,
			Recommendation: toneRecommendation(s1.Tone, s2.Tone),
		},
		BestPractices: bestPractices,
	}

	// Suggestion rules are evaluated independently and may combine.
	if s1.Score < structureSuggestionBelow && s2.Score < structureSuggestionBelow {
		result.Suggestions = append(result.Suggestions,
			"Renforcez la structure : salutation d'ouverture, paragraphes distincts et formule de politesse.")
	}
	if wc1 > longLetterWords || wc2 > longLetterWords {
		result.Suggestions = append(result.Suggestions,
			fmt.Sprintf("Raccourcissez la lettre la plus longue : visez environ %d mots.", OptimalWordCount))
	}
	if wc1 < shortLetterWords || wc2 < shortLetterWords {
		result.Suggestions = append(result.Suggestions,
			fmt.Sprintf("Étoffez la lettre la plus courte : visez environ %d mots.", OptimalWordCount))
	}
	if !s1.HasOpening || !s2.HasOpening {
		result.Suggestions = append(result.Suggestions,
			"Ajoutez une salutation d'ouverture (« Madame, Monsieur, »).")
	}

	return result
}

// winner applies strict greater-than per criterion; a tie goes to the
// second letter.
func winner(score1, score2 int) string {
	if score1 > score2 {
		return WinnerLetterOne
	}
	return WinnerLetterTwo
}

// contentScore rates a word count by its distance to the optimal count:
// 100 at the optimum, decreasing linearly to 0 at zero or twice the
// optimal length.
func contentScore(words int) int {
	distance := words - OptimalWordCount
	if distance < 0 {
		distance = -distance
	}
	score := 100 - distance*100/OptimalWordCount
	if score < 0 {
		return 0
	}
	return score
}

func toneRecommendation(t1, t2 analysis.Tone) string {
	switch {
	case t1 == t2:
		return fmt.Sprintf("Les deux lettres adoptent un ton %s.", toneLabel(t1))
	case t1 == analysis.ToneCasual || t2 == analysis.ToneCasual:
		return "Préférez un registre professionnel pour une candidature."
	default:
		return fmt.Sprintf("Les tons diffèrent (%s et %s) ; choisissez celui qui correspond à l'entreprise visée.",
			toneLabel(t1), toneLabel(t2))
	}
}

func toneLabel(t analysis.Tone) string {
	switch t {
	case analysis.ToneEnthusiastic:
		return "enthousiaste"
	case analysis.ToneCasual:
		return "familier"
	default:
		return "professionnel"
	}
}
