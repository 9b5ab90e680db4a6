package template

import (
	"fmt"
	"sort"

	"github.com/motivationletter/plume/analysis"
)

// Match score weights. A candidate can reach at most 100.
const (
	typeWeight     = 30
	industryWeight = 25
	levelWeight    = 20
	keywordWeight  = 5
	keywordCap     = 5
)

// minMatchScore is the exclusion threshold: candidates scoring this much or
// less never appear in results.
const minMatchScore = 20

// maxSuggestions bounds the number of returned suggestions.
const maxSuggestions = 5

// Match scores candidate templates against a letter's detected profile and
// returns the top suggestions, ranked by descending score. Candidates
// scoring 20 or less are excluded. Each suggestion carries a human-readable
// reason per satisfied criterion.
func Match(profile analysis.Profile, candidates []Candidate) []Suggestion {
	var suggestions []Suggestion

	for _, c := range candidates {
		score := 0
		var reasons []string

		if c.Type == profile.Type {
			score += typeWeight
			reasons = append(reasons, fmt.Sprintf("Adapté aux lettres de type %s", c.Type))
		}
		if c.Industry == profile.Industry {
			score += industryWeight
			reasons = append(reasons, fmt.Sprintf("Conçu pour le secteur %s", c.Industry))
		}
		if c.ExperienceLevel == profile.Level || c.ExperienceLevel == "any" {
			score += levelWeight
			reasons = append(reasons, "Correspond à votre niveau d'expérience")
		}
		if overlap := keywordOverlap(profile.Keywords, c.Keywords); overlap > 0 {
			capped := overlap
			if capped > keywordCap {
				capped = keywordCap
			}
			score += capped * keywordWeight
			reasons = append(reasons, fmt.Sprintf("%d mot(s)-clé(s) en commun", overlap))
		}

		if score <= minMatchScore {
			continue
		}

		suggestions = append(suggestions, Suggestion{
			TemplateID:   c.ID,
			TemplateName: c.Name,
			MatchScore:   score,
			Reasons:      reasons,
			Category:     c.Category,
			IsPremium:    c.IsPremium,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].MatchScore > suggestions[j].MatchScore
	})

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

func keywordOverlap(letterKeywords, templateKeywords []string) int {
	set := make(map[string]struct{}, len(letterKeywords))
	for _, kw := range letterKeywords {
		set[kw] = struct{}{}
	}
	count := 0
	for _, kw := range templateKeywords {
		if _, ok := set[kw]; ok {
			count++
		}
	}
	return count
}
