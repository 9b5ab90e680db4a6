package analysis

import "strings"

// Profile is the detected classification of a letter, used to rank
// candidate templates.
type Profile struct {
	// Type is the letter kind: "internship", "job-application", or "general".
	Type string `json:"detectedType"`
	// Industry is the detected sector, or "general" when unclear.
	Industry string `json:"detectedIndustry"`
	// Level is the detected experience level: "junior", "senior", or "any".
	Level string `json:"detectedLevel"`
	// Keywords is the ranked keyword set of the content.
	Keywords []string `json:"keywords"`
}

// industryMarkers maps an industry label to the expressions that signal it.
// The first industry with a match wins; order is fixed for determinism.
var industryMarkers = []struct {
	industry string
	markers  []string
}{
	{"tech", []string{"développeur", "développeuse", "logiciel", "informatique", "ingénieur", "data", "web"}},
	{"finance", []string{"finance", "comptable", "comptabilité", "banque", "audit"}},
	{"marketing", []string{"marketing", "communication", "commercial", "vente"}},
	{"health", []string{"santé", "infirmier", "infirmière", "médical", "soins"}},
	{"education", []string{"enseignant", "enseignante", "professeur", "formation", "pédagogique"}},
}

// DetectProfile classifies a letter's type, industry, and experience level
// from its content and job title. Like every analyzer it is best-effort:
// unrecognized content yields the "general"/"any" defaults.
func DetectProfile(content, jobTitle string) Profile {
	lower := strings.ToLower(content + " " + jobTitle)

	p := Profile{
		Type:     "general",
		Industry: "general",
		Level:    "any",
		Keywords: ExtractKeywords(content),
	}

	switch {
	case strings.Contains(lower, "stage") || strings.Contains(lower, "alternance"):
		p.Type = "internship"
	case strings.Contains(lower, "candidature") || strings.Contains(lower, "poste"):
		p.Type = "job-application"
	}

	for _, im := range industryMarkers {
		if containsAny(lower, im.markers) {
			p.Industry = im.industry
			break
		}
	}

	switch {
	case strings.Contains(lower, "senior") || strings.Contains(lower, "expérimenté") || strings.Contains(lower, "ans d'expérience"):
		p.Level = "senior"
	case strings.Contains(lower, "junior") || strings.Contains(lower, "débutant") || strings.Contains(lower, "diplômé") || strings.Contains(lower, "stage"):
		p.Level = "junior"
	}

	return p
}
