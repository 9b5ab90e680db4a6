package template

// Variable is a typed placeholder registered during template derivation.
type Variable struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Label       string `json:"label"`
	Required    bool   `json:"required"`
	Placeholder string `json:"placeholder"`
}

// Section is a block of template content.
type Section struct {
	ID       string `json:"id"`
	Order    int    `json:"order"`
	Content  string `json:"content"`
	Required bool   `json:"required"`
}

// Derived is a reusable template extracted from a finished letter.
type Derived struct {
	Sections        []Section  `json:"sections"`
	GlobalVariables []Variable `json:"globalVariables"`
	Preview         string     `json:"preview"`
	Keywords        []string   `json:"keywords"`
}

// Candidate describes a stored template evaluated by the matcher.
type Candidate struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	Industry        string   `json:"industry"`
	ExperienceLevel string   `json:"experienceLevel"`
	Keywords        []string `json:"keywords"`
	Category        string   `json:"category"`
	IsPremium       bool     `json:"isPremium"`
}

// Suggestion is a scored template recommendation.
type Suggestion struct {
	TemplateID   string   `json:"templateId"`
	TemplateName string   `json:"templateName"`
	MatchScore   int      `json:"matchScore"`
	Reasons      []string `json:"reasons"`
	Category     string   `json:"category"`
	IsPremium    bool     `json:"isPremium"`
}
