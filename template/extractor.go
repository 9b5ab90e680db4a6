package template

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/motivationletter/plume/analysis"
	"github.com/motivationletter/plume/model"
)

// previewLength is the maximum preview size in characters; longer content is
// truncated with an ellipsis appended.
const previewLength = 200

// userNamePattern matches the first two-capitalized-word sequence left in
// the content after company and position substitution.
var userNamePattern = regexp.MustCompile(`[A-Z][a-z]+ [A-Z][a-z]+`)

// Extract converts a finished letter into a reusable template with typed
// placeholders. Substitutions run in a fixed order (company, position,
// userName) so placeholders never overlap. Keywords come from the original,
// pre-substitution content.
//
// Literal company and job-title strings are regex-escaped before building
// the replacement pattern. The matching itself stays literal: text that
// merely resembles the company name is left untouched.
func Extract(letter model.LetterRecord) Derived {
	content := letter.Content
	var variables []Variable

	if letter.Company != "" {
		content = replaceLiteral(content, letter.Company, "{{company}}")
		variables = append(variables, Variable{
			Name:        "company",
			Type:        "text",
			Label:       "Nom de l'entreprise",
			Required:    true,
			Placeholder: "Ex : Acme",
		})
	}

	if letter.JobTitle != "" {
		content = replaceLiteral(content, letter.JobTitle, "{{position}}")
		variables = append(variables, Variable{
			Name:        "position",
			Type:        "text",
			Label:       "Intitulé du poste",
			Required:    true,
			Placeholder: "Ex : Développeur web",
		})
	}

	if loc := userNamePattern.FindStringIndex(content); loc != nil {
		content = content[:loc[0]] + "{{userName}}" + content[loc[1]:]
		variables = append(variables, Variable{
			Name:        "userName",
			Type:        "text",
			Label:       "Votre nom",
			Required:    true,
			Placeholder: "Ex : Marie Curie",
		})
	}

	return Derived{
		Sections: []Section{
			{ID: "body", Order: 0, Content: content, Required: true},
		},
		GlobalVariables: variables,
		Preview:         Preview(content),
		Keywords:        analysis.ExtractKeywords(letter.Content),
	}
}

// Preview truncates content to 200 characters, appending an ellipsis when
// truncated.
func Preview(content string) string {
	if utf8.RuneCountInString(content) <= previewLength {
		return content
	}
	runes := []rune(content)
	return string(runes[:previewLength]) + "…"
}

// replaceLiteral replaces all literal occurrences of old with placeholder.
// The literal is regex-escaped so metacharacters in user-supplied company or
// job-title text cannot corrupt the substitution.
func replaceLiteral(content, old, placeholder string) string {
	re, err := regexp.Compile(regexp.QuoteMeta(old))
	if err != nil {
		// QuoteMeta output always compiles; degrade to plain replacement
		// rather than failing the derivation.
		return strings.ReplaceAll(content, old, placeholder)
	}
	return re.ReplaceAllLiteralString(content, placeholder)
}
