package analysis

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// MaxKeywords is the maximum number of keywords returned by ExtractKeywords.
const MaxKeywords = 10

// minTokenLength excludes short tokens; tokens of this length or less are
// discarded before counting.
const minTokenLength = 3

// stopwords is the fixed French stopword list. Tokens on this list never
// appear in keyword output.
var stopwords = map[string]struct{}{
	"le": {}, "la": {}, "les": {},
	"un": {}, "une": {}, "des": {},
	"et": {}, "ou": {}, "mais": {}, "donc": {}, "car": {}, "ni": {}, "or": {},
}

// ExtractKeywords tokenizes free text into a ranked keyword set: lowercase,
// strip non-word characters, split on whitespace, discard short tokens and
// stopwords, then return the ten highest-frequency tokens. Ties are broken
// by first-seen order. Empty input yields an empty list.
func ExtractKeywords(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	cleaned := stripNonWord(strings.ToLower(norm.NFC.String(text)))

	type entry struct {
		token string
		count int
		first int
	}

	counts := make(map[string]*entry)
	var order []*entry
	for i, token := range strings.Fields(cleaned) {
		if len([]rune(token)) <= minTokenLength {
			continue
		}
		if _, stop := stopwords[token]; stop {
			continue
		}
		if e, ok := counts[token]; ok {
			e.count++
			continue
		}
		e := &entry{token: token, count: 1, first: i}
		counts[token] = e
		order = append(order, e)
	}

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].count != order[j].count {
			return order[i].count > order[j].count
		}
		return order[i].first < order[j].first
	})

	n := len(order)
	if n > MaxKeywords {
		n = MaxKeywords
	}
	keywords := make([]string, 0, n)
	for _, e := range order[:n] {
		keywords = append(keywords, e.token)
	}
	return keywords
}

// stripNonWord replaces every character that is not a letter, a digit, an
// underscore, or whitespace with nothing, preserving token boundaries.
func stripNonWord(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}
