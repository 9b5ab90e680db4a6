package model

import (
	"strings"
	"time"
)

// LetterStatus represents the lifecycle state of a letter.
type LetterStatus string

const (
	// StatusDraft indicates a letter still being edited.
	StatusDraft LetterStatus = "draft"
	// StatusFinal indicates a finalized letter. The draft→final transition
	// sets FinalizedAt exactly once; it is never cleared afterwards.
	StatusFinal LetterStatus = "final"
)

// Valid reports whether the status is one of the known lifecycle states.
func (s LetterStatus) Valid() bool {
	return s == StatusDraft || s == StatusFinal
}

// Recipient identifies the person a letter is addressed to.
// Both fields are optional.
type Recipient struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// LetterRecord is the canonical letter entity consumed by the engine.
// Content is plain text with paragraphs separated by a blank line.
type LetterRecord struct {
	ID            string       `json:"id"`
	UserID        string       `json:"userId"`
	Title         string       `json:"title"`
	Content       string       `json:"content"`
	JobTitle      string       `json:"jobTitle,omitempty"`
	Company       string       `json:"company,omitempty"`
	Recipient     *Recipient   `json:"recipient,omitempty"`
	Status        LetterStatus `json:"status"`
	IsAIGenerated bool         `json:"isAIGenerated"`
	TemplateID    string       `json:"templateId,omitempty"`
	Version       int          `json:"version"`
	ViewCount     int          `json:"viewCount"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
	FinalizedAt   *time.Time   `json:"finalizedAt,omitempty"`
}

// Paragraphs splits the letter content on blank-line boundaries and returns
// the non-empty blocks, trimmed. An empty content yields a nil slice.
func (l LetterRecord) Paragraphs() []string {
	return SplitParagraphs(l.Content)
}

// WordCount returns the number of whitespace-separated words in the content.
func (l LetterRecord) WordCount() int {
	return len(strings.Fields(l.Content))
}

// SplitParagraphs splits text on blank-line boundaries into trimmed,
// non-empty paragraph blocks. A line is blank when it contains nothing but
// whitespace, so separator lines with stray spaces still split. Windows
// line endings are normalized first.
func SplitParagraphs(text string) []string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")

	var paragraphs []string
	var block []string
	flush := func() {
		joined := strings.TrimSpace(strings.Join(block, "\n"))
		if joined != "" {
			paragraphs = append(paragraphs, joined)
		}
		block = block[:0]
	}

	for _, line := range strings.Split(normalized, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		block = append(block, line)
	}
	flush()
	return paragraphs
}

// JoinParagraphs reassembles paragraph blocks with blank-line separators.
func JoinParagraphs(paragraphs []string) string {
	return strings.Join(paragraphs, "\n\n")
}
