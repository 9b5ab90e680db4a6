// Package model provides the value objects shared by the plume engine.
//
// This package defines the user-facing data structures consumed and produced
// by rendering and analysis operations. All values are treated as immutable:
// the engine never mutates a [LetterRecord] or [UserProfile] in place, and
// every derived object is produced fresh per request.
//
// # Letters
//
// The [LetterRecord] type is the canonical letter entity:
//
//	letter := model.LetterRecord{
//		ID:      "ltr_123",
//		UserID:  "usr_456",
//		Title:   "Candidature développeur",
//		Content: "Madame, Monsieur,\n\nJe vous écris...",
//		Status:  model.StatusDraft,
//		Version: 1,
//	}
//
// Content is plain text with paragraphs separated by a blank line.
//
// # Export configuration
//
// [ExportOptions] carries the rendering configuration. Margins are always
// expressed in centimeters at this boundary; unit conversion into points and
// twips happens inside the layout package.
package model
