package render

import (
	"fmt"
	"time"

	"github.com/motivationletter/plume/model"
)

// WatermarkText is the literal watermark injected into formats that
// support it.
const WatermarkText = "motivationletter.ai"

// Salutation is the fixed greeting every letter opens with.
const Salutation = "Madame, Monsieur,"

// Document is the format-independent content of one export. It is built
// once per render; renderers only read it.
type Document struct {
	// Title is the letter title, used for document metadata.
	Title string
	// SenderLines is the four-line sender block (name, email, phone,
	// address), with placeholder text per missing field.
	SenderLines []string
	// DateLine is the localized render date (day, full month name, year).
	DateLine string
	// RecipientLine identifies the addressee: recipient name, else company,
	// else blank.
	RecipientLine string
	// Subject is the deterministic subject line, including the "Objet :"
	// prefix.
	Subject string
	// Salutation is the fixed greeting.
	Salutation string
	// Paragraphs is the letter body, preserved as authored.
	Paragraphs []string
	// FooterLines carries literal creation/modification timestamps; empty
	// unless metadata was requested.
	FooterLines []string
	// Watermark is the watermark text; empty unless requested.
	Watermark string

	// FontSize is the body font size in points.
	FontSize int
	// FontFamily is the body font family. Headings use the bold variant,
	// named FontFamily + "-Bold" in formats with named font variants.
	FontFamily string
	// Margins is the caller-supplied page margin set in centimeters; nil
	// means format defaults.
	Margins *model.Margins
	// Quality selects the compression profile. It never changes content.
	Quality model.Quality
	// RenderedAt is the render timestamp the DateLine was derived from.
	RenderedAt time.Time
}

// Renderer produces the byte representation of a Document in one format.
// Warnings report format limitations that the caller must surface; the
// error wraps any underlying encoding failure.
type Renderer interface {
	Render(doc *Document) ([]byte, []string, error)
}

// Build assembles the shared content contract from a letter, a sender
// profile, and normalized options. now becomes the render timestamp; it is
// computed once by the caller so that every consumer of the Document sees
// the same date.
func Build(letter model.LetterRecord, profile model.UserProfile, opts model.ExportOptions, now time.Time) *Document {
	doc := &Document{
		Title: letter.Title,
		SenderLines: []string{
			profile.DisplayName(),
			profile.DisplayEmail(),
			profile.DisplayPhone(),
			profile.DisplayAddress(),
		},
		DateLine:      FrenchDate(now),
		RecipientLine: recipientLine(letter),
		Subject:       SubjectLine(letter),
		Salutation:    Salutation,
		Paragraphs:    letter.Paragraphs(),
		FontSize:      opts.FontSize,
		FontFamily:    opts.FontFamily,
		Margins:       opts.Margins,
		Quality:       opts.Quality,
		RenderedAt:    now,
	}

	if opts.IncludeMetadata {
		doc.FooterLines = []string{
			"Créé le " + letter.CreatedAt.Format("02/01/2006 15:04"),
			"Modifié le " + letter.UpdatedAt.Format("02/01/2006 15:04"),
		}
	}
	if opts.IncludeWatermark {
		doc.Watermark = WatermarkText
	}
	return doc
}

// SubjectLine builds the deterministic subject line: with a job title the
// subject is an application for that position, optionally naming the
// company; otherwise it falls back to the letter title.
func SubjectLine(letter model.LetterRecord) string {
	if letter.JobTitle != "" {
		subject := "Objet : Candidature au poste de " + letter.JobTitle
		if letter.Company != "" {
			subject += " chez " + letter.Company
		}
		return subject
	}
	return "Objet : " + letter.Title
}

// HeadingFont returns the named bold variant of a font family, for formats
// that address font variants by name.
func HeadingFont(family string) string {
	return family + "-Bold"
}

// frenchMonths maps time.Month to full French month names.
var frenchMonths = [...]string{
	time.January:   "janvier",
	time.February:  "février",
	time.March:     "mars",
	time.April:     "avril",
	time.May:       "mai",
	time.June:      "juin",
	time.July:      "juillet",
	time.August:    "août",
	time.September: "septembre",
	time.October:   "octobre",
	time.November:  "novembre",
	time.December:  "décembre",
}

// FrenchDate formats a date as day, full French month name, and year.
func FrenchDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), frenchMonths[t.Month()], t.Year())
}

func recipientLine(letter model.LetterRecord) string {
	if letter.Recipient != nil && letter.Recipient.Name != "" {
		return letter.Recipient.Name
	}
	return letter.Company
}
