package plume

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/motivationletter/plume/analysis"
	"github.com/motivationletter/plume/cache"
	"github.com/motivationletter/plume/compare"
	"github.com/motivationletter/plume/merge"
	"github.com/motivationletter/plume/model"
	"github.com/motivationletter/plume/template"
)

// LetterStore is the persistence collaborator supplying letters. Lookups
// are scoped to the owning user: a letter belonging to another user must
// yield [ErrNotFound], which keeps ownership resolution out of the engine.
type LetterStore interface {
	GetLetter(ctx context.Context, letterID, userID string) (model.LetterRecord, error)
}

// TemplateStore is the persistence collaborator for template catalogs and
// derived templates.
type TemplateStore interface {
	ListTemplates(ctx context.Context) ([]template.Candidate, error)
	SaveTemplate(ctx context.Context, stored StoredTemplate) error
}

// ProfileStore supplies the sender profile rendered into letter headers.
// A missing profile is not an error: exports fall back to placeholder text.
type ProfileStore interface {
	GetProfile(ctx context.Context, userID string) (model.UserProfile, error)
}

// StoredTemplate is a derived template together with its catalog metadata,
// handed to the TemplateStore on conversion.
type StoredTemplate struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	Meta      TemplateMeta     `json:"meta"`
	Derived   template.Derived `json:"derived"`
	CreatedAt time.Time        `json:"createdAt"`
}

// TemplateMeta is the caller-supplied metadata of a converted template.
type TemplateMeta struct {
	Name            string `json:"name" validate:"required"`
	Category        string `json:"category"`
	Type            string `json:"type"`
	Industry        string `json:"industry"`
	ExperienceLevel string `json:"experienceLevel"`
	IsPremium       bool   `json:"isPremium"`
}

// catalogCacheKey is the single cache key of the candidate catalog.
const catalogCacheKey = "template-catalog"

// defaultCatalogTTL bounds how long the candidate-template catalog is
// served from cache.
const defaultCatalogTTL = 5 * time.Minute

// Engine exposes the store-backed operations: export by ID, template
// suggestion, letter-to-template conversion, and comparison. It holds no
// mutable state besides the catalog cache and is safe for concurrent use.
type Engine struct {
	letters   LetterStore
	templates TemplateStore
	profiles  ProfileStore
	catalog   *cache.Cache[[]template.Candidate]
	validate  *validator.Validate
	clock     func() time.Time
}

// EngineOption configures an Engine.
type EngineOption func(*engineConfig)

type engineConfig struct {
	clock      func() time.Time
	catalogTTL time.Duration
	profiles   ProfileStore
}

// WithClock overrides the engine's time source.
func WithClock(clock func() time.Time) EngineOption {
	return func(c *engineConfig) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithCatalogTTL overrides how long the template catalog is cached. A
// non-positive TTL disables the cache.
func WithCatalogTTL(ttl time.Duration) EngineOption {
	return func(c *engineConfig) {
		c.catalogTTL = ttl
	}
}

// WithProfileStore supplies sender profiles for exports. Without one,
// exports render placeholder sender text.
func WithProfileStore(profiles ProfileStore) EngineOption {
	return func(c *engineConfig) {
		c.profiles = profiles
	}
}

// NewEngine creates an Engine over the given collaborators.
func NewEngine(letters LetterStore, templates TemplateStore, opts ...EngineOption) *Engine {
	cfg := engineConfig{
		clock:      time.Now,
		catalogTTL: defaultCatalogTTL,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{
		letters:   letters,
		templates: templates,
		profiles:  cfg.profiles,
		catalog:   cache.New[[]template.Candidate](cfg.catalogTTL, cache.Clock(cfg.clock)),
		validate:  validator.New(),
		clock:     cfg.clock,
	}
}

// Export renders the identified letter in the requested format and returns
// the complete buffer with its MIME type. Option validation happens before
// any rendering; render failures are retryable.
func (e *Engine) Export(ctx context.Context, letterID, userID string, opts model.ExportOptions) (*ExportResult, error) {
	if err := e.validate.Struct(opts); err != nil {
		return nil, &ValidationError{Field: "options", Reason: err.Error()}
	}

	letter, err := e.getLetter(ctx, letterID, userID)
	if err != nil {
		return nil, err
	}

	profile := model.UserProfile{}
	if e.profiles != nil {
		// A profile miss degrades to placeholders rather than failing the
		// export.
		if p, err := e.profiles.GetProfile(ctx, userID); err == nil {
			profile = p
		}
	}

	return Letter(letter, profile).Options(opts).Clock(e.clock).Result()
}

// SuggestionResult pairs ranked template suggestions with the analysis
// they were derived from.
type SuggestionResult struct {
	Suggestions     []template.Suggestion `json:"suggestions"`
	CurrentAnalysis analysis.Profile      `json:"currentAnalysis"`
}

// SuggestTemplates analyzes the identified letter and ranks the candidate
// catalog against it. The catalog is read through a TTL cache; analysis
// itself never fails.
func (e *Engine) SuggestTemplates(ctx context.Context, letterID, userID string) (*SuggestionResult, error) {
	letter, err := e.getLetter(ctx, letterID, userID)
	if err != nil {
		return nil, err
	}

	candidates, err := e.catalog.GetOrLoad(catalogCacheKey, func() ([]template.Candidate, error) {
		return e.templates.ListTemplates(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("plume: load template catalog: %w", err)
	}

	profile := analysis.DetectProfile(letter.Content, letter.JobTitle)
	return &SuggestionResult{
		Suggestions:     template.Match(profile, candidates),
		CurrentAnalysis: profile,
	}, nil
}

// ConvertResult is the outcome of a letter-to-template conversion.
type ConvertResult struct {
	TemplateID         string `json:"templateId"`
	VariablesExtracted int    `json:"variablesExtracted"`
	TemplatePreview    string `json:"templatePreview"`
}

// ConvertToTemplate derives a reusable template from a finalized letter
// and persists it through the TemplateStore. Draft letters are rejected
// with a *ValidationError.
func (e *Engine) ConvertToTemplate(ctx context.Context, letterID, userID string, meta TemplateMeta) (*ConvertResult, error) {
	if err := e.validate.Struct(meta); err != nil {
		return nil, &ValidationError{Field: "templateMeta", Reason: err.Error()}
	}

	letter, err := e.getLetter(ctx, letterID, userID)
	if err != nil {
		return nil, err
	}
	if letter.Status != model.StatusFinal {
		return nil, &ValidationError{Field: "status", Reason: "only finalized letters can become templates"}
	}

	derived := template.Extract(letter)
	stored := StoredTemplate{
		ID:        uuid.NewString(),
		UserID:    userID,
		Meta:      meta,
		Derived:   derived,
		CreatedAt: e.clock(),
	}
	if err := e.templates.SaveTemplate(ctx, stored); err != nil {
		return nil, fmt.Errorf("plume: save template: %w", err)
	}

	// New templates change the suggestion catalog.
	e.catalog.Delete(catalogCacheKey)

	return &ConvertResult{
		TemplateID:         stored.ID,
		VariablesExtracted: len(derived.GlobalVariables),
		TemplatePreview:    derived.Preview,
	}, nil
}

// Compare builds a comparison report for two letters owned by the same
// user.
func (e *Engine) Compare(ctx context.Context, letterOneID, letterTwoID, userID string) (*compare.Result, error) {
	one, err := e.getLetter(ctx, letterOneID, userID)
	if err != nil {
		return nil, err
	}
	two, err := e.getLetter(ctx, letterTwoID, userID)
	if err != nil {
		return nil, err
	}

	result := compare.Letters(one, two)
	return &result, nil
}

// MergeContent combines two letter bodies with the positional heuristic:
// introduction and conclusion from the new content, middle paragraphs from
// the existing content.
func MergeContent(existingContent, newContent string) string {
	return merge.Content(existingContent, newContent)
}

func (e *Engine) getLetter(ctx context.Context, letterID, userID string) (model.LetterRecord, error) {
	letter, err := e.letters.GetLetter(ctx, letterID, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return model.LetterRecord{}, &NotFoundError{Kind: "letter", ID: letterID}
		}
		return model.LetterRecord{}, fmt.Errorf("plume: load letter %s: %w", letterID, err)
	}
	return letter, nil
}
