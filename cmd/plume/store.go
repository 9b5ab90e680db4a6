package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/motivationletter/plume"
	"github.com/motivationletter/plume/model"
	"github.com/motivationletter/plume/template"
)

// fileStore backs the engine with plain JSON files: one letter file per
// letter under lettersDir, one stored template per file under templatesDir.
// It is a demonstration collaborator, not a production store.
type fileStore struct {
	lettersDir   string
	templatesDir string
}

func newFileStore(lettersDir, templatesDir string) *fileStore {
	return &fileStore{lettersDir: lettersDir, templatesDir: templatesDir}
}

func (s *fileStore) GetLetter(_ context.Context, letterID, userID string) (model.LetterRecord, error) {
	in, err := readLetterFile(filepath.Join(s.lettersDir, letterID+".json"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.LetterRecord{}, plume.ErrNotFound
		}
		return model.LetterRecord{}, err
	}
	if in.Letter.UserID != userID {
		return model.LetterRecord{}, plume.ErrNotFound
	}
	return in.Letter, nil
}

func (s *fileStore) GetProfile(_ context.Context, _ string) (model.UserProfile, error) {
	in, err := readLetterFile(filepath.Join(s.lettersDir, "profile.json"))
	if err != nil {
		return model.UserProfile{}, err
	}
	return in.Profile, nil
}

func (s *fileStore) ListTemplates(context.Context) ([]template.Candidate, error) {
	paths, err := filepath.Glob(filepath.Join(s.templatesDir, "*.json"))
	if err != nil {
		return nil, err
	}

	candidates := make([]template.Candidate, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		var stored plume.StoredTemplate
		if err := json.Unmarshal(data, &stored); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		candidates = append(candidates, template.Candidate{
			ID:              stored.ID,
			Name:            stored.Meta.Name,
			Type:            stored.Meta.Type,
			Industry:        stored.Meta.Industry,
			ExperienceLevel: stored.Meta.ExperienceLevel,
			Keywords:        stored.Derived.Keywords,
			Category:        stored.Meta.Category,
			IsPremium:       stored.Meta.IsPremium,
		})
	}
	return candidates, nil
}

func (s *fileStore) SaveTemplate(_ context.Context, stored plume.StoredTemplate) error {
	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return err
	}
	path := filepath.Join(s.templatesDir, stored.ID+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
