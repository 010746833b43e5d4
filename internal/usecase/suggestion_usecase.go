package usecase

import (
	"context"

	"plantcare/internal/domain/entity"
	"plantcare/internal/domain/service"
)

// ExternalSearchFunc queries an external plant provider.
type ExternalSearchFunc func(ctx context.Context, query string) ([]service.ExternalPlant, error)

// SearchOptions tunes a suggestion search.
type SearchOptions struct {
	UseExternal    bool
	MaxResults     int // <= 0 uses the configured default
	ExternalSearch ExternalSearchFunc
}

// PlantDraft pre-fills a new plant from a selected candidate.
type PlantDraft struct {
	Name    string `json:"name"`
	Species string `json:"species"`
	Notes   string `json:"notes"`
}

// SuggestionUsecase ranks plant candidates from the local directory and,
// optionally, an external provider.
type SuggestionUsecase interface {
	// Search never fails; external errors degrade to local results.
	Search(ctx context.Context, query string, opts SearchOptions) []entity.Candidate

	// Directory lists the whole local directory in pt-BR order.
	Directory(ctx context.Context) []entity.Candidate

	// Lookup selects a local directory entry by id.
	Lookup(ctx context.Context, id string) (*entity.Candidate, error)

	// Draft builds creation defaults for the candidate.
	Draft(candidate *entity.Candidate) PlantDraft

	// SearchExternal proxies the external provider directly.
	SearchExternal(ctx context.Context, query string) ([]service.ExternalPlant, error)
}
