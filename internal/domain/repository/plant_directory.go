package repository

import "plantcare/internal/domain/entity"

// PlantDirectory is the static, in-memory set of known plants used for
// offline suggestions.
type PlantDirectory interface {
	// All returns every directory entry. Callers must not mutate the result.
	All() []entity.Candidate

	FindByID(id string) (entity.Candidate, bool)
}
