package engine

import (
	"github.com/1is1/dota-stat-calculator/internal/entities"
)

// LevelRange is an inclusive span of levels to sample
type LevelRange struct {
	From int
	To   int
}

// DefaultLevelRange covers every level a hero can reach
func DefaultLevelRange() LevelRange {
	return LevelRange{From: entities.MinLevel, To: entities.MaxLevel}
}

// Count returns the number of levels in the range
func (r LevelRange) Count() int {
	if r.To < r.From {
		return 0
	}
	return r.To - r.From + 1
}

// IsZero reports whether the range was left unset
func (r LevelRange) IsZero() bool {
	return r.From == 0 && r.To == 0
}
