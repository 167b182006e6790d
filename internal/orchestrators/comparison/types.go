package comparison

import (
	"github.com/1is1/dota-stat-calculator/internal/engine"
	"github.com/1is1/dota-stat-calculator/internal/entities"
)

// ListHeroesInput defines the request for listing heroes
type ListHeroesInput struct {
	// Search filters heroes by case-insensitive substring match on the
	// display name. Empty returns every hero.
	Search string
}

// ListHeroesOutput defines the response for listing heroes
type ListHeroesOutput struct {
	Heroes []entities.Hero
}

// GetHeroStatsInput defines the request for one hero's derived stats
type GetHeroStatsInput struct {
	HeroID string
	// Level defaults to 1 when zero.
	Level int
}

// GetHeroStatsOutput defines the response for one hero's derived stats
type GetHeroStatsOutput struct {
	Hero  *entities.Hero
	Stats entities.DerivedStats
}

// CompareHeroesInput defines the request for a multi-hero comparison
type CompareHeroesInput struct {
	HeroIDs []string
	// Metric defaults to DPS when empty.
	Metric entities.Metric
	// Level is the focus level for the ranking summary. Defaults to the top
	// of the level range when zero.
	Level int
	// LevelRange defaults to [1, 30] when zero.
	LevelRange engine.LevelRange
}

// RankingEntry is one hero's standing at the focus level
type RankingEntry struct {
	HeroID string  `json:"hero_id"`
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
}

// CompareHeroesOutput defines the response for a multi-hero comparison
type CompareHeroesOutput struct {
	// Series holds one level-ordered sequence per requested hero, in
	// request order.
	Series []entities.Series
	// Ranking orders the heroes by metric value at the focus level,
	// best first, ties broken by name.
	Ranking []RankingEntry
	Metric  entities.Metric
	Level   int
	// YLabel and Step are the metric's chart presentation defaults.
	YLabel string
	Step   float64
}
