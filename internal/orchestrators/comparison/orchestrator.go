// Package comparison implements the hero comparison orchestrator: the
// recompute-on-demand seam between stored hero records and the derived-stat
// views the delivery surfaces render.
package comparison

//go:generate mockgen -destination=mock/mock_service.go -package=comparisonmock github.com/1is1/dota-stat-calculator/internal/orchestrators/comparison Service

import (
	"context"
	"sort"
	"strings"

	"github.com/1is1/dota-stat-calculator/internal/engine"
	"github.com/1is1/dota-stat-calculator/internal/entities"
	"github.com/1is1/dota-stat-calculator/internal/errors"
	"github.com/1is1/dota-stat-calculator/internal/repositories/hero"
)

// Service defines the interface for hero comparison operations
type Service interface {
	// ListHeroes returns the hero roster, optionally filtered by a search
	// term.
	ListHeroes(ctx context.Context, input *ListHeroesInput) (*ListHeroesOutput, error)

	// GetHeroStats computes a single hero's derived stats at one level.
	GetHeroStats(ctx context.Context, input *GetHeroStatsInput) (*GetHeroStatsOutput, error)

	// CompareHeroes builds per-hero metric series across a level range plus
	// a ranking at the focus level.
	CompareHeroes(ctx context.Context, input *CompareHeroesInput) (*CompareHeroesOutput, error)
}

// Config holds the dependencies for the comparison orchestrator
type Config struct {
	HeroRepo   hero.Repository
	Calculator engine.Calculator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.HeroRepo == nil {
		vb.RequiredField("HeroRepo")
	}
	if c.Calculator == nil {
		vb.RequiredField("Calculator")
	}

	return vb.Build()
}

type orchestrator struct {
	heroRepo hero.Repository
	calc     engine.Calculator
}

// NewOrchestrator creates a new comparison orchestrator with the provided
// dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		heroRepo: cfg.HeroRepo,
		calc:     cfg.Calculator,
	}, nil
}

// ListHeroes returns every hero, or the heroes whose name contains the
// search term. The repository already sorts by name.
func (o *orchestrator) ListHeroes(ctx context.Context, input *ListHeroesInput) (*ListHeroesOutput, error) {
	if input == nil {
		input = &ListHeroesInput{}
	}

	heroes, err := o.heroRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list heroes")
	}

	search := strings.ToLower(strings.TrimSpace(input.Search))
	if search == "" {
		return &ListHeroesOutput{Heroes: heroes}, nil
	}

	filtered := make([]entities.Hero, 0, len(heroes))
	for _, h := range heroes {
		if strings.Contains(strings.ToLower(h.Name), search) {
			filtered = append(filtered, h)
		}
	}
	return &ListHeroesOutput{Heroes: filtered}, nil
}

// GetHeroStats computes one hero's derived stats. A zero level means
// level 1.
func (o *orchestrator) GetHeroStats(ctx context.Context, input *GetHeroStatsInput) (*GetHeroStatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	level := input.Level
	if level == 0 {
		level = entities.MinLevel
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("hero_id", input.HeroID, vb)
	errors.ValidateRange("level", level, entities.MinLevel, entities.MaxLevel, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	h, err := o.heroRepo.Get(ctx, input.HeroID)
	if err != nil {
		return nil, err
	}

	return &GetHeroStatsOutput{
		Hero:  h,
		Stats: o.calc.StatsAtLevel(*h, level),
	}, nil
}

// CompareHeroes builds the series and ranking for a set of heroes. Unknown
// hero IDs surface the repository's NotFound unchanged.
func (o *orchestrator) CompareHeroes(ctx context.Context, input *CompareHeroesInput) (*CompareHeroesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	metric := input.Metric
	if metric == "" {
		metric = entities.MetricDPS
	}
	normalized, metricOK := entities.ParseMetric(string(metric))
	if metricOK {
		metric = normalized
	}

	levels := input.LevelRange
	if levels.IsZero() {
		levels = engine.DefaultLevelRange()
	}

	level := input.Level
	if level == 0 {
		level = levels.To
	}

	vb := errors.NewValidationBuilder()
	if len(input.HeroIDs) == 0 {
		vb.Field("hero_ids", "at least one hero is required")
	}
	if !metricOK {
		vb.InvalidField("metric", "unknown metric "+string(metric))
	}
	errors.ValidateRange("level_range.from", levels.From, entities.MinLevel, entities.MaxLevel, vb)
	errors.ValidateRange("level_range.to", levels.To, entities.MinLevel, entities.MaxLevel, vb)
	if levels.From > levels.To {
		vb.InvalidField("level_range", "from must not exceed to")
	}
	errors.ValidateRange("level", level, entities.MinLevel, entities.MaxLevel, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	heroes, err := o.heroRepo.ListByIDs(ctx, input.HeroIDs)
	if err != nil {
		return nil, err
	}

	return &CompareHeroesOutput{
		Series:  o.calc.BuildSeries(heroes, metric, levels),
		Ranking: o.ranking(heroes, metric, level),
		Metric:  metric,
		Level:   level,
		YLabel:  metric.Label(),
		Step:    metric.DefaultStep(),
	}, nil
}

// ranking orders heroes by the metric at the focus level, best first. Ties
// fall back to name so the order is stable across calls.
func (o *orchestrator) ranking(heroes []entities.Hero, metric entities.Metric, level int) []RankingEntry {
	entries := make([]RankingEntry, 0, len(heroes))
	for _, h := range heroes {
		stats := o.calc.StatsAtLevel(h, level)
		entries = append(entries, RankingEntry{
			HeroID: h.ID,
			Name:   h.Name,
			Value:  metric.ValueFrom(stats),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}
