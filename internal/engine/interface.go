// Package engine declares the derived-stat calculation contract.
package engine

import (
	"github.com/1is1/dota-stat-calculator/internal/entities"
)

// Calculator computes derived combat stats from a hero's base attribute
// table. Implementations are pure: every method is deterministic, total
// over numeric input, and free of side effects. Malformed numeric input
// (NaN, infinities) propagates through the arithmetic rather than failing.
type Calculator interface {
	// StatsAtLevel computes the full derived-stat record for one hero at
	// one level. Levels below entities.MinLevel are the caller's problem;
	// validation happens at the orchestrator boundary.
	StatsAtLevel(hero entities.Hero, level int) entities.DerivedStats

	// BuildSeries produces one level-ordered series per hero for the given
	// metric. Nothing is cached: every call recomputes from base stats.
	BuildSeries(heroes []entities.Hero, metric entities.Metric, levels LevelRange) []entities.Series

	// Formula primitives, exposed for display surfaces and tests.
	AttributeAtLevel(base, gainPerLevel float64, level int) float64
	ArmorDamageReduction(armor float64) float64
	AttacksPerSecond(totalAttackSpeed, baseAttackTime float64) float64
	AverageDamage(minDamage, maxDamage float64) float64
	PrimaryDamageBonus(primary entities.PrimaryAttribute, deltaStr, deltaAgi, deltaInt float64) float64
}
