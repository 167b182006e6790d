// Package formula implements the derived-stat calculator from first
// principles: closed-form attribute growth plus the armor, attack-speed,
// and damage rules captured in Constants.
package formula

import (
	"github.com/1is1/dota-stat-calculator/internal/engine"
	"github.com/1is1/dota-stat-calculator/internal/entities"
	"github.com/1is1/dota-stat-calculator/internal/errors"
)

// Engine implements engine.Calculator
type Engine struct {
	constants Constants
}

var _ engine.Calculator = (*Engine)(nil)

// Config contains configuration for creating a new Engine
type Config struct {
	Constants Constants
}

// Validate checks the coefficient set
func (c *Config) Validate() error {
	return c.Constants.Validate()
}

// New creates a formula engine with the given coefficients
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{constants: cfg.Constants}, nil
}

// NewDefault creates a formula engine with the built-in coefficients
func NewDefault() *Engine {
	return &Engine{constants: DefaultConstants()}
}

// Constants returns the coefficient set the engine was built with
func (e *Engine) Constants() Constants {
	return e.constants
}

// AttributeAtLevel grows an attribute linearly: base + gain*(level-1).
// Level 1 returns base exactly.
func (e *Engine) AttributeAtLevel(base, gainPerLevel float64, level int) float64 {
	return base + gainPerLevel*float64(level-1)
}

// ArmorDamageReduction maps armor to the physical damage-reduction
// fraction. Monotonically increasing, bounded below 1 for finite armor.
func (e *Engine) ArmorDamageReduction(armor float64) float64 {
	return (e.constants.ArmorK * armor) / (1 + e.constants.ArmorK*armor)
}

// AttacksPerSecond converts an attack-speed rating and base attack time
// into attacks per second.
func (e *Engine) AttacksPerSecond(totalAttackSpeed, baseAttackTime float64) float64 {
	return (totalAttackSpeed / 100) / baseAttackTime
}

// AverageDamage is the arithmetic mean of the base damage roll.
func (e *Engine) AverageDamage(minDamage, maxDamage float64) float64 {
	return (minDamage + maxDamage) / 2
}

// PrimaryDamageBonus returns the bonus attack damage earned from attribute
// growth. The matching attribute contributes 1:1 (scaled by
// PrimaryDamagePerPoint); universal heroes get a fraction of all three
// deltas; an unrecognized category earns nothing.
func (e *Engine) PrimaryDamageBonus(primary entities.PrimaryAttribute, deltaStr, deltaAgi, deltaInt float64) float64 {
	switch primary {
	case entities.PrimaryAttributeStrength:
		return deltaStr * e.constants.PrimaryDamagePerPoint
	case entities.PrimaryAttributeAgility:
		return deltaAgi * e.constants.PrimaryDamagePerPoint
	case entities.PrimaryAttributeIntelligence:
		return deltaInt * e.constants.PrimaryDamagePerPoint
	case entities.PrimaryAttributeUniversal:
		return e.constants.UniversalDamageFactor * (deltaStr + deltaAgi + deltaInt)
	default:
		return 0
	}
}

// StatsAtLevel computes the complete derived-stat record for one hero at
// one level. O(1), allocates only the result.
func (e *Engine) StatsAtLevel(hero entities.Hero, level int) entities.DerivedStats {
	base := hero.Base

	str := e.AttributeAtLevel(base.Str, base.StrGain, level)
	agi := e.AttributeAtLevel(base.Agi, base.AgiGain, level)
	intel := e.AttributeAtLevel(base.Int, base.IntGain, level)

	deltaStr := str - base.Str
	deltaAgi := agi - base.Agi
	deltaInt := intel - base.Int

	hp := base.HP + deltaStr*e.constants.HPPerStrength
	armor := base.Armor + deltaAgi/e.constants.AgilityPerArmorPoint

	attackSpeed := e.startingAttackSpeed(base) + deltaAgi*e.constants.AttackSpeedPerAgility
	aps := e.AttacksPerSecond(attackSpeed, e.baseAttackTime(base))

	avgDamage := e.AverageDamage(base.DmgMin, base.DmgMax) +
		e.PrimaryDamageBonus(hero.PrimaryAttribute, deltaStr, deltaAgi, deltaInt)

	reduction := e.ArmorDamageReduction(armor)

	return entities.DerivedStats{
		Level:            level,
		Strength:         str,
		Agility:          agi,
		Intelligence:     intel,
		HP:               hp,
		Armor:            armor,
		AttackSpeed:      attackSpeed,
		AttacksPerSecond: aps,
		AvgDamage:        avgDamage,
		DPS:              avgDamage * aps,
		DamageReduction:  reduction,
		EffectiveHP:      hp / (1 - reduction),
	}
}

// BuildSeries samples the metric at every level in range, one series per
// hero. Everything is recomputed on each call; with 30 levels and tens of
// heroes there is nothing worth caching.
func (e *Engine) BuildSeries(heroes []entities.Hero, metric entities.Metric, levels engine.LevelRange) []entities.Series {
	if levels.IsZero() {
		levels = engine.DefaultLevelRange()
	}

	out := make([]entities.Series, 0, len(heroes))
	for _, hero := range heroes {
		points := make([]entities.Point, 0, levels.Count())
		for level := levels.From; level <= levels.To; level++ {
			stats := e.StatsAtLevel(hero, level)
			points = append(points, entities.Point{Level: level, Value: metric.ValueFrom(stats)})
		}
		out = append(out, entities.Series{HeroID: hero.ID, Name: hero.Name, Points: points})
	}
	return out
}

// Scraped tables leave attack speed and attack time blank for some heroes;
// the calculator substitutes the conventional defaults (100 rating, 1.7s)
// so every hero stays computable.
func (e *Engine) startingAttackSpeed(base entities.BaseStats) float64 {
	if base.AttackSpeed <= 0 {
		return e.constants.DefaultAttackSpeed
	}
	return base.AttackSpeed
}

func (e *Engine) baseAttackTime(base entities.BaseStats) float64 {
	if base.BAT <= 0 {
		return e.constants.DefaultBAT
	}
	return base.BAT
}
