// Package entities provides core data structures for dota-stat-calculator.
package entities

import "strings"

// Level bounds for every stat computation and series
const (
	MinLevel = 1
	MaxLevel = 30
)

// PrimaryAttribute is the attribute category that earns a hero bonus damage
type PrimaryAttribute string

// Primary attribute categories
const (
	PrimaryAttributeUnspecified  PrimaryAttribute = ""
	PrimaryAttributeStrength     PrimaryAttribute = "strength"
	PrimaryAttributeAgility      PrimaryAttribute = "agility"
	PrimaryAttributeIntelligence PrimaryAttribute = "intelligence"
	PrimaryAttributeUniversal    PrimaryAttribute = "universal"
)

// ParsePrimaryAttribute normalizes the spellings that show up in scraped
// tables ("STR", "Agi", "universal", ...). Unrecognized input maps to
// PrimaryAttributeUnspecified, which earns no damage bonus.
func ParsePrimaryAttribute(s string) PrimaryAttribute {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "str", "strength":
		return PrimaryAttributeStrength
	case "agi", "agility":
		return PrimaryAttributeAgility
	case "int", "intelligence":
		return PrimaryAttributeIntelligence
	case "uni", "all", "universal":
		return PrimaryAttributeUniversal
	default:
		return PrimaryAttributeUnspecified
	}
}

// Hero represents one character record from the scraped attribute table.
// Heroes are immutable after load.
type Hero struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	PrimaryAttribute PrimaryAttribute `json:"primary_attribute"`
	Base             BaseStats        `json:"base"`
}

// BaseStats is a hero's level-1 stat bundle. Missing numeric fields are
// zero; AttackSpeed and BAT get their 100 / 1.7 defaults at the dataset
// boundary, not here.
type BaseStats struct {
	Str     float64 `json:"str"`
	StrGain float64 `json:"str_gain"`
	Agi     float64 `json:"agi"`
	AgiGain float64 `json:"agi_gain"`
	Int     float64 `json:"int"`
	IntGain float64 `json:"int_gain"`

	HP          float64 `json:"hp"`
	Armor       float64 `json:"armor"`
	AttackSpeed float64 `json:"attack_speed"`
	BAT         float64 `json:"bat"`
	DmgMin      float64 `json:"dmg_min"`
	DmgMax      float64 `json:"dmg_max"`

	// Display extras carried by the dataset; not used by the formulas.
	MoveSpeed float64 `json:"move_speed,omitempty"`
	Range     float64 `json:"range,omitempty"`
	HPRegen   float64 `json:"hp_regen,omitempty"`
	MP        float64 `json:"mp,omitempty"`
	MPRegen   float64 `json:"mp_regen,omitempty"`
}
