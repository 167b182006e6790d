package formula

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/1is1/dota-stat-calculator/internal/errors"
)

// Constants are the tunable coefficients behind every derived stat. The
// defaults are a simplified approximation of the game's real rules, not an
// exact replica; deployments chasing parity with a particular patch override
// them from a YAML file.
type Constants struct {
	// ArmorK drives damage reduction: K*armor / (1 + K*armor).
	ArmorK float64 `yaml:"armor_k"`

	// HPPerStrength is bonus hit points per strength point.
	HPPerStrength float64 `yaml:"hp_per_strength"`

	// AgilityPerArmorPoint is how many agility points buy one armor point.
	AgilityPerArmorPoint float64 `yaml:"agility_per_armor_point"`

	// AttackSpeedPerAgility is attack-speed rating per agility point.
	AttackSpeedPerAgility float64 `yaml:"attack_speed_per_agility"`

	// PrimaryDamagePerPoint is bonus damage per primary-attribute point.
	PrimaryDamagePerPoint float64 `yaml:"primary_damage_per_point"`

	// UniversalDamageFactor scales the summed attribute deltas for
	// universal heroes.
	UniversalDamageFactor float64 `yaml:"universal_damage_factor"`

	// DefaultAttackSpeed substitutes for a missing starting attack speed.
	DefaultAttackSpeed float64 `yaml:"default_attack_speed"`

	// DefaultBAT substitutes for a missing base attack time.
	DefaultBAT float64 `yaml:"default_bat"`
}

// DefaultConstants returns the built-in coefficient set.
func DefaultConstants() Constants {
	return Constants{
		ArmorK:                0.06,
		HPPerStrength:         22,
		AgilityPerArmorPoint:  6,
		AttackSpeedPerAgility: 1,
		PrimaryDamagePerPoint: 1,
		UniversalDamageFactor: 0.7,
		DefaultAttackSpeed:    100,
		DefaultBAT:            1.7,
	}
}

// LoadConstants reads a YAML coefficient file over the defaults. An empty
// path or a missing file yields the defaults unchanged, so a bare deployment
// needs no config file at all.
func LoadConstants(path string) (Constants, error) {
	constants := DefaultConstants()
	if path == "" {
		return constants, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return constants, nil
		}
		return constants, errors.Wrapf(err, "failed to read constants file %s", path)
	}

	if err := yaml.Unmarshal(data, &constants); err != nil {
		return DefaultConstants(), errors.WrapWithCodef(err, errors.CodeInvalidArgument,
			"failed to parse constants file %s", path)
	}

	return constants, nil
}

// Validate rejects coefficient sets that would break the formulas.
func (c Constants) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.AgilityPerArmorPoint == 0 {
		vb.InvalidField("agility_per_armor_point", "must not be zero")
	}
	if c.DefaultAttackSpeed <= 0 {
		vb.InvalidField("default_attack_speed", "must be positive")
	}
	if c.DefaultBAT <= 0 {
		vb.InvalidField("default_bat", "must be positive")
	}
	if c.ArmorK < 0 {
		vb.InvalidField("armor_k", "must not be negative")
	}
	return vb.Build()
}
