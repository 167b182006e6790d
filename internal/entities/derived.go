package entities

// DerivedStats is one hero's computed stat record at a single level.
// Records are ephemeral: recomputed on every query, never stored.
type DerivedStats struct {
	Level int `json:"level"`

	Strength     float64 `json:"strength"`
	Agility      float64 `json:"agility"`
	Intelligence float64 `json:"intelligence"`

	HP               float64 `json:"hp"`
	Armor            float64 `json:"armor"`
	AttackSpeed      float64 `json:"attack_speed"`
	AttacksPerSecond float64 `json:"attacks_per_second"`
	AvgDamage        float64 `json:"avg_damage"`
	DPS              float64 `json:"dps"`
	DamageReduction  float64 `json:"damage_reduction"`
	EffectiveHP      float64 `json:"effective_hp"`
}
