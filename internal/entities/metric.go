package entities

import "strings"

// Metric identifies one plottable DerivedStats field
type Metric string

// Plottable metrics
const (
	MetricHP              Metric = "hp"
	MetricArmor           Metric = "armor"
	MetricAttackSpeed     Metric = "attack_speed"
	MetricAPS             Metric = "aps"
	MetricAvgDamage       Metric = "avg_damage"
	MetricDPS             Metric = "dps"
	MetricDamageReduction Metric = "damage_reduction"
	MetricEffectiveHP     Metric = "ehp"
	MetricStrength        Metric = "strength"
	MetricAgility         Metric = "agility"
	MetricIntelligence    Metric = "intelligence"
)

// metricInfo carries per-metric presentation defaults. Step is the default
// y-axis gridline step handed to the chart renderer.
type metricInfo struct {
	label string
	step  float64
}

var metricTable = map[Metric]metricInfo{
	MetricHP:              {label: "Hit Points", step: 200},
	MetricArmor:           {label: "Armor", step: 2},
	MetricAttackSpeed:     {label: "Attack Speed", step: 20},
	MetricAPS:             {label: "Attacks / Second", step: 0.25},
	MetricAvgDamage:       {label: "Average Damage", step: 20},
	MetricDPS:             {label: "Damage / Second", step: 25},
	MetricDamageReduction: {label: "Damage Reduction", step: 0.1},
	MetricEffectiveHP:     {label: "Effective HP", step: 200},
	MetricStrength:        {label: "Strength", step: 20},
	MetricAgility:         {label: "Agility", step: 20},
	MetricIntelligence:    {label: "Intelligence", step: 20},
}

var metricOrder = []Metric{
	MetricHP,
	MetricEffectiveHP,
	MetricArmor,
	MetricDamageReduction,
	MetricAttackSpeed,
	MetricAPS,
	MetricAvgDamage,
	MetricDPS,
	MetricStrength,
	MetricAgility,
	MetricIntelligence,
}

// Metrics returns every metric in stable display order.
func Metrics() []Metric {
	out := make([]Metric, len(metricOrder))
	copy(out, metricOrder)
	return out
}

// ParseMetric resolves user input to a Metric. The bool reports whether the
// input named a known metric.
func ParseMetric(s string) (Metric, bool) {
	m := Metric(strings.ToLower(strings.TrimSpace(s)))
	_, ok := metricTable[m]
	return m, ok
}

// Label returns the human-readable axis label for the metric.
func (m Metric) Label() string {
	return metricTable[m].label
}

// DefaultStep returns the default y-axis gridline step for the metric.
func (m Metric) DefaultStep() float64 {
	if info, ok := metricTable[m]; ok {
		return info.step
	}
	return 1
}

// ValueFrom extracts the metric's value from a computed stat record.
func (m Metric) ValueFrom(s DerivedStats) float64 {
	switch m {
	case MetricHP:
		return s.HP
	case MetricArmor:
		return s.Armor
	case MetricAttackSpeed:
		return s.AttackSpeed
	case MetricAPS:
		return s.AttacksPerSecond
	case MetricAvgDamage:
		return s.AvgDamage
	case MetricDPS:
		return s.DPS
	case MetricDamageReduction:
		return s.DamageReduction
	case MetricEffectiveHP:
		return s.EffectiveHP
	case MetricStrength:
		return s.Strength
	case MetricAgility:
		return s.Agility
	case MetricIntelligence:
		return s.Intelligence
	default:
		return 0
	}
}
