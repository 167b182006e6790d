package testutils

import (
	"github.com/1is1/dota-stat-calculator/internal/entities"
)

// CreateTestHero creates a hero with plausible base values. The ID doubles
// as the display-name seed so fixtures stay distinguishable in failures.
func CreateTestHero(id string) entities.Hero {
	return entities.Hero{
		ID:               id,
		Name:             "Hero " + id,
		PrimaryAttribute: entities.PrimaryAttributeStrength,
		Base: entities.BaseStats{
			Str: 22, StrGain: 2.5,
			Agi: 16, AgiGain: 1.8,
			Int: 14, IntGain: 1.6,
			HP: 600, Armor: 3, AttackSpeed: 110, BAT: 1.7,
			DmgMin: 45, DmgMax: 53,
		},
	}
}

// CreateTestHeroes creates a small roster covering every primary attribute,
// deliberately out of alphabetical order so sorting behavior is observable.
func CreateTestHeroes() []entities.Hero {
	return []entities.Hero{
		{
			ID:               "zeus",
			Name:             "Zeus",
			PrimaryAttribute: entities.PrimaryAttributeIntelligence,
			Base: entities.BaseStats{
				Str: 19, StrGain: 2.1, Agi: 11, AgiGain: 1.2, Int: 22, IntGain: 3.3,
				HP: 538, Armor: 2.4, AttackSpeed: 100, BAT: 1.7, DmgMin: 45, DmgMax: 53,
			},
		},
		{
			ID:               "anti-mage",
			Name:             "Anti-Mage",
			PrimaryAttribute: entities.PrimaryAttributeAgility,
			Base: entities.BaseStats{
				Str: 19, StrGain: 1.6, Agi: 24, AgiGain: 2.8, Int: 12, IntGain: 1.8,
				HP: 538, Armor: 5, AttackSpeed: 124, BAT: 1.4, DmgMin: 53, DmgMax: 57,
			},
		},
		{
			ID:               "axe",
			Name:             "Axe",
			PrimaryAttribute: entities.PrimaryAttributeStrength,
			Base: entities.BaseStats{
				Str: 25, StrGain: 3.4, Agi: 20, AgiGain: 2.2, Int: 18, IntGain: 1.6,
				HP: 670, Armor: 2.3, AttackSpeed: 120, BAT: 1.7, DmgMin: 49, DmgMax: 53,
			},
		},
		{
			ID:               "void-spirit",
			Name:             "Void Spirit",
			PrimaryAttribute: entities.PrimaryAttributeUniversal,
			Base: entities.BaseStats{
				Str: 21, StrGain: 2.4, Agi: 19, AgiGain: 2.2, Int: 21, IntGain: 2.4,
				HP: 582, Armor: 3.2, AttackSpeed: 115, BAT: 1.7, DmgMin: 50, DmgMax: 55,
			},
		},
	}
}
