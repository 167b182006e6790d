package formula

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/1is1/dota-stat-calculator/internal/engine"
	"github.com/1is1/dota-stat-calculator/internal/entities"
	"github.com/1is1/dota-stat-calculator/internal/errors"
)

type EngineTestSuite struct {
	suite.Suite
	engine *Engine
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	s.engine = NewDefault()
}

// sampleHero mirrors a hand-checked reference hero: every assertion in
// TestStatsAtLevelWorkedExample traces back to pencil-and-paper arithmetic
// on these numbers.
func sampleHero() entities.Hero {
	return entities.Hero{
		ID:               "sample",
		Name:             "Sample",
		PrimaryAttribute: entities.PrimaryAttributeStrength,
		Base: entities.BaseStats{
			Str:         20,
			StrGain:     3,
			Agi:         15,
			AgiGain:     1.5,
			HP:          200,
			Armor:       2,
			AttackSpeed: 100,
			BAT:         1.6,
			DmgMin:      10,
			DmgMax:      14,
		},
	}
}

func (s *EngineTestSuite) TestStatsAtLevelWorkedExample() {
	stats := s.engine.StatsAtLevel(sampleHero(), 5)

	s.Assert().Equal(5, stats.Level)
	s.Assert().InDelta(32.0, stats.Strength, 1e-9)  // 20 + 3*4
	s.Assert().InDelta(21.0, stats.Agility, 1e-9)   // 15 + 1.5*4
	s.Assert().InDelta(464.0, stats.HP, 1e-9)       // 200 + 12*22
	s.Assert().InDelta(3.0, stats.Armor, 1e-9)      // 2 + 6/6
	s.Assert().InDelta(106.0, stats.AttackSpeed, 1e-9)
	s.Assert().InDelta(0.6625, stats.AttacksPerSecond, 1e-9) // 1.06/1.6
	s.Assert().InDelta(24.0, stats.AvgDamage, 1e-9)          // 12 + 12
	s.Assert().InDelta(15.9, stats.DPS, 1e-9)
	s.Assert().InDelta(0.18/1.18, stats.DamageReduction, 1e-9)
	s.Assert().InDelta(547.52, stats.EffectiveHP, 1e-9) // 464 * 1.18
}

func (s *EngineTestSuite) TestStatsAtLevelOneReproducesBase() {
	hero := sampleHero()
	stats := s.engine.StatsAtLevel(hero, 1)

	s.Assert().InDelta(hero.Base.HP, stats.HP, 1e-9)
	s.Assert().InDelta(hero.Base.Armor, stats.Armor, 1e-9)
	s.Assert().InDelta(hero.Base.AttackSpeed, stats.AttackSpeed, 1e-9)
	s.Assert().InDelta(12.0, stats.AvgDamage, 1e-9) // mean(10,14), zero bonus at level 1
	s.Assert().InDelta(hero.Base.Str, stats.Strength, 1e-9)
	s.Assert().InDelta(hero.Base.Agi, stats.Agility, 1e-9)
}

func (s *EngineTestSuite) TestAttributeAtLevelZeroGainFixpoint() {
	for level := entities.MinLevel; level <= entities.MaxLevel; level++ {
		s.Assert().InDelta(23.0, s.engine.AttributeAtLevel(23, 0, level), 1e-9,
			"level %d", level)
	}
}

func (s *EngineTestSuite) TestAttributeAtLevelNonDecreasing() {
	prev := math.Inf(-1)
	for level := entities.MinLevel; level <= entities.MaxLevel; level++ {
		v := s.engine.AttributeAtLevel(17, 2.3, level)
		s.Assert().GreaterOrEqual(v, prev, "level %d", level)
		prev = v
	}
}

func (s *EngineTestSuite) TestArmorDamageReductionBounds() {
	prev := -1.0
	for armor := 0.0; armor <= 50; armor += 0.5 {
		r := s.engine.ArmorDamageReduction(armor)
		s.Assert().GreaterOrEqual(r, 0.0, "armor %v", armor)
		s.Assert().Less(r, 1.0, "armor %v", armor)
		s.Assert().Greater(r, prev, "reduction must strictly increase at armor %v", armor)
		prev = r
	}
}

func (s *EngineTestSuite) TestEffectiveHPNeverBelowHP() {
	hero := sampleHero()
	for level := entities.MinLevel; level <= entities.MaxLevel; level++ {
		stats := s.engine.StatsAtLevel(hero, level)
		s.Assert().GreaterOrEqual(stats.EffectiveHP, stats.HP, "level %d", level)
	}

	// Equality holds only with zero armor.
	hero.Base.Armor = 0
	hero.Base.AgiGain = 0
	stats := s.engine.StatsAtLevel(hero, 10)
	s.Assert().InDelta(stats.HP, stats.EffectiveHP, 1e-9)
}

func (s *EngineTestSuite) TestAttacksPerSecondPositive() {
	for _, bat := range []float64{0.5, 1.0, 1.7, 2.5} {
		s.Assert().Greater(s.engine.AttacksPerSecond(100, bat), 0.0, "bat %v", bat)
	}
}

func (s *EngineTestSuite) TestPrimaryDamageBonus() {
	testCases := []struct {
		name    string
		primary entities.PrimaryAttribute
		want    float64
	}{
		{name: "strength gets its own delta", primary: entities.PrimaryAttributeStrength, want: 12},
		{name: "agility gets its own delta", primary: entities.PrimaryAttributeAgility, want: 6},
		{name: "intelligence gets its own delta", primary: entities.PrimaryAttributeIntelligence, want: 4},
		{name: "universal gets a fraction of everything", primary: entities.PrimaryAttributeUniversal, want: 0.7 * (12 + 6 + 4)},
		{name: "unrecognized gets nothing", primary: entities.PrimaryAttributeUnspecified, want: 0},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			got := s.engine.PrimaryDamageBonus(tc.primary, 12, 6, 4)
			s.Assert().InDelta(tc.want, got, 1e-9)
		})
	}
}

func (s *EngineTestSuite) TestMissingAttackSpeedAndBATDefaults() {
	hero := sampleHero()
	hero.Base.AttackSpeed = 0
	hero.Base.BAT = 0
	hero.Base.AgiGain = 0

	stats := s.engine.StatsAtLevel(hero, 1)
	s.Assert().InDelta(100.0, stats.AttackSpeed, 1e-9)
	s.Assert().InDelta(1.0/1.7, stats.AttacksPerSecond, 1e-9)
}

func (s *EngineTestSuite) TestBuildSeriesShape() {
	heroes := []entities.Hero{sampleHero(), {
		ID:               "other",
		Name:             "Other",
		PrimaryAttribute: entities.PrimaryAttributeUniversal,
		Base:             entities.BaseStats{Str: 22, StrGain: 2.4, HP: 180, DmgMin: 20, DmgMax: 30},
	}}

	series := s.engine.BuildSeries(heroes, entities.MetricDPS, engine.DefaultLevelRange())

	s.Require().Len(series, 2)
	for i, sr := range series {
		s.Assert().Equal(heroes[i].ID, sr.HeroID)
		s.Assert().Equal(heroes[i].Name, sr.Name)
		s.Require().Len(sr.Points, 30)
		for j, p := range sr.Points {
			s.Assert().Equal(j+1, p.Level)
		}
	}

	// Spot-check a point against a direct computation.
	stats := s.engine.StatsAtLevel(heroes[0], 17)
	s.Assert().InDelta(stats.DPS, series[0].Points[16].Value, 1e-9)
}

func (s *EngineTestSuite) TestBuildSeriesZeroRangeUsesDefault() {
	series := s.engine.BuildSeries([]entities.Hero{sampleHero()}, entities.MetricHP, engine.LevelRange{})
	s.Require().Len(series, 1)
	s.Assert().Len(series[0].Points, 30)
}

func (s *EngineTestSuite) TestBuildSeriesCustomRange() {
	series := s.engine.BuildSeries([]entities.Hero{sampleHero()}, entities.MetricArmor, engine.LevelRange{From: 5, To: 9})
	s.Require().Len(series, 1)
	s.Require().Len(series[0].Points, 5)
	s.Assert().Equal(5, series[0].Points[0].Level)
	s.Assert().Equal(9, series[0].Points[4].Level)
}

func TestNew(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		eng, err := New(nil)
		assert.Error(t, err)
		assert.Nil(t, eng)
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "config is required")
	})

	t.Run("zero armor divisor", func(t *testing.T) {
		constants := DefaultConstants()
		constants.AgilityPerArmorPoint = 0

		eng, err := New(&Config{Constants: constants})
		assert.Error(t, err)
		assert.Nil(t, eng)
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("valid config", func(t *testing.T) {
		eng, err := New(&Config{Constants: DefaultConstants()})
		assert.NoError(t, err)
		assert.NotNil(t, eng)
	})

	t.Run("custom coefficients flow through", func(t *testing.T) {
		constants := DefaultConstants()
		constants.HPPerStrength = 10

		eng, err := New(&Config{Constants: constants})
		assert.NoError(t, err)

		hero := sampleHero()
		stats := eng.StatsAtLevel(hero, 5) // delta str 12
		assert.InDelta(t, 320.0, stats.HP, 1e-9)
	})
}
