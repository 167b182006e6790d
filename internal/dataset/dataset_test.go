package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1is1/dota-stat-calculator/internal/entities"
	"github.com/1is1/dota-stat-calculator/internal/errors"
)

func TestParse(t *testing.T) {
	input := `{
		"source": "test",
		"count": 2,
		"heroes": [
			{
				"id": "axe",
				"name": "Axe",
				"primaryAttribute": "STR",
				"base": {"str": 25, "strGain": 3.4, "hp": 670, "armor": 2.3,
				         "dmgMin": 49, "dmgMax": 53, "attackSpeed": 120, "bat": 1.7}
			},
			{
				"id": "lina",
				"name": "Lina",
				"primaryAttribute": "INT",
				"base": {"int": 30, "intGain": 3.7, "hp": 560}
			}
		]
	}`

	snap, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, "test", snap.Source)
	require.Len(t, snap.Heroes, 2)

	axe := snap.Heroes[0].Hero()
	assert.Equal(t, "axe", axe.ID)
	assert.Equal(t, entities.PrimaryAttributeStrength, axe.PrimaryAttribute)
	assert.InDelta(t, 25.0, axe.Base.Str, 1e-9)
	assert.InDelta(t, 120.0, axe.Base.AttackSpeed, 1e-9)
	assert.InDelta(t, 1.7, axe.Base.BAT, 1e-9)
}

func TestParseBoundaryDefaults(t *testing.T) {
	input := `{
		"source": "test",
		"count": 1,
		"heroes": [
			{
				"id": "blank",
				"name": "Blank",
				"primaryAttribute": "AGI",
				"base": {"agi": 20, "agiGain": "2.9*", "hp": null}
			}
		]
	}`

	snap, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	hero := snap.Heroes[0].Hero()
	assert.InDelta(t, 20.0, hero.Base.Agi, 1e-9)
	assert.Zero(t, hero.Base.AgiGain, "string cells count as absent")
	assert.Zero(t, hero.Base.HP, "null cells count as absent")
	assert.Zero(t, hero.Base.Str, "missing keys count as absent")
	assert.InDelta(t, 100.0, hero.Base.AttackSpeed, 1e-9)
	assert.InDelta(t, 1.7, hero.Base.BAT, 1e-9)
}

func TestParseRejectsBadInput(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "not json", input: "<html>"},
		{
			name:  "missing id",
			input: `{"heroes": [{"name": "NoID", "base": {}}]}`,
		},
		{
			name: "duplicate id",
			input: `{"heroes": [
				{"id": "axe", "name": "Axe", "base": {}},
				{"id": "axe", "name": "Axe Again", "base": {}}
			]}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.input))
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestWriteThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heroes.json")

	snap := &Snapshot{
		Source: "unit test",
		Count:  1,
		Heroes: []HeroRecord{{
			ID:               "axe",
			Name:             "Axe",
			PrimaryAttribute: "STR",
			Base:             map[string]any{"str": 25.0, "hp": 670.0},
			Raw:              map[string]any{"STR": 25.0, "HP": 670.0},
		}},
	}

	require.NoError(t, Write(path, snap))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, snap.Source, loaded.Source)
	require.Len(t, loaded.Heroes, 1)
	assert.Equal(t, "axe", loaded.Heroes[0].ID)
	assert.InDelta(t, 670.0, loaded.Heroes[0].Hero().Base.HP, 1e-9)

	// The artifact stays human-diffable.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"heroes\"")
}

func TestSample(t *testing.T) {
	snap := Sample()

	require.NotEmpty(t, snap.Heroes)
	assert.Equal(t, len(snap.Heroes), snap.Count)

	seenPrimary := make(map[entities.PrimaryAttribute]bool)
	for _, h := range snap.HeroList() {
		assert.NotEmpty(t, h.ID)
		assert.NotEmpty(t, h.Name)
		assert.NotEqual(t, entities.PrimaryAttributeUnspecified, h.PrimaryAttribute,
			"sample hero %q needs a recognized primary attribute", h.ID)
		assert.Greater(t, h.Base.HP, 0.0, "sample hero %q needs hit points", h.ID)
		assert.Greater(t, h.Base.BAT, 0.0, "sample hero %q needs a base attack time", h.ID)
		seenPrimary[h.PrimaryAttribute] = true
	}

	// The starter set covers every attribute category.
	assert.Len(t, seenPrimary, 4)
}
