// Package dataset reads and writes the scraped hero snapshot JSON.
//
// The snapshot is the one persisted artifact in the system: the scraper
// writes it, everything else loads it read-only. Wiki table cells are
// messy, so base values arrive as numbers, strings, or nulls; the loader
// keeps the numbers and treats everything else as absent before applying
// the boundary defaults.
package dataset

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/1is1/dota-stat-calculator/internal/entities"
	"github.com/1is1/dota-stat-calculator/internal/errors"
)

// Boundary defaults for fields the attribute table leaves blank.
const (
	DefaultAttackSpeed = 100
	DefaultBAT         = 1.7
)

// Snapshot is the persisted scrape result.
type Snapshot struct {
	Source    string       `json:"source"`
	Count     int          `json:"count"`
	ScrapedAt time.Time    `json:"scrapedAt,omitzero"`
	Heroes    []HeroRecord `json:"heroes"`
}

// HeroRecord is one hero entry as the scraper wrote it. Base holds the
// semantic columns keyed by camelCase name; Raw preserves the original
// header-to-cell mapping so no scraped information is lost.
type HeroRecord struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	PrimaryAttribute string         `json:"primaryAttribute"`
	Base             map[string]any `json:"base"`
	Raw              map[string]any `json:"raw,omitempty"`
}

// Hero converts the record into the calculator's hero shape, applying the
// boundary defaults: missing or non-numeric fields become 0, except attack
// speed and base attack time which default to 100 and 1.7.
func (r HeroRecord) Hero() entities.Hero {
	base := entities.BaseStats{
		Str:     r.numeric("str"),
		StrGain: r.numeric("strGain"),
		Agi:     r.numeric("agi"),
		AgiGain: r.numeric("agiGain"),
		Int:     r.numeric("int"),
		IntGain: r.numeric("intGain"),

		HP:     r.numeric("hp"),
		Armor:  r.numeric("armor"),
		DmgMin: r.numeric("dmgMin"),
		DmgMax: r.numeric("dmgMax"),

		MoveSpeed: r.numeric("ms"),
		Range:     r.numeric("range"),
		HPRegen:   r.numeric("hpRegen"),
		MP:        r.numeric("mp"),
		MPRegen:   r.numeric("mpRegen"),
	}

	base.AttackSpeed = DefaultAttackSpeed
	if v, ok := r.numericOK("attackSpeed"); ok {
		base.AttackSpeed = v
	}
	base.BAT = DefaultBAT
	if v, ok := r.numericOK("bat"); ok {
		base.BAT = v
	}

	return entities.Hero{
		ID:               r.ID,
		Name:             r.Name,
		PrimaryAttribute: entities.ParsePrimaryAttribute(r.PrimaryAttribute),
		Base:             base,
	}
}

func (r HeroRecord) numeric(key string) float64 {
	v, _ := r.numericOK(key)
	return v
}

// numericOK pulls a numeric base field. JSON numbers decode as float64;
// strings, nulls, and missing keys all report absent.
func (r HeroRecord) numericOK(key string) (float64, bool) {
	v, ok := r.Base[key]
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}

// HeroList converts every record, preserving snapshot order.
func (s *Snapshot) HeroList() []entities.Hero {
	heroes := make([]entities.Hero, 0, len(s.Heroes))
	for _, r := range s.Heroes {
		heroes = append(heroes, r.Hero())
	}
	return heroes
}

// Parse decodes a snapshot and validates its hero records.
func Parse(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode dataset")
	}

	seen := make(map[string]struct{}, len(snap.Heroes))
	for i, h := range snap.Heroes {
		if h.ID == "" {
			return nil, errors.InvalidArgumentf("hero %d has no id", i)
		}
		if _, dup := seen[h.ID]; dup {
			return nil, errors.InvalidArgumentf("duplicate hero id %q", h.ID)
		}
		seen[h.ID] = struct{}{}
	}

	return &snap, nil
}

// Load reads a snapshot file.
func Load(path string) (*Snapshot, error) {
	f, err := os.Open(path) // #nosec G304 - path is operator-supplied config
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open dataset %s", path)
	}
	defer func() { _ = f.Close() }()

	snap, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse dataset %s", path)
	}
	return snap, nil
}

// Write stores the snapshot as indented JSON, matching the layout the
// original scraper produced.
func Write(path string, snap *Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal dataset")
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil { // #nosec G306 - dataset is shared read-only data
		return errors.Wrapf(err, "failed to write dataset %s", path)
	}
	return nil
}
