package entities

// Point is one (level, value) sample in a series
type Point struct {
	Level int     `json:"level"`
	Value float64 `json:"value"`
}

// Series is a named, level-ordered value sequence for one hero and one
// metric. Series are rebuilt from scratch on every request.
type Series struct {
	HeroID string  `json:"hero_id"`
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}
