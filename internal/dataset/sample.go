package dataset

import (
	"bytes"
	_ "embed"
)

//go:embed sample_heroes.json
var sampleJSON []byte

// Sample returns the built-in starter dataset, so serving and rendering
// work before any scrape has run. The numbers are a point-in-time copy of
// the public attribute table, not a live source of truth.
func Sample() *Snapshot {
	snap, err := Parse(bytes.NewReader(sampleJSON))
	if err != nil {
		// The sample ships inside the binary; failing to parse it is a
		// build defect, not a runtime condition.
		panic("dataset: embedded sample is invalid: " + err.Error())
	}
	return snap
}
