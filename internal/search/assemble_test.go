// Copyright (c) 2026 Longbox. All rights reserved.
// Author: engineering@longbox.dev

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/longboxhq/longbox/internal/catalog"
)

func record(id, title string, year *int) *catalog.AssembledComic {
	return &catalog.AssembledComic{ID: id, Title: title, Year: year}
}

/*
TestAssembleResults_Dedupe verifies a comic reached through two join paths
collapses to one record carrying the maximum confidence.
*/
func TestAssembleResults_Dedupe(t *testing.T) {
	year := 1963
	comics := []*catalog.AssembledComic{
		record("c1", "Amazing Spider-Man #1", &year),
		record("c1", "Amazing Spider-Man #1", &year),
	}

	results := assembleResults(comics, map[string]float64{"c1": 0.85})

	require.Len(t, results, 1)
	assert.Equal(t, 0.85, results[0].Confidence)
}

/*
TestAssembleResults_StructuralBeatsFuzzy verifies a structural path keeps
confidence 1.0 even when a fuzzy path reaches the same comic.
*/
func TestAssembleResults_StructuralBeatsFuzzy(t *testing.T) {
	comics := []*catalog.AssembledComic{
		record("c1", "Secret Wars", nil),
		record("c1", "Secret Wars", nil),
	}

	// The structural pass recorded 1.0 before the fuzzy path's 0.85; max wins.
	results := assembleResults(comics, map[string]float64{"c1": 1.0})

	require.Len(t, results, 1)
	assert.Equal(t, 1.0, results[0].Confidence)
}

/*
TestAssembleResults_DefaultConfidence verifies records without a score
default to 1.0.
*/
func TestAssembleResults_DefaultConfidence(t *testing.T) {
	results := assembleResults([]*catalog.AssembledComic{record("c1", "Watchmen", nil)}, nil)

	require.Len(t, results, 1)
	assert.Equal(t, 1.0, results[0].Confidence)
}

/*
TestAssembleResults_TotalOrder verifies the deterministic ordering:
confidence desc, year asc with absent years last, then title, then id.
*/
func TestAssembleResults_TotalOrder(t *testing.T) {
	y1963, y1986 := 1963, 1986

	comics := []*catalog.AssembledComic{
		record("c4", "Zenith", nil),
		record("c3", "Watchmen", &y1986),
		record("c2", "X-Men #1", &y1963),
		record("c1", "Amazing Spider-Man #1", &y1963),
		record("c5", "Fuzzy Find", &y1963),
	}

	results := assembleResults(comics, map[string]float64{"c5": 0.85})

	require.Len(t, results, 5)
	assert.Equal(t, "c1", results[0].ID) // 1.0, 1963, title asc
	assert.Equal(t, "c2", results[1].ID)
	assert.Equal(t, "c3", results[2].ID) // 1.0, 1986
	assert.Equal(t, "c4", results[3].ID) // 1.0, no year sorts last
	assert.Equal(t, "c5", results[4].ID) // fuzzy confidence ranks below
}

/*
TestAssembleResults_InputUntouched verifies assembly copies records rather
than mutating the store's rows.
*/
func TestAssembleResults_InputUntouched(t *testing.T) {
	original := record("c1", "Watchmen", nil)

	assembleResults([]*catalog.AssembledComic{original}, map[string]float64{"c1": 0.6})

	assert.Equal(t, 0.0, original.Confidence)
}
