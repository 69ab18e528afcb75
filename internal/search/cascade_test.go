// Copyright (c) 2026 Longbox. All rights reserved.
// Author: engineering@longbox.dev

package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/longboxhq/longbox/internal/catalog"
	"github.com/longboxhq/longbox/internal/search"
)

func pool(names ...string) []catalog.NamedEntity {
	entities := make([]catalog.NamedEntity, len(names))
	for i, name := range names {
		entities[i] = catalog.NamedEntity{ID: name, Name: name}
	}
	return entities
}

/*
TestCascade_ExactTier verifies that exact normalized equality matches with
full confidence and stops escalation once the floor is met.
*/
func TestCascade_ExactTier(t *testing.T) {
	cascade := search.Cascade{MinResults: 1, Threshold: 0.8}

	matches, fuzzy := cascade.Run("Spider-Man", pool("Spider-Man", "Spider-Woman", "Batman"), false)

	require.Len(t, matches, 1)
	assert.Equal(t, "Spider-Man", matches[0].Entity.Name)
	assert.Equal(t, 1.0, matches[0].Confidence)
	assert.False(t, fuzzy)
}

/*
TestCascade_SubstringTier verifies containment matches at 0.9 when the exact
tier comes up short.
*/
func TestCascade_SubstringTier(t *testing.T) {
	cascade := search.Cascade{MinResults: 1, Threshold: 0.8}

	matches, fuzzy := cascade.Run("Spider", pool("The Amazing Spider-Man", "Batman"), false)

	require.Len(t, matches, 1)
	assert.Equal(t, "The Amazing Spider-Man", matches[0].Entity.Name)
	assert.Equal(t, 0.9, matches[0].Confidence)
	assert.True(t, fuzzy)
}

/*
TestCascade_TokenOverlapTier verifies the Jaccard-scaled confidence range.
*/
func TestCascade_TokenOverlapTier(t *testing.T) {
	cascade := search.Cascade{MinResults: 1, Threshold: 0.99}

	// "man spider" shares both tokens with "spider-man" but is neither equal
	// nor a substring of it.
	matches, fuzzy := cascade.Run("man spider", pool("Spider-Man"), false)

	require.Len(t, matches, 1)
	assert.True(t, fuzzy)
	assert.InDelta(t, 0.85, matches[0].Confidence, 1e-9) // full overlap: 0.5 + 0.35*1.0
}

/*
TestCascade_FuzzyTier verifies edit-distance acceptance and the confidence
cap keeping fuzzy scores below the substring tier.
*/
func TestCascade_FuzzyTier(t *testing.T) {
	cascade := search.Cascade{MinResults: 1, Threshold: 0.8}

	matches, fuzzy := cascade.Run("Spiderman", pool("Spider-Man", "Superman", "Aquaman"), false)

	require.NotEmpty(t, matches)
	assert.True(t, fuzzy)
	assert.Equal(t, "Spider-Man", matches[0].Entity.Name)
	assert.GreaterOrEqual(t, matches[0].Confidence, 0.5)
	assert.Less(t, matches[0].Confidence, 1.0)

	for _, match := range matches {
		assert.LessOrEqual(t, match.Confidence, 0.85)
	}
}

/*
TestCascade_FuzzyThresholdDiscards verifies candidates below the similarity
threshold never surface.
*/
func TestCascade_FuzzyThresholdDiscards(t *testing.T) {
	cascade := search.Cascade{MinResults: 1, Threshold: 0.95}

	matches, _ := cascade.Run("Spiderman", pool("Doctor Doom", "Galactus"), false)

	assert.Empty(t, matches)
}

/*
TestCascade_ExactMatchOverride verifies that exact mode never escalates:
a near-miss returns empty rather than a fuzzy result.
*/
func TestCascade_ExactMatchOverride(t *testing.T) {
	cascade := search.Cascade{MinResults: 1, Threshold: 0.8}

	matches, fuzzy := cascade.Run("Spiderman", pool("Spider-Man"), true)
	assert.Empty(t, matches)
	assert.False(t, fuzzy)

	matches, fuzzy = cascade.Run("SPIDER-MAN", pool("Spider-Man"), true)
	require.Len(t, matches, 1)
	assert.Equal(t, 1.0, matches[0].Confidence)
	assert.False(t, fuzzy)
}

/*
TestCascade_NoEscalationWhenSatisfied verifies lower tiers stay untouched
once the floor is met.
*/
func TestCascade_NoEscalationWhenSatisfied(t *testing.T) {
	cascade := search.Cascade{MinResults: 1, Threshold: 0.8}

	matches, fuzzy := cascade.Run("Spider-Man", pool("Spider-Man", "The Spider-Man Chronicles"), false)

	// Exact tier satisfied the floor; the substring candidate is not pulled in.
	require.Len(t, matches, 1)
	assert.Equal(t, "Spider-Man", matches[0].Entity.Name)
	assert.False(t, fuzzy)
}

/*
TestCascade_MinResultsEscalation verifies a higher floor accumulates matches
across tiers.
*/
func TestCascade_MinResultsEscalation(t *testing.T) {
	cascade := search.Cascade{MinResults: 2, Threshold: 0.8}

	matches, fuzzy := cascade.Run("Spider-Man", pool("Spider-Man", "The Spider-Man Chronicles", "Batman"), false)

	require.Len(t, matches, 2)
	assert.True(t, fuzzy)
	assert.Equal(t, "Spider-Man", matches[0].Entity.Name)
	assert.Equal(t, 1.0, matches[0].Confidence)
	assert.Equal(t, "The Spider-Man Chronicles", matches[1].Entity.Name)
	assert.Equal(t, 0.9, matches[1].Confidence)
}

/*
TestCascade_Deterministic verifies stable ordering and idempotence: the same
inputs always produce the same output, ties broken by name.
*/
func TestCascade_Deterministic(t *testing.T) {
	cascade := search.Cascade{MinResults: 5, Threshold: 0.8}
	candidates := pool("Spider-Man 2099", "Spider-Man Noir", "Spider-Man")

	first, _ := cascade.Run("Spider-Man", candidates, false)
	second, _ := cascade.Run("Spider-Man", candidates, false)

	require.Equal(t, first, second)

	// Equal-confidence substring matches order by name.
	require.Len(t, first, 3)
	assert.Equal(t, "Spider-Man", first[0].Entity.Name)
	assert.Equal(t, "Spider-Man 2099", first[1].Entity.Name)
	assert.Equal(t, "Spider-Man Noir", first[2].Entity.Name)
}

/*
TestCascade_MonotonicConfidence verifies that for every returned pair the
confidence never exceeds what an earlier tier would assign: exact 1.0 tops
substring 0.9, which tops every token or edit-distance score.
*/
func TestCascade_MonotonicConfidence(t *testing.T) {
	cascade := search.Cascade{MinResults: 10, Threshold: 0.5}
	candidates := pool("Spider-Man", "The Spider-Man Chronicles", "Man of Spiders", "Spiderman Adventures", "Spoderman")

	matches, _ := cascade.Run("Spider-Man", candidates, false)
	require.NotEmpty(t, matches)

	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Confidence, matches[i].Confidence)
	}
	for _, match := range matches {
		if match.Confidence < 1.0 && match.Entity.Name != "The Spider-Man Chronicles" {
			assert.LessOrEqual(t, match.Confidence, 0.9)
		}
	}
}

/*
TestCascade_EmptyQuery verifies a blank query matches nothing.
*/
func TestCascade_EmptyQuery(t *testing.T) {
	cascade := search.Cascade{MinResults: 1, Threshold: 0.8}

	matches, fuzzy := cascade.Run("   ", pool("Spider-Man"), false)

	assert.Empty(t, matches)
	assert.False(t, fuzzy)
}
