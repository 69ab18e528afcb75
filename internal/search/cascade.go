// Copyright (c) 2026 Longbox. All rights reserved.
// Author: engineering@longbox.dev

package search

import (
	"sort"
	"strings"

	"github.com/longboxhq/longbox/internal/catalog"
	"github.com/longboxhq/longbox/pkg/nameform"
	"github.com/xrash/smetrics"
)

// # Match Cascade

// Tier confidence levels. Lower tiers never report above the cap of the
// tier before them, so confidence ranks results consistently across tiers.
const (
	confidenceExact     = 1.0
	confidenceSubstring = 0.9

	// Token-overlap confidence is 0.5 + 0.35*J for Jaccard overlap J,
	// so it spans (0.5, 0.85].
	tokenConfidenceBase  = 0.5
	tokenConfidenceScale = 0.35

	// Edit-distance confidence is capped below the substring tier.
	fuzzyConfidenceCap = 0.85

	// Jaro-Winkler prefix boost parameters.
	jaroWinklerBoost      = 0.7
	jaroWinklerPrefixSize = 4
)

// Match pairs a candidate entity with the confidence of its match.
type Match struct {
	Entity     catalog.NamedEntity
	Confidence float64
}

// Cascade matches a query string against a pool of candidate names at
// decreasing strictness. It is stateless; the same inputs always produce
// the same output.
type Cascade struct {
	// MinResults is the escalation floor: tiers are attempted in order
	// until at least this many candidates have matched or all tiers are
	// exhausted.
	MinResults int

	// Threshold is the minimum raw similarity the edit-distance tier
	// accepts, in [0,1].
	Threshold float64
}

/*
Run matches query against the candidate pool.

Description: Four tiers are attempted in order — exact, substring, token
overlap, edit distance — each only over candidates no earlier tier
matched, and only while fewer than MinResults candidates have matched.
When exactMatch is set, only the exact tier runs and the cascade returns
empty rather than escalating.

The returned list is sorted by descending confidence, then candidate name,
then identifier. The second return value reports whether any tier beyond
exact contributed a match.

Parameters:
  - query: string (Raw user text; normalized internally)
  - candidates: []catalog.NamedEntity (Name pool drawn from the store)
  - exactMatch: bool (Caller-level override restricting to the exact tier)

Returns:
  - []Match: Matched candidates with confidence scores
  - bool: Whether fuzzy tiers beyond exact were engaged
*/
func (cascade Cascade) Run(query string, candidates []catalog.NamedEntity, exactMatch bool) ([]Match, bool) {
	queryNorm := nameform.Normalize(query)
	if queryNorm == "" {
		return nil, false
	}

	minResults := cascade.MinResults
	if minResults < 1 {
		minResults = 1
	}

	queryTokens := nameform.Tokens(query)

	var matches []Match
	matched := make(map[string]bool, len(candidates))
	fuzzyUsed := false

	accept := func(candidate catalog.NamedEntity, confidence float64, fuzzy bool) {
		matches = append(matches, Match{Entity: candidate, Confidence: confidence})
		matched[candidate.ID] = true
		if fuzzy {
			fuzzyUsed = true
		}
	}

	// Tier 1: exact normalized equality
	for _, candidate := range candidates {
		if nameform.Normalize(candidate.Name) == queryNorm {
			accept(candidate, confidenceExact, false)
		}
	}

	// Caller-level override: no escalation past the exact tier
	if exactMatch {
		sortMatches(matches)
		return matches, false
	}

	// Tier 2: contiguous substring containment
	if len(matches) < minResults {
		for _, candidate := range candidates {
			if matched[candidate.ID] {
				continue
			}
			if strings.Contains(nameform.Normalize(candidate.Name), queryNorm) {
				accept(candidate, confidenceSubstring, true)
			}
		}
	}

	// Tier 3: token overlap, scored by Jaccard ratio
	if len(matches) < minResults {
		for _, candidate := range candidates {
			if matched[candidate.ID] {
				continue
			}
			if overlap := jaccard(queryTokens, nameform.Tokens(candidate.Name)); overlap > 0 {
				accept(candidate, tokenConfidenceBase+tokenConfidenceScale*overlap, true)
			}
		}
	}

	// Tier 4: edit-distance similarity above the acceptance threshold.
	// The reported confidence is capped at the token tier's range, and at
	// the token score when tokens are shared, so no pair scores higher
	// here than an earlier tier would have scored it.
	if len(matches) < minResults {
		for _, candidate := range candidates {
			if matched[candidate.ID] {
				continue
			}
			candidateNorm := nameform.Normalize(candidate.Name)
			similarity := smetrics.JaroWinkler(queryNorm, candidateNorm, jaroWinklerBoost, jaroWinklerPrefixSize)
			if similarity < cascade.Threshold {
				continue
			}
			confidence := similarity
			if confidence > fuzzyConfidenceCap {
				confidence = fuzzyConfidenceCap
			}
			if overlap := jaccard(queryTokens, nameform.Tokens(candidate.Name)); overlap > 0 {
				if tokenScore := tokenConfidenceBase + tokenConfidenceScale*overlap; confidence > tokenScore {
					confidence = tokenScore
				}
			}
			accept(candidate, confidence, true)
		}
	}

	sortMatches(matches)
	return matches, fuzzyUsed
}

// sortMatches orders by descending confidence, then name, then identifier.
func sortMatches(matches []Match) {
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Confidence != matches[j].Confidence {
			return matches[i].Confidence > matches[j].Confidence
		}
		if matches[i].Entity.Name != matches[j].Entity.Name {
			return matches[i].Entity.Name < matches[j].Entity.Name
		}
		return matches[i].Entity.ID < matches[j].Entity.ID
	})
}

// jaccard computes the token Jaccard overlap ratio of two token sets.
func jaccard(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	setA := make(map[string]bool, len(a))
	for _, token := range a {
		setA[token] = true
	}

	setB := make(map[string]bool, len(b))
	shared := 0
	for _, token := range b {
		if setB[token] {
			continue
		}
		setB[token] = true
		if setA[token] {
			shared++
		}
	}

	union := len(setA) + len(setB) - shared
	if union == 0 {
		return 0
	}
	return float64(shared) / float64(union)
}
