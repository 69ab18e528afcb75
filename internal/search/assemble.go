// Copyright (c) 2026 Longbox. All rights reserved.
// Author: engineering@longbox.dev

package search

import (
	"sort"

	"github.com/longboxhq/longbox/internal/catalog"
)

// # Result Assembler

/*
assembleResults deduplicates and ranks hydrated comic records.

Description: A comic reached through several join paths (two matched
characters, a matched series and a matched title) collapses into a single
record carrying the maximum confidence observed across paths. Records with
no recorded confidence default to 1.0 — they matched structurally, not
through a fuzzy tier. The final list is a deterministic total order:
descending confidence, ascending year with absent years last, then title,
then identifier.

Parameters:
  - comics: []*catalog.AssembledComic (Hydrated records, possibly duplicated)
  - confidences: map[string]float64 (Per-comic fuzzy confidence, keyed by ID;
    entries may repeat across calls, the maximum wins)

Returns:
  - []*catalog.AssembledComic: Deduplicated, ranked results
*/
func assembleResults(comics []*catalog.AssembledComic, confidences map[string]float64) []*catalog.AssembledComic {

	merged := make(map[string]*catalog.AssembledComic, len(comics))
	for _, comic := range comics {
		confidence := 1.0
		if recorded, ok := confidences[comic.ID]; ok {
			confidence = recorded
		}

		existing, ok := merged[comic.ID]
		if !ok {
			record := *comic
			record.Confidence = confidence
			merged[comic.ID] = &record
			continue
		}
		if confidence > existing.Confidence {
			existing.Confidence = confidence
		}
	}

	results := make([]*catalog.AssembledComic, 0, len(merged))
	for _, comic := range merged {
		results = append(results, comic)
	}

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Confidence != b.Confidence {
			return a.Confidence > b.Confidence
		}
		if !equalYears(a.Year, b.Year) {
			return beforeYear(a.Year, b.Year)
		}
		if a.Title != b.Title {
			return a.Title < b.Title
		}
		return a.ID < b.ID
	})

	return results
}

// equalYears reports whether two optional years hold the same value.
func equalYears(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// beforeYear orders ascending by year with absent years sorting last.
func beforeYear(a, b *int) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return *a < *b
}
