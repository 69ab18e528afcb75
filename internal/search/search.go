// Copyright (c) 2026 Longbox. All rights reserved.
// Author: engineering@longbox.dev

/*
Package search implements the Longbox search and matching engine.

It answers structured and fuzzy queries over the relational catalog and
surfaces creator collaboration statistics.

Core Responsibility:

  - Cascade: tiered name matching at decreasing strictness, each tier tagged
    with a confidence score, escalating only while results are scarce.
  - Criteria: a closed, validated criteria structure translated into a
    parameterized catalog predicate.
  - Aggregation: co-appearance statistics between creators, grouped by role
    and ranked by shared comic count.
  - Assembly: deduplicated, confidence-ranked result lists with response
    metadata (timing, counts, whether fuzzy fallback fired).

Every operation is a pure, read-only computation over catalog data; the
engine holds no state between calls.
*/
package search

import (
	"context"
	"time"
)

// # Response Envelope

// Response is the envelope every search operation returns.
type Response struct {
	Results  any      `json:"results"`
	Metadata Metadata `json:"metadata"`
}

// Metadata describes how a response was produced.
type Metadata struct {
	// QueryTime is the elapsed wall-clock time in seconds.
	QueryTime float64 `json:"query_time"`

	ResultCount int `json:"result_count"`

	// SearchTerms echoes the caller's terms for auditability.
	SearchTerms []string `json:"search_terms"`

	// FuzzyMatchesUsed reports whether any matching tier beyond exact
	// contributed to the results.
	FuzzyMatchesUsed bool `json:"fuzzy_matches_used"`
}

// Collaboration is one ranked collaborator entry: a creator sharing at
// least one comic with the primary creator, under one credit role.
type Collaboration struct {
	Collaborator     string `json:"collaborator"`
	Role             string `json:"role"`
	SharedComicCount int    `json:"shared_comic_count"`
}

// # Engine Contract

// Engine is the operation surface the tool layer consumes. The concrete
// [Service] implements it directly; the Redis decorator wraps it.
type Engine interface {
	SearchByTitle(context context.Context, title string, exactMatch bool) (*Response, error)
	SearchBySeries(context context.Context, series, publisher string, exactMatch bool) (*Response, error)
	SearchByCharacter(context context.Context, characterName string, includeTeams *bool) (*Response, error)
	SearchByTeam(context context.Context, teamName string) (*Response, error)
	SearchByCreator(context context.Context, creatorName, role string, exactMatch bool) (*Response, error)
	SearchByEvent(context context.Context, eventName string) (*Response, error)
	SearchByYear(context context.Context, year, startYear, endYear *int) (*Response, error)
	FindCreatorCollaborations(context context.Context, creatorName, roleFilter string) (*Response, error)
	AdvancedSearch(context context.Context, criteria Criteria, matchAll bool) (*Response, error)
}

// newMetadata stamps response metadata from a start time.
func newMetadata(start time.Time, terms []string, count int, fuzzy bool) Metadata {
	if terms == nil {
		terms = []string{}
	}
	return Metadata{
		QueryTime:        time.Since(start).Seconds(),
		ResultCount:      count,
		SearchTerms:      terms,
		FuzzyMatchesUsed: fuzzy,
	}
}
