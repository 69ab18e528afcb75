// Copyright (c) 2026 Longbox. All rights reserved.
// Author: engineering@longbox.dev

package search

import (
	"fmt"

	"github.com/longboxhq/longbox/internal/catalog"
	"github.com/longboxhq/longbox/internal/platform/validate"
)

// # Search Criteria

// Plausible calendar year bounds for range validation.
const (
	minPlausibleYear = 1800
	maxPlausibleYear = 2100
)

// Criteria is the closed set of criterion kinds a search may combine.
// Unknown keys are rejected at the decoding boundary rather than passed
// through; absent fields contribute nothing to the predicate.
type Criteria struct {
	Title     string `json:"title,omitempty"`
	Series    string `json:"series,omitempty"`
	Publisher string `json:"publisher,omitempty"`
	Character string `json:"character,omitempty"`
	Team      string `json:"team,omitempty"`
	Creator   string `json:"creator,omitempty"`

	// Role restricts creator credits; it is only meaningful alongside
	// the creator criterion.
	Role string `json:"role,omitempty"`

	Event string `json:"event,omitempty"`

	// Year filters to a single publication year. It is mutually exclusive
	// with the range bounds below.
	Year      *int `json:"year,omitempty"`
	StartYear *int `json:"start_year,omitempty"`
	EndYear   *int `json:"end_year,omitempty"`

	// ExactMatch requires full equality on normalized forms for every
	// text criterion instead of substring containment.
	ExactMatch bool `json:"exact_match,omitempty"`

	// IncludeTeams widens the character criterion to team-roster
	// appearance rows. Nil defers to the engine default.
	IncludeTeams *bool `json:"include_teams,omitempty"`
}

/*
Validate checks the criteria for contradictions and malformed values.

Description: Ambiguity fails loudly with the offending field named —
supplying year together with either range bound, an inverted range, a
role without a creator, or an implausible calendar year are all
validation errors, never silent empty results.

Returns:
  - error: apperr.ValidationError naming the offending field, or nil
*/
func (criteria Criteria) Validate() error {
	validator := &validate.Validator{}

	// Year vs. range contradiction
	if criteria.Year != nil && (criteria.StartYear != nil || criteria.EndYear != nil) {
		validator.Custom(catalog.FieldYear, true, "year cannot be combined with start_year or end_year")
	}

	// Inverted range
	if criteria.StartYear != nil && criteria.EndYear != nil && *criteria.StartYear > *criteria.EndYear {
		validator.Custom(catalog.FieldStartYear, true, "start_year must not exceed end_year")
	}

	// Plausible calendar years
	if criteria.Year != nil {
		validator.Range(catalog.FieldYear, *criteria.Year, minPlausibleYear, maxPlausibleYear)
	}
	if criteria.StartYear != nil {
		validator.Range(catalog.FieldStartYear, *criteria.StartYear, minPlausibleYear, maxPlausibleYear)
	}
	if criteria.EndYear != nil {
		validator.Range(catalog.FieldEndYear, *criteria.EndYear, minPlausibleYear, maxPlausibleYear)
	}

	// Role is a creator qualifier, not a criterion of its own
	if criteria.Role != "" && criteria.Creator == "" {
		validator.Custom(catalog.FieldRole, true, "role requires a creator criterion")
	}

	return validator.Err()
}

// IsEmpty reports whether no criterion is supplied at all.
func (criteria Criteria) IsEmpty() bool {
	return criteria.Title == "" && criteria.Series == "" && criteria.Publisher == "" &&
		criteria.Character == "" && criteria.Team == "" && criteria.Creator == "" &&
		criteria.Event == "" &&
		criteria.Year == nil && criteria.StartYear == nil && criteria.EndYear == nil
}

// Terms lists the supplied criterion values as "field:value" strings,
// echoed back in response metadata.
func (criteria Criteria) Terms() []string {
	var terms []string

	appendTerm := func(field, value string) {
		if value != "" {
			terms = append(terms, field+":"+value)
		}
	}

	appendTerm(catalog.FieldTitle, criteria.Title)
	appendTerm(catalog.FieldSeries, criteria.Series)
	appendTerm(catalog.FieldPublisher, criteria.Publisher)
	appendTerm(catalog.FieldCharacter, criteria.Character)
	appendTerm(catalog.FieldTeam, criteria.Team)
	appendTerm(catalog.FieldCreator, criteria.Creator)
	appendTerm(catalog.FieldRole, criteria.Role)
	appendTerm(catalog.FieldEvent, criteria.Event)

	if criteria.Year != nil {
		terms = append(terms, fmt.Sprintf("%s:%d", catalog.FieldYear, *criteria.Year))
	}
	if criteria.StartYear != nil {
		terms = append(terms, fmt.Sprintf("%s:%d", catalog.FieldStartYear, *criteria.StartYear))
	}
	if criteria.EndYear != nil {
		terms = append(terms, fmt.Sprintf("%s:%d", catalog.FieldEndYear, *criteria.EndYear))
	}

	return terms
}
