// Copyright (c) 2026 Longbox. All rights reserved.
// Author: engineering@longbox.dev

package search

import (
	"github.com/longboxhq/longbox/internal/catalog"
	"github.com/longboxhq/longbox/pkg/nameform"
)

// # Criteria Query Builder

/*
BuildQuery translates validated criteria into a parameterized catalog query.

Description: Each text criterion becomes either an equality on the stored
normalized-name column (exact mode) or a literal substring containment
(default). The store binds every value as a parameter and escapes pattern
metacharacters, so user text never reaches predicate position. A bare year
collapses to a one-year inclusive range.

Parameters:
  - criteria: Criteria (Validated criterion set)
  - matchAll: bool (AND the field predicates; false disjoins them)
  - includeTeams: bool (Engine default for the character criterion's
    team-roster widening, overridden by the criteria's own flag)

Returns:
  - catalog.Query: Bound predicate ready for store execution
  - error: apperr.ValidationError from criteria validation
*/
func BuildQuery(criteria Criteria, matchAll bool, includeTeams bool) (catalog.Query, error) {
	if err := criteria.Validate(); err != nil {
		return catalog.Query{}, err
	}

	query := catalog.Query{
		MatchAny:     !matchAll,
		IncludeTeams: includeTeams,
		Role:         criteria.Role,
	}

	if criteria.IncludeTeams != nil {
		query.IncludeTeams = *criteria.IncludeTeams
	}

	assign := func(value string, norm, partial *string) {
		if value == "" {
			return
		}
		if criteria.ExactMatch {
			*norm = nameform.Normalize(value)
			return
		}
		*partial = nameform.Normalize(value)
	}

	assign(criteria.Title, &query.TitleNorm, &query.TitlePartial)
	assign(criteria.Series, &query.SeriesNorm, &query.SeriesPartial)
	assign(criteria.Publisher, &query.PublisherNorm, &query.PublisherPartial)
	assign(criteria.Character, &query.CharacterNorm, &query.CharacterPartial)
	assign(criteria.Team, &query.TeamNorm, &query.TeamPartial)
	assign(criteria.Creator, &query.CreatorNorm, &query.CreatorPartial)
	assign(criteria.Event, &query.EventNorm, &query.EventPartial)

	switch {
	case criteria.Year != nil:
		query.YearStart = criteria.Year
		query.YearEnd = criteria.Year
	default:
		query.YearStart = criteria.StartYear
		query.YearEnd = criteria.EndYear
	}

	return query, nil
}
