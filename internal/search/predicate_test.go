// Copyright (c) 2026 Longbox. All rights reserved.
// Author: engineering@longbox.dev

package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/longboxhq/longbox/internal/platform/apperr"
	"github.com/longboxhq/longbox/internal/search"
)

/*
TestBuildQuery_PartialDefault verifies text criteria default to normalized
substring containment.
*/
func TestBuildQuery_PartialDefault(t *testing.T) {
	query, err := search.BuildQuery(search.Criteria{Title: "Amazing  SPIDER-MAN!"}, true, true)
	require.NoError(t, err)

	assert.Empty(t, query.TitleNorm)
	assert.Equal(t, "amazing spider-man", query.TitlePartial)
	assert.False(t, query.MatchAny)
}

/*
TestBuildQuery_ExactMode verifies exact mode targets the normalized-name
equality column instead.
*/
func TestBuildQuery_ExactMode(t *testing.T) {
	query, err := search.BuildQuery(search.Criteria{Title: "Spider-Man!", ExactMatch: true}, true, true)
	require.NoError(t, err)

	assert.Equal(t, "spider-man", query.TitleNorm)
	assert.Empty(t, query.TitlePartial)
}

/*
TestBuildQuery_MatchAny verifies the OR combination mode.
*/
func TestBuildQuery_MatchAny(t *testing.T) {
	query, err := search.BuildQuery(search.Criteria{Character: "Batman", Team: "Justice League"}, false, true)
	require.NoError(t, err)

	assert.True(t, query.MatchAny)
	assert.Equal(t, "batman", query.CharacterPartial)
	assert.Equal(t, "justice league", query.TeamPartial)
}

/*
TestBuildQuery_YearCollapse verifies a bare year becomes a one-year
inclusive range.
*/
func TestBuildQuery_YearCollapse(t *testing.T) {
	query, err := search.BuildQuery(search.Criteria{Year: intPtr(1986)}, true, true)
	require.NoError(t, err)

	require.NotNil(t, query.YearStart)
	require.NotNil(t, query.YearEnd)
	assert.Equal(t, 1986, *query.YearStart)
	assert.Equal(t, 1986, *query.YearEnd)
}

/*
TestBuildQuery_YearContradiction verifies ambiguous year input fails loudly.
*/
func TestBuildQuery_YearContradiction(t *testing.T) {
	_, err := search.BuildQuery(search.Criteria{Year: intPtr(2004), StartYear: intPtr(2000)}, true, true)

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}

/*
TestBuildQuery_IncludeTeams verifies the criteria flag overrides the engine
default in both directions.
*/
func TestBuildQuery_IncludeTeams(t *testing.T) {
	off := false
	on := true

	query, err := search.BuildQuery(search.Criteria{Character: "Cyclops"}, true, true)
	require.NoError(t, err)
	assert.True(t, query.IncludeTeams)

	query, err = search.BuildQuery(search.Criteria{Character: "Cyclops", IncludeTeams: &off}, true, true)
	require.NoError(t, err)
	assert.False(t, query.IncludeTeams)

	query, err = search.BuildQuery(search.Criteria{Character: "Cyclops", IncludeTeams: &on}, true, false)
	require.NoError(t, err)
	assert.True(t, query.IncludeTeams)
}

/*
TestBuildQuery_RolePassthrough verifies the role qualifier reaches the query.
*/
func TestBuildQuery_RolePassthrough(t *testing.T) {
	query, err := search.BuildQuery(search.Criteria{Creator: "Jack Kirby", Role: "Artist"}, true, true)
	require.NoError(t, err)

	assert.Equal(t, "jack kirby", query.CreatorPartial)
	assert.Equal(t, "Artist", query.Role)
}
