// Copyright (c) 2026 Longbox. All rights reserved.
// Author: engineering@longbox.dev

package search_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/longboxhq/longbox/internal/catalog"
	"github.com/longboxhq/longbox/internal/platform/apperr"
	"github.com/longboxhq/longbox/internal/search"
	"github.com/longboxhq/longbox/pkg/nameform"
)

// # In-Memory Store

// fakeStore implements catalog.Store over in-memory fixtures. It interprets
// only the query fields the engine exercises in these tests.
type fakeStore struct {
	comics          []*catalog.AssembledComic
	pools           map[catalog.Kind][]catalog.NamedEntity
	characterComics map[string][]string // character ID -> comic IDs
	collaborations  []catalog.CollaborationRow
}

func (store *fakeStore) FindComics(_ context.Context, query catalog.Query) ([]*catalog.AssembledComic, error) {
	var results []*catalog.AssembledComic

	for _, comic := range store.comics {
		titleNorm := nameform.Normalize(comic.Title)

		if query.TitleNorm != "" && titleNorm != query.TitleNorm {
			continue
		}
		if query.TitlePartial != "" && !strings.Contains(titleNorm, query.TitlePartial) {
			continue
		}

		if query.CharacterPartial != "" && !store.characterMatches(comic, func(name string) bool {
			return strings.Contains(nameform.Normalize(name), query.CharacterPartial)
		}) {
			continue
		}

		if len(query.CharacterIDs) > 0 {
			linked := false
			for _, characterID := range query.CharacterIDs {
				for _, comicID := range store.characterComics[characterID] {
					if comicID == comic.ID {
						linked = true
					}
				}
			}
			if !linked {
				continue
			}
		}

		if len(query.ComicIDs) > 0 {
			found := false
			for _, id := range query.ComicIDs {
				if id == comic.ID {
					found = true
				}
			}
			if !found {
				continue
			}
		}

		if query.YearStart != nil && (comic.Year == nil || *comic.Year < *query.YearStart) {
			continue
		}
		if query.YearEnd != nil && (comic.Year == nil || *comic.Year > *query.YearEnd) {
			continue
		}

		results = append(results, comic)
	}

	return results, nil
}

func (store *fakeStore) characterMatches(comic *catalog.AssembledComic, match func(string) bool) bool {
	for _, name := range comic.Characters {
		if match(name) {
			return true
		}
	}
	return false
}

func (store *fakeStore) CandidateNames(_ context.Context, kind catalog.Kind) ([]catalog.NamedEntity, error) {
	return store.pools[kind], nil
}

func (store *fakeStore) Collaborators(_ context.Context, creatorID string) ([]catalog.CollaborationRow, error) {
	return store.collaborations, nil
}

func (store *fakeStore) List(_ context.Context, _ catalog.Filter, _, _ int) ([]*catalog.AssembledComic, int, error) {
	return store.comics, len(store.comics), nil
}

func (store *fakeStore) FindByID(_ context.Context, id string) (*catalog.AssembledComic, error) {
	for _, comic := range store.comics {
		if comic.ID == id {
			return comic, nil
		}
	}
	return nil, apperr.NotFound("comic")
}

func (store *fakeStore) Stats(_ context.Context) (*catalog.Stats, error) {
	return &catalog.Stats{Comics: len(store.comics)}, nil
}

// # Fixtures

func yearOf(value int) *int { return &value }

func newFixtureStore() *fakeStore {
	return &fakeStore{
		comics: []*catalog.AssembledComic{
			{
				ID:         "asm1",
				Title:      "Amazing Spider-Man #1",
				Series:     "Amazing Spider-Man",
				Publisher:  "Marvel",
				Year:       yearOf(1963),
				Creators:   []catalog.CreatorCredit{{Name: "Stan Lee", Role: "writer"}},
				Characters: []string{"Spider-Man"},
				Teams:      []string{},
				FilePath:   "/comics/asm-001.cbz",
			},
			{
				ID:         "uxm1",
				Title:      "Uncanny X-Men #200",
				Year:       yearOf(1986),
				Characters: []string{"Cyclops"},
			},
			{ID: "y2000", Title: "Millennium Special", Year: yearOf(2000)},
			{ID: "y2005", Title: "Mid Decade", Year: yearOf(2005)},
			{ID: "y2009", Title: "Decade Close", Year: yearOf(2009)},
			{ID: "y2010", Title: "Next Decade", Year: yearOf(2010)},
			{ID: "nodate", Title: "Undated One-Shot"},
		},
		pools: map[catalog.Kind][]catalog.NamedEntity{
			catalog.KindCharacter: {
				{ID: "spiderman", Name: "Spider-Man"},
				{ID: "cyclops", Name: "Cyclops"},
			},
			catalog.KindCreator: {
				{ID: "lee", Name: "Stan Lee"},
				{ID: "kirby", Name: "Jack Kirby"},
			},
		},
		characterComics: map[string][]string{
			"spiderman": {"asm1"},
			"cyclops":   {"uxm1"},
		},
		collaborations: []catalog.CollaborationRow{
			{ComicID: "ff1", CollaboratorID: "kirby", CollaboratorName: "Jack Kirby", Role: "artist"},
			{ComicID: "ff2", CollaboratorID: "kirby", CollaboratorName: "Jack Kirby", Role: "artist"},
			{ComicID: "ff1", CollaboratorID: "sinnott", CollaboratorName: "Joe Sinnott", Role: "inker"},
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(store catalog.Store) *search.Service {
	return search.NewService(store, testLogger(), search.DefaultOptions())
}

/*
TestSearchByCharacter_FuzzyFallback runs the end-to-end fuzzy path: a
misspelled character name with no structural hit resolves through the
cascade with fractional confidence.
*/
func TestSearchByCharacter_FuzzyFallback(t *testing.T) {
	service := newTestService(newFixtureStore())

	response, err := service.SearchByCharacter(context.Background(), "Spiderman", nil)
	require.NoError(t, err)

	results, ok := response.Results.([]*catalog.AssembledComic)
	require.True(t, ok)
	require.Len(t, results, 1)

	assert.Equal(t, "Amazing Spider-Man #1", results[0].Title)
	assert.GreaterOrEqual(t, results[0].Confidence, 0.5)
	assert.Less(t, results[0].Confidence, 1.0)

	assert.True(t, response.Metadata.FuzzyMatchesUsed)
	assert.Equal(t, 1, response.Metadata.ResultCount)
	assert.Equal(t, []string{"Spiderman"}, response.Metadata.SearchTerms)
}

/*
TestSearchByCharacter_StructuralHit verifies a correctly spelled name stays
on the structural path with confidence 1.0.
*/
func TestSearchByCharacter_StructuralHit(t *testing.T) {
	service := newTestService(newFixtureStore())

	response, err := service.SearchByCharacter(context.Background(), "Spider-Man", nil)
	require.NoError(t, err)

	results := response.Results.([]*catalog.AssembledComic)
	require.Len(t, results, 1)
	assert.Equal(t, 1.0, results[0].Confidence)
	assert.False(t, response.Metadata.FuzzyMatchesUsed)
}

/*
TestSearchByTitle_ExactMatch verifies exact mode ignores near misses and
reports empty rather than escalating.
*/
func TestSearchByTitle_ExactMatch(t *testing.T) {
	service := newTestService(newFixtureStore())

	response, err := service.SearchByTitle(context.Background(), "amazing spider-man #1", true)
	require.NoError(t, err)
	results := response.Results.([]*catalog.AssembledComic)
	require.Len(t, results, 1)
	assert.Equal(t, "asm1", results[0].ID)
	assert.Equal(t, 1.0, results[0].Confidence)

	response, err = service.SearchByTitle(context.Background(), "Amizing Spider-Man #1", true)
	require.NoError(t, err)
	assert.Equal(t, 0, response.Metadata.ResultCount)
	assert.Empty(t, response.Results.([]*catalog.AssembledComic))
	assert.False(t, response.Metadata.FuzzyMatchesUsed)
}

/*
TestSearchByTitle_RequiredField verifies the missing-title validation error.
*/
func TestSearchByTitle_RequiredField(t *testing.T) {
	service := newTestService(newFixtureStore())

	_, err := service.SearchByTitle(context.Background(), "", false)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}

/*
TestSearchByYear_Range verifies inclusive bounds and ascending year order
among equal confidence.
*/
func TestSearchByYear_Range(t *testing.T) {
	service := newTestService(newFixtureStore())

	response, err := service.SearchByYear(context.Background(), nil, yearOf(2000), yearOf(2009))
	require.NoError(t, err)

	results := response.Results.([]*catalog.AssembledComic)
	require.Len(t, results, 3)
	assert.Equal(t, "y2000", results[0].ID)
	assert.Equal(t, "y2005", results[1].ID)
	assert.Equal(t, "y2009", results[2].ID)

	for _, result := range results {
		assert.Equal(t, 1.0, result.Confidence)
	}
	assert.False(t, response.Metadata.FuzzyMatchesUsed)
	assert.Equal(t, []string{"start_year:2000", "end_year:2009"}, response.Metadata.SearchTerms)
}

/*
TestSearchByYear_Validation covers contradictory and absent bounds.
*/
func TestSearchByYear_Validation(t *testing.T) {
	service := newTestService(newFixtureStore())

	_, err := service.SearchByYear(context.Background(), yearOf(2004), yearOf(2000), nil)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)

	_, err = service.SearchByYear(context.Background(), nil, nil, nil)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

/*
TestFindCreatorCollaborations_Ranked verifies resolution of the primary
creator and the ranked collaborator output.
*/
func TestFindCreatorCollaborations_Ranked(t *testing.T) {
	service := newTestService(newFixtureStore())

	response, err := service.FindCreatorCollaborations(context.Background(), "stan lee", "")
	require.NoError(t, err)

	collaborations := response.Results.([]search.Collaboration)
	require.Len(t, collaborations, 2)
	assert.Equal(t, search.Collaboration{Collaborator: "Jack Kirby", Role: "artist", SharedComicCount: 2}, collaborations[0])
	assert.Equal(t, search.Collaboration{Collaborator: "Joe Sinnott", Role: "inker", SharedComicCount: 1}, collaborations[1])
	assert.False(t, response.Metadata.FuzzyMatchesUsed)
}

/*
TestFindCreatorCollaborations_Unresolvable verifies an unmatchable name
yields an empty list with result_count 0, not an error.
*/
func TestFindCreatorCollaborations_Unresolvable(t *testing.T) {
	service := newTestService(newFixtureStore())

	response, err := service.FindCreatorCollaborations(context.Background(), "Zzyzx Qwak", "")
	require.NoError(t, err)

	assert.Empty(t, response.Results.([]search.Collaboration))
	assert.Equal(t, 0, response.Metadata.ResultCount)
}

/*
TestAdvancedSearch_EmptyCriteria verifies an empty criterion set is a
validation error rather than a full-catalog scan.
*/
func TestAdvancedSearch_EmptyCriteria(t *testing.T) {
	service := newTestService(newFixtureStore())

	_, err := service.AdvancedSearch(context.Background(), search.Criteria{}, true)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

/*
TestAdvancedSearch_Structural verifies multi-criteria conjunction over the
structural path.
*/
func TestAdvancedSearch_Structural(t *testing.T) {
	service := newTestService(newFixtureStore())

	response, err := service.AdvancedSearch(context.Background(), search.Criteria{
		Title: "Spider-Man",
		Year:  yearOf(1963),
	}, true)
	require.NoError(t, err)

	results := response.Results.([]*catalog.AssembledComic)
	require.Len(t, results, 1)
	assert.Equal(t, "asm1", results[0].ID)
	assert.False(t, response.Metadata.FuzzyMatchesUsed)
}
