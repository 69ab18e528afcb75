// Copyright (c) 2026 Longbox. All rights reserved.
// Author: engineering@longbox.dev

package search

import (
	"context"
	"log/slog"
	"time"

	"github.com/longboxhq/longbox/internal/catalog"
	"github.com/longboxhq/longbox/internal/platform/constants"
	"github.com/longboxhq/longbox/internal/platform/validate"
)

// # Service Layer

// Options tunes the engine's matching behaviour.
type Options struct {
	// FuzzyThreshold is the minimum similarity the edit-distance tier
	// accepts, in [0,1].
	FuzzyThreshold float64

	// MinMatchResults is the cascade escalation floor.
	MinMatchResults int

	// IncludeTeamAppearances is the default for character searches that
	// do not specify include_teams themselves.
	IncludeTeamAppearances bool
}

// DefaultOptions returns the engine defaults.
func DefaultOptions() Options {
	return Options{
		FuzzyThreshold:         constants.DefaultFuzzyThreshold,
		MinMatchResults:        constants.DefaultMinMatchResults,
		IncludeTeamAppearances: true,
	}
}

// Service implements [Engine] directly against the catalog store.
// It holds no mutable state; concurrent calls need no coordination.
type Service struct {
	store        catalog.Store
	logger       *slog.Logger
	cascade      Cascade
	includeTeams bool
}

// NewService constructs a new [Service] with its store dependency.
func NewService(store catalog.Store, logger *slog.Logger, options Options) *Service {
	if options.FuzzyThreshold <= 0 {
		options.FuzzyThreshold = constants.DefaultFuzzyThreshold
	}
	if options.MinMatchResults < 1 {
		options.MinMatchResults = constants.DefaultMinMatchResults
	}

	return &Service{
		store:  store,
		logger: logger,
		cascade: Cascade{
			MinResults: options.MinMatchResults,
			Threshold:  options.FuzzyThreshold,
		},
		includeTeams: options.IncludeTeamAppearances,
	}
}

// # Name Searches

/*
SearchByTitle finds comics whose title matches the query.

Description: A structural pass runs first — normalized equality in exact
mode, literal substring containment otherwise. When the structural pass
yields fewer results than the escalation floor and exact mode is off, the
match cascade re-scores the full title pool and fuzzy matches are hydrated
with their tier confidence.

Parameters:
  - context: context.Context
  - title: string (Required)
  - exactMatch: bool

Returns:
  - *Response: Ranked comic list with metadata
  - error: ValidationError on empty title, store errors otherwise
*/
func (service *Service) SearchByTitle(context context.Context, title string, exactMatch bool) (*Response, error) {
	start := time.Now()

	validator := &validate.Validator{}
	validator.Required(catalog.FieldTitle, title)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	structural, err := BuildQuery(Criteria{Title: title, ExactMatch: exactMatch}, true, service.includeTeams)
	if err != nil {
		return nil, err
	}

	results, fuzzy, err := service.searchByName(context, catalog.KindComic, title, exactMatch, structural,
		func(query *catalog.Query, id string) {
			query.TitleNorm = ""
			query.TitlePartial = ""
			query.ComicIDs = []string{id}
		})
	if err != nil {
		return nil, err
	}

	service.logSearch("search_by_title", title, len(results), fuzzy)
	return &Response{
		Results:  results,
		Metadata: newMetadata(start, []string{title}, len(results), fuzzy),
	}, nil
}

/*
SearchBySeries finds comics belonging to a series, optionally restricted
to a publisher.

Parameters:
  - context: context.Context
  - series: string (Required)
  - publisher: string (Optional containment filter)
  - exactMatch: bool

Returns:
  - *Response: Ranked comic list with metadata
  - error: ValidationError on empty series, store errors otherwise
*/
func (service *Service) SearchBySeries(context context.Context, series, publisher string, exactMatch bool) (*Response, error) {
	start := time.Now()

	validator := &validate.Validator{}
	validator.Required(catalog.FieldSeries, series)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	structural, err := BuildQuery(Criteria{Series: series, Publisher: publisher, ExactMatch: exactMatch}, true, service.includeTeams)
	if err != nil {
		return nil, err
	}

	// The publisher restriction survives into fuzzy hydration; only the
	// series criterion is replaced by the matched identifier.
	results, fuzzy, err := service.searchByName(context, catalog.KindSeries, series, exactMatch, structural,
		func(query *catalog.Query, id string) {
			query.SeriesNorm = ""
			query.SeriesPartial = ""
			query.SeriesIDs = []string{id}
		})
	if err != nil {
		return nil, err
	}

	terms := []string{series}
	if publisher != "" {
		terms = append(terms, publisher)
	}

	service.logSearch("search_by_series", series, len(results), fuzzy)
	return &Response{
		Results:  results,
		Metadata: newMetadata(start, terms, len(results), fuzzy),
	}, nil
}

/*
SearchByCharacter finds comics a character appears in.

Description: By default, appearance rows created via a team roster count
per the engine configuration; includeTeams overrides that default per
call. With team rows excluded, a comic where the character only appears
through a team is not a match.

Parameters:
  - context: context.Context
  - characterName: string (Required)
  - includeTeams: *bool (Optional override of the engine default)

Returns:
  - *Response: Ranked comic list with metadata
  - error: ValidationError on empty name, store errors otherwise
*/
func (service *Service) SearchByCharacter(context context.Context, characterName string, includeTeams *bool) (*Response, error) {
	start := time.Now()

	validator := &validate.Validator{}
	validator.Required(catalog.FieldCharacter, characterName)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	structural, err := BuildQuery(Criteria{Character: characterName, IncludeTeams: includeTeams}, true, service.includeTeams)
	if err != nil {
		return nil, err
	}

	results, fuzzy, err := service.searchByName(context, catalog.KindCharacter, characterName, false, structural,
		func(query *catalog.Query, id string) {
			query.CharacterNorm = ""
			query.CharacterPartial = ""
			query.CharacterIDs = []string{id}
		})
	if err != nil {
		return nil, err
	}

	service.logSearch("search_by_character", characterName, len(results), fuzzy)
	return &Response{
		Results:  results,
		Metadata: newMetadata(start, []string{characterName}, len(results), fuzzy),
	}, nil
}

/*
SearchByTeam finds comics a team appears in.

Parameters:
  - context: context.Context
  - teamName: string (Required)

Returns:
  - *Response: Ranked comic list with metadata
  - error: ValidationError on empty name, store errors otherwise
*/
func (service *Service) SearchByTeam(context context.Context, teamName string) (*Response, error) {
	start := time.Now()

	validator := &validate.Validator{}
	validator.Required(catalog.FieldTeam, teamName)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	structural, err := BuildQuery(Criteria{Team: teamName}, true, service.includeTeams)
	if err != nil {
		return nil, err
	}

	results, fuzzy, err := service.searchByName(context, catalog.KindTeam, teamName, false, structural,
		func(query *catalog.Query, id string) {
			query.TeamNorm = ""
			query.TeamPartial = ""
			query.TeamIDs = []string{id}
		})
	if err != nil {
		return nil, err
	}

	service.logSearch("search_by_team", teamName, len(results), fuzzy)
	return &Response{
		Results:  results,
		Metadata: newMetadata(start, []string{teamName}, len(results), fuzzy),
	}, nil
}

/*
SearchByCreator finds comics a creator is credited on, optionally pinned
to a single credit role.

Parameters:
  - context: context.Context
  - creatorName: string (Required)
  - role: string (Optional case-insensitive role restriction)
  - exactMatch: bool

Returns:
  - *Response: Ranked comic list with metadata
  - error: ValidationError on empty name, store errors otherwise
*/
func (service *Service) SearchByCreator(context context.Context, creatorName, role string, exactMatch bool) (*Response, error) {
	start := time.Now()

	validator := &validate.Validator{}
	validator.Required(catalog.FieldCreator, creatorName)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	structural, err := BuildQuery(Criteria{Creator: creatorName, Role: role, ExactMatch: exactMatch}, true, service.includeTeams)
	if err != nil {
		return nil, err
	}

	results, fuzzy, err := service.searchByName(context, catalog.KindCreator, creatorName, exactMatch, structural,
		func(query *catalog.Query, id string) {
			query.CreatorNorm = ""
			query.CreatorPartial = ""
			query.CreatorIDs = []string{id}
		})
	if err != nil {
		return nil, err
	}

	terms := []string{creatorName}
	if role != "" {
		terms = append(terms, role)
	}

	service.logSearch("search_by_creator", creatorName, len(results), fuzzy)
	return &Response{
		Results:  results,
		Metadata: newMetadata(start, terms, len(results), fuzzy),
	}, nil
}

/*
SearchByEvent finds comics tied into a story arc or crossover event.

Parameters:
  - context: context.Context
  - eventName: string (Required)

Returns:
  - *Response: Ranked comic list with metadata
  - error: ValidationError on empty name, store errors otherwise
*/
func (service *Service) SearchByEvent(context context.Context, eventName string) (*Response, error) {
	start := time.Now()

	validator := &validate.Validator{}
	validator.Required(catalog.FieldEvent, eventName)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	structural, err := BuildQuery(Criteria{Event: eventName}, true, service.includeTeams)
	if err != nil {
		return nil, err
	}

	results, fuzzy, err := service.searchByName(context, catalog.KindEvent, eventName, false, structural,
		func(query *catalog.Query, id string) {
			query.EventNorm = ""
			query.EventPartial = ""
			query.EventIDs = []string{id}
		})
	if err != nil {
		return nil, err
	}

	service.logSearch("search_by_event", eventName, len(results), fuzzy)
	return &Response{
		Results:  results,
		Metadata: newMetadata(start, []string{eventName}, len(results), fuzzy),
	}, nil
}

// # Structural Searches

/*
SearchByYear finds comics published in a single year or an inclusive range.

Description: Purely structural — no name matching, every result carries
confidence 1.0 and the list orders ascending by year. Supplying year
together with a range bound, an inverted range, or no bound at all is a
validation error.

Parameters:
  - context: context.Context
  - year: *int (Single year, exclusive with the bounds below)
  - startYear: *int (Inclusive lower bound)
  - endYear: *int (Inclusive upper bound)

Returns:
  - *Response: Comic list with metadata, fuzzy_matches_used always false
  - error: ValidationError on contradictory or absent bounds
*/
func (service *Service) SearchByYear(context context.Context, year, startYear, endYear *int) (*Response, error) {
	start := time.Now()

	if year == nil && startYear == nil && endYear == nil {
		return nil, validate.RequiredError(catalog.FieldYear, "supply year or start_year/end_year")
	}

	criteria := Criteria{Year: year, StartYear: startYear, EndYear: endYear}
	query, err := BuildQuery(criteria, true, service.includeTeams)
	if err != nil {
		return nil, err
	}

	comics, err := service.store.FindComics(context, query)
	if err != nil {
		return nil, err
	}

	results := assembleResults(comics, nil)

	service.logSearch("search_by_year", "", len(results), false)
	return &Response{
		Results:  results,
		Metadata: newMetadata(start, criteria.Terms(), len(results), false),
	}, nil
}

/*
AdvancedSearch combines several criteria in one query.

Description: The criteria form a closed set validated at the boundary.
matchAll conjoins the field predicates; false disjoins them while each
field still honours its own match mode. Advanced search is structural
only — the cascade does not re-score multi-criteria results.

Parameters:
  - context: context.Context
  - criteria: Criteria (At least one criterion required)
  - matchAll: bool

Returns:
  - *Response: Ranked comic list with metadata
  - error: ValidationError on empty or contradictory criteria
*/
func (service *Service) AdvancedSearch(context context.Context, criteria Criteria, matchAll bool) (*Response, error) {
	start := time.Now()

	if criteria.IsEmpty() {
		return nil, validate.RequiredError("criteria", "at least one criterion is required")
	}

	query, err := BuildQuery(criteria, matchAll, service.includeTeams)
	if err != nil {
		return nil, err
	}

	comics, err := service.store.FindComics(context, query)
	if err != nil {
		return nil, err
	}

	results := assembleResults(comics, nil)

	service.logSearch("advanced_search", "", len(results), false)
	return &Response{
		Results:  results,
		Metadata: newMetadata(start, criteria.Terms(), len(results), false),
	}, nil
}

// # Collaborations

/*
FindCreatorCollaborations ranks the creators who share comics with the
named creator.

Description: The primary creator is resolved from free text through the
match cascade over the full creator name pool; the best match wins. Raw
co-appearance rows are then aggregated into (collaborator, role) groups
counted by distinct shared comics. A creator with no collaborators — or a
name the cascade cannot resolve — yields an empty list, not an error.

Parameters:
  - context: context.Context
  - creatorName: string (Required; free text)
  - roleFilter: string (Optional case-insensitive role restriction)

Returns:
  - *Response: Ranked collaborator list with metadata
  - error: ValidationError on empty name, store errors otherwise
*/
func (service *Service) FindCreatorCollaborations(context context.Context, creatorName, roleFilter string) (*Response, error) {
	start := time.Now()

	validator := &validate.Validator{}
	validator.Required(catalog.FieldCreator, creatorName)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	terms := []string{creatorName}
	if roleFilter != "" {
		terms = append(terms, roleFilter)
	}

	candidates, err := service.store.CandidateNames(context, catalog.KindCreator)
	if err != nil {
		return nil, err
	}

	matches, fuzzy := service.cascade.Run(creatorName, candidates, false)
	if len(matches) == 0 {
		return &Response{
			Results:  []Collaboration{},
			Metadata: newMetadata(start, terms, 0, fuzzy),
		}, nil
	}

	primary := matches[0].Entity

	rows, err := service.store.Collaborators(context, primary.ID)
	if err != nil {
		return nil, err
	}

	collaborations := aggregateCollaborations(rows, primary.ID, roleFilter)

	service.logSearch("find_creator_collaborations", creatorName, len(collaborations), fuzzy)
	return &Response{
		Results:  collaborations,
		Metadata: newMetadata(start, terms, len(collaborations), fuzzy),
	}, nil
}

// # Cascade Integration

/*
searchByName runs the shared structural-then-cascade flow for one entity
kind.

Description: The structural predicate executes first. If it satisfies the
escalation floor, or exact mode is on, its results stand with confidence
1.0. Otherwise the cascade re-scores the entity's full name pool and each
matched entity is hydrated separately so its tier confidence can follow
its comics into assembly. Structural hits keep confidence 1.0 even when a
fuzzy path reaches the same comic.

Parameters:
  - context: context.Context
  - kind: catalog.Kind (Candidate pool to cascade over)
  - name: string (Raw user text)
  - exactMatch: bool (Suppresses escalation entirely)
  - structural: catalog.Query (Predicate for the structural pass)
  - scope: func (Rewrites the structural query to pin one matched entity)

Returns:
  - []*catalog.AssembledComic: Deduplicated, ranked results
  - bool: Whether fuzzy tiers contributed
  - error: Store failures
*/
func (service *Service) searchByName(
	context context.Context,
	kind catalog.Kind,
	name string,
	exactMatch bool,
	structural catalog.Query,
	scope func(query *catalog.Query, id string),
) ([]*catalog.AssembledComic, bool, error) {

	comics, err := service.store.FindComics(context, structural)
	if err != nil {
		return nil, false, err
	}

	confidences := make(map[string]float64, len(comics))
	record := func(id string, confidence float64) {
		if existing, ok := confidences[id]; !ok || confidence > existing {
			confidences[id] = confidence
		}
	}
	for _, comic := range comics {
		record(comic.ID, 1.0)
	}

	fuzzy := false
	if !exactMatch && len(comics) < service.cascade.MinResults {
		candidates, err := service.store.CandidateNames(context, kind)
		if err != nil {
			return nil, false, err
		}

		matches, fuzzyUsed := service.cascade.Run(name, candidates, false)
		fuzzy = fuzzyUsed

		for _, match := range matches {
			scoped := structural
			scope(&scoped, match.Entity.ID)

			hydrated, err := service.store.FindComics(context, scoped)
			if err != nil {
				return nil, false, err
			}

			for _, comic := range hydrated {
				record(comic.ID, match.Confidence)
			}
			comics = append(comics, hydrated...)
		}
	}

	return assembleResults(comics, confidences), fuzzy, nil
}

// logSearch emits one debug event per engine call.
func (service *Service) logSearch(tool, term string, results int, fuzzy bool) {
	service.logger.Debug("search_executed",
		slog.String("tool", tool),
		slog.String("term", term),
		slog.Int("results", results),
		slog.Bool("fuzzy", fuzzy),
	)
}
