// Copyright (c) 2026 Longbox. All rights reserved.
// Author: engineering@longbox.dev

/*
Package catalog defines the read-side domain model for the Longbox comic catalog.

It manages access to comics and the reference entities they link to (series,
publishers, creators, characters, teams, events) together with the appearance
tables joining them.

Core Responsibility:

  - Hydration: assembles one nested result record per comic (creators with
    roles, character and team appearances) in a single store round-trip.
  - Candidate pools: exposes the raw name column of each entity table so the
    search layer can run its own matching over literal strings.
  - Statistics: reports row counts and the catalog's publication year range.

The catalog is read-only from this package's point of view. Ingestion and
catalog writes happen out of band; every operation here is a pure query.
*/
package catalog

// # Entity Kinds

// Kind identifies one of the named entity tables in the catalog schema.
type Kind string

const (
	// KindComic selects comic titles as the candidate pool.
	KindComic Kind = "comic"

	// KindSeries selects series names.
	KindSeries Kind = "series"

	// KindPublisher selects publisher names.
	KindPublisher Kind = "publisher"

	// KindCreator selects creator names.
	KindCreator Kind = "creator"

	// KindCharacter selects character names.
	KindCharacter Kind = "character"

	// KindTeam selects team names.
	KindTeam Kind = "team"

	// KindEvent selects event (story arc / crossover) names.
	KindEvent Kind = "event"
)

// IsValid reports whether k is a recognised [Kind] value.
func (k Kind) IsValid() bool {
	switch k {
	case
		KindComic,
		KindSeries,
		KindPublisher,
		KindCreator,
		KindCharacter,
		KindTeam,
		KindEvent:
		return true
	}
	return false
}

// # Core Entities

// AssembledComic is a fully hydrated comic record as returned to callers.
// Relations are nested rather than referenced so a single record is
// self-contained.
type AssembledComic struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Series     string          `json:"series,omitempty"`
	Publisher  string          `json:"publisher,omitempty"`
	Year       *int            `json:"year,omitempty"` // Cover year; may be absent
	Creators   []CreatorCredit `json:"creators"`
	Characters []string        `json:"characters"`
	Teams      []string        `json:"teams"`
	FilePath   string          `json:"file_path"`

	// Confidence is attached by the search layer. Structural matches carry
	// 1.0; fuzzy-tier matches carry the tier score.
	Confidence float64 `json:"match_confidence"`
}

// CreatorCredit is one (creator, role) pairing on a comic.
// A creator credited under two roles yields two credits.
type CreatorCredit struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// NamedEntity is a minimal (id, name) projection of an entity table row,
// used as the candidate pool for name matching.
type NamedEntity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CollaborationRow is one raw co-appearance row: a collaborator credited on
// a comic that the primary creator also worked on. Aggregation happens in
// the search layer.
type CollaborationRow struct {
	ComicID          string
	CollaboratorID   string
	CollaboratorName string
	Role             string
}

// Stats summarises the size and shape of the backing catalog.
type Stats struct {
	Comics     int `json:"comics"`
	Series     int `json:"series"`
	Publishers int `json:"publishers"`
	Creators   int `json:"creators"`
	Characters int `json:"characters"`
	Teams      int `json:"teams"`
	Events     int `json:"events"`

	// Publication year bounds over comics that carry a year.
	MinYear *int `json:"min_year,omitempty"`
	MaxYear *int `json:"max_year,omitempty"`
}

// # Query Model

// Query is a parameterized predicate over the comic table and its appearance
// joins. Zero-valued fields contribute nothing. All text fields hold
// pre-normalized forms; the store binds them as parameters, never
// interpolates them.
type Query struct {
	// Equality on the normalized title.
	TitleNorm string

	// Substring containment on the normalized title. Pattern metacharacters
	// in the value are matched literally.
	TitlePartial string

	SeriesNorm    string
	SeriesPartial string

	PublisherNorm    string
	PublisherPartial string

	CharacterNorm    string
	CharacterPartial string

	// IncludeTeams widens character predicates to appearance rows created
	// via a team roster rather than an individual credit.
	IncludeTeams bool

	TeamNorm    string
	TeamPartial string

	CreatorNorm    string
	CreatorPartial string

	// Role restricts creator predicates to a single credit role,
	// case-insensitively.
	Role string

	EventNorm    string
	EventPartial string

	// Inclusive publication year bounds.
	YearStart *int
	YearEnd   *int

	// Identifier restrictions, used to hydrate comics for entities already
	// resolved by name matching.
	ComicIDs     []string
	SeriesIDs    []string
	PublisherIDs []string
	CreatorIDs   []string
	CharacterIDs []string
	TeamIDs      []string
	EventIDs     []string

	// MatchAny disjoins the field predicates (OR) instead of conjoining
	// them. Identifier restrictions and year bounds always conjoin.
	MatchAny bool

	// Limit caps the number of rows returned; zero means no cap.
	Limit int
}

// IsEmpty reports whether the query carries no field predicate at all.
// Year bounds and identifier restrictions count as predicates.
func (q Query) IsEmpty() bool {
	return q.TitleNorm == "" && q.TitlePartial == "" &&
		q.SeriesNorm == "" && q.SeriesPartial == "" &&
		q.PublisherNorm == "" && q.PublisherPartial == "" &&
		q.CharacterNorm == "" && q.CharacterPartial == "" &&
		q.TeamNorm == "" && q.TeamPartial == "" &&
		q.CreatorNorm == "" && q.CreatorPartial == "" &&
		q.EventNorm == "" && q.EventPartial == "" &&
		q.YearStart == nil && q.YearEnd == nil &&
		len(q.ComicIDs) == 0 && len(q.SeriesIDs) == 0 &&
		len(q.PublisherIDs) == 0 && len(q.CreatorIDs) == 0 &&
		len(q.CharacterIDs) == 0 && len(q.TeamIDs) == 0 &&
		len(q.EventIDs) == 0
}

// # Browsing

// Filter holds the parameters for a paginated catalog browse.
type Filter struct {
	Query     string `json:"q,omitempty"` // Normalized substring over titles
	Publisher string `json:"publisher,omitempty"`
	Series    string `json:"series,omitempty"`
	Year      *int   `json:"year,omitempty"`
}

// # Field Identifiers

// Logical field names accepted by search criteria and used in validation
// messages.
const (
	FieldTitle     = "title"
	FieldSeries    = "series"
	FieldPublisher = "publisher"
	FieldCharacter = "character"
	FieldTeam      = "team"
	FieldCreator   = "creator"
	FieldRole      = "role"
	FieldEvent     = "event"
	FieldYear      = "year"
	FieldStartYear = "start_year"
	FieldEndYear   = "end_year"
)
