// Copyright (c) 2026 Longbox. All rights reserved.
// Author: engineering@longbox.dev

package catalog

import "context"

// # Catalog Data Access

// Store defines the read-only data access contract for the catalog.
type Store interface {
	/*
		FindComics returns hydrated comic records matching the query.

		Parameters:
		  - context: context.Context
		  - query: Query (Parameterized predicate and join restrictions)

		Returns:
		  - []*AssembledComic: Hydrated records in (year, title, id) order
		  - error: Database retrieval failures
	*/
	FindComics(context context.Context, query Query) ([]*AssembledComic, error)

	/*
		CandidateNames returns the (id, name) candidate pool for one entity kind.

		Parameters:
		  - context: context.Context
		  - kind: Kind (Which entity table's name column to project)

		Returns:
		  - []NamedEntity: All rows of the selected table, name order
		  - error: Database retrieval failures
	*/
	CandidateNames(context context.Context, kind Kind) ([]NamedEntity, error)

	/*
		Collaborators returns the raw co-appearance rows for a creator: every
		(comic, collaborator, role) where the collaborator is credited on a
		comic the primary creator also worked on. The primary creator's own
		credits are excluded.

		Parameters:
		  - context: context.Context
		  - creatorID: string

		Returns:
		  - []CollaborationRow: Unaggregated co-appearance rows
		  - error: Database retrieval failures
	*/
	Collaborators(context context.Context, creatorID string) ([]CollaborationRow, error)

	/*
		List returns a filtered, paginated slice of comics and the total count.

		Parameters:
		  - context: context.Context
		  - filter: Filter (Browse criteria)
		  - limit: int
		  - offset: int

		Returns:
		  - []*AssembledComic: Hydrated records
		  - int: Total count matching the filter
		  - error: Database retrieval failures
	*/
	List(context context.Context, filter Filter, limit, offset int) ([]*AssembledComic, int, error)

	/*
		FindByID returns the comic with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *AssembledComic: The hydrated record
		  - error: ErrNotFound if missing
	*/
	FindByID(context context.Context, id string) (*AssembledComic, error)

	/*
		Stats reports row counts per entity table and the publication year range.

		Parameters:
		  - context: context.Context

		Returns:
		  - *Stats: Catalog size summary
		  - error: Database retrieval failures
	*/
	Stats(context context.Context) (*Stats, error)
}
