// Copyright (c) 2026 Longbox. All rights reserved.
// Author: engineering@longbox.dev

/*
Package catalog provides the PostgreSQL implementation for catalog data access.

It utilizes advanced Postgres features to deliver a high-performance read path:
  - JSON Aggregation: Retrieves nested relations (creators, characters, teams)
    in a single round-trip, avoiding the N+1 query problem.
  - Window Functions: Calculates total browse counts without a second query.
  - Set Operations: Uses ANY($n) identifier restrictions to hydrate comics for
    entities the search layer has already resolved by name.

All literal values are bound as positional parameters. Pattern metacharacters
in user text are escaped before binding so they match literally.
*/
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/longboxhq/longbox/internal/platform/apperr"
	"github.com/longboxhq/longbox/internal/platform/database/schema"
	"github.com/longboxhq/longbox/internal/platform/dberr"
)

// # PostgreSQL Store

// store implements the [Store] interface using pgx.
type store struct {
	pool *pgxpool.Pool
}

// NewStore constructs a PostgreSQL backed catalog store.
func NewStore(pool *pgxpool.Pool) Store {
	return &store{pool: pool}
}

// # Comic Hydration

// comicSelect builds the shared SELECT head hydrating one nested record per
// comic row. Creators, characters, and teams are aggregated into JSON arrays
// by correlated sub-queries.
func comicSelect(extraColumns string) string {
	return fmt.Sprintf(`
		SELECT
			c.%s, c.%s, COALESCE(s.%s, ''), COALESCE(p.%s, ''), c.%s, c.%s,
			COALESCE((
				SELECT json_agg(json_build_object('name', cr.%s, 'role', cc.%s) ORDER BY cr.%s, cc.%s)
				FROM %s cc
				JOIN %s cr ON cr.%s = cc.%s
				WHERE cc.%s = c.%s
			), '[]') AS creators,
			COALESCE((
				SELECT json_agg(ch.%s ORDER BY ch.%s)
				FROM %s cch
				JOIN %s ch ON ch.%s = cch.%s
				WHERE cch.%s = c.%s
			), '[]') AS characters,
			COALESCE((
				SELECT json_agg(t.%s ORDER BY t.%s)
				FROM %s ct
				JOIN %s t ON t.%s = ct.%s
				WHERE ct.%s = c.%s
			), '[]') AS teams%s
		FROM %s c
		LEFT JOIN %s s ON s.%s = c.%s
		LEFT JOIN %s p ON p.%s = c.%s
	`,
		schema.CatalogComic.ID,
		schema.CatalogComic.Title,
		schema.CatalogSeries.Name,
		schema.CatalogPublisher.Name,
		schema.CatalogComic.Year,
		schema.CatalogComic.FilePath,
		schema.CatalogCreator.Name, schema.ComicCreator.Role, schema.CatalogCreator.Name, schema.ComicCreator.Role,
		schema.ComicCreator.Table,
		schema.CatalogCreator.Table, schema.CatalogCreator.ID, schema.ComicCreator.CreatorID,
		schema.ComicCreator.ComicID, schema.CatalogComic.ID,
		schema.CatalogCharacter.Name, schema.CatalogCharacter.Name,
		schema.ComicCharacter.Table,
		schema.CatalogCharacter.Table, schema.CatalogCharacter.ID, schema.ComicCharacter.CharacterID,
		schema.ComicCharacter.ComicID, schema.CatalogComic.ID,
		schema.CatalogTeam.Name, schema.CatalogTeam.Name,
		schema.ComicTeam.Table,
		schema.CatalogTeam.Table, schema.CatalogTeam.ID, schema.ComicTeam.TeamID,
		schema.ComicTeam.ComicID, schema.CatalogComic.ID,
		extraColumns,
		schema.CatalogComic.Table,
		schema.CatalogSeries.Table, schema.CatalogSeries.ID, schema.CatalogComic.SeriesID,
		schema.CatalogPublisher.Table, schema.CatalogPublisher.ID, schema.CatalogComic.PublisherID,
	)
}

// scanComic maps one hydrated row into an [AssembledComic]. Extra scan
// targets (e.g. a window count) are appended after the JSON columns.
func scanComic(rows pgx.Rows, extra ...any) (*AssembledComic, error) {
	comic := &AssembledComic{}
	var creatorsJSON, charactersJSON, teamsJSON []byte

	targets := []any{
		&comic.ID,
		&comic.Title,
		&comic.Series,
		&comic.Publisher,
		&comic.Year,
		&comic.FilePath,
		&creatorsJSON,
		&charactersJSON,
		&teamsJSON,
	}
	targets = append(targets, extra...)

	if err := rows.Scan(targets...); err != nil {
		return nil, fmt.Errorf("postgres: failed to scan comic: %w", err)
	}

	if err := json.Unmarshal(creatorsJSON, &comic.Creators); err != nil {
		return nil, fmt.Errorf("postgres: failed to unmarshal creators: %w", err)
	}
	if err := json.Unmarshal(charactersJSON, &comic.Characters); err != nil {
		return nil, fmt.Errorf("postgres: failed to unmarshal characters: %w", err)
	}
	if err := json.Unmarshal(teamsJSON, &comic.Teams); err != nil {
		return nil, fmt.Errorf("postgres: failed to unmarshal teams: %w", err)
	}

	return comic, nil
}

// # Predicate Construction

/*
FindComics returns hydrated comic records matching the query.

Description: This query composes a dynamic WHERE clause from the typed
[Query] struct:
  - Field predicates (title, series, publisher, character, team, creator,
    event) join with AND by default, or OR when MatchAny is set.
  - Identifier restrictions and year bounds always conjoin, regardless of
    MatchAny — they scope the result set rather than describe a criterion.
  - Appearance predicates are expressed as EXISTS sub-queries so a comic
    matching the same criterion through several appearance rows still
    yields a single row.

Parameters:
  - context: context.Context
  - query: Query (Parameterized predicate and join restrictions)

Returns:
  - []*AssembledComic: Hydrated records in (year, title, id) order
  - error: Database execution errors mapped through dberr
*/
func (store *store) FindComics(context context.Context, query Query) ([]*AssembledComic, error) {

	// Query build initialization
	var args []any
	argID := 1

	bind := func(value any) int {
		args = append(args, value)
		id := argID
		argID++
		return id
	}

	// Field predicates, combined per the match mode
	var fields []string

	// Title
	if query.TitleNorm != "" {
		fields = append(fields, fmt.Sprintf("c.%s = $%d", schema.CatalogComic.TitleNorm, bind(query.TitleNorm)))
	}
	if query.TitlePartial != "" {
		fields = append(fields, fmt.Sprintf(`c.%s LIKE $%d ESCAPE '\'`, schema.CatalogComic.TitleNorm, bind(likeContains(query.TitlePartial))))
	}

	// Series
	if query.SeriesNorm != "" {
		fields = append(fields, fmt.Sprintf("s.%s = $%d", schema.CatalogSeries.NameNorm, bind(query.SeriesNorm)))
	}
	if query.SeriesPartial != "" {
		fields = append(fields, fmt.Sprintf(`s.%s LIKE $%d ESCAPE '\'`, schema.CatalogSeries.NameNorm, bind(likeContains(query.SeriesPartial))))
	}

	// Publisher
	if query.PublisherNorm != "" {
		fields = append(fields, fmt.Sprintf("p.%s = $%d", schema.CatalogPublisher.NameNorm, bind(query.PublisherNorm)))
	}
	if query.PublisherPartial != "" {
		fields = append(fields, fmt.Sprintf(`p.%s LIKE $%d ESCAPE '\'`, schema.CatalogPublisher.NameNorm, bind(likeContains(query.PublisherPartial))))
	}

	// Character appearances. Team-roster rows are excluded unless the
	// caller opted in.
	teamRowFilter := fmt.Sprintf(" AND cch.%s = FALSE", schema.ComicCharacter.ViaTeam)
	if query.IncludeTeams {
		teamRowFilter = ""
	}
	if query.CharacterNorm != "" {
		fields = append(fields, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM %s cch JOIN %s ch ON ch.%s = cch.%s WHERE cch.%s = c.%s AND ch.%s = $%d%s)",
			schema.ComicCharacter.Table, schema.CatalogCharacter.Table,
			schema.CatalogCharacter.ID, schema.ComicCharacter.CharacterID,
			schema.ComicCharacter.ComicID, schema.CatalogComic.ID,
			schema.CatalogCharacter.NameNorm, bind(query.CharacterNorm), teamRowFilter,
		))
	}
	if query.CharacterPartial != "" {
		fields = append(fields, fmt.Sprintf(
			`EXISTS (SELECT 1 FROM %s cch JOIN %s ch ON ch.%s = cch.%s WHERE cch.%s = c.%s AND ch.%s LIKE $%d ESCAPE '\'%s)`,
			schema.ComicCharacter.Table, schema.CatalogCharacter.Table,
			schema.CatalogCharacter.ID, schema.ComicCharacter.CharacterID,
			schema.ComicCharacter.ComicID, schema.CatalogComic.ID,
			schema.CatalogCharacter.NameNorm, bind(likeContains(query.CharacterPartial)), teamRowFilter,
		))
	}

	// Team appearances
	if query.TeamNorm != "" {
		fields = append(fields, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM %s ct JOIN %s t ON t.%s = ct.%s WHERE ct.%s = c.%s AND t.%s = $%d)",
			schema.ComicTeam.Table, schema.CatalogTeam.Table,
			schema.CatalogTeam.ID, schema.ComicTeam.TeamID,
			schema.ComicTeam.ComicID, schema.CatalogComic.ID,
			schema.CatalogTeam.NameNorm, bind(query.TeamNorm),
		))
	}
	if query.TeamPartial != "" {
		fields = append(fields, fmt.Sprintf(
			`EXISTS (SELECT 1 FROM %s ct JOIN %s t ON t.%s = ct.%s WHERE ct.%s = c.%s AND t.%s LIKE $%d ESCAPE '\')`,
			schema.ComicTeam.Table, schema.CatalogTeam.Table,
			schema.CatalogTeam.ID, schema.ComicTeam.TeamID,
			schema.ComicTeam.ComicID, schema.CatalogComic.ID,
			schema.CatalogTeam.NameNorm, bind(likeContains(query.TeamPartial)),
		))
	}

	// Creator credits, optionally pinned to a role. The role parameter is
	// bound only when a creator clause references it.
	roleFilter := ""
	if query.Role != "" && (query.CreatorNorm != "" || query.CreatorPartial != "" || len(query.CreatorIDs) > 0) {
		roleFilter = fmt.Sprintf(" AND LOWER(cc.%s) = LOWER($%d)", schema.ComicCreator.Role, bind(query.Role))
	}
	if query.CreatorNorm != "" {
		fields = append(fields, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM %s cc JOIN %s cr ON cr.%s = cc.%s WHERE cc.%s = c.%s AND cr.%s = $%d%s)",
			schema.ComicCreator.Table, schema.CatalogCreator.Table,
			schema.CatalogCreator.ID, schema.ComicCreator.CreatorID,
			schema.ComicCreator.ComicID, schema.CatalogComic.ID,
			schema.CatalogCreator.NameNorm, bind(query.CreatorNorm), roleFilter,
		))
	}
	if query.CreatorPartial != "" {
		fields = append(fields, fmt.Sprintf(
			`EXISTS (SELECT 1 FROM %s cc JOIN %s cr ON cr.%s = cc.%s WHERE cc.%s = c.%s AND cr.%s LIKE $%d ESCAPE '\'%s)`,
			schema.ComicCreator.Table, schema.CatalogCreator.Table,
			schema.CatalogCreator.ID, schema.ComicCreator.CreatorID,
			schema.ComicCreator.ComicID, schema.CatalogComic.ID,
			schema.CatalogCreator.NameNorm, bind(likeContains(query.CreatorPartial)), roleFilter,
		))
	}

	// Event appearances
	if query.EventNorm != "" {
		fields = append(fields, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM %s ce JOIN %s e ON e.%s = ce.%s WHERE ce.%s = c.%s AND e.%s = $%d)",
			schema.ComicEvent.Table, schema.CatalogEvent.Table,
			schema.CatalogEvent.ID, schema.ComicEvent.EventID,
			schema.ComicEvent.ComicID, schema.CatalogComic.ID,
			schema.CatalogEvent.NameNorm, bind(query.EventNorm),
		))
	}
	if query.EventPartial != "" {
		fields = append(fields, fmt.Sprintf(
			`EXISTS (SELECT 1 FROM %s ce JOIN %s e ON e.%s = ce.%s WHERE ce.%s = c.%s AND e.%s LIKE $%d ESCAPE '\')`,
			schema.ComicEvent.Table, schema.CatalogEvent.Table,
			schema.CatalogEvent.ID, schema.ComicEvent.EventID,
			schema.ComicEvent.ComicID, schema.CatalogComic.ID,
			schema.CatalogEvent.NameNorm, bind(likeContains(query.EventPartial)),
		))
	}

	// Scoping predicates, always conjoined
	var scoped []string

	if query.YearStart != nil {
		scoped = append(scoped, fmt.Sprintf("c.%s >= $%d", schema.CatalogComic.Year, bind(*query.YearStart)))
	}
	if query.YearEnd != nil {
		scoped = append(scoped, fmt.Sprintf("c.%s <= $%d", schema.CatalogComic.Year, bind(*query.YearEnd)))
	}

	if len(query.ComicIDs) > 0 {
		scoped = append(scoped, fmt.Sprintf("c.%s = ANY($%d)", schema.CatalogComic.ID, bind(query.ComicIDs)))
	}
	if len(query.SeriesIDs) > 0 {
		scoped = append(scoped, fmt.Sprintf("c.%s = ANY($%d)", schema.CatalogComic.SeriesID, bind(query.SeriesIDs)))
	}
	if len(query.PublisherIDs) > 0 {
		scoped = append(scoped, fmt.Sprintf("c.%s = ANY($%d)", schema.CatalogComic.PublisherID, bind(query.PublisherIDs)))
	}
	if len(query.CreatorIDs) > 0 {
		scoped = append(scoped, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM %s cc WHERE cc.%s = c.%s AND cc.%s = ANY($%d)%s)",
			schema.ComicCreator.Table,
			schema.ComicCreator.ComicID, schema.CatalogComic.ID,
			schema.ComicCreator.CreatorID, bind(query.CreatorIDs), roleFilter,
		))
	}
	if len(query.CharacterIDs) > 0 {
		scoped = append(scoped, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM %s cch WHERE cch.%s = c.%s AND cch.%s = ANY($%d)%s)",
			schema.ComicCharacter.Table,
			schema.ComicCharacter.ComicID, schema.CatalogComic.ID,
			schema.ComicCharacter.CharacterID, bind(query.CharacterIDs), teamRowFilter,
		))
	}
	if len(query.TeamIDs) > 0 {
		scoped = append(scoped, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM %s ct WHERE ct.%s = c.%s AND ct.%s = ANY($%d))",
			schema.ComicTeam.Table,
			schema.ComicTeam.ComicID, schema.CatalogComic.ID,
			schema.ComicTeam.TeamID, bind(query.TeamIDs),
		))
	}
	if len(query.EventIDs) > 0 {
		scoped = append(scoped, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM %s ce WHERE ce.%s = c.%s AND ce.%s = ANY($%d))",
			schema.ComicEvent.Table,
			schema.ComicEvent.ComicID, schema.CatalogComic.ID,
			schema.ComicEvent.EventID, bind(query.EventIDs),
		))
	}

	// Assemble the WHERE clause
	var queryBuilder strings.Builder
	queryBuilder.WriteString(comicSelect(""))
	queryBuilder.WriteString(" WHERE TRUE")

	if len(fields) > 0 {
		joiner := " AND "
		if query.MatchAny {
			joiner = " OR "
		}
		queryBuilder.WriteString(" AND (")
		queryBuilder.WriteString(strings.Join(fields, joiner))
		queryBuilder.WriteString(")")
	}
	for _, clause := range scoped {
		queryBuilder.WriteString(" AND ")
		queryBuilder.WriteString(clause)
	}

	// Stable store-level ordering; the search layer re-ranks by confidence
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY c.%s ASC NULLS LAST, c.%s ASC, c.%s ASC",
		schema.CatalogComic.Year, schema.CatalogComic.Title, schema.CatalogComic.ID))

	if query.Limit > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d", bind(query.Limit)))
	}

	// Query execution
	rows, err := store.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, dberr.Wrap(err, "find comics")
	}
	defer rows.Close()

	var comics []*AssembledComic
	for rows.Next() {
		comic, err := scanComic(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan comic")
		}
		comics = append(comics, comic)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "find comics")
	}

	return comics, nil
}

// # Candidate Pools

/*
CandidateNames returns the (id, name) candidate pool for one entity kind.

Description: Projects only the identifier and raw display name of the
selected table, ordered by name for deterministic downstream matching.
The caller normalizes names itself.

Parameters:
  - context: context.Context
  - kind: Kind (Which entity table's name column to project)

Returns:
  - []NamedEntity: All rows of the selected table, name order
  - error: Database execution errors mapped through dberr
*/
func (store *store) CandidateNames(context context.Context, kind Kind) ([]NamedEntity, error) {

	// Table resolution
	var table, idColumn, nameColumn string
	switch kind {
	case KindComic:
		table, idColumn, nameColumn = schema.CatalogComic.Table, schema.CatalogComic.ID, schema.CatalogComic.Title
	case KindSeries:
		table, idColumn, nameColumn = schema.CatalogSeries.Table, schema.CatalogSeries.ID, schema.CatalogSeries.Name
	case KindPublisher:
		table, idColumn, nameColumn = schema.CatalogPublisher.Table, schema.CatalogPublisher.ID, schema.CatalogPublisher.Name
	case KindCreator:
		table, idColumn, nameColumn = schema.CatalogCreator.Table, schema.CatalogCreator.ID, schema.CatalogCreator.Name
	case KindCharacter:
		table, idColumn, nameColumn = schema.CatalogCharacter.Table, schema.CatalogCharacter.ID, schema.CatalogCharacter.Name
	case KindTeam:
		table, idColumn, nameColumn = schema.CatalogTeam.Table, schema.CatalogTeam.ID, schema.CatalogTeam.Name
	case KindEvent:
		table, idColumn, nameColumn = schema.CatalogEvent.Table, schema.CatalogEvent.ID, schema.CatalogEvent.Name
	default:
		return nil, apperr.ValidationError(fmt.Sprintf("Unknown entity kind %q", kind))
	}

	query := fmt.Sprintf("SELECT %s, %s FROM %s ORDER BY %s, %s", idColumn, nameColumn, table, nameColumn, idColumn)

	rows, err := store.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list candidate names")
	}
	defer rows.Close()

	var entities []NamedEntity
	for rows.Next() {
		var entity NamedEntity
		if err := rows.Scan(&entity.ID, &entity.Name); err != nil {
			return nil, dberr.Wrap(err, "scan candidate name")
		}
		entities = append(entities, entity)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list candidate names")
	}

	return entities, nil
}

// # Collaboration Rows

/*
Collaborators returns the raw co-appearance rows for a creator.

Description: Self-joins the creator credit table on the comic identifier
to pair the primary creator's comics with every other credit on those
comics, then resolves collaborator names. DISTINCT collapses duplicate
credit rows so the aggregation layer counts each (comic, collaborator,
role) triple once. The primary creator's own credits are excluded in SQL.

Parameters:
  - context: context.Context
  - creatorID: string

Returns:
  - []CollaborationRow: Unaggregated co-appearance rows
  - error: Database execution errors mapped through dberr
*/
func (store *store) Collaborators(context context.Context, creatorID string) ([]CollaborationRow, error) {

	query := fmt.Sprintf(`
		SELECT DISTINCT mine.%s, cr.%s, cr.%s, theirs.%s
		FROM %s mine
		JOIN %s theirs ON theirs.%s = mine.%s
		JOIN %s cr ON cr.%s = theirs.%s
		WHERE mine.%s = $1 AND theirs.%s <> $1
		ORDER BY cr.%s, theirs.%s, mine.%s
	`,
		schema.ComicCreator.ComicID, schema.CatalogCreator.ID, schema.CatalogCreator.Name, schema.ComicCreator.Role,
		schema.ComicCreator.Table,
		schema.ComicCreator.Table, schema.ComicCreator.ComicID, schema.ComicCreator.ComicID,
		schema.CatalogCreator.Table, schema.CatalogCreator.ID, schema.ComicCreator.CreatorID,
		schema.ComicCreator.CreatorID, schema.ComicCreator.CreatorID,
		schema.CatalogCreator.Name, schema.ComicCreator.Role, schema.ComicCreator.ComicID,
	)

	rows, err := store.pool.Query(context, query, creatorID)
	if err != nil {
		return nil, dberr.Wrap(err, "list collaborators")
	}
	defer rows.Close()

	var collaborations []CollaborationRow
	for rows.Next() {
		var row CollaborationRow
		if err := rows.Scan(&row.ComicID, &row.CollaboratorID, &row.CollaboratorName, &row.Role); err != nil {
			return nil, dberr.Wrap(err, "scan collaborator")
		}
		collaborations = append(collaborations, row)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list collaborators")
	}

	return collaborations, nil
}

// # Browsing

/*
List returns a filtered, paginated slice of comics and the total count.

Description: Uses COUNT(*) OVER() to retrieve the total record count in the
same round-trip as the page itself. Filter text is expected in normalized
form; the title filter is a literal substring match, publisher and series
filters are exact on the normalized name.

Parameters:
  - context: context.Context
  - filter: Filter (Browse criteria)
  - limit: int
  - offset: int

Returns:
  - []*AssembledComic: Hydrated records
  - int: Total count matching the filter
  - error: Database execution errors mapped through dberr
*/
func (store *store) List(context context.Context, filter Filter, limit, offset int) ([]*AssembledComic, int, error) {

	// Query build initialization
	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(comicSelect(", COUNT(*) OVER() AS total_count"))
	queryBuilder.WriteString(" WHERE TRUE")

	// Title substring
	if filter.Query != "" {
		queryBuilder.WriteString(fmt.Sprintf(` AND c.%s LIKE $%d ESCAPE '\'`, schema.CatalogComic.TitleNorm, argID))
		args = append(args, likeContains(filter.Query))
		argID++
	}

	// Publisher
	if filter.Publisher != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND p.%s = $%d", schema.CatalogPublisher.NameNorm, argID))
		args = append(args, filter.Publisher)
		argID++
	}

	// Series
	if filter.Series != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND s.%s = $%d", schema.CatalogSeries.NameNorm, argID))
		args = append(args, filter.Series)
		argID++
	}

	// Year
	if filter.Year != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND c.%s = $%d", schema.CatalogComic.Year, argID))
		args = append(args, *filter.Year)
		argID++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY c.%s ASC, c.%s ASC", schema.CatalogComic.Title, schema.CatalogComic.ID))
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, limit, offset)

	// Query execution
	rows, err := store.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list comics")
	}
	defer rows.Close()

	var comics []*AssembledComic
	var totalCount int
	for rows.Next() {
		comic, err := scanComic(rows, &totalCount)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan comic")
		}
		comics = append(comics, comic)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list comics")
	}

	return comics, totalCount, nil
}

/*
FindByID retrieves a comic record by its primary key.

Description: Performs a single-row lookup sharing the hydration head with
the search path, so the record carries the same nested relations a search
result does.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *AssembledComic: The hydrated record
  - error: apperr.NotFound if the comic does not exist
*/
func (store *store) FindByID(context context.Context, id string) (*AssembledComic, error) {

	query := comicSelect("") + fmt.Sprintf(" WHERE c.%s = $1", schema.CatalogComic.ID)

	rows, err := store.pool.Query(context, query, id)
	if err != nil {
		return nil, dberr.Wrap(err, "find comic by id")
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, dberr.Wrap(err, "find comic by id")
		}
		return nil, apperr.NotFound("comic")
	}

	comic, err := scanComic(rows)
	if err != nil {
		return nil, dberr.Wrap(err, "scan comic")
	}

	return comic, nil
}

// # Statistics

/*
Stats reports row counts per entity table and the publication year range.

Description: A single query of scalar sub-selects, one per entity table,
plus MIN/MAX over the comic year column. NULL year bounds (empty catalog
or no dated comics) surface as absent values.

Parameters:
  - context: context.Context

Returns:
  - *Stats: Catalog size summary
  - error: Database execution errors mapped through dberr
*/
func (store *store) Stats(context context.Context) (*Stats, error) {

	query := fmt.Sprintf(`
		SELECT
			(SELECT COUNT(*) FROM %s),
			(SELECT COUNT(*) FROM %s),
			(SELECT COUNT(*) FROM %s),
			(SELECT COUNT(*) FROM %s),
			(SELECT COUNT(*) FROM %s),
			(SELECT COUNT(*) FROM %s),
			(SELECT COUNT(*) FROM %s),
			(SELECT MIN(%s) FROM %s),
			(SELECT MAX(%s) FROM %s)
	`,
		schema.CatalogComic.Table,
		schema.CatalogSeries.Table,
		schema.CatalogPublisher.Table,
		schema.CatalogCreator.Table,
		schema.CatalogCharacter.Table,
		schema.CatalogTeam.Table,
		schema.CatalogEvent.Table,
		schema.CatalogComic.Year, schema.CatalogComic.Table,
		schema.CatalogComic.Year, schema.CatalogComic.Table,
	)

	stats := &Stats{}
	err := store.pool.QueryRow(context, query).Scan(
		&stats.Comics,
		&stats.Series,
		&stats.Publishers,
		&stats.Creators,
		&stats.Characters,
		&stats.Teams,
		&stats.Events,
		&stats.MinYear,
		&stats.MaxYear,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("catalog stats")
		}
		return nil, dberr.Wrap(err, "load catalog stats")
	}

	return stats, nil
}

// # Helpers

// likeContains wraps a normalized literal in containment wildcards, escaping
// pattern metacharacters so user-supplied %, _ and \ match literally.
func likeContains(literal string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(literal) + "%"
}
