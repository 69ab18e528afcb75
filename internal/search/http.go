// Copyright (c) 2026 Longbox. All rights reserved.
// Author: engineering@longbox.dev

/*
Package search provides the HTTP interface for the search engine.

# Routing Strategy

  - One endpoint per search tool under /api/v1/search.
  - Every endpoint emits the engine envelope verbatim: { results, metadata }.
  - Empty result sets are 200 responses with result_count 0, never 404.

The handler translates between the web/JSON layer and the [Engine].
*/
package search

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	requestutil "github.com/longboxhq/longbox/internal/platform/request"
	"github.com/longboxhq/longbox/internal/platform/respond"
	"github.com/longboxhq/longbox/pkg/pointer"
)

// # Handler Implementation

// Handler implements the HTTP layer for search operations.
type Handler struct {
	engine Engine
}

// NewHandler constructs a new search [Handler] with its engine dependency.
func NewHandler(engine Engine) *Handler {
	return &Handler{engine: engine}
}

// Routes returns a [chi.Router] configured with one route per search tool.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/title", handler.searchByTitle)
	router.Get("/series", handler.searchBySeries)
	router.Get("/character", handler.searchByCharacter)
	router.Get("/team", handler.searchByTeam)
	router.Get("/creator", handler.searchByCreator)
	router.Get("/event", handler.searchByEvent)
	router.Get("/year", handler.searchByYear)
	router.Get("/collaborations", handler.findCollaborations)
	router.Post("/advanced", handler.advancedSearch)

	return router
}

// # Search Endpoints

/*
GET /api/v1/search/title.

Request:
  - title: string (Required)
  - exact_match: bool

Response:
  - 200: Response: Ranked comic list envelope
  - 400: 400: ValidationError: Missing title
*/
func (handler *Handler) searchByTitle(writer http.ResponseWriter, request *http.Request) {
	response, err := handler.engine.SearchByTitle(
		request.Context(),
		requestutil.Query(request, "title"),
		requestutil.QueryBool(request, "exact_match", false),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusOK, response)
}

/*
GET /api/v1/search/series.

Request:
  - series: string (Required)
  - publisher: string
  - exact_match: bool

Response:
  - 200: Response: Ranked comic list envelope
  - 400: 400: ValidationError: Missing series
*/
func (handler *Handler) searchBySeries(writer http.ResponseWriter, request *http.Request) {
	response, err := handler.engine.SearchBySeries(
		request.Context(),
		requestutil.Query(request, "series"),
		requestutil.Query(request, "publisher"),
		requestutil.QueryBool(request, "exact_match", false),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusOK, response)
}

/*
GET /api/v1/search/character.

Request:
  - character_name: string (Required)
  - include_teams: bool (Omitted defers to the engine default)

Response:
  - 200: Response: Ranked comic list envelope
  - 400: 400: ValidationError: Missing character_name
*/
func (handler *Handler) searchByCharacter(writer http.ResponseWriter, request *http.Request) {
	var includeTeams *bool
	if raw := requestutil.Query(request, "include_teams"); raw != "" {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			includeTeams = pointer.To(parsed)
		}
	}

	response, err := handler.engine.SearchByCharacter(
		request.Context(),
		requestutil.Query(request, "character_name"),
		includeTeams,
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusOK, response)
}

/*
GET /api/v1/search/team.

Request:
  - team_name: string (Required)

Response:
  - 200: Response: Ranked comic list envelope
  - 400: 400: ValidationError: Missing team_name
*/
func (handler *Handler) searchByTeam(writer http.ResponseWriter, request *http.Request) {
	response, err := handler.engine.SearchByTeam(request.Context(), requestutil.Query(request, "team_name"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusOK, response)
}

/*
GET /api/v1/search/creator.

Request:
  - creator_name: string (Required)
  - role: string (writer, artist, inker, ...)
  - exact_match: bool

Response:
  - 200: Response: Ranked comic list envelope
  - 400: 400: ValidationError: Missing creator_name
*/
func (handler *Handler) searchByCreator(writer http.ResponseWriter, request *http.Request) {
	response, err := handler.engine.SearchByCreator(
		request.Context(),
		requestutil.Query(request, "creator_name"),
		requestutil.Query(request, "role"),
		requestutil.QueryBool(request, "exact_match", false),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusOK, response)
}

/*
GET /api/v1/search/event.

Request:
  - event_name: string (Required)

Response:
  - 200: Response: Ranked comic list envelope
  - 400: 400: ValidationError: Missing event_name
*/
func (handler *Handler) searchByEvent(writer http.ResponseWriter, request *http.Request) {
	response, err := handler.engine.SearchByEvent(request.Context(), requestutil.Query(request, "event_name"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusOK, response)
}

/*
GET /api/v1/search/year.

Request:
  - year: int (Exclusive with the range bounds)
  - start_year: int
  - end_year: int

Response:
  - 200: Response: Comic list envelope, ascending by year
  - 400: 400: ValidationError: Contradictory or absent bounds
*/
func (handler *Handler) searchByYear(writer http.ResponseWriter, request *http.Request) {
	year, err := requestutil.QueryInt(request, "year")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	startYear, err := requestutil.QueryInt(request, "start_year")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	endYear, err := requestutil.QueryInt(request, "end_year")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	response, err := handler.engine.SearchByYear(request.Context(), year, startYear, endYear)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusOK, response)
}

/*
GET /api/v1/search/collaborations.

Request:
  - creator_name: string (Required; free text, fuzzily resolved)
  - collaboration_type: string (Role restriction; "role" is accepted too)

Response:
  - 200: Response: Ranked collaborator list envelope
  - 400: 400: ValidationError: Missing creator_name
*/
func (handler *Handler) findCollaborations(writer http.ResponseWriter, request *http.Request) {
	roleFilter := requestutil.Query(request, "collaboration_type")
	if roleFilter == "" {
		roleFilter = requestutil.Query(request, "role")
	}

	response, err := handler.engine.FindCreatorCollaborations(
		request.Context(),
		requestutil.Query(request, "creator_name"),
		roleFilter,
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusOK, response)
}

// # Advanced Search

// advancedSearchRequest defines the inbound JSON schema for advanced search.
// Unknown fields anywhere in the payload are rejected.
type advancedSearchRequest struct {
	Criteria Criteria `json:"criteria"`
	MatchAll *bool    `json:"match_all"`
}

/*
POST /api/v1/search/advanced.

Request (Body):
  - criteria: Criteria (At least one criterion required)
  - match_all: bool (Defaults to true)

Response:
  - 200: Response: Ranked comic list envelope
  - 400: 400: ErrInvalidJSON/ValidationError: Malformed payload or criteria
*/
func (handler *Handler) advancedSearch(writer http.ResponseWriter, request *http.Request) {
	var input advancedSearchRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	response, err := handler.engine.AdvancedSearch(request.Context(), input.Criteria, pointer.Fallback(input.MatchAll, true))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusOK, response)
}
