// Copyright (c) 2026 Longbox. All rights reserved.
// Author: engineering@longbox.dev

package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	requestutil "github.com/longboxhq/longbox/internal/platform/request"
	"github.com/longboxhq/longbox/internal/platform/respond"
	"github.com/longboxhq/longbox/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for catalog browsing.
// It translates web requests into domain service calls.
type Handler struct {
	service *Service
}

// NewHandler constructs a new catalog [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the browse endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listComics)
	router.Get("/{id}", handler.getComic)

	return router
}

// # Browse Endpoints

/*
GET /api/v1/comics.

Description: Retrieves a paginated list of the catalog. Filter values are
free text; normalization happens inside the service.

Request:
  - q: string (Title substring)
  - publisher: string (Publisher name)
  - series: string (Series name)
  - year: int
  - limit: int
  - page: int

Response:
  - 200: []AssembledComic: Paginated list of hydrated records
*/
func (handler *Handler) listComics(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Query:     requestutil.Query(request, "q"),
		Publisher: requestutil.Query(request, "publisher"),
		Series:    requestutil.Query(request, "series"),
	}

	year, err := requestutil.QueryInt(request, "year")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	filter.Year = year

	comics, total, err := handler.service.ListComics(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, comics, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
GET /api/v1/comics/{id}.

Description: Retrieves one hydrated catalog record.

Request:
  - id: string

Response:
  - 200: AssembledComic: Success
  - 404: 404: ErrNotFound: Comic not found
*/
func (handler *Handler) getComic(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	comic, err := handler.service.GetComic(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, comic)
}

/*
GET /api/v1/stats.

Description: Reports row counts per entity table and the catalog's
publication year range.

Response:
  - 200: Stats: Catalog size summary
*/
func (handler *Handler) GetStats(writer http.ResponseWriter, request *http.Request) {
	stats, err := handler.service.Stats(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, stats)
}
