// Copyright (c) 2026 Longbox. All rights reserved.
// Author: engineering@longbox.dev

package catalog

import (
	"context"
	"log/slog"

	"github.com/longboxhq/longbox/pkg/nameform"
)

// # Service Layer

// Service orchestrates catalog browsing and statistics.
// Search flows live in the search package; this service covers the plain
// read paths.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService constructs a new [Service] with its store dependency.
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// # Browsing

/*
ListComics retrieves a paginated and filtered page of the catalog.

Description: Free-text filter values are normalized before reaching the
store so comparisons run against the precomputed normalized-name columns.

Parameters:
  - context: context.Context
  - filter: Filter (Raw browse criteria)
  - limit: int (Max records to return)
  - offset: int (Pagination cursor)

Returns:
  - []*AssembledComic: Page of hydrated records
  - int: Total count matching the filter
  - error: Store level errors
*/
func (service *Service) ListComics(context context.Context, filter Filter, limit, offset int) ([]*AssembledComic, int, error) {
	filter.Query = nameform.Normalize(filter.Query)
	filter.Publisher = nameform.Normalize(filter.Publisher)
	filter.Series = nameform.Normalize(filter.Series)

	return service.store.List(context, filter, limit, offset)
}

// GetComic fetches a single hydrated record by its identifier.
func (service *Service) GetComic(context context.Context, id string) (*AssembledComic, error) {
	return service.store.FindByID(context, id)
}

// # Statistics

// Stats reports catalog size and the publication year range.
func (service *Service) Stats(context context.Context) (*Stats, error) {
	stats, err := service.store.Stats(context)
	if err != nil {
		return nil, err
	}

	service.logger.Debug("catalog_stats_read",
		slog.Int("comics", stats.Comics),
		slog.Int("creators", stats.Creators),
	)

	return stats, nil
}
