// Copyright (c) 2026 Longbox. All rights reserved.
// Author: engineering@longbox.dev

package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/longboxhq/longbox/internal/platform/constants"
	"github.com/longboxhq/longbox/internal/platform/respond"
	"github.com/longboxhq/longbox/pkg/nameform"
	"github.com/redis/go-redis/v9"
)

// # Redis Cache Decorator

// CachedEngine wraps an [Engine] with a Redis result cache.
//
// Keys combine the tool name, the normalized criteria, and the match mode,
// so two spellings of the same query share an entry. The cache is layered
// strictly outside the engine: a Redis failure degrades to a direct engine
// call, never to a request failure. Invalidation is explicit, driven by
// catalog writes happening out of band.
type CachedEngine struct {
	inner  Engine
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedEngine constructs the cache decorator around an engine.
func NewCachedEngine(inner Engine, client *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedEngine {
	if ttl <= 0 {
		ttl = constants.DefaultSearchCacheTTL
	}
	return &CachedEngine{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// # Engine Implementation

func (engine *CachedEngine) SearchByTitle(context context.Context, title string, exactMatch bool) (*Response, error) {
	key := engine.key("title", nameform.Normalize(title), fmt.Sprintf("exact=%t", exactMatch))
	return engine.withCache(context, key, func() (*Response, error) {
		return engine.inner.SearchByTitle(context, title, exactMatch)
	})
}

func (engine *CachedEngine) SearchBySeries(context context.Context, series, publisher string, exactMatch bool) (*Response, error) {
	key := engine.key("series", nameform.Normalize(series), nameform.Normalize(publisher), fmt.Sprintf("exact=%t", exactMatch))
	return engine.withCache(context, key, func() (*Response, error) {
		return engine.inner.SearchBySeries(context, series, publisher, exactMatch)
	})
}

func (engine *CachedEngine) SearchByCharacter(context context.Context, characterName string, includeTeams *bool) (*Response, error) {
	teams := "default"
	if includeTeams != nil {
		teams = fmt.Sprintf("%t", *includeTeams)
	}
	key := engine.key("character", nameform.Normalize(characterName), "teams="+teams)
	return engine.withCache(context, key, func() (*Response, error) {
		return engine.inner.SearchByCharacter(context, characterName, includeTeams)
	})
}

func (engine *CachedEngine) SearchByTeam(context context.Context, teamName string) (*Response, error) {
	key := engine.key("team", nameform.Normalize(teamName))
	return engine.withCache(context, key, func() (*Response, error) {
		return engine.inner.SearchByTeam(context, teamName)
	})
}

func (engine *CachedEngine) SearchByCreator(context context.Context, creatorName, role string, exactMatch bool) (*Response, error) {
	key := engine.key("creator", nameform.Normalize(creatorName), nameform.Normalize(role), fmt.Sprintf("exact=%t", exactMatch))
	return engine.withCache(context, key, func() (*Response, error) {
		return engine.inner.SearchByCreator(context, creatorName, role, exactMatch)
	})
}

func (engine *CachedEngine) SearchByEvent(context context.Context, eventName string) (*Response, error) {
	key := engine.key("event", nameform.Normalize(eventName))
	return engine.withCache(context, key, func() (*Response, error) {
		return engine.inner.SearchByEvent(context, eventName)
	})
}

func (engine *CachedEngine) SearchByYear(context context.Context, year, startYear, endYear *int) (*Response, error) {
	key := engine.key("year", yearKey(year), yearKey(startYear), yearKey(endYear))
	return engine.withCache(context, key, func() (*Response, error) {
		return engine.inner.SearchByYear(context, year, startYear, endYear)
	})
}

func (engine *CachedEngine) FindCreatorCollaborations(context context.Context, creatorName, roleFilter string) (*Response, error) {
	key := engine.key("collaborations", nameform.Normalize(creatorName), nameform.Normalize(roleFilter))
	return engine.withCache(context, key, func() (*Response, error) {
		return engine.inner.FindCreatorCollaborations(context, creatorName, roleFilter)
	})
}

func (engine *CachedEngine) AdvancedSearch(context context.Context, criteria Criteria, matchAll bool) (*Response, error) {
	// Criteria is a closed struct, so its JSON form is a stable key.
	encoded, err := json.Marshal(criteria)
	if err != nil {
		return engine.inner.AdvancedSearch(context, criteria, matchAll)
	}

	key := engine.key("advanced", string(encoded), fmt.Sprintf("all=%t", matchAll))
	return engine.withCache(context, key, func() (*Response, error) {
		return engine.inner.AdvancedSearch(context, criteria, matchAll)
	})
}

// # Invalidation

/*
Invalidate removes every cached search result.

Description: Scans the search key space in batches and deletes what it
finds. Called after catalog writes land, via the cache invalidation
endpoint.

Parameters:
  - context: context.Context

Returns:
  - int: Number of keys removed
  - error: Redis scan or delete failures
*/
func (engine *CachedEngine) Invalidate(context context.Context) (int, error) {
	var cursor uint64
	removed := 0

	for {
		keys, next, err := engine.client.Scan(context, cursor, constants.RedisPrefixSearch+"*", 100).Result()
		if err != nil {
			return removed, err
		}

		if len(keys) > 0 {
			deleted, err := engine.client.Del(context, keys...).Result()
			if err != nil {
				return removed, err
			}
			removed += int(deleted)
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	engine.logger.Info("search_cache_invalidated", slog.Int("keys", removed))
	return removed, nil
}

/*
POST /api/v1/cache/invalidate.

Description: Flushes the search result cache. Intended for the ingestion
pipeline to call after catalog writes.

Response:
  - 200: {invalidated: int}: Number of keys removed
*/
func (engine *CachedEngine) InvalidateHandler() http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		removed, err := engine.Invalidate(request.Context())
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		respond.OK(writer, map[string]int{"invalidated": removed})
	}
}

// # Cache Plumbing

// withCache serves the response from Redis when present, falling back to
// the wrapped engine and writing the result through.
func (engine *CachedEngine) withCache(context context.Context, key string, fetch func() (*Response, error)) (*Response, error) {

	payload, err := engine.client.Get(context, key).Bytes()
	if err == nil {
		var cached Response
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &cached, nil
		}
		// Corrupt entry; drop it and refetch
		engine.client.Del(context, key)
	} else if !errors.Is(err, redis.Nil) {
		engine.logger.Warn("search_cache_read_failed", slog.String("key", key), slog.Any("error", err))
	}

	response, err := fetch()
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(response); err == nil {
		if err := engine.client.Set(context, key, encoded, engine.ttl).Err(); err != nil {
			engine.logger.Warn("search_cache_write_failed", slog.String("key", key), slog.Any("error", err))
		}
	}

	return response, nil
}

// key joins the tool name and its parameters under the search prefix.
func (engine *CachedEngine) key(tool string, parts ...string) string {
	key := constants.RedisPrefixSearch + tool
	for _, part := range parts {
		key += ":" + part
	}
	return key
}

// yearKey renders an optional year for key construction.
func yearKey(year *int) string {
	if year == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *year)
}
