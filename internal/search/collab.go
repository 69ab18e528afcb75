// Copyright (c) 2026 Longbox. All rights reserved.
// Author: engineering@longbox.dev

package search

import (
	"sort"
	"strings"

	"github.com/longboxhq/longbox/internal/catalog"
)

// # Collaboration Aggregator

/*
aggregateCollaborations groups raw co-appearance rows into ranked
collaborator statistics.

Description: Rows are deduplicated on (comic, collaborator, role), grouped
by (collaborator, role), and counted by distinct shared comics. A creator
never collaborates with themselves, even when credited under two roles on
the same comic. When roleFilter is set, only groups whose role matches
case-insensitively are retained; their counts still reflect every comic
shared with that collaborator-role pair. An empty result is a valid
outcome, not an error.

Parameters:
  - rows: []catalog.CollaborationRow (Raw rows from the store)
  - selfID: string (The primary creator, excluded from output)
  - roleFilter: string (Optional case-insensitive role restriction)

Returns:
  - []Collaboration: Ranked by count desc, then collaborator, then role
*/
func aggregateCollaborations(rows []catalog.CollaborationRow, selfID, roleFilter string) []Collaboration {

	type groupKey struct {
		collaboratorID string
		role           string
	}

	names := make(map[groupKey]string)
	comics := make(map[groupKey]map[string]bool)

	for _, row := range rows {
		if row.CollaboratorID == selfID {
			continue
		}

		key := groupKey{collaboratorID: row.CollaboratorID, role: row.Role}
		names[key] = row.CollaboratorName

		if comics[key] == nil {
			comics[key] = make(map[string]bool)
		}
		comics[key][row.ComicID] = true
	}

	collaborations := make([]Collaboration, 0, len(comics))
	for key, shared := range comics {
		if roleFilter != "" && !strings.EqualFold(key.role, roleFilter) {
			continue
		}
		collaborations = append(collaborations, Collaboration{
			Collaborator:     names[key],
			Role:             key.role,
			SharedComicCount: len(shared),
		})
	}

	sort.Slice(collaborations, func(i, j int) bool {
		if collaborations[i].SharedComicCount != collaborations[j].SharedComicCount {
			return collaborations[i].SharedComicCount > collaborations[j].SharedComicCount
		}
		if collaborations[i].Collaborator != collaborations[j].Collaborator {
			return collaborations[i].Collaborator < collaborations[j].Collaborator
		}
		return collaborations[i].Role < collaborations[j].Role
	})

	return collaborations
}
