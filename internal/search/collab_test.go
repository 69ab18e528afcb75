// Copyright (c) 2026 Longbox. All rights reserved.
// Author: engineering@longbox.dev

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/longboxhq/longbox/internal/catalog"
)

func collabRow(comicID, collaboratorID, name, role string) catalog.CollaborationRow {
	return catalog.CollaborationRow{
		ComicID:          comicID,
		CollaboratorID:   collaboratorID,
		CollaboratorName: name,
		Role:             role,
	}
}

/*
TestAggregateCollaborations_Ranking verifies grouping by (collaborator,
role), counting distinct shared comics, and the rank order.
*/
func TestAggregateCollaborations_Ranking(t *testing.T) {
	rows := []catalog.CollaborationRow{
		collabRow("comic-1", "kirby", "Jack Kirby", "artist"),
		collabRow("comic-2", "kirby", "Jack Kirby", "artist"),
		collabRow("comic-3", "kirby", "Jack Kirby", "artist"),
		collabRow("comic-1", "ditko", "Steve Ditko", "artist"),
		collabRow("comic-2", "ditko", "Steve Ditko", "artist"),
		collabRow("comic-1", "kirby", "Jack Kirby", "inker"),
	}

	collaborations := aggregateCollaborations(rows, "lee", "")

	require.Len(t, collaborations, 3)
	assert.Equal(t, Collaboration{Collaborator: "Jack Kirby", Role: "artist", SharedComicCount: 3}, collaborations[0])
	assert.Equal(t, Collaboration{Collaborator: "Steve Ditko", Role: "artist", SharedComicCount: 2}, collaborations[1])
	assert.Equal(t, Collaboration{Collaborator: "Jack Kirby", Role: "inker", SharedComicCount: 1}, collaborations[2])
}

/*
TestAggregateCollaborations_SelfExclusion verifies the primary creator never
appears in their own collaborator list, even under a second role.
*/
func TestAggregateCollaborations_SelfExclusion(t *testing.T) {
	rows := []catalog.CollaborationRow{
		collabRow("comic-1", "lee", "Stan Lee", "editor"),
		collabRow("comic-1", "kirby", "Jack Kirby", "artist"),
	}

	collaborations := aggregateCollaborations(rows, "lee", "")

	require.Len(t, collaborations, 1)
	assert.Equal(t, "Jack Kirby", collaborations[0].Collaborator)
}

/*
TestAggregateCollaborations_DuplicateRows verifies duplicate (comic,
collaborator, role) rows count a shared comic once.
*/
func TestAggregateCollaborations_DuplicateRows(t *testing.T) {
	rows := []catalog.CollaborationRow{
		collabRow("comic-1", "kirby", "Jack Kirby", "artist"),
		collabRow("comic-1", "kirby", "Jack Kirby", "artist"),
	}

	collaborations := aggregateCollaborations(rows, "lee", "")

	require.Len(t, collaborations, 1)
	assert.Equal(t, 1, collaborations[0].SharedComicCount)
}

/*
TestAggregateCollaborations_RoleFilter verifies the case-insensitive role
restriction keeps full counts for the retained pairs.
*/
func TestAggregateCollaborations_RoleFilter(t *testing.T) {
	rows := []catalog.CollaborationRow{
		collabRow("comic-1", "kirby", "Jack Kirby", "Artist"),
		collabRow("comic-2", "kirby", "Jack Kirby", "Artist"),
		collabRow("comic-1", "kirby", "Jack Kirby", "inker"),
		collabRow("comic-1", "ditko", "Steve Ditko", "writer"),
	}

	collaborations := aggregateCollaborations(rows, "lee", "artist")

	require.Len(t, collaborations, 1)
	assert.Equal(t, "Jack Kirby", collaborations[0].Collaborator)
	assert.Equal(t, "Artist", collaborations[0].Role)
	assert.Equal(t, 2, collaborations[0].SharedComicCount)
}

/*
TestAggregateCollaborations_AlphabeticalTieBreak verifies equal counts order
by collaborator name, then role.
*/
func TestAggregateCollaborations_AlphabeticalTieBreak(t *testing.T) {
	rows := []catalog.CollaborationRow{
		collabRow("comic-1", "romita", "John Romita", "artist"),
		collabRow("comic-1", "buscema", "John Buscema", "artist"),
		collabRow("comic-1", "buscema", "John Buscema", "penciller"),
	}

	collaborations := aggregateCollaborations(rows, "lee", "")

	require.Len(t, collaborations, 3)
	assert.Equal(t, "John Buscema", collaborations[0].Collaborator)
	assert.Equal(t, "artist", collaborations[0].Role)
	assert.Equal(t, "John Buscema", collaborations[1].Collaborator)
	assert.Equal(t, "penciller", collaborations[1].Role)
	assert.Equal(t, "John Romita", collaborations[2].Collaborator)
}

/*
TestAggregateCollaborations_Empty verifies zero collaborators is an empty
list, not nil.
*/
func TestAggregateCollaborations_Empty(t *testing.T) {
	collaborations := aggregateCollaborations(nil, "lee", "")

	assert.NotNil(t, collaborations)
	assert.Empty(t, collaborations)
}
