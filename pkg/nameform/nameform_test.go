// Copyright (c) 2026 Longbox. All rights reserved.
// Author: engineering@longbox.dev

package nameform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/longboxhq/longbox/pkg/nameform"
)

/*
TestNormalize exercises the canonicalization pipeline end to end.
*/
func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase", "SPIDER-MAN", "spider-man"},
		{"hyphen_preserved", "Spider-Man", "spider-man"},
		{"whitespace_collapsed", "  Amazing   Spider-Man  ", "amazing spider-man"},
		{"punctuation_to_space", "Amazing Spider-Man #1", "amazing spider-man 1"},
		{"apostrophe_joins", "D'Arc", "darc"},
		{"accents_folded", "José García-López", "jose garcia-lopez"},
		{"hyphen_run_collapsed", "X--Men", "x-men"},
		{"mixed_separator_run", "Batman - Year One", "batman-year one"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nameform.Normalize(tt.input))
		})
	}
}

/*
TestNormalize_Idempotent verifies normalize(normalize(s)) == normalize(s).
*/
func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Spider-Man",
		"The Uncanny X-Men #142",
		"José García-López",
		"  weird   --  spacing ",
		"already normal",
		"",
	}

	for _, input := range inputs {
		once := nameform.Normalize(input)
		assert.Equal(t, once, nameform.Normalize(once), "input %q", input)
	}
}

func TestNormalizeSorting(t *testing.T) {
	assert.Equal(t, "avengers", nameform.NormalizeSorting("The Avengers"))
	assert.Equal(t, "amazing spider-man", nameform.NormalizeSorting("Amazing Spider-Man"))
	// Only a leading article is stripped, never an interior one.
	assert.Equal(t, "war of the worlds", nameform.NormalizeSorting("War of the Worlds"))
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"spider", "man"}, nameform.Tokens("Spider-Man"))
	assert.Equal(t, []string{"amazing", "spider", "man"}, nameform.Tokens("Amazing Spider-Man"))
	assert.Empty(t, nameform.Tokens("  "))
}
