// Copyright (c) 2026 Longbox. All rights reserved.
// Author: engineering@longbox.dev

// Package nameform canonicalizes free-text names for comparison.
//
// # Usage
//
// Every name stored in the catalog (titles, creators, characters, teams,
// events) carries a normalized derivative produced by this package. The search
// engine compares normalized forms only, so "Spider-Man", "SPIDER-MAN" and
// "spider-man" all collapse to the same key.
//
// All functions are pure: no I/O, no locale dependence, and Normalize is
// idempotent — Normalize(Normalize(s)) == Normalize(s) for every input.
package nameform

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// articles are leading words that carry no sorting or matching weight.
var articles = []string{"the ", "a ", "an "}

// Normalize converts a free-text name into its canonical comparison form.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD and removes combining marks (é → e).
// 2. Converts to lowercase.
// 3. Drops apostrophes, keeps hyphens as word boundaries, maps all other
//    punctuation to spaces.
// 4. Collapses whitespace and hyphen runs, trims the edges.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, s)

	result = strings.ToLower(result)

	result = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			return r
		case r == '\'' || r == '’':
			// Apostrophes join, they never separate: "D'Arc" → "darc".
			return -1
		case r == '-':
			return '-'
		default:
			return ' '
		}
	}, result)

	return collapse(result)
}

// NormalizeSorting is [Normalize] with leading articles removed, so that
// "The Avengers" sorts and matches next to "Avengers".
func NormalizeSorting(s string) string {
	result := Normalize(s)
	for _, article := range articles {
		if strings.HasPrefix(result, article) {
			return strings.TrimPrefix(result, article)
		}
	}
	return result
}

// Tokens splits a name into comparison tokens on whitespace and hyphens.
// The input is normalized first, so Tokens("Spider-Man") == ["spider", "man"].
func Tokens(s string) []string {
	return strings.FieldsFunc(Normalize(s), func(r rune) bool {
		return r == ' ' || r == '-'
	})
}

// collapse squeezes whitespace and hyphen runs down to single separators and
// trims separators from both ends.
func collapse(s string) string {
	var builder strings.Builder
	builder.Grow(len(s))

	lastSeparator := rune(0)
	for _, r := range s {
		if r == ' ' || r == '-' {
			// A hyphen wins over spaces in a mixed run (" - " → "-").
			if lastSeparator == 0 || r == '-' {
				lastSeparator = r
			}
			continue
		}
		if lastSeparator != 0 && builder.Len() > 0 {
			builder.WriteRune(lastSeparator)
		}
		lastSeparator = 0
		builder.WriteRune(r)
	}

	return builder.String()
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
