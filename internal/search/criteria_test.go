// Copyright (c) 2026 Longbox. All rights reserved.
// Author: engineering@longbox.dev

package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/longboxhq/longbox/internal/platform/apperr"
	"github.com/longboxhq/longbox/internal/search"
)

func intPtr(value int) *int { return &value }

/*
TestCriteria_Validate covers contradiction and plausibility checks.
*/
func TestCriteria_Validate(t *testing.T) {
	tests := []struct {
		name     string
		criteria search.Criteria
		wantErr  bool
		field    string
	}{
		{"single_year", search.Criteria{Year: intPtr(2004)}, false, ""},
		{"range", search.Criteria{StartYear: intPtr(2000), EndYear: intPtr(2009)}, false, ""},
		{"open_range", search.Criteria{StartYear: intPtr(2000)}, false, ""},
		{"year_with_start", search.Criteria{Year: intPtr(2004), StartYear: intPtr(2000)}, true, "year"},
		{"year_with_end", search.Criteria{Year: intPtr(2004), EndYear: intPtr(2009)}, true, "year"},
		{"inverted_range", search.Criteria{StartYear: intPtr(2010), EndYear: intPtr(2000)}, true, "start_year"},
		{"implausible_year", search.Criteria{Year: intPtr(23)}, true, "year"},
		{"role_without_creator", search.Criteria{Role: "writer"}, true, "role"},
		{"role_with_creator", search.Criteria{Creator: "Stan Lee", Role: "writer"}, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.criteria.Validate()

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)

			found := false
			for _, detail := range ae.Details {
				if detail.Field == tt.field {
					found = true
				}
			}
			assert.True(t, found, "expected detail for field %q", tt.field)
		})
	}
}

/*
TestCriteria_Terms verifies the echoed search terms.
*/
func TestCriteria_Terms(t *testing.T) {
	criteria := search.Criteria{
		Character: "Spider-Man",
		StartYear: intPtr(2000),
		EndYear:   intPtr(2009),
	}

	assert.Equal(t, []string{"character:Spider-Man", "start_year:2000", "end_year:2009"}, criteria.Terms())
}

/*
TestCriteria_IsEmpty distinguishes absent criteria from supplied ones.
*/
func TestCriteria_IsEmpty(t *testing.T) {
	assert.True(t, search.Criteria{}.IsEmpty())
	assert.True(t, search.Criteria{ExactMatch: true}.IsEmpty())
	assert.False(t, search.Criteria{Title: "Watchmen"}.IsEmpty())
	assert.False(t, search.Criteria{Year: intPtr(1986)}.IsEmpty())
}
