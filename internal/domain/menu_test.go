package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(v bool) *bool { return &v }

func TestFilterMenu_ExcludesUnavailable(t *testing.T) {
	items := []MenuItem{
		{ID: "m1", Name: "Soup", Available: true},
		{ID: "m2", Name: "Steak", Available: false},
	}

	out := FilterMenu(items, MenuFilters{})
	assert.Len(t, out, 1)
	assert.Equal(t, "m1", out[0].ID)
}

func TestFilterMenu_CategoryCaseInsensitive(t *testing.T) {
	items := []MenuItem{
		{ID: "m1", Category: "Breakfast", Available: true},
		{ID: "m2", Category: "dinner", Available: true},
	}

	out := FilterMenu(items, MenuFilters{Category: "breakfast"})
	assert.Len(t, out, 1)
	assert.Equal(t, "m1", out[0].ID)
}

func TestFilterMenu_DietaryFlagMustBePresentAndTrue(t *testing.T) {
	items := []MenuItem{
		{ID: "m1", Available: true, Vegetarian: boolPtr(true)},
		{ID: "m2", Available: true, Vegetarian: boolPtr(false)},
		{ID: "m3", Available: true}, // backend does not encode the flag
	}

	out := FilterMenu(items, MenuFilters{Vegetarian: true})
	assert.Len(t, out, 1)
	assert.Equal(t, "m1", out[0].ID)
}

func TestFilterMenu_AllergenExclusion(t *testing.T) {
	items := []MenuItem{
		{ID: "m1", Available: true, Allergens: []string{"Nuts", "dairy"}},
		{ID: "m2", Available: true, Allergens: []string{"gluten"}},
		{ID: "m3", Available: true},
	}

	out := FilterMenu(items, MenuFilters{ExcludeAllergens: []string{"NUTS"}})
	assert.Len(t, out, 2)
	assert.Equal(t, "m2", out[0].ID)
	assert.Equal(t, "m3", out[1].ID)
}
