package domain

import "strings"

type MenuItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Available   bool     `json:"available"`
	Allergens   []string `json:"allergens"`

	// Dietary flags are tri-state: nil means the backend does not encode the
	// flag, which is not the same as false.
	Vegetarian *bool `json:"vegetarian,omitempty"`
	Vegan      *bool `json:"vegan,omitempty"`
	GlutenFree *bool `json:"glutenFree,omitempty"`
}

type MenuFilters struct {
	Category         string
	Vegetarian       bool
	Vegan            bool
	GlutenFree       bool
	ExcludeAllergens []string
}

// FilterMenu applies listing rules over already-fetched items, independent of
// which backend fetched them. Unavailable items are always excluded; dietary
// filters require the flag to be present and true; allergen exclusion is
// case-insensitive.
func FilterMenu(items []MenuItem, f MenuFilters) []MenuItem {
	out := make([]MenuItem, 0, len(items))
	for _, item := range items {
		if !item.Available {
			continue
		}
		if f.Category != "" && !strings.EqualFold(item.Category, f.Category) {
			continue
		}
		if f.Vegetarian && !flagSet(item.Vegetarian) {
			continue
		}
		if f.Vegan && !flagSet(item.Vegan) {
			continue
		}
		if f.GlutenFree && !flagSet(item.GlutenFree) {
			continue
		}
		if containsAllergen(item.Allergens, f.ExcludeAllergens) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func flagSet(v *bool) bool {
	return v != nil && *v
}

func containsAllergen(allergens, excluded []string) bool {
	for _, a := range allergens {
		for _, e := range excluded {
			if strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(e)) {
				return true
			}
		}
	}
	return false
}
