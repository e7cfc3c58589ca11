package importer

import (
	"Recipe-Book-Backend/domain"
	"errors"
	"strings"
	"testing"
)

func TestParseArchive(t *testing.T) {
	archive, err := ParseArchive(strings.NewReader(`{
		"recipes": [
			{
				"name": "Pancakes",
				"category": "Breakfast",
				"duration": "short",
				"ingredients": [
					{"ingredient": "flour", "category": "Baking", "quantity": 2, "quantity_units": "cup"},
					{"ingredient": "milk", "quantity": 1.5, "quantity_units": "cup"}
				]
			}
		]
	}`))
	if err != nil {
		t.Fatalf("ParseArchive: %v", err)
	}

	if len(archive.Recipes) != 1 {
		t.Fatalf("got %d recipes, want 1", len(archive.Recipes))
	}
	recipe := archive.Recipes[0]
	if recipe.Name != "Pancakes" || recipe.Category != "Breakfast" {
		t.Fatalf("unexpected recipe %+v", recipe)
	}
	if len(recipe.Ingredients) != 2 {
		t.Fatalf("got %d ingredients, want 2", len(recipe.Ingredients))
	}
}

func TestParseArchiveRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"not json", `not json`},
		{"unknown field", `{"recipes": [], "extra": true}`},
		{"missing recipe name", `{"recipes": [{"category": "Dinner", "ingredients": []}]}`},
		{"missing category", `{"recipes": [{"name": "Stew", "ingredients": []}]}`},
		{"bad duration", `{"recipes": [{"name": "Stew", "category": "Dinner", "duration": "forever", "ingredients": []}]}`},
		{"unnamed ingredient", `{"recipes": [{"name": "Stew", "category": "Dinner", "ingredients": [{"quantity": 1, "quantity_units": "cup"}]}]}`},
		{"negative quantity", `{"recipes": [{"name": "Stew", "category": "Dinner", "ingredients": [{"ingredient": "beef", "quantity": -1, "quantity_units": "pound"}]}]}`},
		{"unknown units", `{"recipes": [{"name": "Stew", "category": "Dinner", "ingredients": [{"ingredient": "beef", "quantity": 1, "quantity_units": "slug"}]}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseArchive(strings.NewReader(tc.body))
			if !errors.Is(err, domain.ErrInvalidArchive) {
				t.Fatalf("err = %v, want ErrInvalidArchive", err)
			}
		})
	}
}
