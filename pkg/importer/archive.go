// Package importer loads a recipe-book archive, a JSON document holding
// recipe categories, recipes, and their ingredient requirements, into the
// catalog. Ingredients and categories are matched by name so an archive can
// be imported into a book that already has content.
package importer

import (
	"Recipe-Book-Backend/domain"
	"Recipe-Book-Backend/entities"
	"Recipe-Book-Backend/pkg/measure"
	"encoding/json"
	"fmt"
	"io"
)

type (
	ArchiveUsage struct {
		Ingredient    string  `json:"ingredient"`
		Category      string  `json:"category,omitempty"`
		Quantity      float64 `json:"quantity"`
		QuantityUnits string  `json:"quantity_units"`
	}

	ArchiveRecipe struct {
		Name        string         `json:"name"`
		Description string         `json:"description,omitempty"`
		Duration    string         `json:"duration,omitempty"`
		Category    string         `json:"category"`
		Ingredients []ArchiveUsage `json:"ingredients"`
	}

	Archive struct {
		Recipes []ArchiveRecipe `json:"recipes"`
	}
)

// ParseArchive decodes and validates an archive. Any structural problem,
// an empty name, a negative quantity, an unrecognized duration or unit,
// fails the whole import before anything touches the database.
func ParseArchive(r io.Reader) (Archive, error) {
	var archive Archive
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&archive); err != nil {
		return Archive{}, fmt.Errorf("%w: %v", domain.ErrInvalidArchive, err)
	}

	for i, recipe := range archive.Recipes {
		if recipe.Name == "" {
			return Archive{}, fmt.Errorf("%w: recipe %d has no name", domain.ErrInvalidArchive, i)
		}
		if recipe.Category == "" {
			return Archive{}, fmt.Errorf("%w: recipe %q has no category", domain.ErrInvalidArchive, recipe.Name)
		}
		switch recipe.Duration {
		case "", entities.DurationShort, entities.DurationMedium, entities.DurationLong, entities.DurationReallyLong:
		default:
			return Archive{}, fmt.Errorf("%w: recipe %q has unknown duration %q", domain.ErrInvalidArchive, recipe.Name, recipe.Duration)
		}

		for _, usage := range recipe.Ingredients {
			if usage.Ingredient == "" {
				return Archive{}, fmt.Errorf("%w: recipe %q has an unnamed ingredient", domain.ErrInvalidArchive, recipe.Name)
			}
			if usage.Quantity < 0 {
				return Archive{}, fmt.Errorf("%w: recipe %q ingredient %q has negative quantity", domain.ErrInvalidArchive, recipe.Name, usage.Ingredient)
			}
			if _, ok := measure.ParseUnit(usage.QuantityUnits); !ok {
				return Archive{}, fmt.Errorf("%w: recipe %q ingredient %q has unknown units %q", domain.ErrInvalidArchive, recipe.Name, usage.Ingredient, usage.QuantityUnits)
			}
		}
	}
	return archive, nil
}
