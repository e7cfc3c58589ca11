// Package nutrition estimates recipe calories from ingredient usages and
// calorie density records. Recipe data is user entered and frequently
// incomplete, so derivation is partial by design: an ingredient with no
// density record or an incompatible unit pairing is reported alongside the
// total instead of aborting the whole estimate.
package nutrition

import (
	"github.com/google/uuid"

	"Recipe-Book-Backend/pkg/measure"
)

// Usage is one ingredient requirement of a recipe.
type Usage struct {
	RecipeID     uuid.UUID
	IngredientID uuid.UUID
	Quantity     measure.Quantity
}

// Density states how many calories a reference quantity of an ingredient
// carries, e.g. 200 calories per 1 cup.
type Density struct {
	IngredientID uuid.UUID
	Reference    measure.Quantity
	Calories     float64
}

// Contribution is the calorie estimate for a single usage. Exactly one of
// the three outcomes holds: scored (Failure nil, Unscored false), unscored
// (no density record), or failed (incompatible units).
type Contribution struct {
	Calories float64
	Unscored bool
	Failure  *measure.ConversionError
}

// ScoreUsage estimates the calories of one usage against the ingredient's
// density records, in caller-supplied order. A record in the usage's exact
// unit is preferred; otherwise the first commensurable record is scaled via
// conversion. With records present but none commensurable, the failure
// carries the usage unit and the first record's unit.
func ScoreUsage(u Usage, records []Density) Contribution {
	if len(records) == 0 {
		return Contribution{Unscored: true}
	}
	for _, r := range records {
		if r.Reference.Unit == u.Quantity.Unit {
			return Contribution{Calories: r.Calories * u.Quantity.Magnitude / r.Reference.Magnitude}
		}
	}
	for _, r := range records {
		converted, err := measure.Convert(u.Quantity, r.Reference.Unit)
		if err != nil {
			continue
		}
		return Contribution{Calories: r.Calories * converted.Magnitude / r.Reference.Magnitude}
	}
	failure := measure.ConversionError{From: u.Quantity.Unit, To: records[0].Reference.Unit}
	return Contribution{Failure: &failure}
}

// FailedIngredient records an ingredient excluded from a total because its
// usage unit and density unit are incommensurable.
type FailedIngredient struct {
	IngredientID uuid.UUID
	Failure      measure.ConversionError
}

// RecipeCalories is the partial result of a derivation: the total over all
// scorable usages plus the ingredients that could not contribute, in first
// occurrence order.
type RecipeCalories struct {
	Total    float64
	Unscored []uuid.UUID
	Failed   []FailedIngredient
}

// CaloriesForRecipe sums calorie contributions over the usages of one
// recipe. Ingredients without density data land in Unscored, incompatible
// unit pairings in Failed; neither aborts the derivation.
func CaloriesForRecipe(usages []Usage, densities map[uuid.UUID][]Density) RecipeCalories {
	result := RecipeCalories{}
	unscoredSeen := map[uuid.UUID]bool{}
	failedSeen := map[uuid.UUID]bool{}

	for _, u := range usages {
		c := ScoreUsage(u, densities[u.IngredientID])
		switch {
		case c.Unscored:
			if !unscoredSeen[u.IngredientID] {
				unscoredSeen[u.IngredientID] = true
				result.Unscored = append(result.Unscored, u.IngredientID)
			}
		case c.Failure != nil:
			if !failedSeen[u.IngredientID] {
				failedSeen[u.IngredientID] = true
				result.Failed = append(result.Failed, FailedIngredient{
					IngredientID: u.IngredientID,
					Failure:      *c.Failure,
				})
			}
		default:
			result.Total += c.Calories
		}
	}
	return result
}
