package nutrition

import (
	"math"
	"testing"

	"github.com/google/uuid"

	"Recipe-Book-Backend/pkg/measure"
)

var (
	recipeID = uuid.New()
	flour    = uuid.New()
	sugar    = uuid.New()
	water    = uuid.New()
)

func usage(ingredient uuid.UUID, magnitude float64, unit measure.Unit) Usage {
	return Usage{
		RecipeID:     recipeID,
		IngredientID: ingredient,
		Quantity:     measure.Quantity{Magnitude: magnitude, Unit: unit},
	}
}

func density(ingredient uuid.UUID, calories, magnitude float64, unit measure.Unit) Density {
	return Density{
		IngredientID: ingredient,
		Reference:    measure.Quantity{Magnitude: magnitude, Unit: unit},
		Calories:     calories,
	}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= math.Max(math.Abs(a), math.Abs(b))*1e-6
}

func TestCaloriesForRecipeEmpty(t *testing.T) {
	result := CaloriesForRecipe(nil, nil)
	if result.Total != 0 {
		t.Fatalf("expected total 0, got %v", result.Total)
	}
	if len(result.Unscored) != 0 || len(result.Failed) != 0 {
		t.Fatalf("expected empty unscored/failed, got %v / %v", result.Unscored, result.Failed)
	}
}

func TestCaloriesForRecipeExactUnit(t *testing.T) {
	// 2 cups of flour at 200 calories per cup.
	result := CaloriesForRecipe(
		[]Usage{usage(flour, 2, measure.Cup)},
		map[uuid.UUID][]Density{
			flour: {density(flour, 200, 1, measure.Cup)},
		},
	)
	if !approxEqual(result.Total, 400) {
		t.Fatalf("expected 400 calories, got %v", result.Total)
	}
	if len(result.Unscored) != 0 || len(result.Failed) != 0 {
		t.Fatalf("unexpected unscored/failed: %v / %v", result.Unscored, result.Failed)
	}
}

func TestCaloriesForRecipeConvertedUnit(t *testing.T) {
	// 3 teaspoons of sugar against a per-tablespoon record; 3 tsp = 1 tbsp.
	result := CaloriesForRecipe(
		[]Usage{usage(sugar, 3, measure.Teaspoon)},
		map[uuid.UUID][]Density{
			sugar: {density(sugar, 45, 1, measure.Tablespoon)},
		},
	)
	if !approxEqual(result.Total, 45) {
		t.Fatalf("expected 45 calories, got %v", result.Total)
	}
}

func TestCaloriesForRecipeExactMatchPreferred(t *testing.T) {
	// With both a convertible and an exact-unit record, the exact one wins
	// regardless of order.
	result := CaloriesForRecipe(
		[]Usage{usage(flour, 1, measure.Cup)},
		map[uuid.UUID][]Density{
			flour: {
				density(flour, 999, 48, measure.Teaspoon),
				density(flour, 200, 1, measure.Cup),
			},
		},
	)
	if !approxEqual(result.Total, 200) {
		t.Fatalf("expected 200 calories, got %v", result.Total)
	}
}

func TestCaloriesForRecipeUnscored(t *testing.T) {
	result := CaloriesForRecipe(
		[]Usage{
			usage(flour, 2, measure.Cup),
			usage(water, 1, measure.Liter),
		},
		map[uuid.UUID][]Density{
			flour: {density(flour, 200, 1, measure.Cup)},
		},
	)
	if !approxEqual(result.Total, 400) {
		t.Fatalf("expected 400 calories, got %v", result.Total)
	}
	if len(result.Unscored) != 1 || result.Unscored[0] != water {
		t.Fatalf("expected water unscored, got %v", result.Unscored)
	}
	if len(result.Failed) != 0 {
		t.Fatalf("unscored ingredient must not be failed: %v", result.Failed)
	}
}

func TestCaloriesForRecipeIncompatibleUnits(t *testing.T) {
	// 100 grams of sugar with only a per-cup record: sugar is excluded and
	// flagged, the rest of the recipe still scores.
	result := CaloriesForRecipe(
		[]Usage{
			usage(flour, 2, measure.Cup),
			usage(sugar, 100, measure.Gram),
		},
		map[uuid.UUID][]Density{
			flour: {density(flour, 200, 1, measure.Cup)},
			sugar: {density(sugar, 50, 1, measure.Cup)},
		},
	)
	if !approxEqual(result.Total, 400) {
		t.Fatalf("expected 400 calories, got %v", result.Total)
	}
	if len(result.Failed) != 1 {
		t.Fatalf("expected one failed ingredient, got %v", result.Failed)
	}
	failed := result.Failed[0]
	if failed.IngredientID != sugar {
		t.Fatalf("expected sugar to fail, got %v", failed.IngredientID)
	}
	if failed.Failure.From != measure.Gram || failed.Failure.To != measure.Cup {
		t.Fatalf("unexpected failure units: %v", failed.Failure)
	}
	if len(result.Unscored) != 0 {
		t.Fatalf("failed ingredient must not be unscored: %v", result.Unscored)
	}
}

func TestScoreUsageDuplicateRecordsFirstWins(t *testing.T) {
	records := []Density{
		density(flour, 100, 1, measure.Tablespoon),
		density(flour, 500, 1, measure.Tablespoon),
	}
	c := ScoreUsage(usage(flour, 2, measure.Tablespoon), records)
	if c.Unscored || c.Failure != nil {
		t.Fatalf("expected a scored contribution, got %+v", c)
	}
	if !approxEqual(c.Calories, 200) {
		t.Fatalf("expected first record to win (200), got %v", c.Calories)
	}
}

func TestScoreUsageZeroQuantity(t *testing.T) {
	c := ScoreUsage(usage(flour, 0, measure.Cup), []Density{density(flour, 200, 1, measure.Cup)})
	if c.Calories != 0 || c.Unscored || c.Failure != nil {
		t.Fatalf("zero quantity should score zero calories, got %+v", c)
	}
}
