package shopping

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"Recipe-Book-Backend/pkg/measure"
)

var (
	recipeA = uuid.New()
	recipeB = uuid.New()
	recipeC = uuid.New()
	milk    = uuid.New()
	flour   = uuid.New()
	yeast   = uuid.New()
)

func milkUsage(recipe uuid.UUID, magnitude float64, unit measure.Unit) Usage {
	return Usage{
		RecipeID:     recipe,
		IngredientID: milk,
		Name:         "milk",
		Category:     "dairy",
		Quantity:     measure.Quantity{Magnitude: magnitude, Unit: unit},
	}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= math.Max(math.Abs(a), math.Abs(b))*1e-4
}

func TestAggregateEmpty(t *testing.T) {
	if lines := Aggregate(nil); len(lines) != 0 {
		t.Fatalf("expected no lines, got %v", lines)
	}
}

func TestAggregateMergesAcrossUnits(t *testing.T) {
	// 1 cup + 2 cups + roughly one cup of milliliters folds into a single
	// milk line of about 4 cups, displayed in the first usage's unit.
	lines := Aggregate([]Usage{
		milkUsage(recipeA, 1, measure.Cup),
		milkUsage(recipeB, 2, measure.Cup),
		milkUsage(recipeC, 236.59, measure.Milliliter),
	})
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d", len(lines))
	}
	line := lines[0]
	if line.IngredientID != milk || line.Name != "milk" || line.Category != "dairy" {
		t.Fatalf("unexpected line identity: %+v", line)
	}
	if line.Quantity.Unit != measure.Cup {
		t.Fatalf("display unit should come from first usage, got %s", line.Quantity.Unit)
	}
	if !approxEqual(line.Quantity.Magnitude, 4) {
		t.Fatalf("expected about 4 cups, got %v", line.Quantity.Magnitude)
	}
	if line.Failed() {
		t.Fatalf("unexpected failures: %v", line.Failures)
	}
}

func TestAggregateLineOrderIsFirstOccurrence(t *testing.T) {
	lines := Aggregate([]Usage{
		{RecipeID: recipeA, IngredientID: flour, Name: "flour", Quantity: measure.Quantity{Magnitude: 2, Unit: measure.Cup}},
		{RecipeID: recipeA, IngredientID: yeast, Name: "yeast", Quantity: measure.Quantity{Magnitude: 7, Unit: measure.Gram}},
		{RecipeID: recipeB, IngredientID: flour, Name: "flour", Quantity: measure.Quantity{Magnitude: 1, Unit: measure.Cup}},
	})
	if len(lines) != 2 {
		t.Fatalf("expected two lines, got %d", len(lines))
	}
	if lines[0].IngredientID != flour || lines[1].IngredientID != yeast {
		t.Fatalf("lines out of first-occurrence order: %v", lines)
	}
	if !approxEqual(lines[0].Quantity.Magnitude, 3) {
		t.Fatalf("expected 3 cups of flour, got %v", lines[0].Quantity)
	}
}

func TestAggregatePermutationKeepsTotal(t *testing.T) {
	usages := []Usage{
		milkUsage(recipeA, 1, measure.Cup),
		milkUsage(recipeB, 8, measure.FluidOunce),
		milkUsage(recipeC, 500, measure.Milliliter),
	}

	reference := Aggregate(usages)[0]
	refMl, err := measure.Convert(reference.Quantity, measure.Milliliter)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := make([]Usage, len(usages))
		copy(shuffled, usages)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		line := Aggregate(shuffled)[0]
		// The display unit tracks the first usage after permutation...
		if line.Quantity.Unit != shuffled[0].Quantity.Unit {
			t.Fatalf("display unit %s, want %s", line.Quantity.Unit, shuffled[0].Quantity.Unit)
		}
		// ...but the total is order independent.
		ml, err := measure.Convert(line.Quantity, measure.Milliliter)
		if err != nil {
			t.Fatalf("convert: %v", err)
		}
		if !approxEqual(ml.Magnitude, refMl.Magnitude) {
			t.Fatalf("permuted total %v ml, want %v ml", ml.Magnitude, refMl.Magnitude)
		}
	}
}

func TestAggregateFlagsIncompatibleUsage(t *testing.T) {
	lines := Aggregate([]Usage{
		milkUsage(recipeA, 1, measure.Cup),
		milkUsage(recipeB, 100, measure.Gram),
		milkUsage(recipeC, 1, measure.Cup),
	})
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d", len(lines))
	}
	line := lines[0]
	if !line.Failed() {
		t.Fatal("expected the line to be flagged")
	}
	if len(line.Failures) != 1 {
		t.Fatalf("expected one failure, got %v", line.Failures)
	}
	failure := line.Failures[0]
	if failure.RecipeID != recipeB {
		t.Fatalf("failure should carry the offending recipe, got %v", failure.RecipeID)
	}
	if failure.Err.From != measure.Gram || failure.Err.To != measure.Cup {
		t.Fatalf("unexpected failure units: %v", failure.Err)
	}
	// The merged subset still sums.
	if !approxEqual(line.Quantity.Magnitude, 2) || line.Quantity.Unit != measure.Cup {
		t.Fatalf("expected 2 cups from the merged subset, got %v", line.Quantity)
	}
}
