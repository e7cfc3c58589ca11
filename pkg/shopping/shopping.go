// Package shopping merges ingredient usages from many recipe instances into
// one shopping list line per ingredient. Like the calorie derivation, it
// follows a partial-success model: a usage that cannot be merged flags its
// line instead of aborting the list, so the presentation layer can warn
// rather than silently under-report.
package shopping

import (
	"github.com/google/uuid"

	"Recipe-Book-Backend/pkg/measure"
)

// Usage is one ingredient requirement of one scheduled recipe instance.
// Name and Category ride along from the catalog so list lines can be
// rendered and grouped without further lookups.
type Usage struct {
	RecipeID     uuid.UUID
	IngredientID uuid.UUID
	Name         string
	Category     string
	Quantity     measure.Quantity
}

// Failure records a usage that could not be folded into its line's total.
type Failure struct {
	RecipeID uuid.UUID
	Err      measure.ConversionError
}

// Line is one aggregated shopping list entry. Quantity covers only the
// successfully merged usages; Failures carries whatever could not be merged.
type Line struct {
	IngredientID uuid.UUID
	Name         string
	Category     string
	Quantity     measure.Quantity
	Failures     []Failure
}

// Failed reports whether any usage of this ingredient could not be merged,
// i.e. the aggregated quantity under-states the real requirement.
func (l Line) Failed() bool {
	return len(l.Failures) > 0
}

// Aggregate groups usages by ingredient and sums each group. The display
// unit of a line is the unit of the ingredient's first usage in the input,
// and lines appear in first-occurrence order; caller-supplied order is
// authoritative for both. A usage whose unit is incommensurable with the
// display unit is recorded as a Failure on the line and excluded from the
// sum.
func Aggregate(usages []Usage) []Line {
	index := map[uuid.UUID]int{}
	var lines []Line

	for _, u := range usages {
		i, ok := index[u.IngredientID]
		if !ok {
			index[u.IngredientID] = len(lines)
			lines = append(lines, Line{
				IngredientID: u.IngredientID,
				Name:         u.Name,
				Category:     u.Category,
				Quantity:     u.Quantity,
			})
			continue
		}

		sum, err := measure.Add(lines[i].Quantity, u.Quantity, lines[i].Quantity.Unit)
		if err != nil {
			convErr, _ := err.(measure.ConversionError)
			lines[i].Failures = append(lines[i].Failures, Failure{
				RecipeID: u.RecipeID,
				Err:      convErr,
			})
			continue
		}
		lines[i].Quantity = sum
	}
	return lines
}
