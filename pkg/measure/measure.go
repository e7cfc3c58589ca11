// Package measure defines the closed set of measurement units used on
// ingredient usage and calorie density rows, and exact conversion between
// units of the same dimension. Everything here is pure and safe for
// concurrent use; the factor tables are read-only after init.
package measure

import (
	"fmt"
)

// Dimension is a commensurability class of units. Conversion and addition
// are only defined between units of the same dimension.
type Dimension int

const (
	Volume Dimension = iota
	Mass
)

func (d Dimension) String() string {
	switch d {
	case Volume:
		return "volume"
	case Mass:
		return "mass"
	default:
		return "unknown"
	}
}

// Unit is one of the recognized measurement units. The string values are
// exactly what the storage layer persists on usage and density rows; any
// other string is rejected at that boundary via ParseUnit.
type Unit string

const (
	Cup        Unit = "cup"
	FluidOunce Unit = "fluid_ounce"
	Tablespoon Unit = "tablespoon"
	Teaspoon   Unit = "teaspoon"
	Quart      Unit = "quart"
	Liter      Unit = "liter"
	Kiloliter  Unit = "kiloliter"
	Milliliter Unit = "milliliter"

	Gram      Unit = "gram"
	Kilogram  Unit = "kilogram"
	Milligram Unit = "milligram"
	Ounce     Unit = "ounce"
	Pound     Unit = "pound"
)

// unitInfo registers a unit's dimension, its factor to the dimension's base
// unit (milliliter for volume, gram for mass), and its display label. Every
// unit must have an entry here; the registry test fails otherwise.
type unitInfo struct {
	dimension Dimension
	toBase    float64
	label     string
}

var units = map[Unit]unitInfo{
	Cup:        {Volume, 236.588236, "cups"},
	FluidOunce: {Volume, 29.573535296, "fl. oz."},
	Tablespoon: {Volume, 14.7867648, "tbsp."},
	Teaspoon:   {Volume, 4.92892159, "tsp."},
	Quart:      {Volume, 946.353, "qt."},
	Liter:      {Volume, 1_000, "l"},
	Kiloliter:  {Volume, 1_000_000, "kl"},
	Milliliter: {Volume, 1, "ml"},

	Gram:      {Mass, 1, "g"},
	Kilogram:  {Mass, 1_000, "kg"},
	Milligram: {Mass, 0.001, "mg"},
	Ounce:     {Mass, 28.34952, "oz."},
	Pound:     {Mass, 453.5924, "lbs."},
}

// Units returns every recognized unit, volume units first, in a stable order.
func Units() []Unit {
	return []Unit{
		Cup, FluidOunce, Tablespoon, Teaspoon, Quart, Liter, Kiloliter, Milliliter,
		Gram, Kilogram, Milligram, Ounce, Pound,
	}
}

// ParseUnit maps a persisted unit string to its Unit. The second return is
// false for any string outside the closed set.
func ParseUnit(s string) (Unit, bool) {
	u := Unit(s)
	_, ok := units[u]
	return u, ok
}

func (u Unit) info() unitInfo {
	info, ok := units[u]
	if !ok {
		panic(fmt.Sprintf("unregistered unit %q", string(u)))
	}
	return info
}

// Dimension reports the commensurability class of the unit.
func (u Unit) Dimension() Dimension {
	return u.info().dimension
}

// Label is the display abbreviation for the unit ("cups", "fl. oz.", "g").
func (u Unit) Label() string {
	return u.info().label
}

func (u Unit) String() string {
	return string(u)
}

// Quantity is a magnitude paired with its unit. Magnitude zero is legal;
// negative magnitudes are a contract violation enforced by the storage layer.
type Quantity struct {
	Magnitude float64
	Unit      Unit
}

func (q Quantity) String() string {
	return fmt.Sprintf("%g %s", q.Magnitude, q.Unit.Label())
}

// ConversionError reports an attempt to combine two units of different
// dimensions. It is always local to one ingredient or line and recoverable.
type ConversionError struct {
	From Unit
	To   Unit
}

func (e ConversionError) Error() string {
	return fmt.Sprintf(
		"cannot convert %s (%s) to %s (%s)",
		e.From, e.From.Dimension(), e.To, e.To.Dimension(),
	)
}

// Factor returns the multiplier that converts a magnitude in from-units to
// to-units. Both units must share a dimension.
func Factor(from, to Unit) (float64, error) {
	a, b := from.info(), to.info()
	if a.dimension != b.dimension {
		return 0, ConversionError{From: from, To: to}
	}
	return a.toBase / b.toBase, nil
}

// Convert re-expresses q in the target unit. It fails with a ConversionError
// iff the dimensions differ; no rounding is applied.
func Convert(q Quantity, to Unit) (Quantity, error) {
	factor, err := Factor(q.Unit, to)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Magnitude: q.Magnitude * factor, Unit: to}, nil
}

// Add converts both operands to the result unit and sums their magnitudes.
func Add(a, b Quantity, result Unit) (Quantity, error) {
	ca, err := Convert(a, result)
	if err != nil {
		return Quantity{}, err
	}
	cb, err := Convert(b, result)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Magnitude: ca.Magnitude + cb.Magnitude, Unit: result}, nil
}
