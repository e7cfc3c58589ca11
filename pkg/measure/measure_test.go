package measure

import (
	"errors"
	"math"
	"testing"
)

func approxEqual(a, b float64) bool {
	if a == b {
		return true
	}
	scale := math.Max(math.Abs(a), math.Abs(b))
	return math.Abs(a-b) <= scale*1e-6
}

func TestRegistry(t *testing.T) {
	all := Units()
	if len(all) != 13 {
		t.Fatalf("expected 13 units, got %d", len(all))
	}

	seen := map[Unit]bool{}
	for _, u := range all {
		if seen[u] {
			t.Fatalf("unit %s listed twice", u)
		}
		seen[u] = true

		// Dimension and Label panic on an unregistered unit.
		d := u.Dimension()
		if d != Volume && d != Mass {
			t.Fatalf("unit %s has unknown dimension %v", u, d)
		}
		if u.Label() == "" {
			t.Fatalf("unit %s has no label", u)
		}
		if parsed, ok := ParseUnit(string(u)); !ok || parsed != u {
			t.Fatalf("unit %s does not round-trip through ParseUnit", u)
		}
	}
}

func TestParseUnitRejectsUnknown(t *testing.T) {
	for _, s := range []string{"", "cups", "CUP", "handful", "gallon"} {
		if _, ok := ParseUnit(s); ok {
			t.Fatalf("ParseUnit accepted %q", s)
		}
	}
}

func TestDimensions(t *testing.T) {
	volume := []Unit{Cup, FluidOunce, Tablespoon, Teaspoon, Quart, Liter, Kiloliter, Milliliter}
	for _, u := range volume {
		if u.Dimension() != Volume {
			t.Fatalf("%s should be volume", u)
		}
	}
	mass := []Unit{Gram, Kilogram, Milligram, Ounce, Pound}
	for _, u := range mass {
		if u.Dimension() != Mass {
			t.Fatalf("%s should be mass", u)
		}
	}
}

func TestFactorKnownValues(t *testing.T) {
	cases := []struct {
		from, to Unit
		want     float64
	}{
		{Cup, FluidOunce, 8},
		{Cup, Tablespoon, 16},
		{Cup, Teaspoon, 48},
		{FluidOunce, Tablespoon, 2},
		{Tablespoon, Teaspoon, 3},
		{Quart, Cup, 4},
		{Liter, Milliliter, 1_000},
		{Kiloliter, Milliliter, 1_000_000},
		{Kiloliter, Liter, 1_000},
		{Pound, Ounce, 16},
		{Kilogram, Gram, 1_000},
		{Gram, Milligram, 1_000},
		{Kilogram, Milligram, 1_000_000},
		{Ounce, Gram, 28.34952},
		{Pound, Gram, 453.5924},
		{Liter, Cup, 4.2267528},
	}
	for _, c := range cases {
		got, err := Factor(c.from, c.to)
		if err != nil {
			t.Fatalf("Factor(%s, %s): %v", c.from, c.to, err)
		}
		if !approxEqual(got, c.want) {
			t.Fatalf("Factor(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
		inverse, err := Factor(c.to, c.from)
		if err != nil {
			t.Fatalf("Factor(%s, %s): %v", c.to, c.from, err)
		}
		if !approxEqual(inverse, 1/c.want) {
			t.Fatalf("Factor(%s, %s) = %v, want %v", c.to, c.from, inverse, 1/c.want)
		}
	}
}

func TestConvertRoundTrip(t *testing.T) {
	all := Units()
	for _, u := range all {
		for _, v := range all {
			if u.Dimension() != v.Dimension() {
				continue
			}
			q := Quantity{Magnitude: 3.25, Unit: u}
			there, err := Convert(q, v)
			if err != nil {
				t.Fatalf("Convert(%s, %s): %v", u, v, err)
			}
			back, err := Convert(there, u)
			if err != nil {
				t.Fatalf("Convert(%s, %s): %v", v, u, err)
			}
			if !approxEqual(back.Magnitude, q.Magnitude) {
				t.Fatalf("%s -> %s -> %s: got %v, want %v", u, v, u, back.Magnitude, q.Magnitude)
			}
		}
	}
}

func TestConvertAcrossDimensionsFails(t *testing.T) {
	for _, u := range Units() {
		for _, v := range Units() {
			if u.Dimension() == v.Dimension() {
				continue
			}
			_, err := Convert(Quantity{Magnitude: 1, Unit: u}, v)
			if err == nil {
				t.Fatalf("Convert(%s, %s) should fail", u, v)
			}
			var convErr ConversionError
			if !errors.As(err, &convErr) {
				t.Fatalf("Convert(%s, %s): expected ConversionError, got %T", u, v, err)
			}
			if convErr.From != u || convErr.To != v {
				t.Fatalf("ConversionError units = (%s, %s), want (%s, %s)", convErr.From, convErr.To, u, v)
			}
		}
	}
}

func TestConvertZeroMagnitude(t *testing.T) {
	q, err := Convert(Quantity{Magnitude: 0, Unit: Cup}, Milliliter)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if q.Magnitude != 0 || q.Unit != Milliliter {
		t.Fatalf("got %v, want 0 ml", q)
	}
}

func TestAdd(t *testing.T) {
	sum, err := Add(
		Quantity{Magnitude: 1, Unit: Cup},
		Quantity{Magnitude: 8, Unit: FluidOunce},
		Cup,
	)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !approxEqual(sum.Magnitude, 2) || sum.Unit != Cup {
		t.Fatalf("got %v, want 2 cups", sum)
	}

	_, err = Add(
		Quantity{Magnitude: 1, Unit: Cup},
		Quantity{Magnitude: 100, Unit: Gram},
		Cup,
	)
	var convErr ConversionError
	if !errors.As(err, &convErr) {
		t.Fatalf("expected ConversionError, got %v", err)
	}
}
