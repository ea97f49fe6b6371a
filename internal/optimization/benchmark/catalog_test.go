package benchmark

import (
	"math"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name  string
		query string
		found bool
	}{
		{name: "exact", query: "sphere", found: true},
		{name: "mixed case", query: "Rastrigin", found: true},
		{name: "upper case", query: "SCHWEFEL", found: true},
		{name: "surrounding whitespace", query: "  ackley ", found: true},
		{name: "unknown", query: "griewank", found: false},
		{name: "empty", query: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, ok := Lookup(tt.query)
			if ok != tt.found {
				t.Fatalf("Lookup(%q) found = %v, want %v", tt.query, ok, tt.found)
			}
			if ok && fn.Eval == nil {
				t.Fatalf("Lookup(%q) returned a function without Eval", tt.query)
			}
		})
	}
}

func TestCatalogContents(t *testing.T) {
	fns := List()
	if len(fns) != 5 {
		t.Fatalf("catalog has %d functions, want 5", len(fns))
	}

	want := []string{"sphere", "rastrigin", "schwefel", "rosenbrock", "ackley"}
	for i, name := range want {
		if fns[i].Name != name {
			t.Errorf("catalog[%d] = %q, want %q", i, fns[i].Name, name)
		}
	}

	for _, fn := range fns {
		if fn.Lo >= fn.Hi {
			t.Errorf("%s: bounds [%g, %g] are not a valid interval", fn.Name, fn.Lo, fn.Hi)
		}
		if fn.OptimumX < fn.Lo || fn.OptimumX > fn.Hi || fn.OptimumY < fn.Lo || fn.OptimumY > fn.Hi {
			t.Errorf("%s: optimum (%g, %g) outside bounds", fn.Name, fn.OptimumX, fn.OptimumY)
		}
	}
}

func TestValuesAtKnownMinima(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		tol  float64
	}{
		{name: "sphere", x: 0, y: 0, tol: 1e-12},
		{name: "rastrigin", x: 0, y: 0, tol: 1e-12},
		{name: "schwefel", x: 420.9687, y: 420.9687, tol: 1e-3},
		// Rosenbrock's true minimum is at (1, 1), not at the catalog origin.
		{name: "rosenbrock", x: 1, y: 1, tol: 1e-12},
		{name: "ackley", x: 0, y: 0, tol: 1e-12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, ok := Lookup(tt.name)
			if !ok {
				t.Fatalf("function %q missing from catalog", tt.name)
			}
			got := fn.Eval(tt.x, tt.y)
			if math.Abs(got) > tt.tol {
				t.Errorf("%s(%g, %g) = %g, want 0 within %g", tt.name, tt.x, tt.y, got, tt.tol)
			}
		})
	}
}

func TestValuesAwayFromMinimumArePositive(t *testing.T) {
	for _, fn := range List() {
		if v := fn.Eval(fn.Hi, fn.Lo); v <= 0 {
			t.Errorf("%s at a corner = %g, want > 0", fn.Name, v)
		}
	}
}

func TestClamp(t *testing.T) {
	fn, _ := Lookup("sphere")

	tests := []struct {
		in, want float64
	}{
		{in: 0, want: 0},
		{in: 6, want: 5.12},
		{in: -6, want: -5.12},
		{in: 5.12, want: 5.12},
		{in: -5.12, want: -5.12},
	}
	for _, tt := range tests {
		if got := fn.Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%g) = %g, want %g", tt.in, got, tt.want)
		}
	}

	if w := fn.Width(); math.Abs(w-10.24) > 1e-12 {
		t.Errorf("Width() = %g, want 10.24", w)
	}
}

func TestEvalSymmetry(t *testing.T) {
	// Every catalog function except rosenbrock is symmetric in x and y.
	for _, name := range []string{"sphere", "rastrigin", "schwefel", "ackley"} {
		fn, _ := Lookup(name)
		a := fn.Eval(1.3, -2.1)
		b := fn.Eval(-2.1, 1.3)
		if math.Abs(a-b) > 1e-12 {
			t.Errorf("%s(1.3, -2.1) = %g but %s(-2.1, 1.3) = %g", name, a, name, b)
		}
	}
}
