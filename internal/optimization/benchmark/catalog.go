// Package benchmark provides the fixed catalog of 2-D test functions the
// optimizers run against. Every function is pure and deterministic, has a
// symmetric bounding box and a global minimum value of 0.
package benchmark

import (
	"math"
	"strings"
)

// Function describes one benchmark function. Values of this type are
// immutable; the catalog hands out copies and callers must not rely on
// pointer identity.
type Function struct {
	Name string

	// Eval computes the function value at (x, y). Lower is better.
	Eval func(x, y float64) float64

	// Lo and Hi bound the search space on both axes.
	Lo, Hi float64

	// OptimumX and OptimumY locate the known global minimum.
	OptimumX, OptimumY float64
}

// Width returns the extent of the bounding box on one axis.
func (f Function) Width() float64 { return f.Hi - f.Lo }

// Clamp pins v into the function's bounds.
func (f Function) Clamp(v float64) float64 {
	return math.Max(f.Lo, math.Min(v, f.Hi))
}

func sphere(x, y float64) float64 {
	return x*x + y*y
}

func rastrigin(x, y float64) float64 {
	return 20 + x*x - 10*math.Cos(2*math.Pi*x) + y*y - 10*math.Cos(2*math.Pi*y)
}

func schwefel(x, y float64) float64 {
	return 418.9829*2 - x*math.Sin(math.Sqrt(math.Abs(x))) - y*math.Sin(math.Sqrt(math.Abs(y)))
}

func rosenbrock(x, y float64) float64 {
	return 100*math.Pow(y-x*x, 2) + math.Pow(x-1, 2)
}

func ackley(x, y float64) float64 {
	return -20*math.Exp(-0.2*math.Sqrt(0.5*(x*x+y*y))) -
		math.Exp(0.5*(math.Cos(2*math.Pi*x)+math.Cos(2*math.Pi*y))) +
		20 + math.E
}

// catalog holds every available function in display order.
var catalog = []Function{
	{Name: "sphere", Eval: sphere, Lo: -5.12, Hi: 5.12},
	{Name: "rastrigin", Eval: rastrigin, Lo: -5.12, Hi: 5.12},
	{Name: "schwefel", Eval: schwefel, Lo: -500, Hi: 500, OptimumX: 420.9687, OptimumY: 420.9687},
	{Name: "rosenbrock", Eval: rosenbrock, Lo: -2.048, Hi: 2.048},
	{Name: "ackley", Eval: ackley, Lo: -5, Hi: 5},
}

// Lookup returns the catalog function with the given name. Matching is
// case-insensitive.
func Lookup(name string) (Function, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, fn := range catalog {
		if fn.Name == name {
			return fn, true
		}
	}
	return Function{}, false
}

// List returns the full catalog in stable order. The returned slice is a
// copy and safe to hold.
func List() []Function {
	out := make([]Function, len(catalog))
	copy(out, catalog)
	return out
}
