package coord

import (
	"math"
)

// Tolerance is the absolute error allowed when comparing coordinates.
const Tolerance = 1e-6

type Point struct{ X, Y float64 }

func (p Point) Equal(b Point) bool {
	return p.X == b.X && p.Y == b.Y
}

// Near returns true if both axes are within Tolerance of b.
func (p Point) Near(b Point) bool {
	return Near(p.X, b.X) && Near(p.Y, b.Y)
}

func (p Point) Mul(val float64) Point {
	p.X *= val
	p.Y *= val
	return p
}

// Add will add the target values to p.
func (p Point) Add(target Point) Point {
	p.X += target.X
	p.Y += target.Y
	return p
}

// Sub will subtract the target values from p.
func (p Point) Sub(target Point) Point {
	p.X -= target.X
	p.Y -= target.Y
	return p
}

// Min returns the per-axis minimum of p and b.
func (p Point) Min(b Point) Point {
	return Point{X: math.Min(p.X, b.X), Y: math.Min(p.Y, b.Y)}
}

// Max returns the per-axis maximum of p and b.
func (p Point) Max(b Point) Point {
	return Point{X: math.Max(p.X, b.X), Y: math.Max(p.Y, b.Y)}
}

// Distance will return the 2D distance from p to target.
func (p Point) Distance(target Point) float64 {
	return math.Hypot(target.X-p.X, target.Y-p.Y)
}

// Near reports whether a and b differ by no more than Tolerance.
func Near(a, b float64) bool {
	return math.Abs(a-b) <= Tolerance
}
