package geometry

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Point is a position (or displacement) in the plane.
//
// Equality is exact component-wise comparison, so Point can be used as a map key.
type Point = vec.Vec2

// Normal returns the counter-clockwise perpendicular of v.
func Normal(v Point) Point {
	return Point{X: -v.Y, Y: v.X}
}

// Unit returns v scaled to length one.
func Unit(v Point) Point {
	return v.Mul(1 / v.Length())
}

// Cross returns the z component of the cross product of a and b.
func Cross(a, b Point) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return b.Sub(a).Length()
}

// Rotation is the turning direction of an angle.
type Rotation int

const (
	Straight Rotation = iota
	Clockwise
	CounterClockwise
	Undefined
)

func (r Rotation) String() string {
	switch r {
	case Straight:
		return "straight"
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counterclockwise"
	default:
		return "undefined"
	}
}

// Direction returns the rotational direction of the angle ABC in a y-down
// coordinate system (screen space). A NaN component yields Undefined.
func Direction(a, b, c Point) Rotation {
	z := Cross(b.Sub(a), c.Sub(b))
	switch {
	case math.IsNaN(z):
		return Undefined
	case z > 0:
		return Clockwise
	case z < 0:
		return CounterClockwise
	default:
		return Straight
	}
}
