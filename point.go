package foamcut

import (
	"fmt"
	"math"
)

// Point3 is a point or vector in 3D model space.
type Point3 struct {
	X float64
	Y float64
	Z float64
}

// Pt3 returns the point (x, y, z).
func Pt3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

func (pt Point3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", pt.X, pt.Y, pt.Z)
}

// Add adds two vectors and returns the resulting vector.
func (pt Point3) Add(o Point3) Point3 {
	return Point3{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
		Z: pt.Z + o.Z,
	}
}

// Sub computes pt−o.
func (pt Point3) Sub(o Point3) Point3 {
	return Point3{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
		Z: pt.Z - o.Z,
	}
}

func (pt Point3) Mul(f float64) Point3 {
	return Point3{
		X: pt.X * f,
		Y: pt.Y * f,
		Z: pt.Z * f,
	}
}

// Midpoint returns the midpoint of two points.
func (pt Point3) Midpoint(o Point3) Point3 {
	return Point3{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
		Z: 0.5 * (pt.Z + o.Z),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point3) Distance(o Point3) float64 {
	return pt.Sub(o).Hypot()
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point3) DistanceSquared(o Point3) float64 {
	return pt.Sub(o).Hypot2()
}

// Hypot returns the magnitude of the vector.
func (pt Point3) Hypot() float64 {
	return math.Sqrt(pt.Hypot2())
}

// Hypot2 returns the squared magnitude of the vector.
func (pt Point3) Hypot2() float64 {
	return Dot(pt, pt)
}

// SetLength returns a vector with the direction of pt and magnitude l.
// It fails for the zero vector, which has no direction.
func (pt Point3) SetLength(l float64) (Point3, error) {
	h := pt.Hypot()
	if h == 0 {
		return Point3{}, &DegenerateVectorError{Vector: pt}
	}
	return pt.Mul(l / h), nil
}

// Unit returns the unit vector with the direction of pt.
func (pt Point3) Unit() (Point3, error) {
	return pt.SetLength(1)
}

// IsInf reports whether at least one of x, y and z is infinite.
func (pt Point3) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) || math.IsInf(pt.Z, 0)
}

// IsNaN reports whether at least one of x, y and z is NaN.
func (pt Point3) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsNaN(pt.Z)
}

// Dot returns the dot product of a and b.
func Dot(a, b Point3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product of a and b.
func Cross(a, b Point3) Point3 {
	return Point3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}
