package foamcut

// Line represents a line segment. It is both a [Curve] and the carrier of
// the line–plane intersection used for wire projection.
type Line struct {
	// The line's start point.
	P0 Point3
	// The line's end point.
	P1 Point3
}

var (
	_ Curve    = Line{}
	_ Arclener = Line{}
)

// Direction returns P1−P0. It is not normalized.
func (l Line) Direction() Point3 {
	return l.P1.Sub(l.P0)
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Arclen implements [Arclener]. A line's length is exact.
func (l Line) Arclen(accuracy float64) float64 {
	return l.Length()
}

func (l Line) Start() Point3 { return l.P0 }
func (l Line) End() Point3   { return l.P1 }

// Kind implements [Curve].
func (l Line) Kind() CurveKind { return KindLine }

// Sample implements [Curve]. A line is always sampled at its two endpoints,
// regardless of n.
func (l Line) Sample(n int) []Point3 {
	return []Point3{l.P0, l.P1}
}

// DistanceToPlane returns the signed distance, measured along the line's
// direction from P0, to the point where the extended line crosses p.
//
// It computes dot(p.Origin−P0, n̂) / dot(d̂, n̂), with n̂ and d̂ the unit plane
// direction and unit line direction.
func (l Line) DistanceToPlane(p Plane) (float64, error) {
	n, err := p.Direction.Unit()
	if err != nil {
		return 0, err
	}
	d, err := l.Direction().Unit()
	if err != nil {
		return 0, err
	}
	denom := Dot(d, n)
	if denom == 0 {
		return 0, &ParallelGeometryError{Line: l, Plane: p}
	}
	return Dot(p.Origin.Sub(l.P0), n) / denom, nil
}
