package foamcut

// Plane is given by a point on it and its normal direction.
type Plane struct {
	Origin    Point3
	Direction Point3
}

// Intersect returns the point where the extended line l crosses the plane.
func (p Plane) Intersect(l Line) (Point3, error) {
	t, err := l.DistanceToPlane(p)
	if err != nil {
		return Point3{}, err
	}
	// DistanceToPlane already rejected a zero-length line.
	d, _ := l.Direction().Unit()
	return l.P0.Add(d.Mul(t)), nil
}

// Frame is the coordinate system of a sketch plane: an origin and two
// orthonormal in-plane axes, all in model space. Sketch coordinates (x, y, z)
// map to Origin + x·XAxis + y·YAxis + z·Normal.
type Frame struct {
	Origin Point3
	XAxis  Point3
	YAxis  Point3
}

// XYFrame returns the model XY plane offset by z along the Z axis.
func XYFrame(z float64) Frame {
	return Frame{
		Origin: Pt3(0, 0, z),
		XAxis:  Pt3(1, 0, 0),
		YAxis:  Pt3(0, 1, 0),
	}
}

// SideFrame returns a plane normal to the X axis at x. Its sketch x axis is
// model Y and its sketch y axis is model Z, matching the axes driven by one
// rail of a hot-wire machine.
func SideFrame(x float64) Frame {
	return Frame{
		Origin: Pt3(x, 0, 0),
		XAxis:  Pt3(0, 1, 0),
		YAxis:  Pt3(0, 0, 1),
	}
}

// Normal returns the frame's normal, XAxis × YAxis.
func (f Frame) Normal() Point3 {
	return Cross(f.XAxis, f.YAxis)
}

// Plane returns the sketch plane as a [Plane].
func (f Frame) Plane() Plane {
	return Plane{Origin: f.Origin, Direction: f.Normal()}
}

// ToModel maps a point from sketch space to model space.
func (f Frame) ToModel(pt Point3) Point3 {
	return f.Origin.
		Add(f.XAxis.Mul(pt.X)).
		Add(f.YAxis.Mul(pt.Y)).
		Add(f.Normal().Mul(pt.Z))
}

// ToSketch maps a point from model space to sketch space.
func (f Frame) ToSketch(pt Point3) Point3 {
	d := pt.Sub(f.Origin)
	return Point3{
		X: Dot(d, f.XAxis),
		Y: Dot(d, f.YAxis),
		Z: Dot(d, f.Normal()),
	}
}
