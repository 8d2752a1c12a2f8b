package foamcut

import "slices"

// A Sketch is a planar drawing in a host CAD application. Positions passed to
// and returned from a sketch are in sketch space; [Sketch.Frame] maps them to
// model space.
type Sketch interface {
	Name() string
	Frame() Frame
	CreateSpline(pts []Point3) Curve
	CreateLine(p0, p1 Point3) Curve
	CreatePoint(pt Point3) Point3
	// Profiles returns the closed regions of the sketch.
	Profiles() []Profile
}

// A Profile is a closed region of a sketch.
type Profile interface {
	// OuterLoop returns the curves bounding the region. They are not
	// necessarily ordered from any particular start.
	OuterLoop() []Curve
}

// SketchFactory creates sketches, such as a CAD document or component.
type SketchFactory interface {
	CreateSketch(name string, frame Frame) Sketch
}

// MemSketch is an in-memory [Sketch]. It treats all of its curves, in
// creation order, as the outer loop of its single profile.
type MemSketch struct {
	name   string
	frame  Frame
	curves []Curve
	points []Point3
}

var _ Sketch = (*MemSketch)(nil)

func NewMemSketch(name string, frame Frame) *MemSketch {
	return &MemSketch{name: name, frame: frame}
}

func (s *MemSketch) Name() string { return s.name }
func (s *MemSketch) Frame() Frame { return s.frame }

// Curves returns the curves in creation order.
func (s *MemSketch) Curves() []Curve {
	return slices.Clone(s.curves)
}

// Points returns the positions of the sketch points.
func (s *MemSketch) Points() []Point3 {
	return slices.Clone(s.points)
}

func (s *MemSketch) CreateSpline(pts []Point3) Curve {
	c := NewFittedSpline(pts)
	s.curves = append(s.curves, c)
	return c
}

func (s *MemSketch) CreateLine(p0, p1 Point3) Curve {
	c := Line{p0, p1}
	s.curves = append(s.curves, c)
	return c
}

func (s *MemSketch) CreatePoint(pt Point3) Point3 {
	s.points = append(s.points, pt)
	return pt
}

func (s *MemSketch) Profiles() []Profile {
	if len(s.curves) == 0 {
		return nil
	}
	return []Profile{memProfile(slices.Clone(s.curves))}
}

type memProfile []Curve

func (p memProfile) OuterLoop() []Curve { return slices.Clone(p) }

// MemDocument is an in-memory [SketchFactory] that remembers its sketches.
type MemDocument struct {
	Sketches []*MemSketch
}

var _ SketchFactory = (*MemDocument)(nil)

func (d *MemDocument) CreateSketch(name string, frame Frame) Sketch {
	s := NewMemSketch(name, frame)
	d.Sketches = append(d.Sketches, s)
	return s
}

// Sketch returns the sketch called name, or nil.
func (d *MemDocument) Sketch(name string) *MemSketch {
	for _, s := range d.Sketches {
		if s.name == name {
			return s
		}
	}
	return nil
}
