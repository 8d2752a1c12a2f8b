package foamcut

import "slices"

// FittedSpline is a G1 continuous cubic spline through a sequence of fit
// points, the way a CAD sketch fits a spline through picked points.
//
// Interior tangents follow the Catmull-Rom rule: the tangent at a fit point
// is parallel to the chord between its neighbours. The end tangents point
// at the neighbouring fit point.
type FittedSpline struct {
	fit  []Point3
	segs []CubicBez3
	// cum[i] is the arc length from the start to the start of segs[i];
	// cum[len(segs)] is the total length.
	cum []float64
}

var (
	_ Curve    = (*FittedSpline)(nil)
	_ Arclener = (*FittedSpline)(nil)
)

// NewFittedSpline returns the spline through pts. It needs at least two
// points; a spline through fewer points has no segments and samples to the
// points it was given.
func NewFittedSpline(pts []Point3) *FittedSpline {
	s := &FittedSpline{fit: slices.Clone(pts)}
	if len(pts) < 2 {
		s.cum = []float64{0}
		return s
	}

	at := func(i int) Point3 {
		return pts[max(0, min(i, len(pts)-1))]
	}
	s.segs = make([]CubicBez3, len(pts)-1)
	s.cum = make([]float64, len(pts))
	for i := range s.segs {
		p0, p3 := pts[i], pts[i+1]
		t0 := at(i + 1).Sub(at(i - 1)).Mul(1.0 / 6.0)
		t1 := at(i + 2).Sub(at(i)).Mul(1.0 / 6.0)
		if i == 0 {
			t0 = p3.Sub(p0).Mul(1.0 / 3.0)
		}
		if i == len(s.segs)-1 {
			t1 = p3.Sub(p0).Mul(1.0 / 3.0)
		}
		s.segs[i] = CubicBez3{p0, p0.Add(t0), p3.Sub(t1), p3}
		s.cum[i+1] = s.cum[i] + s.segs[i].Arclen(DefaultAccuracy)
	}
	return s
}

// FitPoints returns the points the spline passes through.
func (s *FittedSpline) FitPoints() []Point3 {
	return slices.Clone(s.fit)
}

// Segments returns the Bézier segments making up the spline.
func (s *FittedSpline) Segments() []CubicBez3 {
	return slices.Clone(s.segs)
}

func (s *FittedSpline) Start() Point3 {
	if len(s.fit) == 0 {
		return Point3{}
	}
	return s.fit[0]
}

func (s *FittedSpline) End() Point3 {
	if len(s.fit) == 0 {
		return Point3{}
	}
	return s.fit[len(s.fit)-1]
}

// Kind implements [Curve].
func (s *FittedSpline) Kind() CurveKind { return KindSpline }

// Arclen returns the length of the spline.
func (s *FittedSpline) Arclen(accuracy float64) float64 {
	var l float64
	for _, seg := range s.segs {
		l += seg.Arclen(accuracy)
	}
	return l
}

// EvalArclen returns the point at arc length l from the start.
func (s *FittedSpline) EvalArclen(l float64) Point3 {
	if len(s.segs) == 0 {
		return s.Start()
	}
	// Index of the first segment that ends at or after l.
	i, _ := slices.BinarySearch(s.cum[1:], l)
	if i >= len(s.segs) {
		return s.End()
	}
	seg := s.segs[i]
	t := seg.SolveForArclen(l-s.cum[i], DefaultAccuracy)
	return seg.Eval(t)
}

// Sample implements [Curve].
func (s *FittedSpline) Sample(n int) []Point3 {
	if len(s.segs) == 0 {
		return slices.Clone(s.fit)
	}
	n = max(n, 1)
	total := s.cum[len(s.cum)-1]
	out := make([]Point3, n+1)
	out[0] = s.Start()
	for i := 1; i < n; i++ {
		out[i] = s.EvalArclen(total * float64(i) / float64(n))
	}
	out[n] = s.End()
	return out
}
