package foamcut

import (
	"errors"
	"fmt"
	"slices"
)

// DefaultSplineSamples is the number of spans each spline of a profile is
// sampled into.
const DefaultSplineSamples = 50

// EdgeProfile is one end face of a hot-wire cut: a closed curve loop,
// ordered from the machine zero, and the model space points the wire has to
// visit along it.
//
// An EdgeProfile is computed once by [NewEdgeProfile] and never changes.
type EdgeProfile struct {
	name   string
	frame  Frame
	curves []Curve
	points []Point3
}

// MachineZero returns the machine zero of a profile drawn in frame: the
// model space projection of the frame's origin onto the X axis, expressed in
// sketch space.
func MachineZero(frame Frame) Point3 {
	return frame.ToSketch(Pt3(frame.Origin.X, 0, 0))
}

// NewEdgeProfile orders the loop curves, given in sketch space, starting at
// the curve nearest to the machine zero, and samples them. Splines are
// divided into samples spans.
//
// Each curve contributes its samples without its first point, which is the
// previous curve's end. A line thus contributes one point and a spline
// samples points; the loop's start is reached again by the last point.
func NewEdgeProfile(name string, curves []Curve, frame Frame, samples int, tol float64) (*EdgeProfile, error) {
	sorted := ReorderFromPoint(MachineZero(frame), curves)
	if err := ValidateLoop(sorted, tol); err != nil {
		var perr *IncompatibleProfileError
		if errors.As(err, &perr) {
			perr.Profiles[0] = name
		}
		return nil, err
	}

	var pts []Point3
	for _, c := range sorted {
		s := c.Sample(samples)
		if len(s) == 0 {
			continue
		}
		for _, pt := range s[1:] {
			pts = append(pts, frame.ToModel(pt))
		}
	}
	return &EdgeProfile{
		name:   name,
		frame:  frame,
		curves: sorted,
		points: pts,
	}, nil
}

// ProfileFromSketch builds the edge profile of the outer loop of the first
// profile of s.
func ProfileFromSketch(s Sketch, samples int, tol float64) (*EdgeProfile, error) {
	profiles := s.Profiles()
	if len(profiles) == 0 {
		return nil, &IncompatibleProfileError{
			Profiles: [2]string{s.Name()},
			Index:    -1,
			Reason:   "sketch has no closed profile",
		}
	}
	return NewEdgeProfile(s.Name(), profiles[0].OuterLoop(), s.Frame(), samples, tol)
}

func (p *EdgeProfile) Name() string { return p.name }
func (p *EdgeProfile) Frame() Frame { return p.frame }

// Curves returns the loop curves, starting at the machine zero.
func (p *EdgeProfile) Curves() []Curve { return slices.Clone(p.curves) }

// Points returns the model space points along the loop.
func (p *EdgeProfile) Points() []Point3 { return slices.Clone(p.points) }

// Length returns the length of the loop in model units. A curve that can't
// measure its arc length counts as the chord between its endpoints.
func (p *EdgeProfile) Length() float64 {
	var l float64
	for _, c := range p.curves {
		if a, ok := c.(Arclener); ok {
			l += a.Arclen(DefaultAccuracy)
		} else {
			l += c.Start().Distance(c.End())
		}
	}
	return l
}

// Compatible reports whether p and o are traced with the same sequence of
// curve kinds.
func (p *EdgeProfile) Compatible(o *EdgeProfile) bool {
	return CompareCurveLists(p.curves, o.curves)
}

// PointPair is a pair of corresponding points, one on each end profile.
type PointPair struct {
	P1 Point3
	P2 Point3
}

// Correspond pairs the points of a and b by index.
func Correspond(a, b *EdgeProfile) ([]PointPair, error) {
	names := [2]string{a.name, b.name}
	if len(a.curves) != len(b.curves) {
		return nil, &IncompatibleProfileError{
			Profiles: names,
			Index:    -1,
			Reason:   fmt.Sprintf("%d curves vs %d curves", len(a.curves), len(b.curves)),
		}
	}
	for i := range a.curves {
		if ka, kb := a.curves[i].Kind(), b.curves[i].Kind(); ka != kb {
			return nil, &IncompatibleProfileError{
				Profiles: names,
				Index:    i,
				Reason:   fmt.Sprintf("%s vs %s", ka, kb),
			}
		}
	}
	if len(a.points) != len(b.points) {
		return nil, &IncompatibleProfileError{
			Profiles: names,
			Index:    -1,
			Reason:   fmt.Sprintf("%d points vs %d points", len(a.points), len(b.points)),
		}
	}

	pairs := make([]PointPair, len(a.points))
	for i := range pairs {
		pairs[i] = PointPair{a.points[i], b.points[i]}
	}
	return pairs, nil
}
