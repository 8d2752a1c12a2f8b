package foamcut

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
)

// Machine describes a 4-axis hot-wire foam cutter. Its two rails move the
// wire ends in planes normal to the X axis, one at X = 0 and one at X = Span.
type Machine struct {
	// Span is the distance between the two rail planes, in model units.
	Span float64 `json:"span"`
	// FeedRate is the cutting speed in mm/min.
	FeedRate float64 `json:"feed_rate"`
	// Scale converts model units to machine units.
	Scale float64 `json:"scale"`
	// Symmetric swaps the rails: the end plane drives X/Y and the start
	// plane drives Z/A. Use it when the cut profiles are mirrored relative
	// to the machine's axes.
	Symmetric bool `json:"symmetric"`
	// Precision is the number of decimals written for coordinates. A
	// negative value writes the shortest exact representation.
	Precision int `json:"precision"`
	// SplineSamples is the number of spans each spline is divided into.
	SplineSamples int `json:"spline_samples"`
	// Tolerance is the largest gap allowed between consecutive curves of a
	// profile loop, in model units.
	Tolerance float64 `json:"tolerance"`
}

// DefaultMachine returns the settings of the reference machine: model units
// are centimeters, machine units millimeters.
func DefaultMachine() Machine {
	return Machine{
		Span:          115.3,
		FeedRate:      200,
		Scale:         10,
		Precision:     -1,
		SplineSamples: DefaultSplineSamples,
		Tolerance:     1e-6,
	}
}

// StartPlane returns the plane of the rail at X = 0.
func (m Machine) StartPlane() Plane {
	return Plane{Origin: Pt3(0, 0, 0), Direction: Pt3(1, 0, 0)}
}

// EndPlane returns the plane of the rail at X = Span.
func (m Machine) EndPlane() Plane {
	return Plane{Origin: Pt3(m.Span, 0, 0), Direction: Pt3(1, 0, 0)}
}

// ProgramHeader holds the setup blocks every program starts with:
// millimeters, feed per minute, absolute positioning.
var ProgramHeader = []string{"G21", "G94", "G90"}

// Segment is one move of the wire. Cut is the line between a pair of
// corresponding profile points, Wire is the same line between its
// intersections with the two rail planes.
type Segment struct {
	Cut  Line
	Wire Line
}

// NewSegment extends the line through pair to the start and end planes.
func NewSegment(pair PointPair, start, end Plane) (Segment, error) {
	cut := Line{pair.P1, pair.P2}
	p0, err := start.Intersect(cut)
	if err != nil {
		return Segment{}, err
	}
	p1, err := end.Intersect(cut)
	if err != nil {
		return Segment{}, err
	}
	return Segment{Cut: cut, Wire: Line{p0, p1}}, nil
}

// Axes returns the X, Y, Z and A axis values of the move, scaled by scale.
func (s Segment) Axes(symmetric bool, scale float64) [4]float64 {
	a, b := s.Wire.P0, s.Wire.P1
	if symmetric {
		a, b = b, a
	}
	return [4]float64{a.Y * scale, a.Z * scale, b.Y * scale, b.Z * scale}
}

// HotWire is the motion program for cutting between two end profiles.
type HotWire struct {
	machine  Machine
	side1    *EdgeProfile
	side2    *EdgeProfile
	segments []Segment
}

// NewHotWire pairs the points of the two profiles and projects every pair
// onto the machine's rail planes.
func NewHotWire(m Machine, side1, side2 *EdgeProfile) (*HotWire, error) {
	pairs, err := Correspond(side1, side2)
	if err != nil {
		return nil, err
	}
	start, end := m.StartPlane(), m.EndPlane()
	segs := make([]Segment, len(pairs))
	for i, pair := range pairs {
		segs[i], err = NewSegment(pair, start, end)
		if err != nil {
			return nil, fmt.Errorf("point pair %d (%s, %s): %w", i, pair.P1, pair.P2, err)
		}
	}
	return &HotWire{
		machine:  m,
		side1:    side1,
		side2:    side2,
		segments: segs,
	}, nil
}

// HotWireFromSketches builds the program from the first profiles of two
// sketches, one per end face.
func HotWireFromSketches(m Machine, s1, s2 Sketch) (*HotWire, error) {
	p1, err := ProfileFromSketch(s1, m.SplineSamples, m.Tolerance)
	if err != nil {
		return nil, err
	}
	p2, err := ProfileFromSketch(s2, m.SplineSamples, m.Tolerance)
	if err != nil {
		return nil, err
	}
	return NewHotWire(m, p1, p2)
}

func (hw *HotWire) Machine() Machine { return hw.machine }

// Segments returns the moves in cutting order.
func (hw *HotWire) Segments() []Segment { return slices.Clone(hw.segments) }

// Lines returns the program, one block per element.
func (hw *HotWire) Lines() []string {
	m := hw.machine
	out := slices.Clone(ProgramHeader)
	feed := formatFloat(m.FeedRate, m.Precision)
	for _, seg := range hw.segments {
		ax := seg.Axes(m.Symmetric, m.Scale)
		out = append(out, fmt.Sprintf("G01 F%s X%s Y%s Z%s A%s",
			feed,
			formatFloat(ax[0], m.Precision),
			formatFloat(ax[1], m.Precision),
			formatFloat(ax[2], m.Precision),
			formatFloat(ax[3], m.Precision)))
	}
	return out
}

// WriteTo writes the program, one newline-terminated block per line.
func (hw *HotWire) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, l := range hw.Lines() {
		m, err := bw.WriteString(l + "\n")
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}

// WriteFile writes the program to path.
func (hw *HotWire) WriteFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = hw.WriteTo(f)
	return err
}

// DrawWire marks where the wire meets the rail planes, as points in the
// sketches of the two end faces. Each wire end is projected along the
// sketch normal into its sketch.
func (hw *HotWire) DrawWire(s1, s2 Sketch) {
	for _, seg := range hw.segments {
		p0 := s1.Frame().ToSketch(seg.Wire.P0)
		p1 := s2.Frame().ToSketch(seg.Wire.P1)
		p0.Z, p1.Z = 0, 0
		s1.CreatePoint(p0)
		s2.CreatePoint(p1)
	}
}

// formatFloat formats f with p decimals and strips trailing zeros, or with
// the shortest exact representation if p is negative.
func formatFloat(f float64, p int) string {
	if f == 0 {
		// no negative zero
		f = 0
	}
	x := strconv.FormatFloat(f, 'f', p, 64)
	if p < 0 || !strings.ContainsRune(x, '.') {
		return x
	}
	x = strings.TrimRight(x, "0")
	x = strings.TrimSuffix(x, ".")
	if x == "-0" {
		return "0"
	}
	return x
}
