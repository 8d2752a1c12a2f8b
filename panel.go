package foamcut

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Section places one airfoil section of a wing panel.
type Section struct {
	// ZOff is the spanwise position of the section plane.
	ZOff        float64
	Chord       float64
	Thickness   float64
	TEThickness float64
	// Twist is in degrees.
	Twist float64
	XOff  float64
	YOff  float64
}

// Placement returns the transform that twists a sized section about the
// origin and then moves it by the offsets.
func (s Section) Placement() Affine {
	return Identity.ThenRotate(s.Twist*math.Pi/180).ThenTranslate(s.XOff, s.YOff)
}

// Apply derives the section's airfoil from base: chord, thickness, trailing
// edge thickness, then [Section.Placement].
func (s Section) Apply(base AirfoilPoints) (AirfoilPoints, error) {
	af, err := base.SetProps(s.Chord, s.Thickness, s.TEThickness)
	if err != nil {
		return AirfoilPoints{}, err
	}
	return af.Transform(s.Placement()), nil
}

var sectionColumns = []string{"zoff", "chord", "thickness", "te_thickness", "twist", "xoff", "yoff"}

// ReadSections reads a panel layout. The first CSV record names the columns,
// which may come in any order; all of zoff, chord, thickness, te_thickness,
// twist, xoff and yoff are required.
func ReadSections(r io.Reader) ([]Section, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("panel layout is empty")
		}
		return nil, err
	}
	idx := map[string]int{}
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range sectionColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("panel layout has no %q column", col)
		}
	}

	var out []Section
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		vals := make(map[string]float64, len(sectionColumns))
		for _, col := range sectionColumns {
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[idx[col]]), 64)
			if err != nil {
				return nil, fmt.Errorf("panel layout line %d, column %s: %w", line, col, err)
			}
			vals[col] = v
		}
		out = append(out, Section{
			ZOff:        vals["zoff"],
			Chord:       vals["chord"],
			Thickness:   vals["thickness"],
			TEThickness: vals["te_thickness"],
			Twist:       vals["twist"],
			XOff:        vals["xoff"],
			YOff:        vals["yoff"],
		})
	}
}

// DrawAirfoil draws af into s as a spline through all of its points, closed
// by a trailing edge line from the last point back to the first.
func DrawAirfoil(s Sketch, af AirfoilPoints) (spline, te Curve) {
	pts := af.Point3s()
	spline = s.CreateSpline(pts)
	if len(pts) < 2 {
		return spline, nil
	}
	te = s.CreateLine(pts[len(pts)-1], pts[0])
	return spline, te
}

// PanelScale converts panel layout units, millimeters, to sketch units,
// centimeters.
const PanelScale = 0.1

// BuildPanel creates one sketch per section, named section_<i>, on the XY
// plane offset to the section's ZOff, and draws the section's airfoil in it.
// Airfoil positions and the plane offset are scaled by [PanelScale].
func BuildPanel(factory SketchFactory, base AirfoilPoints, sections []Section) ([]Sketch, error) {
	out := make([]Sketch, 0, len(sections))
	for i, sec := range sections {
		af, err := base.SetProps(sec.Chord, sec.Thickness, sec.TEThickness)
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", i, err)
		}
		af = af.Transform(sec.Placement().ThenScale(PanelScale, PanelScale))
		s := factory.CreateSketch(fmt.Sprintf("section_%d", i), XYFrame(sec.ZOff*PanelScale))
		DrawAirfoil(s, af)
		out = append(out, s)
	}
	return out, nil
}
