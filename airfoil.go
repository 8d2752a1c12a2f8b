package foamcut

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"
)

// Surface is the airfoil surface a point lies on.
type Surface int

const (
	SurfaceTop Surface = iota
	SurfaceBottom
	SurfaceUnknown
)

func (s Surface) String() string {
	switch s {
	case SurfaceTop:
		return "top"
	case SurfaceBottom:
		return "bottom"
	case SurfaceUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("Surface(%d)", int(s))
	}
}

// AirfoilPoint is a point of an airfoil section. x = 0 is the leading edge,
// x grows towards the trailing edge.
type AirfoilPoint struct {
	X       float64
	Y       float64
	Surface Surface
}

func (pt AirfoilPoint) String() string {
	return fmt.Sprintf("(%g, %g, %s)", pt.X, pt.Y, pt.Surface)
}

// Point3 returns the point in the sketch plane, at z = 0.
func (pt AirfoilPoint) Point3() Point3 {
	return Pt3(pt.X, pt.Y, 0)
}

// AirfoilPoints is a named airfoil section in Selig order: from the trailing
// edge along the top surface to the leading edge, and back along the bottom
// surface to the trailing edge.
//
// AirfoilPoints is immutable. All transforms return new values, so one base
// airfoil can feed any number of panel sections.
type AirfoilPoints struct {
	name   string
	points []AirfoilPoint
}

// AirfoilFromList builds an airfoil from (x, y) pairs in Selig order and
// classifies the points by surface.
func AirfoilFromList(name string, xy [][2]float64) AirfoilPoints {
	pts := make([]AirfoilPoint, len(xy))
	// Points are on the top surface for as long as x decreases, starting
	// with the first point.
	lastX := math.Inf(1)
	surface := SurfaceTop
	for i, p := range xy {
		if surface == SurfaceTop && !(p[0] < lastX) {
			surface = SurfaceBottom
		}
		pts[i] = AirfoilPoint{X: p[0], Y: p[1], Surface: surface}
		lastX = p[0]
	}
	return AirfoilPoints{name: name, points: pts}
}

// NewAirfoilPoints returns an airfoil with already classified points.
func NewAirfoilPoints(name string, pts []AirfoilPoint) AirfoilPoints {
	return AirfoilPoints{name: name, points: slices.Clone(pts)}
}

func (af AirfoilPoints) Name() string { return af.name }
func (af AirfoilPoints) Len() int     { return len(af.points) }

// At returns the i-th point.
func (af AirfoilPoints) At(i int) AirfoilPoint { return af.points[i] }

// Points returns a copy of the points.
func (af AirfoilPoints) Points() []AirfoilPoint {
	return slices.Clone(af.points)
}

// Point3s returns the points in the sketch plane.
func (af AirfoilPoints) Point3s() []Point3 {
	out := make([]Point3, len(af.points))
	for i, pt := range af.points {
		out[i] = pt.Point3()
	}
	return out
}

// Chord returns the x coordinate of the first point, which for a normalized
// Selig file is the trailing edge.
func (af AirfoilPoints) Chord() float64 {
	if len(af.points) == 0 {
		return 0
	}
	return af.points[0].X
}

// Thickness returns the largest y minus the smallest y.
func (af AirfoilPoints) Thickness() float64 {
	if len(af.points) == 0 {
		return 0
	}
	top, btm := math.Inf(-1), math.Inf(1)
	for _, pt := range af.points {
		top = max(top, pt.Y)
		btm = min(btm, pt.Y)
	}
	return top - btm
}

// TEThickness returns the gap at the trailing edge: y of the first point
// minus y of the last point.
func (af AirfoilPoints) TEThickness() float64 {
	if len(af.points) == 0 {
		return 0
	}
	return af.points[0].Y - af.points[len(af.points)-1].Y
}

func (af AirfoilPoints) with(f func(AirfoilPoint) AirfoilPoint) AirfoilPoints {
	out := make([]AirfoilPoint, len(af.points))
	for i, pt := range af.points {
		out[i] = f(pt)
	}
	return AirfoilPoints{name: af.name, points: out}
}

// Transform applies aff to every point. Surfaces are kept.
func (af AirfoilPoints) Transform(aff Affine) AirfoilPoints {
	return af.with(func(pt AirfoilPoint) AirfoilPoint {
		pt.X, pt.Y = aff.Apply(pt.X, pt.Y)
		return pt
	})
}

// SetChord scales x so that the chord becomes chord. y is not scaled.
func (af AirfoilPoints) SetChord(chord float64) (AirfoilPoints, error) {
	cur := af.Chord()
	if cur == 0 {
		return AirfoilPoints{}, &DegenerateAirfoilError{Name: af.name, Measure: "chord"}
	}
	return af.Transform(Scale(chord/cur, 1)), nil
}

// SetThickness scales y so that the thickness becomes thickness.
func (af AirfoilPoints) SetThickness(thickness float64) (AirfoilPoints, error) {
	cur := af.Thickness()
	if cur == 0 {
		return AirfoilPoints{}, &DegenerateAirfoilError{Name: af.name, Measure: "thickness"}
	}
	return af.Transform(Scale(1, thickness/cur)), nil
}

// SetTEThickness opens or closes the trailing edge gap to te. The correction
// grows linearly from nothing at the leading edge to its full value at the
// trailing edge and is split evenly between the two surfaces.
func (af AirfoilPoints) SetTEThickness(te float64) (AirfoilPoints, error) {
	chord := af.Chord()
	if chord == 0 {
		return AirfoilPoints{}, &DegenerateAirfoilError{Name: af.name, Measure: "chord"}
	}
	delta := 0.5 * (te - af.TEThickness()) / chord
	return af.with(func(pt AirfoilPoint) AirfoilPoint {
		if pt.Surface == SurfaceTop {
			pt.Y += pt.X * delta
		} else {
			pt.Y -= pt.X * delta
		}
		return pt
	}), nil
}

// SetProps sets chord, thickness and trailing edge thickness, in that order.
func (af AirfoilPoints) SetProps(chord, thickness, te float64) (AirfoilPoints, error) {
	out, err := af.SetChord(chord)
	if err != nil {
		return AirfoilPoints{}, err
	}
	if out, err = out.SetThickness(thickness); err != nil {
		return AirfoilPoints{}, err
	}
	return out.SetTEThickness(te)
}

// SetTwist rotates the section about the origin by deg degrees,
// anti-clockwise for positive angles.
func (af AirfoilPoints) SetTwist(deg float64) AirfoilPoints {
	return af.Transform(RotateDegrees(deg))
}

func (af AirfoilPoints) OffsetX(dx float64) AirfoilPoints {
	return af.Transform(Translate(dx, 0))
}

func (af AirfoilPoints) OffsetY(dy float64) AirfoilPoints {
	return af.Transform(Translate(0, dy))
}

// WriteTo writes the airfoil in Selig format.
func (af AirfoilPoints) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	m, err := fmt.Fprintln(bw, af.name)
	n := int64(m)
	if err != nil {
		return n, err
	}
	for _, pt := range af.points {
		m, err = fmt.Fprintf(bw, "%s %s\n",
			strconv.FormatFloat(pt.X, 'f', -1, 64),
			strconv.FormatFloat(pt.Y, 'f', -1, 64))
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}

// ParseOptions controls airfoil file parsing.
type ParseOptions struct {
	// Path is only used in error messages.
	Path string
	// Strict makes the first malformed data line an error. Otherwise
	// malformed lines are skipped.
	Strict bool
	// OnSkip, if set, is called for every skipped line.
	OnSkip func(*LineReadError)
}

// ParseAirfoil reads an airfoil point file. The first line is the name, the
// following lines hold whitespace separated x y pairs in Selig order.
//
// Files in Lednicer format, whose first data line holds the number of upper
// and lower surface points, are converted to Selig order.
func ParseAirfoil(r io.Reader, opts ParseOptions) (AirfoilPoints, error) {
	sc := bufio.NewScanner(r)
	lineNo := 0
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return AirfoilPoints{}, err
		}
		return AirfoilPoints{}, &LineReadError{Path: opts.Path, Line: 1, Err: io.ErrUnexpectedEOF}
	}
	lineNo++
	name := strings.TrimSpace(sc.Text())

	var xy [][2]float64
	for sc.Scan() {
		lineNo++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		p, err := parsePair(text)
		if err != nil {
			lerr := &LineReadError{Path: opts.Path, Line: lineNo, Text: text, Err: err}
			if opts.Strict {
				return AirfoilPoints{}, lerr
			}
			if opts.OnSkip != nil {
				opts.OnSkip(lerr)
			}
			continue
		}
		xy = append(xy, p)
	}
	if err := sc.Err(); err != nil {
		return AirfoilPoints{}, err
	}

	if upper, lower, ok := lednicerCounts(xy); ok {
		xy = lednicerToSelig(xy[1:], upper, lower)
	}
	return AirfoilFromList(name, xy), nil
}

func parsePair(line string) ([2]float64, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return [2]float64{}, errors.New("expected two numbers")
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return [2]float64{}, err
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return [2]float64{}, err
	}
	if pt := Pt3(x, y, 0); pt.IsNaN() || pt.IsInf() {
		return [2]float64{}, errors.New("coordinates must be finite")
	}
	return [2]float64{x, y}, nil
}

// lednicerCounts reports whether xy starts with a Lednicer header, a pair of
// whole point counts that are larger than any normalized coordinate and
// match the number of points that follow.
func lednicerCounts(xy [][2]float64) (upper, lower int, ok bool) {
	if len(xy) == 0 {
		return 0, 0, false
	}
	u, l := xy[0][0], xy[0][1]
	if u < 2 || l < 2 || u != math.Trunc(u) || l != math.Trunc(l) {
		return 0, 0, false
	}
	if int(u)+int(l) != len(xy)-1 {
		return 0, 0, false
	}
	return int(u), int(l), true
}

// lednicerToSelig converts upper and lower surfaces, each running from the
// leading edge to the trailing edge, into one Selig loop.
func lednicerToSelig(xy [][2]float64, upper, lower int) [][2]float64 {
	out := make([][2]float64, 0, upper+lower)
	for i := upper - 1; i >= 0; i-- {
		out = append(out, xy[i])
	}
	bottom := xy[upper:]
	if len(bottom) > 0 && bottom[0] == out[len(out)-1] {
		// Both surfaces start at the leading edge.
		bottom = bottom[1:]
	}
	return append(out, bottom...)
}

// ReadAirfoilFile parses the airfoil file at path. A missing file is reported
// as an [AirfoilNotFoundError].
func ReadAirfoilFile(path string, opts ParseOptions) (AirfoilPoints, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return AirfoilPoints{}, &AirfoilNotFoundError{Name: path, Err: err}
		}
		return AirfoilPoints{}, err
	}
	defer f.Close()
	if opts.Path == "" {
		opts.Path = path
	}
	return ParseAirfoil(f, opts)
}
