package foamcut

import (
	"fmt"
	"io"

	"github.com/rpaloschi/dxf-go/core"
	"github.com/rpaloschi/dxf-go/document"
	"github.com/rpaloschi/dxf-go/entities"
)

// ReadDXFProfile reads the curves of one end profile from a DXF drawing, in
// drawing order. Drawing coordinates are sketch coordinates.
//
// LINE entities become lines. POLYLINE entities with two vertices become
// lines too; longer ones become splines fitted through their vertices, which
// is how airfoil outlines are usually exported. A closed polyline is closed
// by a line from its last vertex back to its first, like the trailing edge
// drawn by [DrawAirfoil]. Any other entity is an error, since silently
// dropping it would open the loop.
func ReadDXFProfile(r io.Reader) ([]Curve, error) {
	doc, err := document.DxfDocumentFromStream(r)
	if err != nil {
		return nil, fmt.Errorf("reading DXF: %w", err)
	}

	var curves []Curve
	unsupported := map[string]int{}
	for _, entity := range doc.Entities.Entities {
		switch e := entity.(type) {
		case *entities.Line:
			curves = append(curves, Line{dxfPoint(e.Start), dxfPoint(e.End)})
		case *entities.Polyline:
			pts := make([]Point3, len(e.Vertices))
			for i, v := range e.Vertices {
				pts[i] = dxfPoint(v.Location)
			}
			c := curveThrough(pts)
			if c == nil {
				continue
			}
			curves = append(curves, c)
			if e.Closed && c.End() != c.Start() {
				curves = append(curves, Line{c.End(), c.Start()})
			}
		default:
			unsupported[fmt.Sprintf("%T", entity)]++
		}
	}
	if len(unsupported) > 0 {
		return nil, fmt.Errorf("DXF holds unsupported entities %v", unsupported)
	}
	return curves, nil
}

func dxfPoint(p core.Point) Point3 {
	return Pt3(p.X, p.Y, p.Z)
}

// curveThrough returns the curve through pts: nothing for fewer than two
// points, a line for two and a fitted spline for more.
func curveThrough(pts []Point3) Curve {
	switch len(pts) {
	case 0, 1:
		return nil
	case 2:
		return Line{pts[0], pts[1]}
	default:
		return NewFittedSpline(pts)
	}
}
