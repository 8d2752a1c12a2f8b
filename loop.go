package foamcut

import (
	"fmt"
	"slices"
)

// ReorderFromPoint rotates curves so that the curve whose start point is
// nearest to target comes first. Ties go to the earlier curve.
//
// The relative order of the curves is kept: the input is assumed to already
// be a valid loop traversal that only needs re-anchoring. Use [ValidateLoop]
// to check that assumption.
func ReorderFromPoint(target Point3, curves []Curve) []Curve {
	if len(curves) == 0 {
		return nil
	}
	start := 0
	best := curves[0].Start().DistanceSquared(target)
	for i, c := range curves[1:] {
		if d := c.Start().DistanceSquared(target); d < best {
			best = d
			start = i + 1
		}
	}
	return append(slices.Clone(curves[start:]), curves[:start]...)
}

// CompareCurveLists reports whether a and b have the same length and the same
// curve kind at every index. It does not compare geometry.
func CompareCurveLists(a, b []Curve) bool {
	return slices.EqualFunc(a, b, func(ca, cb Curve) bool {
		return ca.Kind() == cb.Kind()
	})
}

// ValidateLoop checks that curves form one closed traversal: every curve
// ends where the next one starts, and the last one ends where the first one
// starts, within tol.
func ValidateLoop(curves []Curve, tol float64) error {
	if len(curves) == 0 {
		return &IncompatibleProfileError{Index: -1, Reason: "loop has no curves"}
	}
	for i, c := range curves {
		next := curves[(i+1)%len(curves)]
		if d := c.End().Distance(next.Start()); d > tol {
			return &IncompatibleProfileError{
				Index:  i,
				Reason: fmt.Sprintf("ends at %s, %g away from the start %s of the next curve", c.End(), d, next.Start()),
			}
		}
	}
	return nil
}
