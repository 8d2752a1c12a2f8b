package foamcut

import (
	"errors"
	"testing"
)

// square returns the loop A→B→C→D→A around the unit square.
func square() []Curve {
	a, b, c, d := Pt3(0, 0, 0), Pt3(1, 0, 0), Pt3(1, 1, 0), Pt3(0, 1, 0)
	return []Curve{Line{a, b}, Line{b, c}, Line{c, d}, Line{d, a}}
}

func TestReorderFromPoint(t *testing.T) {
	curves := square()

	diff(t, curves, ReorderFromPoint(Pt3(0, 0, 0), curves))

	got := ReorderFromPoint(Pt3(0.9, 1.1, 0), curves)
	diff(t, []Curve{curves[2], curves[3], curves[0], curves[1]}, got)

	// Reordering an already anchored loop changes nothing.
	diff(t, got, ReorderFromPoint(Pt3(0.9, 1.1, 0), got))

	// The input is left alone.
	diff(t, square(), curves)
}

func TestReorderFromPointTie(t *testing.T) {
	curves := square()
	// Equally far from A and B: the earlier curve wins.
	diff(t, curves, ReorderFromPoint(Pt3(0.5, 0, 0), curves))
	diff(t, curves[1:3], ReorderFromPoint(Pt3(0.5, 0, 0), curves[1:3]))
}

func TestReorderFromPointEmpty(t *testing.T) {
	if got := ReorderFromPoint(Pt3(0, 0, 0), nil); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestCompareCurveLists(t *testing.T) {
	lines := square()
	mixed := square()
	mixed[1] = NewFittedSpline([]Point3{Pt3(1, 0, 0), Pt3(1.2, 0.5, 0), Pt3(1, 1, 0)})

	if !CompareCurveLists(lines, square()) {
		t.Error("identical lists compare unequal")
	}
	if !CompareCurveLists(nil, nil) {
		t.Error("empty lists compare unequal")
	}
	if CompareCurveLists(lines, mixed) {
		t.Error("lists with different kinds compare equal")
	}
	if CompareCurveLists(lines, lines[:3]) {
		t.Error("lists with different lengths compare equal")
	}
}

func TestValidateLoop(t *testing.T) {
	if err := ValidateLoop(square(), 1e-9); err != nil {
		t.Fatal(err)
	}

	broken := square()
	broken[1], broken[2] = broken[2], broken[1]
	err := ValidateLoop(broken, 1e-9)
	var perr *IncompatibleProfileError
	if !errors.As(err, &perr) {
		t.Fatalf("got error %v, want *IncompatibleProfileError", err)
	}
	diff(t, 0, perr.Index)

	open := square()[:3]
	if err := ValidateLoop(open, 1e-9); !errors.As(err, &perr) {
		t.Errorf("got error %v, want *IncompatibleProfileError", err)
	} else {
		diff(t, 2, perr.Index)
	}

	if err := ValidateLoop(nil, 1e-9); !errors.As(err, &perr) {
		t.Errorf("got error %v, want *IncompatibleProfileError", err)
	}
}
