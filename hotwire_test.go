package foamcut

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func testHotWire(t *testing.T, m Machine) *HotWire {
	t.Helper()
	hw, err := NewHotWire(m, blockProfile(t, "root", 10, 20, 4), blockProfile(t, "tip", 100, 10, 2))
	if err != nil {
		t.Fatal(err)
	}
	return hw
}

func TestHotWireSegments(t *testing.T) {
	hw := testHotWire(t, DefaultMachine())
	segs := hw.Segments()
	diff(t, 2+2*DefaultSplineSamples, len(segs))

	// The line through (10, 20, 0) and (100, 10, 0) crosses x = 0 at
	// y = 20 + 10/9 and x = 115.3 at y = 8.3.
	approx := cmpopts.EquateApprox(0, 1e-9)
	diff(t, Line{Pt3(0, 20+10.0/9.0, 0), Pt3(115.3, 8.3, 0)}, segs[0].Wire, approx)
	diff(t, Line{Pt3(10, 20, 0), Pt3(100, 10, 0)}, segs[0].Cut)
	diff(t, [4]float64{10 * (20 + 10.0/9.0), 0, 83, 0}, segs[0].Axes(false, 10), approx)
	diff(t, [4]float64{83, 0, 10 * (20 + 10.0/9.0), 0}, segs[0].Axes(true, 10), approx)

	// Every wire end lies on its rail plane.
	for i, seg := range segs {
		diff(t, 0.0, seg.Wire.P0.X, approx)
		diff(t, 115.3, seg.Wire.P1.X, approx)
		if i > 0 && seg.Wire.P0 == segs[i-1].Wire.P0 && seg.Wire.P1 == segs[i-1].Wire.P1 {
			t.Errorf("segment %d repeats the previous one", i)
		}
	}
}

func TestHotWireLines(t *testing.T) {
	m := DefaultMachine()
	m.Precision = 3
	lines := testHotWire(t, m).Lines()

	diff(t, 3+2+2*DefaultSplineSamples, len(lines))
	diff(t, ProgramHeader, lines[:3])
	diff(t, "G01 F200 X211.111 Y0 Z83 A0", lines[3])
	diff(t, "G01 F200 X0 Y0 Z0 A0", lines[len(lines)-1])
	for _, l := range lines[3:] {
		if !strings.HasPrefix(l, "G01 F200 X") {
			t.Errorf("unexpected move %q", l)
		}
	}

	m.Symmetric = true
	lines = testHotWire(t, m).Lines()
	diff(t, "G01 F200 X83 Y0 Z211.111 A0", lines[3])
}

func TestHotWireWrite(t *testing.T) {
	hw := testHotWire(t, DefaultMachine())
	var buf bytes.Buffer
	n, err := hw.WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, int64(buf.Len()), n)
	diff(t, strings.Join(hw.Lines(), "\n")+"\n", buf.String())

	path := filepath.Join(t.TempDir(), "cut.nc")
	if err := hw.WriteFile(path); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, buf.String(), string(b))
}

func TestHotWireFromSketches(t *testing.T) {
	m := DefaultMachine()
	s1 := NewMemSketch("root", SideFrame(10))
	s2 := NewMemSketch("tip", SideFrame(100))
	drawBlock(s1, 20, 4)
	drawBlock(s2, 10, 2)
	hw, err := HotWireFromSketches(m, s1, s2)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 2+2*m.SplineSamples, len(hw.Segments()))

	hw.DrawWire(s1, s2)
	diff(t, len(hw.Segments()), len(s1.Points()))
	diff(t, len(hw.Segments()), len(s2.Points()))
	approx := cmpopts.EquateApprox(0, 1e-9)
	diff(t, Pt3(20+10.0/9.0, 0, 0), s1.Points()[0], approx)
	diff(t, Pt3(8.3, 0, 0), s2.Points()[0], approx)
}

func TestHotWireIncompatible(t *testing.T) {
	s1 := NewMemSketch("root", SideFrame(10))
	drawBlock(s1, 20, 4)
	s2 := NewMemSketch("tri", SideFrame(100))
	a, b, c := Pt3(0, 0, 0), Pt3(10, 0, 0), Pt3(10, 2, 0)
	s2.CreateLine(a, b)
	s2.CreateLine(b, c)
	s2.CreateLine(c, a)

	_, err := HotWireFromSketches(DefaultMachine(), s1, s2)
	var perr *IncompatibleProfileError
	if !errors.As(err, &perr) {
		t.Fatalf("got error %v, want *IncompatibleProfileError", err)
	}
}

func TestHotWireParallel(t *testing.T) {
	// Both profiles in the same plane: the cut lines run along the rail
	// planes.
	p1 := blockProfile(t, "a", 10, 20, 4)
	p2 := blockProfile(t, "b", 10, 10, 2)
	_, err := NewHotWire(DefaultMachine(), p1, p2)
	var perr *ParallelGeometryError
	if !errors.As(err, &perr) {
		t.Fatalf("got error %v, want *ParallelGeometryError", err)
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		f    float64
		p    int
		want string
	}{
		{0, -1, "0"},
		{-0.0001, 3, "0"},
		{83.00000000001, 3, "83"},
		{211.11111, 3, "211.111"},
		{-1.5, 3, "-1.5"},
		{200, 0, "200"},
		{0.1, -1, "0.1"},
		{1.0 / 3.0, -1, "0.3333333333333333"},
	}
	for _, tt := range tests {
		if got := formatFloat(tt.f, tt.p); got != tt.want {
			t.Errorf("formatFloat(%v, %d) = %q, want %q", tt.f, tt.p, got, tt.want)
		}
	}
}
