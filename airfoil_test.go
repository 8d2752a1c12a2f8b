package foamcut

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func readTestAirfoil(t *testing.T) AirfoilPoints {
	t.Helper()
	af, err := ReadAirfoilFile("testdata/test_airfoil.dat", ParseOptions{Strict: true})
	if err != nil {
		t.Fatal(err)
	}
	return af
}

func TestAirfoilFromList(t *testing.T) {
	af := AirfoilFromList("x", [][2]float64{
		{1, 0.01},
		{0.5, 0.05},
		{0, 0},
		{0.5, -0.05},
		{1, -0.01},
	})
	want := []AirfoilPoint{
		{1, 0.01, SurfaceTop},
		{0.5, 0.05, SurfaceTop},
		{0, 0, SurfaceTop},
		{0.5, -0.05, SurfaceBottom},
		{1, -0.01, SurfaceBottom},
	}
	diff(t, want, af.Points())
	diff(t, "x", af.Name())
}

func TestAirfoilBottomIsSticky(t *testing.T) {
	// Once on the bottom surface, a decreasing x doesn't go back to the top.
	af := AirfoilFromList("x", [][2]float64{{1, 0}, {0, 0}, {0.5, 0}, {0.4, 0}, {1, 0}})
	for i := 2; i < af.Len(); i++ {
		if s := af.At(i).Surface; s != SurfaceBottom {
			t.Errorf("point %d: got %s, want bottom", i, s)
		}
	}
}

func TestReadAirfoilFile(t *testing.T) {
	af := readTestAirfoil(t)
	diff(t, "TEST AIRFOIL", af.Name())
	diff(t, 11, af.Len())
	diff(t, 1.0, af.Chord())
	diff(t, 0.12, af.Thickness(), cmpopts.EquateApprox(0, 1e-12))
	diff(t, 0.002, af.TEThickness(), cmpopts.EquateApprox(0, 1e-12))
	diff(t, SurfaceTop, af.At(0).Surface)
	diff(t, SurfaceTop, af.At(5).Surface)
	diff(t, SurfaceBottom, af.At(6).Surface)
	diff(t, SurfaceBottom, af.At(10).Surface)
}

func TestReadAirfoilFileMissing(t *testing.T) {
	_, err := ReadAirfoilFile("testdata/does_not_exist.dat", ParseOptions{})
	var nerr *AirfoilNotFoundError
	if !errors.As(err, &nerr) {
		t.Fatalf("got error %v, want *AirfoilNotFoundError", err)
	}
}

func TestParseAirfoilLednicer(t *testing.T) {
	selig := readTestAirfoil(t)
	lednicer, err := ReadAirfoilFile("testdata/test_lednicer.dat", ParseOptions{Strict: true})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, selig.Points(), lednicer.Points())
}

func TestParseAirfoilMalformed(t *testing.T) {
	const data = "x\n1 0\nfoo bar\n\n0 0\n1 -0.01\n"

	_, err := ParseAirfoil(strings.NewReader(data), ParseOptions{Path: "x.dat", Strict: true})
	var lerr *LineReadError
	if !errors.As(err, &lerr) {
		t.Fatalf("got error %v, want *LineReadError", err)
	}
	diff(t, 3, lerr.Line)
	diff(t, "x.dat", lerr.Path)

	var skipped []int
	af, err := ParseAirfoil(strings.NewReader(data), ParseOptions{
		OnSkip: func(err *LineReadError) { skipped = append(skipped, err.Line) },
	})
	if err != nil {
		t.Fatal(err)
	}
	// Blank lines are not reported.
	diff(t, []int{3}, skipped)
	diff(t, 3, af.Len())
}

func TestParseAirfoilEmpty(t *testing.T) {
	_, err := ParseAirfoil(strings.NewReader(""), ParseOptions{})
	var lerr *LineReadError
	if !errors.As(err, &lerr) {
		t.Fatalf("got error %v, want *LineReadError", err)
	}

	af, err := ParseAirfoil(strings.NewReader("name only\n"), ParseOptions{})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 0, af.Len())
	diff(t, 0.0, af.Chord())
}

func TestAirfoilSetChord(t *testing.T) {
	af := readTestAirfoil(t)
	for _, chord := range []float64{0.5, 2, 200, 1234.5} {
		got, err := af.SetChord(chord)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, chord, got.Chord(), cmpopts.EquateApprox(1e-12, 0))
		// y is untouched.
		diff(t, af.Thickness(), got.Thickness())
	}
	// af itself is unchanged.
	diff(t, 1.0, af.Chord())
}

func TestAirfoilSetThickness(t *testing.T) {
	af := readTestAirfoil(t)
	for _, th := range []float64{0.01, 0.12, 24, 60} {
		got, err := af.SetThickness(th)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, th, got.Thickness(), cmpopts.EquateApprox(1e-9, 0))
		diff(t, af.Chord(), got.Chord())
	}
}

func TestAirfoilSetTEThickness(t *testing.T) {
	af := readTestAirfoil(t)
	for _, te := range []float64{0, 0.002, 0.1} {
		got, err := af.SetTEThickness(te)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, te, got.TEThickness(), cmpopts.EquateApprox(0, 1e-12))
		// The leading edge doesn't move.
		diff(t, af.At(5), got.At(5))
	}
}

func TestAirfoilSetProps(t *testing.T) {
	af, err := readTestAirfoil(t).SetProps(200, 24, 3)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 200.0, af.Chord(), cmpopts.EquateApprox(1e-12, 0))
	diff(t, 3.0, af.TEThickness(), cmpopts.EquateApprox(1e-9, 0))
	// Opening the trailing edge changes the thickness slightly, so only
	// check that it is close.
	diff(t, 24.0, af.Thickness(), cmpopts.EquateApprox(0.1, 0))
}

func TestAirfoilDegenerate(t *testing.T) {
	flat := AirfoilFromList("flat", [][2]float64{{1, 0}, {0, 0}, {1, 0}})
	_, err := flat.SetThickness(1)
	var derr *DegenerateAirfoilError
	if !errors.As(err, &derr) {
		t.Fatalf("got error %v, want *DegenerateAirfoilError", err)
	}
	diff(t, "thickness", derr.Measure)

	point := AirfoilFromList("point", [][2]float64{{0, 1}, {0, -1}})
	if _, err := point.SetChord(1); !errors.As(err, &derr) {
		t.Errorf("got error %v, want *DegenerateAirfoilError", err)
	}
	if _, err := point.SetTEThickness(1); !errors.As(err, &derr) {
		t.Errorf("got error %v, want *DegenerateAirfoilError", err)
	}
}

func TestAirfoilTwist(t *testing.T) {
	af := readTestAirfoil(t)
	diff(t, af.Points(), af.SetTwist(0).Points())

	got := af.SetTwist(90)
	// The trailing edge point (1, 0.001) turns to (-0.001, 1).
	diff(t, AirfoilPoint{-0.001, 1, SurfaceTop}, got.At(0), cmpopts.EquateApprox(0, 1e-12))
	// Twisting back restores the section.
	diff(t, af.Points(), got.SetTwist(-90).Points(), cmpopts.EquateApprox(0, 1e-12))
}

func TestAirfoilOffset(t *testing.T) {
	af := readTestAirfoil(t)
	approx := cmpopts.EquateApprox(0, 1e-12)
	diff(t, af.OffsetX(3).Points(), af.OffsetX(1).OffsetX(2).Points(), approx)
	diff(t, af.OffsetY(-3).Points(), af.OffsetY(-1).OffsetY(-2).Points(), approx)
	diff(t, af.OffsetX(1).OffsetY(2).Points(), af.OffsetY(2).OffsetX(1).Points(), approx)

	got := af.OffsetX(10).OffsetY(5)
	diff(t, AirfoilPoint{10, 5, SurfaceTop}, got.At(5))
}

func TestAirfoilWriteTo(t *testing.T) {
	af, err := readTestAirfoil(t).SetChord(200)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	n, err := af.WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, int64(buf.Len()), n)
	if !strings.HasPrefix(buf.String(), "TEST AIRFOIL\n200 0.001\n") {
		t.Errorf("unexpected output %q", buf.String())
	}

	back, err := ParseAirfoil(&buf, ParseOptions{Strict: true})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, af.Name(), back.Name())
	diff(t, af.Points(), back.Points())
}

var errDiskFull = errors.New("disk full")

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errDiskFull }

func TestAirfoilWriteToError(t *testing.T) {
	xy := make([][2]float64, 1000)
	for i := range xy {
		xy[i] = [2]float64{1 - float64(i)/1000, 0.123456789}
	}
	af := AirfoilFromList("long", xy)

	var buf bytes.Buffer
	full, err := af.WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}

	// The error surfaces once the buffer first spills, not only at the end.
	n, err := af.WriteTo(failingWriter{})
	if !errors.Is(err, errDiskFull) {
		t.Fatalf("got error %v, want %v", err, errDiskFull)
	}
	if n >= full {
		t.Errorf("wrote %d bytes after a failed write, want fewer than %d", n, full)
	}
}

func TestParseAirfoilNonFinite(t *testing.T) {
	const data = "x\n1 0\nNaN 0.1\n0 Inf\n0 0\n"
	var skipped []int
	af, err := ParseAirfoil(strings.NewReader(data), ParseOptions{
		OnSkip: func(err *LineReadError) { skipped = append(skipped, err.Line) },
	})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []int{3, 4}, skipped)
	diff(t, 2, af.Len())
}
