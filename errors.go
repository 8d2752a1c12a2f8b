package foamcut

import (
	"fmt"
	"strings"
)

// DegenerateVectorError is returned when a zero vector would have to be
// normalized.
type DegenerateVectorError struct {
	Vector Point3
}

func (err *DegenerateVectorError) Error() string {
	return fmt.Sprintf("cannot normalize zero-length vector %s", err.Vector)
}

// ParallelGeometryError is returned when a line runs parallel to a plane it
// is supposed to be intersected with.
type ParallelGeometryError struct {
	Line  Line
	Plane Plane
}

func (err *ParallelGeometryError) Error() string {
	return fmt.Sprintf("line %s–%s is parallel to plane through %s with normal %s",
		err.Line.P0, err.Line.P1, err.Plane.Origin, err.Plane.Direction)
}

// DegenerateAirfoilError is returned when a transform would have to divide by
// a zero measurement of the airfoil.
type DegenerateAirfoilError struct {
	Name string
	// Measure is the measurement that is zero, such as "chord".
	Measure string
}

func (err *DegenerateAirfoilError) Error() string {
	return fmt.Sprintf("airfoil %q has zero %s", err.Name, err.Measure)
}

// LineReadError describes a data line of an airfoil file that doesn't hold an
// x y pair.
type LineReadError struct {
	Path string
	// Line is the 1-based line number.
	Line int
	Text string
	Err  error
}

func (err *LineReadError) Error() string {
	path := err.Path
	if path == "" {
		path = "<input>"
	}
	msg := fmt.Sprintf("%s:%d: cannot read point from %q", path, err.Line, strings.TrimSpace(err.Text))
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *LineReadError) Unwrap() error { return err.Err }

// AirfoilNotFoundError is returned when airfoil data could be retrieved
// neither from a local file nor from the remote database.
type AirfoilNotFoundError struct {
	// Name is the database name or the file path of the airfoil.
	Name string
	Err  error
}

func (err *AirfoilNotFoundError) Error() string {
	if err.Err == nil {
		return fmt.Sprintf("airfoil %q not found", err.Name)
	}
	return fmt.Sprintf("airfoil %q not found: %s", err.Name, err.Err)
}

func (err *AirfoilNotFoundError) Unwrap() error { return err.Err }

// IncompatibleProfileError is returned when a curve loop is not a closed
// traversal, or when the two end profiles of a cut are not traced with the
// same curve topology.
type IncompatibleProfileError struct {
	Profiles [2]string
	// Index is the offending curve index, or -1 if the error concerns the
	// profiles as a whole.
	Index  int
	Reason string
}

func (err *IncompatibleProfileError) Error() string {
	var who string
	switch {
	case err.Profiles[1] != "":
		who = fmt.Sprintf("profiles %q and %q", err.Profiles[0], err.Profiles[1])
	case err.Profiles[0] != "":
		who = fmt.Sprintf("profile %q", err.Profiles[0])
	default:
		who = "profile"
	}
	if err.Index >= 0 {
		return fmt.Sprintf("%s: curve %d: %s", who, err.Index, err.Reason)
	}
	return fmt.Sprintf("%s: %s", who, err.Reason)
}
