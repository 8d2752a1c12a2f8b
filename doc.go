// Package foamcut turns airfoil coordinates into wing panel sections and pairs
// of end profiles into programs for 4-axis hot-wire foam cutters.
//
// # Airfoils
//
// [AirfoilPoints] holds an airfoil section in Selig order, as read by
// [ParseAirfoil], [ReadAirfoilFile] or [Fetcher.Fetch]. Sections are immutable;
// [AirfoilPoints.SetChord], [AirfoilPoints.SetThickness],
// [AirfoilPoints.SetTEThickness], [AirfoilPoints.SetTwist],
// [AirfoilPoints.OffsetX] and [AirfoilPoints.OffsetY] all return new values.
// [BuildPanel] applies a panel layout ([ReadSections]) to a base airfoil and
// draws one sketch per section.
//
// # Sketches
//
// CAD applications are reached through the [Sketch], [Profile] and
// [SketchFactory] interfaces. Curves handed out by sketches satisfy [Curve],
// which only asks for endpoints, a kind and arc length sampling. [MemSketch]
// and [MemDocument] are in-memory implementations, and [ReadDXFProfile] reads
// a profile loop from a DXF drawing.
//
// # Hot-wire programs
//
// A hot-wire cutter drags a heated wire between two rails. Each rail moves
// one wire end in its own plane, so the two end faces of a foam part can have
// different shapes. [NewEdgeProfile] orders the curve loop of one end face
// from the machine zero ([ReorderFromPoint]) and samples it; [Correspond]
// pairs the points of two end faces, which must be traced with the same
// curve kinds ([CompareCurveLists]). [NewHotWire] extends the line through
// each pair to the two rail planes and writes the resulting X/Y/Z/A moves.
//
// The reference machine works in centimeters internally and millimeters on
// the wire, see [DefaultMachine].
package foamcut
