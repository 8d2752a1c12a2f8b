package foamcut

import (
	"fmt"
	"io"
	"os"

	"github.com/titanous/json5"
)

// ParseMachine reads a JSON5 machine description. Keys that are absent keep
// the values of [DefaultMachine].
//
//	{
//		// distance between the rails, cm
//		span: 115.3,
//		feed_rate: 200,
//		symmetric: true,
//	}
func ParseMachine(r io.Reader) (Machine, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Machine{}, err
	}
	m := DefaultMachine()
	if err := json5.Unmarshal(b, &m); err != nil {
		return Machine{}, fmt.Errorf("parsing machine description: %w", err)
	}
	if m.Span <= 0 {
		return Machine{}, fmt.Errorf("machine span must be positive, got %g", m.Span)
	}
	if m.SplineSamples < 1 {
		return Machine{}, fmt.Errorf("spline samples must be at least 1, got %d", m.SplineSamples)
	}
	return m, nil
}

// LoadMachine reads the machine description at path.
func LoadMachine(path string) (Machine, error) {
	f, err := os.Open(path)
	if err != nil {
		return Machine{}, err
	}
	defer f.Close()
	m, err := ParseMachine(f)
	if err != nil {
		return Machine{}, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
