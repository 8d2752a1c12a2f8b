// Command foamcut prepares airfoil sections and hot-wire cutting programs.
//
// Usage:
//
//	foamcut airfoil [flags]   transform an airfoil file
//	foamcut fetch [flags]     download an airfoil from airfoiltools.com
//	foamcut panel [flags]     write one airfoil file per panel section
//	foamcut gcode [flags]     write a hot-wire program for two DXF profiles
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"os/signal"
	"path/filepath"

	"honnef.co/go/foamcut"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s <airfoil|fetch|panel|gcode> [flags]\n", filepath.Base(os.Args[0]))
	os.Exit(1)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("foamcut: ")

	if len(os.Args) < 2 {
		usage()
	}
	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "airfoil":
		err = runAirfoil(args)
	case "fetch":
		err = runFetch(args)
	case "panel":
		err = runPanel(args)
	case "gcode":
		err = runGCode(args)
	default:
		usage()
	}
	if err != nil {
		log.Fatal(err)
	}
}

func parseOptions(path string, strict, verbose bool) foamcut.ParseOptions {
	opts := foamcut.ParseOptions{Path: path, Strict: strict}
	if verbose {
		opts.OnSkip = func(err *foamcut.LineReadError) {
			log.Printf("skipping %s", err)
		}
	}
	return opts
}

// output calls fn with the file at path, or stdout if path is empty.
func output(path string, fn func(io.Writer) error) (err error) {
	if path == "" {
		return fn(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(f)
}

func runAirfoil(args []string) error {
	fs := flag.NewFlagSet("airfoil", flag.ExitOnError)
	var (
		in        = fs.String("input", "", "Airfoil file to read")
		out       = fs.String("output", "", "Location to write the transformed airfoil (default stdout)")
		strict    = fs.Bool("strict", false, "Fail on malformed lines instead of skipping them")
		verbose   = fs.Bool("v", false, "Report skipped lines")
		chord     = fs.Float64("chord", math.NaN(), "Chord")
		thickness = fs.Float64("thickness", math.NaN(), "Thickness")
		te        = fs.Float64("te", math.NaN(), "Trailing edge thickness")
		twist     = fs.Float64("twist", 0, "Twist in degrees")
		xoff      = fs.Float64("xoff", 0, "X offset")
		yoff      = fs.Float64("yoff", 0, "Y offset")
	)
	fs.Parse(args)
	if *in == "" {
		fmt.Fprintf(os.Stderr, "Error: No file provided\n")
		fs.Usage()
		os.Exit(1)
	}

	af, err := foamcut.ReadAirfoilFile(*in, parseOptions(*in, *strict, *verbose))
	if err != nil {
		return err
	}
	if !math.IsNaN(*chord) {
		if af, err = af.SetChord(*chord); err != nil {
			return err
		}
	}
	if !math.IsNaN(*thickness) {
		if af, err = af.SetThickness(*thickness); err != nil {
			return err
		}
	}
	if !math.IsNaN(*te) {
		if af, err = af.SetTEThickness(*te); err != nil {
			return err
		}
	}
	af = af.SetTwist(*twist).OffsetY(*yoff).OffsetX(*xoff)

	return output(*out, func(w io.Writer) error {
		_, err := af.WriteTo(w)
		return err
	})
}

func runFetch(args []string) error {
	fs := flag.NewFlagSet("fetch", flag.ExitOnError)
	var (
		name = fs.String("name", "", "airfoiltools.com name of the airfoil, such as naca2411-il")
		out  = fs.String("output", "", "Location to write the airfoil (default stdout)")
		base = fs.String("url", foamcut.DefaultAirfoilURL, "Database URL")
	)
	fs.Parse(args)
	if *name == "" {
		fmt.Fprintf(os.Stderr, "Error: No airfoil name provided\n")
		fs.Usage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	log.Printf("downloading %s", *name)
	af, err := foamcut.Fetcher{BaseURL: *base}.Fetch(ctx, *name)
	if err != nil {
		return err
	}
	return output(*out, func(w io.Writer) error {
		_, err := af.WriteTo(w)
		return err
	})
}

func runPanel(args []string) error {
	fs := flag.NewFlagSet("panel", flag.ExitOnError)
	var (
		in      = fs.String("airfoil", "", "Base airfoil file")
		layout  = fs.String("layout", "", "Panel layout CSV")
		outDir  = fs.String("outdir", ".", "Directory for the section files")
		strict  = fs.Bool("strict", false, "Fail on malformed airfoil lines instead of skipping them")
		verbose = fs.Bool("v", false, "Report skipped lines")
	)
	fs.Parse(args)
	if *in == "" || *layout == "" {
		fmt.Fprintf(os.Stderr, "Error: -airfoil and -layout are required\n")
		fs.Usage()
		os.Exit(1)
	}

	base, err := foamcut.ReadAirfoilFile(*in, parseOptions(*in, *strict, *verbose))
	if err != nil {
		return err
	}
	f, err := os.Open(*layout)
	if err != nil {
		return err
	}
	defer f.Close()
	sections, err := foamcut.ReadSections(f)
	if err != nil {
		return fmt.Errorf("%s: %w", *layout, err)
	}

	for i, sec := range sections {
		af, err := sec.Apply(base)
		if err != nil {
			return fmt.Errorf("section %d: %w", i, err)
		}
		path := filepath.Join(*outDir, fmt.Sprintf("section_%d.dat", i))
		err = output(path, func(w io.Writer) error {
			_, err := af.WriteTo(w)
			return err
		})
		if err != nil {
			return err
		}
		if *verbose {
			log.Printf("wrote %s at z=%g", path, sec.ZOff)
		}
	}
	return nil
}

func readProfile(name, path string, frame foamcut.Frame, m foamcut.Machine) (*foamcut.EdgeProfile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	curves, err := foamcut.ReadDXFProfile(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return foamcut.NewEdgeProfile(name, curves, frame, m.SplineSamples, m.Tolerance)
}

func runGCode(args []string) error {
	fs := flag.NewFlagSet("gcode", flag.ExitOnError)
	var (
		side1     = fs.String("side1", "", "DXF drawing of the profile nearest the X rail")
		side2     = fs.String("side2", "", "DXF drawing of the profile nearest the Z rail")
		x1        = fs.Float64("x1", 0, "Position of side1 along the span")
		x2        = fs.Float64("x2", -1, "Position of side2 along the span (default: the machine span)")
		config    = fs.String("machine", "", "JSON5 machine description")
		symmetric = fs.Bool("sym", false, "Swap the rails")
		out       = fs.String("output", "", "Location to write the program")
		stdout    = fs.Bool("stdout", false, "Output to stdout")
		verbose   = fs.Bool("v", false, "Report profile statistics")
	)
	fs.Parse(args)
	if *side1 == "" || *side2 == "" {
		fmt.Fprintf(os.Stderr, "Error: -side1 and -side2 are required\n")
		fs.Usage()
		os.Exit(1)
	}
	if *out == "" && !*stdout {
		fmt.Fprintf(os.Stderr, "Error: No output location provided\n")
		fs.Usage()
		os.Exit(1)
	}

	m := foamcut.DefaultMachine()
	if *config != "" {
		var err error
		if m, err = foamcut.LoadMachine(*config); err != nil {
			return err
		}
	}
	if *symmetric {
		m.Symmetric = true
	}
	if *x2 < 0 {
		*x2 = m.Span
	}

	p1, err := readProfile(*side1, *side1, foamcut.SideFrame(*x1), m)
	if err != nil {
		return err
	}
	p2, err := readProfile(*side2, *side2, foamcut.SideFrame(*x2), m)
	if err != nil {
		return err
	}
	hw, err := foamcut.NewHotWire(m, p1, p2)
	if err != nil {
		return err
	}
	if *verbose {
		log.Printf("%d curves, %d moves, loop lengths %.2f and %.2f", len(p1.Curves()), len(hw.Segments()), p1.Length(), p2.Length())
	}

	if *stdout {
		if _, err := hw.WriteTo(os.Stdout); err != nil {
			return err
		}
	}
	if *out != "" {
		return hw.WriteFile(*out)
	}
	return nil
}
