package foamcut

import "math"

// CubicBez3 is a cubic Bézier segment in 3D.
type CubicBez3 struct {
	P0 Point3
	P1 Point3
	P2 Point3
	P3 Point3
}

func (c CubicBez3) Start() Point3 { return c.P0 }
func (c CubicBez3) End() Point3   { return c.P3 }

func (c CubicBez3) Eval(t float64) Point3 {
	mt := 1.0 - t
	a := c.P0.Mul(mt * mt * mt)
	b := c.P1.Mul(mt * mt * 3.0)
	cc := c.P2.Mul(mt * 3.0)
	d := c.P3
	return a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
}

// Deriv evaluates the first derivative at t.
func (c CubicBez3) Deriv(t float64) Point3 {
	// The derivative is the quadratic Bézier 3(P1−P0), 3(P2−P1), 3(P3−P2).
	q0 := c.P1.Sub(c.P0).Mul(3)
	q1 := c.P2.Sub(c.P1).Mul(3)
	q2 := c.P3.Sub(c.P2).Mul(3)
	mt := 1.0 - t
	return q0.Mul(mt * mt).Add(q1.Mul(mt * t * 2)).Add(q2.Mul(t * t))
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez3) Subdivide() (CubicBez3, CubicBez3) {
	pm := c.Eval(0.5)
	return CubicBez3{
			c.P0,
			c.P0.Midpoint(c.P1),
			c.P0.Add(c.P1.Mul(2.0)).Add(c.P2).Mul(0.25),
			pm,
		},
		CubicBez3{
			pm,
			c.P1.Add(c.P2.Mul(2.0)).Add(c.P3).Mul(0.25),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

func (c CubicBez3) Subsegment(t0, t1 float64) CubicBez3 {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Add(c.Deriv(t0).Mul(scale))
	p2 := p3.Sub(c.Deriv(t1).Mul(scale))
	return CubicBez3{p0, p1, p2, p3}
}

// Arclen returns the arclength of a cubic Bézier segment.
//
// This is an adaptive subdivision approach using Legendre-Gauss quadrature.
func (c CubicBez3) Arclen(accuracy float64) float64 {
	return c.arclen(accuracy, 0)
}

func (c CubicBez3) arclen(accuracy float64, depth int) float64 {
	d03 := c.P3.Sub(c.P0)
	d01 := c.P1.Sub(c.P0)
	d12 := c.P2.Sub(c.P1)
	d23 := c.P3.Sub(c.P2)
	lplc := d01.Hypot() + d12.Hypot() + d23.Hypot() - d03.Hypot()
	dd1 := d12.Sub(d01)
	dd2 := d23.Sub(d12)
	// These are missing the factor of 3 of the first derivative.
	dm := d01.Add(d23).Mul(0.25).Add(d12.Mul(0.5)) // first derivative at midpoint
	dm1 := dd2.Add(dd1).Mul(0.5)                   // second derivative at midpoint
	dm2 := dd2.Sub(dd1).Mul(0.25)                  // 0.5 * (third derivative at midpoint)

	var est float64
	for _, coeff := range gaussLegendreCoeffs8 {
		wi, xi := coeff[0], coeff[1]
		dNorm2 := dm.Add(dm1.Mul(xi)).Add(dm2.Mul(xi * xi)).Hypot2()
		ddNorm2 := dm1.Add(dm2.Mul(2.0 * xi)).Hypot2()
		est += wi * (ddNorm2 / dNorm2)
	}
	if math.IsNaN(est) {
		// dNorm2 is 0 at a singularity
		est = 0
	}

	if min(math.Pow(est, 3)*2.5e-6, 3e-2)*lplc < accuracy {
		return arclenQuadrature(gaussLegendreCoeffs8Half[:], dm, dm1, dm2)
	}
	if min(math.Pow(est, 6)*1.5e-11, 9e-3)*lplc < accuracy {
		return arclenQuadrature(gaussLegendreCoeffs16Half[:], dm, dm1, dm2)
	}
	if min(math.Pow(est, 9)*3.5e-16, 3.5e-3)*lplc < accuracy || depth >= 20 {
		return arclenQuadrature(gaussLegendreCoeffs24Half[:], dm, dm1, dm2)
	}
	c0, c1 := c.Subdivide()
	return c0.arclen(accuracy*0.5, depth+1) + c1.arclen(accuracy*0.5, depth+1)
}

func arclenQuadrature(coeffs [][2]float64, dm, dm1, dm2 Point3) float64 {
	var sum float64
	for _, coeff := range coeffs {
		wi, xi := coeff[0], coeff[1]
		d := dm.Add(dm2.Mul(xi * xi))
		dpx := d.Add(dm1.Mul(xi)).Hypot()
		dmx := d.Sub(dm1.Mul(xi)).Hypot()
		sum += 1.5 * wi * (dpx + dmx)
	}
	return sum
}

// SolveForArclen solves for the parameter that has the given arc length from
// the start of the curve.
//
// Arc lengths are computed for the span between the previous and the current
// guess only, which is cheaper than measuring from t=0 every time.
func (c CubicBez3) SolveForArclen(arclen float64, accuracy float64) float64 {
	if arclen <= 0.0 {
		return 0.0
	}
	total := c.Arclen(accuracy)
	if arclen >= total {
		return 1.0
	}
	tLast := 0.0
	arclenLast := 0.0
	epsilon := accuracy / total
	n := 1.0 - min(math.Ceil(math.Log2(epsilon)), 0.0)
	inner := accuracy / n
	f := func(t float64) float64 {
		if t > tLast {
			arclenLast += c.Subsegment(tLast, t).Arclen(inner)
		} else {
			arclenLast -= c.Subsegment(t, tLast).Arclen(inner)
		}
		tLast = t
		return arclenLast - arclen
	}
	return solveITP(f, 0.0, 1.0, epsilon, -arclen, total-arclen)
}
