package poly

import "math"

// Compute and Eval agree mathematically but not bit for bit. The interval
// root finder evaluates with Horner.

// Compute evaluates p(x) by accumulating x^i term by term.
func (p *Polynomial) Compute(x float64) float64 {
	result := 0.0
	xcoef := 1.0

	for _, c := range p.inner {
		result += c * xcoef
		xcoef *= x
	}

	return result
}

// ComputeComplex is Compute over the complex plane.
func (p *Polynomial) ComputeComplex(z complex128) complex128 {
	var result complex128
	xcoef := complex(1, 0)

	for _, c := range p.inner {
		result += complex(c, 0) * xcoef
		xcoef *= z
	}

	return result
}

// Eval evaluates p(x) with Horner's rule. A NaN argument is rejected.
func (p *Polynomial) Eval(x float64) (float64, error) {
	if math.IsNaN(x) {
		return 0, errNaNArgument
	}

	return p.Horner(x), nil
}

// Horner is Eval without argument validation, for hot loops that already
// know x is a number.
func (p *Polynomial) Horner(x float64) float64 {
	result := 0.0

	// horner's rule:
	for i := len(p.inner) - 1; i >= 0; i-- {
		result = result*x + p.inner[i]
	}

	return result
}
