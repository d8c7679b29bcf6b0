package poly

import "math"

// Derivate applies the power rule: result[i-1] = i * p[i].
// The derivative of a constant is the zero polynomial.
func (p *Polynomial) Derivate() *Polynomial {
	if len(p.inner) == 1 {
		return New(0)
	}

	out := make([]float64, len(p.inner)-1)
	for i := 1; i < len(p.inner); i++ {
		out[i-1] = float64(i) * p.inner[i]
	}

	return noCopy(out)
}

// Integrate returns the antiderivative of p whose constant term is constant.
func (p *Polynomial) Integrate(constant float64) *Polynomial {
	out := make([]float64, len(p.inner)+1)
	out[0] = constant

	for i, c := range p.inner {
		out[i+1] = c / float64(i+1)
	}

	return noCopy(out)
}

// RealOrder is the index of the highest coefficient whose magnitude exceeds
// DefaultEpsilon, 0 when there is none. Unlike Degree it ignores negligible
// leading terms.
func (p *Polynomial) RealOrder() int {
	return p.RealOrderWithin(DefaultEpsilon)
}

func (p *Polynomial) RealOrderWithin(eps float64) int {
	for i := len(p.inner) - 1; i >= 0; i-- {
		if math.Abs(p.inner[i]) > eps {
			return i
		}
	}

	return 0
}

// Trim drops every coefficient above the highest one whose magnitude exceeds
// eps. Nothing is rescaled.
func (p *Polynomial) Trim(eps float64) *Polynomial {
	n := p.RealOrderWithin(eps) + 1

	out := make([]float64, n)
	copy(out, p.inner[:n])

	return noCopy(out)
}

// Normalize makes p monic: coefficients up to the highest one above
// DefaultEpsilon are divided by it and everything above is dropped.
// The Durand-Kerner root finder expects its input in this form.
func (p *Polynomial) Normalize() *Polynomial {
	return p.NormalizeWithin(DefaultEpsilon)
}

func (p *Polynomial) NormalizeWithin(eps float64) *Polynomial {
	n := p.RealOrderWithin(eps)
	lead := p.inner[n]
	if lead == 0 {
		return New(0)
	}

	out := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		out[i] = p.inner[i] / lead
	}

	return noCopy(out)
}
