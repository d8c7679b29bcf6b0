package poly

import (
	"math"
	"strconv"
	"strings"
)

// DefaultEpsilon is the threshold under which a coefficient is treated as zero
// by Normalize and RealOrder.
const DefaultEpsilon = 1e-9

type Polynomial struct {
	inner []float64
}

/*
NewPolynomial expects the coefficients ordered from lowest to highest degree
(e.g. [1, 2, 3] is 1 + 2x + 3x^2).

The slice is copied, so later writes to coeffs do not affect the polynomial.
An empty slice yields the zero polynomial.
*/
func NewPolynomial(coeffs []float64) *Polynomial {
	if len(coeffs) == 0 {
		return &Polynomial{inner: []float64{0}}
	}

	inner := make([]float64, len(coeffs))
	copy(inner, coeffs)

	return &Polynomial{inner: inner}
}

// New is the variadic form of NewPolynomial.
func New(coeffs ...float64) *Polynomial {
	return NewPolynomial(coeffs)
}

// noCopy wraps inner without copying. Callers must not keep inner.
func noCopy(inner []float64) *Polynomial {
	if len(inner) == 0 {
		inner = []float64{0}
	}

	return &Polynomial{inner: inner}
}

// Named factories take coefficients from the highest power down, the way the
// polynomial is written on paper: Quadratic(1, -3, 2) is x^2 - 3x + 2.

func Constant(c float64) *Polynomial { return New(c) }

func Linear(a, b float64) *Polynomial { return New(b, a) }

func Quadratic(a, b, c float64) *Polynomial { return New(c, b, a) }

func Cubic(a, b, c, d float64) *Polynomial { return New(d, c, b, a) }

func Quartic(a, b, c, d, e float64) *Polynomial { return New(e, d, c, b, a) }

func Quintic(a, b, c, d, e, f float64) *Polynomial { return New(f, e, d, c, b, a) }

func Sextic(a, b, c, d, e, f, g float64) *Polynomial { return New(g, f, e, d, c, b, a) }

func Septic(a, b, c, d, e, f, g, h float64) *Polynomial {
	return New(h, g, f, e, d, c, b, a)
}

func Octic(a, b, c, d, e, f, g, h, i float64) *Polynomial {
	return New(i, h, g, f, e, d, c, b, a)
}

// Term returns coefficient * x^power.
func Term(power int, coefficient float64) (*Polynomial, error) {
	if power < 0 {
		return nil, errNegativePower
	}

	inner := make([]float64, power+1)
	inner[power] = coefficient

	return noCopy(inner), nil
}

// X returns the identity polynomial p(x) = x.
func X() *Polynomial {
	return New(0, 1)
}

// Degree is the nominal degree, len(coefficients)-1. It overcounts when
// trailing coefficients are (close to) zero; see RealOrder.
func (p *Polynomial) Degree() int {
	return len(p.inner) - 1
}

// Coefficient returns the coefficient of x^i, or 0 when i is beyond the
// stored representation.
func (p *Polynomial) Coefficient(i int) float64 {
	if i < 0 || i >= len(p.inner) {
		return 0
	}

	return p.inner[i]
}

func (p *Polynomial) Coefficients() []float64 {
	list := make([]float64, len(p.inner))
	copy(list, p.inner)

	return list
}

func (p *Polynomial) IsZero() bool {
	for _, c := range p.inner {
		if c != 0 {
			return false
		}
	}

	return true
}

// Equals compares coefficients exactly, ignoring trailing zeroes.
func (p *Polynomial) Equals(q *Polynomial) bool {
	a, b := p.inner[:p.leadingCoeffPos()+1], q.inner[:q.leadingCoeffPos()+1]
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// leadingCoeffPos returns the index of the highest exactly non-zero
// coefficient, or -1 for the zero polynomial.
func (p *Polynomial) leadingCoeffPos() int {
	for i := len(p.inner) - 1; i >= 0; i-- {
		if p.inner[i] != 0 {
			return i
		}
	}

	return -1
}

// String renders the polynomial in ascending powers, e.g. "2 - 3x + x^2".
// Coefficients whose magnitude is below DefaultEpsilon are skipped and unit
// coefficients are not printed in front of x.
func (p *Polynomial) String() string {
	bldr := strings.Builder{}

	for i, c := range p.inner {
		if math.Abs(c) < DefaultEpsilon {
			continue
		}

		neg := c < 0
		if neg {
			c = -c
		}

		switch {
		case bldr.Len() == 0 && neg:
			bldr.WriteString("-")
		case bldr.Len() != 0 && neg:
			bldr.WriteString(" - ")
		case bldr.Len() != 0:
			bldr.WriteString(" + ")
		}

		if i == 0 || c != 1 {
			bldr.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
		}

		switch {
		case i == 1:
			bldr.WriteString("x")
		case i > 1:
			bldr.WriteString("x^")
			bldr.WriteString(strconv.Itoa(i))
		}
	}

	if bldr.Len() == 0 {
		return "0"
	}

	return bldr.String()
}
