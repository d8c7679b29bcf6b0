package poly

// All operators return a new polynomial; receivers and arguments are never
// written to.

func (p *Polynomial) Neg() *Polynomial {
	out := make([]float64, len(p.inner))
	for i, c := range p.inner {
		out[i] = -c
	}

	return noCopy(out)
}

// Add computes p + q. The shorter operand is padded with zeroes, the result
// has max(len(p), len(q)) coefficients.
func (p *Polynomial) Add(q *Polynomial) *Polynomial {
	return combine(p.inner, q.inner, 1)
}

// Sub computes p - q.
func (p *Polynomial) Sub(q *Polynomial) *Polynomial {
	return combine(p.inner, q.inner, -1)
}

func combine(a, b []float64, sign float64) *Polynomial {
	alen := len(a)
	blen := len(b)
	n := max(alen, blen)
	out := make([]float64, n)

	var av, bv float64
	for i := 0; i < n; i++ {
		if i < alen {
			av = a[i]
		} else {
			av = 0
		}

		if i < blen {
			bv = b[i]
		} else {
			bv = 0
		}

		out[i] = av + sign*bv
	}

	return noCopy(out)
}

func (p *Polynomial) AddScalar(s float64) *Polynomial {
	out := p.Coefficients()
	out[0] += s

	return noCopy(out)
}

func (p *Polynomial) SubScalar(s float64) *Polynomial {
	out := p.Coefficients()
	out[0] -= s

	return noCopy(out)
}

// MulScalar multiplies every coefficient by s.
func (p *Polynomial) MulScalar(s float64) *Polynomial {
	out := make([]float64, len(p.inner))
	for i, c := range p.inner {
		out[i] = c * s
	}

	return noCopy(out)
}

// DivScalar divides every coefficient by s. Division by zero follows IEEE-754.
func (p *Polynomial) DivScalar(s float64) *Polynomial {
	out := make([]float64, len(p.inner))
	for i, c := range p.inner {
		out[i] = c / s
	}

	return noCopy(out)
}

// Mul computes the full convolution p * q; the result has
// len(p) + len(q) - 1 coefficients.
func (p *Polynomial) Mul(q *Polynomial) *Polynomial {
	out := make([]float64, len(p.inner)+len(q.inner)-1)

	// out[i+j] += a[i] * b[j]
	for i, ai := range p.inner {
		if ai == 0 {
			continue
		}

		for j, bj := range q.inner {
			out[i+j] += ai * bj
		}
	}

	return noCopy(out)
}

// Pow computes p^n by repeated multiplication with p. The cost is
// O(n * degree^2); squaring would be cheaper but rounds differently.
func (p *Polynomial) Pow(n int) (*Polynomial, error) {
	if n < 0 {
		return nil, errNegativeExp
	}

	result := New(1)
	for i := 0; i < n; i++ {
		result = result.Mul(p)
	}

	return result, nil
}

// PolyProduct multiplies a slice of polynomials.
func PolyProduct(polys []*Polynomial) *Polynomial {
	m := New(1)
	for _, mi := range polys {
		m = m.Mul(mi)
	}

	return m
}

// PolyProductMonicNegRoots computes \prod (x - r_i).
func PolyProductMonicNegRoots(roots []float64) *Polynomial {
	coeffs := make([]float64, len(roots)+1)
	coeffs[0] = 1

	deg := 0
	for _, r := range roots {
		coeffs[deg+1] = 0
		for j := deg; j >= 0; j-- {
			// new[j+1] += old[j] * 1
			coeffs[j+1] += coeffs[j]
			// new[j]   *= (-r)
			coeffs[j] *= -r
		}
		deg++
	}

	return noCopy(coeffs)
}
