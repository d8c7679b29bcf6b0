package poly

// Interpolate returns the polynomial P of degree len(ys)-1 with P(i) = ys[i]
// for i = 0..len(ys)-1.
func Interpolate(ys []float64) (*Polynomial, error) {
	xs := make([]float64, len(ys))
	for i := range xs {
		xs[i] = float64(i)
	}

	return InterpolateAt(xs, ys)
}

// InterpolateAt follows the Lagrange interpolation method
// https://en.wikipedia.org/wiki/Lagrange_polynomial
// It is O(n^2) in total:
// 1. Create m(x) = \prod_{0\le i \le n} m_i(x) = \prod_{0\le i \le n} (x - x_i)
// 2. For each i, create q_i(x) = m(x) / m_i(x) by synthetic division.
// 3. From each q_i create l_i by dividing q_i by q_i(x_i).
// 4. Finally, sum all l_i * y_i to get the polynomial.
func InterpolateAt(xs, ys []float64) (*Polynomial, error) {
	if err := validateInterpolationPoints(xs, ys); err != nil {
		return nil, err
	}

	miSlice := createMiSlice(xs)

	m := PolyProductMonicNegRoots(xs)

	liSlice := make([]*Polynomial, len(xs))
	for i, mi := range miSlice {
		qi := mDivMi(m, mi)

		// denominator of l_i: \prod_{j \ne i} (x_i - x_j)
		s := qi.Horner(xs[i])

		liSlice[i] = qi.MulScalar(ys[i] / s)
	}

	return similarDegreePolySum(liSlice), nil
}

// similarDegreePolySum sums polynomials of the same length.
func similarDegreePolySum(polys []*Polynomial) *Polynomial {
	inner := make([]float64, len(polys[0].inner))
	for _, poly := range polys {
		for i, coef := range poly.inner {
			inner[i] += coef
		}
	}

	return noCopy(inner)
}

// createMiSlice creates the m_i(x) = (x - x_i) polynomials.
func createMiSlice(xs []float64) []*Polynomial {
	miSlice := make([]*Polynomial, len(xs))
	for i, x := range xs {
		miSlice[i] = New(-x, 1)
	}

	return miSlice
}

/*
mDivMi divides m by mi. This is quicker than long division since mi is
monic of degree 1 and divides m exactly.
*/
func mDivMi(m, mi *Polynomial) *Polynomial {
	rem := m.Coefficients()
	qinner := make([]float64, len(rem)-1)
	ui := mi.inner[0]

	for i := len(rem) - 1; i > 0; i-- {
		qinner[i-1] = rem[i]
		// mi = x + ui, so remove ui * q from the remainder.
		rem[i-1] -= rem[i] * ui
	}

	return noCopy(qinner)
}

func validateInterpolationPoints(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return errPointsMismatch
	}

	if len(ys) < 2 {
		return errTooFewSamples
	}

	seen := make(map[float64]struct{}, len(xs))
	for _, x := range xs {
		seen[x] = struct{}{}
	}

	if len(seen) != len(xs) {
		return errNonUniqueXs
	}

	return nil
}
