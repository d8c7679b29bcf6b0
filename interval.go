package polyroots

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/jonathanmweiss/go-polyroots/poly"
)

// Bisection looks for a root of p in [min, max]. An endpoint whose value is
// within Tolerance is returned as is. Otherwise the bracket must show a sign
// change, and is then halved a fixed number of times derived from Accuracy,
// stopping early when the midpoint value drops within Tolerance.
// ok is false when no root was found, which is not an error.
func (s *Solver) Bisection(p *poly.Polynomial, min, max float64) (root float64, ok bool, err error) {
	if err := validInterval(min, max); err != nil {
		return 0, false, err
	}

	root, ok = s.bisection(p, min, max)

	return root, ok, nil
}

func (s *Solver) bisection(p *poly.Polynomial, min, max float64) (float64, bool) {
	minValue := p.Horner(min)
	maxValue := p.Horner(max)

	switch {
	case math.Abs(minValue) <= s.tol:
		return min, true
	case math.Abs(maxValue) <= s.tol:
		return max, true
	case minValue*maxValue > 0 || max <= min:
		return 0, false
	}

	iters := int(math.Ceil((math.Log(max-min) + math.Ln10*float64(s.accuracy)) / math.Ln2))

	var result float64
	found := false

	for i := 0; i < iters; i++ {
		result = 0.5 * (min + max)
		found = true

		value := p.Horner(result)
		if math.Abs(value) <= s.tol {
			break
		}

		if value*minValue < 0 {
			max = result
		} else {
			min = result
			minValue = value
		}
	}

	return result, found
}

// RootsInInterval returns the real roots of p in [min, max] in ascending
// order. The interval is split at the roots of p' (found recursively), p is
// monotonic on every piece, and each piece is bisected once.
//
// Coefficients above p's real order are dropped first, so a polynomial whose
// coefficients are all within Epsilon of zero has no roots.
func (s *Solver) RootsInInterval(p *poly.Polynomial, min, max float64) ([]float64, error) {
	if err := validInterval(min, max); err != nil {
		return nil, err
	}

	return s.rootsInInterval(p, min, max), nil
}

func (s *Solver) rootsInInterval(p *poly.Polynomial, min, max float64) []float64 {
	p = p.Trim(s.eps)

	var roots []float64

	collect := func(lo, hi float64) {
		r, ok := s.bisection(p, lo, hi)
		if !ok {
			return
		}

		// adjacent pieces share an endpoint; a root sitting on it is found twice.
		if n := len(roots); n > 0 && roots[n-1] == r {
			return
		}

		roots = append(roots, r)
	}

	switch p.Degree() {
	case 0:
		return nil
	case 1:
		collect(min, max)
		return roots
	}

	droots := s.rootsInInterval(p.Derivate(), min, max)
	if len(droots) == 0 {
		collect(min, max)
		return roots
	}

	collect(min, droots[0])
	for i := 0; i+1 < len(droots); i++ {
		collect(droots[i], droots[i+1])
	}
	collect(droots[len(droots)-1], max)

	return roots
}

// GetMinMax bounds p on [x0, x1]: the extrema are taken over both endpoints
// and every critical point inside the interval.
func (s *Solver) GetMinMax(p *poly.Polynomial, x0, x1 float64) (lo, hi float64, err error) {
	if err := validInterval(x0, x1); err != nil {
		return 0, 0, err
	}

	xs := append([]float64{x0, x1}, s.rootsInInterval(p.Derivate(), x0, x1)...)

	values := make(stats.Float64Data, len(xs))
	for i, x := range xs {
		values[i] = p.Horner(x)
	}

	if lo, err = stats.Min(values); err != nil {
		return 0, 0, err
	}

	if hi, err = stats.Max(values); err != nil {
		return 0, 0, err
	}

	return lo, hi, nil
}
