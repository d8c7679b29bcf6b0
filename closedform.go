package polyroots

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/jonathanmweiss/go-polyroots/poly"
)

// SolveRealRoots returns the real roots of p analytically. The degree used is
// p's real order, so negligible leading coefficients do not count. A
// polynomial of real order above 4 fails with ErrUnsupportedDegree; an empty
// result means p has no real root.
//
// Roots come out in a fixed order per branch; callers should not rely on it
// being sorted.
func (s *Solver) SolveRealRoots(p *poly.Polynomial) ([]float64, error) {
	c := p.Coefficients()

	switch order := p.RealOrderWithin(s.eps); order {
	case 0:
		return nil, nil
	case 1:
		return []float64{-c[0] / c[1]}, nil
	case 2:
		return s.solveQuadratic(c[2], c[1], c[0]), nil
	case 3:
		return s.solveCubic(c[3], c[2], c[1], c[0]), nil
	case 4:
		return s.solveQuartic(c[4], c[3], c[2], c[1], c[0]), nil
	default:
		return nil, fmt.Errorf("%w: real order %d", ErrUnsupportedDegree, order)
	}
}

// solveQuadratic solves a x^2 + b x + c = 0. A double root is reported once.
func (s *Solver) solveQuadratic(a, b, c float64) []float64 {
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}

	sq := math.Sqrt(disc)

	roots := []float64{(-b - sq) / (2 * a)}
	if sq > s.eps {
		roots = append(roots, (-b+sq)/(2*a))
	}

	return roots
}

// solveCubic solves a3 x^3 + a2 x^2 + a1 x + a0 = 0 through the depressed
// cubic t^3 + p t + q = 0 with x = t - a/3.
func (s *Solver) solveCubic(a3, a2, a1, a0 float64) []float64 {
	a := a2 / a3
	b := a1 / a3
	c := a0 / a3

	offset := a / 3
	p := b - a*a/3
	q := 2*a*a*a/27 - a*b/3 + c

	if math.Abs(p) < s.eps {
		return []float64{-math.Cbrt(q) - offset}
	}

	if math.Abs(q) < s.eps {
		roots := []float64{-offset}
		if p < 0 {
			t := math.Sqrt(-p)
			roots = append(roots, t-offset, -t-offset)
		}

		return roots
	}

	disc := q*q/4 + p*p*p/27

	switch {
	case disc < -s.eps:
		// casus irreducibilis: three distinct real roots.
		r := math.Sqrt(-p / 3)
		phi := math.Acos(clamp(-q/(2*r*r*r), -1, 1))

		roots := make([]float64, 3)
		for k := range roots {
			roots[k] = 2*r*math.Cos((phi+2*math.Pi*float64(k))/3) - offset
		}

		return roots
	case math.Abs(disc) <= s.eps:
		half := math.Cbrt(q / 2)
		return []float64{-2*half - offset, half - offset}
	default:
		sd := math.Sqrt(disc)
		u := math.Cbrt(-q/2 + sd)
		v := math.Cbrt(-q/2 - sd)

		return []float64{u + v - offset}
	}
}

// solveQuartic solves a4 x^4 + ... + a0 = 0 through the depressed quartic
// y^4 + p y^2 + q y + r = 0 with x = y - b/4.
func (s *Solver) solveQuartic(a4, a3, a2, a1, a0 float64) []float64 {
	b := a3 / a4
	c := a2 / a4
	d := a1 / a4
	e := a0 / a4

	offset := b / 4
	b2 := b * b
	p := c - 3*b2/8
	q := b2*b/8 - b*c/2 + d
	r := -3*b2*b2/256 + c*b2/16 - b*d/4 + e

	var roots []float64

	if math.Abs(q) <= s.eps {
		// biquadratic: z = y^2, z^2 + p z + r = 0.
		for _, z := range s.solveQuadratic(1, p, r) {
			switch {
			case z < -s.eps:
				continue
			case z <= s.eps:
				roots = append(roots, -offset)
			default:
				sz := math.Sqrt(z)
				roots = append(roots, sz-offset, -sz-offset)
			}
		}

		return roots
	}

	// The first resolvent root, in solveCubic order, with p + 2m > 0 splits
	// the quartic into two real quadratics.
	resolvent := s.solveCubic(1, 5*p/2, 2*p*p-r, p*p*p/2-p*r/2-q*q/8)

	m, found := 0.0, false
	for _, candidate := range resolvent {
		if p+2*candidate > s.eps {
			m, found = candidate, true
			break
		}
	}

	if !found {
		return nil
	}

	sq := math.Sqrt(p + 2*m)
	for _, y := range s.solveQuadratic(1, sq, p+m-q/(2*sq)) {
		roots = append(roots, y-offset)
	}

	for _, y := range s.solveQuadratic(1, -sq, p+m+q/(2*sq)) {
		roots = append(roots, y-offset)
	}

	return roots
}

func clamp[T constraints.Float](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
