package polyroots

import (
	"context"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/jonathanmweiss/go-polyroots/poly"
)

// Convergence tells whether Durand-Kerner settled before the iteration cap.
type Convergence int

const (
	Converged Convergence = iota
	MaxIterationsExceeded
	Cancelled
	Diverged
)

func (c Convergence) String() string {
	switch c {
	case Converged:
		return "converged"
	case MaxIterationsExceeded:
		return "max iterations exceeded"
	case Cancelled:
		return "cancelled"
	case Diverged:
		return "diverged"
	default:
		return fmt.Sprintf("Convergence(%d)", int(c))
	}
}

// ComplexRoots is the outcome of FindRoots.
type ComplexRoots struct {
	// Roots holds one estimate per degree of the normalized polynomial,
	// multiple roots included.
	Roots      []complex128
	Status     Convergence
	Iterations int
}

func (r ComplexRoots) clone() ComplexRoots {
	roots := make([]complex128, len(r.Roots))
	copy(roots, r.Roots)
	r.Roots = roots

	return r
}

// seedStep spreads the initial guesses along a spiral, 1, w, w^2, ...,
// so no two seeds share a symmetric position.
const seedStep = complex(0.4, 0.9)

// FindRoots returns every complex root of p using the Durand-Kerner
// (Weierstrass) iteration. See FindRootsContext.
func (s *Solver) FindRoots(p *poly.Polynomial) (ComplexRoots, error) {
	return s.FindRootsContext(context.Background(), p)
}

// FindRootsContext normalizes p to a monic polynomial and refines all root
// estimates simultaneously until no estimate moves by more than Epsilon in
// either its real or imaginary part.
//
// When MaxIterations is reached first the last estimates are returned with
// Status MaxIterationsExceeded and an error wrapping ErrMaxIterations. A
// cancelled context stops the iteration with Status Cancelled and ctx.Err().
// An estimate that overflows to Inf or NaN stops it with Status Diverged and
// an error wrapping ErrDiverged.
func (s *Solver) FindRootsContext(ctx context.Context, p *poly.Polynomial) (ComplexRoots, error) {
	monic := p.NormalizeWithin(s.eps)

	var key digest
	if s.cache != nil {
		key = fingerprint(monic)
		if res, ok := s.cache.loadRoots(key); ok {
			return res, nil
		}
	}

	res, err := s.durandKerner(ctx, monic)
	if err != nil {
		return res, err
	}

	if s.cache != nil {
		s.cache.storeRoots(key, res)
	}

	return res, nil
}

func (s *Solver) durandKerner(ctx context.Context, monic *poly.Polynomial) (ComplexRoots, error) {
	n := monic.Degree()
	if n < 1 {
		return ComplexRoots{Status: Converged}, nil
	}

	z := make([]complex128, n)
	seed := complex(1, 0)
	for i := range z {
		z[i] = seed
		seed *= seedStep
	}

	next := make([]complex128, n)

	for iter := 1; iter <= s.maxIter; iter++ {
		if err := ctx.Err(); err != nil {
			return ComplexRoots{Roots: z, Status: Cancelled, Iterations: iter - 1}, err
		}

		for i, zi := range z {
			denom := complex(1, 0)
			for j, zj := range z {
				if j != i {
					denom *= zi - zj
				}
			}

			next[i] = zi - monic.ComputeComplex(zi)/denom
		}

		for i, zi := range next {
			if cmplx.IsNaN(zi) || cmplx.IsInf(zi) {
				return ComplexRoots{Roots: next, Status: Diverged, Iterations: iter},
					fmt.Errorf("%w: estimate %d is %v after %d iterations", ErrDiverged, i, zi, iter)
			}
		}

		converged := true
		for i := range z {
			d := next[i] - z[i]
			if !(math.Abs(real(d)) <= s.eps && math.Abs(imag(d)) <= s.eps) {
				converged = false
				break
			}
		}

		z, next = next, z

		if converged {
			return ComplexRoots{Roots: z, Status: Converged, Iterations: iter}, nil
		}
	}

	return ComplexRoots{Roots: z, Status: MaxIterationsExceeded, Iterations: s.maxIter},
		fmt.Errorf("%w after %d iterations", ErrMaxIterations, s.maxIter)
}
