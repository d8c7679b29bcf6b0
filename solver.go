package polyroots

import (
	"fmt"
	"math"

	"github.com/jonathanmweiss/go-polyroots/poly"
)

// Solver finds roots of polynomials under a fixed numeric policy.
// A Solver is safe for concurrent use; it never modifies the polynomials it is
// given.
type Solver struct {
	Options
	cache *rootCache
}

func NewSolver(opts ...Option) *Solver {
	o := gatherOptions(opts...)

	s := &Solver{Options: o}
	if o.cache {
		s.cache = newRootCache()
	}

	return s
}

// Copy returns a solver with the same policy and an empty cache.
func (s *Solver) Copy() *Solver {
	cpy := &Solver{Options: s.Options}
	if s.cache != nil {
		cpy.cache = newRootCache()
	}

	return cpy
}

// CanSolveRealRoots reports whether SolveRealRoots has a closed form for p.
func (s *Solver) CanSolveRealRoots(p *poly.Polynomial) bool {
	return p.RealOrderWithin(s.eps) <= 4
}

// SolveOrFindRealRoots uses the closed form when there is one and otherwise
// keeps the Durand-Kerner roots whose imaginary part is below Epsilon.
//
// The two paths differ in precision: closed-form roots are analytic, the
// iterative ones are only as good as the convergence threshold. When the
// iteration cap is hit the filtered estimates are still returned together
// with ErrMaxIterations.
func (s *Solver) SolveOrFindRealRoots(p *poly.Polynomial) ([]float64, error) {
	if s.CanSolveRealRoots(p) {
		return s.SolveRealRoots(p)
	}

	res, err := s.FindRoots(p)

	var roots []float64
	for _, z := range res.Roots {
		if math.Abs(imag(z)) < s.eps {
			roots = append(roots, real(z))
		}
	}

	return roots, err
}

func validInterval(min, max float64) error {
	if math.IsNaN(min) || math.IsNaN(max) || min > max {
		return fmt.Errorf("%w: [%v, %v]", ErrInvalidInterval, min, max)
	}

	return nil
}
