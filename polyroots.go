/*
Package polyroots finds the roots of real polynomials built with package poly.

Three strategies are offered, with different costs and guarantees:
  - SolveRealRoots: closed-form real roots up to degree 4.
  - FindRoots: all complex roots of any degree, by Durand-Kerner iteration
    capped at MaxIterations.
  - RootsInInterval: real roots inside [min, max] by bisection between the
    critical points of the polynomial.

SolveOrFindRealRoots picks the closed form when it exists and falls back to
FindRoots otherwise.

The numeric policy (Epsilon, Tolerance, Accuracy, MaxIterations) lives in a
Solver configured with options. The package-level functions use a Solver with
the default policy.
*/
package polyroots

import (
	"context"

	"github.com/jonathanmweiss/go-polyroots/poly"
)

func CanSolveRealRoots(p *poly.Polynomial) bool {
	return NewSolver().CanSolveRealRoots(p)
}

func SolveRealRoots(p *poly.Polynomial) ([]float64, error) {
	return NewSolver().SolveRealRoots(p)
}

func FindRoots(p *poly.Polynomial) (ComplexRoots, error) {
	return NewSolver().FindRoots(p)
}

func FindRootsContext(ctx context.Context, p *poly.Polynomial) (ComplexRoots, error) {
	return NewSolver().FindRootsContext(ctx, p)
}

func SolveOrFindRealRoots(p *poly.Polynomial) ([]float64, error) {
	return NewSolver().SolveOrFindRealRoots(p)
}

func RootsInInterval(p *poly.Polynomial, min, max float64) ([]float64, error) {
	return NewSolver().RootsInInterval(p, min, max)
}

func Bisection(p *poly.Polynomial, min, max float64) (float64, bool, error) {
	return NewSolver().Bisection(p, min, max)
}

func GetMinMax(p *poly.Polynomial, x0, x1 float64) (float64, float64, error) {
	return NewSolver().GetMinMax(p, x0, x1)
}
