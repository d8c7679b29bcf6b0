package polyroots

import "errors"

var (
	// ErrUnsupportedDegree is returned by SolveRealRoots when the polynomial's
	// real order is above 4. Use FindRoots or SolveOrFindRealRoots instead.
	ErrUnsupportedDegree = errors.New("polyroots: no closed form above degree 4")

	// ErrInvalidInterval is returned for NaN bounds or min > max.
	ErrInvalidInterval = errors.New("polyroots: invalid interval")

	// ErrMaxIterations is returned alongside the last Durand-Kerner estimates
	// when the iteration cap is reached before convergence.
	ErrMaxIterations = errors.New("polyroots: durand-kerner did not converge")

	// ErrDiverged is returned when a Durand-Kerner estimate overflows to Inf
	// or NaN, typically for coefficients close to the float64 range.
	ErrDiverged = errors.New("polyroots: durand-kerner diverged")
)
