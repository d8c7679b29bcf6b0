package polyroots

import (
	"math"

	"github.com/jonathanmweiss/go-polyroots/poly"
)

// Numeric policy defaults. Every Solver starts from these values.
const (
	// DefaultEpsilon is the threshold for "equal to zero" comparisons: trimming
	// negligible coefficients, branch selection in the closed-form solver,
	// Durand-Kerner convergence and the imaginary-part filter.
	DefaultEpsilon = poly.DefaultEpsilon

	// DefaultTolerance is the |p(x)| under which bisection accepts x as a root.
	DefaultTolerance = 1e-9

	// DefaultAccuracy is the number of decimal digits bisection narrows the
	// bracket to.
	DefaultAccuracy = 12

	// DefaultMaxIterations caps the Durand-Kerner loop.
	DefaultMaxIterations = 1000
)

const (
	panicEpsilonInvalid   = "polyroots: WithEpsilon: eps must be finite, non-negative"
	panicToleranceInvalid = "polyroots: WithTolerance: tol must be finite, non-negative"
	panicAccuracyInvalid  = "polyroots: WithAccuracy: digits must be > 0"
	panicMaxIterInvalid   = "polyroots: WithMaxIterations: n must be > 0"
)

// Option mutates Options. Constructors panic on nonsensical values.
type Option func(*Options)

// Options is the effective numeric policy of a Solver.
type Options struct {
	eps      float64
	tol      float64
	accuracy int
	maxIter  int
	cache    bool
}

func defaultOptions() Options {
	return Options{
		eps:      DefaultEpsilon,
		tol:      DefaultTolerance,
		accuracy: DefaultAccuracy,
		maxIter:  DefaultMaxIterations,
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func (o Options) Epsilon() float64   { return o.eps }
func (o Options) Tolerance() float64 { return o.tol }
func (o Options) Accuracy() int      { return o.accuracy }
func (o Options) MaxIterations() int { return o.maxIter }

func finiteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func WithEpsilon(eps float64) Option {
	if !finiteNonNegative(eps) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

func WithTolerance(tol float64) Option {
	if !finiteNonNegative(tol) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithAccuracy sets how many decimal digits bisection resolves.
func WithAccuracy(digits int) Option {
	if digits <= 0 {
		panic(panicAccuracyInvalid)
	}

	return func(o *Options) { o.accuracy = digits }
}

func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithRootCache memoises FindRoots results per normalized polynomial.
func WithRootCache() Option {
	return func(o *Options) { o.cache = true }
}
