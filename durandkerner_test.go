package polyroots

import (
	"context"
	"fmt"
	"math/cmplx"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathanmweiss/go-polyroots/poly"
)

func sortedReal(roots []complex128) []float64 {
	out := make([]float64, len(roots))
	for i, z := range roots {
		out[i] = real(z)
	}

	sort.Float64s(out)

	return out
}

func TestFindRoots(t *testing.T) {
	t.Run("realRoots", func(t *testing.T) {
		a := assert.New(t)

		p := poly.PolyProductMonicNegRoots([]float64{1, 2, 3, 4, 5})

		res, err := FindRoots(p)
		require.NoError(t, err)
		a.Equal(Converged, res.Status)
		a.Len(res.Roots, p.Degree())
		a.Greater(res.Iterations, 0)

		for _, z := range res.Roots {
			a.InDelta(0, cmplx.Abs(p.ComputeComplex(z)), 1e-6, "p(%v)", z)
			a.InDelta(0, imag(z), 1e-9)
		}

		if diff := cmp.Diff([]float64{1, 2, 3, 4, 5}, sortedReal(res.Roots), rootSet(1e-9)); diff != "" {
			t.Errorf("roots mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("complexRoots", func(t *testing.T) {
		a := assert.New(t)

		res, err := FindRoots(poly.Quadratic(1, 0, 1))
		require.NoError(t, err)
		a.Len(res.Roots, 2)

		ims := []float64{imag(res.Roots[0]), imag(res.Roots[1])}
		if diff := cmp.Diff([]float64{-1, 1}, ims, rootSet(1e-9)); diff != "" {
			t.Errorf("imaginary parts mismatch (-want +got):\n%s", diff)
		}

		for _, z := range res.Roots {
			a.InDelta(0, real(z), 1e-9)
		}
	})

	t.Run("notMonic", func(t *testing.T) {
		a := assert.New(t)

		// 3x^3 - 3 has the cube roots of unity as roots.
		p := poly.Cubic(3, 0, 0, -3)

		res, err := FindRoots(p)
		require.NoError(t, err)
		a.Len(res.Roots, 3)

		for _, z := range res.Roots {
			a.InDelta(1, cmplx.Abs(z), 1e-9)
			a.InDelta(0, cmplx.Abs(p.ComputeComplex(z)), 1e-8)
		}
	})

	t.Run("negligibleLeadingTerm", func(t *testing.T) {
		res, err := FindRoots(poly.New(-2, 1, 0, 1e-13))
		require.NoError(t, err)
		require.Len(t, res.Roots, 1)
		assert.InDelta(t, 2, real(res.Roots[0]), 1e-12)
	})

	t.Run("overflowDiverges", func(t *testing.T) {
		for _, p := range []*poly.Polynomial{
			poly.Quadratic(1, 0, 1e300),
			poly.Cubic(1, 0, 0, 1e200),
		} {
			s := NewSolver(WithRootCache())

			res, err := s.FindRoots(p)
			assert.ErrorIs(t, err, ErrDiverged, "%v", p)
			assert.Equal(t, Diverged, res.Status)
			assert.NotEqual(t, Converged, res.Status)
			assert.Equal(t, 0, s.cache.len())
		}
	})

	t.Run("constant", func(t *testing.T) {
		res, err := FindRoots(poly.Constant(4))
		require.NoError(t, err)
		assert.Equal(t, Converged, res.Status)
		assert.Empty(t, res.Roots)
	})
}

func TestFindRootsMaxIterations(t *testing.T) {
	a := assert.New(t)

	s := NewSolver(WithMaxIterations(1))
	p := poly.PolyProductMonicNegRoots([]float64{1, 2, 3, 4, 5})

	res, err := s.FindRoots(p)
	a.ErrorIs(err, ErrMaxIterations)
	a.Equal(MaxIterationsExceeded, res.Status)
	a.Equal(1, res.Iterations)
	a.Len(res.Roots, 5)
}

func TestFindRootsContextCancelled(t *testing.T) {
	a := assert.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := FindRootsContext(ctx, poly.Cubic(1, -6, 11, -6))
	a.ErrorIs(err, context.Canceled)
	a.Equal(Cancelled, res.Status)
	a.Equal(0, res.Iterations)
	a.Len(res.Roots, 3)
}

func TestConvergenceString(t *testing.T) {
	a := assert.New(t)

	a.Equal("converged", Converged.String())
	a.Equal("max iterations exceeded", MaxIterationsExceeded.String())
	a.Equal("cancelled", Cancelled.String())
	a.Equal("diverged", Diverged.String())
	a.Equal("Convergence(7)", Convergence(7).String())
}

func TestSolveOrFindRealRoots(t *testing.T) {
	t.Run("closedForm", func(t *testing.T) {
		got, err := SolveOrFindRealRoots(poly.Cubic(1, -6, 11, -6))
		require.NoError(t, err)

		if diff := cmp.Diff([]float64{1, 2, 3}, got, rootSet(1e-9)); diff != "" {
			t.Errorf("roots mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("iterative", func(t *testing.T) {
		// (x^2 + 1)(x - 1)(x - 2)(x - 3)
		p := poly.Quadratic(1, 0, 1).Mul(poly.PolyProductMonicNegRoots([]float64{1, 2, 3}))
		require.Equal(t, 5, p.Degree())

		got, err := SolveOrFindRealRoots(p)
		require.NoError(t, err)

		if diff := cmp.Diff([]float64{1, 2, 3}, got, rootSet(1e-9)); diff != "" {
			t.Errorf("roots mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("overflowIsReported", func(t *testing.T) {
		_, err := SolveOrFindRealRoots(poly.Quintic(1, 0, 0, 0, 0, 1e300))
		assert.ErrorIs(t, err, ErrDiverged)
	})

	t.Run("capReached", func(t *testing.T) {
		s := NewSolver(WithMaxIterations(2))
		p := poly.PolyProductMonicNegRoots([]float64{1, 2, 3, 4, 5, 6})

		_, err := s.SolveOrFindRealRoots(p)
		assert.ErrorIs(t, err, ErrMaxIterations)
	})
}

var benchRootsSink ComplexRoots // avoid DCE

func BenchmarkFindRoots(b *testing.B) {
	for _, n := range []int{5, 10, 20} {
		roots := make([]float64, n)
		for i := range roots {
			roots[i] = float64(i+1) / float64(n)
		}

		p := poly.PolyProductMonicNegRoots(roots)
		s := NewSolver()

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			var res ComplexRoots
			for i := 0; i < b.N; i++ {
				res, _ = s.FindRoots(p)
			}
			b.StopTimer()
			benchRootsSink = res
		})
	}
}
