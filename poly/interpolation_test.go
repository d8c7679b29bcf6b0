package poly

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonomialQuickDiv(t *testing.T) {
	a := assert.New(t)

	xs := []float64{1, 2, 3, 4}
	m := PolyProductMonicNegRoots(xs)

	for i, mi := range createMiSlice(xs) {
		q := mDivMi(m, mi)

		others := make([]float64, 0, len(xs)-1)
		others = append(others, xs[:i]...)
		others = append(others, xs[i+1:]...)

		a.True(q.Equals(PolyProductMonicNegRoots(others)), "m / (x - %v)", xs[i])
		a.True(q.Mul(mi).Equals(m))
	}
}

func TestInterpolation(t *testing.T) {
	a := assert.New(t)

	t.Run("squares", func(t *testing.T) {
		ys := []float64{1, 4, 9, 16}

		p, err := Interpolate(ys)
		a.NoError(err)
		a.Equal(3, p.Degree())

		for i, y := range ys {
			a.InDelta(y, p.Compute(float64(i)), 1e-9)
		}

		// (x+1)^2
		a.InDeltaSlice([]float64{1, 2, 1, 0}, p.Coefficients(), 1e-9)
	})

	t.Run("arbitraryPoints", func(t *testing.T) {
		xs := []float64{-2, 0.5, 3, 7}
		want := Cubic(0.5, -1, 2, 3)

		ys := make([]float64, len(xs))
		for i, x := range xs {
			ys[i] = want.Compute(x)
		}

		p, err := InterpolateAt(xs, ys)
		a.NoError(err)
		a.InDeltaSlice(want.Coefficients(), p.Coefficients(), 1e-9)
	})

	t.Run("badInput", func(t *testing.T) {
		_, err := Interpolate([]float64{1})
		a.ErrorIs(err, ErrInvalidInput)

		_, err = Interpolate(nil)
		a.ErrorIs(err, ErrInvalidInput)

		_, err = InterpolateAt([]float64{1, 2}, []float64{1, 2, 3})
		a.ErrorIs(err, ErrInvalidInput)

		_, err = InterpolateAt([]float64{1, 2, 1}, []float64{1, 2, 3})
		a.ErrorIs(err, ErrInvalidInput)
	})
}

func FuzzInterpolation(f *testing.F) {
	f.Add(1.0, -2.0, 0.5, 3.0, 2)
	f.Add(0.0, 0.0, 0.0, 1.0, 3)
	f.Add(-4.0, 7.0, 1.25, -0.75, 4)

	f.Fuzz(func(t *testing.T, c0, c1, c2, c3 float64, extra int) {
		for _, c := range []float64{c0, c1, c2, c3} {
			if math.IsNaN(c) || math.Abs(c) > 100 {
				t.Skip()
			}
		}

		if extra < 0 || extra > 4 {
			t.Skip()
		}

		p := New(c0, c1, c2, c3)

		// oversampling pads the result with near-zero coefficients.
		ys := make([]float64, 4+extra)
		for i := range ys {
			ys[i] = p.Compute(float64(i))
		}

		q, err := Interpolate(ys)
		if err != nil {
			t.Fatal(err)
		}

		for i, y := range ys {
			if diff := math.Abs(q.Compute(float64(i)) - y); diff > 1e-6*math.Max(1, math.Abs(y)) {
				t.Fatalf("P(%d) = %v, want %v", i, q.Compute(float64(i)), y)
			}
		}
	})
}

var benchInterpolationSink *Polynomial // avoid DCE

func BenchmarkInterpolation(b *testing.B) {
	for _, n := range []int{4, 8, 16} {
		p := PolyProductMonicNegRoots(makeRoots(n - 1))

		ys := make([]float64, n)
		for i := range ys {
			ys[i] = p.Compute(float64(i))
		}

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			var q *Polynomial
			for i := 0; i < b.N; i++ {
				q, _ = Interpolate(ys)
			}
			b.StopTimer()
			benchInterpolationSink = q
		})
	}
}
