package poly

// Builder is the mutable counterpart of Polynomial. A Polynomial never changes
// once built; edits go through a Builder and end with Build, which hands out
// a fresh copy so the builder can keep being reused.
type Builder struct {
	inner []float64
}

func NewBuilder(coeffs ...float64) *Builder {
	inner := make([]float64, len(coeffs))
	copy(inner, coeffs)

	return &Builder{inner: inner}
}

// Builder returns a builder seeded with the coefficients of p.
func (p *Polynomial) Builder() *Builder {
	return NewBuilder(p.inner...)
}

func (b *Builder) ensureLen(n int) {
	if len(b.inner) < n {
		tmp := make([]float64, n)
		copy(tmp, b.inner)
		b.inner = tmp
	}
}

// Set sets the coefficient of x^i, growing the representation as needed.
func (b *Builder) Set(i int, c float64) error {
	if i < 0 {
		return errNegativeIndex
	}

	b.ensureLen(i + 1)
	b.inner[i] = c

	return nil
}

// AddTo adds c to the coefficient of x^i.
func (b *Builder) AddTo(i int, c float64) error {
	if i < 0 {
		return errNegativeIndex
	}

	b.ensureLen(i + 1)
	b.inner[i] += c

	return nil
}

func (b *Builder) Len() int {
	return len(b.inner)
}

func (b *Builder) Build() *Polynomial {
	return NewPolynomial(b.inner)
}
