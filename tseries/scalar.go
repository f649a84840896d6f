// SPDX-License-Identifier: MIT

package tseries

// Scalar operators apply a constant to every value and keep dates and column
// names as they are. The operand is never modified.

// AddScalar returns x + v.
func AddScalar[V Value, D Date](x *TimeSeries[V, D], v V) (*TimeSeries[V, D], error) {
	return scalar("AddScalar", x, func(a V) (V, error) { return a + v, nil })
}

// SubScalar returns x - v.
func SubScalar[V Value, D Date](x *TimeSeries[V, D], v V) (*TimeSeries[V, D], error) {
	return scalar("SubScalar", x, func(a V) (V, error) { return a - v, nil })
}

// MulScalar returns x * v.
func MulScalar[V Value, D Date](x *TimeSeries[V, D], v V) (*TimeSeries[V, D], error) {
	return scalar("MulScalar", x, func(a V) (V, error) { return a * v, nil })
}

// DivScalar returns x / v. Integer series reject v == 0 with ErrDivideByZero.
func DivScalar[V Value, D Date](x *TimeSeries[V, D], v V) (*TimeSeries[V, D], error) {
	if v == 0 && !isFloat[V]() {
		return nil, seriesErrorf("DivScalar", ErrDivideByZero)
	}

	return scalar("DivScalar", x, func(a V) (V, error) { return a / v, nil })
}

// ApplyScalar returns a copy of x with fn applied to every value.
func ApplyScalar[V Value, D Date](x *TimeSeries[V, D], fn func(a V) V) (*TimeSeries[V, D], error) {
	return scalar("ApplyScalar", x, func(a V) (V, error) { return fn(a), nil })
}

// scalar clones x's shape, dates and names, then maps every value through fn
// in flat 0..n-1 order.
func scalar[V Value, D Date](op string, x *TimeSeries[V, D], fn func(a V) (V, error)) (*TimeSeries[V, D], error) {
	if x == nil {
		return nil, seriesErrorf(op, ErrNilSeries)
	}

	z := &TimeSeries[V, D]{
		rows:     x.rows,
		cols:     x.cols,
		dates:    cloneSlice(x.dates),
		colnames: cloneSlice(x.colnames),
	}
	if x.data != nil {
		z.data = make([]V, len(x.data))
		for i, a := range x.data {
			v, err := fn(a)
			if err != nil {
				return nil, seriesErrorf(op, err)
			}
			z.data[i] = v
		}
	}

	return z, nil
}
