// SPDX-License-Identifier: MIT

package tseries

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/tslib/align"
	"golang.org/x/sync/errgroup"
)

// Operation tags used in error wrapping and log records.
const (
	opAdd   = "Add"
	opSub   = "Sub"
	opMul   = "Mul"
	opDiv   = "Div"
	opApply = "Apply"
)

// combineFunc merges one value of each operand. A non-nil error aborts the
// whole operation.
type combineFunc[V Value] func(a, b V) (V, error)

// Add returns x + y on the dates present in both operands.
// See Apply for the alignment contract.
func Add[V Value, D Date](x, y *TimeSeries[V, D], opts ...Option) (*TimeSeries[V, D], error) {
	return aligned(opAdd, x, y, func(a, b V) (V, error) { return a + b, nil }, opts...)
}

// Sub returns x - y on the dates present in both operands.
func Sub[V Value, D Date](x, y *TimeSeries[V, D], opts ...Option) (*TimeSeries[V, D], error) {
	return aligned(opSub, x, y, func(a, b V) (V, error) { return a - b, nil }, opts...)
}

// Mul returns x * y on the dates present in both operands.
func Mul[V Value, D Date](x, y *TimeSeries[V, D], opts ...Option) (*TimeSeries[V, D], error) {
	return aligned(opMul, x, y, func(a, b V) (V, error) { return a * b, nil }, opts...)
}

// Div returns x / y on the dates present in both operands.
//
// For integer value types a zero divisor on any matched row fails the call
// with ErrDivideByZero. Floating-point types follow IEEE 754 (±Inf, NaN).
func Div[V Value, D Date](x, y *TimeSeries[V, D], opts ...Option) (*TimeSeries[V, D], error) {
	return aligned(opDiv, x, y, divide[V], opts...)
}

// Apply combines x and y with fn on the dates present in both operands.
//
// Implementation:
//   - Stage 1 (Validate): both operands non-nil with equal column counts.
//   - Stage 2 (Align): align.New over x.Dates() and y.Dates().
//   - Stage 3 (Prepare): allocate z with Size() rows and the shared column
//     count; z's date k is x's date at Indices1()[k].
//   - Stage 4 (Execute): z[k][c] = fn(x[Indices1()[k]][c], y[Indices2()[k]][c]).
//
// Behavior highlights:
//   - Column names come from x when set, otherwise from y, otherwise none.
//   - An empty intersection is a valid zero-row result, not an error.
//   - Operands are never modified.
//
// Errors:
//   - ErrNilSeries, ErrColumnMismatch.
//   - ErrUnsortedDates (also matching align.ErrUnsortedKeys) when the order
//     check is on and a date buffer descends.
//
// Complexity:
//   - Time O(xn + yn + size*cols), Space O(size*cols).
func Apply[V Value, D Date](x, y *TimeSeries[V, D], fn func(a, b V) V, opts ...Option) (*TimeSeries[V, D], error) {
	return aligned(opApply, x, y, func(a, b V) (V, error) { return fn(a, b), nil }, opts...)
}

// aligned is the shared body of every binary operator.
func aligned[V Value, D Date](op string, x, y *TimeSeries[V, D], fn combineFunc[V], opts ...Option) (*TimeSeries[V, D], error) {
	if x == nil || y == nil {
		return nil, seriesErrorf(op, ErrNilSeries)
	}
	if x.cols != y.cols {
		return nil, fmt.Errorf("%s: %d vs %d columns: %w", op, x.cols, y.cols, ErrColumnMismatch)
	}

	o := gatherOptions(opts...)
	rs, err := align.New(x.dates, y.dates, align.WithOrderCheck(o.orderCheck))
	if err != nil {
		if errors.Is(err, align.ErrUnsortedKeys) {
			return nil, fmt.Errorf("%s: %w: %w", op, ErrUnsortedDates, err)
		}

		return nil, seriesErrorf(op, err)
	}

	z, err := NewSized[V, D](rs.Size(), x.cols)
	if err != nil {
		return nil, seriesErrorf(op, err)
	}
	i1, i2 := rs.Indices1(), rs.Indices2()
	for k, i := range i1 {
		z.dates[k] = x.dates[i]
	}
	switch {
	case len(x.colnames) > 0:
		z.colnames = cloneSlice(x.colnames)
	case len(y.colnames) > 0:
		z.colnames = cloneSlice(y.colnames)
	}

	if o.workers > 1 && z.cols > 1 && z.rows > 0 {
		err = combineParallel(z, x, y, i1, i2, fn, o.workers)
	} else {
		err = combineSequential(z, x, y, i1, i2, fn)
	}
	if err != nil {
		return nil, seriesErrorf(op, err)
	}

	o.logger.Debug("aligned operation",
		slog.String("op", op),
		slog.Int("x_rows", x.rows),
		slog.Int("y_rows", y.rows),
		slog.Int("matched", z.rows),
		slog.Int("cols", z.cols),
		slog.Int("workers", o.workers),
	)
	if z.rows == 0 && x.rows > 0 && y.rows > 0 {
		o.logger.Warn("aligned operation has no common dates", slog.String("op", op))
	}

	return z, nil
}

// combineSequential fills z row by row in fixed k→c order.
func combineSequential[V Value, D Date](z, x, y *TimeSeries[V, D], i1, i2 []int, fn combineFunc[V]) error {
	c := z.cols
	for k := range i1 {
		zb, xb, yb := k*c, i1[k]*c, i2[k]*c // row base offsets
		for col := 0; col < c; col++ {
			v, err := fn(x.data[xb+col], y.data[yb+col])
			if err != nil {
				return fmt.Errorf("row %d col %d: %w", k, col, err)
			}
			z.data[zb+col] = v
		}
	}

	return nil
}

// combineParallel fills z one column per task with at most workers tasks in
// flight. Tasks write disjoint cells of z.data.
func combineParallel[V Value, D Date](z, x, y *TimeSeries[V, D], i1, i2 []int, fn combineFunc[V], workers int) error {
	var g errgroup.Group
	g.SetLimit(workers)

	c := z.cols
	for col := 0; col < c; col++ {
		col := col
		g.Go(func() error {
			for k := range i1 {
				v, err := fn(x.data[i1[k]*c+col], y.data[i2[k]*c+col])
				if err != nil {
					return fmt.Errorf("row %d col %d: %w", k, col, err)
				}
				z.data[k*c+col] = v
			}

			return nil
		})
	}

	return g.Wait()
}

// divide is the Div kernel; integer zero divisors are reported instead of
// panicking.
func divide[V Value](a, b V) (V, error) {
	if b == 0 && !isFloat[V]() {
		return 0, ErrDivideByZero
	}

	return a / b, nil
}

// isFloat reports whether V is a floating-point type, including named types
// whose underlying type is float32 or float64.
func isFloat[V Value]() bool {
	var one V = 1

	return one/2 != 0
}
