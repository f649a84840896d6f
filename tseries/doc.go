// SPDX-License-Identifier: MIT

// Package tseries provides TimeSeries, a generic matrix of observations
// indexed by a sorted date buffer, and arithmetic that aligns two series on
// their common dates before combining them.
//
// What & Why:
//
//	A TimeSeries[V, D] owns three things: a row-major data buffer of
//	rows*cols values of type V, a date buffer of rows keys of type D, and an
//	optional list of column names. Loaders construct a series with known
//	dimensions, fill Data() and Dates() directly in ascending date order, and
//	then set column names. Binary operators (Add, Sub, Mul, Div, Apply) run
//	an align.RangeSpecifier over both date buffers and combine only the
//	matched rows, column by column.
//
// Usage:
//
//	x, _ := tseries.NewSized[float64, int64](100, 10)
//	y, _ := tseries.NewSized[float64, int64](10, 10)
//	// fill x.Data(), x.Dates(), y.Data(), y.Dates() ...
//	z, err := tseries.Add(x, y)
//	if err != nil {
//		// ErrColumnMismatch, ErrUnsortedDates, ErrNilSeries
//	}
//	z.NRow() // number of shared dates
//
// Ownership:
//
//	Each series is the only owner of its buffers. Clone deep-copies, Move
//	transfers the buffers and leaves the source empty, and every operator
//	allocates a fresh result without touching its operands.
//
// Concurrency:
//
//	A TimeSeries is not safe for concurrent mutation. Operators are
//	synchronous; WithWorkers spreads the per-column combine step of a single
//	call over several goroutines, the merge-join itself stays sequential.
package tseries
