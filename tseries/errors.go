// SPDX-License-Identifier: MIT
// Package tseries: sentinel error set.
// Every operation returns one of these, possibly wrapped with the operation
// name; callers match with errors.Is.

package tseries

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when requested dimensions are negative or
	// rows*cols overflows int.
	ErrBadShape = errors.New("tseries: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("tseries: index out of range")

	// ErrNilSeries indicates that a nil *TimeSeries was passed to an operator.
	ErrNilSeries = errors.New("tseries: nil series")

	// ErrColnamesLength indicates that the number of column names differs
	// from the number of columns. The series is left unchanged.
	ErrColnamesLength = errors.New("tseries: column names length mismatch")

	// ErrColumnMismatch indicates that the operands of a binary operator
	// have different column counts.
	ErrColumnMismatch = errors.New("tseries: column count mismatch")

	// ErrUnsortedDates indicates that a date buffer is not strictly ascending
	// (Validate) or not ascending at all (operators).
	ErrUnsortedDates = errors.New("tseries: dates are not sorted ascending")

	// ErrDivideByZero is returned by integer division when a divisor is zero.
	// Floating-point division follows IEEE 754 instead.
	ErrDivideByZero = errors.New("tseries: integer division by zero")
)

// seriesErrorf wraps err with the operation tag.
func seriesErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexErrorf wraps ErrOutOfRange with the offending coordinates.
func indexErrorf(method string, row, col int) error {
	return fmt.Errorf("TimeSeries.%s(%d,%d): %w", method, row, col, ErrOutOfRange)
}
