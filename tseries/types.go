// SPDX-License-Identifier: MIT

package tseries

import "golang.org/x/exp/constraints"

// Value is the set of observation types a TimeSeries can hold.
type Value interface {
	constraints.Integer | constraints.Float
}

// Date is the set of key types usable as a date buffer. Numeric timestamps
// (unix seconds, day numbers, fractional years) and ISO-formatted strings all
// qualify.
type Date interface {
	constraints.Ordered
}

// TimeSeries is a rows×cols matrix of observations with one date per row.
//
// data holds rows*cols values in row-major order: the value of column c on
// row r sits at data[r*cols+c]. data is nil exactly when rows*cols == 0 and
// dates is nil exactly when rows == 0. colnames is either empty or has
// exactly cols entries.
type TimeSeries[V Value, D Date] struct {
	rows, cols int      // dimensions
	data       []V      // flat row-major storage, len == rows*cols
	dates      []D      // one key per row, expected strictly ascending
	colnames   []string // len 0 or cols
}
