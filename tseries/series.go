// SPDX-License-Identifier: MIT

package tseries

import (
	"fmt"
	"math"
	"strings"
)

// New returns an empty series: zero rows, zero columns, nil buffers and no
// column names.
func New[V Value, D Date]() *TimeSeries[V, D] {
	return &TimeSeries[V, D]{}
}

// NewSized allocates a rows×cols series with zero-valued data and dates.
// Column names start empty.
//
// Implementation:
//   - Stage 1 (Validate): rows, cols ≥ 0 and rows*cols fits in int.
//   - Stage 2 (Prepare): allocate data (rows*cols) and dates (rows); a zero
//     extent leaves the matching buffer nil.
//
// Errors:
//   - ErrBadShape on negative or overflowing dimensions.
//
// Complexity: O(rows*cols) time and memory.
func NewSized[V Value, D Date](rows, cols int) (*TimeSeries[V, D], error) {
	if rows < 0 || cols < 0 {
		return nil, seriesErrorf(fmt.Sprintf("NewSized(%d,%d)", rows, cols), ErrBadShape)
	}
	if rows > 0 && cols > math.MaxInt/rows {
		return nil, seriesErrorf(fmt.Sprintf("NewSized(%d,%d)", rows, cols), ErrBadShape)
	}

	s := &TimeSeries[V, D]{rows: rows, cols: cols}
	if n := rows * cols; n > 0 {
		s.data = make([]V, n)
	}
	if rows > 0 {
		s.dates = make([]D, rows)
	}

	return s, nil
}

// NRow returns the number of rows (dates).
func (s *TimeSeries[V, D]) NRow() int {
	return s.rows
}

// NCol returns the number of columns.
func (s *TimeSeries[V, D]) NCol() int {
	return s.cols
}

// Data returns the owned row-major value buffer, or nil when NRow()*NCol()
// is zero. Writes through the returned slice modify the series; this is how
// loaders populate a series in bulk.
func (s *TimeSeries[V, D]) Data() []V {
	return s.data
}

// Dates returns the owned date buffer, or nil when NRow() is zero.
// Writes through the returned slice modify the series.
func (s *TimeSeries[V, D]) Dates() []D {
	return s.dates
}

// SetColnames replaces the column names with a copy of names.
// It fails with ErrColnamesLength unless len(names) == NCol(), in which case
// the existing names are kept.
func (s *TimeSeries[V, D]) SetColnames(names []string) error {
	if len(names) != s.cols {
		return fmt.Errorf("SetColnames: got %d names for %d columns: %w", len(names), s.cols, ErrColnamesLength)
	}

	s.colnames = append([]string(nil), names...)

	return nil
}

// Colnames returns a copy of the column names; empty when never set.
func (s *TimeSeries[V, D]) Colnames() []string {
	return append([]string{}, s.colnames...)
}

// Clone returns a deep copy. The copy shares no storage with s.
// Complexity: O(rows*cols).
func (s *TimeSeries[V, D]) Clone() *TimeSeries[V, D] {
	return &TimeSeries[V, D]{
		rows:     s.rows,
		cols:     s.cols,
		data:     cloneSlice(s.data),
		dates:    cloneSlice(s.dates),
		colnames: cloneSlice(s.colnames),
	}
}

// Move transfers ownership of the buffers and names to a new series and
// resets s to the empty state. O(1).
func (s *TimeSeries[V, D]) Move() *TimeSeries[V, D] {
	out := *s
	*s = TimeSeries[V, D]{}

	return &out
}

// At returns the value at (row, col), or ErrOutOfRange.
func (s *TimeSeries[V, D]) At(row, col int) (V, error) {
	idx, err := s.indexOf("At", row, col)
	if err != nil {
		var zero V

		return zero, err
	}

	return s.data[idx], nil
}

// Set assigns v at (row, col), or returns ErrOutOfRange.
func (s *TimeSeries[V, D]) Set(row, col int, v V) error {
	idx, err := s.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	s.data[idx] = v

	return nil
}

// DateAt returns the date of row, or ErrOutOfRange.
func (s *TimeSeries[V, D]) DateAt(row int) (D, error) {
	if row < 0 || row >= s.rows {
		var zero D

		return zero, indexErrorf("DateAt", row, 0)
	}

	return s.dates[row], nil
}

// Row returns a copy of the values on row.
func (s *TimeSeries[V, D]) Row(row int) ([]V, error) {
	if row < 0 || row >= s.rows {
		return nil, indexErrorf("Row", row, 0)
	}
	out := make([]V, s.cols)
	copy(out, s.data[row*s.cols:(row+1)*s.cols])

	return out, nil
}

// Column returns a copy of the values in column col, one per row.
func (s *TimeSeries[V, D]) Column(col int) ([]V, error) {
	if col < 0 || col >= s.cols {
		return nil, indexErrorf("Column", 0, col)
	}
	out := make([]V, s.rows)
	for r := 0; r < s.rows; r++ {
		out[r] = s.data[r*s.cols+col]
	}

	return out, nil
}

// Validate checks the invariants the container does not enforce on write:
// dates strictly ascending and column names either unset or one per column.
//
// Errors:
//   - ErrUnsortedDates with the first offending row.
//   - ErrColnamesLength.
func (s *TimeSeries[V, D]) Validate() error {
	for r := 1; r < len(s.dates); r++ {
		if !(s.dates[r-1] < s.dates[r]) {
			return fmt.Errorf("Validate: row %d: %w", r, ErrUnsortedDates)
		}
	}
	if len(s.colnames) != 0 && len(s.colnames) != s.cols {
		return seriesErrorf("Validate", ErrColnamesLength)
	}

	return nil
}

// String renders one line per row as "date: [v1, v2, ...]", preceded by the
// column names when set.
func (s *TimeSeries[V, D]) String() string {
	var sb strings.Builder
	if len(s.colnames) > 0 {
		sb.WriteString("[" + strings.Join(s.colnames, ", ") + "]\n")
	}
	for r := 0; r < s.rows; r++ {
		fmt.Fprintf(&sb, "%v: [", s.dates[r])
		base := r * s.cols
		for c := 0; c < s.cols; c++ {
			if c > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", s.data[base+c])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (s *TimeSeries[V, D]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return 0, indexErrorf(method, row, col)
	}

	return row*s.cols + col, nil
}

// cloneSlice deep-copies src, keeping nil as nil.
func cloneSlice[T any](src []T) []T {
	if src == nil {
		return nil
	}
	dst := make([]T, len(src))
	copy(dst, src)

	return dst
}
