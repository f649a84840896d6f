// SPDX-License-Identifier: MIT

package tseries

import "fmt"

// Lag shifts observations k rows forward in time.
//
// For k > 0 row r of the result carries the values of row r of x dated at
// x's row r+k, so each date sees the observation from k rows earlier; the
// first k dates drop out. For k < 0 (a lead) each date sees the observation
// |k| rows later and the last |k| dates drop out. Lag(0) is a deep copy.
//
// When |k| ≥ NRow() the result is a valid zero-row series with the same
// columns. Column names are preserved.
//
// Complexity: O(rows*cols).
func (s *TimeSeries[V, D]) Lag(k int) (*TimeSeries[V, D], error) {
	if k == 0 {
		return s.Clone(), nil
	}

	shift := k
	if shift < 0 {
		shift = -shift
	}
	n := s.rows - shift
	if n < 0 {
		n = 0
	}

	z, err := NewSized[V, D](n, s.cols)
	if err != nil {
		return nil, seriesErrorf(fmt.Sprintf("Lag(%d)", k), err)
	}
	z.colnames = cloneSlice(s.colnames)
	if n == 0 {
		return z, nil
	}

	c := s.cols
	if k > 0 {
		copy(z.dates, s.dates[shift:])
		copy(z.data, s.data[:n*c])
	} else {
		copy(z.dates, s.dates[:n])
		copy(z.data, s.data[shift*c:])
	}

	return z, nil
}

// Lead is Lag(-k).
func (s *TimeSeries[V, D]) Lead(k int) (*TimeSeries[V, D], error) {
	return s.Lag(-k)
}
