// SPDX-License-Identifier: MIT
// Package tseries_test contains test helpers.

package tseries_test

import (
	"testing"

	"github.com/katalvlaran/tslib/tseries"
	"github.com/stretchr/testify/require"
)

// mustSeries builds a series from dates and row-major rows, failing the test
// on any error. All rows must have the same width.
func mustSeries[V tseries.Value, D tseries.Date](t testing.TB, dates []D, rows [][]V) *tseries.TimeSeries[V, D] {
	t.Helper()

	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	s, err := tseries.NewSized[V, D](len(dates), cols)
	require.NoError(t, err)
	require.Len(t, rows, len(dates))

	copy(s.Dates(), dates)
	for r, row := range rows {
		require.Len(t, row, cols)
		copy(s.Data()[r*cols:], row)
	}

	return s
}

// filledSeries builds an n×c series dated 0..n-1 with every value set to v.
func filledSeries(t testing.TB, n, c int, v float64) *tseries.TimeSeries[float64, float64] {
	t.Helper()

	s, err := tseries.NewSized[float64, float64](n, c)
	require.NoError(t, err)
	for i := range s.Data() {
		s.Data()[i] = v
	}
	for i := range s.Dates() {
		s.Dates()[i] = float64(i)
	}

	return s
}
