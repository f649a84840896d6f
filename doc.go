// Package tslib is a small time-series toolkit: a generic container of dated
// observations and arithmetic that lines two series up on their common dates
// before combining them.
//
// 🚀 What is inside?
//
//	align/   — RangeSpecifier: O(n1+n2) merge-join of two sorted key slices
//	           returning the shared keys' positions in each input
//	tseries/ — TimeSeries[V, D]: row-major values, a date per row, named
//	           columns; Add/Sub/Mul/Div/Apply over aligned dates, scalar
//	           operators, Lag/Lead
//
// ✨ Guarantees:
//
//   - Every series owns its buffers; Clone is deep, Move transfers.
//   - Operators never touch their operands and always allocate the result.
//   - Misuse fails loudly: unsorted dates, column-count mismatches and
//     column-name length mismatches are sentinel errors matched via errors.Is.
//
// Quick example:
//
//	x, _ := tseries.NewSized[float64, int64](100, 10) // dates 0..99
//	y, _ := tseries.NewSized[float64, int64](10, 10)  // dates 0..9
//	z, _ := tseries.Add(x, y)                         // 10 rows, dates 0..9
//
//	go get github.com/katalvlaran/tslib
package tslib
