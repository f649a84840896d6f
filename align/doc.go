// SPDX-License-Identifier: MIT

// Package align computes the ordered intersection of two sorted key
// sequences together with the index mappings back into each source.
//
// What & Why:
//
//	Cross-series arithmetic in tseries only combines rows whose dates are
//	present in both operands. A RangeSpecifier is the merge-join that finds
//	those rows: for keys1 and keys2 sorted ascending it returns Indices1 and
//	Indices2 such that keys1[Indices1[k]] == keys2[Indices2[k]] and the
//	matched keys grow strictly with k.
//
// Usage:
//
//	rs, err := align.New([]int{1, 2, 3, 4, 5}, []int{1, 3, 5})
//	if err != nil {
//		// ErrUnsortedKeys
//	}
//	rs.Size()     // 3
//	rs.Indices1() // [0 2 4]
//	rs.Indices2() // [0 1 2]
//
// Complexity:
//
//	Time O(n1+n2), memory O(size) for the two output slices.
//	The order check (on by default) adds one O(n1+n2) pass.
package align
