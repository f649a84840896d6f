// SPDX-License-Identifier: MIT

package align

import "golang.org/x/exp/constraints"

// Key is the set of key types a RangeSpecifier can join on.
// Any ordered type works: integer day numbers, float timestamps, or
// lexically sortable strings such as "2006-01-02".
type Key interface {
	constraints.Ordered
}

// RangeSpecifier is the result of a merge-join between two sorted key slices.
//
// It does not retain the input slices; it owns only the two index slices,
// each of length exactly Size().
type RangeSpecifier struct {
	idx1 []int // positions into keys1
	idx2 []int // positions into keys2
}
