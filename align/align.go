// SPDX-License-Identifier: MIT

package align

import (
	"fmt"
	"strings"
)

// New merge-joins keys1 and keys2 and returns the matched index pairs.
//
// Implementation:
//   - Stage 1 (Validate): with the order check on, both inputs must be
//     non-decreasing; otherwise ErrUnsortedKeys.
//   - Stage 2 (Count): one merge pass to size the output exactly.
//   - Stage 3 (Fill): second merge pass writing (i, j) for every equal pair.
//
// Behavior highlights:
//   - keys1[i] < keys2[j] advances i; keys1[i] > keys2[j] advances j;
//     equality records (i, j) and advances both.
//   - Pairs come out strictly increasing in key because both inputs are sorted;
//     callers iterate Indices1 and Indices2 in lockstep.
//   - Empty inputs yield Size()==0 and no error.
//
// Complexity:
//   - Time O(n1+n2), Space O(Size()).
func New[D Key](keys1, keys2 []D, opts ...Option) (*RangeSpecifier, error) {
	o := gatherOptions(opts...)
	if o.orderCheck {
		if err := checkSorted(keys1); err != nil {
			return nil, alignErrorf("New: keys1", err)
		}
		if err := checkSorted(keys2); err != nil {
			return nil, alignErrorf("New: keys2", err)
		}
	}

	n := countMatches(keys1, keys2)
	rs := &RangeSpecifier{
		idx1: make([]int, n),
		idx2: make([]int, n),
	}
	if n == 0 {
		return rs, nil
	}

	var i, j, k int
	for i < len(keys1) && j < len(keys2) {
		switch {
		case keys1[i] < keys2[j]:
			i++
		case keys1[i] > keys2[j]:
			j++
		default:
			rs.idx1[k] = i
			rs.idx2[k] = j
			k++
			i++
			j++
		}
	}

	return rs, nil
}

// MustNew is like New but panics on error. Intended for tests and examples
// where the inputs are literals known to be sorted.
func MustNew[D Key](keys1, keys2 []D, opts ...Option) *RangeSpecifier {
	rs, err := New(keys1, keys2, opts...)
	if err != nil {
		panic(err)
	}

	return rs
}

// Intersect returns the keys present in both inputs, in ascending order.
// It is the date buffer an aligned operation produces.
func Intersect[D Key](keys1, keys2 []D, opts ...Option) ([]D, error) {
	rs, err := New(keys1, keys2, opts...)
	if err != nil {
		return nil, alignErrorf("Intersect", err)
	}

	out := make([]D, rs.Size())
	for k, i := range rs.idx1 {
		out[k] = keys1[i]
	}

	return out, nil
}

// Size returns the number of keys present in both inputs.
func (rs *RangeSpecifier) Size() int {
	return len(rs.idx1)
}

// Empty reports whether the inputs shared no key.
func (rs *RangeSpecifier) Empty() bool {
	return len(rs.idx1) == 0
}

// Indices1 returns positions into keys1, one per matched key.
// The slice is owned by rs and must not be modified.
func (rs *RangeSpecifier) Indices1() []int {
	return rs.idx1
}

// Indices2 returns positions into keys2, one per matched key.
// The slice is owned by rs and must not be modified.
func (rs *RangeSpecifier) Indices2() []int {
	return rs.idx2
}

// String renders the matched pairs as "size=N [(i1,j1) (i2,j2) ...]".
func (rs *RangeSpecifier) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "size=%d [", rs.Size())
	for k := range rs.idx1 {
		if k > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "(%d,%d)", rs.idx1[k], rs.idx2[k])
	}
	sb.WriteByte(']')

	return sb.String()
}

// countMatches runs the merge loop without recording, returning how many
// pairs the fill pass will write.
func countMatches[D Key](keys1, keys2 []D) int {
	var i, j, n int
	for i < len(keys1) && j < len(keys2) {
		switch {
		case keys1[i] < keys2[j]:
			i++
		case keys1[i] > keys2[j]:
			j++
		default:
			n++
			i++
			j++
		}
	}

	return n
}

// checkSorted returns ErrUnsortedKeys, annotated with the first offending
// position, if keys is not non-decreasing. A NaN key has no order and fails
// the check too.
func checkSorted[D Key](keys []D) error {
	for i := range keys {
		if keys[i] != keys[i] { // NaN
			return fmt.Errorf("position %d: %w", i, ErrUnsortedKeys)
		}
		if i > 0 && keys[i] < keys[i-1] {
			return fmt.Errorf("position %d: %w", i, ErrUnsortedKeys)
		}
	}

	return nil
}
