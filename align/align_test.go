// SPDX-License-Identifier: MIT
// Package align_test contains unit tests for the merge-join.
package align_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/tslib/align"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_OddKeys checks the canonical {1..5} ∩ {1,3,5} case.
func TestNew_OddKeys(t *testing.T) {
	x := []int{1, 2, 3, 4, 5}
	y := []int{1, 3, 5}

	rs, err := align.New(x, y)
	require.NoError(t, err)

	require.Equal(t, 3, rs.Size())
	assert.Equal(t, []int{0, 2, 4}, rs.Indices1())
	assert.Equal(t, []int{0, 1, 2}, rs.Indices2())
	assert.False(t, rs.Empty())
	assert.Equal(t, "size=3 [(0,0) (2,1) (4,2)]", rs.String())
}

// TestNew_EmptyInputs verifies that any empty side yields size 0 without error.
func TestNew_EmptyInputs(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
	}{
		{"both nil", nil, nil},
		{"both empty", []float64{}, []float64{}},
		{"left empty", nil, []float64{1, 2, 3}},
		{"right empty", []float64{1, 2, 3}, []float64{}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			rs, err := align.New(tc.a, tc.b)
			require.NoError(t, err)
			require.Equal(t, 0, rs.Size())
			require.True(t, rs.Empty())
			require.NotNil(t, rs.Indices1()) // empty, not nil
			require.Len(t, rs.Indices1(), 0)
			require.Len(t, rs.Indices2(), 0)
		})
	}
}

// TestNew_Disjoint ensures non-overlapping ranges produce no pairs.
func TestNew_Disjoint(t *testing.T) {
	rs, err := align.New([]int{1, 2, 3}, []int{4, 5, 6})
	require.NoError(t, err)
	require.Equal(t, 0, rs.Size())

	rs, err = align.New([]int{2, 4, 6}, []int{1, 3, 5, 7})
	require.NoError(t, err)
	require.Equal(t, 0, rs.Size())
}

// TestNew_SelfIsIdentity checks that aligning a sequence with itself
// yields the identity permutation on both sides.
func TestNew_SelfIsIdentity(t *testing.T) {
	const n = 257
	keys := make([]int64, n)
	want := make([]int, n)
	for i := range keys {
		keys[i] = int64(3*i + 1)
		want[i] = i
	}

	rs, err := align.New(keys, keys)
	require.NoError(t, err)
	require.Equal(t, n, rs.Size())
	require.Equal(t, want, rs.Indices1())
	require.Equal(t, want, rs.Indices2())
}

// TestNew_StringKeys joins on ISO dates, which sort lexically.
func TestNew_StringKeys(t *testing.T) {
	a := []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-05"}
	b := []string{"2024-01-02", "2024-01-04", "2024-01-05"}

	got, err := align.Intersect(a, b)
	require.NoError(t, err)
	require.Equal(t, []string{"2024-01-02", "2024-01-05"}, got)
}

// TestNew_Unsorted covers the order check on each side and its opt-out.
func TestNew_Unsorted(t *testing.T) {
	sorted := []int{1, 2, 3}
	unsorted := []int{3, 1, 2}

	_, err := align.New(unsorted, sorted)
	require.ErrorIs(t, err, align.ErrUnsortedKeys)
	assert.Contains(t, err.Error(), "keys1")

	_, err = align.New(sorted, unsorted)
	require.ErrorIs(t, err, align.ErrUnsortedKeys)
	assert.Contains(t, err.Error(), "keys2")

	_, err = align.Intersect(sorted, unsorted)
	require.ErrorIs(t, err, align.ErrUnsortedKeys)

	// Unchecked: no error, and every reported pair still indexes in range.
	rs, err := align.New(unsorted, sorted, align.WithOrderCheck(false))
	require.NoError(t, err)
	for k := 0; k < rs.Size(); k++ {
		require.Less(t, rs.Indices1()[k], len(unsorted))
		require.Less(t, rs.Indices2()[k], len(sorted))
	}
}

// TestNew_NaNKey ensures a NaN key fails the order check.
func TestNew_NaNKey(t *testing.T) {
	_, err := align.New([]float64{1, math.NaN(), 3}, []float64{1, 3})
	require.ErrorIs(t, err, align.ErrUnsortedKeys)
}

// TestNew_Duplicates documents first-match semantics for repeated keys.
func TestNew_Duplicates(t *testing.T) {
	rs, err := align.New([]int{1, 2, 2, 3}, []int{2, 3})
	require.NoError(t, err)
	require.Equal(t, 2, rs.Size())
	assert.Equal(t, []int{1, 3}, rs.Indices1())
	assert.Equal(t, []int{0, 1}, rs.Indices2())
}

// TestNew_MatchesSetIntersection compares against a map-based intersection
// over random sorted, duplicate-free inputs.
func TestNew_MatchesSetIntersection(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 200; round++ {
		a := randomSortedUnique(rng, rng.Intn(60), 100)
		b := randomSortedUnique(rng, rng.Intn(60), 100)

		inB := make(map[int]struct{}, len(b))
		for _, v := range b {
			inB[v] = struct{}{}
		}
		var want int
		for _, v := range a {
			if _, ok := inB[v]; ok {
				want++
			}
		}

		rs, err := align.New(a, b)
		require.NoError(t, err)
		require.Equal(t, want, rs.Size(), "round %d", round)

		i1, i2 := rs.Indices1(), rs.Indices2()
		for k := 0; k < rs.Size(); k++ {
			require.Equal(t, a[i1[k]], b[i2[k]], "round %d pair %d", round, k)
			if k > 0 {
				require.Less(t, a[i1[k-1]], a[i1[k]], "keys must grow strictly")
			}
		}
	}
}

// TestMustNew_Panics verifies the panicking constructor.
func TestMustNew_Panics(t *testing.T) {
	require.Panics(t, func() { align.MustNew([]int{2, 1}, []int{1}) })
	require.NotPanics(t, func() { align.MustNew([]int{1, 2}, []int{1}) })
}

// randomSortedUnique draws n distinct ints from [0, max) in ascending order.
func randomSortedUnique(rng *rand.Rand, n, max int) []int {
	perm := rng.Perm(max)[:n]
	sort.Ints(perm)

	return perm
}
