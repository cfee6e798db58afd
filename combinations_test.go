// Copyright Krzesimir Nowak
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package combgen

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func derefs[T any](ptrs []*T) []T {
	res := make([]T, len(ptrs))
	for i, p := range ptrs {
		res[i] = *p
	}
	return res
}

func assertExhausted[V any](t *testing.T, next func() (V, bool)) {
	t.Helper()
	for i := 0; i < 2; i++ {
		_, ok := next()
		assert.False(t, ok, "expected exhaustion")
	}
}

func TestCombinationsOrder(t *testing.T) {
	combs := NewCombinations(FromSlice([]int{1, 2, 3, 4, 5}), 3)
	expected := [][]int{
		{1, 2, 3},
		{1, 2, 4},
		{1, 3, 4},
		{2, 3, 4},
		{1, 2, 5},
		{1, 3, 5},
		{2, 3, 5},
		{1, 4, 5},
		{2, 4, 5},
		{3, 4, 5},
	}
	for i, comb := range expected {
		got, ok := combs.Next()
		require.True(t, ok, "missing combination at index %d", i)
		assert.Equal(t, comb, got, "bad combination at index %d", i)
	}
	assertExhausted(t, combs.Next)
	assert.Equal(t, 5, combs.Buffered())
}

func TestCombinationsLazyPull(t *testing.T) {
	src := &resumeSource{items: []int{1, 2, 3, 4, 5, 6}, avail: 6}
	combs := NewCombinations[int](src, 2)
	got, ok := combs.Next()
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 2, combs.Buffered())
	_, _ = combs.Next()
	assert.Equal(t, 3, combs.Buffered())
}

func TestCombinationsNoneOnSizeTooBig(t *testing.T) {
	combs := NewCombinations(FromSlice([]int{1}), 2)
	assertExhausted(t, combs.Next)
}

func TestCombinationsZeroWidth(t *testing.T) {
	src := &resumeSource{items: []int{1, 2, 3, 4}, avail: 4}
	combs := NewCombinations[int](src, 0)
	got, ok := combs.Next()
	require.True(t, ok)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assertExhausted(t, combs.Next)
	assert.Equal(t, 0, src.i, "zero width must not pull")
}

func TestCombinationsDuplicates(t *testing.T) {
	combs := NewCombinations(FromSlice([]int{2, 2}), 2)
	got, ok := combs.Next()
	require.True(t, ok)
	assert.Equal(t, []int{2, 2}, got)
	assertExhausted(t, combs.Next)

	combs = NewCombinations(FromSlice([]int{1, 2, 2}), 2)
	var all [][]int
	for comb := range combs.All() {
		all = append(all, comb)
	}
	assert.Equal(t, [][]int{{1, 2}, {1, 2}, {2, 2}}, all)
}

func TestCombinationsCopies(t *testing.T) {
	combs := NewCombinations(FromSlice([]int{1, 2, 3}), 2)
	first, ok := combs.Next()
	require.True(t, ok)
	first[0] = 100
	second, ok := combs.Next()
	require.True(t, ok)
	assert.Equal(t, []int{1, 3}, second)
}

func TestCombinationsResumeAfterNone(t *testing.T) {
	src := &resumeSource{items: []int{1, 2, 3, 4}}
	combs := NewCombinations[int](src, 3)

	_, ok := combs.Next()
	assert.False(t, ok)

	src.avail++
	_, ok = combs.Next()
	assert.False(t, ok)

	src.avail++
	_, ok = combs.Next()
	assert.False(t, ok)
	_, ok = combs.Next()
	assert.False(t, ok)

	src.avail++
	got, ok := combs.Next()
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, got)
	_, ok = combs.Next()
	assert.False(t, ok)

	src.avail++
	for _, expected := range [][]int{{1, 2, 4}, {1, 3, 4}, {2, 3, 4}} {
		got, ok = combs.Next()
		require.True(t, ok)
		assert.Equal(t, expected, got)
	}
	assertExhausted(t, combs.Next)
}

func TestCombinationsResumeFromChan(t *testing.T) {
	ch := make(chan int, 4)
	combs := NewCombinations(FromChan(ch), 3)
	var got [][]int
	for i := 1; i <= 4; i++ {
		_, ok := combs.Next()
		assert.False(t, ok, "nothing expected before item %d", i)
		ch <- i
		for comb := range combs.All() {
			got = append(got, comb)
		}
	}
	close(ch)
	assert.Equal(t, [][]int{{1, 2, 3}, {1, 2, 4}, {1, 3, 4}, {2, 3, 4}}, got)
	assertExhausted(t, combs.Next)
}

func TestCombinationsCount(t *testing.T) {
	for n := 0; n <= 7; n++ {
		items := make([]int, n)
		for i := range items {
			items[i] = i
		}
		for k := 0; k <= n+1; k++ {
			count := 0
			for range NewCombinations(FromSlice(items), k).All() {
				count++
			}
			ncomb, ok := NCombinations(n, k)
			require.True(t, ok)
			assert.Equal(t, ncomb, (uint64)(count), "n=%d k=%d", n, k)
		}
	}
}

func TestSliceCombinationsOrder(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	combs := NewSliceCombinations(items, 3)
	var got [][]int
	for comb := range combs.All() {
		got = append(got, derefs(comb))
	}
	assert.Equal(t, [][]int{
		{1, 2, 3}, {1, 2, 4}, {1, 3, 4}, {2, 3, 4}, {1, 2, 5},
		{1, 3, 5}, {2, 3, 5}, {1, 4, 5}, {2, 4, 5}, {3, 4, 5},
	}, got)
	assertExhausted(t, combs.Next)
}

func TestSliceCombinationsReferences(t *testing.T) {
	items := []string{"a", "b", "c"}
	combs := NewSliceCombinations(items, 2)
	got, ok := combs.Next()
	require.True(t, ok)
	assert.Same(t, &items[0], got[0])
	assert.Same(t, &items[1], got[1])
}

func TestSliceCombinationsEdges(t *testing.T) {
	combs := NewSliceCombinations([]int{1}, 2)
	assertExhausted(t, combs.Next)

	combs = NewSliceCombinations([]int{1, 2, 3, 4}, 0)
	got, ok := combs.Next()
	require.True(t, ok)
	assert.Empty(t, got)
	assertExhausted(t, combs.Next)
}

func TestCombinationsOf(t *testing.T) {
	var got [][]int
	for comb := range CombinationsOf(slices.Values([]int{1, 2, 3, 4}), 2) {
		got = append(got, comb)
		if len(got) == 3 {
			break
		}
	}
	assert.Equal(t, [][]int{{1, 2}, {1, 3}, {2, 3}}, got)

	got = slices.Collect(CombinationsOf(slices.Values([]int{1, 2, 3}), 3))
	assert.Equal(t, [][]int{{1, 2, 3}}, got)
}
