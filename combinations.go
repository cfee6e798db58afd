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
	"iter"
)

// Combinations yields the k-length combinations of the elements of a
// source. Elements are buffered as the combinations need them, and each
// tuple is a fresh slice holding copies of the elements.
//
// Combinations work on positions: equal elements at different positions
// are distinct, so [2 2] has one 2-combination, [2 2].
type Combinations[T any] struct {
	buf buffer[T]
	gen *CombGen
}

func NewCombinations[T any](src Source[T], k int) *Combinations[T] {
	return &Combinations[T]{
		buf: buffer[T]{src: src},
		gen: NewCombGen(k),
	}
}

// Next returns the next combination. When it returns false, the source
// had too few elements; if the source produces more later, Next resumes
// where it stopped.
func (c *Combinations[T]) Next() ([]T, bool) {
	c.buf.fillFor(c.gen.MaxIndex())
	if c.gen.IsDone(len(c.buf.items)) {
		return nil, false
	}
	res := pick(c.buf.items, c.gen.Indices())
	c.gen.Step()
	return res, true
}

// All ranges over the combinations available without waiting.
func (c *Combinations[T]) All() iter.Seq[[]T] {
	return seqOf(c.Next)
}

// Buffered returns the number of elements pulled from the source.
func (c *Combinations[T]) Buffered() int {
	return len(c.buf.items)
}

// SliceCombinations yields the k-length combinations of a slice as
// pointers into it.
type SliceCombinations[T any] struct {
	items []T
	gen   *CombGen
}

func NewSliceCombinations[T any](items []T, k int) *SliceCombinations[T] {
	return &SliceCombinations[T]{
		items: items,
		gen:   NewCombGen(k),
	}
}

func (c *SliceCombinations[T]) Next() ([]*T, bool) {
	if c.gen.IsDone(len(c.items)) {
		return nil, false
	}
	res := pickRefs(c.items, c.gen.Indices())
	c.gen.Step()
	return res, true
}

func (c *SliceCombinations[T]) All() iter.Seq[[]*T] {
	return seqOf(c.Next)
}

// CombinationsOf returns the k-length combinations of the values of seq.
// The sequence is read lazily and released once ranging stops.
func CombinationsOf[T any](seq iter.Seq[T], k int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		src := FromSeq(seq)
		defer src.Stop()
		for comb := range NewCombinations[T](src, k).All() {
			if !yield(comb) {
				return
			}
		}
	}
}
