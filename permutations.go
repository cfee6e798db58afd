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

// permState walks every permutation of one combination before moving on
// to the next combination.
type permState struct {
	comb *CombGen
	perm *PermGen
	idxs []int
}

func newPermState(k int) permState {
	return permState{
		comb: NewCombGen(k),
		perm: nil,
		idxs: make([]int, k),
	}
}

// next returns the item indices of the next permutation over a domain of
// n items, or false if the current combination does not fit in it. The
// returned slice is reused by later calls.
func (s *permState) next(n int) ([]int, bool) {
	if s.perm == nil {
		if s.comb.IsDone(n) {
			return nil, false
		}
		s.perm = NewPermGen(s.comb.Width())
	}
	comb := s.comb.Indices()
	for i, p := range s.perm.Indices() {
		s.idxs[i] = comb[p]
	}
	s.perm.Step()
	if s.perm.IsDone() {
		s.perm = nil
		s.comb.Step()
	}
	return s.idxs, true
}

// Permutations yields the k-length permutations of the elements of a
// source: all orderings of the first combination in Heap's order, then
// all orderings of the next one, and so on. Buffering and resuming work
// as in Combinations.
type Permutations[T any] struct {
	buf   buffer[T]
	state permState
}

func NewPermutations[T any](src Source[T], k int) *Permutations[T] {
	return &Permutations[T]{
		buf:   buffer[T]{src: src},
		state: newPermState(k),
	}
}

func (p *Permutations[T]) Next() ([]T, bool) {
	p.buf.fillFor(p.state.comb.MaxIndex())
	idxs, ok := p.state.next(len(p.buf.items))
	if !ok {
		return nil, false
	}
	return pick(p.buf.items, idxs), true
}

func (p *Permutations[T]) All() iter.Seq[[]T] {
	return seqOf(p.Next)
}

func (p *Permutations[T]) Buffered() int {
	return len(p.buf.items)
}

type SlicePermutations[T any] struct {
	items []T
	state permState
}

func NewSlicePermutations[T any](items []T, k int) *SlicePermutations[T] {
	return &SlicePermutations[T]{
		items: items,
		state: newPermState(k),
	}
}

func (p *SlicePermutations[T]) Next() ([]*T, bool) {
	idxs, ok := p.state.next(len(p.items))
	if !ok {
		return nil, false
	}
	return pickRefs(p.items, idxs), true
}

func (p *SlicePermutations[T]) All() iter.Seq[[]*T] {
	return seqOf(p.Next)
}

func PermutationsOf[T any](seq iter.Seq[T], k int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		src := FromSeq(seq)
		defer src.Stop()
		for perm := range NewPermutations[T](src, k).All() {
			if !yield(perm) {
				return
			}
		}
	}
}
