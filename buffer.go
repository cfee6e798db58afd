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

// buffer holds the elements pulled from a source so far. It only grows.
type buffer[T any] struct {
	src   Source[T]
	items []T
}

// fill pulls until at least n items are buffered or the source has
// nothing more to give right now.
func (b *buffer[T]) fill(n int) {
	for len(b.items) < n {
		item, ok := b.src.Next()
		if !ok {
			return
		}
		b.items = append(b.items, item)
	}
}

// fillFor buffers enough items to resolve indices up to maxIdx. It is a
// no-op when there is no index at all.
func (b *buffer[T]) fillFor(maxIdx int, ok bool) {
	if ok {
		b.fill(maxIdx + 1)
	}
}

func pick[T any](items []T, idxs []int) []T {
	res := make([]T, len(idxs))
	for i, idx := range idxs {
		res[i] = items[idx]
	}
	return res
}

func pickRefs[T any](items []T, idxs []int) []*T {
	res := make([]*T, len(idxs))
	for i, idx := range idxs {
		res[i] = &items[idx]
	}
	return res
}

// seqOf turns a Next method into a sequence.
func seqOf[V any](next func() (V, bool)) iter.Seq[V] {
	return func(yield func(V) bool) {
		for {
			v, ok := next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
