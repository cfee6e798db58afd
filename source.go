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

// Source produces elements one at a time. A false from Next means that
// nothing is available right now; it does not have to be final, and a
// later call may produce more elements.
type Source[T any] interface {
	Next() (T, bool)
}

type SourceFunc[T any] func() (T, bool)

func (f SourceFunc[T]) Next() (T, bool) {
	return f()
}

// FromSlice returns a source consuming the items in order.
func FromSlice[T any](items []T) Source[T] {
	return SourceFunc[T](func() (T, bool) {
		if len(items) == 0 {
			var zero T
			return zero, false
		}
		item := items[0]
		items = items[1:]
		return item, true
	})
}

// FromChan returns a source that never blocks: an empty channel yields
// nothing for now, and values sent later are picked up by later pulls.
func FromChan[T any](ch <-chan T) Source[T] {
	return SourceFunc[T](func() (T, bool) {
		select {
		case item, ok := <-ch:
			return item, ok
		default:
			var zero T
			return zero, false
		}
	})
}

// SeqSource pulls from an iter.Seq. Stop must be called if the source is
// abandoned before the sequence ends.
type SeqSource[T any] struct {
	next func() (T, bool)
	stop func()
}

func FromSeq[T any](seq iter.Seq[T]) *SeqSource[T] {
	next, stop := iter.Pull(seq)
	return &SeqSource[T]{
		next: next,
		stop: stop,
	}
}

func (s *SeqSource[T]) Next() (T, bool) {
	return s.next()
}

func (s *SeqSource[T]) Stop() {
	s.stop()
}
