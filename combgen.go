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

// Package combgen provides lazy generators of fixed-width combinations
// and permutations over sources whose length may not be known up front.
package combgen

// CombGen generates ascending index tuples of a fixed width k. It has
// no upper bound of its own: the caller passes the current domain size
// to IsDone, so the domain may grow between calls.
type CombGen struct {
	idxs []int
	done bool
}

func NewCombGen(k int) *CombGen {
	if k < 0 {
		panic("combgen: negative width")
	}
	idxs := make([]int, k)
	for i := range idxs {
		idxs[i] = i
	}
	return &CombGen{
		idxs: idxs,
		done: false,
	}
}

func (g *CombGen) Width() int {
	return len(g.idxs)
}

// Indices returns the current combination. The slice is owned by the
// generator and changes on Step.
func (g *CombGen) Indices() []int {
	return g.idxs
}

// MaxIndex returns the largest index of the current combination. It
// returns false only for the zero width.
func (g *CombGen) MaxIndex() (int, bool) {
	if len(g.idxs) == 0 {
		return 0, false
	}
	return g.idxs[len(g.idxs)-1], true
}

// IsDone reports whether the current combination cannot be resolved
// against a domain of n items. For a growing domain this may later turn
// false again.
func (g *CombGen) IsDone(n int) bool {
	if g.done {
		return true
	}
	m, ok := g.MaxIndex()
	return ok && m >= n
}

func (g *CombGen) Step() {
	k := len(g.idxs)
	if k == 0 {
		g.done = true
		return
	}
	i := 0
	// collapse the packed run at the bottom
	for i+1 < k && g.idxs[i]+1 == g.idxs[i+1] {
		g.idxs[i] = i
		i++
	}
	g.idxs[i]++
}
