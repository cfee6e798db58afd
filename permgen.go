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

// PermGen walks all permutations of the positions 0..n-1 with the
// iterative form of Heap's algorithm. The first state is the identity.
type PermGen struct {
	idxs     []int
	counters []int
	done     bool
}

func NewPermGen(n int) *PermGen {
	if n < 0 {
		panic("combgen: negative width")
	}
	idxs := make([]int, n)
	for i := range idxs {
		idxs[i] = i
	}
	return &PermGen{
		idxs:     idxs,
		counters: make([]int, n),
		done:     false,
	}
}

func (g *PermGen) Indices() []int {
	return g.idxs
}

func (g *PermGen) IsDone() bool {
	return g.done
}

func (g *PermGen) Step() {
	n := len(g.idxs)
	i := 1
	for i < n && g.counters[i] >= i {
		g.counters[i] = 0
		i++
	}
	if i >= n {
		g.done = true
		return
	}
	j := 0
	if i&1 == 1 {
		j = g.counters[i]
	}
	g.idxs[i], g.idxs[j] = g.idxs[j], g.idxs[i]
	g.counters[i]++
}
