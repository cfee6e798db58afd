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
	"math/bits"
)

// NCombinations returns the number of k-length combinations of n items.
// It returns false if the number does not fit in an uint64. Negative
// arguments and k > n give zero.
func NCombinations(n, k int) (uint64, bool) {
	if n < 0 || k < 0 || k > n {
		return 0, true
	}
	k = min(k, n-k)
	b := (uint64)(1)
	// b is C(n-k+i, i) after each round, so it only grows
	for i := 1; i <= k; i++ {
		hi, lo := bits.Mul64(b, (uint64)(n-k+i))
		if hi >= (uint64)(i) {
			return 0, false
		}
		b, _ = bits.Div64(hi, lo, (uint64)(i))
	}
	return b, true
}

// NPermutations returns the number of k-length permutations of n items,
// with the same overflow and range rules as NCombinations.
func NPermutations(n, k int) (uint64, bool) {
	if n < 0 || k < 0 || k > n {
		return 0, true
	}
	p := (uint64)(1)
	for i := n - k + 1; i <= n; i++ {
		hi, lo := bits.Mul64(p, (uint64)(i))
		if hi != 0 {
			return 0, false
		}
		p = lo
	}
	return p, true
}
