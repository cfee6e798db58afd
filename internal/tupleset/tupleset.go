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

// Package tupleset keeps track of tuples that were already seen, keyed
// by their rendered form.
package tupleset

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type Set map[string]struct{}

// Key renders a tuple into a set key. Every item is prefixed with its
// length, so no choice of item contents makes two tuples collide.
func Key[T any](tuple []T) string {
	sb := strings.Builder{}
	for _, item := range tuple {
		s := fmt.Sprint(item)
		sb.WriteString(strconv.Itoa(len(s)))
		sb.WriteByte(':')
		sb.WriteString(s)
	}
	return sb.String()
}

func (s Set) Add(key string) {
	s[key] = struct{}{}
}

// AddNew adds the key and reports whether it was missing before.
func (s Set) AddNew(key string) bool {
	if s.Has(key) {
		return false
	}
	s.Add(key)
	return true
}

func (s Set) AddSlice(other []string) {
	for _, key := range other {
		s.Add(key)
	}
}

func (s Set) Has(key string) bool {
	_, ok := s[key]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

func (s Set) Diff(other Set) Set {
	diff := Set{}
	for key := range s {
		if !other.Has(key) {
			diff.Add(key)
		}
	}
	return diff
}

func (s Set) ToSlice() []string {
	slice := make([]string, 0, len(s))
	for key := range s {
		slice = append(slice, key)
	}
	sort.Strings(slice)
	return slice
}
