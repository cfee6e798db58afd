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

package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/krnowak/combgen"
)

// maxLineSize is the longest input line accepted, newline excluded.
const maxLineSize = 16 << 20

// lineSource reads items one per line. Unlike a resumable source, a
// false from Next is final: the reader hit EOF or failed.
type lineSource struct {
	scanner *bufio.Scanner
	read    int
	err     error
}

func newLineSource(r io.Reader) *lineSource {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64<<10), maxLineSize)
	return &lineSource{
		scanner: scanner,
	}
}

func (s *lineSource) Next() (string, bool) {
	if s.scanner.Scan() {
		s.read++
		return s.scanner.Text(), true
	}
	if err := s.scanner.Err(); err != nil && s.err == nil {
		s.err = fmt.Errorf("error reading line %d: %w", s.read+1, err)
	}
	return "", false
}

func (s *lineSource) Err() error {
	return s.err
}

// input picks the items of a run: the arguments if there are any, or
// the lines of r otherwise.
type input struct {
	source combgen.Source[string]
	lines  *lineSource
}

func newInput(r io.Reader, args []string) input {
	if len(args) > 0 {
		return input{source: combgen.FromSlice(args)}
	}
	lines := newLineSource(r)
	return input{source: lines, lines: lines}
}

func (in input) Err() error {
	if in.lines == nil {
		return nil
	}
	return in.lines.Err()
}

// readAll drains the input.
func (in input) readAll() ([]string, error) {
	var items []string
	for {
		item, ok := in.source.Next()
		if !ok {
			break
		}
		items = append(items, item)
	}
	return items, in.Err()
}
