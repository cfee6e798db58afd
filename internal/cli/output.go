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
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/krnowak/combgen/internal/config"
	"github.com/krnowak/combgen/internal/tupleset"
)

// tupleWriter renders tuples one per line and applies the limit and
// uniqueness options.
type tupleWriter struct {
	w       io.Writer
	enc     *json.Encoder
	opts    config.Options
	seen    tupleset.Set
	written int
	skipped int
}

func newTupleWriter(w io.Writer, opts config.Options) *tupleWriter {
	tw := &tupleWriter{
		w:    w,
		opts: opts,
	}
	if opts.Format == config.FormatJSON {
		tw.enc = json.NewEncoder(w)
	}
	if opts.Unique {
		tw.seen = tupleset.Set{}
	}
	return tw
}

// full reports whether the limit has been reached.
func (tw *tupleWriter) full() bool {
	return tw.opts.Limit > 0 && tw.written >= tw.opts.Limit
}

func (tw *tupleWriter) write(tuple []string) error {
	if tw.seen != nil && !tw.seen.AddNew(tupleset.Key(tuple)) {
		tw.skipped++
		return nil
	}
	if tw.enc != nil {
		if err := tw.enc.Encode(tuple); err != nil {
			return fmt.Errorf("error encoding tuple: %w", err)
		}
	} else {
		if _, err := fmt.Fprintln(tw.w, strings.Join(tuple, tw.opts.Separator)); err != nil {
			return fmt.Errorf("error writing tuple: %w", err)
		}
	}
	tw.written++
	return nil
}
