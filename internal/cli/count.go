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
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/krnowak/combgen"
	"github.com/krnowak/combgen/internal/config"
)

var errCountOverflow = errors.New("count does not fit in 64 bits")

func newCountCommand() *cobra.Command {
	opts := config.CountOptions{}

	cmd := &cobra.Command{
		Use:   "count [item...]",
		Short: "Print the number of k-length combinations or permutations of the items",
		Long: `Print the number of k-length combinations or permutations of the items.
Without arguments, items are read one per line from standard input
(lines up to 16 MiB). The command fails if the number does not fit in 64 bits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(cmd, opts, args)
		},
	}

	cmd.Flags().IntVarP(&opts.Width, "width", "k", 0, "number of items in a tuple")
	cmd.Flags().BoolVarP(&opts.Permutations, "permutations", "p", false, "count permutations instead of combinations")
	_ = cmd.MarkFlagRequired("width")

	return cmd
}

func runCount(cmd *cobra.Command, opts config.CountOptions, args []string) error {
	v, err := config.NewValidator()
	if err != nil {
		return err
	}
	if err := v.Validate(opts); err != nil {
		return err
	}

	items, err := newInput(cmd.InOrStdin(), args).readAll()
	if err != nil {
		return fmt.Errorf("failed to read items: %w", err)
	}

	count := combgen.NCombinations
	if opts.Permutations {
		count = combgen.NPermutations
	}
	n, ok := count(len(items), opts.Width)
	if !ok {
		return fmt.Errorf("%d items, width %d: %w", len(items), opts.Width, errCountOverflow)
	}

	loggerFromContext(cmd.Context()).Debug("counted", "items", len(items), "width", opts.Width, "permutations", opts.Permutations)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), n)
	return err
}
