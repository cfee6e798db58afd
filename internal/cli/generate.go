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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/krnowak/combgen"
	"github.com/krnowak/combgen/internal/config"
)

func newGenerateCommand(cfg *config.Config, permutations bool) *cobra.Command {
	opts := cfg.Options(0)
	opts.Permutations = permutations

	cmd := &cobra.Command{
		Use:     "combinations [item...]",
		Aliases: []string{"comb"},
		Short:   "Print the k-length combinations of the items",
		Long: `Print the k-length combinations of the items, in ascending order of
their positions. Without arguments, items are read one per line from
standard input; lines may be up to 16 MiB long.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, args)
		},
	}
	if permutations {
		cmd.Use = "permutations [item...]"
		cmd.Aliases = []string{"perm"}
		cmd.Short = "Print the k-length permutations of the items"
		cmd.Long = `Print the k-length permutations of the items: every ordering of the
first combination, then of the next one. Without arguments, items are
read one per line from standard input; lines may be up to 16 MiB long.`
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.Width, "width", "k", opts.Width, "number of items in a tuple")
	flags.StringVarP(&opts.Format, "format", "f", opts.Format, "output format: text or json")
	flags.StringVarP(&opts.Separator, "separator", "s", opts.Separator, "separator of items in text output")
	flags.IntVarP(&opts.Limit, "limit", "n", opts.Limit, "stop after this many tuples, 0 for no limit")
	flags.BoolVarP(&opts.Unique, "unique", "u", opts.Unique, "skip tuples with the same items as an earlier one")
	_ = cmd.MarkFlagRequired("width")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts config.Options, args []string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	v, err := config.NewValidator()
	if err != nil {
		return err
	}
	if err := v.Validate(opts); err != nil {
		return err
	}

	in := newInput(cmd.InOrStdin(), args)
	var next func() ([]string, bool)
	kind := "combinations"
	if opts.Permutations {
		kind = "permutations"
		next = combgen.NewPermutations(in.source, opts.Width).Next
	} else {
		next = combgen.NewCombinations(in.source, opts.Width).Next
	}

	logger.Debug("generating", "kind", kind, "width", opts.Width, "args", len(args))
	p := newProgress(logger)

	tw := newTupleWriter(cmd.OutOrStdout(), opts)
	for !tw.full() {
		if err := ctx.Err(); err != nil {
			return err
		}
		tuple, ok := next()
		if !ok {
			break
		}
		if err := tw.write(tuple); err != nil {
			return fmt.Errorf("failed to write %s: %w", kind, err)
		}
	}
	if err := in.Err(); err != nil {
		return fmt.Errorf("failed to read items: %w", err)
	}

	p.done("generated "+kind, "written", tw.written, "skipped", tw.skipped)
	return nil
}
