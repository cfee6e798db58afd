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

// Package cli implements the combgen command-line interface.
//
// The commands print the k-length combinations or permutations of the
// items given as arguments, or of the lines read from standard input.
// Input is consumed lazily: a tuple is written as soon as the lines it
// needs have been read.
package cli

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/krnowak/combgen/internal/config"
)

const appName = "combgen"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Execute reads the configuration and runs the command tree.
func Execute(ctx context.Context) error {
	cfg, err := config.Read()
	if err != nil {
		return err
	}
	return NewRootCommand(cfg).ExecuteContext(ctx)
}

// NewRootCommand creates the root command with its defaults taken from cfg.
func NewRootCommand(cfg *config.Config) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Combgen prints combinations and permutations of its input",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := LogInfo
			if verbose {
				level = LogDebug
			}
			ctx := withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCommand(cfg, false))
	root.AddCommand(newGenerateCommand(cfg, true))
	root.AddCommand(newCountCommand())

	return root
}
