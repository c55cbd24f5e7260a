// Package cli provides the Cobra command structure for gocst.
package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gocst/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root gocst command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var color string

	rootCmd := &cobra.Command{
		Use:   "gocst",
		Short: "Lossless syntax trees and linting for CSS, JSON, Grit and Markdown",
		Long: `gocst parses CSS, JSON, Grit and Markdown into lossless concrete syntax
trees. Every byte of the input, including whitespace, comments and
malformed text, is kept in the tree, so the source can always be
reconstructed exactly.

On top of the trees gocst runs lint rules, prints the trees for inspection
and verifies round-trip losslessness over whole directories.`,
		Version: info.Version,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return withExitCode(ExitInvalidUsage, err)
	})

	rootCmd.AddCommand(newLintCommand())
	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Flags are parsed after construction, so only an explicit --color
	// on the command line can affect help styling.
	helpFormatter := NewHelpFormatter(helpColorMode(os.Args[1:]), os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

// helpColorMode scans raw arguments for --color before cobra parses them.
func helpColorMode(args []string) string {
	for i, arg := range args {
		if arg == "--color" && i+1 < len(args) {
			return args[i+1]
		}
		if mode, ok := strings.CutPrefix(arg, "--color="); ok {
			return mode
		}
	}
	return "auto"
}

// usageArgs marks argument validation failures as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return withExitCode(ExitInvalidUsage, validate(cmd, args))
	}
}
