package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/KostasZigo/makehash/internal/objects"
)

// maximumArgs validates command receives at most n positional arguments.
// Returns error with usage help if argument limit exceeded.
func maximumArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > n {
			cmd.SilenceUsage = false
			return fmt.Errorf("%s command accepts at most %d arg(s), received %d", cmd.Name(), n, len(args))
		}
		return nil
	}
}

// argOrDefault returns args[i] when present, otherwise fallback.
func argOrDefault(args []string, i int, fallback string) string {
	if len(args) > i {
		return args[i]
	}
	return fallback
}

// addLevelFlag registers the shared zlib level flag.
func addLevelFlag(flags *pflag.FlagSet, level *int) {
	flags.IntVarP(level, "level", "l", objects.DefaultCompressionLevel,
		"zlib compression level (-2 huffman only, -1 default, 0 none ... 9 best)")
}
