package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verboseFlag bool

// rootCmd defines the base command for the makehash CLI.
// Subcommands (hash-object, inflate) register under this root.
var rootCmd = &cobra.Command{
	Use:   "makehash",
	Short: "Compute git-style blob hashes and zlib-compressed blobs",
	Long: `MakeHash frames a file's content with a git blob header ("blob <size>\0"),
prints its SHA-1 digest and writes the zlib-compressed framed bytes to an output file.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd, verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Log debug details to stderr")
}

// configureLogging installs a debug-level text handler on the command's stderr when verbose.
func configureLogging(cmd *cobra.Command, verbose bool) {
	if !verbose {
		return
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
	slog.SetDefault(slog.New(handler))
}

// Execute runs the root command and handles exit codes.
// Called from main.go to start CLI execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
