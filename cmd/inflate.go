package cmd

import (
	"fmt"
	"os"

	"github.com/KostasZigo/makehash/internal/constants"
	"github.com/KostasZigo/makehash/internal/objects"
	"github.com/spf13/cobra"
)

var inflateCmd = &cobra.Command{
	Use:   "inflate [file]",
	Short: "Decompress a blob written by hash-object and verify its framing",
	Long: `Read a zlib-compressed blob (default 'zlc_python'), decompress it, check that the
header size matches the content, then print the header, the content and the recomputed SHA-1 digest.`,
	SilenceUsage: true,
	Args:         maximumArgs(1),
	RunE:         runInflate,
}

func init() {
	rootCmd.AddCommand(inflateCmd)
}

// runInflate decompresses and validates a compressed blob file.
func runInflate(cmd *cobra.Command, args []string) error {
	path := argOrDefault(args, 0, constants.DefaultOutputPath)

	compressed, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}

	data, err := objects.Decompress(compressed)
	if err != nil {
		return fmt.Errorf("failed to inflate %s: %w", path, err)
	}

	blob, err := objects.ParseBlob(data)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "header:\n%q\n", blob.Header())
	fmt.Fprintln(out, string(blob.Content()))
	fmt.Fprintf(out, "%s\n%q\n", constants.DigestLabel, blob.Hash())
	return nil
}
