package cmd

import (
	"fmt"

	"github.com/KostasZigo/makehash/internal/constants"
	"github.com/KostasZigo/makehash/internal/hasher"
	"github.com/spf13/cobra"
)

var hashObjectCmd = &cobra.Command{
	Use:   "hash-object [input] [output]",
	Short: "Hash a file as a blob and write its zlib-compressed form",
	Long: `Read the input file, frame it as "blob <size>\0<content>", print the content,
its SHA-1 digest and the compressed bytes, then write the compressed bytes to the output file.
The output file is created or truncated. Input defaults to 'first-file', output to 'zlc_python'.

Examples:
  # Hash first-file into zlc_python
  makehash hash-object

  # Hash an explicit file into an explicit output
  makehash hash-object notes.txt notes.z

  # Hash a literal string instead of reading a file
  makehash hash-object --content "what is up, doc?" - zlc_go`,
	SilenceUsage: true,
	Args:         maximumArgs(2),
	RunE:         runHashObject,
}

var (
	contentFlag string
	levelFlag   int
)

func init() {
	rootCmd.AddCommand(hashObjectCmd)

	hashObjectCmd.Flags().StringVarP(&contentFlag, "content", "c", "", "Hash this literal string instead of reading the input file")
	addLevelFlag(hashObjectCmd.Flags(), &levelFlag)
}

// runHashObject hashes the input and writes the compressed blob.
func runHashObject(cmd *cobra.Command, args []string) error {
	inputPath := argOrDefault(args, 0, constants.DefaultInputPath)
	outputPath := argOrDefault(args, 1, constants.DefaultOutputPath)

	h, err := hasher.New(
		hasher.WithOutput(cmd.OutOrStdout()),
		hasher.WithLevel(levelFlag),
	)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("content") {
		_, err = h.HashContent([]byte(contentFlag), outputPath)
	} else {
		_, err = h.HashFile(inputPath, outputPath)
	}
	if err != nil {
		return fmt.Errorf("%s failed: %w", constants.HashObjectCmdName, err)
	}

	return nil
}
