package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/KostasZigo/makehash/internal/constants"
	"github.com/KostasZigo/makehash/internal/objects"
	"github.com/KostasZigo/makehash/testutils"
	"github.com/spf13/cobra"
)

// createTestRootCmd creates fresh root command with the given subcommand.
// Flag values and Changed markers are reset since commands are package globals.
func createTestRootCmd(cmd *cobra.Command) *cobra.Command {
	resetHashObjectFlags()

	testRootCmd := &cobra.Command{Use: "makehash"}
	testRootCmd.AddCommand(cmd)
	return testRootCmd
}

// resetHashObjectFlags restores hash-object flags to their defaults.
func resetHashObjectFlags() {
	contentFlag = ""
	levelFlag = objects.DefaultCompressionLevel
	for _, name := range []string{"content", "level"} {
		if flag := hashObjectCmd.Flags().Lookup(name); flag != nil {
			flag.Changed = false
		}
	}
}

// captureStdout returns command stdout output as string.
func captureStdout(cmd *cobra.Command) *bytes.Buffer {
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	return &stdout
}

// captureStderr returns command stderr output as string.
func captureStderr(cmd *cobra.Command) *bytes.Buffer {
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)
	return &stderr
}

// setupWorkDir creates a temp dir, changes into it and writes the default input.
func setupWorkDir(t *testing.T, content []byte) string {
	t.Helper()

	dir := t.TempDir()
	testutils.ChangeToDir(t, dir)
	testutils.CreateTestFile(t, dir, constants.DefaultInputPath, content)
	return dir
}

// runHashObjectIn runs hash-object with args and fails test on error.
func runHashObjectIn(t *testing.T, args ...string) string {
	t.Helper()

	testRootCmd := createTestRootCmd(hashObjectCmd)
	stdout := captureStdout(testRootCmd)
	captureStderr(testRootCmd)

	testRootCmd.SetArgs(append([]string{constants.HashObjectCmdName}, args...))
	if err := testRootCmd.Execute(); err != nil {
		t.Fatalf("%s command failed: %v", constants.HashObjectCmdName, err)
	}

	return stdout.String()
}

// defaultOutputPath returns the default output path inside dir.
func defaultOutputPath(dir string) string {
	return filepath.Join(dir, constants.DefaultOutputPath)
}
