package hasher

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/KostasZigo/makehash/testutils"
)

// newTestHasher creates hasher writing console output to the returned buffer.
func newTestHasher(t *testing.T, opts ...Option) (*ObjectHasher, *bytes.Buffer) {
	t.Helper()

	var stdout bytes.Buffer
	h, err := New(append([]Option{WithOutput(&stdout)}, opts...)...)
	if err != nil {
		t.Fatalf("Failed to create hasher: %v", err)
	}

	return h, &stdout
}

// setupInput writes content to an input file in a fresh directory.
// Returns input path and a not yet existing output path in the same directory.
func setupInput(t *testing.T, content []byte) (inputPath, outputPath string) {
	t.Helper()

	dir := t.TempDir()
	inputPath = testutils.CreateTestFile(t, dir, "first-file", content)
	outputPath = filepath.Join(dir, "zlc_python")
	return inputPath, outputPath
}
