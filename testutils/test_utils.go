package testutils

import (
	"bytes"
	"compress/zlib"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/KostasZigo/makehash/internal/constants"
	"github.com/KostasZigo/makehash/utils"
)

// RandomString generates a random hex string of n bytes
func RandomString(n int) string {
	bytes := make([]byte, n)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// CreateTestFile creates a file with given content in the specified directory.
// Returns the full path to the created file.
func CreateTestFile(t *testing.T, dir, filename string, content []byte) string {
	t.Helper()

	filePath := filepath.Join(dir, filename)
	if err := os.WriteFile(filePath, content, constants.FilePerms); err != nil {
		t.Fatalf("Failed to create test file %s: %v", filename, err)
	}

	return filePath
}

// AssertFileExists checks that a file exists at the given path.
// Fails the test if the file doesn't exist.
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected file to exist at %s", path)
	}
}

// AssertFileNotExists checks that a file does NOT exist at the given path.
// Fails the test if the file exists.
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Errorf("Expected file to NOT exist at %s", path)
	}
}

// InflateFile reads a zlib file with the standard library decoder.
// Used as an independent check on what the module writes.
func InflateFile(t *testing.T, path string) []byte {
	t.Helper()

	compressedData, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read compressed file: %v", err)
	}

	reader, err := zlib.NewReader(bytes.NewReader(compressedData))
	if err != nil {
		t.Fatalf("Failed to create zlib reader: %v", err)
	}
	defer reader.Close()

	var buffer bytes.Buffer
	if _, err := buffer.ReadFrom(reader); err != nil {
		t.Fatalf("Failed to read decompressed data: %v", err)
	}

	return buffer.Bytes()
}

// BlobStoreMismatch describes how data differs from "blob <len>\0" followed by
// expectedContent. Returns an empty string when they are identical.
func BlobStoreMismatch(data, expectedContent []byte) string {
	expected := utils.Frame(utils.BlobObjectType, expectedContent)
	if bytes.Equal(data, expected) {
		return ""
	}
	return fmt.Sprintf("Blob store mismatch: expected %q, got %q", expected, data)
}

// AssertBlobStore verifies data is exactly "blob <len>\0" followed by expectedContent,
// including the header size field.
func AssertBlobStore(t *testing.T, data, expectedContent []byte) {
	t.Helper()

	if mismatch := BlobStoreMismatch(data, expectedContent); mismatch != "" {
		t.Error(mismatch)
	}
}

// ChangeToDir changes working directory and restores it on cleanup.
func ChangeToDir(t *testing.T, dir string) {
	t.Helper()

	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}

	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change to directory %s: %v", dir, err)
	}

	t.Cleanup(func() {
		os.Chdir(oldDir)
	})
}
