package objects

import (
	"bytes"
	"testing"

	"github.com/KostasZigo/makehash/utils"
)

// assertBlobHash verifies blob hash matches expected value for given content.
func assertBlobHash(t *testing.T, blob *Blob, content []byte) {
	t.Helper()

	expectedHash, err := utils.ComputeHash(content, utils.BlobObjectType)
	if err != nil {
		t.Fatalf("Hash computation failed: %v", err)
	}

	if blob.Hash() != expectedHash {
		t.Fatalf("Expected hash [%s], got [%s]", expectedHash, blob.Hash())
	}
}

// assertBlobContent verifies blob stores exact content and correct size.
func assertBlobContent(t *testing.T, blob *Blob, expectedContent []byte) {
	t.Helper()

	if blob.Size() != len(expectedContent) {
		t.Fatalf("Expected size %d, got %d", len(expectedContent), blob.Size())
	}

	if !bytes.Equal(blob.Content(), expectedContent) {
		t.Fatalf("Expected content [%q], got [%q]", expectedContent, blob.Content())
	}
}

// compressBlob compresses blob at the default level and fails test on error.
func compressBlob(t *testing.T, blob *Blob) []byte {
	t.Helper()

	compressed, err := CompressObject(blob, DefaultCompressionLevel)
	if err != nil {
		t.Fatalf("Failed to compress blob: %v", err)
	}

	return compressed
}
