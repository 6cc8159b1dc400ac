// Package hasher frames content as a git blob, hashes it with SHA-1,
// compresses it with zlib and writes the result to a caller-supplied path.
package hasher

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/KostasZigo/makehash/internal/constants"
	"github.com/KostasZigo/makehash/internal/objects"
)

var (
	// ErrInputNotFound wraps failures to read the input file.
	ErrInputNotFound = errors.New("input not found or unreadable")

	// ErrOutputWrite wraps failures to write the compressed output.
	ErrOutputWrite = errors.New("failed to write output")
)

// Result holds everything produced by one hashing pass.
type Result struct {
	Blob       *objects.Blob
	Digest     string
	Compressed []byte
}

// ObjectHasher runs the read, frame, hash, compress, write pipeline.
type ObjectHasher struct {
	out   io.Writer
	level int
}

// Option configures an ObjectHasher.
type Option func(*ObjectHasher)

// WithOutput sets where the console blocks are written. Defaults to io.Discard.
func WithOutput(w io.Writer) Option {
	return func(h *ObjectHasher) {
		h.out = w
	}
}

// WithLevel sets the zlib compression level.
func WithLevel(level int) Option {
	return func(h *ObjectHasher) {
		h.level = level
	}
}

// New validates the compression level; console output defaults to io.Discard.
func New(opts ...Option) (*ObjectHasher, error) {
	h := &ObjectHasher{
		out:   io.Discard,
		level: objects.DefaultCompressionLevel,
	}
	for _, opt := range opts {
		opt(h)
	}

	if h.level < constants.MinCompressionLevel || h.level > constants.MaxCompressionLevel {
		return nil, fmt.Errorf("invalid compression level %d: must be between %d and %d",
			h.level, constants.MinCompressionLevel, constants.MaxCompressionLevel)
	}

	return h, nil
}

// HashFile reads inputPath and writes the compressed blob to outputPath.
// The output file is not touched when the input cannot be read.
func (h *ObjectHasher) HashFile(inputPath, outputPath string) (*Result, error) {
	blob, err := objects.NewBlobFromFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputNotFound, err)
	}

	slog.Debug("Read input", "path", inputPath, "size", blob.Size())
	return h.process(blob, outputPath)
}

// HashContent runs the pipeline on in-memory content.
func (h *ObjectHasher) HashContent(content []byte, outputPath string) (*Result, error) {
	return h.process(objects.NewBlob(content), outputPath)
}

func (h *ObjectHasher) process(blob *objects.Blob, outputPath string) (*Result, error) {
	compressed, err := objects.CompressObject(blob, h.level)
	if err != nil {
		return nil, fmt.Errorf("failed to compress object: %w", err)
	}

	result := &Result{
		Blob:       blob,
		Digest:     blob.Hash(),
		Compressed: compressed,
	}

	if err := h.print(result); err != nil {
		return nil, err
	}

	// os.WriteFile truncates an existing file and closes the handle on every path
	if err := os.WriteFile(outputPath, compressed, constants.FilePerms); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrOutputWrite, outputPath, err)
	}

	slog.Debug("Wrote compressed object",
		"path", outputPath,
		"hash", result.Digest,
		"size", blob.Size()+len(blob.Header()),
		"compressed", len(compressed))

	return result, nil
}

// print writes the raw content, the quoted digest and the quoted compressed bytes.
func (h *ObjectHasher) print(result *Result) error {
	if _, err := fmt.Fprintln(h.out, string(result.Blob.Content())); err != nil {
		return fmt.Errorf("failed to print content: %w", err)
	}
	if _, err := fmt.Fprintf(h.out, "%s\n%q\n", constants.DigestLabel, result.Digest); err != nil {
		return fmt.Errorf("failed to print digest: %w", err)
	}
	if _, err := fmt.Fprintf(h.out, "%s\n%q\n", constants.CompressedLabel, result.Compressed); err != nil {
		return fmt.Errorf("failed to print compressed content: %w", err)
	}
	return nil
}
