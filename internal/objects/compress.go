package objects

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// DefaultCompressionLevel selects the library's default compression level.
const DefaultCompressionLevel = zlib.DefaultCompression

// Compress wraps data in a zlib stream at the given level.
func Compress(data []byte, level int) ([]byte, error) {
	var buffer bytes.Buffer
	writer, err := zlib.NewWriterLevel(&buffer, level)
	if err != nil {
		return nil, fmt.Errorf("zlib compress: %w", err)
	}

	if _, err := writer.Write(data); err != nil {
		return nil, fmt.Errorf("zlib compress: %w", err)
	}

	// Close flushes the final block and the adler32 trailer
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("zlib compress: %w", err)
	}

	return buffer.Bytes(), nil
}

// Decompress reads a complete zlib stream.
func Decompress(compressed []byte) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("zlib decompress: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("zlib decompress: %w", err)
	}
	return data, nil
}

// CompressObject compresses the framed form of obj.
func CompressObject(obj Object, level int) ([]byte, error) {
	return Compress(obj.Data(), level)
}
