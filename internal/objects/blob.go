package objects

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/KostasZigo/makehash/internal/constants"
	"github.com/KostasZigo/makehash/utils"
)

type Blob struct {
	content []byte
	hash    string
}

func NewBlob(content []byte) *Blob {
	hash, _ := utils.ComputeHash(content, utils.BlobObjectType)
	return &Blob{
		content: content,
		hash:    hash,
	}
}

// NewBlobFromFile reads the file as raw bytes; no text decoding happens.
func NewBlobFromFile(filepath string) (*Blob, error) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filepath, err)
	}
	return NewBlob(content), nil
}

// ParseBlob rebuilds a blob from its framed form "blob <size>\0<content>".
// The declared size must match the content length exactly.
func ParseBlob(data []byte) (*Blob, error) {
	nullByteIndex := bytes.IndexByte(data, constants.NullByte)
	if nullByteIndex == -1 {
		return nil, fmt.Errorf("invalid object format: no null byte found")
	}

	header := data[:nullByteIndex]
	if !bytes.HasPrefix(header, []byte(constants.BlobPrefix)) {
		return nil, fmt.Errorf("invalid object format: expected %q header, got %q", constants.BlobPrefix, header)
	}

	sizeField := string(header[len(constants.BlobPrefix):])
	size, err := strconv.Atoi(sizeField)
	// only the canonical decimal form written by BuildHeader is accepted
	if err != nil || size < 0 || strconv.Itoa(size) != sizeField {
		return nil, fmt.Errorf("invalid object format: bad size %q", sizeField)
	}

	content := data[nullByteIndex+1:]
	if size != len(content) {
		return nil, fmt.Errorf("size mismatch: header declares %d bytes, content has %d", size, len(content))
	}

	return NewBlob(content), nil
}

func (b *Blob) Hash() string {
	return b.hash
}

func (b *Blob) Content() []byte {
	return b.content
}

func (b *Blob) Size() int {
	return len(b.content)
}

func (b *Blob) Header() []byte {
	return utils.BuildHeader(utils.BlobObjectType, b.Size())
}

// Data returns the header followed by the content.
func (b *Blob) Data() []byte {
	return utils.Frame(utils.BlobObjectType, b.content)
}

func (b *Blob) String() string {
	return fmt.Sprintf("Blob{hash: %s, size: %d bytes}", b.hash, b.Size())
}
