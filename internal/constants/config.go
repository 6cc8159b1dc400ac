package constants

import "os"

// Command name constants used in tests and error messages.
// Cobra Use fields remain inline for CLI discoverability.
const (
	HashObjectCmdName = "hash-object"
	InflateCmdName    = "inflate"
)

// Default paths used when the caller does not supply any.
const (
	// DefaultInputPath is the file read by hash-object when no input is given.
	DefaultInputPath = "first-file"

	// DefaultOutputPath receives the compressed blob and is read back by inflate.
	DefaultOutputPath = "zlc_python"
)

// Console labels printed ahead of the digest and the compressed bytes.
const (
	DigestLabel     = "SHA hexdigest:"
	CompressedLabel = "zlib_content:"
)

// File system permissions for created files.
const (
	// FilePerms grants read/write to owner, read-only to others (rw-r--r--).
	FilePerms os.FileMode = 0644
)

// Cryptographic hash properties.
const (
	// HashByteLength is byte length of SHA-1 hash (20 bytes).
	HashByteLength = 20

	// HashStringLength is hex string length of SHA-1 hash (40 characters).
	HashStringLength = 40
)

// Object header format.
const (
	// BlobPrefix identifies blob objects in headers ("blob <size>\0").
	BlobPrefix = "blob "

	// NullByte separates header from content.
	NullByte = '\x00'
)

// Compression level bounds accepted by the zlib writer.
const (
	// MinCompressionLevel is zlib's Huffman-only mode.
	MinCompressionLevel = -2

	// MaxCompressionLevel is zlib's best compression.
	MaxCompressionLevel = 9
)
