package utils

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strconv"
)

type ObjectType string

const (
	BlobObjectType   ObjectType = "blob"
	TreeObjectType   ObjectType = "tree"
	CommitObjectType ObjectType = "commit"
)

func (ot ObjectType) IsValid() bool {
	switch ot {
	case BlobObjectType, TreeObjectType, CommitObjectType:
		return true
	default:
		return false
	}
}

// BuildHeader encodes "<type> <size>\0" as ASCII bytes.
func BuildHeader(objectType ObjectType, size int) []byte {
	header := make([]byte, 0, len(objectType)+22)
	header = append(header, string(objectType)...)
	header = append(header, ' ')
	header = strconv.AppendInt(header, int64(size), 10)
	return append(header, 0)
}

// Frame returns header followed by content in a freshly allocated slice.
func Frame(objectType ObjectType, content []byte) []byte {
	header := BuildHeader(objectType, len(content))
	data := make([]byte, 0, len(header)+len(content))
	data = append(data, header...)
	return append(data, content...)
}

// ComputeHash calculates the lowercase hex SHA-1 of the framed content.
func ComputeHash(content []byte, objectType ObjectType) (string, error) {
	if !objectType.IsValid() {
		return "", fmt.Errorf("invalid object type: %s - hash not computed", objectType)
	}

	// format: "ObjectType <size>\0<content>"
	hash := sha1.Sum(Frame(objectType, content))
	return hex.EncodeToString(hash[:]), nil
}
