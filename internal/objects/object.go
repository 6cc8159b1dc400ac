package objects

// Object represents any framed object that can be hashed and compressed.
type Object interface {
	// Hash returns the SHA-1 hash of the object
	Hash() string

	// Data returns the complete object data including header
	// Format: "<type> <size>\0<content>"
	Data() []byte
}
