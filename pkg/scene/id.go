package scene

import (
	"crypto/sha256"
	"encoding/hex"
)

// ID is a content-addressed identifier derived from a curve's name.
type ID [sha256.Size]byte

// ZeroID is the ID of nothing.
var ZeroID ID

// NewID returns the ID for the given name.
func NewID(name string) ID {
	return sha256.Sum256([]byte(name))
}

func (id ID) String() string {
	return hex.EncodeToString(id[:])
}

// Short returns the first 8 hex characters, for messages.
func (id ID) Short() string {
	return id.String()[:8]
}

// IsZero reports whether id is the zero ID.
func (id ID) IsZero() bool {
	return id == ZeroID
}
