package types

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// ContentIDSize is the byte length of a content identifier (SHA-1 digest).
const ContentIDSize = 20

// ContentID is the 160-bit digest of a file's exact byte sequence. It is
// the file's canonical name in the store and the sole basis for asset
// equality and ordering.
type ContentID [ContentIDSize]byte

// Hex returns the lowercase hexadecimal encoding of the identifier,
// which is the asset's filename in the output store.
func (id ContentID) Hex() string {
	return hex.EncodeToString(id[:])
}

// Compare returns -1, 0 or 1 ordering identifiers bytewise ascending.
func (id ContentID) Compare(other ContentID) int {
	return bytes.Compare(id[:], other[:])
}

func (id ContentID) String() string {
	return id.Hex()
}

// ParseContentID decodes a 40-character lowercase hex string into a
// ContentID.
func ParseContentID(s string) (ContentID, error) {
	var id ContentID
	if len(s) != ContentIDSize*2 {
		return id, fmt.Errorf("content identifier must be %d hex characters, got %d", ContentIDSize*2, len(s))
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return id, fmt.Errorf("invalid content identifier %q: %w", s, err)
	}
	copy(id[:], raw)
	return id, nil
}
