package identifier

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"time"

	"Attic/internal/apperrors"
)

// ID is the internal form of a document identifier. Externally it
// round-trips as a 24-character hex string.
type ID [12]byte

// New generates an identifier with a unix-seconds prefix so ids sort
// roughly by creation time, followed by a random tail.
func New() ID {
	var id ID
	binary.BigEndian.PutUint32(id[0:4], uint32(time.Now().Unix()))
	if _, err := rand.Read(id[4:]); err != nil {
		panic(err)
	}
	return id
}

// Decode parses the external string form. A string that cannot name a
// valid identifier fails with a not-found kind: to the caller a
// malformed id and a missing document are the same "no such resource".
func Decode(s string) (ID, error) {
	var id ID
	if len(s) != 24 {
		return id, apperrors.NewNotFound(s)
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return id, apperrors.NewNotFound(s)
	}
	copy(id[:], raw)
	return id, nil
}

func (id ID) Hex() string {
	return hex.EncodeToString(id[:])
}
