package registry

import (
	"encoding/hex"

	"github.com/stephenlacy/unrealmodding/pkg/archive"
)

// MD5Hash is a cooked package content digest: a fixed 16-byte value carried
// verbatim. The codec never computes or verifies it.
type MD5Hash [16]byte

// DecodeMD5Hash reads the 16 raw digest bytes.
func DecodeMD5Hash(r *archive.Reader) (MD5Hash, error) {
	var h MD5Hash
	b, err := r.ReadBytes(len(h))
	if err != nil {
		return h, err
	}
	copy(h[:], b)
	return h, nil
}

// Encode writes the 16 raw digest bytes.
func (h MD5Hash) Encode(w *archive.Writer) error {
	return w.WriteBytes(h[:])
}

func (h MD5Hash) String() string {
	return hex.EncodeToString(h[:])
}
