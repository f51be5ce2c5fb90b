// Package digest derives BLAKE3 content digests from canonical bencode
// encodings. Because the encoder guarantees that equal logical values
// serialize to identical bytes, these digests are stable content addresses:
// two structurally equal values hash the same no matter how they were built.
package digest

import (
	"encoding/hex"

	"github.com/zeebo/blake3"

	"github.com/eugenesimakin/bendy"
)

// Size is the digest length in bytes.
const Size = 32

// Sum encodes v canonically and returns the BLAKE3-256 digest of the
// resulting bytes.
func Sum(v bendy.Encodable) ([Size]byte, error) {
	data, err := bendy.Encode(v)
	if err != nil {
		return [Size]byte{}, err
	}
	return blake3.Sum256(data), nil
}

// SumWith digests a dynamic emission. The closure must write exactly one
// value; maxDepth bounds its nesting.
func SumWith(fn func(bendy.SingleItemEncoder) error, maxDepth int) ([Size]byte, error) {
	enc := bendy.NewEncoder().WithMaxDepth(maxDepth)
	if err := enc.EmitWith(fn); err != nil {
		return [Size]byte{}, err
	}
	data, err := enc.Output()
	if err != nil {
		return [Size]byte{}, err
	}
	return blake3.Sum256(data), nil
}

// SumBytes digests an already-encoded document.
func SumBytes(data []byte) [Size]byte {
	return blake3.Sum256(data)
}

// Hex renders a digest as lowercase hex.
func Hex(sum [Size]byte) string {
	return hex.EncodeToString(sum[:])
}
