package filehash

import (
	"encoding/hex"

	"github.com/minio/sha256-simd"
)

// Valid reports whether s looks like a hex encoded SHA-256 digest.
func Valid(s string) bool {
	if len(s) != sha256.Size*2 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}
