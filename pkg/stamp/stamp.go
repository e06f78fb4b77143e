// Package stamp fingerprints generated artifacts for the run manifest.
package stamp

import (
	"crypto/sha256"
	"encoding/hex"
)

// Stamp identifies one serialized artifact.
type Stamp struct {
	SHA256 string
	Bytes  int
}

// Fingerprint computes the hex SHA-256 of the content.
func Fingerprint(content []byte) string {
	sum := sha256.Sum256(content)

	return hex.EncodeToString(sum[:])
}

// New stamps the given serialized artifact.
func New(content []byte) Stamp {
	return Stamp{
		SHA256: Fingerprint(content),
		Bytes:  len(content),
	}
}
