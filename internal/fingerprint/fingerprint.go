package fingerprint

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"rnlauncher/internal/domain"
)

// Sum returns a short hex fingerprint of data.
func Sum(data []byte) domain.Fingerprint {
	sum := blake2b.Sum256(data)
	return domain.Fingerprint(hex.EncodeToString(sum[:10]))
}
