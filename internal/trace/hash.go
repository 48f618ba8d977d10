package trace

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DomainSession prefixes session hashes. The version suffix leaves room
// for a future change of serialization.
const DomainSession = "libcore/session/v1"

// Hash returns the hex SHA-256 of the session's canonical JSON, computed as
// SHA256(DomainSession || 0x00 || json).
func Hash(s Session) (string, error) {
	data, err := MarshalCanonical(s)
	if err != nil {
		return "", fmt.Errorf("hash session: %w", err)
	}
	return hashWithDomain(DomainSession, data), nil
}

func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
