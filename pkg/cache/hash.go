package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash returns the SHA-256 of data as a 64-character hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey builds a namespaced cache key from arbitrary components. The parts
// are JSON-encoded before hashing so struct options contribute all fields.
func hashKey(namespace string, parts ...any) string {
	encoded, _ := json.Marshal(parts)
	return namespace + ":" + Hash(encoded)
}
