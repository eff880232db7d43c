package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/matzehuels/pivotgrid/pkg/layout"
)

// layoutKeyVersion changes whenever the layout computation does, so old
// entries stop matching.
const layoutKeyVersion = "v1"

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// LayoutKey returns the key of the layout computed for the request with
// hash requestHash under metrics m.
func LayoutKey(requestHash string, m layout.Metrics) string {
	return hashKey("layout:"+layoutKeyVersion, requestHash, m)
}
