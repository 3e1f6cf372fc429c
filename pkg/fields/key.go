package fields

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

const keyHashLength = 13

// GenerateKey derives a stable key from the parent key and the name, so
// siblings can reference each other without a lookup table.
func GenerateKey(prefix, parentKey, name string) string {
	seed := name
	if parentKey != "" {
		seed = parentKey + "_" + name
	}
	sum := sha1.Sum([]byte(seed))
	return prefix + "_" + hex.EncodeToString(sum[:])[:keyHashLength]
}

// isGeneratedKey reports whether s has the shape GenerateKey produces for
// prefix. A field named "field_notes" is still a name.
func isGeneratedKey(prefix, s string) bool {
	hash, ok := strings.CutPrefix(s, prefix+"_")
	if !ok || len(hash) != keyHashLength {
		return false
	}
	for _, r := range hash {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}
