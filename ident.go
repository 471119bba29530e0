package scopedcss

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"regexp"
)

// ClassPrefix starts every generated class identifier.
const ClassPrefix = "css-"

var classPattern = regexp.MustCompile(`^css-[0-9a-f]{8}$`)

// GenerateID derives the class identifier for assembled content: the first
// four bytes of its SHA-256 digest, big-endian, as eight lowercase hex digits.
//
// The identifier is a 32-bit hash, not a UUID. Distinct content colliding is
// unlikely within one build but not impossible.
func GenerateID(content string) string {
	sum := sha256.Sum256([]byte(content))
	return fmt.Sprintf("%s%08x", ClassPrefix, binary.BigEndian.Uint32(sum[:4]))
}

// IsClassID reports whether s has the shape of a generated identifier.
func IsClassID(s string) bool {
	return classPattern.MatchString(s)
}
