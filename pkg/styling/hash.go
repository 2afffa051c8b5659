package styling

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashLength is the number of hex characters kept from the digest
const HashLength = 8

// Hasher turns the literal text of a fragment into its identity
type Hasher func(text string) string

// Hash returns a short, deterministic content hash for text.
// The same text always yields the same value.
func Hash(text string) string {
	h := sha256.New()
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))[:HashLength]
}

// literalKey concatenates the literal segments of a template.
// Placeholders are not part of the key.
func literalKey(styles []string) string {
	var b strings.Builder
	for _, s := range styles {
		b.WriteString(s)
	}
	return b.String()
}
