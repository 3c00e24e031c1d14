package objects

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Checksum returns a hex BLAKE2b-256 digest of v's canonical JSON form.
// Objects are canonicalised with sorted keys, so two values that are
// [Equal] up to key order share a checksum.
func Checksum(v any) (string, error) {
	b, err := json.Marshal(ToNative(v))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

// Unique returns the elements of c with structural duplicates removed,
// keeping the first occurrence. Elements that cannot be encoded are always
// kept.
func Unique(c any) []any {
	seen := make(map[string]struct{})
	out := make([]any, 0)
	for _, e := range entries(c) {
		sum, err := Checksum(e.Value)
		if err != nil {
			out = append(out, e.Value)
			continue
		}
		if _, dup := seen[sum]; dup {
			continue
		}
		seen[sum] = struct{}{}
		out = append(out, e.Value)
	}
	return out
}
