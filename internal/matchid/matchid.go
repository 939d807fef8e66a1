// Package matchid generates short identifiers for server match sessions.
package matchid

import (
	"crypto/rand"
	"fmt"
)

// Crockford's base32 alphabet: no i, l, o or u, safe to read back over chat.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length of generated IDs.
const Length = 12

// RandSource lets tests inject deterministic randomness.
type RandSource interface {
	Intn(n int) int
}

// New returns a random match ID using crypto/rand.
func New() string {
	var buf [Length]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic("matchid: failed to read random bytes: " + err.Error())
	}
	out := make([]byte, Length)
	for i, b := range buf {
		out[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(out)
}

// NewWithSource returns a match ID drawn from the provided source.
func NewWithSource(src RandSource) string {
	out := make([]byte, Length)
	for i := range out {
		out[i] = alphabet[src.Intn(len(alphabet))]
	}
	return string(out)
}

// Validate checks that an ID has the expected length and alphabet.
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("match ID must be %d characters, got %d", Length, len(id))
	}
	for i := 0; i < len(id); i++ {
		found := false
		for j := 0; j < len(alphabet); j++ {
			if id[i] == alphabet[j] {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("invalid character %q at position %d", id[i], i)
		}
	}
	return nil
}
