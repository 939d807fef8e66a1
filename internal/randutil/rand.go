// Package randutil centralises how seeds are derived and consumed so that
// every deck shuffled from the same seed string comes out identically,
// including decks recorded by earlier sessions.
package randutil

const (
	lcgMultiplier = 1664525
	lcgIncrement  = 1013904223

	fnvOffsetBasis = 2166136261
	fnvPrime       = 16777619
)

// Stream is a deterministic pseudo-random stream backed by a 32-bit linear
// congruential generator. Two Streams created with the same seed produce the
// same sequence forever.
type Stream struct {
	state uint32
}

// New returns a Stream seeded with the given value.
func New(seed uint32) *Stream {
	return &Stream{state: seed}
}

// NewString returns a Stream seeded from an arbitrary string via SeedString.
func NewString(seed string) *Stream {
	return New(SeedString(seed))
}

// Float64 advances the stream and returns the next value in [0, 1).
func (s *Stream) Float64() float64 {
	s.state = s.state*lcgMultiplier + lcgIncrement
	return float64(s.state) / (1 << 32)
}

// Intn returns a value in [0, n) drawn from the stream. n must be positive.
func (s *Stream) Intn(n int) int {
	return int(s.Float64() * float64(n))
}

// SeedString folds an arbitrary string into a 32-bit seed using an FNV-1a
// style hash. Not cryptographic; only stability across runs matters.
func SeedString(text string) uint32 {
	h := uint32(fnvOffsetBasis)
	for _, r := range text {
		h ^= uint32(r)
		h *= fnvPrime
	}
	return h
}
