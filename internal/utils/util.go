package utils

import (
	"crypto/rand"
	mrand "math/rand"
	"time"
)

// NewRand returns a source seeded with seed, or with crypto randomness when
// seed is zero.
func NewRand(seed int64) *mrand.Rand {
	if seed == 0 {
		_ = binaryReadRand(&seed) // falls back to time-based if needed
	}
	return mrand.New(mrand.NewSource(seed))
}

// PickOne returns a uniformly chosen element. a must not be empty.
func PickOne[T any](r *mrand.Rand, a []T) T {
	return a[r.Intn(len(a))]
}

// binaryReadRand reads 8 random bytes into an int64 seed.
func binaryReadRand(dst *int64) error {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		*dst = time.Now().UnixNano()
		return err
	}
	*dst = int64(uint64(b[0])<<56 | uint64(b[1])<<48 | uint64(b[2])<<40 | uint64(b[3])<<32 |
		uint64(b[4])<<24 | uint64(b[5])<<16 | uint64(b[6])<<8 | uint64(b[7]))
	return nil
}
