package s3mark

import "math/rand"

// NewPayload returns a buffer of exactly size pseudo-random bytes. The
// buffer is generated once per run and shared read-only by all upload
// workers. The content is deterministic for a given size, so an upload run
// and a later download run against the same keys can be compared byte for
// byte.
func NewPayload(size uint64) []byte {
	buf := make([]byte, size)
	rng := rand.New(rand.NewSource(int64(size)))
	rng.Read(buf)
	return buf
}
