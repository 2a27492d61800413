package rand

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

// charset matches the alphabet Trilium uses for entity identifiers.
const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

var charsetLen = len(charset)

var defaultSource = newSource()

type source struct {
	mut sync.Mutex
	rng *rand.Rand
}

func newSource() *source {
	var seed [16]byte
	if _, err := cryptorand.Read(seed[:]); err != nil {
		panic("unreachable")
	}

	return &source{
		//nolint:gosec // identifiers are not security-sensitive
		rng: rand.New(rand.NewPCG(
			binary.LittleEndian.Uint64(seed[:8]),
			binary.LittleEndian.Uint64(seed[8:]),
		)),
	}
}

func (s *source) id(length int) string {
	buf := make([]byte, length)

	s.mut.Lock()
	for i := range buf {
		buf[i] = charset[s.rng.IntN(charsetLen)]
	}
	s.mut.Unlock()

	return string(buf)
}

// NewID returns a random identifier of the given length drawn uniformly
// from the Trilium id alphabet. Used for caller-assigned note ids and for
// per-request log correlation ids.
func NewID(length int) string {
	return defaultSource.id(length)
}
