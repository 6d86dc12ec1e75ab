package lootbag

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Source produces the randomness a resolution consumes. Implementations
// are consumed sequentially; a seeded Source fed the same ordered call
// sequence must yield the same ordered values.
//
// A Source is not safe for concurrent use. Callers resolving in parallel
// give each goroutine its own Source.
type Source interface {
	// Float64 returns a uniform value in [0,1).
	Float64() float64

	// IntN returns a uniform value in [0,n). Panics if n <= 0.
	IntN(n int) int
}

type pcgSource struct {
	r *rand.Rand
}

func (s *pcgSource) Float64() float64 { return s.r.Float64() }
func (s *pcgSource) IntN(n int) int   { return s.r.IntN(n) }

// NewSeeded returns a reproducible Source: the same seed always produces
// the same value stream.
func NewSeeded(seed uint64) Source {
	return &pcgSource{r: rand.New(rand.NewPCG(seed, 0))}
}

// NewSource returns a non-deterministic Source seeded from the operating
// system. It is an explicit object, not ambient process state, so tests
// can always substitute NewSeeded.
func NewSource() Source {
	var buf [16]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		// crypto/rand never fails on supported platforms; fall back to
		// the runtime-seeded generator if it somehow does.
		return &pcgSource{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
	}
	seed1 := binary.LittleEndian.Uint64(buf[0:8])
	seed2 := binary.LittleEndian.Uint64(buf[8:16])
	return &pcgSource{r: rand.New(rand.NewPCG(seed1, seed2))}
}
