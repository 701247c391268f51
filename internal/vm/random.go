package vm

import "math/rand/v2"

// Random is a source of random bytes for the CXNN instruction.
type Random interface {
	Byte() uint8
}

type pcgRandom struct {
	rng *rand.Rand
}

// NewRandom returns a deterministic random byte source for the given seed.
func NewRandom(seed uint64) Random {
	return &pcgRandom{
		rng: rand.New(rand.NewPCG(seed, seed)),
	}
}

// Byte returns the next random byte.
func (r *pcgRandom) Byte() uint8 {
	return uint8(r.rng.UintN(256))
}
