package genproc

import (
	"encoding/binary"
	"math/rand/v2"
)

// Seed is the small, human-typeable world seed a player enters.
type Seed uint32

// ProbabilityWeight is an unnormalized weight in a cumulative
// distribution.
type ProbabilityWeight = uint32

// NewRng expands seed into a full ChaCha8 state and returns the
// resulting reproducible source: same seed, same stream, across
// platforms and runs, grounded on thedes-gen's create_reproducible_rng.
func NewRng(seed Seed) *rand.Rand {
	var full [32]byte
	for i := 0; i < len(full)/4; i++ {
		bits := uint32(seed) - uint32(i)
		bits ^= uint32(i) << 14
		binary.LittleEndian.PutUint32(full[i*4:i*4+4], bits)
	}
	return rand.New(rand.NewChaCha8(full))
}
