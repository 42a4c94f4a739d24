package golurk

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// seedMix keeps the two PCG words apart when both come from one seed
const seedMix = 0x9e3779b97f4a7c15

// CreateRandomStateSeed builds a PCG state from crypto/rand for battles with no configured source
func CreateRandomStateSeed() rand.PCG {
	var randBytes [16]byte
	// crypto/rand.Read never returns an error on supported platforms
	_, _ = cryptoRand.Read(randBytes[:])

	return *rand.NewPCG(binary.LittleEndian.Uint64(randBytes[0:8]), binary.LittleEndian.Uint64(randBytes[8:]))
}

func CreateRNG(seed *rand.PCG) *rand.Rand {
	return rand.New(seed)
}

// SeededSource returns a source that always produces the same rolls for seed, used to replay battles
func SeededSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^seedMix)
}
