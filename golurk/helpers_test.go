package golurk

import (
	"math"
	"math/rand/v2"
)

type highSource struct{}

func (highSource) Uint64() uint64 {
	return math.MaxUint64
}

func highRng() *rand.Rand {
	return rand.New(highSource{})
}

func seededRng() *rand.Rand {
	return rand.New(SeededSource(7))
}

func mustNotBeNil[T any](value *T) T {
	if value == nil {
		panic(value)
	}

	return *value
}

// buildPokemon creates a pokemon with all 0 IVs so stats are predictable
func buildPokemon(species string, level int, moves ...string) Pokemon {
	builder := NewPokeBuilder(GlobalData.GetPokemonByName(species), nil).SetLevel(level)
	if len(moves) > 0 {
		ms := make([]Move, 0, len(moves))
		for _, name := range moves {
			ms = append(ms, mustNotBeNil(GlobalData.GetMove(name)))
		}
		builder.SetMoves(ms)
	}

	return builder.Build()
}

// fixedSource always returns the same value, so any IntN with a power of two n rolls value mod n
type fixedSource uint64

func (s fixedSource) Uint64() uint64 {
	return uint64(s)
}
