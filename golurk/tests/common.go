// Package tests contains integration tests that drive whole battles through golurk's public API
package tests

import (
	"math"
	"math/rand/v2"

	"github.com/nathanieltooley/pallet/golurk"
)

// getPokemon builds a pokemon with 0 IVs so its stats are predictable. Moves are the species defaults unless given.
func getPokemon(species string, level int, moves ...string) golurk.Pokemon {
	builder := golurk.NewPokeBuilder(golurk.GlobalData.GetPokemonByName(species), nil).SetLevel(level)

	if len(moves) > 0 {
		ms := make([]golurk.Move, 0, len(moves))
		for _, name := range moves {
			ms = append(ms, *golurk.GlobalData.GetMove(name))
		}
		builder.SetMoves(ms)
	}

	return builder.Build()
}

func highConfig(difficulty golurk.Difficulty) golurk.BattleConfig {
	return golurk.BattleConfig{Difficulty: difficulty, Source: highSource{}}
}

// drain advances past every queued message, failing after too many to avoid looping forever
func drain(battle *golurk.BattleState) ([]string, error) {
	seen := make([]string, 0)

	for range 100 {
		message, ok := battle.CurrentMessage()
		if !ok {
			return seen, nil
		}

		seen = append(seen, message.Text)
		if err := battle.Advance(); err != nil {
			return seen, err
		}
	}

	return seen, nil
}

type highSource struct{}

func (highSource) Uint64() uint64 {
	return math.MaxUint64
}

// countingSource counts every draw made from it
type countingSource struct {
	draws int
	inner rand.Source
}

func (s *countingSource) Uint64() uint64 {
	s.draws++
	return s.inner.Uint64()
}
