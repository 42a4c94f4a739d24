package golurk

import (
	"math/rand/v2"

	"github.com/go-logr/logr"
	"github.com/samber/lo"
)

var builderLogger = func() logr.Logger {
	return internalLogger.WithName("pokemon_builder")
}

type PokemonBuilder struct {
	poke Pokemon
	rng  *rand.Rand
}

func NewPokeBuilder(base *BasePokemon, rng *rand.Rand) *PokemonBuilder {
	poke := Pokemon{
		Base:  base,
		Level: MIN_LEVEL,
	}

	return &PokemonBuilder{poke, rng}
}

func (pb *PokemonBuilder) SetNickname(name string) *PokemonBuilder {
	pb.poke.Nickname = name
	return pb
}

func (pb *PokemonBuilder) SetEvs(evs EVs) *PokemonBuilder {
	pb.poke.Evs = evs

	builderLogger().V(2).Info("setting EVs",
		"hp", evs.Hp,
		"attack", evs.Attack,
		"defense", evs.Defense,
		"speed", evs.Speed,
		"special", evs.Special)

	return pb
}

func (pb *PokemonBuilder) SetIvs(ivs IVs) *PokemonBuilder {
	pb.poke.Ivs = ivs

	builderLogger().V(2).Info("setting IVs",
		"attack", ivs.Attack,
		"defense", ivs.Defense,
		"speed", ivs.Speed,
		"special", ivs.Special,
		"derived_hp", ivs.Hp())

	return pb
}

func (pb *PokemonBuilder) SetRandomIvs() *PokemonBuilder {
	return pb.SetIvs(IVs{
		Attack:  pb.rng.IntN(MAX_IV + 1),
		Defense: pb.rng.IntN(MAX_IV + 1),
		Speed:   pb.rng.IntN(MAX_IV + 1),
		Special: pb.rng.IntN(MAX_IV + 1),
	})
}

func (pb *PokemonBuilder) SetLevel(level int) *PokemonBuilder {
	pb.poke.Level = ClampLevel(level)
	return pb
}

// SetRandomLevel picks a level between low and high, inclusive
func (pb *PokemonBuilder) SetRandomLevel(low int, high int) *PokemonBuilder {
	if high < low {
		low, high = high, low
	}

	pb.poke.Level = ClampLevel(low + pb.rng.IntN(high-low+1))

	return pb
}

// SetMoves sets up to MAX_MOVES moves with full PP. Extra moves are dropped.
func (pb *PokemonBuilder) SetMoves(moves []Move) *PokemonBuilder {
	if len(moves) > MAX_MOVES {
		builderLogger().Info("pokemon was given too many moves, dropping the extras", "pokemon_name", pb.poke.Base.Name, "count", len(moves))
		moves = moves[:MAX_MOVES]
	}

	pb.poke.Moves = lo.Map(moves, func(move Move, _ int) BattleMove {
		return NewBattleMove(move)
	})

	return pb
}

func (pb *PokemonBuilder) SetDefaultMoves() *PokemonBuilder {
	return pb.SetMoves(GlobalData.GetDefaultMoves(pb.poke.Base.Name))
}

func (pb *PokemonBuilder) SetTraded(traded bool) *PokemonBuilder {
	pb.poke.Traded = traded
	return pb
}

// Build finalizes the pokemon: stats are calculated, HP is full and exp sits at the start of its level
func (pb *PokemonBuilder) Build() Pokemon {
	if len(pb.poke.Moves) == 0 {
		pb.SetDefaultMoves()
	}

	pb.poke.ReCalcStats()
	pb.poke.Hp = pb.poke.MaxHp
	pb.poke.Exp = ExpForLevel(pb.poke.Level)

	builderLogger().V(1).Info("built pokemon", "species", pb.poke.Base.Name, "level", pb.poke.Level, "max_hp", pb.poke.MaxHp)

	return pb.poke
}
