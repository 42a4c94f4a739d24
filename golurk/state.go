package golurk

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
)

type BattleConfig struct {
	// Shown in battle messages, defaults to "RED"
	PlayerName string
	Difficulty Difficulty
	// Every random roll in the battle comes from this source. A crypto seeded PCG is used when nil
	Source rand.Source
	// StrictParty makes an empty party an error instead of handing the player a starter
	StrictParty bool
}

func (c BattleConfig) rng() *rand.Rand {
	if c.Source != nil {
		return rand.New(c.Source)
	}

	seed := CreateRandomStateSeed()
	return CreateRNG(&seed)
}

// DefaultParty is given to players who start a battle with no pokemon
func DefaultParty(rng *rand.Rand) []Pokemon {
	return []Pokemon{NewPokemon(STARTER_SPECIES, STARTER_LEVEL, rng)}
}

// NewWildBattle starts a battle against a wild pokemon rolled from encounter.
// An empty species falls back to the default wild encounter.
func NewWildBattle(party []Pokemon, encounter WildEncounter, cfg BattleConfig) (*BattleState, error) {
	rng := cfg.rng()

	if encounter.Species == "" {
		encounter = WildEncounter{Species: DEFAULT_WILD_SPECIES, LevelMin: DEFAULT_WILD_LEVEL_MIN, LevelMax: DEFAULT_WILD_LEVEL_MAX}
	}

	wildPokemon := NewPokeBuilder(GlobalData.GetPokemonOrDefault(encounter.Species), rng).
		SetRandomLevel(encounter.LevelMin, encounter.LevelMax).
		SetRandomIvs().
		SetDefaultMoves().
		Build()

	return newBattle(party, Player{Name: "Wild", Team: []Pokemon{wildPokemon}}, true, cfg, rng)
}

// NewWildBattleWith starts a wild battle against an already built pokemon
func NewWildBattleWith(party []Pokemon, wildPokemon Pokemon, cfg BattleConfig) (*BattleState, error) {
	return newBattle(party, Player{Name: "Wild", Team: []Pokemon{wildPokemon}}, true, cfg, cfg.rng())
}

// NewTrainerBattle starts a battle against trainer, building their team
func NewTrainerBattle(party []Pokemon, trainer Trainer, cfg BattleConfig) (*BattleState, error) {
	rng := cfg.rng()
	return newBattle(party, Player{Name: trainer.DisplayName(), Team: trainer.BuildTeam(rng)}, false, cfg, rng)
}

// NewTrainerBattleWith starts a trainer battle against an already built team
func NewTrainerBattleWith(party []Pokemon, trainerName string, team []Pokemon, cfg BattleConfig) (*BattleState, error) {
	return newBattle(party, Player{Name: trainerName, Team: team}, false, cfg, cfg.rng())
}

// newBattle sets up the battle and queues the opening messages.
// The party slice is used directly so the caller sees HP, PP and exp changes once the battle is over.
func newBattle(party []Pokemon, opponent Player, wild bool, cfg BattleConfig, rng *rand.Rand) (*BattleState, error) {
	if len(party) == 0 {
		if cfg.StrictParty {
			return nil, ErrEmptyParty
		}

		internalLogger.Info("player has no pokemon, giving them a starter", "species", STARTER_SPECIES)
		party = DefaultParty(rng)
	}

	if len(party) > MAX_PARTY {
		return nil, fmt.Errorf("party has %d pokemon, the max is %d", len(party), MAX_PARTY)
	}

	if len(opponent.Team) == 0 {
		return nil, fmt.Errorf("%s has no pokemon", opponent.Name)
	}

	playerName := strings.TrimSpace(cfg.PlayerName)
	if playerName == "" {
		playerName = "RED"
	}

	difficulty := cfg.Difficulty
	if difficulty == 0 {
		difficulty = AI_NORMAL
	}

	player := Player{Name: playerName, Team: party}
	player.ActivePokeIndex = max(player.FirstAliveIndex(), 0)
	opponent.ActivePokeIndex = max(opponent.FirstAliveIndex(), 0)

	id := uuid.New()
	battle := &BattleState{
		ID:         id,
		Player:     player,
		Opponent:   opponent,
		Wild:       wild,
		Difficulty: difficulty,
		rng:        rng,
		phase:      newPhaseMachine(id.String()),
		rewarded:   make([]bool, len(opponent.Team)),
	}

	internalLogger.Info("battle started", "battle_id", id.String(), "wild", wild, "opponent", opponent.Name, "difficulty", difficulty.String())

	opposing := battle.Opponent.GetActivePokemon()
	if wild {
		battle.queueMessages(fmt.Sprintf("Wild %s appeared!", opposing.Name()))
	} else {
		battle.queueMessages(
			fmt.Sprintf("%s wants to battle!", opponent.Name),
			fmt.Sprintf("%s sent out %s!", opponent.Name, opposing.Name()),
		)
	}

	if battle.Player.GetActivePokemon().Alive() {
		battle.queueMessages(fmt.Sprintf("Go! %s!", battle.Player.GetActivePokemon().Name()))
	}

	return battle, nil
}
