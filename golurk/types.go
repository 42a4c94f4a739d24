package golurk

import (
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/looplab/fsm"
	"github.com/samber/lo"
)

// plus 1 so the zero value isn't a valid side
const (
	PLAYER = iota + 1
	OPPONENT
)

// BattleState is a single battle between the player and either a wild pokemon or a trainer.
// It is driven entirely through its input methods (Advance, ChooseAction, SelectMove, ...)
// and is owned by one caller for its whole life.
type BattleState struct {
	ID       uuid.UUID
	Player   Player
	Opponent Player
	// Wild battles allow running and catching
	Wild           bool
	Turn           int
	EscapeAttempts int
	Difficulty     Difficulty

	rng   *rand.Rand
	phase *fsm.FSM

	messages []BattleMessage
	outcome  int
	// set when the player's active pokemon fainted and they must pick a replacement
	forcedSwitch bool
	// opposing pokemon that have already given out exp
	rewarded  []bool
	expGained int
	caught    *Pokemon
	lastTurn  TurnResult
}

type Player struct {
	Name            string
	Team            []Pokemon
	ActivePokeIndex int
}

// Lost is true once every pokemon on the team has fainted
func (p Player) Lost() bool {
	return len(p.GetAllAlivePokemon()) == 0
}

func (p Player) GetActivePokemon() *Pokemon {
	return p.GetPokemon(p.ActivePokeIndex)
}

// GetPokemon gets a player's pokemon at some index
func (p Player) GetPokemon(index int) *Pokemon {
	return &p.Team[index]
}

func (p Player) GetAllAlivePokemon() []*Pokemon {
	alivePokemon := make([]*Pokemon, 0)

	for i, pokemon := range p.Team {
		if pokemon.Alive() {
			// grab pointer directly from team slice
			alivePokemon = append(alivePokemon, &p.Team[i])
		}
	}

	return alivePokemon
}

// FirstAliveIndex returns the index of the first pokemon that can still battle, or -1
func (p Player) FirstAliveIndex() int {
	_, index, found := lo.FindIndexOf(p.Team, func(pokemon Pokemon) bool {
		return pokemon.Alive()
	})
	if !found {
		return -1
	}

	return index
}

// ActiveSnapshot is the state of an active pokemon at the moment a message was produced
type ActiveSnapshot struct {
	Name  string
	Level int
	Hp    int
	MaxHp int
}

func snapshotOf(pokemon Pokemon) ActiveSnapshot {
	return ActiveSnapshot{
		Name:  pokemon.Name(),
		Level: pokemon.Level,
		Hp:    pokemon.Hp,
		MaxHp: pokemon.MaxHp,
	}
}

// BattleMessage is one line of battle text along with the HP of both active pokemon
// after whatever produced the line, so HP bars can follow the text
type BattleMessage struct {
	Text     string
	Player   ActiveSnapshot
	Opponent ActiveSnapshot
}

func (b *BattleState) GetPlayer(id int) *Player {
	if id == PLAYER {
		return &b.Player
	} else {
		return &b.Opponent
	}
}

func getPlayerPair(b *BattleState, id int) (*Player, *Player) {
	if id == PLAYER {
		return &b.Player, &b.Opponent
	}

	return &b.Opponent, &b.Player
}

func InvertPlayerIndex(initial int) int {
	if initial == PLAYER {
		return OPPONENT
	}

	return PLAYER
}
