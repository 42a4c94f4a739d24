package golurk

import (
	"math/rand/v2"
	"strings"

	"github.com/go-logr/logr"
)

type Difficulty int

const (
	AI_EASY Difficulty = iota + 1
	AI_NORMAL
	AI_HARD
)

// STATUS_MOVE_SCORE lets the AI pick status moves once in a while
const STATUS_MOVE_SCORE = 10.0

// SWITCH_MARGIN is how much better another team member's matchup must be before the AI switches to it
const SWITCH_MARGIN = 50.0

var aiLogger = func() logr.Logger {
	return internalLogger.WithName("ai")
}

func (d Difficulty) String() string {
	switch d {
	case AI_EASY:
		return "easy"
	case AI_HARD:
		return "hard"
	default:
		return "normal"
	}
}

// ParseDifficulty turns a config string into a Difficulty, defaulting to AI_NORMAL
func ParseDifficulty(name string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "easy":
		return AI_EASY
	case "hard":
		return AI_HARD
	default:
		return AI_NORMAL
	}
}

type MoveChoice struct {
	// Index into the attacker's moves, or STRUGGLE_INDEX
	Index int
	Move  Move
}

// ChooseMove picks the move an AI controlled pokemon will use this turn.
// Only moves with PP are considered, Struggle is used if there are none.
func ChooseMove(attacker Pokemon, defender Pokemon, difficulty Difficulty, rng *rand.Rand) MoveChoice {
	candidates := attacker.UsableMoves()
	if len(candidates) == 0 {
		aiLogger().V(1).Info("no usable moves, struggling", "pokemon_name", attacker.Name())
		return MoveChoice{Index: STRUGGLE_INDEX, Move: Struggle}
	}

	var index int
	switch difficulty {
	case AI_EASY:
		index = randomMove(candidates, rng)
	case AI_HARD:
		index = bestMove(attacker, defender, candidates)
	default:
		// each call flips its own coin
		if rng.Float64() < 0.5 {
			index = bestMove(attacker, defender, candidates)
		} else {
			index = randomMove(candidates, rng)
		}
	}

	move := attacker.Moves[index].Info
	aiLogger().V(1).Info("chose move", "pokemon_name", attacker.Name(), "move", move.Name, "difficulty", difficulty.String())

	return MoveChoice{Index: index, Move: move}
}

func randomMove(candidates []int, rng *rand.Rand) int {
	return candidates[rng.IntN(len(candidates))]
}

// bestMove keeps the first move with the highest score
func bestMove(attacker Pokemon, defender Pokemon, candidates []int) int {
	best := candidates[0]
	bestScore := 0.0

	for _, i := range candidates {
		score := ScoreMove(attacker.Moves[i].Info, attacker, defender)
		if score > bestScore {
			best = i
			bestScore = score
		}
	}

	return best
}

// ScoreMove rates how good move is against defender
func ScoreMove(move Move, attacker Pokemon, defender Pokemon) float64 {
	if move.IsStatus() {
		return STATUS_MOVE_SCORE
	}

	score := float64(move.Power) * CombinedEffectiveness(move.Type, defender.Types())
	if attacker.HasType(move.Type) {
		score *= STAB_MULTIPLIER
	}

	return score * float64(move.Accuracy) / 100
}

// MatchupScore rates how well pokemon is positioned against opponent.
// Super effective moves add to the score, opponent types that are super effective against pokemon subtract from it,
// and the total is scaled by pokemon's remaining HP.
func MatchupScore(pokemon Pokemon, opponent Pokemon) float64 {
	score := 0.0

	for _, move := range pokemon.Moves {
		if move.Info.IsStatus() {
			continue
		}

		eff := CombinedEffectiveness(move.Info.Type, opponent.Types())
		if eff > 1 {
			score += 50 * eff
		}
	}

	for _, opposingType := range opponent.Types() {
		eff := CombinedEffectiveness(opposingType, pokemon.Types())
		if eff > 1 {
			score -= 30 * eff
		}
	}

	return score * pokemon.HpPercent()
}

// ShouldSwitch returns the index of the team member the AI should switch to, if any.
// AI_EASY never switches.
func ShouldSwitch(current int, team []Pokemon, opponent Pokemon, difficulty Difficulty) (int, bool) {
	if difficulty == AI_EASY || current < 0 || current >= len(team) {
		return -1, false
	}

	bestScore := MatchupScore(team[current], opponent)
	bestIndex := -1

	for i, pokemon := range team {
		if i == current || !pokemon.Alive() {
			continue
		}

		score := MatchupScore(pokemon, opponent)
		if score > bestScore+SWITCH_MARGIN {
			bestScore = score
			bestIndex = i
		}
	}

	if bestIndex == -1 {
		return -1, false
	}

	aiLogger().V(1).Info("ai wants to switch", "from", team[current].Name(), "to", team[bestIndex].Name(), "score", bestScore)

	return bestIndex, true
}
