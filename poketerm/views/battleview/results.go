package battleview

import (
	"fmt"

	"github.com/nathanieltooley/pallet/golurk"
	"github.com/nathanieltooley/pallet/poketerm/shared/savefs"
	"github.com/rs/zerolog/log"
)

// Summary is what the end screen reports about a finished battle
type Summary struct {
	Outcome int
	Exp     int
	// money won, or lost when negative
	Money       int
	Caught      string
	CaughtToBox bool
}

// ApplyResults writes a finished battle back into the session. prize is the trainer's prize money, 0 for wild battles.
// Blacking out costs half the player's money and sends them back to a pokemon center.
func ApplyResults(session *savefs.Session, battle *golurk.BattleState, prize int) Summary {
	summary := Summary{
		Outcome: battle.Outcome(),
		Exp:     battle.ExpGained(),
	}

	// the engine hands out a starter when the party is empty, so its team is the one to keep
	session.Party = battle.Player.Team

	switch battle.Outcome() {
	case golurk.OUTCOME_VICTORY:
		if !battle.Wild {
			summary.Money = prize
			session.AddMoney(prize)
		}
	case golurk.OUTCOME_DEFEAT:
		summary.Money = -(session.Money / 2)
		session.AddMoney(summary.Money)
		session.HealParty()
	case golurk.OUTCOME_CAUGHT:
		if caught := battle.CaughtPokemon(); caught != nil {
			summary.Caught = caught.Name()
			summary.CaughtToBox = session.AddCaught(*caught)
		}
	}

	log.Info().
		Str("battle_id", battle.ID.String()).
		Int("outcome", summary.Outcome).
		Int("exp", summary.Exp).
		Int("money", summary.Money).
		Str("caught", summary.Caught).
		Msg("battle results applied")

	return summary
}

func (s Summary) Title() string {
	switch s.Outcome {
	case golurk.OUTCOME_VICTORY:
		return "You Won!"
	case golurk.OUTCOME_DEFEAT:
		return "You Blacked Out :("
	case golurk.OUTCOME_FLED:
		return "Got Away Safely"
	case golurk.OUTCOME_CAUGHT:
		return "Gotcha!"
	default:
		return "Battle Over"
	}
}

func (s Summary) Lines() []string {
	lines := make([]string, 0, 3)

	if s.Exp > 0 {
		lines = append(lines, fmt.Sprintf("Earned %d EXP. Points", s.Exp))
	}

	if s.Money > 0 {
		lines = append(lines, fmt.Sprintf("Got $%d for winning!", s.Money))
	} else if s.Money < 0 {
		lines = append(lines, fmt.Sprintf("Dropped $%d in panic...", -s.Money))
	}

	if s.Caught != "" {
		if s.CaughtToBox {
			lines = append(lines, fmt.Sprintf("%s was sent to the PC box", s.Caught))
		} else {
			lines = append(lines, fmt.Sprintf("%s joined your party", s.Caught))
		}
	}

	return lines
}
