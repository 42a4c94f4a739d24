package golurk

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// MoveRecord is the persisted form of a BattleMove
type MoveRecord struct {
	Name      string `json:"name"`
	Power     int    `json:"power"`
	Type      string `json:"type"`
	PP        int    `json:"pp"`
	CurrentPP int    `json:"current_pp"`
	Accuracy  int    `json:"accuracy"`
}

// PokemonRecord is the persisted form of a Pokemon. The stat block is not stored,
// it is always recalculated from these fields on load.
type PokemonRecord struct {
	Species   string       `json:"species"`
	Name      string       `json:"name"`
	Level     int          `json:"level"`
	CurrentHp int          `json:"current_hp"`
	Exp       int          `json:"exp"`
	Ivs       IVs          `json:"ivs"`
	Evs       EVs          `json:"evs"`
	Moves     []MoveRecord `json:"moves"`
	Status    *string      `json:"status"`
	Traded    bool         `json:"traded,omitempty"`
}

func statusName(status int) *string {
	name, found := lo.FindKey(STATUS_NAME_MAP, status)
	if !found {
		return nil
	}

	return &name
}

func (p Pokemon) ToRecord() PokemonRecord {
	return PokemonRecord{
		Species:   p.Species(),
		Name:      p.Name(),
		Level:     p.Level,
		CurrentHp: p.Hp,
		Exp:       p.Exp,
		Ivs:       p.Ivs,
		Evs:       p.Evs,
		Moves: lo.Map(p.Moves, func(m BattleMove, _ int) MoveRecord {
			return MoveRecord{
				Name:      m.Info.Name,
				Power:     m.Info.Power,
				Type:      m.Info.Type,
				PP:        m.Info.PP,
				CurrentPP: m.PP,
				Accuracy:  m.Info.Accuracy,
			}
		}),
		Status: statusName(p.Status),
		Traded: p.Traded,
	}
}

// FromRecord rebuilds a Pokemon from its persisted form. Out of range numbers are clamped,
// structurally invalid records (too many moves, unknown status, bad move data) return ErrBadRecord.
func FromRecord(rec PokemonRecord) (Pokemon, error) {
	if rec.Species == "" {
		return Pokemon{}, fmt.Errorf("%w: missing species", ErrBadRecord)
	}

	if len(rec.Moves) > MAX_MOVES {
		return Pokemon{}, fmt.Errorf("%w: %s has %d moves", ErrBadRecord, rec.Species, len(rec.Moves))
	}

	status := STATUS_NONE
	if rec.Status != nil && *rec.Status != "" {
		s, ok := STATUS_NAME_MAP[strings.ToLower(*rec.Status)]
		if !ok {
			return Pokemon{}, fmt.Errorf("%w: unknown status %q", ErrBadRecord, *rec.Status)
		}
		status = s
	}

	moves := make([]BattleMove, 0, len(rec.Moves))
	for _, mr := range rec.Moves {
		move, err := Move{Name: mr.Name, Power: mr.Power, Type: mr.Type, Accuracy: mr.Accuracy, PP: mr.PP}.validate()
		if err != nil {
			return Pokemon{}, fmt.Errorf("%w: %w", ErrBadRecord, err)
		}

		moves = append(moves, BattleMove{Info: move, PP: min(max(mr.CurrentPP, 0), move.PP)})
	}

	base := GlobalData.GetPokemonOrDefault(rec.Species)
	nickname := rec.Name
	if nickname == base.Name {
		nickname = ""
	}

	poke := Pokemon{
		Base:     base,
		Nickname: nickname,
		Level:    rec.Level,
		Ivs:      rec.Ivs,
		Evs:      rec.Evs,
		Hp:       rec.CurrentHp,
		Moves:    moves,
		Status:   status,
		Traded:   rec.Traded,
	}
	poke.ReCalcStats()
	poke.Exp = max(rec.Exp, ExpForLevel(poke.Level))

	if poke.Status != STATUS_NONE && !poke.Alive() {
		poke.Status = STATUS_NONE
	}

	return poke, nil
}
