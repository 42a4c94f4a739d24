package golurk

import (
	"fmt"
	"strings"
)

type Move struct {
	Name     string `json:"name"`
	Power    int    `json:"power"`
	Type     string `json:"type"`
	Accuracy int    `json:"accuracy"`
	// Max PP
	PP int `json:"pp"`
}

// IsStatus reports whether the move deals no damage
func (m Move) IsStatus() bool {
	return m.Power == 0
}

// Struggle is used when a pokemon has no PP left on any of its moves
var Struggle = Move{
	Name:     "STRUGGLE",
	Power:    50,
	Type:     TYPENAME_NORMAL,
	Accuracy: 100,
	PP:       1,
}

// BattleMove is a move slot on a pokemon, holding the move and its remaining PP
type BattleMove struct {
	Info Move
	PP   int
}

func NewBattleMove(move Move) BattleMove {
	return BattleMove{Info: move, PP: move.PP}
}

func (bm BattleMove) Usable() bool {
	return bm.PP > 0
}

func (bm BattleMove) String() string {
	return fmt.Sprintf("%s %d/%d", bm.Info.Name, bm.PP, bm.Info.PP)
}

// validate makes sure the move has sane values, filling in defaults where the data omits them
func (m Move) validate() (Move, error) {
	if m.Name == "" {
		return m, fmt.Errorf("move has no name")
	}

	if m.Power < 0 {
		return m, fmt.Errorf("move %s has negative power: %d", m.Name, m.Power)
	}

	m.Type = strings.ToLower(m.Type)
	if m.Type == "" {
		m.Type = TYPENAME_NORMAL
	} else if !IsValidType(m.Type) {
		return m, fmt.Errorf("move %s has unknown type: %s", m.Name, m.Type)
	}

	if m.Accuracy <= 0 {
		m.Accuracy = 100
	}

	if m.PP <= 0 {
		return m, fmt.Errorf("move %s has no PP", m.Name)
	}

	return m, nil
}
