package golurk

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/samber/lo"
)

// BasePokemon is the species entry every pokemon is built from
type BasePokemon struct {
	Name  string
	Type1 string
	// Empty if the species only has one type
	Type2 string

	Hp      int
	Attack  int
	Defense int
	Speed   int
	Special int

	ExpYield int
}

func (b BasePokemon) Types() []string {
	if b.Type2 == "" {
		return []string{b.Type1}
	}

	return []string{b.Type1, b.Type2}
}

// neutralBase is used for species that aren't in the species table
func neutralBase(species string) *BasePokemon {
	return &BasePokemon{
		Name:     species,
		Type1:    TYPENAME_NORMAL,
		Hp:       50,
		Attack:   50,
		Defense:  50,
		Speed:    50,
		Special:  50,
		ExpYield: 50,
	}
}

// IVs are the four independent individual values. The HP IV is derived from them.
type IVs struct {
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	Speed   int `json:"speed"`
	Special int `json:"special"`
}

// Hp builds the HP IV out of the lowest bit of each other IV
func (ivs IVs) Hp() int {
	return (ivs.Attack&1)<<3 | (ivs.Defense&1)<<2 | (ivs.Speed&1)<<1 | ivs.Special&1
}

func (ivs IVs) clamped() IVs {
	return IVs{
		Attack:  clampIv(ivs.Attack),
		Defense: clampIv(ivs.Defense),
		Speed:   clampIv(ivs.Speed),
		Special: clampIv(ivs.Special),
	}
}

// EVs (stat experience). Nothing in the game awards them yet so they are normally all 0.
type EVs struct {
	Hp      int `json:"hp"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	Speed   int `json:"speed"`
	Special int `json:"special"`
}

func (evs EVs) clamped() EVs {
	return EVs{
		Hp:      clampEv(evs.Hp),
		Attack:  clampEv(evs.Attack),
		Defense: clampEv(evs.Defense),
		Speed:   clampEv(evs.Speed),
		Special: clampEv(evs.Special),
	}
}

type StatBlock struct {
	Hp      int
	Attack  int
	Defense int
	Speed   int
	Special int
}

type Pokemon struct {
	Base     *BasePokemon
	Nickname string
	Level    int
	Exp      int

	Ivs IVs
	Evs EVs

	// Stats is never set directly, only through ReCalcStats
	Stats StatBlock
	Hp    int
	MaxHp int

	Moves []BattleMove

	Status      int
	StatusTurns int

	// Traded pokemon earn 1.5x experience
	Traded bool
}

func (p Pokemon) Name() string {
	if p.Nickname != "" {
		return p.Nickname
	}

	return p.Base.Name
}

func (p Pokemon) Species() string {
	return p.Base.Name
}

func (p Pokemon) Types() []string {
	return p.Base.Types()
}

func (p Pokemon) HasType(typeName string) bool {
	return slices.Contains(p.Types(), typeName)
}

func (p Pokemon) Alive() bool {
	return p.Hp > 0
}

// HpPercent returns current hp as a value from 0 to 1
func (p Pokemon) HpPercent() float64 {
	return float64(p.Hp) / float64(max(p.MaxHp, 1))
}

// ReCalcStats recomputes the stat block from base stats, IVs, EVs and level.
// Current HP is clamped to the new max.
func (p *Pokemon) ReCalcStats() {
	p.Level = ClampLevel(p.Level)
	p.Ivs = p.Ivs.clamped()
	p.Evs = p.Evs.clamped()

	base := p.Base
	p.Stats = StatBlock{
		Hp:      CalcHp(base.Hp, p.Ivs.Hp(), p.Evs.Hp, p.Level),
		Attack:  CalcStat(base.Attack, p.Ivs.Attack, p.Evs.Attack, p.Level),
		Defense: CalcStat(base.Defense, p.Ivs.Defense, p.Evs.Defense, p.Level),
		Speed:   CalcStat(base.Speed, p.Ivs.Speed, p.Evs.Speed, p.Level),
		Special: CalcStat(base.Special, p.Ivs.Special, p.Evs.Special, p.Level),
	}
	p.MaxHp = p.Stats.Hp
	p.Hp = min(max(p.Hp, 0), p.MaxHp)
}

// Damage lowers current HP by amount, stopping at 0
func (p *Pokemon) Damage(amount int) {
	if amount <= 0 {
		return
	}

	p.Hp = max(p.Hp-amount, 0)
}

// Heal restores up to amount HP and returns how much was actually restored.
// Fainted pokemon can't be healed.
func (p *Pokemon) Heal(amount int) int {
	if !p.Alive() || amount <= 0 {
		return 0
	}

	before := p.Hp
	p.Hp = min(p.Hp+amount, p.MaxHp)

	return p.Hp - before
}

// FullHeal restores HP, PP and status. Unlike Heal, this revives fainted pokemon.
func (p *Pokemon) FullHeal() {
	p.Hp = p.MaxHp
	p.Status = STATUS_NONE
	p.StatusTurns = 0

	for i := range p.Moves {
		p.Moves[i].PP = p.Moves[i].Info.PP
	}
}

// CureStatus removes status if the pokemon currently has it. STATUS_NONE cures anything.
func (p *Pokemon) CureStatus(status int) bool {
	if !p.Alive() || p.Status == STATUS_NONE {
		return false
	}

	if status != STATUS_NONE && p.Status != status {
		return false
	}

	p.Status = STATUS_NONE
	p.StatusTurns = 0

	return true
}

func (p Pokemon) HasUsableMove() bool {
	return lo.SomeBy(p.Moves, func(m BattleMove) bool {
		return m.Usable()
	})
}

// UsableMoves returns the indexes of every move that still has PP
func (p Pokemon) UsableMoves() []int {
	indexes := make([]int, 0, len(p.Moves))
	for i, move := range p.Moves {
		if move.Usable() {
			indexes = append(indexes, i)
		}
	}

	return indexes
}

// MoveAt returns the move in slot index, or Struggle for STRUGGLE_INDEX
func (p Pokemon) MoveAt(index int) Move {
	if index == STRUGGLE_INDEX || index < 0 || index >= len(p.Moves) {
		return Struggle
	}

	return p.Moves[index].Info
}

// CanUseMove checks whether index is a legal selection without changing anything
func (p Pokemon) CanUseMove(index int) error {
	if index == STRUGGLE_INDEX {
		if p.HasUsableMove() {
			return fmt.Errorf("%w: %s still has moves with PP left", ErrNotAllowed, p.Name())
		}

		return nil
	}

	if index < 0 || index >= len(p.Moves) {
		return fmt.Errorf("%w: move index %d out of range", ErrNotAllowed, index)
	}

	if !p.Moves[index].Usable() {
		return fmt.Errorf("%w: %s has no PP left", ErrNotAllowed, p.Moves[index].Info.Name)
	}

	return nil
}

// UseMove validates and consumes one PP of the move at index
func (p *Pokemon) UseMove(index int) (Move, error) {
	if err := p.CanUseMove(index); err != nil {
		return Move{}, err
	}

	if index == STRUGGLE_INDEX {
		return Struggle, nil
	}

	p.Moves[index].PP--

	return p.Moves[index].Info, nil
}

// ExpToNextLevel returns how much more exp is needed to level up. Always 0 at max level.
func (p Pokemon) ExpToNextLevel() int {
	if p.Level >= MAX_LEVEL {
		return 0
	}

	return max(ExpForLevel(p.Level+1)-p.Exp, 0)
}

// GainExp adds experience and levels up as many times as it allows.
// HP gained from leveling is added to current HP. Returns true if the pokemon leveled.
func (p *Pokemon) GainExp(amount int) bool {
	if p.Level >= MAX_LEVEL || amount <= 0 {
		return false
	}

	p.Exp += amount

	leveled := false
	for p.Level < MAX_LEVEL && p.Exp >= ExpForLevel(p.Level+1) {
		oldMax := p.MaxHp
		p.Level++
		p.ReCalcStats()

		if p.Alive() {
			p.Hp = min(p.Hp+(p.MaxHp-oldMax), p.MaxHp)
		}

		leveled = true
		internalLogger.WithName("exp").V(1).Info("pokemon leveled up", "pokemon_name", p.Name(), "level", p.Level)
	}

	return leveled
}

// NewPokemon creates a pokemon of species at level with random IVs, no EVs and its default moves.
// Unknown species get a neutral stat block instead of failing.
func NewPokemon(species string, level int, rng *rand.Rand) Pokemon {
	return NewPokeBuilder(GlobalData.GetPokemonOrDefault(species), rng).
		SetLevel(level).
		SetRandomIvs().
		SetDefaultMoves().
		Build()
}
