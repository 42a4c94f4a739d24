package golurk

import (
	"fmt"
	"slices"
)

func (b *BattleState) queueMessages(messages ...string) {
	for _, message := range messages {
		b.messages = append(b.messages, BattleMessage{
			Text:     message,
			Player:   snapshotOf(*b.Player.GetActivePokemon()),
			Opponent: snapshotOf(*b.Opponent.GetActivePokemon()),
		})
	}
}

// opposingName is how opposing pokemon are referred to in messages
func (b *BattleState) opposingName(pokemon Pokemon) string {
	if b.Wild {
		return "Wild " + pokemon.Name()
	}

	return "Enemy " + pokemon.Name()
}

func (b *BattleState) displayName(playerID int, pokemon Pokemon) string {
	if playerID == OPPONENT {
		return b.opposingName(pokemon)
	}

	return pokemon.Name()
}

// CurrentMessage is the message that should be on screen right now
func (b *BattleState) CurrentMessage() (BattleMessage, bool) {
	if len(b.messages) == 0 {
		return BattleMessage{}, false
	}

	return b.messages[0], true
}

// PendingMessages returns a copy of every message that hasn't been advanced past yet
func (b *BattleState) PendingMessages() []BattleMessage {
	return slices.Clone(b.messages)
}

func (b *BattleState) Outcome() int {
	return b.outcome
}

// ExpGained is the total exp the player's pokemon earned this battle
func (b *BattleState) ExpGained() int {
	return b.expGained
}

// CaughtPokemon is the wild pokemon the player caught, nil if nothing was caught
func (b *BattleState) CaughtPokemon() *Pokemon {
	return b.caught
}

// ForcedSwitch is true while the player has to replace a fainted pokemon
func (b *BattleState) ForcedSwitch() bool {
	return b.forcedSwitch
}

func (b *BattleState) LastTurn() TurnResult {
	return b.lastTurn
}

// Done is true once the battle is over and every message has been shown
func (b *BattleState) Done() bool {
	return IsTerminalPhase(b.Phase()) && len(b.messages) == 0
}

// Advance is the confirm input. It moves past the current message and, once the queue is empty,
// checks whether the battle is over.
func (b *BattleState) Advance() error {
	phase := b.Phase()

	switch {
	case phase == PHASE_INTRO || phase == PHASE_MESSAGE:
		if len(b.messages) > 0 {
			b.messages = b.messages[1:]
		}

		if len(b.messages) == 0 {
			return b.checkEnd()
		}

		return nil
	case IsTerminalPhase(phase):
		if len(b.messages) > 0 {
			b.messages = b.messages[1:]
		}

		return nil
	default:
		return fmt.Errorf("%w: nothing to advance during %s", ErrNotAllowed, phase)
	}
}

// checkEnd runs whenever the message queue drains
func (b *BattleState) checkEnd() error {
	switch b.outcome {
	case OUTCOME_FLED:
		return b.transition(evFlee)
	case OUTCOME_CAUGHT:
		return b.transition(evCatch)
	}

	if b.Player.Lost() {
		b.outcome = OUTCOME_DEFEAT
		b.applyEvents(
			NewFmtMessageEvent("%s is out of usable Pokemon!", b.Player.Name),
			NewFmtMessageEvent("%s blacked out!", b.Player.Name),
		)
		internalLogger.Info("battle lost", "battle_id", b.ID.String(), "turns", b.Turn)

		return b.transition(evLose)
	}

	b.rewardFainted()

	if b.Opponent.Lost() {
		b.outcome = OUTCOME_VICTORY
		if !b.Wild {
			b.applyEvents(NewFmtMessageEvent("%s was defeated!", b.Opponent.Name))
		}
		internalLogger.Info("battle won", "battle_id", b.ID.String(), "turns", b.Turn, "exp", b.expGained)

		return b.transition(evWin)
	}

	if !b.Opponent.GetActivePokemon().Alive() {
		b.applyEvents(SwitchEvent{PlayerID: OPPONENT, SwitchIndex: b.Opponent.FirstAliveIndex()})
	}

	// stay in the current phase until whatever was just queued has been shown
	if len(b.messages) > 0 {
		return nil
	}

	if !b.Player.GetActivePokemon().Alive() {
		b.forcedSwitch = true
		return b.transition(evParty)
	}

	return b.transition(evResume)
}

// rewardFainted gives exp for every opposing pokemon that fainted since the last check
func (b *BattleState) rewardFainted() {
	for i, pokemon := range b.Opponent.Team {
		if pokemon.Alive() || b.rewarded[i] {
			continue
		}

		b.rewarded[i] = true
		b.applyEvents(ExpEvent{DefeatedIndex: i})
	}
}

func (b *BattleState) applyEvents(events ...StateEvent) {
	ApplyEventsToState(b, TurnResult{Kind: RESULT_RESOLVED, Turn: b.Turn, Events: events})
}

// execute resolves actions as one turn and moves on to showing its messages
func (b *BattleState) execute(actions ...Action) error {
	if err := b.transition(evExecute); err != nil {
		return err
	}

	result := ProcessTurn(b, actions)
	b.lastTurn = result
	ApplyEventsToState(b, result)

	if err := b.transition(evShow); err != nil {
		return err
	}

	if len(b.messages) == 0 {
		return b.checkEnd()
	}

	return nil
}

// opponentAction picks what the opposing side does this turn
func (b *BattleState) opponentAction() Action {
	opposing := b.Opponent.GetActivePokemon()
	playerPokemon := b.Player.GetActivePokemon()

	if !b.Wild {
		if index, ok := ShouldSwitch(b.Opponent.ActivePokeIndex, b.Opponent.Team, *playerPokemon, b.Difficulty); ok {
			return NewSwitchAction(OPPONENT, index)
		}
	}

	choice := ChooseMove(*opposing, *playerPokemon, b.Difficulty, b.rng)
	return NewAttackAction(OPPONENT, choice.Index)
}

// ChooseAction is the top level menu choice. ACTION_RUN is resolved right away.
func (b *BattleState) ChooseAction(action int) error {
	if err := b.requirePhase(PHASE_ACTION_SELECT); err != nil {
		return err
	}

	switch action {
	case ACTION_FIGHT:
		return b.transition(evFight)
	case ACTION_BAG:
		return b.transition(evBag)
	case ACTION_POKEMON:
		return b.transition(evParty)
	case ACTION_RUN:
		if !b.Wild {
			return fmt.Errorf("%w: there's no running from a trainer battle", ErrNotAllowed)
		}

		return b.execute(RunAction{Ctx: NewActionCtx(PLAYER)}, b.opponentAction())
	default:
		return fmt.Errorf("%w: unknown action %d", ErrNotAllowed, action)
	}
}

// Back returns to the action menu from a selection menu. Not allowed while replacing a fainted pokemon.
func (b *BattleState) Back() error {
	if b.forcedSwitch {
		return fmt.Errorf("%w: a pokemon must be sent out", ErrNotAllowed)
	}

	return b.transition(evBack)
}

// SelectMove commits the player's move and resolves the whole turn
func (b *BattleState) SelectMove(index int) error {
	if err := b.requirePhase(PHASE_MOVE_SELECT); err != nil {
		return err
	}

	if err := b.Player.GetActivePokemon().CanUseMove(index); err != nil {
		return err
	}

	return b.execute(NewAttackAction(PLAYER, index), b.opponentAction())
}

// ThrowBall throws the ball with id at the wild pokemon. The opposing pokemon acts if it breaks free.
func (b *BattleState) ThrowBall(id string) error {
	if err := b.requirePhase(PHASE_ITEM_SELECT); err != nil {
		return err
	}

	ball := GlobalData.GetItem(id)
	if ball == nil {
		return fmt.Errorf("%w: %s", ErrUnknownItem, id)
	}

	if !ball.IsBall() {
		return fmt.Errorf("%w: %s isn't a ball", ErrNotAllowed, ball.Name)
	}

	if !b.Wild {
		return fmt.Errorf("%w: you can't catch a trainer's Pokemon", ErrNotAllowed)
	}

	return b.execute(CatchAction{Ctx: NewActionCtx(PLAYER), Ball: *ball}, b.opponentAction())
}

// UseItem uses the item with id on the party member at partyIndex. Using an item takes up the player's turn.
func (b *BattleState) UseItem(id string, partyIndex int) error {
	if err := b.requirePhase(PHASE_ITEM_SELECT); err != nil {
		return err
	}

	item := GlobalData.GetItem(id)
	if item == nil {
		return fmt.Errorf("%w: %s", ErrUnknownItem, id)
	}

	if partyIndex < 0 || partyIndex >= len(b.Player.Team) {
		return fmt.Errorf("%w: party index %d out of range", ErrNotAllowed, partyIndex)
	}

	if err := CanUseItemOn(*item, *b.Player.GetPokemon(partyIndex)); err != nil {
		return err
	}

	return b.execute(ItemAction{Ctx: NewActionCtx(PLAYER), Item: *item, TargetIndex: partyIndex}, b.opponentAction())
}

// SwitchPokemon sends out the party member at index. A voluntary switch uses the turn,
// replacing a fainted pokemon does not.
func (b *BattleState) SwitchPokemon(index int) error {
	if err := b.requirePhase(PHASE_POKEMON_SELECT); err != nil {
		return err
	}

	if index < 0 || index >= len(b.Player.Team) {
		return fmt.Errorf("%w: party index %d out of range", ErrNotAllowed, index)
	}

	if index == b.Player.ActivePokeIndex {
		return fmt.Errorf("%w: %s is already in battle", ErrNotAllowed, b.Player.GetPokemon(index).Name())
	}

	if !b.Player.GetPokemon(index).Alive() {
		return fmt.Errorf("%w: %s has no energy left to battle", ErrNotAllowed, b.Player.GetPokemon(index).Name())
	}

	switchAction := NewSwitchAction(PLAYER, index)
	if b.forcedSwitch {
		err := b.execute(switchAction)
		b.forcedSwitch = false
		return err
	}

	return b.execute(switchAction, b.opponentAction())
}

// AttemptRun rolls to escape a wild battle. Trainer battles always fail without rolling or counting the attempt.
func (b *BattleState) AttemptRun() bool {
	if !b.Wild {
		return false
	}

	b.EscapeAttempts++

	odds := EscapeOdds(b.Player.GetActivePokemon().Stats.Speed, b.Opponent.GetActivePokemon().Stats.Speed, b.EscapeAttempts)
	roll := b.rng.IntN(256)

	internalLogger.WithName("run").V(1).Info("escape roll", "roll", roll, "odds", odds, "attempts", b.EscapeAttempts)

	return float64(roll) < odds
}
