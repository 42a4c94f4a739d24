package golurk

import (
	"fmt"
	"reflect"

	"github.com/go-logr/logr"
)

// StateEvent represents a "single" change in BattleState.
//
// StateEvents are separate from Actions in that Events are the low level changes of state and Actions
// represent higher level choices a side makes that are made of Events
type StateEvent interface {
	// Update will update BattleState in some way. Follow-up events caused by this update are returned
	// and should be handled DIRECTLY after this state event. The second value is a list of messages to be displayed for the event.
	Update(*BattleState) ([]StateEvent, []string)
}

var attackEventLogger = func() logr.Logger {
	return internalLogger.WithName("attack_event")
}

type AttackEvent struct {
	AttackerID int
	MoveIndex  int
}

func (event AttackEvent) Update(state *BattleState) ([]StateEvent, []string) {
	// the battle can end mid turn from a run or a catch
	if state.outcome != OUTCOME_NONE {
		return nil, nil
	}

	attacker, defender := getPlayerPair(state, event.AttackerID)
	attackPokemon := attacker.GetActivePokemon()
	defPokemon := defender.GetActivePokemon()

	if !attackPokemon.Alive() {
		attackEventLogger().Info("attack was cancelled because they fainted", "pokemon_name", attackPokemon.Name())
		return nil, nil
	}

	move, err := attackPokemon.UseMove(event.MoveIndex)
	if err != nil {
		// selections are validated before the turn starts so this should never happen
		attackEventLogger().Error(err, "invalid move reached the attack event, using struggle", "pokemon_name", attackPokemon.Name())
		move = Struggle
	}

	defenderID := InvertPlayerIndex(event.AttackerID)
	attackerName := state.displayName(event.AttackerID, *attackPokemon)
	messages := []string{fmt.Sprintf("%s used %s!", attackerName, move.Name)}

	if !AccuracyCheck(move, *attackPokemon, *defPokemon, state.rng) {
		return nil, append(messages, fmt.Sprintf("%s's attack missed!", attackerName))
	}

	// status effects aren't modeled, status moves just get announced
	if move.IsStatus() {
		return nil, messages
	}

	result := Damage(*attackPokemon, *defPokemon, move, state.rng)
	if result.Effectiveness == 0 {
		return nil, append(messages, fmt.Sprintf("It doesn't affect %s...", state.displayName(defenderID, *defPokemon)))
	}

	defPokemon.Damage(result.Amount)
	attackEventLogger().V(1).Info("attack landed", "attacker", attackPokemon.Name(), "defender", defPokemon.Name(), "move", move.Name, "damage", result.Amount, "hp_left", defPokemon.Hp)

	if result.Crit {
		messages = append(messages, "Critical hit!")
	}

	if result.Effectiveness > 1 {
		messages = append(messages, "It's super effective!")
	} else if result.Effectiveness < 1 {
		messages = append(messages, "It's not very effective...")
	}

	if !defPokemon.Alive() {
		return []StateEvent{FaintEvent{PlayerID: defenderID}}, messages
	}

	return nil, messages
}

type FaintEvent struct {
	PlayerID int
}

func (event FaintEvent) Update(state *BattleState) ([]StateEvent, []string) {
	pokemon := state.GetPlayer(event.PlayerID).GetActivePokemon()
	pokemon.Status = STATUS_NONE
	pokemon.StatusTurns = 0

	internalLogger.WithName("faint_event").Info("pokemon fainted", "pokemon_name", pokemon.Name(), "player_id", event.PlayerID)

	return nil, []string{fmt.Sprintf("%s fainted!", state.displayName(event.PlayerID, *pokemon))}
}

type SwitchEvent struct {
	SwitchIndex int
	PlayerID    int
}

func (event SwitchEvent) Update(state *BattleState) ([]StateEvent, []string) {
	player := state.GetPlayer(event.PlayerID)
	if event.SwitchIndex < 0 || event.SwitchIndex >= len(player.Team) {
		internalLogger.WithName("switch_event").Info("switch index out of range", "player_name", player.Name, "index", event.SwitchIndex)
		return nil, nil
	}

	currentPokemon := player.GetActivePokemon()
	newActivePkm := player.GetPokemon(event.SwitchIndex)

	messages := make([]string, 0, 2)

	internalLogger.WithName("switch_event").Info("", "player_name", player.Name, "pokemon_name", newActivePkm.Name())

	if event.PlayerID == PLAYER {
		if currentPokemon.Alive() {
			messages = append(messages, fmt.Sprintf("Come back, %s!", currentPokemon.Name()))
		}

		player.ActivePokeIndex = event.SwitchIndex
		messages = append(messages, fmt.Sprintf("Go! %s!", newActivePkm.Name()))
	} else {
		player.ActivePokeIndex = event.SwitchIndex
		messages = append(messages, fmt.Sprintf("%s sent out %s!", player.Name, newActivePkm.Name()))
	}

	return nil, messages
}

type RunEvent struct{}

func (event RunEvent) Update(state *BattleState) ([]StateEvent, []string) {
	if state.AttemptRun() {
		state.outcome = OUTCOME_FLED
		return nil, []string{"Got away safely!"}
	}

	return nil, []string{"Can't escape!"}
}

type CatchEvent struct {
	Ball Item
}

func (event CatchEvent) Update(state *BattleState) ([]StateEvent, []string) {
	target := state.Opponent.GetActivePokemon()
	messages := []string{fmt.Sprintf("%s threw a %s!", state.Player.Name, event.Ball.Name)}

	result := AttemptCatch(*target, event.Ball, state.rng)
	if result.Caught {
		caught := *target
		state.caught = &caught
		state.outcome = OUTCOME_CAUGHT
	}

	return nil, append(messages, result.Message)
}

type ItemEvent struct {
	PlayerID    int
	Item        Item
	TargetIndex int
}

func (event ItemEvent) Update(state *BattleState) ([]StateEvent, []string) {
	player := state.GetPlayer(event.PlayerID)
	target := player.GetPokemon(event.TargetIndex)

	messages := []string{fmt.Sprintf("%s used %s!", player.Name, event.Item.Name)}
	if err := CanUseItemOn(event.Item, *target); err != nil {
		internalLogger.WithName("item_event").Error(err, "item could not be used", "item", event.Item.ID)
		return nil, append(messages, "But it had no effect!")
	}

	return nil, append(messages, ApplyItem(event.Item, target))
}

// ExpEvent awards the player's active pokemon exp for the defeated opposing pokemon at DefeatedIndex
type ExpEvent struct {
	DefeatedIndex int
}

func (event ExpEvent) Update(state *BattleState) ([]StateEvent, []string) {
	defeated := state.Opponent.GetPokemon(event.DefeatedIndex)
	recipient := state.Player.GetActivePokemon()

	// maxed out pokemon can't hold any more exp
	if recipient.Level >= MAX_LEVEL {
		return nil, nil
	}

	exp := ExpYield(defeated.Base.ExpYield, defeated.Level, state.Wild, recipient.Traded)
	state.expGained += exp

	messages := []string{fmt.Sprintf("%s gained %d EXP. Points!", recipient.Name(), exp)}
	if recipient.GainExp(exp) {
		messages = append(messages, fmt.Sprintf("%s grew to level %d!", recipient.Name(), recipient.Level))
	}

	internalLogger.WithName("exp_event").Info("awarded exp", "pokemon_name", recipient.Name(), "exp", exp, "defeated", defeated.Name())

	return nil, messages
}

type MessageEvent struct {
	Message string
}

func NewMessageEvent(message string) MessageEvent {
	return MessageEvent{Message: message}
}

func (event MessageEvent) Update(_ *BattleState) ([]StateEvent, []string) {
	return nil, []string{event.Message}
}

// FmtMessageEvent is an event that only shows a message fmt.Sprintf'ed with the given arguments. All rules with fmt.Sprintf apply here
type FmtMessageEvent struct {
	Message string
	Args    []any
}

func NewFmtMessageEvent(message string, a ...any) FmtMessageEvent {
	return FmtMessageEvent{Message: message, Args: a}
}

func (event FmtMessageEvent) Update(_ *BattleState) ([]StateEvent, []string) {
	return nil, []string{fmt.Sprintf(event.Message, event.Args...)}
}

type EventIter struct {
	events []StateEvent
}

func NewEventIter(events []StateEvent) EventIter {
	return EventIter{events}
}

// Next updates state given the top event, adds any follow up events to the front of the queue,
// and returns the messages from that state to be shown to the user. The boolean value is false once
// the queue was already empty.
func (iter *EventIter) Next(state *BattleState) ([]string, bool) {
	if len(iter.events) == 0 {
		return nil, false
	}

	headEvent := iter.events[0]
	internalLogger.WithName("event_iter").V(2).Info("Updating state", "event_name", reflect.TypeOf(headEvent).Name())
	followUpEvents, messages := headEvent.Update(state)

	// pop queue
	iter.events = iter.events[1:]

	if len(followUpEvents) != 0 {
		// create new queue with follow_up_events prepended to the front
		newQueue := make([]StateEvent, 0, len(iter.events)+len(followUpEvents))
		newQueue = append(newQueue, followUpEvents...)
		newQueue = append(newQueue, iter.events...)

		iter.events = newQueue
	}

	return messages, true
}
