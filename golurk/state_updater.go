package golurk

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"

	"github.com/samber/lo"
)

const (
	RESULT_RESOLVED = iota + 1
	// Only the player's replacement after a faint was processed, no turn passed
	RESULT_FORCESWITCH
)

// TurnResult is everything that happened in one turn, in order
type TurnResult struct {
	Kind   int
	Turn   int
	Events []StateEvent
}

// ProcessTurn orders the actions of both sides and turns them into events.
// Switches, items, balls and running all happen before attacks. Attacks go in order of current speed,
// ties are a coin flip. Nothing is applied to state here other than the turn counter and RNG draws for ordering.
func ProcessTurn(state *BattleState, actions []Action) TurnResult {
	for _, action := range actions {
		internalLogger.V(1).Info("Player Action", "player_id", action.GetCtx().PlayerID, "action_name", reflect.TypeOf(action).Name())
	}

	attackActions, otherActions := lo.FilterReject(actions, func(a Action, _ int) bool {
		_, isAttack := a.(AttackAction)
		return isAttack
	})

	if len(attackActions) == 0 && lo.EveryBy(otherActions, isForcedSwitch(state)) {
		internalLogger.V(1).Info("processing forced switch")
		return TurnResult{
			Kind:   RESULT_FORCESWITCH,
			Turn:   state.Turn,
			Events: lo.FlatMap(otherActions, toEvents(state)),
		}
	}

	state.Turn++
	internalLogger.WithName("state_updater").Info(fmt.Sprintf("======== TURN %d =========", state.Turn))

	slices.SortStableFunc(otherActions, func(a, b Action) int {
		return cmp.Compare(a.GetCtx().PlayerID, b.GetCtx().PlayerID)
	})

	speedOf := func(a Action) int {
		return state.GetPlayer(a.GetCtx().PlayerID).GetActivePokemon().Stats.Speed
	}

	// fastest first
	slices.SortStableFunc(attackActions, func(a, b Action) int {
		return cmp.Compare(speedOf(b), speedOf(a))
	})

	if len(attackActions) == 2 && speedOf(attackActions[0]) == speedOf(attackActions[1]) {
		if state.rng.IntN(2) == 1 {
			attackActions[0], attackActions[1] = attackActions[1], attackActions[0]
		}
		internalLogger.V(1).Info("speed tie", "first_player", attackActions[0].GetCtx().PlayerID)
	}

	events := make([]StateEvent, 0, len(actions))
	events = append(events, lo.FlatMap(otherActions, toEvents(state))...)
	events = append(events, lo.FlatMap(attackActions, toEvents(state))...)

	return TurnResult{
		Kind:   RESULT_RESOLVED,
		Turn:   state.Turn,
		Events: events,
	}
}

func toEvents(state *BattleState) func(Action, int) []StateEvent {
	return func(a Action, _ int) []StateEvent {
		return a.UpdateState(state)
	}
}

func isForcedSwitch(state *BattleState) func(Action) bool {
	return func(a Action) bool {
		switchAction, ok := a.(SwitchAction)
		return ok && switchAction.Ctx.PlayerID == PLAYER && state.forcedSwitch
	}
}

// ApplyEventsToState runs every event in result against state, queueing their messages
func ApplyEventsToState(state *BattleState, result TurnResult) {
	iter := NewEventIter(result.Events)

	for {
		messages, next := iter.Next(state)
		if !next {
			break
		}

		state.queueMessages(messages...)
	}
}
