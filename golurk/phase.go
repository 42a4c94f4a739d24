package golurk

import (
	"context"
	"fmt"
	"slices"

	"github.com/go-logr/logr"
	"github.com/looplab/fsm"
)

const (
	PHASE_INTRO          = "intro"
	PHASE_ACTION_SELECT  = "action_select"
	PHASE_MOVE_SELECT    = "move_select"
	PHASE_ITEM_SELECT    = "item_select"
	PHASE_POKEMON_SELECT = "pokemon_select"
	PHASE_EXECUTING      = "executing"
	PHASE_MESSAGE        = "message"
	PHASE_VICTORY        = "victory"
	PHASE_DEFEAT         = "defeat"
	PHASE_FLED           = "fled"
	PHASE_CAUGHT         = "caught"
)

// phase machine events
const (
	evResume  = "resume"
	evFight   = "fight"
	evBag     = "bag"
	evParty   = "party"
	evBack    = "back"
	evExecute = "execute"
	evShow    = "show"
	evWin     = "win"
	evLose    = "lose"
	evFlee    = "flee"
	evCatch   = "catch"
)

var terminalPhases = []string{PHASE_VICTORY, PHASE_DEFEAT, PHASE_FLED, PHASE_CAUGHT}

var phaseLogger = func() logr.Logger {
	return internalLogger.WithName("phase")
}

func IsTerminalPhase(phase string) bool {
	return slices.Contains(terminalPhases, phase)
}

func newPhaseMachine(battleID string) *fsm.FSM {
	// Intro and Message both drain the message queue, so everything that happens
	// after a drain can start from either of them
	drainPhases := []string{PHASE_INTRO, PHASE_MESSAGE}
	selectPhases := []string{PHASE_MOVE_SELECT, PHASE_ITEM_SELECT, PHASE_POKEMON_SELECT}

	return fsm.NewFSM(
		PHASE_INTRO,
		fsm.Events{
			{Name: evResume, Src: drainPhases, Dst: PHASE_ACTION_SELECT},
			{Name: evFight, Src: []string{PHASE_ACTION_SELECT}, Dst: PHASE_MOVE_SELECT},
			{Name: evBag, Src: []string{PHASE_ACTION_SELECT}, Dst: PHASE_ITEM_SELECT},
			{Name: evParty, Src: append([]string{PHASE_ACTION_SELECT}, drainPhases...), Dst: PHASE_POKEMON_SELECT},
			{Name: evBack, Src: selectPhases, Dst: PHASE_ACTION_SELECT},
			{Name: evExecute, Src: append([]string{PHASE_ACTION_SELECT}, selectPhases...), Dst: PHASE_EXECUTING},
			{Name: evShow, Src: []string{PHASE_EXECUTING}, Dst: PHASE_MESSAGE},
			{Name: evWin, Src: drainPhases, Dst: PHASE_VICTORY},
			{Name: evLose, Src: drainPhases, Dst: PHASE_DEFEAT},
			{Name: evFlee, Src: drainPhases, Dst: PHASE_FLED},
			{Name: evCatch, Src: drainPhases, Dst: PHASE_CAUGHT},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				phaseLogger().V(1).Info("phase changed", "battle_id", battleID, "event", e.Event, "from", e.Src, "to", e.Dst)
			},
		},
	)
}

func (b *BattleState) Phase() string {
	return b.phase.Current()
}

func (b *BattleState) transition(event string) error {
	if err := b.phase.Event(context.Background(), event); err != nil {
		return fmt.Errorf("%w: can't %s during %s: %w", ErrNotAllowed, event, b.Phase(), err)
	}

	return nil
}

// requirePhase returns an ErrNotAllowed error if the battle isn't in one of phases
func (b *BattleState) requirePhase(phases ...string) error {
	if !slices.Contains(phases, b.Phase()) {
		return fmt.Errorf("%w: battle is in %s", ErrNotAllowed, b.Phase())
	}

	return nil
}
