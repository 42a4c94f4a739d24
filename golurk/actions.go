package golurk

// Action is a choice made by one side for a turn. Actions are turned into StateEvents by ProcessTurn.
type Action interface {
	UpdateState(*BattleState) []StateEvent

	GetCtx() ActionCtx
}

type ActionCtx struct {
	PlayerID int
}

func NewActionCtx(playerID int) ActionCtx {
	return ActionCtx{PlayerID: playerID}
}

type AttackAction struct {
	Ctx ActionCtx

	// Index into the active pokemon's moves, or STRUGGLE_INDEX
	MoveIndex int
}

func NewAttackAction(playerID int, moveIndex int) AttackAction {
	return AttackAction{Ctx: NewActionCtx(playerID), MoveIndex: moveIndex}
}

func (a AttackAction) UpdateState(state *BattleState) []StateEvent {
	return []StateEvent{AttackEvent{AttackerID: a.Ctx.PlayerID, MoveIndex: a.MoveIndex}}
}

func (a AttackAction) GetCtx() ActionCtx {
	return a.Ctx
}

type SwitchAction struct {
	Ctx ActionCtx

	SwitchIndex int
}

func NewSwitchAction(playerID int, switchIndex int) SwitchAction {
	return SwitchAction{Ctx: NewActionCtx(playerID), SwitchIndex: switchIndex}
}

func (a SwitchAction) UpdateState(state *BattleState) []StateEvent {
	return []StateEvent{SwitchEvent{PlayerID: a.Ctx.PlayerID, SwitchIndex: a.SwitchIndex}}
}

func (a SwitchAction) GetCtx() ActionCtx {
	return a.Ctx
}

type RunAction struct {
	Ctx ActionCtx
}

func (a RunAction) UpdateState(state *BattleState) []StateEvent {
	return []StateEvent{RunEvent{}}
}

func (a RunAction) GetCtx() ActionCtx {
	return a.Ctx
}

type CatchAction struct {
	Ctx ActionCtx

	Ball Item
}

func (a CatchAction) UpdateState(state *BattleState) []StateEvent {
	return []StateEvent{CatchEvent{Ball: a.Ball}}
}

func (a CatchAction) GetCtx() ActionCtx {
	return a.Ctx
}

type ItemAction struct {
	Ctx ActionCtx

	Item        Item
	TargetIndex int
}

func (a ItemAction) UpdateState(state *BattleState) []StateEvent {
	return []StateEvent{ItemEvent{PlayerID: a.Ctx.PlayerID, Item: a.Item, TargetIndex: a.TargetIndex}}
}

func (a ItemAction) GetCtx() ActionCtx {
	return a.Ctx
}
