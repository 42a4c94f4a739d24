package battleview

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/pallet/golurk"
	"github.com/nathanieltooley/pallet/poketerm/global"
	"github.com/nathanieltooley/pallet/poketerm/rendering"
	"github.com/nathanieltooley/pallet/poketerm/shared/savefs"
	"github.com/nathanieltooley/pallet/poketerm/telemetry"
	"github.com/rs/zerolog/log"
)

const _ERROR_TIME = time.Second * 2

// Used to send info around different battle UI components
type battleContext struct {
	ctx     context.Context
	battle  *golurk.BattleState
	session *savefs.Session
	tracer  telemetry.BattleTracer
}

type (
	inputErrorMsg struct {
		err error
	}
	clearErrorMsg struct {
		t time.Time
	}
)

// submit runs one input against the battle. Rejected inputs come back as an inputErrorMsg, the battle is left untouched.
func (c *battleContext) submit(action string, input func(*golurk.BattleState) error) tea.Cmd {
	err := input(c.battle)
	c.tracer.RecordInput(c.ctx, c.battle, action, err)

	if err != nil {
		log.Debug().Err(err).Str("action", action).Str("phase", c.battle.Phase()).Msg("input rejected")
		return func() tea.Msg {
			return inputErrorMsg{err}
		}
	}

	log.Debug().Str("action", action).Str("phase", c.battle.Phase()).Int("turn", c.battle.Turn).Msg("input accepted")
	return nil
}

// submitItem is submit for inputs that use up an item from the bag
func (c *battleContext) submitItem(action string, itemID string, input func(*golurk.BattleState) error) tea.Cmd {
	if c.session.Bag[itemID] <= 0 {
		return func() tea.Msg {
			return inputErrorMsg{fmt.Errorf("%w: you don't have any %s", golurk.ErrNotAllowed, itemID)}
		}
	}

	cmd := c.submit(action, input)
	if cmd == nil {
		c.session.TakeItem(itemID)
	}

	return cmd
}

type MainBattleModel struct {
	ctx *battleContext

	// nil while messages are showing
	panel tea.Model

	playerPanel   playerPanel
	opponentPanel playerPanel

	prize  int
	onExit func() tea.Model

	showError  bool
	currentErr error
}

// NewMainBattleModel shows battle until it's over, writes the results into session and then shows the end screen.
// onExit builds the model to go to once the end screen is dismissed.
func NewMainBattleModel(battle *golurk.BattleState, session *savefs.Session, prize int, onExit func() tea.Model) MainBattleModel {
	ctx := &battleContext{
		ctx:     context.Background(),
		battle:  battle,
		session: session,
		tracer:  telemetry.NewBattleTracer(telemetry.Tracer("battle")),
	}

	m := MainBattleModel{
		ctx:           ctx,
		playerPanel:   playerPanel{name: battle.Player.Name, healthBar: newHealthBar()},
		opponentPanel: playerPanel{name: battle.Opponent.Name, healthBar: newHealthBar()},
		prize:         prize,
		onExit:        onExit,
	}
	m.syncPanel()

	return m
}

// StartWildBattle rolls an encounter in zone and starts a battle against it
func StartWildBattle(session *savefs.Session, zone golurk.EncounterZone, onExit func() tea.Model) (MainBattleModel, error) {
	encounter, ok := zone.Roll(global.PalletRand)
	if !ok {
		log.Warn().Str("zone", zone.ID).Msg("zone has no encounters, using the default wild pokemon")
	}

	battle, err := golurk.NewWildBattle(session.Party, encounter, global.BattleConfig())
	if err != nil {
		return MainBattleModel{}, err
	}

	return NewMainBattleModel(battle, session, 0, onExit), nil
}

func StartTrainerBattle(session *savefs.Session, trainer golurk.Trainer, onExit func() tea.Model) (MainBattleModel, error) {
	battle, err := golurk.NewTrainerBattle(session.Party, trainer, global.BattleConfig())
	if err != nil {
		return MainBattleModel{}, err
	}

	return NewMainBattleModel(battle, session, trainer.PrizeMoney, onExit), nil
}

func (m MainBattleModel) Battle() *golurk.BattleState {
	return m.ctx.battle
}

// syncPanel makes sure the panel on screen is the one the battle's phase calls for
func (m *MainBattleModel) syncPanel() {
	battle := m.ctx.battle

	switch battle.Phase() {
	case golurk.PHASE_ACTION_SELECT:
		if _, ok := m.panel.(actionPanel); !ok {
			m.panel = newActionPanel(m.ctx)
		}
	case golurk.PHASE_MOVE_SELECT:
		if _, ok := m.panel.(movePanel); !ok {
			m.panel = newMovePanel(m.ctx)
		}
	case golurk.PHASE_ITEM_SELECT:
		switch panel := m.panel.(type) {
		case bagPanel:
		case partyPanel:
			if panel.item == nil {
				m.panel = newBagPanel(m.ctx)
			}
		default:
			m.panel = newBagPanel(m.ctx)
		}
	case golurk.PHASE_POKEMON_SELECT:
		if panel, ok := m.panel.(partyPanel); !ok || panel.item != nil {
			m.panel = newSwitchPanel(m.ctx)
		}
	default:
		m.panel = nil
	}
}

// snapshots are the HP values to draw, from the message on screen if there is one
func (m MainBattleModel) snapshots() (golurk.ActiveSnapshot, golurk.ActiveSnapshot) {
	if message, ok := m.ctx.battle.CurrentMessage(); ok {
		return message.Player, message.Opponent
	}

	player := m.ctx.battle.Player.GetActivePokemon()
	opponent := m.ctx.battle.Opponent.GetActivePokemon()

	return golurk.ActiveSnapshot{Name: player.Name(), Level: player.Level, Hp: player.Hp, MaxHp: player.MaxHp},
		golurk.ActiveSnapshot{Name: opponent.Name(), Level: opponent.Level, Hp: opponent.Hp, MaxHp: opponent.MaxHp}
}

func (m MainBattleModel) Init() tea.Cmd { return nil }

func (m MainBattleModel) View() string {
	battle := m.ctx.battle

	playerSnap, opponentSnap := m.snapshots()

	playerPanel := m.playerPanel
	playerPanel.snapshot = playerSnap
	playerPanel.status = battle.Player.GetActivePokemon().Status

	opponentPanel := m.opponentPanel
	opponentPanel.snapshot = opponentSnap
	opponentPanel.status = battle.Opponent.GetActivePokemon().Status

	messageText := ""
	if message, ok := battle.CurrentMessage(); ok {
		messageText = message.Text + " ▼"
	}

	bottom := ""
	switch {
	case m.showError:
		bottom = rendering.ErrorStyle.Render(m.currentErr.Error())
	case m.panel != nil:
		bottom = m.panel.View()
	}

	return rendering.GlobalCenter(
		lipgloss.JoinVertical(
			lipgloss.Center,

			fmt.Sprintf("Turn: %d", battle.Turn),

			lipgloss.JoinHorizontal(lipgloss.Center, playerPanel.View(), "   ", opponentPanel.View()),

			rendering.ButtonStyle.Width(playerPanelWidth*2+4).Render(messageText),

			bottom,
		),
	)
}

func (m MainBattleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0)

	switch msg := msg.(type) {
	case inputErrorMsg:
		m.showError = true
		m.currentErr = msg.err

		return m, tea.Tick(_ERROR_TIME, func(t time.Time) tea.Msg {
			return clearErrorMsg{t}
		})
	case clearErrorMsg:
		m.showError = false
		m.currentErr = nil

		return m, nil
	case tea.KeyMsg:
		if m.showError {
			// any key dismisses the error early
			m.showError = false
			return m, nil
		}

		if m.panel == nil {
			if key.Matches(msg, global.SelectKey) {
				cmds = append(cmds, m.ctx.submit("advance", (*golurk.BattleState).Advance))
			}
		} else {
			var cmd tea.Cmd
			m.panel, cmd = m.panel.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	if m.ctx.battle.Done() {
		summary := ApplyResults(m.ctx.session, m.ctx.battle, m.prize)
		return newEndScreen(summary, m.onExit), nil
	}

	m.syncPanel()

	return m, tea.Batch(cmds...)
}
