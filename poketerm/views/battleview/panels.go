package battleview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/pallet/golurk"
	"github.com/nathanieltooley/pallet/poketerm/global"
	"github.com/nathanieltooley/pallet/poketerm/rendering"
	"github.com/nathanieltooley/pallet/poketerm/rendering/components"
	"github.com/nathanieltooley/pallet/poketerm/shared/savefs"
)

const (
	playerPanelWidth = 28
	gridCellWidth    = 20
)

var (
	panelStyle            = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Padding(0, 1)
	highlightedPanelStyle = lipgloss.NewStyle().Border(lipgloss.DoubleBorder(), true).Padding(0, 1).BorderForeground(rendering.HighlightedColor)
	disabledPanelStyle    = panelStyle.Foreground(rendering.DisabledColor)
)

// playerPanel shows one side's active pokemon. The HP comes from the message being shown
// so the bar drops in step with the battle text.
type playerPanel struct {
	name      string
	snapshot  golurk.ActiveSnapshot
	status    int
	healthBar progress.Model
}

func newHealthBar() progress.Model {
	progressBar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	progressBar.Width = playerPanelWidth * .75

	return progressBar
}

func (m playerPanel) View() string {
	header := lipgloss.JoinHorizontal(lipgloss.Center, rendering.RenderStatus(m.status), " ", m.snapshot.Name)

	pokeInfo := fmt.Sprintf("%s\nLv%d  HP %d/%d", header, m.snapshot.Level, m.snapshot.Hp, m.snapshot.MaxHp)
	healthPerc := float64(m.snapshot.Hp) / float64(max(m.snapshot.MaxHp, 1))

	pokeStyle := lipgloss.NewStyle().Align(lipgloss.Center).Border(lipgloss.NormalBorder(), true).Width(playerPanelWidth).Height(4)
	pokeInfo = pokeStyle.Render(lipgloss.JoinVertical(lipgloss.Center, pokeInfo, m.healthBar.ViewAs(healthPerc)))

	return lipgloss.JoinVertical(lipgloss.Center, m.name, pokeInfo)
}

// grid is a focus cursor over a 2 column grid of cells
type grid struct {
	focus int
	cells int
}

func (g *grid) update(msg tea.KeyMsg) {
	if g.cells == 0 {
		return
	}

	switch {
	case key.Matches(msg, global.MoveLeftKey):
		g.focus = max(0, g.focus-1)
	case key.Matches(msg, global.MoveRightKey):
		g.focus = min(g.cells-1, g.focus+1)
	case key.Matches(msg, global.MoveDownKey):
		g.focus = min(g.cells-1, g.focus+2)
	case key.Matches(msg, global.MoveUpKey):
		g.focus = max(0, g.focus-2)
	}
}

func (g grid) render(cells []string, disabled []bool) string {
	rows := make([]string, 0, (len(cells)+1)/2)

	for i := 0; i < len(cells); i += 2 {
		row := make([]string, 0, 2)
		for j := i; j < min(i+2, len(cells)); j++ {
			style := panelStyle
			if disabled != nil && disabled[j] {
				style = disabledPanelStyle
			}
			if j == g.focus {
				style = highlightedPanelStyle
			}

			row = append(row, style.Width(gridCellWidth).Render(cells[j]))
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center, row...))
	}

	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func backCmd(ctx *battleContext) tea.Cmd {
	return ctx.submit("back", (*golurk.BattleState).Back)
}

var actionNames = []string{"Fight", "Bag", "Pokemon", "Run"}

// order matches actionNames
var actionIDs = []int{golurk.ACTION_FIGHT, golurk.ACTION_BAG, golurk.ACTION_POKEMON, golurk.ACTION_RUN}

type actionPanel struct {
	ctx *battleContext

	grid grid
}

func newActionPanel(ctx *battleContext) actionPanel {
	return actionPanel{
		ctx:  ctx,
		grid: grid{cells: len(actionNames)},
	}
}

func (m actionPanel) Init() tea.Cmd { return nil }
func (m actionPanel) View() string {
	var disabled []bool
	if !m.ctx.battle.Wild {
		// no running from trainers
		disabled = []bool{false, false, false, true}
	}

	prompt := fmt.Sprintf("What will %s do?", m.ctx.battle.Player.GetActivePokemon().Name())
	return lipgloss.JoinVertical(lipgloss.Center, prompt, m.grid.render(actionNames, disabled))
}

func (m actionPanel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.SelectKey) {
			action := actionIDs[m.grid.focus]
			return m, m.ctx.submit("choose_action", func(b *golurk.BattleState) error {
				return b.ChooseAction(action)
			})
		}

		m.grid.update(msg)
	}

	return m, nil
}

type movePanel struct {
	ctx  *battleContext
	grid grid
}

func newMovePanel(ctx *battleContext) movePanel {
	pokemon := ctx.battle.Player.GetActivePokemon()

	cells := len(pokemon.Moves)
	if !pokemon.HasUsableMove() {
		cells = 1
	}

	return movePanel{
		ctx:  ctx,
		grid: grid{cells: cells},
	}
}

func (m movePanel) Init() tea.Cmd { return nil }
func (m movePanel) View() string {
	pokemon := m.ctx.battle.Player.GetActivePokemon()

	if !pokemon.HasUsableMove() {
		return lipgloss.JoinVertical(lipgloss.Center,
			fmt.Sprintf("%s has no moves left!", pokemon.Name()),
			m.grid.render([]string{golurk.Struggle.Name}, nil),
		)
	}

	cells := make([]string, len(pokemon.Moves))
	disabled := make([]bool, len(pokemon.Moves))
	for i, move := range pokemon.Moves {
		cells[i] = fmt.Sprintf("%s\n%s PP %d/%d", rendering.TitleCase(move.Info.Name), rendering.RenderType(move.Info.Type), move.PP, move.Info.PP)
		disabled[i] = !move.Usable()
	}

	return m.grid.render(cells, disabled)
}

func (m movePanel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.BackKey) {
			return m, backCmd(m.ctx)
		}

		if key.Matches(msg, global.SelectKey) {
			index := m.grid.focus
			if !m.ctx.battle.Player.GetActivePokemon().HasUsableMove() {
				index = golurk.STRUGGLE_INDEX
			}

			return m, m.ctx.submit("select_move", func(b *golurk.BattleState) error {
				return b.SelectMove(index)
			})
		}

		m.grid.update(msg)
	}

	return m, nil
}

type bagPanel struct {
	ctx     *battleContext
	entries []savefs.BagEntry
	cursor  int
}

func newBagPanel(ctx *battleContext) bagPanel {
	return bagPanel{
		ctx:     ctx,
		entries: ctx.session.BagEntries(),
	}
}

func (m bagPanel) Init() tea.Cmd { return nil }
func (m bagPanel) View() string {
	if len(m.entries) == 0 {
		return panelStyle.Render("Your bag is empty")
	}

	lines := make([]string, 0, len(m.entries)+1)
	for i, entry := range m.entries {
		line := fmt.Sprintf("%-14s x%d", entry.Item.Name, entry.Count)
		if i == m.cursor {
			lines = append(lines, rendering.HighlightedItemStyle.Render("> "+line))
		} else {
			lines = append(lines, rendering.ItemStyle.Render("  "+line))
		}
	}

	lines = append(lines, "", m.entries[m.cursor].Item.Description)

	return panelStyle.Width(playerPanelWidth * 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m bagPanel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.BackKey) {
			return m, backCmd(m.ctx)
		}

		if len(m.entries) == 0 {
			return m, nil
		}

		switch {
		case key.Matches(msg, global.MoveDownKey):
			m.cursor = min(len(m.entries)-1, m.cursor+1)
		case key.Matches(msg, global.MoveUpKey):
			m.cursor = max(0, m.cursor-1)
		case key.Matches(msg, global.SelectKey):
			item := m.entries[m.cursor].Item
			if !item.IsBall() {
				// items need a target first
				return newItemTargetPanel(m.ctx, item, m), nil
			}

			return m, m.ctx.submitItem("throw_ball", item.ID, func(b *golurk.BattleState) error {
				return b.ThrowBall(item.ID)
			})
		}
	}

	return m, nil
}

// partyPanel is used both for switching and for picking who gets an item
type partyPanel struct {
	ctx  *battleContext
	team components.TeamView

	// set when picking an item target
	item *golurk.Item
	bag  bagPanel
}

func newSwitchPanel(ctx *battleContext) partyPanel {
	team := components.NewTeamView(ctx.battle.Player.Team)
	team.Focused = true
	team.ActiveIndex = ctx.battle.Player.ActivePokeIndex
	team.CurrentPokemonIndex = ctx.battle.Player.ActivePokeIndex

	return partyPanel{ctx: ctx, team: team}
}

func newItemTargetPanel(ctx *battleContext, item golurk.Item, bag bagPanel) partyPanel {
	panel := newSwitchPanel(ctx)
	panel.item = &item
	panel.bag = bag

	return panel
}

func (m partyPanel) Init() tea.Cmd { return nil }
func (m partyPanel) View() string {
	prompt := "Bring out which POKEMON?"
	switch {
	case m.item != nil:
		prompt = fmt.Sprintf("Use %s on which POKEMON?", m.item.Name)
	case m.ctx.battle.ForcedSwitch():
		prompt = fmt.Sprintf("%s fainted! Choose the next POKEMON", m.ctx.battle.Player.GetActivePokemon().Name())
	}

	// the team slice can be swapped out by the engine so always render the current one
	m.team.Team = m.ctx.battle.Player.Team

	return lipgloss.JoinVertical(lipgloss.Center, prompt, m.team.View())
}

func (m partyPanel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.BackKey) {
			if m.item != nil {
				return m.bag, nil
			}

			return m, backCmd(m.ctx)
		}

		if key.Matches(msg, global.SelectKey) {
			index := m.team.CurrentPokemonIndex

			if m.item != nil {
				id := m.item.ID
				return m, m.ctx.submitItem("use_item", id, func(b *golurk.BattleState) error {
					return b.UseItem(id, index)
				})
			}

			return m, m.ctx.submit("switch", func(b *golurk.BattleState) error {
				return b.SwitchPokemon(index)
			})
		}
	}

	teamModel, cmd := m.team.Update(msg)
	m.team = teamModel.(components.TeamView)

	return m, cmd
}
