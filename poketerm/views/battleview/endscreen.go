package battleview

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/pallet/poketerm/global"
	"github.com/nathanieltooley/pallet/poketerm/rendering"
)

type endModel struct {
	summary Summary
	onExit  func() tea.Model
}

func newEndScreen(summary Summary, onExit func() tea.Model) endModel {
	return endModel{summary, onExit}
}

func (m endModel) Init() tea.Cmd { return nil }
func (m endModel) View() string {
	lines := append([]string{m.summary.Title(), ""}, m.summary.Lines()...)
	lines = append(lines, "", "Press Enter to continue")

	return rendering.GlobalCenter(rendering.ButtonStyle.Width(50).Render(lipgloss.JoinVertical(lipgloss.Center, lines...)))
}

func (m endModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.SelectKey) && m.onExit != nil {
			return m.onExit(), nil
		}
	}

	return m, nil
}
