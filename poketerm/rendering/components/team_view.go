package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/pallet/golurk"
	"github.com/nathanieltooley/pallet/poketerm/rendering"
)

const teamPanelWidth = 24

type TeamView struct {
	Team    []golurk.Pokemon
	Focused bool

	CurrentPokemonIndex int
	// marks the pokemon currently in battle, -1 for none
	ActiveIndex int

	healthBar progress.Model
}

var (
	pokemonTeamStyle            = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Align(lipgloss.Center).Width(teamPanelWidth)
	highlightedPokemonTeamStyle = lipgloss.NewStyle().Border(lipgloss.DoubleBorder(), true).Align(lipgloss.Center).Width(teamPanelWidth).BorderForeground(rendering.HighlightedColor)
	faintedPokemonTeamStyle     = pokemonTeamStyle.Foreground(rendering.DisabledColor)

	moveTeamDown = key.NewBinding(
		key.WithKeys("j", "down"),
	)

	moveTeamUp = key.NewBinding(
		key.WithKeys("k", "up"),
	)
)

func NewTeamView(team []golurk.Pokemon) TeamView {
	healthBar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	healthBar.Width = teamPanelWidth - 4

	return TeamView{
		Team:        team,
		Focused:     false,
		ActiveIndex: -1,
		healthBar:   healthBar,
	}
}

// Selected is the pokemon under the cursor, nil for an empty team
func (m TeamView) Selected() *golurk.Pokemon {
	if m.CurrentPokemonIndex < 0 || m.CurrentPokemonIndex >= len(m.Team) {
		return nil
	}

	return &m.Team[m.CurrentPokemonIndex]
}

func (m TeamView) Init() tea.Cmd { return nil }
func (m TeamView) View() string {
	if len(m.Team) == 0 {
		return pokemonTeamStyle.Render("No Pokemon")
	}

	teamPanels := make([]string, 0, len(m.Team))

	for i, pokemon := range m.Team {
		name := pokemon.Name()
		if i == m.ActiveIndex {
			name = "> " + name
		}

		header := lipgloss.JoinHorizontal(lipgloss.Center, name, " ", rendering.RenderStatus(pokemon.Status))
		panel := fmt.Sprintf("%s\nLv%d  HP %d/%d\n%s", header, pokemon.Level, pokemon.Hp, pokemon.MaxHp, m.healthBar.ViewAs(pokemon.HpPercent()))

		switch {
		case i == m.CurrentPokemonIndex && m.Focused:
			teamPanels = append(teamPanels, highlightedPokemonTeamStyle.Render(panel))
		case !pokemon.Alive():
			teamPanels = append(teamPanels, faintedPokemonTeamStyle.Render(panel))
		default:
			teamPanels = append(teamPanels, pokemonTeamStyle.Render(panel))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Center, teamPanels...)
}

func (m TeamView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if len(m.Team) == 0 {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Focused {
			if key.Matches(msg, moveTeamDown) {
				m.CurrentPokemonIndex++

				if m.CurrentPokemonIndex > len(m.Team)-1 {
					m.CurrentPokemonIndex = 0
				}
			}

			if key.Matches(msg, moveTeamUp) {
				m.CurrentPokemonIndex--

				if m.CurrentPokemonIndex < 0 {
					m.CurrentPokemonIndex = len(m.Team) - 1
				}
			}
		}
	}

	return m, nil
}
