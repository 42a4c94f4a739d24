package mainmenu

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/pallet/poketerm/global"
	"github.com/nathanieltooley/pallet/poketerm/rendering"
	"github.com/nathanieltooley/pallet/poketerm/rendering/components"
	"github.com/nathanieltooley/pallet/poketerm/shared/savefs"
	"github.com/rs/zerolog/log"
)

type MainMenuModel struct {
	session *savefs.Session
	buttons components.MenuButtons
	team    components.TeamView

	status string
}

func NewModel(session *savefs.Session) MainMenuModel {
	menu := MainMenuModel{
		session: session,
		team:    components.NewTeamView(session.Party),
	}

	back := func() tea.Model { return NewModel(session) }

	buttons := []components.ViewButton{
		{
			Name: "Wild Encounter",
			OnClick: func() (tea.Model, tea.Cmd) {
				backtrack := components.NewBreadcrumb()
				return newZoneSelection(session, backtrack.PushNew(back)), nil
			},
		},
		{
			Name: "Trainer Battle",
			OnClick: func() (tea.Model, tea.Cmd) {
				backtrack := components.NewBreadcrumb()
				return newTrainerSelection(session, backtrack.PushNew(back)), nil
			},
		},
		{
			Name: "Pokemon Center",
			OnClick: func() (tea.Model, tea.Cmd) {
				session.HealParty()
				log.Info().Msg("party healed")

				return NewModel(session).withStatus("Your POKEMON are fighting fit!"), nil
			},
		},
		{
			Name: "Save Game",
			OnClick: func() (tea.Model, tea.Cmd) {
				overwrote := savefs.Exists(global.Opt.SaveLocation)

				if err := savefs.Save(global.Opt.SaveLocation, *session); err != nil {
					log.Err(err).Str("location", global.Opt.SaveLocation).Msg("failed to save")
					return NewModel(session).withStatus("Couldn't save: " + err.Error()), nil
				}

				log.Info().Str("location", global.Opt.SaveLocation).Bool("overwrote", overwrote).Msg("game saved")
				if overwrote {
					return NewModel(session).withStatus(fmt.Sprintf("%s saved over the previous file.", session.PlayerName)), nil
				}

				return NewModel(session).withStatus(fmt.Sprintf("%s saved the game.", session.PlayerName)), nil
			},
		},
		{
			Name: "Options",
			OnClick: func() (tea.Model, tea.Cmd) {
				backtrack := components.NewBreadcrumb()
				return newOptionsMenu(backtrack.PushNew(back)), nil
			},
		},
		{
			Name: "Help",
			OnClick: func() (tea.Model, tea.Cmd) {
				backtrack := components.NewBreadcrumb()
				return newHelpMenu(backtrack.PushNew(back)), nil
			},
		},
		{
			Name: "Quit",
			OnClick: func() (tea.Model, tea.Cmd) {
				return menu, tea.Quit
			},
		},
	}

	menu.buttons = components.NewMenuButton(buttons)

	return menu
}

func (m MainMenuModel) withStatus(status string) MainMenuModel {
	m.status = status
	return m
}

func (m MainMenuModel) Init() tea.Cmd {
	return nil
}

func (m MainMenuModel) View() string {
	header := "Pallet!"
	info := fmt.Sprintf("%s  $%d  Caught: %d", m.session.PlayerName, m.session.Money, len(m.session.Caught))

	menu := lipgloss.JoinVertical(lipgloss.Center, header, info, m.buttons.View(), m.status)
	return rendering.GlobalCenter(lipgloss.JoinHorizontal(lipgloss.Center, menu, "    ", m.team.View()))
}

func (m MainMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, startCmd := m.buttons.Update(msg)
	if newModel != nil {
		return newModel, startCmd
	}

	return m, nil
}
