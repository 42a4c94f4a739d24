package mainmenu

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/pallet/golurk"
	"github.com/nathanieltooley/pallet/poketerm/global"
	"github.com/nathanieltooley/pallet/poketerm/rendering"
	"github.com/nathanieltooley/pallet/poketerm/rendering/components"
	"github.com/nathanieltooley/pallet/poketerm/shared/savefs"
	"github.com/nathanieltooley/pallet/poketerm/views/battleview"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// MAX_STEPS caps how long the player walks through a zone looking for an encounter
const MAX_STEPS = 100

type zoneItem struct {
	zone golurk.EncounterZone
}

func (i zoneItem) FilterValue() string {
	return fmt.Sprintf("%s (%d%% encounter rate)", i.zone.Name, i.zone.EncounterRate)
}

// a zone nothing can be found in is shown but can't be walked through
func (i zoneItem) Disabled() bool {
	return i.zone.EncounterRate <= 0 || len(i.zone.Slots) == 0
}

type trainerItem struct {
	trainer golurk.Trainer
}

func (i trainerItem) FilterValue() string {
	return fmt.Sprintf("%s  $%d", i.trainer.DisplayName(), i.trainer.PrizeMoney)
}

// battleSelectModel lists things to battle and starts a battle with whichever is picked
type battleSelectModel struct {
	title     string
	backtrack components.Breadcrumbs
	list      list.Model
	start     func(list.Item) (tea.Model, error)

	showError bool
	err       error
}

func newBattleSelect(title string, items []list.Item, backtrack components.Breadcrumbs, start func(list.Item) (tea.Model, error)) battleSelectModel {
	l := list.New(items, rendering.NewSimpleListDelegate(), 50, max(len(items)+6, 10))
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return battleSelectModel{
		title:     title,
		backtrack: backtrack,
		list:      l,
		start:     start,
	}
}

// stepsUntilEncounter walks through zone until its encounter check passes
func stepsUntilEncounter(zone golurk.EncounterZone, rng *rand.Rand) (int, bool) {
	for step := 1; step <= MAX_STEPS; step++ {
		if zone.CheckEncounter(rng) {
			return step, true
		}
	}

	return MAX_STEPS, false
}

func newZoneSelection(session *savefs.Session, backtrack components.Breadcrumbs) battleSelectModel {
	items := lo.Map(golurk.GlobalData.EncounterZones(), func(zone golurk.EncounterZone, _ int) list.Item {
		return zoneItem{zone}
	})

	return newBattleSelect("Where to?", items, backtrack, func(item list.Item) (tea.Model, error) {
		zone := item.(zoneItem).zone

		steps, found := stepsUntilEncounter(zone, global.PalletRand)
		if !found {
			return nil, fmt.Errorf("walked %d steps through %s and found nothing", steps, zone.Name)
		}

		log.Info().Str("zone", zone.ID).Int("steps", steps).Msg("wild encounter")

		return battleview.StartWildBattle(session, zone, func() tea.Model {
			return NewModel(session)
		})
	})
}

func newTrainerSelection(session *savefs.Session, backtrack components.Breadcrumbs) battleSelectModel {
	items := lo.Map(golurk.GlobalData.Trainers(), func(trainer golurk.Trainer, _ int) list.Item {
		return trainerItem{trainer}
	})

	return newBattleSelect("Who do you want to battle?", items, backtrack, func(item list.Item) (tea.Model, error) {
		trainer := item.(trainerItem).trainer

		return battleview.StartTrainerBattle(session, trainer, func() tea.Model {
			return NewModel(session)
		})
	})
}

func (m battleSelectModel) Init() tea.Cmd { return nil }
func (m battleSelectModel) View() string {
	if m.showError {
		return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center, "Error!", rendering.ErrorStyle.Render(m.err.Error())))
	}

	return rendering.GlobalCenter(m.list.View())
}

func (m battleSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clearErrorMessage:
		m.showError = false
		m.err = nil

		return m, nil
	case tea.KeyMsg:
		if m.showError {
			return m, nil
		}

		if key.Matches(msg, global.BackKey) {
			return m.backtrack.PopDefault(func() tea.Model { return m }), nil
		}

		if key.Matches(msg, global.SelectKey) && m.list.SelectedItem() != nil {
			if rendering.IsDisabled(m.list.SelectedItem()) {
				return m, m.showErr(fmt.Errorf("there's nothing to find in %s", m.list.SelectedItem().FilterValue()))
			}

			battle, err := m.start(m.list.SelectedItem())
			if err != nil {
				return m, m.showErr(err)
			}

			return battle, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m *battleSelectModel) showErr(err error) tea.Cmd {
	m.showError = true
	m.err = err

	log.Err(err).Str("menu", m.title).Msg("couldn't start battle")

	return tea.Tick(time.Second*2, func(t time.Time) tea.Msg {
		return clearErrorMessage{t}
	})
}
