package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/nathanieltooley/pallet/golurk"
	"github.com/nathanieltooley/pallet/poketerm/global"
	"github.com/nathanieltooley/pallet/poketerm/shared/savefs"
	"github.com/nathanieltooley/pallet/poketerm/telemetry"
	"github.com/nathanieltooley/pallet/poketerm/views/mainmenu"
	"github.com/rs/zerolog/log"
)

type model struct {
	currentView tea.Model
}

func (m model) Init() tea.Cmd {
	return m.currentView.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	newView, cmd := m.currentView.Update(msg)
	m.currentView = newView

	return m, cmd
}

func (m model) View() string {
	return m.currentView.View()
}

// loadSession loads the save at saveLocation, or starts a new game when there isn't one
func loadSession(saveLocation string) (savefs.Session, error) {
	session, err := savefs.Load(saveLocation)
	if err == nil {
		log.Info().Str("id", session.ID.String()).Int("party", len(session.Party)).Msg("loaded save")
		return session, nil
	}

	if !errors.Is(err, savefs.ErrNoSave) {
		return savefs.Session{}, err
	}

	var party []golurk.Pokemon
	if !global.Opt.StrictParty {
		party = golurk.DefaultParty(global.PalletRand)
	}

	session = savefs.NewSession(global.Opt.PlayerName, party)
	log.Info().Str("id", session.ID.String()).Msg("no save found, starting a new game")

	return session, nil
}

func main() {
	// a missing .env is normal
	envErr := godotenv.Load()

	global.GlobalInit(true)
	if envErr != nil && !os.IsNotExist(envErr) {
		log.Warn().Err(envErr).Msg("couldn't read .env")
	}

	shutdown, err := telemetry.Setup(context.Background())
	if err != nil {
		log.Err(err).Msg("failed to set up tracing")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()

		if shutdown != nil {
			if err := shutdown(ctx); err != nil {
				log.Err(err).Msg("failed to flush traces")
			}
		}
	}()

	session, err := loadSession(global.Opt.SaveLocation)
	if err != nil {
		log.Err(err).Str("location", global.Opt.SaveLocation).Msg("failed to load save")
		fmt.Fprintf(os.Stderr, "Couldn't load the save at %s: %s\n", global.Opt.SaveLocation, err)
		return
	}

	m := model{
		currentView: mainmenu.NewModel(&session),
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Err(err).Msg("error running program")
		fmt.Fprintln(os.Stderr, "Error running program: ", err)
	}
}
