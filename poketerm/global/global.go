package global

import (
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/zerologr"
	"github.com/nathanieltooley/pallet/golurk"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

var (
	TERM_WIDTH, TERM_HEIGHT, _ = term.GetSize(int(os.Stdout.Fd()))

	SelectKey = key.NewBinding(
		key.WithKeys("enter"),
	)
	MoveLeftKey = key.NewBinding(
		key.WithKeys("left", "h"),
	)
	MoveRightKey = key.NewBinding(
		key.WithKeys("right", "l"),
	)
	MoveDownKey = key.NewBinding(
		key.WithKeys("down", "j"),
	)
	MoveUpKey = key.NewBinding(
		key.WithKeys("up", "k"),
	)

	DownTabKey = key.NewBinding(key.WithKeys(tea.KeyTab.String()))
	UpTabKey   = key.NewBinding(key.WithKeys(tea.KeyShiftTab.String()))

	BackKey = key.NewBinding(key.WithKeys(tea.KeyEsc.String(), "backspace"))

	Opt = populateConfig(GlobalConfig{})

	// Used for everything outside of a battle (encounter rolls, starters).
	// Can be changed for testing purposes
	PalletRand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

	// shared by every battle when a seed is configured so a session is reproducible
	seededBattleSource rand.Source

	initLogger zerolog.Logger
)

func GlobalInit(shouldLog bool) {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout}

	configDir := DefaultConfigDir()
	configFilepath := DefaultConfigLocation()

	// Basic logging for config debugging
	initLogger = zerolog.New(consoleWriter).With().Timestamp().Logger()
	if !shouldLog {
		initLogger = zerolog.Nop()
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		initLogger.Err(err).Msg("error occured trying to create config dir")
	}

	configContents, err := os.ReadFile(configFilepath)
	if err != nil && !os.IsNotExist(err) {
		initLogger.Err(err).Msg("error occurred while trying to read config file")
	}

	config, err := ParseConfig(configContents)
	if err != nil {
		initLogger.Err(err).Msg("config file is invalid, using defaults")
	}

	// write the defaults out so there's something for the user to edit
	if len(configContents) == 0 {
		if err := SaveConfig(config); err != nil {
			initLogger.Err(err).Msg("error occurred while trying to write default config values")
		}
	}

	Opt = applyEnv(config, os.LookupEnv)

	level := zerolog.InfoLevel
	if Opt.Debug {
		level = zerolog.DebugLevel
	}

	if shouldLog {
		initLogger = zerolog.New(zerolog.MultiLevelWriter(consoleWriter, createFileWriter(configDir))).With().Timestamp().Logger().Level(level)
	}

	// Main global logger
	log.Logger = createLogger(configDir, level)
	setEngineLogger()

	if Opt.Seed != 0 {
		seededBattleSource = golurk.SeededSource(Opt.Seed)
		PalletRand = rand.New(golurk.SeededSource(Opt.Seed + 1))
	}

	initLogger.Info().
		Int("species", len(golurk.GlobalData.SpeciesNames())).
		Int("items", len(golurk.GlobalData.Items())).
		Int("zones", len(golurk.GlobalData.EncounterZones())).
		Int("trainers", len(golurk.GlobalData.Trainers())).
		Str("difficulty", Opt.Difficulty).
		Bool("seeded", Opt.Seed != 0).
		Msg("pallet initialized")
}

// setEngineLogger points golurk's logger at the global zerolog logger.
// V(1) engine logs show up at debug level, V(2) at trace.
func setEngineLogger() {
	zerologr.SetMaxV(2)
	golurk.SetInternalLogger(zerologr.New(&log.Logger))
}

func createFileWriter(configDir string) zerolog.ConsoleWriter {
	rollingWriter := NewRollingFileWriter(filepath.Join(configDir, "logs/"), "pallet")
	return zerolog.ConsoleWriter{Out: rollingWriter, NoColor: true}
}

func createLogger(configDir string, level zerolog.Level) zerolog.Logger {
	return zerolog.New(createFileWriter(configDir)).With().Timestamp().Caller().Logger().Level(level)
}

func UpdateLogLevel(level zerolog.Level) {
	log.Logger = log.Logger.Level(level)
	setEngineLogger()
}

// ForceRng replaces the out of battle rng, so tests can pin encounter rolls
func ForceRng(source rand.Source) {
	PalletRand = rand.New(source)
}

// BattleConfig builds the engine config for a new battle from the current options
func BattleConfig() golurk.BattleConfig {
	return golurk.BattleConfig{
		PlayerName:  Opt.PlayerName,
		Difficulty:  golurk.ParseDifficulty(Opt.Difficulty),
		Source:      NewBattleSource(),
		StrictParty: Opt.StrictParty,
	}
}

// NewBattleSource returns the random source for the next battle. Nil lets the engine seed itself.
func NewBattleSource() rand.Source {
	return seededBattleSource
}
