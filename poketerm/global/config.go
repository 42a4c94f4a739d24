package global

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nathanieltooley/pallet/golurk"
)

// env overrides, read after the config file so they always win
const (
	ENV_DEBUG      = "PALLET_DEBUG"
	ENV_SEED       = "PALLET_SEED"
	ENV_DIFFICULTY = "PALLET_DIFFICULTY"
)

type GlobalConfig struct {
	PlayerName   string
	SaveLocation string
	Debug        bool
	// easy, normal or hard
	Difficulty string
	// 0 means a new random seed every battle
	Seed        uint64
	StrictParty bool
}

func DefaultConfigDir() string {
	configDir, _ := os.UserConfigDir()
	return filepath.Join(configDir, "pallet")
}

func DefaultConfigLocation() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

func SaveConfig(config GlobalConfig) error {
	jsonString, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(DefaultConfigLocation(), jsonString, 0644); err != nil {
		return err
	}

	return nil
}

// ParseConfig reads a config file's contents. Empty contents give the default config.
func ParseConfig(contents []byte) (GlobalConfig, error) {
	config := GlobalConfig{}

	if len(contents) > 0 {
		if err := json.Unmarshal(contents, &config); err != nil {
			return populateConfig(GlobalConfig{}), err
		}
	}

	return populateConfig(config), nil
}

func populateConfig(config GlobalConfig) GlobalConfig {
	configDir := DefaultConfigDir()

	if strings.TrimSpace(config.PlayerName) == "" {
		config.PlayerName = "RED"
	}
	if config.SaveLocation == "" {
		config.SaveLocation = filepath.Join(configDir, "saves/", "save.json")
	}
	config.Difficulty = golurk.ParseDifficulty(config.Difficulty).String()

	return config
}

// applyEnv overrides config values with any PALLET_* variables that are set.
// lookup is os.LookupEnv outside of tests.
func applyEnv(config GlobalConfig, lookup func(string) (string, bool)) GlobalConfig {
	if debug, ok := lookup(ENV_DEBUG); ok {
		if parsed, err := strconv.ParseBool(debug); err == nil {
			config.Debug = parsed
		} else {
			initLogger.Warn().Str("value", debug).Msg("ignoring invalid " + ENV_DEBUG)
		}
	}

	if seed, ok := lookup(ENV_SEED); ok {
		if parsed, err := strconv.ParseUint(seed, 10, 64); err == nil {
			config.Seed = parsed
		} else {
			initLogger.Warn().Str("value", seed).Msg("ignoring invalid " + ENV_SEED)
		}
	}

	if difficulty, ok := lookup(ENV_DIFFICULTY); ok {
		config.Difficulty = golurk.ParseDifficulty(difficulty).String()
	}

	return config
}
