package global

import (
	"path/filepath"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	config, err := ParseConfig(nil)
	if err != nil {
		t.Fatalf("empty config should not error: %s", err)
	}

	if config.PlayerName != "RED" {
		t.Fatalf("expected default player name RED, got %s", config.PlayerName)
	}

	if config.Difficulty != "normal" {
		t.Fatalf("expected default difficulty normal, got %s", config.Difficulty)
	}

	if filepath.Base(config.SaveLocation) != "save.json" {
		t.Fatalf("expected a default save location, got %s", config.SaveLocation)
	}
}

func TestParseConfigValues(t *testing.T) {
	config, err := ParseConfig([]byte(`{"PlayerName": "BLUE", "Difficulty": "HARD", "Seed": 42, "StrictParty": true}`))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if config.PlayerName != "BLUE" || config.Difficulty != "hard" || config.Seed != 42 || !config.StrictParty {
		t.Fatalf("config values were not kept: %+v", config)
	}
}

func TestParseConfigInvalid(t *testing.T) {
	config, err := ParseConfig([]byte("{not json"))
	if err == nil {
		t.Fatal("expected an error for invalid json")
	}

	if config.PlayerName != "RED" {
		t.Fatalf("invalid config should still give defaults, got %+v", config)
	}
}

func TestEnvOverrides(t *testing.T) {
	env := map[string]string{
		ENV_DEBUG:      "true",
		ENV_SEED:       "1234",
		ENV_DIFFICULTY: "easy",
	}
	lookup := func(name string) (string, bool) {
		value, ok := env[name]
		return value, ok
	}

	config := applyEnv(populateConfig(GlobalConfig{Difficulty: "hard"}), lookup)

	if !config.Debug {
		t.Fatal("expected debug to be turned on")
	}

	if config.Seed != 1234 {
		t.Fatalf("expected seed 1234, got %d", config.Seed)
	}

	if config.Difficulty != "easy" {
		t.Fatalf("expected env difficulty to win, got %s", config.Difficulty)
	}
}

func TestEnvOverridesIgnoresBadValues(t *testing.T) {
	lookup := func(name string) (string, bool) {
		switch name {
		case ENV_SEED:
			return "not a number", true
		case ENV_DEBUG:
			return "maybe", true
		}

		return "", false
	}

	config := applyEnv(GlobalConfig{Seed: 7, Debug: true}, lookup)
	if config.Seed != 7 || !config.Debug {
		t.Fatalf("bad env values should leave the config alone, got %+v", config)
	}
}

func TestBattleConfigUsesOptions(t *testing.T) {
	previous := Opt
	t.Cleanup(func() { Opt = previous })

	Opt = populateConfig(GlobalConfig{PlayerName: "GREEN", Difficulty: "hard", StrictParty: true})

	cfg := BattleConfig()
	if cfg.PlayerName != "GREEN" || cfg.Difficulty.String() != "hard" || !cfg.StrictParty {
		t.Fatalf("battle config doesn't match options: %+v", cfg)
	}
}
