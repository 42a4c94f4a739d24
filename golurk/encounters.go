package golurk

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// WildEncounter describes the wild pokemon a battle is started against.
// The level is rolled between LevelMin and LevelMax (inclusive) when the battle starts.
type WildEncounter struct {
	Species  string
	LevelMin int
	LevelMax int
}

type EncounterSlot struct {
	Species  string `yaml:"species"`
	LevelMin int    `yaml:"level_min"`
	LevelMax int    `yaml:"level_max"`
	// Relative weight against the other slots in the zone
	Rate int `yaml:"rate"`
}

type EncounterZone struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	// Percent chance of an encounter per step
	EncounterRate int             `yaml:"encounter_rate"`
	Slots         []EncounterSlot `yaml:"pokemon"`
}

// CheckEncounter rolls whether a step in this zone triggers a wild battle
func (z EncounterZone) CheckEncounter(rng *rand.Rand) bool {
	return rng.IntN(100)+1 <= z.EncounterRate
}

// Roll picks a slot weighted by rate. Returns false if the zone has nothing to encounter.
func (z EncounterZone) Roll(rng *rand.Rand) (WildEncounter, bool) {
	totalRate := lo.SumBy(z.Slots, func(s EncounterSlot) int {
		return max(s.Rate, 0)
	})

	if totalRate <= 0 {
		return WildEncounter{}, false
	}

	roll := rng.IntN(totalRate) + 1
	cumulative := 0

	for _, slot := range z.Slots {
		cumulative += max(slot.Rate, 0)
		if roll <= cumulative {
			return WildEncounter{
				Species:  slot.Species,
				LevelMin: slot.LevelMin,
				LevelMax: slot.LevelMax,
			}, true
		}
	}

	return WildEncounter{}, false
}

type TrainerSlot struct {
	Species string `yaml:"species"`
	Level   int    `yaml:"level"`
}

type Trainer struct {
	ID             string        `yaml:"id"`
	Name           string        `yaml:"name"`
	Class          string        `yaml:"class"`
	PrizeMoney     int           `yaml:"prize_money"`
	Dialogue       []string      `yaml:"dialogue"`
	DefeatDialogue []string      `yaml:"defeat_dialogue"`
	Team           []TrainerSlot `yaml:"team"`
}

func (t Trainer) DisplayName() string {
	if t.Class == "" {
		return t.Name
	}

	return fmt.Sprintf("%s %s", t.Class, t.Name)
}

// BuildTeam creates the trainer's pokemon with random IVs and default moves
func (t Trainer) BuildTeam(rng *rand.Rand) []Pokemon {
	return lo.Map(t.Team, func(slot TrainerSlot, _ int) Pokemon {
		return NewPokemon(slot.Species, slot.Level, rng)
	})
}

type encounterFile struct {
	Zones []EncounterZone `yaml:"zones"`
}

type trainerFile struct {
	Trainers []Trainer `yaml:"trainers"`
}

func LoadEncounterZones(zoneBytes []byte) ([]EncounterZone, error) {
	file := encounterFile{}
	if err := yaml.Unmarshal(zoneBytes, &file); err != nil {
		internalLogger.Error(err, "Couldn't parse encounter zones")
		return nil, err
	}

	for i, zone := range file.Zones {
		if zone.ID == "" {
			return nil, fmt.Errorf("encounter zone %d is missing an id", i)
		}

		for j, slot := range zone.Slots {
			if slot.LevelMin > slot.LevelMax {
				return nil, fmt.Errorf("zone %s slot %s has level_min > level_max", zone.ID, slot.Species)
			}

			file.Zones[i].Slots[j].Species = strings.ToUpper(slot.Species)
		}
	}

	internalLogger.Info("Loaded encounter zones", "count", len(file.Zones))

	return file.Zones, nil
}

func LoadTrainers(trainerBytes []byte) ([]Trainer, error) {
	file := trainerFile{}
	if err := yaml.Unmarshal(trainerBytes, &file); err != nil {
		internalLogger.Error(err, "Couldn't parse trainers")
		return nil, err
	}

	for i, trainer := range file.Trainers {
		if trainer.ID == "" {
			return nil, fmt.Errorf("trainer %d is missing an id", i)
		}

		if len(trainer.Team) == 0 || len(trainer.Team) > MAX_PARTY {
			return nil, fmt.Errorf("trainer %s has %d pokemon", trainer.ID, len(trainer.Team))
		}

		for j, slot := range trainer.Team {
			file.Trainers[i].Team[j].Species = strings.ToUpper(slot.Species)
		}
	}

	internalLogger.Info("Loaded trainers", "count", len(file.Trainers))

	return file.Trainers, nil
}
