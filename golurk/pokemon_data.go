package golurk

import (
	"bytes"
	"embed"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/samber/lo"
)

//go:embed data
var dataFiles embed.FS

// GlobalData is loaded from the embedded data files once at startup and never changes afterwards
var GlobalData = mustLoadData(dataFiles)

type pokemonDb struct {
	moves    MoveRegistry
	pokemon  []BasePokemon
	items    []Item
	zones    []EncounterZone
	trainers []Trainer
}

type MoveRegistry struct {
	// Moves is a map of move names to full move info
	Moves map[string]Move
	// DefaultPokemonMoves maps species names to the moves they know when created
	DefaultPokemonMoves map[string][]string
}

func (db pokemonDb) GetMove(name string) *Move {
	move, ok := db.moves.Moves[strings.ToUpper(name)]
	if ok {
		return &move
	} else {
		return nil
	}
}

// GetDefaultMoves returns the moves a freshly created species knows. Species without an entry know TACKLE.
func (db pokemonDb) GetDefaultMoves(species string) []Move {
	names, ok := db.moves.DefaultPokemonMoves[strings.ToUpper(species)]
	if !ok {
		names = []string{"TACKLE"}
	}

	moves := make([]Move, 0, len(names))
	for _, name := range names {
		if move := db.GetMove(name); move != nil {
			moves = append(moves, *move)
		}
	}

	return moves
}

func (db pokemonDb) GetPokemonByName(pkmName string) *BasePokemon {
	for _, pkm := range db.pokemon {
		if strings.EqualFold(pkm.Name, pkmName) {
			return &pkm
		}
	}

	return nil
}

// GetPokemonOrDefault looks up a species and falls back to a neutral stat block if it doesn't exist
func (db pokemonDb) GetPokemonOrDefault(pkmName string) *BasePokemon {
	base := db.GetPokemonByName(pkmName)
	if base == nil {
		internalLogger.WithName("pokemon_data").Info("unknown species, using neutral stats", "species", pkmName)
		return neutralBase(strings.ToUpper(pkmName))
	}

	return base
}

func (db pokemonDb) SpeciesNames() []string {
	return lo.Map(db.pokemon, func(p BasePokemon, _ int) string {
		return p.Name
	})
}

func (db pokemonDb) GetItem(id string) *Item {
	item, found := lo.Find(db.items, func(i Item) bool {
		return i.ID == id
	})
	if !found {
		return nil
	}

	return &item
}

// Items returns every item, balls last
func (db pokemonDb) Items() []Item {
	return slices.Clone(db.items)
}

func (db pokemonDb) Balls() []Item {
	return lo.Filter(db.items, func(i Item, _ int) bool {
		return i.IsBall()
	})
}

func (db pokemonDb) EncounterZones() []EncounterZone {
	return slices.Clone(db.zones)
}

func (db pokemonDb) GetEncounterZone(id string) *EncounterZone {
	zone, found := lo.Find(db.zones, func(z EncounterZone) bool {
		return z.ID == id
	})
	if !found {
		return nil
	}

	return &zone
}

func (db pokemonDb) Trainers() []Trainer {
	return slices.Clone(db.trainers)
}

func (db pokemonDb) GetTrainer(id string) *Trainer {
	trainer, found := lo.Find(db.trainers, func(t Trainer) bool {
		return t.ID == id
	})
	if !found {
		return nil
	}

	return &trainer
}

// LoadPokemon takes in the bytes of a csv file with the following columns:
// Name, Type1, Type2, HP, Attack, Defense, Speed, Special, ExpYield
// in that order. Type2 may be empty, all stat values must be valid integers
func LoadPokemon(fileBytes []byte) ([]BasePokemon, error) {
	csvReader := csv.NewReader(bytes.NewBuffer(fileBytes))
	rows, err := csvReader.ReadAll()
	if err != nil {
		internalLogger.Error(err, "invalid csv data")
		return nil, err
	}

	if len(rows) == 0 {
		return nil, errors.New("species data is empty")
	}

	// skip header
	rows = rows[1:]
	pokemonList := make([]BasePokemon, 0, len(rows))

	internalLogger.Info("Loading Pokemon Data")

	for _, row := range rows {
		if len(row) != 9 {
			return nil, fmt.Errorf("species row has %d columns, expected 9: %v", len(row), row)
		}

		name := strings.ToUpper(row[0])
		type1 := strings.ToLower(row[1])
		type2 := strings.ToLower(row[2])

		if !IsValidType(type1) || (type2 != "" && !IsValidType(type2)) {
			return nil, fmt.Errorf("%s has an unknown type: %s/%s", name, type1, type2)
		}

		if type1 == type2 {
			type2 = ""
		}

		stats := make([]int, 6)
		for i, col := range row[3:] {
			value, err := strconv.Atoi(col)
			if err != nil {
				internalLogger.WithName("pokemon_parsing").Error(err, "invalid stat", "species", name, "column", i+3)
				return nil, err
			}

			stats[i] = value
		}

		internalLogger.WithName("load_pokemon").V(2).Info("loaded pokemon", "name", name, "stats", stats)

		pokemonList = append(pokemonList, BasePokemon{
			Name:     name,
			Type1:    type1,
			Type2:    type2,
			Hp:       stats[0],
			Attack:   stats[1],
			Defense:  stats[2],
			Speed:    stats[3],
			Special:  stats[4],
			ExpYield: stats[5],
		})
	}

	internalLogger.Info("Loaded pokemon", "count", len(pokemonList))

	return pokemonList, nil
}

// LoadMoves takes in json that lists out move information and json that maps pokemon names to their default moves
func LoadMoves(moveBytes []byte, moveMapBytes []byte) (MoveRegistry, error) {
	internalLogger.Info("Loading Move Data")

	parsedMoves := make([]Move, 0)
	moveMap := make(map[string][]string)
	moveRegistry := MoveRegistry{Moves: make(map[string]Move), DefaultPokemonMoves: make(map[string][]string)}

	if err := json.Unmarshal(moveBytes, &parsedMoves); err != nil {
		internalLogger.Error(err, "Couldn't unmarshal move data")
		return moveRegistry, err
	}
	if err := json.Unmarshal(moveMapBytes, &moveMap); err != nil {
		internalLogger.Error(err, "Couldn't unmarshal move map")
		return moveRegistry, err
	}

	for _, parsedMove := range parsedMoves {
		move, err := parsedMove.validate()
		if err != nil {
			return moveRegistry, err
		}

		move.Name = strings.ToUpper(move.Name)
		moveRegistry.Moves[move.Name] = move
	}

	for species, moveNames := range moveMap {
		upperNames := lo.Map(moveNames, func(name string, _ int) string {
			return strings.ToUpper(name)
		})

		for _, name := range upperNames {
			if _, ok := moveRegistry.Moves[name]; !ok {
				return moveRegistry, fmt.Errorf("%s's default move %s does not exist", species, name)
			}
		}

		if len(upperNames) > MAX_MOVES {
			return moveRegistry, fmt.Errorf("%s has more than %d default moves", species, MAX_MOVES)
		}

		moveRegistry.DefaultPokemonMoves[strings.ToUpper(species)] = upperNames
	}

	internalLogger.Info("Loaded moves", "count", len(moveRegistry.Moves), "pokemon_count", len(moveRegistry.DefaultPokemonMoves))

	return moveRegistry, nil
}

func LoadItems(itemBytes []byte) ([]Item, error) {
	items := make([]Item, 0)
	if err := json.Unmarshal(itemBytes, &items); err != nil {
		internalLogger.Error(err, "Couldn't parse items.json")
		return items, err
	}

	for _, item := range items {
		if item.ID == "" {
			return nil, errors.New("item is missing an id")
		}
	}

	// balls go last so menus list healing items first
	slices.SortStableFunc(items, func(a, b Item) int {
		return strings.Compare(a.Category, b.Category)
	})

	internalLogger.Info("Loaded items", "count", len(items))
	return items, nil
}

// DefaultLoader loads all game data from files laid out like the embedded data directory
func DefaultLoader(files fs.FS) (pokemonDb, []error) {
	db := pokemonDb{}

	// Load concurrently, each goroutine only writes its own field
	var wg sync.WaitGroup
	wg.Add(5)
	errChan := make(chan error, 5)

	go func() {
		defer wg.Done()

		speciesBytes, err := fs.ReadFile(files, "data/species.csv")
		if err != nil {
			errChan <- err
			return
		}

		pokemon, err := LoadPokemon(speciesBytes)
		if err != nil {
			errChan <- err
			return
		}

		db.pokemon = pokemon
	}()
	go func() {
		defer wg.Done()

		moveBytes, err := fs.ReadFile(files, "data/moves.json")
		if err != nil {
			errChan <- err
			return
		}

		moveMapBytes, err := fs.ReadFile(files, "data/movesMap.json")
		if err != nil {
			errChan <- err
			return
		}

		moves, err := LoadMoves(moveBytes, moveMapBytes)
		if err != nil {
			errChan <- err
			return
		}

		db.moves = moves
	}()
	go func() {
		defer wg.Done()

		itemBytes, err := fs.ReadFile(files, "data/items.json")
		if err != nil {
			errChan <- err
			return
		}

		items, err := LoadItems(itemBytes)
		if err != nil {
			errChan <- err
			return
		}

		db.items = items
	}()
	go func() {
		defer wg.Done()

		zoneBytes, err := fs.ReadFile(files, "data/encounters.yaml")
		if err != nil {
			errChan <- err
			return
		}

		zones, err := LoadEncounterZones(zoneBytes)
		if err != nil {
			errChan <- err
			return
		}

		db.zones = zones
	}()
	go func() {
		defer wg.Done()

		trainerBytes, err := fs.ReadFile(files, "data/trainers.yaml")
		if err != nil {
			errChan <- err
			return
		}

		trainers, err := LoadTrainers(trainerBytes)
		if err != nil {
			errChan <- err
			return
		}

		db.trainers = trainers
	}()

	wg.Wait()
	close(errChan)

	errs := make([]error, 0)
	for err := range errChan {
		errs = append(errs, err)
	}

	return db, errs
}

// mustLoadData panics since the data is embedded at compile time, a failure here is a bug in the data files
func mustLoadData(files fs.FS) pokemonDb {
	db, errs := DefaultLoader(files)
	if len(errs) > 0 {
		panic(errors.Join(errs...))
	}

	return db
}
