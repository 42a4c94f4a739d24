package savefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/nathanieltooley/pallet/golurk"
	"github.com/samber/lo"
)

// SAVE_VERSION is bumped whenever the save layout changes in a way older builds can't read
const SAVE_VERSION = 1

const (
	STARTING_MONEY = 3000
	MAX_MONEY      = 999999
)

var (
	ErrNoSave    = errors.New("no save file exists")
	ErrNewerSave = errors.New("save file is from a newer version")
)

var startingBag = map[string]int{
	"potion":   5,
	"antidote": 2,
	"pokeball": 5,
}

// SaveFile is the on disk form of a Session
type SaveFile struct {
	SaveVersion int                    `json:"save_version"`
	ID          uuid.UUID              `json:"id"`
	Timestamp   time.Time              `json:"timestamp"`
	PlayerName  string                 `json:"player_name"`
	Money       int                    `json:"money"`
	Bag         map[string]int         `json:"bag"`
	Party       []golurk.PokemonRecord `json:"party"`
	// caught pokemon that didn't fit in the party
	Box []golurk.PokemonRecord `json:"box"`
	// species the player has caught at least once
	Caught []string `json:"caught"`
}

// Session is everything about the player that lives between battles
type Session struct {
	ID         uuid.UUID
	PlayerName string
	Money      int
	Bag        map[string]int
	Party      []golurk.Pokemon
	Box        []golurk.Pokemon
	Caught     []string
}

// BagEntry is an item the player is holding and how many of it
type BagEntry struct {
	Item  golurk.Item
	Count int
}

func NewSession(playerName string, party []golurk.Pokemon) Session {
	return Session{
		ID:         uuid.New(),
		PlayerName: playerName,
		Money:      STARTING_MONEY,
		Bag:        cloneBag(startingBag),
		Party:      party,
	}
}

func cloneBag(bag map[string]int) map[string]int {
	return lo.Assign(map[string]int{}, bag)
}

// BagEntries lists the items in the bag in item data order (balls last), skipping anything with a count of 0
func (s Session) BagEntries() []BagEntry {
	return lo.FilterMap(golurk.GlobalData.Items(), func(item golurk.Item, _ int) (BagEntry, bool) {
		count := s.Bag[item.ID]
		return BagEntry{Item: item, Count: count}, count > 0
	})
}

// TakeItem removes one of id from the bag. Returns false if there weren't any.
func (s *Session) TakeItem(id string) bool {
	if s.Bag[id] <= 0 {
		return false
	}

	s.Bag[id]--
	if s.Bag[id] == 0 {
		delete(s.Bag, id)
	}

	return true
}

func (s *Session) AddMoney(amount int) {
	s.Money = min(max(s.Money+amount, 0), MAX_MONEY)
}

// AddCaught puts a newly caught pokemon in the party, or the box if the party is full.
// Returns true if it went to the box.
func (s *Session) AddCaught(pokemon golurk.Pokemon) bool {
	if !slices.Contains(s.Caught, pokemon.Species()) {
		s.Caught = append(s.Caught, pokemon.Species())
	}

	if len(s.Party) < golurk.MAX_PARTY {
		s.Party = append(s.Party, pokemon)
		return false
	}

	s.Box = append(s.Box, pokemon)
	return true
}

// HealParty fully restores every pokemon in the party
func (s *Session) HealParty() {
	for i := range s.Party {
		s.Party[i].FullHeal()
	}
}

func (s Session) ToSaveFile() SaveFile {
	toRecords := func(pokemon []golurk.Pokemon) []golurk.PokemonRecord {
		return lo.Map(pokemon, func(p golurk.Pokemon, _ int) golurk.PokemonRecord {
			return p.ToRecord()
		})
	}

	return SaveFile{
		SaveVersion: SAVE_VERSION,
		ID:          s.ID,
		PlayerName:  s.PlayerName,
		Money:       s.Money,
		Bag:         cloneBag(s.Bag),
		Party:       toRecords(s.Party),
		Box:         toRecords(s.Box),
		Caught:      slices.Clone(s.Caught),
	}
}

// FromSaveFile rebuilds a session from a save. Parties bigger than MAX_PARTY spill over into the box.
func FromSaveFile(save SaveFile) (Session, error) {
	if save.SaveVersion > SAVE_VERSION {
		return Session{}, fmt.Errorf("%w: version %d, this build reads up to %d", ErrNewerSave, save.SaveVersion, SAVE_VERSION)
	}

	party, err := fromRecords(save.Party)
	if err != nil {
		return Session{}, fmt.Errorf("party: %w", err)
	}

	box, err := fromRecords(save.Box)
	if err != nil {
		return Session{}, fmt.Errorf("box: %w", err)
	}

	if len(party) > golurk.MAX_PARTY {
		box = append(party[golurk.MAX_PARTY:], box...)
		party = party[:golurk.MAX_PARTY]
	}

	id := save.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	bag := save.Bag
	if bag == nil {
		bag = map[string]int{}
	}

	return Session{
		ID:         id,
		PlayerName: save.PlayerName,
		Money:      min(max(save.Money, 0), MAX_MONEY),
		Bag:        bag,
		Party:      party,
		Box:        box,
		Caught:     save.Caught,
	}, nil
}

func fromRecords(records []golurk.PokemonRecord) ([]golurk.Pokemon, error) {
	pokemon := make([]golurk.Pokemon, 0, len(records))
	for i, rec := range records {
		p, err := golurk.FromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", i, err)
		}

		pokemon = append(pokemon, p)
	}

	return pokemon, nil
}

func Save(filePath string, session Session) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0750); err != nil {
		return err
	}

	save := session.ToSaveFile()
	save.Timestamp = time.Now()

	saveJson, err := json.MarshalIndent(save, "", "  ")
	if err != nil {
		return err
	}

	// write to a temp file first so a crash mid write doesn't eat the old save
	tempPath := filePath + ".tmp"
	if err := os.WriteFile(tempPath, saveJson, 0644); err != nil {
		return err
	}

	return os.Rename(tempPath, filePath)
}

func Load(filePath string) (Session, error) {
	saveBytes, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Session{}, ErrNoSave
		}

		return Session{}, err
	}

	save := SaveFile{}
	if err := json.Unmarshal(saveBytes, &save); err != nil {
		return Session{}, fmt.Errorf("corrupt save file %s: %w", filePath, err)
	}

	return FromSaveFile(save)
}

// Exists reports whether there's already a file at filePath
func Exists(filePath string) bool {
	_, err := os.Stat(filePath)
	return err == nil
}
