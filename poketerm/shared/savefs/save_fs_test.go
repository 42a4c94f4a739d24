package savefs

import (
	"encoding/json"
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/nathanieltooley/pallet/golurk"
)

func testRng() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func testSession() Session {
	rng := testRng()
	return NewSession("RED", []golurk.Pokemon{
		golurk.NewPokemon("PIKACHU", 12, rng),
		golurk.NewPokemon("PIDGEY", 7, rng),
	})
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saves", "save.json")
	session := testSession()
	session.Party[0].Damage(5)
	session.Money = 1234

	if err := Save(path, session); err != nil {
		t.Fatalf("save failed: %s", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %s", err)
	}

	if loaded.ID != session.ID {
		t.Fatalf("expected id %s, got %s", session.ID, loaded.ID)
	}

	if loaded.Money != 1234 || loaded.PlayerName != "RED" {
		t.Fatalf("player data wasn't kept: %+v", loaded)
	}

	if len(loaded.Party) != 2 {
		t.Fatalf("expected 2 party members, got %d", len(loaded.Party))
	}

	if loaded.Party[0].Hp != session.Party[0].Hp || loaded.Party[0].Stats != session.Party[0].Stats {
		t.Fatalf("party member changed through save: %+v vs %+v", loaded.Party[0], session.Party[0])
	}

	if loaded.Bag["potion"] != 5 {
		t.Fatalf("bag wasn't kept: %v", loaded.Bag)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatal("temp save file was left behind")
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, ErrNoSave) {
		t.Fatalf("expected ErrNoSave, got %v", err)
	}
}

func TestLoadNewerVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	saveBytes, _ := json.Marshal(SaveFile{SaveVersion: SAVE_VERSION + 1, PlayerName: "RED"})
	if err := os.WriteFile(path, saveBytes, 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrNewerSave) {
		t.Fatalf("expected ErrNewerSave, got %v", err)
	}
}

func TestLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	if err := os.WriteFile(path, []byte("{{{"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for a corrupt save")
	}
}

func TestOversizedPartySpillsIntoBox(t *testing.T) {
	rng := testRng()
	records := make([]golurk.PokemonRecord, 0, 8)
	for range 8 {
		records = append(records, golurk.NewPokemon("RATTATA", 3, rng).ToRecord())
	}

	session, err := FromSaveFile(SaveFile{SaveVersion: SAVE_VERSION, Party: records})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if len(session.Party) != golurk.MAX_PARTY || len(session.Box) != 2 {
		t.Fatalf("expected a party of %d and 2 in the box, got %d and %d", golurk.MAX_PARTY, len(session.Party), len(session.Box))
	}

	if session.ID == uuid.Nil {
		t.Fatal("a save without an id should get a new one")
	}
}

func TestBadRecordFailsLoad(t *testing.T) {
	_, err := FromSaveFile(SaveFile{SaveVersion: SAVE_VERSION, Party: []golurk.PokemonRecord{{Level: 5}}})
	if !errors.Is(err, golurk.ErrBadRecord) {
		t.Fatalf("expected ErrBadRecord, got %v", err)
	}
}

func TestTakeItem(t *testing.T) {
	session := testSession()
	session.Bag = map[string]int{"potion": 1}

	if !session.TakeItem("potion") {
		t.Fatal("should be able to take the last potion")
	}

	if session.TakeItem("potion") {
		t.Fatal("took a potion from an empty bag")
	}

	if _, ok := session.Bag["potion"]; ok {
		t.Fatal("empty entries should be removed from the bag")
	}
}

func TestBagEntriesOrder(t *testing.T) {
	session := testSession()
	session.Bag = map[string]int{"pokeball": 2, "potion": 1, "antidote": 0}

	entries := session.BagEntries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	if entries[0].Item.ID != "potion" || entries[1].Item.ID != "pokeball" {
		t.Fatalf("balls should come last, got %s then %s", entries[0].Item.ID, entries[1].Item.ID)
	}
}

func TestAddCaught(t *testing.T) {
	rng := testRng()
	session := testSession()

	for range golurk.MAX_PARTY - len(session.Party) {
		if session.AddCaught(golurk.NewPokemon("RATTATA", 3, rng)) {
			t.Fatal("pokemon went to the box with room in the party")
		}
	}

	if !session.AddCaught(golurk.NewPokemon("CATERPIE", 3, rng)) {
		t.Fatal("pokemon should go to the box once the party is full")
	}

	if len(session.Caught) != 2 {
		t.Fatalf("expected 2 caught species, got %v", session.Caught)
	}
}

func TestAddMoneyClamps(t *testing.T) {
	session := testSession()

	session.AddMoney(-10000)
	if session.Money != 0 {
		t.Fatalf("money went negative: %d", session.Money)
	}

	session.AddMoney(MAX_MONEY + 1)
	if session.Money != MAX_MONEY {
		t.Fatalf("money went over the max: %d", session.Money)
	}
}

func TestHealParty(t *testing.T) {
	session := testSession()
	session.Party[0].Damage(session.Party[0].MaxHp)

	session.HealParty()
	if session.Party[0].Hp != session.Party[0].MaxHp {
		t.Fatal("heal party should revive fainted pokemon")
	}
}
