package golurk

import (
	"testing"
	"testing/fstest"
)

func TestEmbeddedData(t *testing.T) {
	db, errs := DefaultLoader(dataFiles)
	if len(errs) > 0 {
		t.Fatalf("embedded data failed to load: %v", errs)
	}

	if len(db.SpeciesNames()) == 0 || len(db.Trainers()) == 0 || len(db.EncounterZones()) == 0 {
		t.Fatalf("embedded data is missing tables")
	}

	for species, moves := range db.moves.DefaultPokemonMoves {
		if db.GetPokemonByName(species) == nil {
			t.Fatalf("default moves listed for unknown species %s", species)
		}

		if len(moves) == 0 {
			t.Fatalf("%s has no default moves", species)
		}
	}

	for _, zone := range db.EncounterZones() {
		for _, slot := range zone.Slots {
			if db.GetPokemonByName(slot.Species) == nil {
				t.Fatalf("zone %s has unknown species %s", zone.ID, slot.Species)
			}
		}
	}
}

func TestMoveLookup(t *testing.T) {
	move := GlobalData.GetMove("thunder shock")
	if move == nil || move.Type != TYPENAME_ELECTRIC {
		t.Fatalf("move lookup should ignore case, got %+v", move)
	}

	if GlobalData.GetMove("hyper beam") != nil {
		t.Fatalf("found a move that doesn't exist")
	}
}

func TestBallsListedLast(t *testing.T) {
	items := GlobalData.Items()
	seenBall := false

	for _, item := range items {
		if item.IsBall() {
			seenBall = true
		} else if seenBall {
			t.Fatalf("%s was listed after a ball", item.ID)
		}
	}

	if len(GlobalData.Balls()) != 4 {
		t.Fatalf("expected 4 balls, got %d", len(GlobalData.Balls()))
	}
}

func TestLoadPokemonErrors(t *testing.T) {
	if _, err := LoadPokemon([]byte("Name,Type1\nRATTATA,normal\n")); err == nil {
		t.Fatalf("short rows should fail")
	}

	if _, err := LoadPokemon([]byte("h,h,h,h,h,h,h,h,h\nRATTATA,shadow,,30,56,35,72,25,57\n")); err == nil {
		t.Fatalf("unknown types should fail")
	}

	if _, err := LoadPokemon([]byte("h,h,h,h,h,h,h,h,h\nRATTATA,normal,,30,lots,35,72,25,57\n")); err == nil {
		t.Fatalf("bad stats should fail")
	}

	pokemon, err := LoadPokemon([]byte("h,h,h,h,h,h,h,h,h\nrattata,Normal,normal,30,56,35,72,25,57\n"))
	if err != nil || pokemon[0].Name != "RATTATA" || pokemon[0].Type2 != "" {
		t.Fatalf("duplicate types should collapse: %+v %v", pokemon, err)
	}
}

func TestLoadMovesErrors(t *testing.T) {
	moves := []byte(`[{"name": "TACKLE", "power": 40, "type": "normal", "pp": 35}]`)

	if _, err := LoadMoves(moves, []byte(`{"RATTATA": ["BITE"]}`)); err == nil {
		t.Fatalf("default moves that don't exist should fail")
	}

	registry, err := LoadMoves(moves, []byte(`{"rattata": ["tackle"]}`))
	if err != nil {
		t.Fatalf("valid moves failed to load: %v", err)
	}

	if registry.Moves["TACKLE"].Accuracy != 100 {
		t.Fatalf("missing accuracy should default to 100, got %d", registry.Moves["TACKLE"].Accuracy)
	}

	if registry.DefaultPokemonMoves["RATTATA"][0] != "TACKLE" {
		t.Fatalf("default move names should be uppercased: %v", registry.DefaultPokemonMoves)
	}

	if _, err := LoadMoves([]byte(`[{"name": "TACKLE", "power": 40, "type": "normal", "pp": 0}]`), []byte(`{}`)); err == nil {
		t.Fatalf("moves without PP should fail")
	}
}

func TestLoaderReportsMissingFiles(t *testing.T) {
	files := fstest.MapFS{
		"data/species.csv": &fstest.MapFile{Data: []byte("h,h,h,h,h,h,h,h,h\nRATTATA,normal,,30,56,35,72,25,57\n")},
	}

	db, errs := DefaultLoader(files)
	if len(errs) != 4 {
		t.Fatalf("expected 4 errors for the missing files, got %d: %v", len(errs), errs)
	}

	if db.GetPokemonByName("RATTATA") == nil {
		t.Fatalf("species should still load when other files are missing")
	}
}
