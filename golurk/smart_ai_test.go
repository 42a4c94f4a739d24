package golurk

import (
	"testing"
)

func TestHardPicksBestMove(t *testing.T) {
	aiPokemon := buildPokemon("CHARMANDER", 10, "SCRATCH", "EMBER", "GROWL")
	playerPokemon := buildPokemon("BULBASAUR", 10)

	choice := ChooseMove(aiPokemon, playerPokemon, AI_HARD, seededRng())
	if choice.Index != 1 {
		t.Fatalf("Attack move should be ember, got: %+v", choice.Move)
	}
}

func TestHardKeepsFirstOnTie(t *testing.T) {
	aiPokemon := buildPokemon("RATTATA", 10, "TACKLE", "SCRATCH")
	playerPokemon := buildPokemon("PIDGEY", 10)

	choice := ChooseMove(aiPokemon, playerPokemon, AI_HARD, seededRng())
	if choice.Index != 0 {
		t.Fatalf("tied moves should keep the first one, got: %+v", choice.Move)
	}
}

func TestStruggleWithoutPP(t *testing.T) {
	aiPokemon := buildPokemon("RATTATA", 10, "TACKLE", "TAIL WHIP")
	playerPokemon := buildPokemon("PIDGEY", 10)

	for i := range aiPokemon.Moves {
		aiPokemon.Moves[i].PP = 0
	}

	for _, difficulty := range []Difficulty{AI_EASY, AI_NORMAL, AI_HARD} {
		choice := ChooseMove(aiPokemon, playerPokemon, difficulty, seededRng())
		if choice.Index != STRUGGLE_INDEX || choice.Move.Name != Struggle.Name {
			t.Fatalf("%s ai should struggle with no PP, got: %+v", difficulty, choice)
		}
	}
}

func TestOnlyUsableMovesPicked(t *testing.T) {
	aiPokemon := buildPokemon("CHARMANDER", 10, "SCRATCH", "EMBER", "GROWL")
	playerPokemon := buildPokemon("BULBASAUR", 10)
	aiPokemon.Moves[1].PP = 0

	rng := seededRng()
	for range iterCount {
		for _, difficulty := range []Difficulty{AI_EASY, AI_NORMAL, AI_HARD} {
			if choice := ChooseMove(aiPokemon, playerPokemon, difficulty, rng); choice.Index == 1 {
				t.Fatalf("%s ai picked a move with no PP", difficulty)
			}
		}
	}
}

func TestNormalMixesChoices(t *testing.T) {
	aiPokemon := buildPokemon("CHARMANDER", 10, "SCRATCH", "EMBER", "GROWL")
	playerPokemon := buildPokemon("BULBASAUR", 10)

	picked := make(map[int]int)
	rng := seededRng()
	for range iterCount {
		picked[ChooseMove(aiPokemon, playerPokemon, AI_NORMAL, rng).Index]++
	}

	// ember should win more than its random share but the others still come up
	if picked[1] <= iterCount/3 || picked[0] == 0 || picked[2] == 0 {
		t.Fatalf("normal ai picks were off: %v", picked)
	}
}

func TestScoreMove(t *testing.T) {
	attacker := buildPokemon("SQUIRTLE", 10)
	defender := buildPokemon("GEODUDE", 10)

	waterGun := mustNotBeNil(GlobalData.GetMove("WATER GUN"))
	if score := ScoreMove(waterGun, attacker, defender); score != 240 {
		t.Fatalf("water gun vs geodude should score 240, got %v", score)
	}

	growl := mustNotBeNil(GlobalData.GetMove("GROWL"))
	if score := ScoreMove(growl, attacker, defender); score != STATUS_MOVE_SCORE {
		t.Fatalf("status moves should score %v, got %v", STATUS_MOVE_SCORE, score)
	}

	rockThrow := mustNotBeNil(GlobalData.GetMove("ROCK THROW"))
	if score := ScoreMove(rockThrow, defender, attacker); score != 50*1.5*0.65 {
		t.Fatalf("rock throw score should include accuracy, got %v", score)
	}
}

func TestShouldSwitch(t *testing.T) {
	opponent := buildPokemon("GEODUDE", 12)
	team := []Pokemon{
		buildPokemon("PIKACHU", 12),
		buildPokemon("CHARMANDER", 12),
		buildPokemon("WARTORTLE", 12),
	}

	index, ok := ShouldSwitch(0, team, opponent, AI_HARD)
	if !ok || index != 2 {
		t.Fatalf("pikachu should switch to wartortle against geodude, got %d %v", index, ok)
	}

	if _, ok := ShouldSwitch(0, team, opponent, AI_EASY); ok {
		t.Fatalf("easy ai should never switch")
	}

	team[2].Damage(team[2].MaxHp)
	if index, ok := ShouldSwitch(0, team, opponent, AI_HARD); ok {
		t.Fatalf("ai switched to fainted or worse pokemon at %d", index)
	}
}

func TestParseDifficulty(t *testing.T) {
	if ParseDifficulty(" Hard ") != AI_HARD || ParseDifficulty("easy") != AI_EASY || ParseDifficulty("???") != AI_NORMAL {
		t.Fatalf("difficulty parsed wrong")
	}
}
