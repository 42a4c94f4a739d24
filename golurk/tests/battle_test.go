package tests

import (
	"errors"
	"slices"
	"testing"

	"github.com/nathanieltooley/pallet/golurk"
)

func TestWildBattleTurn(t *testing.T) {
	party := []golurk.Pokemon{getPokemon("RATTATA", 5, "TACKLE")}
	wild := getPokemon("PIDGEY", 3)

	battle, err := golurk.NewWildBattleWith(party, wild, highConfig(golurk.AI_EASY))
	if err != nil {
		t.Fatalf("failed to start battle: %v", err)
	}

	if battle.Phase() != golurk.PHASE_INTRO {
		t.Fatalf("battle should start in the intro, got %s", battle.Phase())
	}

	intro, err := drain(battle)
	if err != nil {
		t.Fatalf("failed to get through the intro: %v", err)
	}

	if !slices.Equal(intro, []string{"Wild PIDGEY appeared!", "Go! RATTATA!"}) {
		t.Fatalf("unexpected intro: %v", intro)
	}

	if battle.Phase() != golurk.PHASE_ACTION_SELECT {
		t.Fatalf("expected action select after the intro, got %s", battle.Phase())
	}

	if err := battle.ChooseAction(golurk.ACTION_FIGHT); err != nil {
		t.Fatalf("failed to choose fight: %v", err)
	}

	if err := battle.SelectMove(0); err != nil {
		t.Fatalf("failed to select tackle: %v", err)
	}

	pidgey := battle.Opponent.GetActivePokemon()
	if pidgey.Hp != pidgey.MaxHp-9 {
		t.Fatalf("pidgey should have taken 9 damage. hp: %d/%d", pidgey.Hp, pidgey.MaxHp)
	}

	if party[0].Moves[0].PP != party[0].Moves[0].Info.PP-1 {
		t.Fatalf("tackle's PP wasn't used: %s", party[0].Moves[0])
	}

	if battle.Turn != 1 || battle.Phase() != golurk.PHASE_MESSAGE {
		t.Fatalf("expected turn 1 in the message phase, got turn %d in %s", battle.Turn, battle.Phase())
	}

	messages := battle.PendingMessages()
	if len(messages) != 2 || messages[0].Text != "RATTATA used TACKLE!" || messages[1].Text != "Wild PIDGEY used SAND ATTACK!" {
		t.Fatalf("unexpected turn messages: %+v", messages)
	}

	// the hp bar for the first message should already show the hit
	if messages[0].Opponent.Hp != pidgey.Hp || messages[0].Player.Hp != party[0].MaxHp {
		t.Fatalf("message snapshot is wrong: %+v", messages[0])
	}

	if _, err := drain(battle); err != nil {
		t.Fatalf("failed to drain turn messages: %v", err)
	}

	if battle.Phase() != golurk.PHASE_ACTION_SELECT || battle.Outcome() != golurk.OUTCOME_NONE {
		t.Fatalf("battle should continue, got %s", battle.Phase())
	}
}

func TestDefeat(t *testing.T) {
	party := []golurk.Pokemon{getPokemon("RATTATA", 3, "TACKLE")}
	party[0].Hp = 1
	wild := getPokemon("RATICATE", 20, "TACKLE")

	battle, err := golurk.NewWildBattleWith(party, wild, highConfig(golurk.AI_HARD))
	if err != nil {
		t.Fatalf("failed to start battle: %v", err)
	}

	if _, err := drain(battle); err != nil {
		t.Fatal(err)
	}

	if err := battle.ChooseAction(golurk.ACTION_FIGHT); err != nil {
		t.Fatal(err)
	}

	if err := battle.SelectMove(0); err != nil {
		t.Fatal(err)
	}

	// the faster raticate goes first so rattata never gets to attack
	if party[0].Moves[0].PP != party[0].Moves[0].Info.PP {
		t.Fatalf("fainted pokemon still used its move")
	}

	messages, err := drain(battle)
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{"Wild RATICATE used TACKLE!", "RATTATA fainted!", "RED is out of usable Pokemon!", "RED blacked out!"}
	if !slices.Equal(messages, expected) {
		t.Fatalf("unexpected messages: %v", messages)
	}

	if battle.Phase() != golurk.PHASE_DEFEAT || battle.Outcome() != golurk.OUTCOME_DEFEAT || !battle.Done() {
		t.Fatalf("battle should be lost, got %s", battle.Phase())
	}

	if err := battle.ChooseAction(golurk.ACTION_FIGHT); !errors.Is(err, golurk.ErrNotAllowed) {
		t.Fatalf("actions should be rejected after a defeat, got %v", err)
	}

	if err := battle.SelectMove(0); !errors.Is(err, golurk.ErrNotAllowed) {
		t.Fatalf("moves should be rejected after a defeat, got %v", err)
	}
}

func TestVictoryExp(t *testing.T) {
	party := []golurk.Pokemon{getPokemon("RATICATE", 50, "TACKLE")}
	startExp := party[0].Exp
	wild := getPokemon("RATTATA", 3)

	battle, err := golurk.NewWildBattleWith(party, wild, highConfig(golurk.AI_EASY))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := drain(battle); err != nil {
		t.Fatal(err)
	}

	if err := battle.ChooseAction(golurk.ACTION_FIGHT); err != nil {
		t.Fatal(err)
	}

	if err := battle.SelectMove(0); err != nil {
		t.Fatal(err)
	}

	messages, err := drain(battle)
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{"RATICATE used TACKLE!", "Wild RATTATA fainted!", "RATICATE gained 24 EXP. Points!"}
	if !slices.Equal(messages, expected) {
		t.Fatalf("unexpected messages: %v", messages)
	}

	if battle.Outcome() != golurk.OUTCOME_VICTORY || battle.Phase() != golurk.PHASE_VICTORY {
		t.Fatalf("battle should be won, got %s", battle.Phase())
	}

	if battle.ExpGained() != 24 || party[0].Exp != startExp+24 {
		t.Fatalf("expected 24 exp, got %d (party exp %d)", battle.ExpGained(), party[0].Exp-startExp)
	}
}

func TestTrainerSendsOutNextPokemon(t *testing.T) {
	party := []golurk.Pokemon{getPokemon("RATICATE", 50, "TACKLE")}
	team := []golurk.Pokemon{getPokemon("RATTATA", 2), getPokemon("PIDGEY", 2)}

	battle, err := golurk.NewTrainerBattleWith(party, "Youngster Joey", team, highConfig(golurk.AI_EASY))
	if err != nil {
		t.Fatal(err)
	}

	intro, err := drain(battle)
	if err != nil {
		t.Fatal(err)
	}

	if !slices.Equal(intro, []string{"Youngster Joey wants to battle!", "Youngster Joey sent out RATTATA!", "Go! RATICATE!"}) {
		t.Fatalf("unexpected intro: %v", intro)
	}

	for i := range 2 {
		if err := battle.ChooseAction(golurk.ACTION_FIGHT); err != nil {
			t.Fatalf("round %d: %v", i, err)
		}

		if err := battle.SelectMove(0); err != nil {
			t.Fatalf("round %d: %v", i, err)
		}

		messages, err := drain(battle)
		if err != nil {
			t.Fatal(err)
		}

		if i == 0 && !slices.Contains(messages, "Youngster Joey sent out PIDGEY!") {
			t.Fatalf("trainer didn't send out their next pokemon: %v", messages)
		}

		if i == 1 && messages[len(messages)-1] != "Youngster Joey was defeated!" {
			t.Fatalf("missing defeat message: %v", messages)
		}
	}

	if battle.Outcome() != golurk.OUTCOME_VICTORY {
		t.Fatalf("battle should be won, got %s", battle.Phase())
	}

	// trainer pokemon give 1.5x: floor(1.5 * 57 * 2 / 7) + floor(1.5 * 55 * 2 / 7)
	if battle.ExpGained() != 24+23 {
		t.Fatalf("expected 47 exp, got %d", battle.ExpGained())
	}
}

func TestTrainerRejectsRunAndCatch(t *testing.T) {
	party := []golurk.Pokemon{getPokemon("PIKACHU", 10)}
	team := []golurk.Pokemon{getPokemon("RATTATA", 4)}
	source := &countingSource{inner: highSource{}}

	battle, err := golurk.NewTrainerBattleWith(party, "Youngster Joey", team, golurk.BattleConfig{Difficulty: golurk.AI_EASY, Source: source})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := drain(battle); err != nil {
		t.Fatal(err)
	}
	source.draws = 0

	if battle.AttemptRun() {
		t.Fatalf("ran from a trainer battle")
	}

	if battle.EscapeAttempts != 0 {
		t.Fatalf("trainer battles shouldn't count escape attempts, got %d", battle.EscapeAttempts)
	}

	if err := battle.ChooseAction(golurk.ACTION_RUN); !errors.Is(err, golurk.ErrNotAllowed) {
		t.Fatalf("run should be rejected, got %v", err)
	}

	if battle.Phase() != golurk.PHASE_ACTION_SELECT || battle.Turn != 0 {
		t.Fatalf("rejected run changed the battle: %s turn %d", battle.Phase(), battle.Turn)
	}

	if err := battle.ChooseAction(golurk.ACTION_BAG); err != nil {
		t.Fatal(err)
	}

	if err := battle.ThrowBall("pokeball"); !errors.Is(err, golurk.ErrNotAllowed) {
		t.Fatalf("catching a trainer's pokemon should be rejected, got %v", err)
	}

	if battle.Phase() != golurk.PHASE_ITEM_SELECT || len(battle.PendingMessages()) != 0 {
		t.Fatalf("rejected ball changed the battle: %s", battle.Phase())
	}

	if source.draws != 0 {
		t.Fatalf("rejected run and ball shouldn't roll anything, drew %d times", source.draws)
	}

	if err := battle.Back(); err != nil || battle.Phase() != golurk.PHASE_ACTION_SELECT {
		t.Fatalf("failed to go back to the action menu: %v", err)
	}
}

func TestWildRun(t *testing.T) {
	fast := []golurk.Pokemon{getPokemon("RATICATE", 50, "TACKLE")}
	battle, err := golurk.NewWildBattleWith(fast, getPokemon("RATTATA", 3), highConfig(golurk.AI_EASY))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := drain(battle); err != nil {
		t.Fatal(err)
	}

	if err := battle.ChooseAction(golurk.ACTION_RUN); err != nil {
		t.Fatal(err)
	}

	messages, err := drain(battle)
	if err != nil {
		t.Fatal(err)
	}

	if !slices.Equal(messages, []string{"Got away safely!"}) {
		t.Fatalf("the wild pokemon shouldn't act after a successful escape: %v", messages)
	}

	if battle.Phase() != golurk.PHASE_FLED || battle.Outcome() != golurk.OUTCOME_FLED {
		t.Fatalf("expected to flee, got %s", battle.Phase())
	}

	slow := []golurk.Pokemon{getPokemon("RATTATA", 3, "TACKLE")}
	battle, err = golurk.NewWildBattleWith(slow, getPokemon("RATICATE", 50, "TAIL WHIP"), highConfig(golurk.AI_EASY))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := drain(battle); err != nil {
		t.Fatal(err)
	}

	if err := battle.ChooseAction(golurk.ACTION_RUN); err != nil {
		t.Fatal(err)
	}

	messages, err = drain(battle)
	if err != nil {
		t.Fatal(err)
	}

	if !slices.Equal(messages, []string{"Can't escape!", "Wild RATICATE used TAIL WHIP!"}) {
		t.Fatalf("unexpected messages after a failed escape: %v", messages)
	}

	if battle.EscapeAttempts != 1 || battle.Phase() != golurk.PHASE_ACTION_SELECT {
		t.Fatalf("failed escape should count and return to the menu: %d %s", battle.EscapeAttempts, battle.Phase())
	}
}

func TestPPDiscipline(t *testing.T) {
	party := []golurk.Pokemon{getPokemon("RATTATA", 5, "TACKLE", "TAIL WHIP")}
	party[0].Moves[0].PP = 0

	battle, err := golurk.NewWildBattleWith(party, getPokemon("PIDGEY", 3, "SAND ATTACK"), highConfig(golurk.AI_HARD))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := drain(battle); err != nil {
		t.Fatal(err)
	}

	if err := battle.ChooseAction(golurk.ACTION_FIGHT); err != nil {
		t.Fatal(err)
	}

	if err := battle.SelectMove(0); !errors.Is(err, golurk.ErrNotAllowed) {
		t.Fatalf("move with no PP should be rejected, got %v", err)
	}

	if err := battle.SelectMove(golurk.STRUGGLE_INDEX); !errors.Is(err, golurk.ErrNotAllowed) {
		t.Fatalf("struggle should be rejected while tail whip has PP, got %v", err)
	}

	if err := battle.SelectMove(4); !errors.Is(err, golurk.ErrNotAllowed) {
		t.Fatalf("out of range move should be rejected, got %v", err)
	}

	if battle.Phase() != golurk.PHASE_MOVE_SELECT || battle.Turn != 0 {
		t.Fatalf("rejected moves changed the battle: %s turn %d", battle.Phase(), battle.Turn)
	}

	if err := battle.SelectMove(1); err != nil {
		t.Fatal(err)
	}

	if party[0].Moves[1].PP != party[0].Moves[1].Info.PP-1 {
		t.Fatalf("tail whip PP should go down by one, got %s", party[0].Moves[1])
	}

	if _, err := drain(battle); err != nil {
		t.Fatal(err)
	}

	party[0].Moves[1].PP = 0
	if err := battle.ChooseAction(golurk.ACTION_FIGHT); err != nil {
		t.Fatal(err)
	}

	if err := battle.SelectMove(golurk.STRUGGLE_INDEX); err != nil {
		t.Fatalf("struggle should be allowed with no PP left: %v", err)
	}

	if message, _ := battle.CurrentMessage(); message.Text != "RATTATA used STRUGGLE!" {
		t.Fatalf("expected struggle, got %s", message.Text)
	}
}

func TestForcedSwitch(t *testing.T) {
	party := []golurk.Pokemon{getPokemon("RATTATA", 3, "TACKLE"), getPokemon("PIKACHU", 20)}
	party[0].Hp = 1
	team := []golurk.Pokemon{getPokemon("RATICATE", 20, "TACKLE")}

	battle, err := golurk.NewTrainerBattleWith(party, "Youngster Joey", team, highConfig(golurk.AI_HARD))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := drain(battle); err != nil {
		t.Fatal(err)
	}

	if err := battle.ChooseAction(golurk.ACTION_FIGHT); err != nil {
		t.Fatal(err)
	}

	if err := battle.SelectMove(0); err != nil {
		t.Fatal(err)
	}

	if _, err := drain(battle); err != nil {
		t.Fatal(err)
	}

	if battle.Phase() != golurk.PHASE_POKEMON_SELECT || !battle.ForcedSwitch() {
		t.Fatalf("player should have to pick a new pokemon, got %s", battle.Phase())
	}

	if err := battle.Back(); !errors.Is(err, golurk.ErrNotAllowed) {
		t.Fatalf("backing out of a forced switch should be rejected, got %v", err)
	}

	if err := battle.SwitchPokemon(0); !errors.Is(err, golurk.ErrNotAllowed) {
		t.Fatalf("switching to the fainted pokemon should be rejected, got %v", err)
	}

	if err := battle.SwitchPokemon(1); err != nil {
		t.Fatal(err)
	}

	if battle.LastTurn().Kind != golurk.RESULT_FORCESWITCH || battle.Turn != 1 {
		t.Fatalf("replacing a fainted pokemon shouldn't be a turn: kind %d turn %d", battle.LastTurn().Kind, battle.Turn)
	}

	messages, err := drain(battle)
	if err != nil {
		t.Fatal(err)
	}

	if !slices.Equal(messages, []string{"Go! PIKACHU!"}) {
		t.Fatalf("unexpected switch messages: %v", messages)
	}

	pikachu := battle.Player.GetActivePokemon()
	if pikachu.Hp != pikachu.MaxHp {
		t.Fatalf("opponent attacked during a forced switch")
	}

	if battle.Phase() != golurk.PHASE_ACTION_SELECT || battle.ForcedSwitch() {
		t.Fatalf("battle should continue after the switch, got %s", battle.Phase())
	}
}

func TestCatch(t *testing.T) {
	party := []golurk.Pokemon{getPokemon("RATICATE", 50, "TACKLE")}

	battle, err := golurk.NewWildBattleWith(party, getPokemon("RATTATA", 3), highConfig(golurk.AI_EASY))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := drain(battle); err != nil {
		t.Fatal(err)
	}

	if err := battle.ChooseAction(golurk.ACTION_BAG); err != nil {
		t.Fatal(err)
	}

	if err := battle.ThrowBall("potion"); !errors.Is(err, golurk.ErrNotAllowed) {
		t.Fatalf("potions aren't balls, got %v", err)
	}

	if err := battle.ThrowBall("safariball"); !errors.Is(err, golurk.ErrUnknownItem) {
		t.Fatalf("unknown balls should be rejected, got %v", err)
	}

	if err := battle.ThrowBall("masterball"); err != nil {
		t.Fatal(err)
	}

	messages, err := drain(battle)
	if err != nil {
		t.Fatal(err)
	}

	if !slices.Equal(messages, []string{"RED threw a Master Ball!", "RATTATA was caught!"}) {
		t.Fatalf("unexpected catch messages: %v", messages)
	}

	if battle.Phase() != golurk.PHASE_CAUGHT || battle.CaughtPokemon() == nil || battle.CaughtPokemon().Species() != "RATTATA" {
		t.Fatalf("rattata should be caught, got %s", battle.Phase())
	}
}

func TestUseItem(t *testing.T) {
	party := []golurk.Pokemon{getPokemon("RATTATA", 5, "TACKLE")}

	battle, err := golurk.NewWildBattleWith(party, getPokemon("PIDGEY", 3, "SAND ATTACK"), highConfig(golurk.AI_EASY))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := drain(battle); err != nil {
		t.Fatal(err)
	}

	if err := battle.ChooseAction(golurk.ACTION_BAG); err != nil {
		t.Fatal(err)
	}

	if err := battle.UseItem("potion", 0); !errors.Is(err, golurk.ErrNotAllowed) {
		t.Fatalf("potion at full hp should be rejected, got %v", err)
	}

	if err := battle.UseItem("antidote", 0); !errors.Is(err, golurk.ErrNotAllowed) {
		t.Fatalf("antidote without poison should be rejected, got %v", err)
	}

	battle.Player.GetActivePokemon().Damage(10)
	if err := battle.UseItem("potion", 0); err != nil {
		t.Fatal(err)
	}

	messages, err := drain(battle)
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{"RED used Potion!", "RATTATA recovered 10 HP!", "Wild PIDGEY used SAND ATTACK!"}
	if !slices.Equal(messages, expected) {
		t.Fatalf("unexpected messages: %v", messages)
	}

	if party[0].Hp != party[0].MaxHp {
		t.Fatalf("rattata should be healed, hp %d/%d", party[0].Hp, party[0].MaxHp)
	}
}

func TestSpeedTie(t *testing.T) {
	party := []golurk.Pokemon{getPokemon("RATTATA", 5, "TACKLE")}

	battle, err := golurk.NewWildBattleWith(party, getPokemon("RATTATA", 5, "TACKLE"), highConfig(golurk.AI_EASY))
	if err != nil {
		t.Fatal(err)
	}

	result := golurk.ProcessTurn(battle, []golurk.Action{
		golurk.NewAttackAction(golurk.PLAYER, 0),
		golurk.NewAttackAction(golurk.OPPONENT, 0),
	})

	// a coin flip of 1 lets the second attacker go first
	first, ok := result.Events[0].(golurk.AttackEvent)
	if !ok || first.AttackerID != golurk.OPPONENT {
		t.Fatalf("expected the opponent to win the tie, got %+v", result.Events[0])
	}
}

func TestInputOutsideItsPhase(t *testing.T) {
	battle, err := golurk.NewWildBattleWith([]golurk.Pokemon{getPokemon("PIKACHU", 5)}, getPokemon("PIDGEY", 3), highConfig(golurk.AI_EASY))
	if err != nil {
		t.Fatal(err)
	}

	if err := battle.ChooseAction(golurk.ACTION_FIGHT); !errors.Is(err, golurk.ErrNotAllowed) {
		t.Fatalf("menu input during the intro should be rejected, got %v", err)
	}

	if _, err := drain(battle); err != nil {
		t.Fatal(err)
	}

	if err := battle.Advance(); !errors.Is(err, golurk.ErrNotAllowed) {
		t.Fatalf("advancing with no messages should be rejected, got %v", err)
	}

	if err := battle.SelectMove(0); !errors.Is(err, golurk.ErrNotAllowed) {
		t.Fatalf("selecting a move from the action menu should be rejected, got %v", err)
	}
}

func TestEmptyParty(t *testing.T) {
	battle, err := golurk.NewWildBattle(nil, golurk.WildEncounter{}, highConfig(golurk.AI_NORMAL))
	if err != nil {
		t.Fatal(err)
	}

	if battle.Player.GetActivePokemon().Species() != golurk.STARTER_SPECIES {
		t.Fatalf("empty party should get a starter, got %s", battle.Player.GetActivePokemon().Species())
	}

	if battle.Opponent.GetActivePokemon().Species() != golurk.DEFAULT_WILD_SPECIES {
		t.Fatalf("empty encounter should fall back to the default, got %s", battle.Opponent.GetActivePokemon().Species())
	}

	cfg := highConfig(golurk.AI_NORMAL)
	cfg.StrictParty = true
	if _, err := golurk.NewWildBattle(nil, golurk.WildEncounter{}, cfg); !errors.Is(err, golurk.ErrEmptyParty) {
		t.Fatalf("strict party should reject an empty party, got %v", err)
	}
}

func TestTradedExpBonus(t *testing.T) {
	traded := golurk.NewPokeBuilder(golurk.GlobalData.GetPokemonByName("RATICATE"), nil).
		SetLevel(50).
		SetMoves([]golurk.Move{*golurk.GlobalData.GetMove("TACKLE")}).
		SetTraded(true).
		Build()
	party := []golurk.Pokemon{traded}

	battle, err := golurk.NewWildBattleWith(party, getPokemon("RATTATA", 3), highConfig(golurk.AI_EASY))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := drain(battle); err != nil {
		t.Fatal(err)
	}

	if err := battle.ChooseAction(golurk.ACTION_FIGHT); err != nil {
		t.Fatal(err)
	}

	if err := battle.SelectMove(0); err != nil {
		t.Fatal(err)
	}

	messages, err := drain(battle)
	if err != nil {
		t.Fatal(err)
	}

	// 24 for an untraded pokemon
	if battle.ExpGained() != 36 || !slices.Contains(messages, "RATICATE gained 36 EXP. Points!") {
		t.Fatalf("traded pokemon should get 1.5x exp, got %d: %v", battle.ExpGained(), messages)
	}
}

func TestMaxLevelGetsNoExp(t *testing.T) {
	party := []golurk.Pokemon{getPokemon("RATICATE", golurk.MAX_LEVEL, "TACKLE")}
	startExp := party[0].Exp

	battle, err := golurk.NewWildBattleWith(party, getPokemon("RATTATA", 3), highConfig(golurk.AI_EASY))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := drain(battle); err != nil {
		t.Fatal(err)
	}

	if err := battle.ChooseAction(golurk.ACTION_FIGHT); err != nil {
		t.Fatal(err)
	}

	if err := battle.SelectMove(0); err != nil {
		t.Fatal(err)
	}

	messages, err := drain(battle)
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{"RATICATE used TACKLE!", "Wild RATTATA fainted!"}
	if !slices.Equal(messages, expected) {
		t.Fatalf("unexpected messages: %v", messages)
	}

	if battle.ExpGained() != 0 || party[0].Exp != startExp {
		t.Fatalf("a level %d pokemon shouldn't gain exp, got %d", golurk.MAX_LEVEL, battle.ExpGained())
	}

	if battle.Outcome() != golurk.OUTCOME_VICTORY {
		t.Fatalf("battle should still be won, got %s", battle.Phase())
	}
}
