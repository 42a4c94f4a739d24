package golurk

import (
	"math"
	"math/rand/v2"
	"slices"

	"github.com/go-logr/logr"
)

var damageLogger = func() logr.Logger {
	return internalLogger.WithName("damage")
}

// Types that use the Special stat for both attack and defense
var specialTypes = []string{
	TYPENAME_FIRE,
	TYPENAME_WATER,
	TYPENAME_ELECTRIC,
	TYPENAME_GRASS,
	TYPENAME_ICE,
	TYPENAME_PSYCHIC,
	TYPENAME_DRAGON,
}

const (
	CRIT_MULTIPLIER = 2.0
	STAB_MULTIPLIER = 1.5
	// random factor is drawn from [MIN_DAMAGE_ROLL, MAX_DAMAGE_ROLL] then divided by MAX_DAMAGE_ROLL
	MIN_DAMAGE_ROLL = 217
	MAX_DAMAGE_ROLL = 255
)

func IsSpecialType(typeName string) bool {
	return slices.Contains(specialTypes, typeName)
}

type DamageResult struct {
	Amount int
	// Pure type multiplier, without STAB, crits or the random roll
	Effectiveness float64
	Crit          bool
}

// Damage calculates the damage an attacking pokemon should do to a defending pokemon.
// RNG is drawn twice for damaging moves: once for the crit roll then once for the random factor.
// Status moves draw nothing.
func Damage(attacker Pokemon, defender Pokemon, move Move, rng *rand.Rand) DamageResult {
	if move.Power <= 0 {
		return DamageResult{Amount: 0, Effectiveness: 1}
	}

	var a, d int
	if IsSpecialType(move.Type) {
		a = attacker.Stats.Special
		d = defender.Stats.Special
	} else {
		a = attacker.Stats.Attack
		d = defender.Stats.Defense
	}

	level := float64(attacker.Level)
	damage := ((2*level/5+2)*float64(move.Power)*float64(a)/float64(max(d, 1)))/50 + 2

	// crits use the species base speed, not the calculated stat
	crit := rng.Float64() < float64(attacker.Base.Speed)/512
	if crit {
		damage *= CRIT_MULTIPLIER
	}

	if attacker.HasType(move.Type) {
		damage *= STAB_MULTIPLIER
	}

	effectiveness := CombinedEffectiveness(move.Type, defender.Types())
	damage *= effectiveness

	roll := MIN_DAMAGE_ROLL + rng.IntN(MAX_DAMAGE_ROLL-MIN_DAMAGE_ROLL+1)
	damage *= float64(roll) / MAX_DAMAGE_ROLL

	amount := 0
	if effectiveness > 0 {
		amount = max(1, int(math.Floor(damage)))
	}

	damageLogger().V(1).Info("calculated damage",
		"attacker", attacker.Name(),
		"defender", defender.Name(),
		"move", move.Name,
		"attack", a,
		"defense", d,
		"crit", crit,
		"effectiveness", effectiveness,
		"roll", roll,
		"amount", amount)

	return DamageResult{Amount: amount, Effectiveness: effectiveness, Crit: crit}
}

// AccuracyCheck reports whether move hits. Moves with 100 or more accuracy never roll.
// Evasion and accuracy stages aren't modeled.
func AccuracyCheck(move Move, attacker Pokemon, defender Pokemon, rng *rand.Rand) bool {
	if move.Accuracy >= 100 {
		return true
	}

	roll := rng.IntN(100) + 1
	damageLogger().V(2).Info("accuracy roll", "move", move.Name, "roll", roll, "accuracy", move.Accuracy, "attacker", attacker.Name(), "defender", defender.Name())

	return roll <= move.Accuracy
}
