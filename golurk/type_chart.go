package golurk

import (
	"slices"
	"strings"
)

// allTypes is the canonical type order. Weakness/resistance lists are returned in this order.
var allTypes = []string{
	TYPENAME_NORMAL,
	TYPENAME_FIRE,
	TYPENAME_WATER,
	TYPENAME_ELECTRIC,
	TYPENAME_GRASS,
	TYPENAME_ICE,
	TYPENAME_FIGHTING,
	TYPENAME_POISON,
	TYPENAME_GROUND,
	TYPENAME_FLYING,
	TYPENAME_PSYCHIC,
	TYPENAME_BUG,
	TYPENAME_ROCK,
	TYPENAME_GHOST,
	TYPENAME_DRAGON,
}

// typeChart maps attacking type -> defending type -> multiplier.
// Any pair not listed is neutral (1.0)
var typeChart = map[string]map[string]float64{
	TYPENAME_NORMAL: {
		TYPENAME_ROCK:  0.5,
		TYPENAME_GHOST: 0,
	},
	TYPENAME_FIRE: {
		TYPENAME_FIRE:   0.5,
		TYPENAME_WATER:  0.5,
		TYPENAME_GRASS:  2,
		TYPENAME_ICE:    2,
		TYPENAME_BUG:    2,
		TYPENAME_ROCK:   0.5,
		TYPENAME_DRAGON: 0.5,
	},
	TYPENAME_WATER: {
		TYPENAME_FIRE:   2,
		TYPENAME_WATER:  0.5,
		TYPENAME_GRASS:  0.5,
		TYPENAME_GROUND: 2,
		TYPENAME_ROCK:   2,
		TYPENAME_DRAGON: 0.5,
	},
	TYPENAME_ELECTRIC: {
		TYPENAME_WATER:    2,
		TYPENAME_ELECTRIC: 0.5,
		TYPENAME_GRASS:    0.5,
		TYPENAME_GROUND:   0,
		TYPENAME_FLYING:   2,
		TYPENAME_DRAGON:   0.5,
	},
	TYPENAME_GRASS: {
		TYPENAME_FIRE:   0.5,
		TYPENAME_WATER:  2,
		TYPENAME_GRASS:  0.5,
		TYPENAME_POISON: 0.5,
		TYPENAME_GROUND: 2,
		TYPENAME_FLYING: 0.5,
		TYPENAME_BUG:    0.5,
		TYPENAME_ROCK:   2,
		TYPENAME_DRAGON: 0.5,
	},
	TYPENAME_ICE: {
		TYPENAME_FIRE:   0.5,
		TYPENAME_WATER:  0.5,
		TYPENAME_GRASS:  2,
		TYPENAME_ICE:    0.5,
		TYPENAME_GROUND: 2,
		TYPENAME_FLYING: 2,
		TYPENAME_DRAGON: 2,
	},
	TYPENAME_FIGHTING: {
		TYPENAME_NORMAL:  2,
		TYPENAME_ICE:     2,
		TYPENAME_POISON:  0.5,
		TYPENAME_FLYING:  0.5,
		TYPENAME_PSYCHIC: 0.5,
		TYPENAME_BUG:     0.5,
		TYPENAME_ROCK:    2,
		TYPENAME_GHOST:   0,
	},
	TYPENAME_POISON: {
		TYPENAME_GRASS:  2,
		TYPENAME_POISON: 0.5,
		TYPENAME_GROUND: 0.5,
		TYPENAME_BUG:    2,
		TYPENAME_ROCK:   0.5,
		TYPENAME_GHOST:  0.5,
	},
	TYPENAME_GROUND: {
		TYPENAME_FIRE:     2,
		TYPENAME_ELECTRIC: 2,
		TYPENAME_GRASS:    0.5,
		TYPENAME_POISON:   2,
		TYPENAME_FLYING:   0,
		TYPENAME_BUG:      0.5,
		TYPENAME_ROCK:     2,
	},
	TYPENAME_FLYING: {
		TYPENAME_ELECTRIC: 0.5,
		TYPENAME_GRASS:    2,
		TYPENAME_FIGHTING: 2,
		TYPENAME_BUG:      2,
		TYPENAME_ROCK:     0.5,
	},
	TYPENAME_PSYCHIC: {
		TYPENAME_FIGHTING: 2,
		TYPENAME_POISON:   2,
		TYPENAME_PSYCHIC:  0.5,
	},
	TYPENAME_BUG: {
		TYPENAME_FIRE:     0.5,
		TYPENAME_GRASS:    2,
		TYPENAME_FIGHTING: 0.5,
		TYPENAME_POISON:   2,
		TYPENAME_FLYING:   0.5,
		TYPENAME_PSYCHIC:  2,
		TYPENAME_GHOST:    0.5,
	},
	TYPENAME_ROCK: {
		TYPENAME_FIRE:     2,
		TYPENAME_ICE:      2,
		TYPENAME_FIGHTING: 0.5,
		TYPENAME_GROUND:   0.5,
		TYPENAME_FLYING:   2,
		TYPENAME_BUG:      2,
	},
	// Ghost not affecting Psychic is how the first generation cartridges shipped
	TYPENAME_GHOST: {
		TYPENAME_NORMAL:  0,
		TYPENAME_GHOST:   2,
		TYPENAME_PSYCHIC: 0,
	},
	TYPENAME_DRAGON: {
		TYPENAME_DRAGON: 2,
	},
}

// AllTypes returns every type name in canonical order
func AllTypes() []string {
	return slices.Clone(allTypes)
}

// IsValidType reports whether typeName is one of the 15 known types
func IsValidType(typeName string) bool {
	return slices.Contains(allTypes, strings.ToLower(typeName))
}

// Effectiveness returns the multiplier of attackType against a single defendType.
// Unknown types and unlisted pairs are neutral.
func Effectiveness(attackType string, defendType string) float64 {
	defenders, ok := typeChart[strings.ToLower(attackType)]
	if !ok {
		return 1
	}

	multiplier, ok := defenders[strings.ToLower(defendType)]
	if !ok {
		return 1
	}

	return multiplier
}

// CombinedEffectiveness returns the product of attackType's effectiveness against each defending type
func CombinedEffectiveness(attackType string, defendTypes []string) float64 {
	total := 1.0
	for _, defendType := range defendTypes {
		total *= Effectiveness(attackType, defendType)
	}

	return total
}

// Weaknesses lists the attacking types that deal more than neutral damage to the given type combination
func Weaknesses(defendTypes []string) []string {
	return typesMatching(defendTypes, func(eff float64) bool { return eff > 1 })
}

// Resistances lists the attacking types that deal reduced, but not zero, damage
func Resistances(defendTypes []string) []string {
	return typesMatching(defendTypes, func(eff float64) bool { return eff > 0 && eff < 1 })
}

// Immunities lists the attacking types that deal no damage
func Immunities(defendTypes []string) []string {
	return typesMatching(defendTypes, func(eff float64) bool { return eff == 0 })
}

func typesMatching(defendTypes []string, pred func(float64) bool) []string {
	matching := make([]string, 0)
	for _, attackType := range allTypes {
		if pred(CombinedEffectiveness(attackType, defendTypes)) {
			matching = append(matching, attackType)
		}
	}

	return matching
}
