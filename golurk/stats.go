package golurk

import "math"

// ClampLevel forces level into [MIN_LEVEL, MAX_LEVEL]
func ClampLevel(level int) int {
	return min(max(level, MIN_LEVEL), MAX_LEVEL)
}

func clampIv(iv int) int {
	return min(max(iv, 0), MAX_IV)
}

func clampEv(ev int) int {
	return min(max(ev, 0), MAX_EV)
}

// evBonus is the stat experience contribution: floor(floor(sqrt(ev)) / 4)
func evBonus(ev int) int {
	return int(math.Sqrt(float64(clampEv(ev)))) / 4
}

// CalcStat calculates a non-HP stat using the first generation formula
func CalcStat(base int, iv int, ev int, level int) int {
	level = ClampLevel(level)
	value := ((base+clampIv(iv))*2+evBonus(ev))*level/100 + 5

	return max(value, 1)
}

// CalcHp calculates max HP using the first generation formula
func CalcHp(base int, iv int, ev int, level int) int {
	level = ClampLevel(level)
	value := ((base+clampIv(iv))*2+evBonus(ev))*level/100 + level + 10

	return max(value, 1)
}

// ExpForLevel returns the total experience needed to reach level on the medium-slow curve.
// The raw cubic goes negative at level 1 so the result is floored at 0.
func ExpForLevel(level int) int {
	n := float64(ClampLevel(level))
	exp := math.Floor(1.2*n*n*n - 15*n*n + 100*n - 140)

	return max(int(exp), 0)
}

// ExpYield calculates the experience awarded for defeating a pokemon
func ExpYield(baseYield int, defeatedLevel int, isWild bool, wasTraded bool) int {
	a := 1.0
	if !isWild {
		a = 1.5
	}

	// traded pokemon get an extra 1.5x
	if wasTraded {
		a *= 1.5
	}

	return int(math.Floor(a * float64(baseYield) * float64(ClampLevel(defeatedLevel)) / 7))
}
