package golurk

import (
	"fmt"
	"math/rand/v2"
)

type CatchResult struct {
	Caught bool
	// Number of shakes before breaking free, only meaningful when Caught is false
	Shakes  int
	Message string
}

var shakeMessages = []string{
	"Oh no! The Pokemon broke free!",
	"Aww! It appeared to be caught!",
	"Aargh! Almost had it!",
	"Shoot! It was so close too!",
}

// AttemptCatch throws ball at defender. A ball with the catch_always effect never fails.
// The shake rolls after a failed catch only pick the message.
func AttemptCatch(defender Pokemon, ball Item, rng *rand.Rand) CatchResult {
	if ball.Effect == ITEM_EFFECT_CATCH_ALWAYS {
		return CatchResult{Caught: true, Message: fmt.Sprintf("%s was caught!", defender.Name())}
	}

	factor := CatchFactor(defender.MaxHp, defender.Hp, ball.CatchRate)
	if float64(rng.IntN(256)) < factor {
		return CatchResult{Caught: true, Message: fmt.Sprintf("Gotcha! %s was caught!", defender.Name())}
	}

	shakes := 0
	for range 3 {
		if float64(rng.IntN(65536)) >= factor*256 {
			break
		}
		shakes++
	}

	internalLogger.WithName("capture").V(1).Info("catch failed", "pokemon_name", defender.Name(), "factor", factor, "shakes", shakes)

	return CatchResult{Caught: false, Shakes: shakes, Message: shakeMessages[shakes]}
}

// CatchFactor is maxHp*255*4 / (curHp*ballRate) with the divisor floored at 1.
// It isn't rounded: a catch roll of 5 beats a factor of 5.33.
func CatchFactor(maxHp int, curHp int, ballRate int) float64 {
	return float64(maxHp*255*4) / float64(max(1, curHp*ballRate))
}

// EscapeOdds is the value an escape roll (0-255) must be under for the player to get away.
// Only the enemy's speed/4 is floored.
func EscapeOdds(playerSpeed int, enemySpeed int, attempts int) float64 {
	return float64(playerSpeed*32)/float64(max(1, enemySpeed/4)) + 30*float64(attempts)
}
