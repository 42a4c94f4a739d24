package golurk

import "fmt"

type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Effect      string `json:"effect"`
	Value       int    `json:"value"`
	CatchRate   int    `json:"catch_rate"`
	Price       int    `json:"price"`
	Description string `json:"description"`
}

func (i Item) IsBall() bool {
	return i.Category == ITEM_CATEGORY_POKEBALLS
}

var cureEffects = map[string]int{
	ITEM_EFFECT_CURE_POISON:    STATUS_POISON,
	ITEM_EFFECT_CURE_PARALYSIS: STATUS_PARA,
	ITEM_EFFECT_CURE_SLEEP:     STATUS_SLEEP,
	ITEM_EFFECT_CURE_BURN:      STATUS_BURN,
	ITEM_EFFECT_CURE_FREEZE:    STATUS_FROZEN,
	ITEM_EFFECT_CURE_ALL:       STATUS_NONE,
}

// CanUseItemOn reports whether item would have any effect on target
func CanUseItemOn(item Item, target Pokemon) error {
	if item.IsBall() {
		return fmt.Errorf("%w: %s can't be used on your own pokemon", ErrNotAllowed, item.Name)
	}

	if !target.Alive() {
		return fmt.Errorf("%w: %s has fainted", ErrNotAllowed, target.Name())
	}

	if item.Effect == ITEM_EFFECT_HEAL {
		if target.Hp >= target.MaxHp {
			return fmt.Errorf("%w: %s's HP is full", ErrNotAllowed, target.Name())
		}

		return nil
	}

	status, ok := cureEffects[item.Effect]
	if !ok {
		return fmt.Errorf("%w: %s has no effect in battle", ErrNotAllowed, item.Name)
	}

	if target.Status == STATUS_NONE || (status != STATUS_NONE && target.Status != status) {
		return fmt.Errorf("%w: %s would have no effect on %s", ErrNotAllowed, item.Name, target.Name())
	}

	return nil
}

// ApplyItem uses item on target and returns the message describing what happened.
// CanUseItemOn should be checked first.
func ApplyItem(item Item, target *Pokemon) string {
	if item.Effect == ITEM_EFFECT_HEAL {
		healed := target.Heal(item.Value)
		return fmt.Sprintf("%s recovered %d HP!", target.Name(), healed)
	}

	target.CureStatus(cureEffects[item.Effect])

	return fmt.Sprintf("%s was cured!", target.Name())
}
