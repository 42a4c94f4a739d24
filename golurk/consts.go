package golurk

const (
	MAX_IV    = 15
	MAX_EV    = 65535
	MIN_LEVEL = 1
	MAX_LEVEL = 100
	MAX_MOVES = 4
	MAX_PARTY = 6
)

// STRUGGLE_INDEX is the move index used when a combatant has no usable moves left
const STRUGGLE_INDEX = -1

const (
	TYPENAME_NORMAL   = "normal"
	TYPENAME_FIRE     = "fire"
	TYPENAME_WATER    = "water"
	TYPENAME_ELECTRIC = "electric"
	TYPENAME_GRASS    = "grass"
	TYPENAME_ICE      = "ice"
	TYPENAME_FIGHTING = "fighting"
	TYPENAME_POISON   = "poison"
	TYPENAME_GROUND   = "ground"
	TYPENAME_FLYING   = "flying"
	TYPENAME_PSYCHIC  = "psychic"
	TYPENAME_BUG      = "bug"
	TYPENAME_ROCK     = "rock"
	TYPENAME_GHOST    = "ghost"
	TYPENAME_DRAGON   = "dragon"
)

// Status conditions are tracked on combatants but the battle engine never applies their effects
const (
	STATUS_NONE = iota
	STATUS_POISON
	STATUS_BURN
	STATUS_PARA
	STATUS_SLEEP
	STATUS_FROZEN
)

// STATUS_NAME_MAP maps the persisted status strings to status constants
var STATUS_NAME_MAP = map[string]int{
	"poisoned":  STATUS_POISON,
	"burned":    STATUS_BURN,
	"paralyzed": STATUS_PARA,
	"asleep":    STATUS_SLEEP,
	"frozen":    STATUS_FROZEN,
}

const (
	ACTION_FIGHT = iota + 1
	ACTION_BAG
	ACTION_POKEMON
	ACTION_RUN
)

const (
	OUTCOME_NONE = iota
	OUTCOME_VICTORY
	OUTCOME_DEFEAT
	OUTCOME_FLED
	OUTCOME_CAUGHT
)

const (
	ITEM_CATEGORY_ITEMS     = "items"
	ITEM_CATEGORY_POKEBALLS = "pokeballs"
)

const (
	ITEM_EFFECT_HEAL           = "heal"
	ITEM_EFFECT_CURE_POISON    = "cure_poison"
	ITEM_EFFECT_CURE_PARALYSIS = "cure_paralysis"
	ITEM_EFFECT_CURE_SLEEP     = "cure_sleep"
	ITEM_EFFECT_CURE_BURN      = "cure_burn"
	ITEM_EFFECT_CURE_FREEZE    = "cure_freeze"
	ITEM_EFFECT_CURE_ALL       = "cure_all"
	ITEM_EFFECT_CATCH          = "catch"
	ITEM_EFFECT_CATCH_ALWAYS   = "catch_always"
)

// Species a player is given when they enter a battle with no pokemon
const (
	STARTER_SPECIES = "PIKACHU"
	STARTER_LEVEL   = 5
)

// Default wild encounter used when a wild battle is started without a species
const (
	DEFAULT_WILD_SPECIES   = "RATTATA"
	DEFAULT_WILD_LEVEL_MIN = 3
	DEFAULT_WILD_LEVEL_MAX = 5
)
