package analysis

import "fmt"

// Archetype is one of the nine player profiles on the tight/loose,
// aggressive/passive, and transparent/deceptive axes.
type Archetype struct {
	Name        string
	Abbrev      string
	Color       string
	Description string
	Advice      string
}

var archetypes = map[string]Archetype{
	"loose-aggressive-transparent": {
		Name:        "The Showboat",
		Abbrev:      "LAG-T",
		Color:       "#f87171",
		Description: "Plays many hands aggressively and honestly. Bets big with big hands, checks weak ones. Easy to read once you spot the pattern.",
		Advice:      "Your aggression is good, but your betting tells the whole story. Mix in occasional bluffs with your big bets to keep opponents guessing.",
	},
	"loose-aggressive-deceptive": {
		Name:        "The Wildcard",
		Abbrev:      "LAG-D",
		Color:       "#dc2626",
		Description: "The most dangerous archetype. Plays many hands, bets aggressively, and you never know if they have it or not. Maximum chaos.",
		Advice:      "You are hard to play against but high-variance. Make sure your bluffs have a plan and your value bets are sized to get called.",
	},
	"tight-aggressive-transparent": {
		Name:        "The Glass Cannon",
		Abbrev:      "TAG-T",
		Color:       "#4ade80",
		Description: "Selective and aggressive, but big bets always mean big hands. Opponents can fold to your raises unless they have the goods.",
		Advice:      "Your hand selection is strong, but opponents will learn to fold against your bets. Add some well-timed bluffs to keep them honest.",
	},
	"tight-aggressive-deceptive": {
		Name:        "The Assassin",
		Abbrev:      "TAG-D",
		Color:       "#16a34a",
		Description: "The feared tournament shark. Picks spots carefully, then strikes with force, whether or not they have it.",
		Advice:      "This is the gold standard of poker styles. Keep your opponents off-balance and continue to mix your betting patterns.",
	},
	"loose-passive-transparent": {
		Name:        "The Open Book",
		Abbrev:      "LP-T",
		Color:       "#facc15",
		Description: "Calls too much and bets only when connected. The most exploitable type, opponents can value bet relentlessly.",
		Advice:      "Tighten your hand selection and bet more with your strong hands. Playing passively and transparently makes you an easy target.",
	},
	"loose-passive-deceptive": {
		Name:        "The Sandtrapper",
		Abbrev:      "LP-D",
		Color:       "#ca8a04",
		Description: "Appears passive but sets traps with slow-plays and surprise check-raises. Do not underestimate the quiet ones.",
		Advice:      "Your deception is a weapon, but playing too many hands costs chips. Be more selective with your starting hands.",
	},
	"tight-passive-transparent": {
		Name:        "The Statue",
		Abbrev:      "TP-T",
		Color:       "#60a5fa",
		Description: "Plays few hands, rarely bets, and when they do it is exactly what it looks like. Predictable and straightforward.",
		Advice:      "You are too easy to play against. When you have strong hands, bet and raise more to build the pot and extract value.",
	},
	"tight-passive-deceptive": {
		Name:        "The Spider",
		Abbrev:      "TP-D",
		Color:       "#2563eb",
		Description: "Waits patiently, playing few hands, but weaves deception with unpredictable bet sizing. Slow-plays monsters and surprise-bluffs.",
		Advice:      "Your patience and deception are a great combo. Try to raise more preflop with your strong hands to build bigger pots.",
	},
	"balanced": {
		Name:        "The Enigma",
		Abbrev:      "BAL",
		Color:       "#a855f7",
		Description: "Falls between all extremes. No clear pattern to exploit, the hardest opponent to play against.",
		Advice:      "A balanced style is great. Keep adjusting to your opponents rather than playing the same way against everyone.",
	},
}

// Classify maps a play style and transparency score to an archetype. A
// player balanced on every axis is The Enigma; otherwise each balanced axis
// falls back to its closest extreme.
func Classify(style PlayStyle, tScore int) Archetype {
	isLoose := style.VPIP > 30
	isTight := style.VPIP < 22
	isAggressive := style.PFR > 15 || style.Aggression > 1.5
	isPassive := style.PFR < 12 && style.Aggression < 1.2
	isTransparent := tScore >= 60
	isDeceptive := tScore < 40

	if !isLoose && !isTight && !isAggressive && !isPassive && !isTransparent && !isDeceptive {
		return archetypes["balanced"]
	}

	lt := "tight"
	if isLoose || (!isTight && style.VPIP >= 26) {
		lt = "loose"
	}
	ap := "passive"
	if isAggressive || (!isPassive && style.Aggression >= 1.35) {
		ap = "aggressive"
	}
	dt := "deceptive"
	if isTransparent || (!isDeceptive && tScore >= 50) {
		dt = "transparent"
	}

	return archetypes[fmt.Sprintf("%s-%s-%s", lt, ap, dt)]
}
