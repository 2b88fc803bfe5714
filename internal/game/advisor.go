package game

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/lox/pokertrainer/poker"
)

// Advice is the advisor's verdict for the current decision point.
type Advice struct {
	Action    Action
	Reasoning string
	Marginal  bool
}

// handContext gathers every signal the advisor weighs for one decision.
type handContext struct {
	rawScore        int
	preflopStrength float64

	fourFlushBoard  bool
	threeFlushBoard bool
	pairedBoard     bool
	connectedBoard  bool

	hasFlush    bool
	hasNutFlush bool
	hasStraight bool
	hasSet      bool
	hasTwoPair  bool
	hasOverpair bool
	hasTopPair  bool
	hasPair     bool

	facingBet   bool
	potOdds     int
	isPreflop   bool
	hasPosition bool
}

// strengthModifier adjusts the raw score when its condition holds. The
// descriptions double as user-facing reasoning fragments.
type strengthModifier struct {
	name        string
	condition   func(ctx *handContext) bool
	modifier    int
	description string
}

var strengthModifiers = []strengthModifier{
	{
		name:        "vulnerable-flush",
		condition:   func(ctx *handContext) bool { return ctx.fourFlushBoard && ctx.hasFlush && !ctx.hasNutFlush },
		modifier:    -250,
		description: "Vulnerable flush on 4-flush board",
	},
	{
		name:        "flush-draw-board",
		condition:   func(ctx *handContext) bool { return ctx.threeFlushBoard && !ctx.hasFlush },
		modifier:    -50,
		description: "Flush draw possible",
	},
	{
		name:        "paired-board-without-trips",
		condition:   func(ctx *handContext) bool { return ctx.pairedBoard && !ctx.hasSet },
		modifier:    -30,
		description: "Paired board, opponent could have trips",
	},
	{
		name:        "has-position",
		condition:   func(ctx *handContext) bool { return ctx.hasPosition && !ctx.isPreflop },
		modifier:    30,
		description: "Position advantage",
	},
	{
		name:        "facing-big-bet",
		condition:   func(ctx *handContext) bool { return ctx.facingBet && ctx.potOdds > 25 },
		modifier:    -50,
		description: "Facing significant aggression",
	},
	{
		name:        "nut-flush",
		condition:   func(ctx *handContext) bool { return ctx.hasNutFlush },
		modifier:    100,
		description: "Nut flush, maximum strength",
	},
	{
		name:        "has-set",
		condition:   func(ctx *handContext) bool { return ctx.hasSet },
		modifier:    50,
		description: "Set, very strong",
	},
}

func buildHandContext(hand *HandState) *handContext {
	heroEval := poker.Evaluate(hand.HeroCards, hand.Board)
	texture := poker.AnalyzeTexture(hand.Board)

	hasFlush := heroEval.Category == poker.Flush
	hasPair := heroEval.Category == poker.Pair

	return &handContext{
		rawScore:        heroEval.Score,
		preflopStrength: poker.PreflopStrength(hand.HeroCards[0], hand.HeroCards[1]),

		fourFlushBoard:  texture.FourFlush(),
		threeFlushBoard: texture.ThreeFlush(),
		pairedBoard:     texture.Paired,
		connectedBoard:  texture.Connected,

		hasFlush:    hasFlush,
		hasNutFlush: hasFlush && hasNutFlush(hand.HeroCards, hand.Board),
		hasStraight: heroEval.Category == poker.Straight,
		hasSet:      heroEval.Category == poker.ThreeOfAKind,
		hasTwoPair:  heroEval.Category == poker.TwoPair,
		hasOverpair: hasPair && isOverpair(hand.HeroCards, hand.Board),
		hasTopPair:  hasPair && isTopPair(hand.HeroCards, hand.Board),
		hasPair:     hasPair,

		facingBet:   hand.ToCall > 0,
		potOdds:     poker.PotOdds(hand.Pot, hand.ToCall),
		isPreflop:   hand.Street == Preflop,
		hasPosition: hand.HeroPosition == Button,
	}
}

// effectiveScore applies every matching modifier to the raw hand score.
func effectiveScore(ctx *handContext) (int, []string) {
	score := ctx.rawScore
	var applied []string
	for _, mod := range strengthModifiers {
		if mod.condition(ctx) {
			score += mod.modifier
			applied = append(applied, mod.description)
		}
	}
	return score, applied
}

// OptimalAction returns the play the advisor would make in the hero's spot.
func OptimalAction(hand *HandState) Advice {
	ctx := buildHandContext(hand)

	if ctx.isPreflop {
		return preflopAction(hand, ctx)
	}

	score, applied := effectiveScore(ctx)
	canCheck := hand.ToCall == 0

	marginal := false
	for _, desc := range applied {
		if strings.Contains(desc, "Vulnerable") || strings.Contains(desc, "aggression") {
			marginal = true
			break
		}
	}

	// Boards where betting anything short of the nuts burns money
	dangerousBoard := ctx.fourFlushBoard || (ctx.threeFlushBoard && ctx.pairedBoard)
	hasNuts := ctx.hasNutFlush || (ctx.hasFlush && !ctx.fourFlushBoard)

	if canCheck {
		if dangerousBoard && !hasNuts && !ctx.hasSet {
			return Advice{
				Action:    Check,
				Reasoning: "4-flush on board, check without the flush",
				Marginal:  true,
			}
		}
		switch {
		case score >= 350:
			return Advice{Action: Bet, Reasoning: "Strong hand, bet for value"}
		case score >= 200:
			return Advice{Action: Check, Reasoning: "Medium hand, pot control"}
		default:
			return Advice{Action: Check, Reasoning: "Weak hand, check back"}
		}
	}

	switch {
	case score >= 450:
		return Advice{Action: Raise, Reasoning: "Very strong, raise for value"}
	case score >= 300:
		return Advice{Action: Call, Reasoning: "Strong enough to call"}
	case score >= 200 && ctx.potOdds <= 25:
		return Advice{Action: Call, Reasoning: "Decent hand with good pot odds"}
	case ctx.potOdds <= 15:
		return Advice{Action: Call, Reasoning: "Pot odds too good to fold"}
	case marginal && score >= 150:
		return Advice{
			Action:    Fold,
			Reasoning: fmt.Sprintf("Marginal spot (%s), folding is fine", applied[0]),
			Marginal:  true,
		}
	default:
		return Advice{Action: Fold, Reasoning: "Not enough equity to continue"}
	}
}

func preflopAction(hand *HandState, ctx *handContext) Advice {
	if ctx.hasPosition {
		switch {
		case ctx.preflopStrength >= 70:
			return Advice{Action: Raise, Reasoning: "Premium hand, raise for value"}
		case ctx.preflopStrength >= 45:
			return Advice{Action: Raise, Reasoning: "Playable hand in position, open raise"}
		default:
			return Advice{Action: Fold, Reasoning: "Weak hand, fold preflop"}
		}
	}

	if hand.ToCall == 0 {
		if ctx.preflopStrength >= 75 {
			return Advice{Action: Raise, Reasoning: "Strong hand, raise for value"}
		}
		return Advice{Action: Check, Reasoning: "See the flop for free", Marginal: true}
	}
	switch {
	case ctx.preflopStrength >= 80:
		return Advice{Action: Raise, Reasoning: "Premium hand, 3-bet for value"}
	case ctx.preflopStrength >= 50 || ctx.potOdds <= 20:
		return Advice{Action: Call, Reasoning: "Decent hand, defend your blind"}
	default:
		return Advice{Action: Fold, Reasoning: "Weak hand, bad pot odds, fold"}
	}
}

// hasNutFlush reports whether a made flush is the best flush available:
// hero holds the ace of the suit, or the ace is on board and hero holds the
// king.
func hasNutFlush(heroCards [2]poker.Card, board []poker.Card) bool {
	all := poker.NewHand(heroCards[0], heroCards[1])
	for _, c := range board {
		all.AddCard(c)
	}

	for suit := range uint8(4) {
		if countSuit(all, suit) < 5 {
			continue
		}
		heroSuited := heroCards[0].Suit() == suit || heroCards[1].Suit() == suit
		if !heroSuited {
			return false
		}
		if heroHoldsRank(heroCards, poker.Ace, suit) {
			return true
		}
		boardHand := poker.NewHand(board...)
		if boardHand.HasCard(poker.NewCard(poker.Ace, suit)) {
			return heroHoldsRank(heroCards, poker.King, suit)
		}
		return false
	}
	return false
}

func countSuit(h poker.Hand, suit uint8) int {
	return bits.OnesCount16(h.GetSuitMask(suit))
}

func heroHoldsRank(heroCards [2]poker.Card, rank, suit uint8) bool {
	want := poker.NewCard(rank, suit)
	return heroCards[0] == want || heroCards[1] == want
}

func isOverpair(heroCards [2]poker.Card, board []poker.Card) bool {
	if heroCards[0].Rank() != heroCards[1].Rank() {
		return false
	}
	for _, c := range board {
		if c.Rank() >= heroCards[0].Rank() {
			return false
		}
	}
	return len(board) > 0
}

func isTopPair(heroCards [2]poker.Card, board []poker.Card) bool {
	var maxRank uint8
	hasBoard := false
	for _, c := range board {
		if !hasBoard || c.Rank() > maxRank {
			maxRank = c.Rank()
			hasBoard = true
		}
	}
	if !hasBoard {
		return false
	}
	return heroCards[0].Rank() == maxRank || heroCards[1].Rank() == maxRank
}
