package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/pokertrainer/poker"
)

// Response is the villain's reaction to hero aggression.
type Response uint8

const (
	ResponseFold Response = iota
	ResponseCall
	ResponseRaise
)

func (r Response) String() string {
	switch r {
	case ResponseCall:
		return "call"
	case ResponseRaise:
		return "raise"
	default:
		return "fold"
	}
}

// Villain is the scripted opponent. All randomness flows through the
// injected RNG so sessions replay deterministically from a seed.
type Villain struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewVillain creates a villain driven by the given RNG.
func NewVillain(rng *rand.Rand, logger *log.Logger) *Villain {
	return &Villain{rng: rng, logger: logger}
}

// Respond decides how the villain reacts to a hero bet or raise of
// raiseAmount. Postflop the villain never folds while ahead; preflop it
// defends on a mixed strategy keyed to preflop strength and position.
func (v *Villain) Respond(hand *HandState, raiseAmount int) Response {
	potOdds := float64(raiseAmount) / float64(hand.Pot+raiseAmount) * 100

	if hand.Street == Preflop {
		strength := poker.PreflopStrength(hand.VillainCards[0], hand.VillainCards[1])
		inPosition := hand.HeroPosition == BigBlind // villain has the button
		largeRaise := float64(raiseAmount) > float64(hand.Pot)*0.75

		v.logger.Debug("villain facing preflop raise",
			"strength", strength, "inPosition", inPosition, "largeRaise", largeRaise)

		switch {
		case strength >= 80:
			return ResponseRaise
		case strength >= 65:
			if v.rng.Float64() > 0.7 {
				return ResponseRaise
			}
			return ResponseCall
		case strength >= 50:
			return ResponseCall
		case strength >= 40:
			defend := 0.4
			if inPosition {
				defend = 0.6
			}
			if v.rng.Float64() < defend {
				return ResponseCall
			}
			if largeRaise {
				return ResponseFold
			}
			return ResponseCall
		case strength >= 30:
			defend := 0.2
			if inPosition {
				defend = 0.35
			}
			if !largeRaise && v.rng.Float64() < defend {
				return ResponseCall
			}
			return ResponseFold
		default:
			// Junk occasionally bluff-raises to stay unexploitable
			if v.rng.Float64() < 0.05 {
				return ResponseRaise
			}
			return ResponseFold
		}
	}

	villainEval := poker.Evaluate(hand.VillainCards, hand.Board)
	heroEval := poker.Evaluate(hand.HeroCards, hand.Board)

	// Never fold while ahead
	if villainEval.Score >= heroEval.Score {
		if villainEval.Score >= 400 {
			return ResponseRaise
		}
		return ResponseCall
	}

	switch {
	case villainEval.Score >= 300:
		return ResponseCall
	case villainEval.Score >= 200 && potOdds <= 30:
		return ResponseCall
	case villainEval.Score >= 100 && potOdds <= 20:
		return ResponseCall
	default:
		return ResponseFold
	}
}

// Act lets the villain lead out after a street is dealt. It mutates the hand
// in place: pot, stacks, ToCall, LastAction, and the action log.
func (v *Villain) Act(hand *HandState) {
	villainEval := poker.Evaluate(hand.VillainCards, hand.Board)
	heroEval := poker.Evaluate(hand.HeroCards, hand.Board)

	ahead := villainEval.Score >= heroEval.Score
	monster := villainEval.Score >= 500
	strong := villainEval.Score >= 300
	made := villainEval.Score >= 200

	effectiveStack := min(hand.HeroStack, hand.VillainStack)

	var betSizePct float64
	switch hand.Street {
	case Flop:
		betSizePct = 0.5
	case Turn:
		betSizePct = 0.66
	default:
		betSizePct = 0.75
	}

	shouldBet := false
	shouldAllIn := false

	switch {
	case monster && ahead:
		shouldBet = true
		shouldAllIn = v.rng.Float64() > 0.5 && hand.Street != Flop
	case strong:
		shouldBet = v.rng.Float64() > 0.2
		if hand.Street == River && v.rng.Float64() > 0.7 {
			shouldAllIn = true
		}
	case made && ahead:
		shouldBet = v.rng.Float64() > 0.4
	case !made && v.rng.Float64() > 0.75:
		shouldBet = true
		if hand.Street == River && v.rng.Float64() > 0.9 {
			shouldAllIn = true
		}
	}

	if !shouldBet {
		hand.ToCall = 0
		hand.LastAction = "Villain checks"
		hand.ActionHistory = append(hand.ActionHistory, ActionEntry{
			Street: hand.Street,
			Actor:  ActorVillain,
			Action: "checks",
		})
		return
	}

	betAmount := int(float64(hand.Pot)*betSizePct + 0.5)
	if shouldAllIn {
		betAmount = effectiveStack
	}
	hand.ToCall = min(betAmount, effectiveStack)

	actionText := fmt.Sprintf("bets $%d", hand.ToCall)
	if shouldAllIn {
		actionText = fmt.Sprintf("goes all-in $%d", hand.ToCall)
	}
	hand.LastAction = "Villain " + actionText
	hand.ActionHistory = append(hand.ActionHistory, ActionEntry{
		Street: hand.Street,
		Actor:  ActorVillain,
		Action: actionText,
		Amount: hand.ToCall,
	})
	hand.Pot += hand.ToCall
	hand.VillainStack -= hand.ToCall

	v.logger.Debug("villain leads out",
		"street", hand.Street, "amount", hand.ToCall, "allIn", shouldAllIn)
}
