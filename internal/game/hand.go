package game

import (
	"github.com/lox/pokertrainer/poker"
)

// progressStreet advances the hand to the next street, revealing cards from
// the predetermined board and letting the villain act first. Mutates the
// hand in place; callers pass an exclusively-owned clone.
func progressStreet(hand *HandState, villain *Villain) {
	switch hand.Street {
	case Preflop:
		hand.Street = Flop
		hand.Board = hand.FullBoard[:3]
		hand.ActionHistory = append(hand.ActionHistory, ActionEntry{
			Street: Flop,
			Actor:  ActorDealer,
			Action: "deals flop",
			Cards:  append([]poker.Card(nil), hand.Board...),
		})
		villain.Act(hand)
	case Flop:
		hand.Street = Turn
		hand.Board = hand.FullBoard[:4]
		hand.ActionHistory = append(hand.ActionHistory, ActionEntry{
			Street: Turn,
			Actor:  ActorDealer,
			Action: "deals turn",
			Cards:  []poker.Card{hand.FullBoard[3]},
		})
		villain.Act(hand)
	case Turn:
		hand.Street = River
		hand.Board = hand.FullBoard[:5]
		hand.ActionHistory = append(hand.ActionHistory, ActionEntry{
			Street: River,
			Actor:  ActorDealer,
			Action: "deals river",
			Cards:  []poker.Card{hand.FullBoard[4]},
		})
		villain.Act(hand)
	case River:
		hand.Street = Showdown
		hand.Board = hand.FullBoard
		hand.HandComplete = true
	}
}

// resolveShowdown compares both hands on the full board and sets the winner.
func resolveShowdown(hand *HandState) {
	hand.Board = hand.FullBoard
	heroEval := poker.Evaluate(hand.HeroCards, hand.FullBoard)
	villainEval := poker.Evaluate(hand.VillainCards, hand.FullBoard)

	switch poker.Compare(heroEval, villainEval) {
	case 1:
		hand.Winner = HeroWins
	case -1:
		hand.Winner = VillainWins
	default:
		hand.Winner = SplitPot
	}
}
