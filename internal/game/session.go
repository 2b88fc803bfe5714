package game

import (
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/pokertrainer/internal/randutil"
	"github.com/lox/pokertrainer/poker"
)

// Default table parameters.
const (
	DefaultTargetProfit  = 100
	DefaultStartingStack = 1000
	DefaultMaxHands      = 20

	smallBlind = 5
	bigBlind   = 10
)

// Common misuse errors.
var (
	ErrNoCurrentHand = errors.New("no hand in progress")
	ErrHandFinished  = errors.New("hand already complete")
)

// Session runs one training session against the scripted villain. All state
// transitions work on cloned snapshots, so every returned SessionState is
// safe to hold across further calls.
type Session struct {
	rng     *rand.Rand
	villain *Villain
	logger  *log.Logger
	state   SessionState

	// deal produces the raw hero/villain/board cards for the next hand.
	// Overridable so tests can feed rigged deals through the redeal guard.
	deal func() ([2]poker.Card, [2]poker.Card, []poker.Card)
}

// Options configures a new session; zero fields fall back to the defaults.
type Options struct {
	TargetProfit  int
	StartingStack int
	MaxHands      int
}

// NewSession creates a session seeded for deterministic replay.
func NewSession(seed int64, opts Options, logger *log.Logger) *Session {
	if opts.TargetProfit == 0 {
		opts.TargetProfit = DefaultTargetProfit
	}
	if opts.StartingStack == 0 {
		opts.StartingStack = DefaultStartingStack
	}
	if opts.MaxHands == 0 {
		opts.MaxHands = DefaultMaxHands
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rng := randutil.New(seed)
	s := &Session{
		rng:     rng,
		villain: NewVillain(rng, logger),
		logger:  logger,
		state: SessionState{
			Mode:          ModePlaying,
			TargetProfit:  opts.TargetProfit,
			StartingStack: opts.StartingStack,
			CurrentStack:  opts.StartingStack,
			MaxHands:      opts.MaxHands,
		},
	}
	s.deal = s.dealFromDeck
	return s
}

// State returns a snapshot of the current session state.
func (s *Session) State() SessionState {
	return s.state.clone()
}

// DealNewHand shuffles a fresh deck, deals both players and the full board,
// posts the blinds, and returns the new snapshot. Position alternates with
// the hand count; the button posts the small blind and owes the rest of the
// big blind preflop.
func (s *Session) DealNewHand() (SessionState, error) {
	if s.state.CurrentHand != nil && !s.state.CurrentHand.HandComplete {
		return SessionState{}, errors.New("hand still in progress")
	}
	if s.state.Mode == ModeSessionComplete {
		return SessionState{}, errors.New("session already complete")
	}

	heroCards, villainCards, board := s.dealCards()

	position := BigBlind
	if s.state.HandsPlayed%2 == 0 {
		position = Button
	}
	blinds := smallBlind
	if position == BigBlind {
		blinds = bigBlind
	}

	var initial []ActionEntry
	if position == Button {
		initial = append(initial,
			ActionEntry{Street: Preflop, Actor: ActorHero, Action: "posts SB $5", Amount: smallBlind},
			ActionEntry{Street: Preflop, Actor: ActorVillain, Action: "posts BB $10", Amount: bigBlind},
		)
	} else {
		initial = append(initial,
			ActionEntry{Street: Preflop, Actor: ActorVillain, Action: "posts SB $5", Amount: smallBlind},
			ActionEntry{Street: Preflop, Actor: ActorHero, Action: "posts BB $10", Amount: bigBlind},
		)
	}

	toCall := 0
	if position == Button {
		toCall = bigBlind - smallBlind
	}

	next := s.state.clone()
	next.Mode = ModePlaying
	next.CurrentStack -= blinds
	next.CurrentHand = &HandState{
		HandNumber:    s.state.HandsPlayed + 1,
		HeroCards:     heroCards,
		VillainCards:  villainCards,
		Board:         nil,
		FullBoard:     board,
		Street:        Preflop,
		Pot:           smallBlind + bigBlind,
		HeroStack:     s.state.CurrentStack - blinds,
		VillainStack:  DefaultStartingStack - (smallBlind + bigBlind - blinds),
		HeroPosition:  position,
		ToCall:        toCall,
		ActionHistory: initial,
		HeroInvested:  blinds,
	}

	s.logger.Debug("dealt new hand",
		"hand", next.CurrentHand.HandNumber,
		"position", position,
		"hero", fmt.Sprintf("%v %v", heroCards[0], heroCards[1]))

	s.state = next
	return s.state.clone(), nil
}

// dealCards draws hero, villain, and board from the deal source, redealing
// until all nine cards are distinct.
func (s *Session) dealCards() ([2]poker.Card, [2]poker.Card, []poker.Card) {
	for {
		hero, villain, board := s.deal()
		if !validDeal(hero, villain, board) {
			s.logger.Warn("duplicate cards in deal, redealing")
			continue
		}
		return hero, villain, board
	}
}

// dealFromDeck shuffles a fresh deck and deals both players plus the board.
func (s *Session) dealFromDeck() ([2]poker.Card, [2]poker.Card, []poker.Card) {
	deck := poker.NewDeck(s.rng)
	hero := deck.Deal(2)
	villain := deck.Deal(2)
	board := deck.Deal(5)
	return [2]poker.Card{hero[0], hero[1]}, [2]poker.Card{villain[0], villain[1]},
		append([]poker.Card(nil), board...)
}

// validDeal reports whether the nine dealt cards are all distinct.
func validDeal(hero, villain [2]poker.Card, board []poker.Card) bool {
	all := poker.NewHand(hero[0], hero[1], villain[0], villain[1])
	for _, c := range board {
		all.AddCard(c)
	}
	return all.CountCards() == 9
}

// ProcessAction applies a hero action, grades it against the advisor, runs
// the villain's reply, and advances the hand. betAmount only matters for
// bet/raise; zero means the default two-thirds pot sizing.
func (s *Session) ProcessAction(action Action, betAmount int) (SessionState, error) {
	if s.state.CurrentHand == nil {
		return SessionState{}, ErrNoCurrentHand
	}
	hand := s.state.CurrentHand
	if hand.HandComplete {
		return SessionState{}, ErrHandFinished
	}
	if action == Bet || action == Raise {
		if betAmount < 0 {
			return SessionState{}, fmt.Errorf("invalid bet amount %d", betAmount)
		}
		if betAmount > hand.HeroStack {
			return SessionState{}, fmt.Errorf("bet %d exceeds stack %d", betAmount, hand.HeroStack)
		}
	}

	optimal := OptimalAction(hand)
	wasOptimal := action == optimal.Action

	// Rough EV cost of the mistake, used for the session report
	var evImpact float64
	if !wasOptimal {
		switch {
		case optimal.Action == Fold && action != Fold:
			evImpact = -float64(hand.ToCall)
		case optimal.Action == Raise && action == Fold:
			evImpact = -float64(hand.Pot) * 0.3
		case optimal.Action == Call && action == Fold:
			evImpact = -float64(hand.Pot) * 0.2
		}
	}

	decision := Decision{
		HandNumber:    hand.HandNumber,
		Street:        hand.Street,
		Situation:     fmt.Sprintf("Pot: $%d, To Call: $%d", hand.Pot, hand.ToCall),
		Action:        action,
		BetAmount:     betAmount,
		WasOptimal:    wasOptimal,
		OptimalAction: optimal.Action,
		Reasoning:     optimal.Reasoning,
		EVImpact:      evImpact,
	}

	next := s.state.clone()
	newHand := next.CurrentHand
	newStack := next.CurrentStack

	switch action {
	case Fold:
		newHand.ActionHistory = append(newHand.ActionHistory, ActionEntry{
			Street: newHand.Street, Actor: ActorHero, Action: "folds",
		})
		newHand.HandComplete = true
		newHand.Winner = VillainWins

	case Call, Check:
		callingAllIn := newHand.ToCall >= newHand.HeroStack || newHand.ToCall >= newHand.VillainStack

		if action == Check {
			newHand.ActionHistory = append(newHand.ActionHistory, ActionEntry{
				Street: newHand.Street, Actor: ActorHero, Action: "checks",
			})
		} else {
			callText := fmt.Sprintf("calls $%d", newHand.ToCall)
			if callingAllIn {
				callText = fmt.Sprintf("calls all-in $%d", newHand.ToCall)
			}
			newHand.ActionHistory = append(newHand.ActionHistory, ActionEntry{
				Street: newHand.Street, Actor: ActorHero, Action: callText, Amount: newHand.ToCall,
			})
		}
		newStack -= newHand.ToCall
		newHand.Pot += newHand.ToCall
		newHand.HeroStack -= newHand.ToCall
		newHand.HeroInvested += newHand.ToCall
		newHand.ToCall = 0

		if callingAllIn && action == Call {
			newHand.Street = Showdown
			newHand.HandComplete = true
		} else {
			progressStreet(newHand, s.villain)
		}

	case Bet, Raise:
		raiseAmount := betAmount
		if raiseAmount == 0 {
			raiseAmount = int(float64(newHand.Pot)*0.66 + 0.5)
		}
		effectiveStack := min(newHand.HeroStack, newHand.VillainStack)
		isAllIn := raiseAmount >= effectiveStack

		total := newHand.ToCall + raiseAmount
		var actionText string
		switch {
		case isAllIn && action == Bet:
			actionText = fmt.Sprintf("goes all-in $%d", raiseAmount)
		case action == Bet:
			actionText = fmt.Sprintf("bets $%d", raiseAmount)
		case isAllIn:
			actionText = fmt.Sprintf("goes all-in $%d", total)
		default:
			actionText = fmt.Sprintf("raises to $%d", total)
		}
		newHand.ActionHistory = append(newHand.ActionHistory, ActionEntry{
			Street: newHand.Street, Actor: ActorHero, Action: actionText, Amount: total,
		})

		newStack -= total
		newHand.Pot += total
		newHand.HeroStack -= total
		newHand.HeroInvested += total

		response := s.villain.Respond(newHand, raiseAmount)
		if response == ResponseCall || response == ResponseRaise {
			// A raise response is flattened to a call: the hero always
			// closes the action in this trainer.
			callText := fmt.Sprintf("calls $%d", raiseAmount)
			if isAllIn {
				callText = fmt.Sprintf("calls all-in $%d", raiseAmount)
			}
			newHand.ActionHistory = append(newHand.ActionHistory, ActionEntry{
				Street: newHand.Street, Actor: ActorVillain, Action: callText, Amount: raiseAmount,
			})
			newHand.Pot += raiseAmount
			newHand.VillainStack -= raiseAmount

			if isAllIn || newHand.HeroStack <= 0 || newHand.VillainStack <= 0 {
				newHand.Street = Showdown
				newHand.HandComplete = true
			} else {
				progressStreet(newHand, s.villain)
			}
		} else {
			newHand.ActionHistory = append(newHand.ActionHistory, ActionEntry{
				Street: newHand.Street, Actor: ActorVillain, Action: "folds",
			})
			newHand.HandComplete = true
			newHand.Winner = HeroWins
			newStack += newHand.Pot
		}

	default:
		return SessionState{}, fmt.Errorf("unknown action %q", action)
	}

	if newHand.HandComplete && newHand.Winner == NoWinner {
		resolveShowdown(newHand)
		switch newHand.Winner {
		case HeroWins:
			newStack += newHand.Pot
		case SplitPot:
			newStack += newHand.Pot / 2
		}
	}

	next.Decisions = append(next.Decisions, decision)
	next.CurrentStack = newStack

	if newHand.HandComplete {
		next.HandHistory = append(next.HandHistory, *newHand)
		next.HandsPlayed++
		next.CurrentHand = nil
		if next.HandsPlayed >= next.MaxHands || newStack <= 0 {
			next.Mode = ModeSessionComplete
		} else {
			next.Mode = ModeHandComplete
		}
	} else {
		next.Mode = ModePlaying
	}

	s.state = next
	return s.state.clone(), nil
}
