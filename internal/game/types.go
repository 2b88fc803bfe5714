// Package game implements the heads-up training table: dealing, the street
// state machine, the scripted opponent, and the optimal-play advisor that
// grades every hero decision.
package game

import (
	"github.com/lox/pokertrainer/poker"
)

// Street identifies the betting round a hand is on.
type Street uint8

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Showdown
)

func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	case Showdown:
		return "showdown"
	default:
		return "unknown"
	}
}

// Action is a hero move.
type Action string

const (
	Fold  Action = "fold"
	Check Action = "check"
	Call  Action = "call"
	Bet   Action = "bet"
	Raise Action = "raise"
)

// Position is the hero's seat for a hand. Heads-up, the button posts the
// small blind and acts first preflop.
type Position string

const (
	Button   Position = "BTN"
	BigBlind Position = "BB"
)

// Winner identifies who took the pot.
type Winner uint8

const (
	NoWinner Winner = iota
	HeroWins
	VillainWins
	SplitPot
)

func (w Winner) String() string {
	switch w {
	case HeroWins:
		return "hero"
	case VillainWins:
		return "villain"
	case SplitPot:
		return "tie"
	default:
		return "none"
	}
}

// Actor identifies who performed a logged action.
type Actor string

const (
	ActorHero    Actor = "hero"
	ActorVillain Actor = "villain"
	ActorDealer  Actor = "dealer"
)

// ActionEntry is one line of the hand's action log.
type ActionEntry struct {
	Street Street
	Actor  Actor
	Action string
	Amount int
	Cards  []poker.Card
}

// HandState is the full state of one hand in progress. Board holds only the
// revealed cards; FullBoard is predetermined at deal time.
type HandState struct {
	HandNumber    int
	HeroCards     [2]poker.Card
	VillainCards  [2]poker.Card
	Board         []poker.Card
	FullBoard     []poker.Card
	Street        Street
	Pot           int
	HeroStack     int
	VillainStack  int
	HeroPosition  Position
	ToCall        int
	LastAction    string
	HandComplete  bool
	Winner        Winner
	ActionHistory []ActionEntry
	HeroInvested  int
}

// clone deep-copies the hand so transitions never alias a caller's snapshot.
func (h *HandState) clone() *HandState {
	if h == nil {
		return nil
	}
	dup := *h
	dup.Board = append([]poker.Card(nil), h.Board...)
	dup.FullBoard = append([]poker.Card(nil), h.FullBoard...)
	dup.ActionHistory = append([]ActionEntry(nil), h.ActionHistory...)
	return &dup
}

// Decision records a graded hero choice.
type Decision struct {
	HandNumber    int
	Street        Street
	Situation     string
	Action        Action
	BetAmount     int
	WasOptimal    bool
	OptimalAction Action
	Reasoning     string
	EVImpact      float64
}

// Mode is the session's lifecycle phase.
type Mode uint8

const (
	ModePlaying Mode = iota
	ModeHandComplete
	ModeSessionComplete
)

func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "playing"
	case ModeHandComplete:
		return "hand-complete"
	case ModeSessionComplete:
		return "session-complete"
	default:
		return "unknown"
	}
}

// SessionState is a snapshot of a training session.
type SessionState struct {
	Mode          Mode
	TargetProfit  int
	StartingStack int
	CurrentStack  int
	HandsPlayed   int
	MaxHands      int
	CurrentHand   *HandState
	Decisions     []Decision
	HandHistory   []HandState
}

func (s *SessionState) clone() SessionState {
	dup := *s
	dup.CurrentHand = s.CurrentHand.clone()
	dup.Decisions = append([]Decision(nil), s.Decisions...)
	dup.HandHistory = append([]HandState(nil), s.HandHistory...)
	return dup
}

// Profit is the session's running result against the starting stack.
func (s *SessionState) Profit() int {
	return s.CurrentStack - s.StartingStack
}
