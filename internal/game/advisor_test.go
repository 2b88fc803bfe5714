package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokertrainer/poker"
)

func cards(ss ...string) []poker.Card {
	out := make([]poker.Card, len(ss))
	for i, s := range ss {
		out[i] = poker.MustParseCard(s)
	}
	return out
}

func hole(a, b string) [2]poker.Card {
	return [2]poker.Card{poker.MustParseCard(a), poker.MustParseCard(b)}
}

func TestOptimalActionPotOddsOverride(t *testing.T) {
	// Ace high is nowhere near a calling hand, but at 9% pot odds the math
	// forces a call.
	hand := &HandState{
		HeroCards:    hole("Ah", "Qd"),
		Board:        cards("Kc", "8d", "3s"),
		Street:       Flop,
		Pot:          300,
		ToCall:       30,
		HeroPosition: Button,
	}
	advice := OptimalAction(hand)
	assert.Equal(t, Call, advice.Action)
	assert.Contains(t, advice.Reasoning, "Pot odds")
}

func TestOptimalActionForcedCheckOnFourFlush(t *testing.T) {
	hand := &HandState{
		HeroCards:    hole("Qc", "Qd"),
		Board:        cards("Ah", "Kh", "7h", "2h"),
		Street:       Turn,
		Pot:          100,
		ToCall:       0,
		HeroPosition: BigBlind,
	}
	advice := OptimalAction(hand)
	assert.Equal(t, Check, advice.Action)
	assert.True(t, advice.Marginal)
	assert.Contains(t, advice.Reasoning, "4-flush")
}

func TestOptimalActionBetsNutFlush(t *testing.T) {
	hand := &HandState{
		HeroCards:    hole("Ah", "Kh"),
		Board:        cards("Qh", "Jh", "2h"),
		Street:       Flop,
		Pot:          60,
		ToCall:       0,
		HeroPosition: BigBlind,
	}
	advice := OptimalAction(hand)
	assert.Equal(t, Bet, advice.Action)
	assert.Contains(t, advice.Reasoning, "value")
}

func TestOptimalActionMarginalFold(t *testing.T) {
	// Overpair facing a pot-sized bet: the aggression discount drags the
	// score under the calling thresholds and flags the spot marginal.
	hand := &HandState{
		HeroCards:    hole("Ah", "Ad"),
		Board:        cards("Kc", "7d", "2s"),
		Street:       Flop,
		Pot:          150,
		ToCall:       100,
		HeroPosition: BigBlind,
	}
	advice := OptimalAction(hand)
	assert.Equal(t, Fold, advice.Action)
	assert.True(t, advice.Marginal)
	assert.Contains(t, advice.Reasoning, "Marginal spot")
}

func TestPreflopAdvice(t *testing.T) {
	tests := []struct {
		name     string
		hero     [2]poker.Card
		position Position
		toCall   int
		pot      int
		want     Action
	}{
		{"button premium raises", hole("Ah", "Ad"), Button, 5, 15, Raise},
		{"button suited connector raises", hole("9h", "8h"), Button, 5, 15, Raise},
		{"button junk folds", hole("7c", "2d"), Button, 5, 15, Fold},
		{"big blind strong raises for free", hole("Ah", "Kh"), BigBlind, 0, 15, Raise},
		{"big blind junk checks for free", hole("7c", "2d"), BigBlind, 0, 15, Check},
		{"big blind premium 3-bets", hole("Ah", "Ad"), BigBlind, 100, 150, Raise},
		{"big blind decent defends", hole("Td", "9d"), BigBlind, 100, 150, Call},
		{"big blind junk folds to raise", hole("7c", "2d"), BigBlind, 100, 150, Fold},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand := &HandState{
				HeroCards:    tt.hero,
				Street:       Preflop,
				Pot:          tt.pot,
				ToCall:       tt.toCall,
				HeroPosition: tt.position,
			}
			advice := OptimalAction(hand)
			assert.Equal(t, tt.want, advice.Action)
		})
	}
}

func TestHasNutFlush(t *testing.T) {
	tests := []struct {
		name  string
		hero  [2]poker.Card
		board []poker.Card
		want  bool
	}{
		{"hero ace high flush", hole("Ah", "Kd"), cards("Qh", "Jh", "7h", "2h"), true},
		{"board ace hero king", hole("Kh", "Qc"), cards("Ah", "7h", "2h", "9h"), true},
		{"board ace no king", hole("Qh", "Jc"), cards("Ah", "7h", "2h", "9h"), false},
		{"flush entirely on board", hole("Kd", "Qd"), cards("Ah", "7h", "2h", "3h", "9h"), false},
		{"no flush at all", hole("Ah", "Kh"), cards("Qc", "Jd", "7s"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasNutFlush(tt.hero, tt.board))
		})
	}
}

func TestOverpairAndTopPair(t *testing.T) {
	board := cards("Kc", "7d", "2s")

	require.True(t, isOverpair(hole("Ah", "Ad"), board))
	require.False(t, isOverpair(hole("Qh", "Qd"), board))
	require.False(t, isOverpair(hole("Ah", "Kd"), board))

	require.True(t, isTopPair(hole("Kh", "Qd"), board))
	require.False(t, isTopPair(hole("7h", "6d"), board))
	require.False(t, isTopPair(hole("Ah", "Qd"), board))
}
