package poker

import (
	"testing"
)

func cards(strs ...string) []Card {
	out := make([]Card, len(strs))
	for i, s := range strs {
		out[i] = MustParseCard(s)
	}
	return out
}

func hole(a, b string) [2]Card {
	return [2]Card{MustParseCard(a), MustParseCard(b)}
}

func TestEvaluateCategories(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		hole     [2]Card
		board    []Card
		category Category
		score    int
		desc     string
	}{
		{
			name:     "royal flush",
			hole:     hole("As", "Ks"),
			board:    cards("Qs", "Js", "Ts", "2d", "7c"),
			category: RoyalFlush,
			score:    1200,
			desc:     "Royal Flush",
		},
		{
			name:     "straight flush nine high",
			hole:     hole("9h", "8h"),
			board:    cards("7h", "6h", "5h", "Ad", "Ac"),
			category: StraightFlush,
			score:    1100 + int(Nine),
		},
		{
			name:     "quads with kicker",
			hole:     hole("7s", "7h"),
			board:    cards("7d", "7c", "Kd", "2c", "3s"),
			category: FourOfAKind,
			score:    1000 + int(Seven),
			desc:     "Four Sevens",
		},
		{
			name:     "full house trips plus pair",
			hole:     hole("Kh", "Kd"),
			board:    cards("Ks", "Qc", "Qd", "4h", "2s"),
			category: FullHouse,
			score:    800 + int(King)*13 + int(Queen),
			desc:     "Full House, Kings full of Queens",
		},
		{
			name:     "double trips prefer higher as trips",
			hole:     hole("3h", "3d"),
			board:    cards("3s", "9c", "9d", "9h", "2s"),
			category: FullHouse,
			score:    800 + int(Nine)*13 + int(Three),
			desc:     "Full House, Nines full of Threes",
		},
		{
			name:     "flush king high",
			hole:     hole("Kc", "4c"),
			board:    cards("9c", "7c", "2c", "Ad", "Ah"),
			category: Flush,
			score:    700 + int(King),
		},
		{
			name:     "wheel straight",
			hole:     hole("Ah", "2d"),
			board:    cards("3c", "4s", "5h", "Kd", "Kc"),
			category: Straight,
			score:    600 + int(Five),
			desc:     "Straight, Five high",
		},
		{
			name:     "broadway straight",
			hole:     hole("Ah", "Kd"),
			board:    cards("Qc", "Js", "Th", "2d", "3c"),
			category: Straight,
			score:    600 + int(Ace),
		},
		{
			name:     "trips",
			hole:     hole("8h", "8d"),
			board:    cards("8s", "Kc", "4d", "2h", "9s"),
			category: ThreeOfAKind,
			score:    500 + int(Eight),
			desc:     "Three Eights",
		},
		{
			name:     "two pair",
			hole:     hole("Jh", "Td"),
			board:    cards("Js", "Tc", "4d", "2h", "9s"),
			category: TwoPair,
			score:    300 + int(Jack)*13 + int(Ten),
			desc:     "Two Pair, Jacks and Tens",
		},
		{
			name:     "pair of sixes",
			hole:     hole("6h", "6d"),
			board:    cards("As", "Kc", "4d", "2h", "9s"),
			category: Pair,
			score:    200 + int(Six),
			desc:     "Pair of Sixes",
		},
		{
			name:     "ace high",
			hole:     hole("Ah", "7d"),
			board:    cards("Ks", "Qc", "4d", "2h", "9s"),
			category: HighCard,
			score:    100 + int(Ace),
			desc:     "Ace high",
		},
		{
			name:     "preflop pair only",
			hole:     hole("Qh", "Qd"),
			board:    nil,
			category: Pair,
			score:    200 + int(Queen),
		},
	}

	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ev := Evaluate(tc.hole, tc.board)
			if ev.Category != tc.category {
				t.Errorf("category = %v, want %v", ev.Category, tc.category)
			}
			if ev.Score != tc.score {
				t.Errorf("score = %d, want %d", ev.Score, tc.score)
			}
			if tc.desc != "" && ev.Description != tc.desc {
				t.Errorf("description = %q, want %q", ev.Description, tc.desc)
			}
		})
	}
}

func TestStrengthOrdersKickers(t *testing.T) {
	t.Parallel()
	board := cards("Ks", "8c", "4d", "2h", "9s")

	// Both make a pair of kings; the ace kicker must win.
	aceKicker := Evaluate(hole("Kh", "Ad"), board)
	queenKicker := Evaluate(hole("Kd", "Qd"), board)

	if aceKicker.Score != queenKicker.Score {
		t.Fatalf("coarse scores should tie: %d vs %d", aceKicker.Score, queenKicker.Score)
	}
	if Compare(aceKicker, queenKicker) != 1 {
		t.Error("ace kicker should outrank queen kicker")
	}
	if Compare(queenKicker, aceKicker) != -1 {
		t.Error("queen kicker should lose to ace kicker")
	}
}

func TestStrengthTotalOrderAcrossCategories(t *testing.T) {
	t.Parallel()
	ladder := []Evaluation{
		Evaluate(hole("Ah", "7d"), cards("Ks", "Qc", "4d", "2h", "9s")), // high card
		Evaluate(hole("6h", "6d"), cards("As", "Kc", "4d", "2h", "9s")), // pair
		Evaluate(hole("Jh", "Td"), cards("Js", "Tc", "4d", "2h", "9s")), // two pair
		Evaluate(hole("8h", "8d"), cards("8s", "Kc", "4d", "2h", "9s")), // trips
		Evaluate(hole("Ah", "2d"), cards("3c", "4s", "5h", "Kd", "Kc")), // straight
		Evaluate(hole("Kc", "4c"), cards("9c", "7c", "2c", "Ad", "Ah")), // flush
		Evaluate(hole("Kh", "Kd"), cards("Ks", "Qc", "Qd", "4h", "2s")), // full house
		Evaluate(hole("7s", "7h"), cards("7d", "7c", "Kd", "2c", "3s")), // quads
		Evaluate(hole("9h", "8h"), cards("7h", "6h", "5h", "Ad", "Ac")), // straight flush
		Evaluate(hole("As", "Ks"), cards("Qs", "Js", "Ts", "2d", "7c")), // royal
	}

	for i := 1; i < len(ladder); i++ {
		if ladder[i].Strength <= ladder[i-1].Strength {
			t.Errorf("%v should outrank %v", ladder[i].Category, ladder[i-1].Category)
		}
	}
}

func TestCompareTies(t *testing.T) {
	t.Parallel()
	board := cards("As", "Kc", "Qd", "Jh", "Ts")

	// Board plays for both: identical broadway straights.
	a := Evaluate(hole("2h", "3d"), board)
	b := Evaluate(hole("4h", "5d"), board)
	if Compare(a, b) != 0 {
		t.Errorf("board-plays hands should tie, got %d", Compare(a, b))
	}
}

func TestWheelLosesToSixHighStraight(t *testing.T) {
	t.Parallel()
	board := cards("3c", "4s", "5h", "Kd", "Kc")
	wheel := Evaluate(hole("Ah", "2d"), board)
	sixHigh := Evaluate(hole("6h", "2d"), board)

	if Compare(sixHigh, wheel) != 1 {
		t.Error("six-high straight should beat the wheel")
	}
}
