package poker

import (
	"math/bits"
	rand "math/rand/v2"
	"testing"
)

func TestCardRoundTrip(t *testing.T) {
	t.Parallel()
	seen := make(map[string]bool)

	for suit := uint8(0); suit < 4; suit++ {
		for rank := uint8(0); rank < 13; rank++ {
			card := NewCard(rank, suit)
			if bits.OnesCount64(uint64(card)) != 1 {
				t.Fatalf("card %v is not a single bit", card)
			}

			str := card.String()
			if seen[str] {
				t.Errorf("duplicate encoding %s", str)
			}
			seen[str] = true

			parsed, err := ParseCard(str)
			if err != nil {
				t.Fatalf("ParseCard(%q): %v", str, err)
			}
			if parsed != card {
				t.Errorf("round-trip failed for %s", str)
			}
			if parsed.Rank() != rank || parsed.Suit() != suit {
				t.Errorf("%s decoded to rank %d suit %d", str, parsed.Rank(), parsed.Suit())
			}
		}
	}

	if len(seen) != 52 {
		t.Errorf("expected 52 unique cards, got %d", len(seen))
	}
}

func TestParseCardErrors(t *testing.T) {
	t.Parallel()
	for _, input := range []string{"", "A", "Asd", "Xs", "Ax", "1h"} {
		if _, err := ParseCard(input); err == nil {
			t.Errorf("ParseCard(%q) should error", input)
		}
	}
}

func TestHandOperations(t *testing.T) {
	t.Parallel()
	as := MustParseCard("As")
	kh := MustParseCard("Kh")
	qd := MustParseCard("Qd")

	hand := NewHand(as, kh)
	if !hand.HasCard(as) || !hand.HasCard(kh) {
		t.Error("hand missing its own cards")
	}
	if hand.HasCard(qd) {
		t.Error("hand should not contain Qd")
	}
	if hand.CountCards() != 2 {
		t.Errorf("expected 2 cards, got %d", hand.CountCards())
	}

	hand.AddCard(qd)
	if !hand.HasCard(qd) || hand.CountCards() != 3 {
		t.Error("AddCard failed")
	}
}

func TestSuitAndRankMasks(t *testing.T) {
	t.Parallel()
	var cards []Card
	for rank := uint8(0); rank < 13; rank++ {
		cards = append(cards, NewCard(rank, Spades))
	}
	hand := NewHand(cards...)

	if hand.GetSuitMask(Spades) != 0x1FFF {
		t.Errorf("spades mask = %013b", hand.GetSuitMask(Spades))
	}
	if hand.GetSuitMask(Hearts) != 0 {
		t.Error("hearts should be empty")
	}
	if hand.GetRankMask() != 0x1FFF {
		t.Errorf("rank mask = %013b", hand.GetRankMask())
	}
}

func TestDeckDealsUniqueCards(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(7, 11))

	for trial := 0; trial < 10000; trial++ {
		deck := NewDeck(rng)
		dealt := deck.Deal(9) // hero 2 + villain 2 + board 5
		if len(dealt) != 9 {
			t.Fatalf("trial %d: dealt %d cards", trial, len(dealt))
		}
		if NewHand(dealt...).CountCards() != 9 {
			t.Fatalf("trial %d: duplicate card in deal %v", trial, dealt)
		}
	}
}

func TestDeckExhaustion(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(1, 2))
	deck := NewDeck(rng)

	all := deck.Deal(52)
	if NewHand(all...).CountCards() != 52 {
		t.Fatal("full deal should contain every card once")
	}
	if deck.Deal(1) != nil {
		t.Error("empty deck should deal nil")
	}
	if deck.DealOne() != 0 {
		t.Error("empty deck should deal zero card")
	}

	deck.Reset()
	if deck.CardsRemaining() != 52 {
		t.Errorf("reset deck has %d cards", deck.CardsRemaining())
	}
}

func BenchmarkEvaluate(b *testing.B) {
	hole := [2]Card{MustParseCard("As"), MustParseCard("Ks")}
	board := []Card{
		MustParseCard("Qs"), MustParseCard("Js"), MustParseCard("Ts"),
		MustParseCard("2d"), MustParseCard("7c"),
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Evaluate(hole, board)
	}
}
