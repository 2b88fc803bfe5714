// Package poker provides card primitives and hand evaluation for heads-up
// no-limit hold'em. Cards are bit-packed into a uint64 with 13 bits per suit
// so hands combine and compare with plain bitwise operations.
package poker

import (
	"fmt"
	"math/bits"
)

// Card is a single card as a bit position in a uint64.
// Layout: [13 spades][13 hearts][13 diamonds][13 clubs]
type Card uint64

// Hand is a set of cards: a uint64 with one bit per card.
type Hand uint64

// Suit constants
const (
	Clubs    uint8 = 0
	Diamonds uint8 = 1
	Hearts   uint8 = 2
	Spades   uint8 = 3
)

// Rank constants (0-12 for 2-A)
const (
	Two   uint8 = 0
	Three uint8 = 1
	Four  uint8 = 2
	Five  uint8 = 3
	Six   uint8 = 4
	Seven uint8 = 5
	Eight uint8 = 6
	Nine  uint8 = 7
	Ten   uint8 = 8
	Jack  uint8 = 9
	Queen uint8 = 10
	King  uint8 = 11
	Ace   uint8 = 12
)

const rankMask = 0x1FFF // 13 bits of ranks

// NewCard creates a card from rank and suit.
func NewCard(rank, suit uint8) Card {
	return Card(1) << (suit*13 + rank)
}

func (c Card) bitPosition() uint8 {
	if c == 0 {
		return 255
	}
	return uint8(bits.TrailingZeros64(uint64(c)))
}

// Rank returns the rank of the card (0-12), or 255 for the zero Card.
func (c Card) Rank() uint8 {
	pos := c.bitPosition()
	if pos == 255 {
		return 255
	}
	return pos % 13
}

// Suit returns the suit of the card (0-3), or 255 for the zero Card.
func (c Card) Suit() uint8 {
	pos := c.bitPosition()
	if pos == 255 {
		return 255
	}
	return pos / 13
}

// String returns the two-character representation, e.g. "As", "Kh".
func (c Card) String() string {
	const ranks = "23456789TJQKA"
	const suits = "cdhs"

	rank := c.Rank()
	suit := c.Suit()
	if rank > 12 || suit > 3 {
		return "??"
	}
	return string(ranks[rank]) + string(suits[suit])
}

// ParseCard parses a string like "As" into a Card.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("invalid card string: %q", s)
	}

	var rank uint8
	switch s[0] {
	case '2':
		rank = Two
	case '3':
		rank = Three
	case '4':
		rank = Four
	case '5':
		rank = Five
	case '6':
		rank = Six
	case '7':
		rank = Seven
	case '8':
		rank = Eight
	case '9':
		rank = Nine
	case 'T', 't':
		rank = Ten
	case 'J', 'j':
		rank = Jack
	case 'Q', 'q':
		rank = Queen
	case 'K', 'k':
		rank = King
	case 'A', 'a':
		rank = Ace
	default:
		return 0, fmt.Errorf("invalid rank: %c", s[0])
	}

	var suit uint8
	switch s[1] {
	case 'c', 'C':
		suit = Clubs
	case 'd', 'D':
		suit = Diamonds
	case 'h', 'H':
		suit = Hearts
	case 's', 'S':
		suit = Spades
	default:
		return 0, fmt.Errorf("invalid suit: %c", s[1])
	}

	return NewCard(rank, suit), nil
}

// MustParseCard parses a card string and panics on error. Test helper.
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

// NewHand creates a hand from multiple cards.
func NewHand(cards ...Card) Hand {
	var h Hand
	for _, c := range cards {
		h |= Hand(c)
	}
	return h
}

// AddCard adds a card to the hand.
func (h *Hand) AddCard(c Card) {
	*h |= Hand(c)
}

// HasCard reports whether the hand contains a specific card.
func (h Hand) HasCard(c Card) bool {
	return (h & Hand(c)) != 0
}

// CountCards returns the number of cards in the hand.
func (h Hand) CountCards() int {
	return bits.OnesCount64(uint64(h))
}

// GetSuitMask returns the ranks of a specific suit as a 13-bit mask.
func (h Hand) GetSuitMask(suit uint8) uint16 {
	return uint16((h >> (suit * 13)) & rankMask)
}

// GetRankMask returns a 13-bit mask of which ranks are present.
func (h Hand) GetRankMask() uint16 {
	var mask uint16
	for suit := uint8(0); suit < 4; suit++ {
		mask |= h.GetSuitMask(suit)
	}
	return mask
}

// rankName returns the spelled-out rank for display strings.
func rankName(rank uint8) string {
	names := [...]string{
		"Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
		"Nine", "Ten", "Jack", "Queen", "King", "Ace",
	}
	if rank > 12 {
		return "?"
	}
	return names[rank]
}

// rankPlural returns the plural rank name ("Sixes", "Kings").
func rankPlural(rank uint8) string {
	if rank == Six {
		return "Sixes"
	}
	return rankName(rank) + "s"
}
