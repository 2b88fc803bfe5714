package poker

import (
	"fmt"
	"math/bits"
)

// Category enumerates hand categories from weakest to strongest.
type Category uint8

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// Evaluation is the result of evaluating hole cards against a board.
//
// Strength is a total order over all hands: category first, then up to five
// kicker ranks packed in base 15. Score is the coarse 100-1200 scale the
// decision heuristics and the transparency normalization are calibrated
// against; it ignores kickers and must not be used to break ties.
type Evaluation struct {
	Category    Category
	Strength    int64
	Score       int
	Description string
}

// Compare returns 1 if a beats b, -1 if b beats a, 0 on an exact tie.
func Compare(a, b Evaluation) int {
	switch {
	case a.Strength > b.Strength:
		return 1
	case a.Strength < b.Strength:
		return -1
	default:
		return 0
	}
}

// encodeStrength packs a category and up to five kicker ranks (0-12,
// descending significance) into a single comparable int64.
func encodeStrength(cat Category, kickers ...uint8) int64 {
	s := int64(cat)
	for i := 0; i < 5; i++ {
		s *= 15
		if i < len(kickers) {
			s += int64(kickers[i])
		}
	}
	return s
}

// Evaluate returns the best hand made from two hole cards and 0-5 board
// cards. Aces play high and low; with fewer than five total cards only pair
// and high-card categories are reachable.
func Evaluate(hole [2]Card, board []Card) Evaluation {
	all := NewHand(hole[0], hole[1])
	for _, c := range board {
		all.AddCard(c)
	}

	var suitMasks [4]uint16
	var rankMaskAll uint16
	for suit := uint8(0); suit < 4; suit++ {
		suitMasks[suit] = all.GetSuitMask(suit)
		rankMaskAll |= suitMasks[suit]
	}

	// Straight flush and royal flush
	for _, sm := range suitMasks {
		if bits.OnesCount16(sm) >= 5 {
			if high := straightHigh(sm); high > 0 {
				if high == Ace {
					return Evaluation{
						Category:    RoyalFlush,
						Strength:    encodeStrength(RoyalFlush),
						Score:       1200,
						Description: "Royal Flush",
					}
				}
				return Evaluation{
					Category:    StraightFlush,
					Strength:    encodeStrength(StraightFlush, high),
					Score:       1100 + int(high),
					Description: fmt.Sprintf("Straight Flush, %s high", rankName(high)),
				}
			}
		}
	}

	// Rank multiplicities via suit-mask intersections
	s0, s1, s2, s3 := suitMasks[0], suitMasks[1], suitMasks[2], suitMasks[3]
	quadsMask := s0 & s1 & s2 & s3
	tripCandidates := (s0 & s1 & s2) | (s0 & s1 & s3) | (s0 & s2 & s3) | (s1 & s2 & s3)
	tripsMask := tripCandidates &^ quadsMask
	pairsMask := ((s0 & s1) | (s0 & s2) | (s0 & s3) | (s1 & s2) | (s1 & s3) | (s2 & s3)) &^ tripCandidates

	if q := topRank(quadsMask); q >= 0 {
		quad := uint8(q)
		kicker := topKicker(rankMaskAll, 1<<quad)
		return Evaluation{
			Category:    FourOfAKind,
			Strength:    encodeStrength(FourOfAKind, quad, kicker),
			Score:       1000 + int(quad),
			Description: fmt.Sprintf("Four %s", rankPlural(quad)),
		}
	}

	if t := topRank(tripsMask); t >= 0 {
		trip := uint8(t)
		// The pair half of a full house may come from a second set of trips.
		pairCandidates := pairsMask | (tripsMask &^ (1 << trip))
		if p := topRank(pairCandidates); p >= 0 {
			pair := uint8(p)
			return Evaluation{
				Category:    FullHouse,
				Strength:    encodeStrength(FullHouse, trip, pair),
				Score:       800 + int(trip)*13 + int(pair),
				Description: fmt.Sprintf("Full House, %s full of %s", rankPlural(trip), rankPlural(pair)),
			}
		}
	}

	for _, sm := range suitMasks {
		if bits.OnesCount16(sm) >= 5 {
			top := topRanks(sm, 5)
			return Evaluation{
				Category:    Flush,
				Strength:    encodeStrength(Flush, top...),
				Score:       700 + int(top[0]),
				Description: fmt.Sprintf("Flush, %s high", rankName(top[0])),
			}
		}
	}

	if high := straightHigh(rankMaskAll); high > 0 {
		return Evaluation{
			Category:    Straight,
			Strength:    encodeStrength(Straight, high),
			Score:       600 + int(high),
			Description: fmt.Sprintf("Straight, %s high", rankName(high)),
		}
	}

	if t := topRank(tripsMask); t >= 0 {
		trip := uint8(t)
		kickers := topRanks(rankMaskAll&^(1<<trip), 2)
		return Evaluation{
			Category:    ThreeOfAKind,
			Strength:    encodeStrength(ThreeOfAKind, append([]uint8{trip}, kickers...)...),
			Score:       500 + int(trip),
			Description: fmt.Sprintf("Three %s", rankPlural(trip)),
		}
	}

	if hi := topRank(pairsMask); hi >= 0 {
		hiPair := uint8(hi)
		if lo := topRank(pairsMask &^ (1 << hiPair)); lo >= 0 {
			loPair := uint8(lo)
			kicker := topKicker(rankMaskAll, (1<<hiPair)|(1<<loPair))
			return Evaluation{
				Category:    TwoPair,
				Strength:    encodeStrength(TwoPair, hiPair, loPair, kicker),
				Score:       300 + int(hiPair)*13 + int(loPair),
				Description: fmt.Sprintf("Two Pair, %s and %s", rankPlural(hiPair), rankPlural(loPair)),
			}
		}
		kickers := topRanks(rankMaskAll&^(1<<hiPair), 3)
		return Evaluation{
			Category:    Pair,
			Strength:    encodeStrength(Pair, append([]uint8{hiPair}, kickers...)...),
			Score:       200 + int(hiPair),
			Description: fmt.Sprintf("Pair of %s", rankPlural(hiPair)),
		}
	}

	top := topRanks(rankMaskAll, 5)
	return Evaluation{
		Category:    HighCard,
		Strength:    encodeStrength(HighCard, top...),
		Score:       100 + int(top[0]),
		Description: fmt.Sprintf("%s high", rankName(top[0])),
	}
}

// straightHigh returns the high rank of the best straight in a 13-bit rank
// mask, 3 for the wheel, or 0 when no straight exists.
func straightHigh(mask uint16) uint8 {
	const wheel = 0x100F // Ace + 2-3-4-5
	mask &= rankMask

	// The bitwise cascade finds five consecutive set bits in one pass.
	seq := mask & (mask >> 1) & (mask >> 2) & (mask >> 3) & (mask >> 4)
	if seq != 0 {
		return uint8(bits.Len16(seq)-1) + 4
	}
	if mask&wheel == wheel {
		return Five
	}
	return 0
}

// topRank returns the highest rank present in the mask, or -1 when empty.
func topRank(mask uint16) int {
	if mask == 0 {
		return -1
	}
	return bits.Len16(mask) - 1
}

// topKicker returns the highest rank present outside the excluded set.
func topKicker(mask, exclude uint16) uint8 {
	avail := mask &^ exclude
	if avail == 0 {
		return 0
	}
	return uint8(bits.Len16(avail) - 1)
}

// topRanks returns up to n ranks from the mask in descending order, padded
// with zeros when fewer ranks are present.
func topRanks(mask uint16, n int) []uint8 {
	ranks := make([]uint8, 0, n)
	for len(ranks) < n {
		if mask == 0 {
			ranks = append(ranks, 0)
			continue
		}
		top := uint8(bits.Len16(mask) - 1)
		ranks = append(ranks, top)
		mask &^= 1 << top
	}
	return ranks
}
