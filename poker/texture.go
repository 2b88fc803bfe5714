package poker

import "math/bits"

// Texture summarizes how coordinated a board is. The decision heuristics
// key off flush density, pairing, and low-spread connectivity.
type Texture struct {
	MaxSuitCount int
	Paired       bool
	Connected    bool
}

// FourFlush reports four or more cards of one suit on the board.
func (t Texture) FourFlush() bool { return t.MaxSuitCount >= 4 }

// ThreeFlush reports exactly three cards of one suit on the board.
func (t Texture) ThreeFlush() bool { return t.MaxSuitCount == 3 }

// AnalyzeTexture inspects the board cards for flush, pairing, and
// connectivity danger signs. Boards under three cards read as dry.
func AnalyzeTexture(board []Card) Texture {
	h := NewHand(board...)

	var t Texture
	var rankCounts [13]int
	for suit := uint8(0); suit < 4; suit++ {
		sm := h.GetSuitMask(suit)
		if n := bits.OnesCount16(sm); n > t.MaxSuitCount {
			t.MaxSuitCount = n
		}
		for rank := uint8(0); rank < 13; rank++ {
			if sm&(1<<rank) != 0 {
				rankCounts[rank]++
			}
		}
	}

	for _, n := range rankCounts {
		if n >= 2 {
			t.Paired = true
			break
		}
	}

	// Connected when the three lowest board ranks span four or fewer steps.
	ranks := make([]int, 0, len(board))
	for rank := 0; rank < 13; rank++ {
		for i := 0; i < rankCounts[rank]; i++ {
			ranks = append(ranks, rank)
		}
	}
	if len(ranks) >= 3 && ranks[2]-ranks[0] <= 4 {
		t.Connected = true
	}

	return t
}
