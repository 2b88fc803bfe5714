package poker

import "math/bits"

// OutsInfo describes the draws available to a hand and the total number of
// distinct cards that improve it.
type OutsInfo struct {
	Outs          int
	FlushDraw     bool
	OpenEnded     bool
	Gutshot       bool
	DoubleGutshot bool
	Overcards     bool
}

// HasStrongDraw reports a draw worth continuing with on most boards.
func (o OutsInfo) HasStrongDraw() bool {
	return o.FlushDraw || o.OpenEnded || o.DoubleGutshot
}

// CalculateOuts counts the cards that improve the hand. Flush draws need
// four of a suit with at least one hole card in it; straight completions are
// found by probing each absent rank; overcards only count when the hand has
// neither made a pair nor picked up a stronger draw. Outs are collected in a
// card bitmask so overlapping
// draws are never double-counted.
func CalculateOuts(hole [2]Card, board []Card) OutsInfo {
	var info OutsInfo
	if len(board) < 3 {
		return info
	}

	holeHand := NewHand(hole[0], hole[1])
	boardHand := NewHand(board...)
	all := holeHand | boardHand

	var outsMask Hand

	// Flush draw: exactly four of one suit with a hole card contributing
	for suit := range uint8(4) {
		holeCount := bits.OnesCount16(holeHand.GetSuitMask(suit))
		total := bits.OnesCount16(all.GetSuitMask(suit))
		if total == 4 && holeCount > 0 {
			info.FlushDraw = true
			avail := uint16(rankMask) &^ all.GetSuitMask(suit)
			outsMask |= Hand(avail) << (suit * 13)
		}
	}

	// Straight draws: probe every absent rank for a completed straight
	ranks := all.GetRankMask()
	if straightHigh(ranks) == 0 {
		var completing []uint8
		for rank := uint8(0); rank < 13; rank++ {
			if ranks&(1<<rank) != 0 {
				continue
			}
			if straightHigh(ranks|(1<<rank)) != 0 {
				completing = append(completing, rank)
			}
		}

		switch {
		case len(completing) >= 2:
			// Two completing ranks five apart bracket an open-ender;
			// otherwise two inside gaps form a double gutshot.
			if len(completing) == 2 && completing[1]-completing[0] == 5 {
				info.OpenEnded = true
			} else {
				info.DoubleGutshot = true
			}
		case len(completing) == 1:
			info.Gutshot = true
		}

		for _, rank := range completing {
			for suit := range uint8(4) {
				card := NewCard(rank, suit)
				if !all.HasCard(card) {
					outsMask |= Hand(card)
				}
			}
		}
	}

	// Overcards: only meaningful while the hand is still high-card and no
	// stronger draw is already there
	hasDraw := info.FlushDraw || info.OpenEnded || info.Gutshot || info.DoubleGutshot
	if !hasDraw && Evaluate(hole, board).Category == HighCard {
		highestBoard := uint8(bits.Len16(boardHand.GetRankMask()) - 1)
		holeRanks := holeHand.GetRankMask()
		var overMask Hand
		for rank := highestBoard + 1; rank <= Ace; rank++ {
			if holeRanks&(1<<rank) == 0 {
				continue
			}
			for suit := range uint8(4) {
				card := NewCard(rank, suit)
				if !all.HasCard(card) {
					overMask |= Hand(card)
				}
			}
		}
		if overMask != 0 {
			info.Overcards = true
			outsMask |= overMask
		}
	}

	info.Outs = outsMask.CountCards()
	return info
}
