// Package analysis derives the post-session report: decision grades, play
// style, the transparency score, and the player archetype.
package analysis

import (
	"math"
	"sort"

	"github.com/lox/pokertrainer/internal/game"
	"github.com/lox/pokertrainer/poker"
)

// ScareType identifies what a scare card threatens to complete.
type ScareType string

const (
	FlushCompleting    ScareType = "flush-completing"
	StraightCompleting ScareType = "straight-completing"
)

// BigBet is a hero bet above 70% of the pot at the time it was made.
type BigBet struct {
	Street            game.Street
	BetSizeRatio      float64
	HandStrengthAtBet float64
}

// ScareEvent records whether the hero bet after a scare card arrived, and
// whether the hero actually held the hand the card threatened.
type ScareEvent struct {
	Street            game.Street
	Type              ScareType
	HeroBetAfterScare bool
	HeroHadTheHand    bool
}

// DataPoint is the per-hand input to the transparency pillars.
type DataPoint struct {
	HandNumber         int
	NormalizedStrength float64
	InvestmentRatio    float64
	WentToShowdown     bool
	BigBets            []BigBet
	ScareEvents        []ScareEvent
}

// Confidence grades how much showdown data backs a transparency score.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// TransparencyScore is the composite honesty reading for a session. Higher
// means the player's betting reveals their hand; lower means deception.
type TransparencyScore struct {
	Linearity    int
	Polarization int
	BoardTexture int
	TScore       int
	DataPoints   int
	Confidence   Confidence
}

// CollectDataPoint extracts the transparency signals from a finished hand.
func CollectDataPoint(hand game.HandState) DataPoint {
	heroFolded := false
	for _, entry := range hand.ActionHistory {
		if entry.Actor == game.ActorHero && entry.Action == "folds" {
			heroFolded = true
			break
		}
	}
	wentToShowdown := !heroFolded && hand.Street == game.Showdown

	strength := poker.Evaluate(hand.HeroCards, hand.FullBoard).Score
	normalized := clamp01(float64(strength-100) / 1100)

	investmentRatio := 0.0
	if hand.Pot > 0 {
		investmentRatio = clamp01(float64(hand.HeroInvested) / float64(hand.Pot))
	}

	return DataPoint{
		HandNumber:         hand.HandNumber,
		NormalizedStrength: normalized,
		InvestmentRatio:    investmentRatio,
		WentToShowdown:     wentToShowdown,
		BigBets:            collectBigBets(hand),
		ScareEvents:        collectScareEvents(hand),
	}
}

// collectBigBets replays the action log, tracking the pot as it grows, and
// records every hero wager above 70% of the pot it faced.
func collectBigBets(hand game.HandState) []BigBet {
	var bigBets []BigBet
	runningPot := 0

	for _, entry := range hand.ActionHistory {
		if entry.Actor == game.ActorHero && entry.Amount > 0 && runningPot > 0 {
			ratio := float64(entry.Amount) / float64(runningPot)
			if ratio > 0.7 {
				var strengthAtBet float64
				if entry.Street == game.Preflop {
					strengthAtBet = clamp01(poker.PreflopStrength(hand.HeroCards[0], hand.HeroCards[1]) / 100)
				} else {
					board := boardAtStreet(hand.FullBoard, entry.Street)
					score := poker.Evaluate(hand.HeroCards, board).Score
					strengthAtBet = clamp01(float64(score-100) / 1100)
				}
				bigBets = append(bigBets, BigBet{
					Street:            entry.Street,
					BetSizeRatio:      ratio,
					HandStrengthAtBet: strengthAtBet,
				})
			}
		}
		if entry.Amount > 0 {
			runningPot += entry.Amount
		}
	}
	return bigBets
}

func boardAtStreet(fullBoard []poker.Card, street game.Street) []poker.Card {
	switch street {
	case game.Flop:
		return fullBoard[:3]
	case game.Turn:
		return fullBoard[:4]
	case game.River, game.Showdown:
		return fullBoard[:5]
	default:
		return nil
	}
}

// collectScareEvents checks the turn and river cards against the board they
// landed on and records whether the hero bet into each scare.
func collectScareEvents(hand game.HandState) []ScareEvent {
	var events []ScareEvent

	record := func(street game.Street, prevBoard []poker.Card, newCard poker.Card) {
		heroBet := false
		for _, entry := range hand.ActionHistory {
			if entry.Actor == game.ActorHero && entry.Street == street && entry.Amount > 0 {
				heroBet = true
				break
			}
		}
		for _, scare := range detectScareCards(prevBoard, newCard, hand.HeroCards) {
			events = append(events, ScareEvent{
				Street:            street,
				Type:              scare.scareType,
				HeroBetAfterScare: heroBet,
				HeroHadTheHand:    scare.heroHasIt,
			})
		}
	}

	if len(hand.FullBoard) >= 4 {
		record(game.Turn, hand.FullBoard[:3], hand.FullBoard[3])
	}
	if len(hand.FullBoard) >= 5 {
		record(game.River, hand.FullBoard[:4], hand.FullBoard[4])
	}
	return events
}

type scareResult struct {
	scareType ScareType
	heroHasIt bool
}

// detectScareCards reports whether newCard puts a third flush card or a
// straight-completing rank on the board, and whether the hero's actual hand
// benefits from it.
func detectScareCards(prevBoard []poker.Card, newCard poker.Card, heroCards [2]poker.Card) []scareResult {
	var results []scareResult

	suited := 0
	for _, c := range prevBoard {
		if c.Suit() == newCard.Suit() {
			suited++
		}
	}
	if suited >= 2 {
		board := append(append([]poker.Card(nil), prevBoard...), newCard)
		results = append(results, scareResult{
			scareType: FlushCompleting,
			heroHasIt: heroContributesFlush(heroCards, board),
		})
	}

	newRank := int(newCard.Rank())
	seen := map[int]bool{newRank: true}
	ranks := []int{newRank}
	for _, c := range prevBoard {
		r := int(c.Rank())
		if !seen[r] {
			seen[r] = true
			ranks = append(ranks, r)
		}
	}
	sort.Ints(ranks)
	if seen[int(poker.Ace)] {
		ranks = append([]int{-1}, ranks...)
	}

	for i := 0; i+2 < len(ranks); i++ {
		window := ranks[i] == newRank || ranks[i+1] == newRank || ranks[i+2] == newRank ||
			(newRank == int(poker.Ace) && ranks[i] == -1)
		if ranks[i+2]-ranks[i] == 2 && window {
			board := append(append([]poker.Card(nil), prevBoard...), newCard)
			eval := poker.Evaluate(heroCards, board)
			results = append(results, scareResult{
				scareType: StraightCompleting,
				heroHasIt: eval.Category == poker.Straight,
			})
			break
		}
	}
	return results
}

// heroContributesFlush reports whether a five-card flush exists that includes
// at least one hero card.
func heroContributesFlush(heroCards [2]poker.Card, board []poker.Card) bool {
	var counts [4]int
	for _, c := range heroCards {
		counts[c.Suit()]++
	}
	for _, c := range board {
		counts[c.Suit()]++
	}
	for suit := range uint8(4) {
		if counts[suit] < 5 {
			continue
		}
		if heroCards[0].Suit() == suit || heroCards[1].Suit() == suit {
			return true
		}
	}
	return false
}

// pearson computes the correlation coefficient of two equal-length series.
// Fewer than three points or a degenerate series yields zero.
func pearson(xs, ys []float64) float64 {
	n := float64(len(xs))
	if len(xs) < 3 {
		return 0
	}
	var sumX, sumY, sumXY, sumX2, sumY2 float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumX2 += xs[i] * xs[i]
		sumY2 += ys[i] * ys[i]
	}
	denominator := math.Sqrt((n*sumX2 - sumX*sumX) * (n*sumY2 - sumY*sumY))
	if denominator == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denominator
}

// linearityScore correlates hand strength with pot investment over showdown
// hands. Honest players invest in proportion to strength.
func linearityScore(data []DataPoint) int {
	var strengths, investments []float64
	for _, d := range data {
		if d.WentToShowdown {
			strengths = append(strengths, d.NormalizedStrength)
			investments = append(investments, d.InvestmentRatio)
		}
	}
	if len(strengths) < 3 {
		return 50
	}
	r := pearson(strengths, investments)
	return int(math.Round(math.Max(0, math.Min(100, (r+1)*50))))
}

// polarizationScore looks at the hands behind big bets. All value is
// transparent; all air is deceptive; a mix of both is a polarized, hard to
// read range.
func polarizationScore(data []DataPoint) int {
	var all []BigBet
	for _, d := range data {
		all = append(all, d.BigBets...)
	}
	if len(all) == 0 {
		return 50
	}

	total := float64(len(all))
	strong, weak := 0.0, 0.0
	for _, b := range all {
		if b.HandStrengthAtBet >= 0.6 {
			strong++
		}
		if b.HandStrengthAtBet <= 0.2 {
			weak++
		}
	}
	strongRatio := strong / total
	weakRatio := weak / total

	if weakRatio == 0 {
		return int(math.Round(70 + strongRatio*30))
	}
	if strongRatio == 0 {
		return int(math.Round(20 * (1 - weakRatio)))
	}
	polarization := math.Min(strongRatio, weakRatio) * 2
	return int(math.Round(50 - polarization*40))
}

// boardTextureScore measures how often a bet into a scare card was backed by
// the hand the card threatened to complete.
func boardTextureScore(data []DataPoint) int {
	betting, truthful := 0, 0
	for _, d := range data {
		for _, e := range d.ScareEvents {
			if e.HeroBetAfterScare {
				betting++
				if e.HeroHadTheHand {
					truthful++
				}
			}
		}
	}
	if betting == 0 {
		return 50
	}
	return int(math.Round(float64(truthful) / float64(betting) * 100))
}

// ScoreTransparency combines the three pillars into the composite T-score.
func ScoreTransparency(data []DataPoint) TransparencyScore {
	linearity := linearityScore(data)
	polarization := polarizationScore(data)
	texture := boardTextureScore(data)

	tScore := int(math.Round(float64(linearity)*0.6 + float64(polarization)*0.3 + float64(texture)*0.1))

	showdowns := 0
	for _, d := range data {
		if d.WentToShowdown {
			showdowns++
		}
	}
	confidence := ConfidenceLow
	switch {
	case showdowns >= 13:
		confidence = ConfidenceHigh
	case showdowns >= 5:
		confidence = ConfidenceMedium
	}

	return TransparencyScore{
		Linearity:    linearity,
		Polarization: polarization,
		BoardTexture: texture,
		TScore:       tScore,
		DataPoints:   len(data),
		Confidence:   confidence,
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
