package poker

import "math"

// PreflopStrength scores two hole cards on a rough 20-98 scale. Pocket aces
// score 98; unsuited junk bottoms out just above 20.
func PreflopStrength(a, b Card) float64 {
	v1 := int(a.Rank())
	v2 := int(b.Rank())
	suited := a.Suit() == b.Suit()

	high := max(v1, v2)
	low := min(v1, v2)

	// Pocket pairs: AA = 98, KK = 96.5, and so on down
	if v1 == v2 {
		return 80 + float64(high)*1.5
	}

	// Ace-high hands
	if high == int(Ace) {
		switch {
		case low >= int(King):
			if suited {
				return 95
			}
			return 92
		case low >= int(Queen):
			if suited {
				return 88
			}
			return 82
		case low >= int(Ten):
			if suited {
				return 75
			}
			return 65
		default:
			if suited {
				return 60
			}
			return 45
		}
	}

	// Broadway
	if high >= int(Queen) && low >= int(Jack) {
		if suited {
			return 70 + float64(high-int(Queen))*3
		}
		return 60 + float64(high-int(Queen))*3
	}

	gap := high - low

	if suited && gap <= 2 {
		return 55 + float64(high)
	}
	if suited {
		return 40 + float64(high)
	}
	if gap <= 2 {
		return 35 + float64(high)
	}

	return 20 + float64(high)
}

// HoleCategory buckets hole cards by preflop strength for display.
type HoleCategory string

const (
	CategoryPremium  HoleCategory = "Premium"
	CategoryStrong   HoleCategory = "Strong"
	CategoryPlayable HoleCategory = "Playable"
	CategoryWeak     HoleCategory = "Weak"
	CategoryTrash    HoleCategory = "Trash"
)

// CategorizeHoleCards buckets a starting hand using the same scale the
// preflop heuristics run on.
func CategorizeHoleCards(a, b Card) HoleCategory {
	s := PreflopStrength(a, b)
	switch {
	case s >= 80:
		return CategoryPremium
	case s >= 65:
		return CategoryStrong
	case s >= 45:
		return CategoryPlayable
	case s >= 30:
		return CategoryWeak
	default:
		return CategoryTrash
	}
}

// PotOdds returns the call price as a percentage of the resulting pot,
// rounded to the nearest whole number. A free check is 0.
func PotOdds(pot, toCall int) int {
	if toCall == 0 {
		return 0
	}
	return int(math.Round(float64(toCall) / float64(pot+toCall) * 100))
}

// EstimateEquity approximates win probability from outs using the rule of
// four and two: roughly 4% per out with two streets to come, 2% with one.
func EstimateEquity(outs, streetsRemaining int) int {
	if streetsRemaining == 2 {
		return min(outs*4, 100)
	}
	return min(outs*2, 100)
}
