package analysis

import (
	"fmt"
	"math"

	"github.com/lox/pokertrainer/internal/game"
)

// CategoryScore is optimal-decision count over total for one grading
// category, with a detail line per mistake.
type CategoryScore struct {
	Score   int
	Total   int
	Details []string
}

// ScoreBreakdown groups the session's decisions by grading category.
type ScoreBreakdown struct {
	PreflopDecisions  CategoryScore
	PostflopBetting   CategoryScore
	FoldingDiscipline CategoryScore
	ValueExtraction   CategoryScore
	PotOddsAccuracy   CategoryScore
}

// PlayStyle summarizes how the hero played. VPIP and PFR are percentages of
// preflop decisions; aggression is the bet-or-raise to call ratio.
type PlayStyle struct {
	VPIP       int
	PFR        int
	Aggression float64
}

// Result is the complete end-of-session report.
type Result struct {
	HandsPlayed     int
	Profit          int
	TargetProfit    int
	ReachedTarget   bool
	Decisions       []game.Decision
	Breakdown       ScoreBreakdown
	OverallScore    int
	PlayStyle       PlayStyle
	Strengths       []string
	Weaknesses      []string
	Recommendations []string
	Transparency    TransparencyScore
	Archetype       Archetype
	LastHand        *game.HandState
}

// Generate builds the full report from a finished session: graded decision
// categories, play style, the transparency score, and the archetype.
func Generate(state game.SessionState) Result {
	decisions := state.Decisions
	profit := state.CurrentStack - state.StartingStack

	var preflop, postflop, folds, value, calls []game.Decision
	for _, d := range decisions {
		if d.Street == game.Preflop {
			preflop = append(preflop, d)
		} else {
			postflop = append(postflop, d)
		}
		switch d.Action {
		case game.Fold:
			folds = append(folds, d)
		case game.Bet, game.Raise:
			value = append(value, d)
		case game.Call:
			calls = append(calls, d)
		}
	}

	breakdown := ScoreBreakdown{
		PreflopDecisions:  gradeCategory(preflop, true),
		PostflopBetting:   gradeCategory(postflop, true),
		FoldingDiscipline: gradeCategory(folds, true),
		ValueExtraction: CategoryScore{
			Score: countOptimal(value),
			Total: max(len(value), 1),
		},
		PotOddsAccuracy: CategoryScore{
			Score: countOptimal(calls),
			Total: max(len(calls), 1),
		},
	}

	overall := 0
	if len(decisions) > 0 {
		overall = roundPct(countOptimal(decisions), len(decisions))
	}

	vpip, pfr := 0, 0
	for _, d := range preflop {
		if d.Action != game.Fold {
			vpip++
		}
		if d.Action == game.Raise {
			pfr++
		}
	}
	style := PlayStyle{
		VPIP:       roundPct(vpip, max(len(preflop), 1)),
		PFR:        roundPct(pfr, max(len(preflop), 1)),
		Aggression: float64(len(value)) / float64(max(len(calls), 1)),
	}

	var strengths, weaknesses, recommendations []string
	preflopRatio := float64(breakdown.PreflopDecisions.Score) / float64(max(breakdown.PreflopDecisions.Total, 1))
	if preflopRatio >= 0.8 {
		strengths = append(strengths, "Strong preflop decision-making")
	} else {
		weaknesses = append(weaknesses, "Preflop decisions need work")
		recommendations = append(recommendations, "Review starting hand selection and position-based ranges")
	}
	if overall >= 70 {
		strengths = append(strengths, "Good overall decision quality")
	} else {
		weaknesses = append(weaknesses, "Many suboptimal decisions")
		recommendations = append(recommendations, "Focus on pot odds calculation before calling")
	}
	switch {
	case style.VPIP > 60:
		weaknesses = append(weaknesses, "Playing too many hands (loose)")
		recommendations = append(recommendations, "Tighten up your preflop range")
	case style.VPIP < 25:
		weaknesses = append(weaknesses, "Playing too few hands (tight)")
		recommendations = append(recommendations, "Look for more opportunities to play in position")
	default:
		strengths = append(strengths, "Balanced hand selection")
	}

	data := make([]DataPoint, 0, len(state.HandHistory))
	for _, hand := range state.HandHistory {
		data = append(data, CollectDataPoint(hand))
	}
	transparency := ScoreTransparency(data)

	var lastHand *game.HandState
	if n := len(state.HandHistory); n > 0 {
		lastHand = &state.HandHistory[n-1]
	}

	return Result{
		HandsPlayed:     state.HandsPlayed,
		Profit:          profit,
		TargetProfit:    state.TargetProfit,
		ReachedTarget:   profit >= state.TargetProfit,
		Decisions:       decisions,
		Breakdown:       breakdown,
		OverallScore:    overall,
		PlayStyle:       style,
		Strengths:       strengths,
		Weaknesses:      weaknesses,
		Recommendations: recommendations,
		Transparency:    transparency,
		Archetype:       Classify(style, transparency.TScore),
		LastHand:        lastHand,
	}
}

func gradeCategory(decisions []game.Decision, withDetails bool) CategoryScore {
	cat := CategoryScore{Total: len(decisions)}
	for _, d := range decisions {
		if d.WasOptimal {
			cat.Score++
		} else if withDetails {
			cat.Details = append(cat.Details, fmt.Sprintf("Hand %d: %s", d.HandNumber, d.Reasoning))
		}
	}
	return cat
}

func countOptimal(decisions []game.Decision) int {
	n := 0
	for _, d := range decisions {
		if d.WasOptimal {
			n++
		}
	}
	return n
}

func roundPct(part, total int) int {
	return int(math.Round(float64(part) / float64(total) * 100))
}
