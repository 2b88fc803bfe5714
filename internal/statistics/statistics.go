// Package statistics aggregates results across batches of simulated
// training sessions.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// SessionResult represents the outcome of one simulated training session
type SessionResult struct {
	Profit        float64 // Net chips won or lost over the session
	Seed          int64   // RNG seed for this session (for replay)
	HandsPlayed   int     // Hands completed before the session ended
	ReachedTarget bool    // Did the session hit the profit target?
	OverallScore  int     // Decision quality score (0-100)
	TScore        int     // Transparency score (0-100)
	Archetype     string  // Classified player archetype
}

// Statistics tracks comprehensive simulation statistics across sessions
type Statistics struct {
	Sessions int
	Sum      float64
	Sum2     float64   // Sum of squares for variance calculation
	Values   []float64 // Store all profits for median/percentile calculation

	TargetsReached int
	TotalHands     int
	ScoreSum       float64
	TScoreSum      float64

	// Archetype distribution over all sessions
	Archetypes map[string]int

	MaxProfit float64
	MinProfit float64
}

// Add incorporates a new session result into the statistics
func (s *Statistics) Add(result SessionResult) {
	profit := result.Profit
	s.Sessions++
	s.Sum += profit
	s.Sum2 += profit * profit
	s.Values = append(s.Values, profit)

	if result.ReachedTarget {
		s.TargetsReached++
	}
	s.TotalHands += result.HandsPlayed
	s.ScoreSum += float64(result.OverallScore)
	s.TScoreSum += float64(result.TScore)

	if result.Archetype != "" {
		if s.Archetypes == nil {
			s.Archetypes = make(map[string]int)
		}
		s.Archetypes[result.Archetype]++
	}

	if s.Sessions == 1 || profit > s.MaxProfit {
		s.MaxProfit = profit
	}
	if s.Sessions == 1 || profit < s.MinProfit {
		s.MinProfit = profit
	}
}

// Mean returns the arithmetic mean profit per session
func (s *Statistics) Mean() float64 {
	if s.Sessions == 0 {
		return 0
	}
	return s.Sum / float64(s.Sessions)
}

// Variance returns the sample variance of session profits
func (s *Statistics) Variance() float64 {
	if s.Sessions < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.Sessions)*mean*mean) / float64(s.Sessions-1)
}

// StdDev returns the sample standard deviation of session profits
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Sessions == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Sessions))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median session profit
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the profit at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// TargetRate returns the fraction of sessions that hit their profit target
func (s *Statistics) TargetRate() float64 {
	if s.Sessions == 0 {
		return 0
	}
	return float64(s.TargetsReached) / float64(s.Sessions)
}

// MeanScore returns the mean decision quality score per session
func (s *Statistics) MeanScore() float64 {
	if s.Sessions == 0 {
		return 0
	}
	return s.ScoreSum / float64(s.Sessions)
}

// MeanTScore returns the mean transparency score per session
func (s *Statistics) MeanTScore() float64 {
	if s.Sessions == 0 {
		return 0
	}
	return s.TScoreSum / float64(s.Sessions)
}

// MeanHands returns the mean hands played per session
func (s *Statistics) MeanHands() float64 {
	if s.Sessions == 0 {
		return 0
	}
	return float64(s.TotalHands) / float64(s.Sessions)
}

// Validate performs consistency checks on the accumulated data
func (s *Statistics) Validate() error {
	if s.Sessions <= 0 {
		return fmt.Errorf("invalid session count: %d", s.Sessions)
	}
	if len(s.Values) != s.Sessions {
		return fmt.Errorf("values array length (%d) does not match session count (%d)",
			len(s.Values), s.Sessions)
	}
	if s.TargetsReached > s.Sessions {
		return fmt.Errorf("targets reached (%d) exceeds session count (%d)",
			s.TargetsReached, s.Sessions)
	}
	archetypeTotal := 0
	for _, n := range s.Archetypes {
		archetypeTotal += n
	}
	if archetypeTotal > s.Sessions {
		return fmt.Errorf("archetype total (%d) exceeds session count (%d)",
			archetypeTotal, s.Sessions)
	}
	return nil
}
