package main

import (
	"context"
	"fmt"
	"io"
	rand "math/rand/v2"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokertrainer/internal/analysis"
	"github.com/lox/pokertrainer/internal/game"
	"github.com/lox/pokertrainer/internal/randutil"
	"github.com/lox/pokertrainer/internal/statistics"
)

type CLI struct {
	Sessions int    `default:"1000" help:"Number of sessions to simulate"`
	Hands    int    `default:"20" help:"Maximum hands per session"`
	Policy   string `default:"coach" help:"Hero policy: coach, call, random"`
	Seed     int64  `default:"0" help:"Master RNG seed (0 for random)"`
	Workers  int    `default:"0" help:"Parallel workers (0 for CPU count)"`
	Verbose  bool   `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kong.Description("Batch self-play simulator for the poker trainer"))

	level := log.WarnLevel
	if cli.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	policy, err := policyFor(cli.Policy)
	if err != nil {
		logger.Fatal("Invalid policy", "error", err)
	}

	seed := cli.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	workers := cli.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	fmt.Printf("Simulating %d sessions (%d hands each, policy=%s, seed=%d, workers=%d)\n\n",
		cli.Sessions, cli.Hands, cli.Policy, seed, workers)

	// Per-session seeds come from the master RNG so a run replays exactly
	masterRng := randutil.New(seed)
	seeds := make([]int64, cli.Sessions)
	for i := range seeds {
		seeds[i] = masterRng.Int64()
	}

	stats, err := runSimulation(seeds, cli.Hands, policy, workers)
	if err != nil {
		logger.Fatal("Simulation failed", "error", err)
	}
	if err := stats.Validate(); err != nil {
		logger.Fatal("Inconsistent statistics", "error", err)
	}

	printSummary(stats)
	ctx.Exit(0)
}

// policy picks the hero's action for the current decision point.
type policy func(rng *rand.Rand, hand *game.HandState) (game.Action, int)

func policyFor(name string) (policy, error) {
	switch name {
	case "coach":
		return func(_ *rand.Rand, hand *game.HandState) (game.Action, int) {
			advice := game.OptimalAction(hand)
			return advice.Action, 0
		}, nil
	case "call":
		return func(_ *rand.Rand, hand *game.HandState) (game.Action, int) {
			if hand.ToCall > 0 {
				return game.Call, 0
			}
			return game.Check, 0
		}, nil
	case "random":
		return func(rng *rand.Rand, hand *game.HandState) (game.Action, int) {
			if hand.ToCall > 0 {
				switch rng.IntN(3) {
				case 0:
					return game.Fold, 0
				case 1:
					return game.Call, 0
				default:
					return game.Raise, 0
				}
			}
			if rng.IntN(2) == 0 {
				return game.Check, 0
			}
			return game.Bet, 0
		}, nil
	default:
		return nil, fmt.Errorf("unknown policy %q", name)
	}
}

func runSimulation(seeds []int64, maxHands int, play policy, workers int) (*statistics.Statistics, error) {
	g, ctx := errgroup.WithContext(context.Background())
	results := make(chan statistics.SessionResult, workers)

	// Divide sessions among workers
	perWorker := len(seeds) / workers
	remainder := len(seeds) % workers
	start := 0
	for w := 0; w < workers; w++ {
		count := perWorker
		if w < remainder {
			count++
		}
		chunk := seeds[start : start+count]
		start += count

		g.Go(func() error {
			for _, seed := range chunk {
				result, err := runOneSession(seed, maxHands, play)
				if err != nil {
					return err
				}
				select {
				case results <- result:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}

	go func() {
		defer close(results)
		_ = g.Wait()
	}()

	stats := &statistics.Statistics{}
	for result := range results {
		stats.Add(result)
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

func runOneSession(seed int64, maxHands int, play policy) (statistics.SessionResult, error) {
	logger := log.New(io.Discard)
	session := game.NewSession(seed, game.Options{MaxHands: maxHands}, logger)
	policyRng := randutil.New(seed + 1)

	state := session.State()
	for state.Mode != game.ModeSessionComplete {
		var err error
		state, err = session.DealNewHand()
		if err != nil {
			return statistics.SessionResult{}, err
		}
		for state.Mode == game.ModePlaying {
			action, amount := play(policyRng, state.CurrentHand)
			state, err = session.ProcessAction(action, amount)
			if err != nil {
				return statistics.SessionResult{}, err
			}
		}
	}

	report := analysis.Generate(state)
	return statistics.SessionResult{
		Profit:        float64(report.Profit),
		Seed:          seed,
		HandsPlayed:   report.HandsPlayed,
		ReachedTarget: report.ReachedTarget,
		OverallScore:  report.OverallScore,
		TScore:        report.Transparency.TScore,
		Archetype:     report.Archetype.Name,
	}, nil
}

func printSummary(stats *statistics.Statistics) {
	low, high := stats.ConfidenceInterval95()

	fmt.Printf("Sessions:        %d\n", stats.Sessions)
	fmt.Printf("Mean profit:     %+.1f (95%% CI %.1f to %.1f)\n", stats.Mean(), low, high)
	fmt.Printf("Median profit:   %+.1f\n", stats.Median())
	fmt.Printf("Std deviation:   %.1f\n", stats.StdDev())
	fmt.Printf("Best / worst:    %+.0f / %+.0f\n", stats.MaxProfit, stats.MinProfit)
	fmt.Printf("Target hit rate: %.1f%%\n", stats.TargetRate()*100)
	fmt.Printf("Mean hands:      %.1f\n", stats.MeanHands())
	fmt.Printf("Mean score:      %.1f\n", stats.MeanScore())
	fmt.Printf("Mean T-score:    %.1f\n", stats.MeanTScore())

	if len(stats.Archetypes) > 0 {
		fmt.Println("\nArchetype distribution:")
		names := make([]string, 0, len(stats.Archetypes))
		for name := range stats.Archetypes {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool {
			if stats.Archetypes[names[i]] != stats.Archetypes[names[j]] {
				return stats.Archetypes[names[i]] > stats.Archetypes[names[j]]
			}
			return names[i] < names[j]
		})
		for _, name := range names {
			n := stats.Archetypes[name]
			fmt.Printf("  %-16s %5d (%.1f%%)\n", name, n, float64(n)/float64(stats.Sessions)*100)
		}
	}
}
