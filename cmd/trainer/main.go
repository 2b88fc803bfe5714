package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"

	"github.com/lox/pokertrainer/internal/analysis"
	"github.com/lox/pokertrainer/internal/config"
	"github.com/lox/pokertrainer/internal/game"
	"github.com/lox/pokertrainer/internal/tui"
)

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1).
	Bold(true)

type CLI struct {
	Config          string `short:"c" default:"trainer.hcl" help:"Path to HCL config file"`
	Seed            int64  `help:"RNG seed for a replayable session (0 for random)"`
	Stack           int    `help:"Starting stack (overrides config)"`
	Target          int    `help:"Profit target (overrides config)"`
	Hands           int    `help:"Maximum hands per session (overrides config)"`
	DecisionSeconds int    `default:"-1" help:"Seconds per decision, 0 disables the clock (overrides config)"`
	LogFile         string `default:"trainer.log" help:"Debug log file"`
	LogLevel        string `help:"Log level: debug, info, warn, error (overrides config)"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kong.Description("Interactive heads-up no-limit hold'em trainer"))

	cfg, err := config.Load(cli.Config)
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}
	applyOverrides(cfg, &cli)
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration", "error", err)
	}

	if termenv.EnvNoColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	fmt.Print(titleStyle.Render(" ♠ ♥ Poker Trainer ♦ ♣ "))
	fmt.Println()
	fmt.Println()

	result, err := runSession(cfg, cli.Seed, cli.LogFile)
	if err != nil {
		log.Fatal("Session failed", "error", err)
	}
	if result != nil {
		fmt.Println(tui.RenderReport(*result))
	}

	ctx.Exit(0)
}

func applyOverrides(cfg *config.Config, cli *CLI) {
	if cli.Stack > 0 {
		cfg.Session.StartingStack = cli.Stack
	}
	if cli.Target > 0 {
		cfg.Session.TargetProfit = cli.Target
	}
	if cli.Hands > 0 {
		cfg.Session.MaxHands = cli.Hands
	}
	if cli.Seed != 0 {
		cfg.Trainer.Seed = cli.Seed
	}
	if cli.DecisionSeconds >= 0 {
		cfg.Trainer.DecisionSeconds = cli.DecisionSeconds
	}
	if cli.LogLevel != "" {
		cfg.Trainer.LogLevel = cli.LogLevel
	}
}

func runSession(cfg *config.Config, seed int64, logPath string) (*analysis.Result, error) {
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o666)
	if err != nil {
		return nil, fmt.Errorf("failed to create debug log: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	level, err := log.ParseLevel(cfg.Trainer.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})

	if seed == 0 {
		seed = cfg.Trainer.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("Starting session",
		"seed", seed,
		"stack", cfg.Session.StartingStack,
		"target", cfg.Session.TargetProfit,
		"maxHands", cfg.Session.MaxHands)

	session := game.NewSession(seed, game.Options{
		StartingStack: cfg.Session.StartingStack,
		TargetProfit:  cfg.Session.TargetProfit,
		MaxHands:      cfg.Session.MaxHands,
	}, logger)

	model := tui.NewModel(session, cfg.Trainer.DecisionSeconds, quartz.NewReal(), logger)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return nil, fmt.Errorf("tui error: %w", err)
	}

	state := session.State()
	if state.Mode != game.ModeSessionComplete && len(state.Decisions) == 0 {
		// Quit before playing anything, nothing to report
		return nil, nil
	}
	result := analysis.Generate(state)
	return &result, nil
}
