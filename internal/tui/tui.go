// Package tui implements the interactive trainer UI on Bubble Tea: a hand
// view with the action log, single-key actions, a decision countdown, and
// the end-of-session report.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/pokertrainer/internal/analysis"
	"github.com/lox/pokertrainer/internal/game"
	"github.com/lox/pokertrainer/poker"
)

// tickMsg drives the decision countdown. seq guards against stale timers
// from decisions that were already made.
type tickMsg struct {
	seq int
}

// Model is the Bubble Tea model for a training session.
type Model struct {
	session *game.Session
	logger  *log.Logger
	clock   quartz.Clock

	logViewport viewport.Model
	betInput    textinput.Model

	state  game.SessionState
	report *analysis.Result
	err    error

	decisionSecs int
	secondsLeft  int
	timerSeq     int

	loggedEntries int
	gameLog       []string

	width       int
	height      int
	initialized bool
	quitting    bool
}

// NewModel creates the trainer model and deals the opening hand.
func NewModel(session *game.Session, decisionSeconds int, clock quartz.Clock, logger *log.Logger) *Model {
	vp := viewport.New(10, 5)

	ti := textinput.New()
	ti.Placeholder = "bet amount (blank for 2/3 pot)"
	ti.CharLimit = 6
	ti.Width = 30
	ti.Prompt = "$ "
	ti.PromptStyle = CoachStyle
	ti.Focus()

	m := &Model{
		session:      session,
		logger:       logger.WithPrefix("tui"),
		clock:        clock,
		logViewport:  vp,
		betInput:     ti,
		decisionSecs: decisionSeconds,
		state:        session.State(),
	}
	m.dealNext()
	return m
}

// Init starts the input blink and the first decision countdown.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.startCountdown())
}

// startCountdown resets the decision clock and schedules the first tick.
func (m *Model) startCountdown() tea.Cmd {
	if m.decisionSecs <= 0 {
		return nil
	}
	m.timerSeq++
	m.secondsLeft = m.decisionSecs
	return m.tick(m.timerSeq)
}

func (m *Model) tick(seq int) tea.Cmd {
	return func() tea.Msg {
		timer := m.clock.NewTimer(time.Second)
		<-timer.C
		return tickMsg{seq: seq}
	}
}

// Update handles messages in the trainer UI.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.initialized = true

	case tickMsg:
		if msg.seq != m.timerSeq || m.state.Mode != game.ModePlaying || m.state.CurrentHand == nil {
			return m, nil
		}
		m.secondsLeft--
		if m.secondsLeft <= 0 {
			m.appendLog(WarningStyle.Render("Time expired, folding"))
			return m, m.applyAction(game.Fold, 0)
		}
		return m, m.tick(msg.seq)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.betInput, cmd = m.betInput.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc", "q":
		m.quitting = true
		return m, tea.Sequence(tea.ClearScreen, tea.Quit)
	}

	switch m.state.Mode {
	case game.ModeHandComplete:
		if msg.String() == "enter" || msg.String() == "n" {
			m.dealNext()
			return m, m.startCountdown()
		}
		return m, nil

	case game.ModeSessionComplete:
		return m, nil
	}

	if m.state.CurrentHand == nil {
		return m, nil
	}
	hand := m.state.CurrentHand

	switch msg.String() {
	case "f":
		return m, m.applyAction(game.Fold, 0)
	case "c":
		if hand.ToCall > 0 {
			return m, m.applyAction(game.Call, 0)
		}
		return m, m.applyAction(game.Check, 0)
	case "k":
		if hand.ToCall == 0 {
			return m, m.applyAction(game.Check, 0)
		}
		return m, nil
	case "b", "r", "enter":
		action := game.Bet
		if hand.ToCall > 0 {
			action = game.Raise
		}
		amount := 0
		if v := strings.TrimSpace(m.betInput.Value()); v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil || parsed < 0 {
				m.err = fmt.Errorf("invalid bet amount %q", v)
				return m, nil
			}
			amount = parsed
		}
		m.betInput.SetValue("")
		return m, m.applyAction(action, amount)
	}

	var cmd tea.Cmd
	m.betInput, cmd = m.betInput.Update(msg)
	return m, cmd
}

// applyAction runs a hero action through the session, echoes the resulting
// log entries and coach feedback, and rearms the countdown.
func (m *Model) applyAction(action game.Action, amount int) tea.Cmd {
	state, err := m.session.ProcessAction(action, amount)
	if err != nil {
		m.logger.Debug("action rejected", "action", action, "amount", amount, "error", err)
		m.err = err
		return nil
	}
	m.err = nil
	m.state = state
	m.syncLog()

	if n := len(state.Decisions); n > 0 {
		d := state.Decisions[n-1]
		if d.WasOptimal {
			m.appendLog(CoachStyle.Render(fmt.Sprintf("Coach: good %s. %s", d.Action, d.Reasoning)))
		} else {
			m.appendLog(CoachStyle.Render(fmt.Sprintf("Coach: better was %s. %s", d.OptimalAction, d.Reasoning)))
		}
	}

	switch state.Mode {
	case game.ModePlaying:
		return m.startCountdown()
	case game.ModeHandComplete:
		m.logFinishedHand()
		m.appendLog(InfoStyle.Render("Press enter for the next hand, q to quit"))
		return nil
	default:
		m.logFinishedHand()
		report := analysis.Generate(state)
		m.report = &report
		return nil
	}
}

func (m *Model) dealNext() {
	state, err := m.session.DealNewHand()
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.state = state
	m.loggedEntries = 0

	hand := state.CurrentHand
	m.appendLog("")
	m.appendLog(HeaderStyle.Render(fmt.Sprintf(" Hand #%d of %d (%s) ", hand.HandNumber, state.MaxHands, hand.HeroPosition)))
	m.syncLog()
}

// syncLog copies any new action history entries into the display log.
func (m *Model) syncLog() {
	hand := m.state.CurrentHand
	if hand == nil {
		if len(m.state.HandHistory) == 0 {
			return
		}
		hand = &m.state.HandHistory[len(m.state.HandHistory)-1]
	}
	for ; m.loggedEntries < len(hand.ActionHistory); m.loggedEntries++ {
		m.appendLog(formatEntry(hand.ActionHistory[m.loggedEntries]))
	}
}

func (m *Model) logFinishedHand() {
	if len(m.state.HandHistory) == 0 {
		return
	}
	hand := m.state.HandHistory[len(m.state.HandHistory)-1]
	switch hand.Winner {
	case game.HeroWins:
		m.appendLog(SuccessStyle.Render(fmt.Sprintf("You win the $%d pot", hand.Pot)))
	case game.VillainWins:
		m.appendLog(ErrorStyle.Render(fmt.Sprintf("Villain takes the $%d pot with %s %s",
			hand.Pot, formatCard(hand.VillainCards[0]), formatCard(hand.VillainCards[1]))))
	case game.SplitPot:
		m.appendLog(WarningStyle.Render(fmt.Sprintf("Split pot, $%d back each way", hand.Pot/2)))
	}
}

func (m *Model) appendLog(entry string) {
	m.gameLog = append(m.gameLog, entry)
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

func formatEntry(entry game.ActionEntry) string {
	actor := ""
	switch entry.Actor {
	case game.ActorHero:
		actor = "You"
	case game.ActorVillain:
		actor = "Villain"
	case game.ActorDealer:
		actor = "Dealer"
	}
	line := fmt.Sprintf("[%s] %s %s", entry.Street, actor, entry.Action)
	if len(entry.Cards) > 0 {
		line += " " + formatCards(entry.Cards)
	}
	return line
}

func formatCard(c poker.Card) string {
	if c.Suit() == poker.Diamonds || c.Suit() == poker.Hearts {
		return RedCardStyle.Render(c.String())
	}
	return BlackCardStyle.Render(c.String())
}

func formatCards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = formatCard(c)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// View renders the trainer UI.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.initialized {
		return "Loading..."
	}
	if m.report != nil {
		return RenderReport(*m.report) + "\n" + InfoStyle.Render("Press q to exit")
	}

	status := m.renderStatus()
	actionPane := m.renderActionPane()

	logHeight := m.height - lipgloss.Height(status) - lipgloss.Height(actionPane) - 2
	if logHeight < 1 {
		logHeight = 1
	}
	logWidth := m.width - 2
	if logWidth < 1 {
		logWidth = 1
	}
	m.logViewport.Width = logWidth
	m.logViewport.Height = logHeight

	logPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(logWidth).
		Height(logHeight).
		Render(m.logViewport.View())

	return lipgloss.JoinVertical(lipgloss.Top, status, logPane, actionPane)
}

func (m *Model) renderStatus() string {
	profit := m.state.Profit()
	profitText := SuccessStyle.Render(fmt.Sprintf("+$%d", profit))
	if profit < 0 {
		profitText = ErrorStyle.Render(fmt.Sprintf("-$%d", -profit))
	}

	parts := []string{
		HeaderStyle.Render(" Poker Trainer "),
		fmt.Sprintf("Stack: $%d", m.state.CurrentStack),
		fmt.Sprintf("Profit: %s / $%d", profitText, m.state.TargetProfit),
	}

	if hand := m.state.CurrentHand; hand != nil {
		parts = append(parts,
			fmt.Sprintf("Street: %s", hand.Street),
			WarningStyle.Render(fmt.Sprintf("Pot: $%d", hand.Pot)))
		if hand.ToCall > 0 {
			parts = append(parts, ErrorStyle.Render(fmt.Sprintf("To call: $%d", hand.ToCall)))
		}
		if m.decisionSecs > 0 && m.state.Mode == game.ModePlaying {
			parts = append(parts, InfoStyle.Render(fmt.Sprintf("%ds", m.secondsLeft)))
		}
	}
	return strings.Join(parts, "  ")
}

func (m *Model) renderActionPane() string {
	var content strings.Builder

	if hand := m.state.CurrentHand; hand != nil {
		content.WriteString(HandInfoStyle.Render("Your hand: "))
		content.WriteString(formatCards(hand.HeroCards[:]))
		if len(hand.Board) > 0 {
			content.WriteString(HandInfoStyle.Render("  Board: "))
			content.WriteString(formatCards(hand.Board))
		}
		content.WriteString("\n")

		var actions []string
		actions = append(actions, ErrorStyle.Render("[f]old"))
		if hand.ToCall > 0 {
			actions = append(actions, SuccessStyle.Render(fmt.Sprintf("[c]all $%d", hand.ToCall)))
			actions = append(actions, WarningStyle.Render("[r]aise"))
		} else {
			actions = append(actions, SuccessStyle.Render("[c]heck"))
			actions = append(actions, WarningStyle.Render("[b]et"))
		}
		content.WriteString(ActionsStyle.Render("Actions: " + strings.Join(actions, " ")))
		content.WriteString("\n")
		content.WriteString(m.betInput.View())
		content.WriteString("\n")
	}

	if m.err != nil {
		content.WriteString(ErrorStyle.Render(m.err.Error()))
		content.WriteString("\n")
	}
	content.WriteString(InfoStyle.Render("enter submits a bet, q quits"))
	return content.String()
}
