package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokertrainer/internal/analysis"
	"github.com/lox/pokertrainer/internal/game"
)

func newTestModel(t *testing.T, decisionSeconds int) *Model {
	t.Helper()
	session := game.NewSession(42, game.Options{}, nil)
	return NewModel(session, decisionSeconds, quartz.NewMock(t), log.New(io.Discard))
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModelDealsOpeningHand(t *testing.T) {
	m := newTestModel(t, 0)

	require.NotNil(t, m.state.CurrentHand)
	assert.Equal(t, 1, m.state.CurrentHand.HandNumber)
	assert.Equal(t, game.ModePlaying, m.state.Mode)

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	view := m.View()
	assert.Contains(t, view, "Poker Trainer")
	assert.Contains(t, view, "Stack: $995")
}

func TestModelFoldKeyEndsHand(t *testing.T) {
	m := newTestModel(t, 0)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	m.Update(keyMsg('f'))

	assert.Equal(t, game.ModeHandComplete, m.state.Mode)
	assert.Equal(t, 1, m.state.HandsPlayed)
	assert.Nil(t, m.state.CurrentHand)
}

func TestModelEnterDealsNextHand(t *testing.T) {
	m := newTestModel(t, 0)
	m.Update(keyMsg('f'))
	require.Equal(t, game.ModeHandComplete, m.state.Mode)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, m.state.CurrentHand)
	assert.Equal(t, 2, m.state.CurrentHand.HandNumber)
	assert.Equal(t, game.BigBlind, m.state.CurrentHand.HeroPosition)
}

func TestCountdownAutoFolds(t *testing.T) {
	m := newTestModel(t, 1)
	m.Init()
	require.Equal(t, 1, m.secondsLeft)

	m.Update(tickMsg{seq: m.timerSeq})

	assert.Equal(t, 1, m.state.HandsPlayed, "expired clock should fold the hand")
	assert.Equal(t, game.ModeHandComplete, m.state.Mode)
}

func TestStaleTickIsIgnored(t *testing.T) {
	m := newTestModel(t, 30)
	m.Init()
	before := m.secondsLeft

	m.Update(tickMsg{seq: m.timerSeq - 1})

	assert.Equal(t, before, m.secondsLeft)
	assert.Equal(t, 0, m.state.HandsPlayed)
}

func TestInvalidBetAmountIsRejected(t *testing.T) {
	m := newTestModel(t, 0)
	m.betInput.SetValue("lots")

	m.Update(keyMsg('b'))

	require.Error(t, m.err)
	assert.Equal(t, 0, len(m.state.Decisions), "no decision should be recorded")
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, 0)
	_, cmd := m.Update(keyMsg('q'))

	assert.True(t, m.quitting)
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestRenderReport(t *testing.T) {
	result := analysis.Generate(game.SessionState{
		TargetProfit:  100,
		StartingStack: 1000,
		CurrentStack:  1150,
		HandsPlayed:   20,
		Decisions: []game.Decision{
			{HandNumber: 1, Street: game.Preflop, Action: game.Raise, WasOptimal: true},
			{HandNumber: 2, Street: game.Flop, Action: game.Call, WasOptimal: true},
		},
	})

	out := RenderReport(result)
	assert.Contains(t, out, "Session Report")
	assert.Contains(t, out, "Decision quality")
	assert.Contains(t, out, "Transparency")
	assert.Contains(t, out, result.Archetype.Name)
	assert.Contains(t, out, "VPIP 100%")
}
