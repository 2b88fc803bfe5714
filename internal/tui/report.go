package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/pokertrainer/internal/analysis"
)

var (
	reportTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FAFAFA")).
				Background(lipgloss.Color("#7D56F4")).
				Bold(true).
				Padding(0, 1)

	reportSectionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFD700")).
				Bold(true)

	reportBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(0, 1)
)

// RenderReport renders the end-of-session analysis for the terminal.
func RenderReport(result analysis.Result) string {
	var b strings.Builder

	b.WriteString(reportTitleStyle.Render(" Session Report "))
	b.WriteString("\n\n")

	profitStyle := SuccessStyle
	if result.Profit < 0 {
		profitStyle = ErrorStyle
	}
	target := "missed"
	if result.ReachedTarget {
		target = "reached"
	}
	b.WriteString(fmt.Sprintf("Hands played: %d    Profit: %s    Target $%d %s\n\n",
		result.HandsPlayed,
		profitStyle.Render(fmt.Sprintf("$%+d", result.Profit)),
		result.TargetProfit, target))

	b.WriteString(reportSectionStyle.Render("Decision quality"))
	b.WriteString(fmt.Sprintf("  %d/100\n", result.OverallScore))
	b.WriteString(renderCategory("Preflop decisions", result.Breakdown.PreflopDecisions))
	b.WriteString(renderCategory("Postflop betting", result.Breakdown.PostflopBetting))
	b.WriteString(renderCategory("Folding discipline", result.Breakdown.FoldingDiscipline))
	b.WriteString(renderCategory("Value extraction", result.Breakdown.ValueExtraction))
	b.WriteString(renderCategory("Pot odds accuracy", result.Breakdown.PotOddsAccuracy))
	b.WriteString("\n")

	b.WriteString(reportSectionStyle.Render("Play style"))
	b.WriteString(fmt.Sprintf("  VPIP %d%%  PFR %d%%  Aggression %.2f\n\n",
		result.PlayStyle.VPIP, result.PlayStyle.PFR, result.PlayStyle.Aggression))

	t := result.Transparency
	b.WriteString(reportSectionStyle.Render("Transparency"))
	b.WriteString(fmt.Sprintf("  T-score %d (%s confidence)\n", t.TScore, t.Confidence))
	b.WriteString(fmt.Sprintf("  Linearity %d  Polarization %d  Board texture %d\n\n",
		t.Linearity, t.Polarization, t.BoardTexture))

	archetypeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(result.Archetype.Color)).
		Bold(true)
	archetype := fmt.Sprintf("%s (%s)\n%s\n\n%s",
		archetypeStyle.Render(result.Archetype.Name),
		result.Archetype.Abbrev,
		result.Archetype.Description,
		result.Archetype.Advice)
	b.WriteString(reportBoxStyle.Render(archetype))
	b.WriteString("\n\n")

	writeList := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		b.WriteString(reportSectionStyle.Render(title))
		b.WriteString("\n")
		for _, item := range items {
			b.WriteString("  - " + item + "\n")
		}
	}
	writeList("Strengths", result.Strengths)
	writeList("Weaknesses", result.Weaknesses)
	writeList("Recommendations", result.Recommendations)

	return b.String()
}

func renderCategory(name string, cat analysis.CategoryScore) string {
	if cat.Total == 0 {
		return fmt.Sprintf("  %-20s no decisions\n", name)
	}
	return fmt.Sprintf("  %-20s %d/%d\n", name, cat.Score, cat.Total)
}
