package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"glory-to-rome-backend/internal/delivery/dto"
	"glory-to-rome-backend/internal/game"
	"glory-to-rome-backend/internal/game/card"
)

// Color palette for state rendering
var (
	headerColor = lipgloss.Color("#7C3AED")
	labelColor  = lipgloss.Color("#06B6D4")
	goodColor   = lipgloss.Color("#10B981")
	warnColor   = lipgloss.Color("#F59E0B")
	mutedColor  = lipgloss.Color("#94A3B8")
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(headerColor).
			Bold(true).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().Foreground(labelColor).Bold(true)
	valueStyle = lipgloss.NewStyle().Foreground(goodColor)
	turnStyle  = lipgloss.NewStyle().Foreground(warnColor).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(mutedColor)
)

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 100
	}
	return width
}

// renderState renders the omniscient view of a game for the terminal
func renderState(g *game.Game) string {
	view := dto.NewGameView("local", g, -1)
	width := terminalWidth()

	var b strings.Builder
	b.WriteString(headerStyle.Render("Glory to Rome"))
	b.WriteString("\n")

	status := fmt.Sprintf("%s %d   %s %s from player %d",
		labelStyle.Render("Turn"), view.Turn,
		labelStyle.Render("Expecting"), view.ExpectedAction, view.ExpectedPlayer)
	if view.GameOver {
		status = turnStyle.Render(fmt.Sprintf("Game over — winners %v, scores %v", view.Winners, view.Scores))
	}
	b.WriteString(status)
	b.WriteString("\n")

	common := fmt.Sprintf("%s %d   %s %d   %s %s",
		labelStyle.Render("Library"), view.LibrarySize,
		labelStyle.Render("Jacks"), view.JackPileSize,
		labelStyle.Render("Pool"), joinOrDash(view.Pool))
	b.WriteString(panelStyle.Width(min(width-2, 96)).Render(common))
	b.WriteString("\n")

	for idx, p := range view.Players {
		b.WriteString(renderPlayer(idx, p, idx == view.Leader, width))
		b.WriteString("\n")
	}
	return b.String()
}

func renderPlayer(idx int, p dto.PlayerView, leader bool, width int) string {
	name := fmt.Sprintf("%d  %s", idx, p.Name)
	if leader {
		name = turnStyle.Render(name + "  (leader)")
	} else {
		name = labelStyle.Render(name)
	}

	lines := []string{
		name,
		fmt.Sprintf("%s %s", labelStyle.Render("Hand"), joinOrDash(p.Hand)),
		fmt.Sprintf("%s %s   %s %s", labelStyle.Render("Stockpile"), joinOrDash(p.Stockpile),
			labelStyle.Render("Vault"), joinOrDash(p.Vault)),
		fmt.Sprintf("%s %s   %s %s", labelStyle.Render("Clientele"), joinOrDash(p.Clientele),
			labelStyle.Render("Camp"), joinOrDash(p.Camp)),
		fmt.Sprintf("%s %s", labelStyle.Render("Influence"), valueStyle.Render(fmt.Sprintf("%d", p.Influence))),
	}
	if len(p.Buildings) > 0 {
		built := make([]string, 0, len(p.Buildings))
		for _, b := range p.Buildings {
			tag := b.Foundation
			if b.Complete {
				tag += valueStyle.Render(" ✓")
			} else {
				tag += mutedStyle.Render(fmt.Sprintf(" %d/%d", len(b.Materials), card.Value(card.Material(b.Site))))
			}
			built = append(built, tag)
		}
		lines = append(lines, fmt.Sprintf("%s %s", labelStyle.Render("Buildings"), strings.Join(built, ", ")))
	}

	return panelStyle.Width(min(width-2, 96)).Render(strings.Join(lines, "\n"))
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return mutedStyle.Render("-")
	}
	return strings.Join(items, ", ")
}
