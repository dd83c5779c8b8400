package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/threecards/internal/deck"
	"github.com/lox/threecards/internal/evaluator"
	"github.com/lox/threecards/internal/game"
)

const sidebarWidth = 26

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	// Don't render until we have valid dimensions
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	snap := m.session.Snapshot()

	header := HeaderStyle.Render("Three Cards")

	tableContent := m.renderTable(snap)
	sidebarContent := m.renderSidebar(snap)

	tableWidth := max(m.width-sidebarWidth-4, 1)
	tablePane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(tableWidth).
		Render(tableContent)

	sidebarPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(sidebarWidth).
		Height(max(lipgloss.Height(tablePane)-2, 1)).
		Render(sidebarContent)

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, tablePane, sidebarPane)

	inputContent := m.renderInputPane()
	inputStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(max(m.width-2, 1))
	if m.focusedPane == 1 {
		inputStyle = inputStyle.BorderForeground(lipgloss.Color("#04B575"))
	}
	inputPane := inputStyle.Render(inputContent)

	logWidth := max(m.width-2, 1)
	logHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(topRow)-lipgloss.Height(inputPane)-2, 1)
	m.logViewport.Width = logWidth
	m.logViewport.Height = logHeight
	m.logViewport.SetContent(m.renderLog())
	if !m.initialized {
		m.logViewport.GotoBottom()
		m.initialized = true
	}

	logStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(logWidth).
		Height(logHeight)
	if m.focusedPane == 0 {
		logStyle = logStyle.BorderForeground(lipgloss.Color("#04B575"))
	}
	logPane := logStyle.Render(m.logViewport.View())

	return lipgloss.JoinVertical(lipgloss.Left, header, topRow, logPane, inputPane)
}

// renderTable shows both players' current hands
func (m *Model) renderTable(snap game.Snapshot) string {
	var rows []string
	for _, p := range game.Players {
		label := fmt.Sprintf("%s  (%d)", m.names[p], snap.Scores[p])
		if snap.LastRound != nil {
			b := evaluator.Evaluate(snap.Hands[p])
			label = fmt.Sprintf("%s  %s", label, InfoStyle.Render(b.String()))
		}
		rows = append(rows, PlayerInfoStyle.Render(label), renderHand(snap.Hands[p]))
	}
	return strings.Join(rows, "\n")
}

// renderHand draws a hand as a row of card boxes, or empty slots before the
// first draw.
func renderHand(cards []deck.Card) string {
	boxes := make([]string, 0, game.HandSize)
	for _, c := range cards {
		boxes = append(boxes, CardBoxStyle.Render(renderCard(c)))
	}
	for len(boxes) < game.HandSize {
		boxes = append(boxes, EmptyCardBoxStyle.Render("·"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func renderCard(c deck.Card) string {
	if c.IsRed() {
		return RedCardStyle.Render(c.String())
	}
	return BlackCardStyle.Render(c.String())
}

// renderSidebar shows tallies and deck state
func (m *Model) renderSidebar(snap game.Snapshot) string {
	var content strings.Builder

	content.WriteString(WarningStyle.Render("Score"))
	content.WriteString("\n")
	for _, p := range game.Players {
		content.WriteString(fmt.Sprintf("  %s: %d\n", m.names[p], snap.Scores[p]))
	}
	content.WriteString("\n")

	content.WriteString(fmt.Sprintf("Deck: %d cards\n", snap.DeckSize))
	content.WriteString(fmt.Sprintf("Round: %d\n", snap.Rounds))
	if !snap.CanDraw {
		content.WriteString(ErrorStyle.Render("Deck empty, reset"))
		content.WriteString("\n")
	}
	if last := snap.LastRound; last != nil {
		if winner, ok := last.Outcome.Winner(); ok {
			content.WriteString(SuccessStyle.Render(m.names[winner] + " won"))
		} else {
			content.WriteString(WarningStyle.Render("Tie"))
		}
		content.WriteString("\n")
	}

	return content.String()
}

func (m *Model) renderLog() string {
	lines := make([]string, len(m.gameLog))
	for i, e := range m.gameLog {
		lines[i] = e.style.Render(e.text)
	}
	return strings.Join(lines, "\n")
}

// renderInputPane renders the command input and help line
func (m *Model) renderInputPane() string {
	var content strings.Builder

	content.WriteString(m.commandInput.View())
	content.WriteString("\n")

	if m.focusedPane == 0 {
		content.WriteString(InfoStyle.Render("Log focused: ↑↓ scroll, Home/End, Tab to input"))
	} else {
		content.WriteString(InfoStyle.Render("Tab to scroll log • Enter to submit • Ctrl+C to quit"))
	}

	return content.String()
}
