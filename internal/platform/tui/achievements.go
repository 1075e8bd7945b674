package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func newAchievementsTable(width, height int) table.Model {
	descWidth := max(width-4-3-16-6, 20)
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "", Width: 3},
			{Title: "Achievement", Width: 16},
			{Title: "Unlock", Width: descWidth},
		}),
		table.WithFocused(false),
		table.WithHeight(max(height-10, 4)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)
	return t
}

func achievementRows(list []flappy.Achievement) []table.Row {
	rows := make([]table.Row, len(list))
	for i, a := range list {
		mark := "·"
		if a.Achieved {
			mark = "★"
		}
		rows[i] = table.Row{mark, a.Name, a.Description}
	}
	return rows
}

// achievementsView renders the achievements screen with the daily challenge.
func (m Model) achievementsView() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	unlocked := 0
	for _, a := range m.snap.Achievements {
		if a.Achieved {
			unlocked++
		}
	}
	b.WriteString(titleStyle.Render(fmt.Sprintf("ACHIEVEMENTS  %d/%d", unlocked, len(m.snap.Achievements))))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.table.View()))
	b.WriteString("\n")

	if m.snap.Features.Daily && m.snap.Daily.Target > 0 {
		status := "open"
		if m.snap.Daily.Completed {
			status = "completed"
		}
		dailyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		b.WriteString(dailyStyle.Render(fmt.Sprintf("Daily challenge: %s (%s)", m.snap.Daily.Description, status)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.helpView())
	return b.String()
}
