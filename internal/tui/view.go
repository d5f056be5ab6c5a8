package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	accent = lipgloss.AdaptiveColor{Light: "#5A4FCF", Dark: "#A39BFF"}
	muted  = lipgloss.AdaptiveColor{Light: "#6C6C6C", Dark: "#8A8A8A"}
	danger = lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#FF6B6B"}
	okay   = lipgloss.AdaptiveColor{Light: "#1E8449", Dark: "#58D68D"}

	appStyle   = lipgloss.NewStyle().Padding(1, 2)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(accent).
			BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(muted)
	helpStyle     = lipgloss.NewStyle().Foreground(muted)
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(danger)
	statusStyle   = lipgloss.NewStyle().Foreground(okay)
	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	promptBox     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(1, 2)
)

// renderPage lays out a titled page with a help line at the bottom.
func renderPage(title, body, help string) string {
	if strings.TrimSpace(body) == "" {
		body = helpStyle.Render("nothing here yet")
	}

	parts := []string{titleStyle.Render(title), "", body}
	if strings.TrimSpace(help) != "" {
		parts = append(parts, "", helpStyle.Render(help))
	}

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// fitText truncates v to max runes, marking the cut with an ellipsis.
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max == 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}

func titleOrPlaceholder(title string) string {
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
