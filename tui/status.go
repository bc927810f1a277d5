package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// displayName derives a human-readable label from an identifier.
// "monster_slain" -> "Monster Slain", "max_hp" -> "Max Hp".
func displayName(id string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(id, "_", " "))
}

// renderStatusBar produces a full-width inverted status line from the last
// status event: location, health and level on the left, gold and turn
// count on the right.
func (m Model) renderStatusBar() string {
	s := m.status
	if s == nil {
		return styleStatusBar.Width(m.width).Render("")
	}

	left := fmt.Sprintf(" %v | HP %v/%v | Lvl %v", s["location"], s["hp"], s["max_hp"], s["level"])
	right := fmt.Sprintf("T:%v ", s["turn"])

	// Show gold and experience if they fit, otherwise just gold.
	candidate := fmt.Sprintf("Gold %v | XP %v | T:%v ", s["gold"], s["xp"], s["turn"])
	if lipgloss.Width(left)+lipgloss.Width(candidate)+2 < m.width {
		right = candidate
	} else {
		right = fmt.Sprintf("Gold %v | T:%v ", s["gold"], s["turn"])
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
