package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindRoomDesc lineKind = iota
	kindYouSee
	kindExits
	kindDialogue
	kindPrompt
	kindEvent
	kindError
	kindTrace
	kindInput
	kindSystem
)

func fg(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)
	styleInputPrompt = fg("34")
	styleListNames   = lipgloss.NewStyle().Bold(true)
)

// palette maps each line kind to its style.
var palette = map[lineKind]lipgloss.Style{
	kindRoomDesc: fg("255"),
	kindYouSee:   fg("255"),
	kindExits:    fg("243"),
	kindDialogue: fg("228"),
	kindPrompt:   fg("110").Italic(true),
	kindEvent:    fg("214"),
	kindError:    fg("196"),
	kindTrace:    fg("240"),
	kindInput:    fg("34"),
	kindSystem:   fg("243"),
}

// listPrefixes introduce a comma-separated list of names.
var listPrefixes = []string{"Lying here: ", "You see: ", "Monsters: ", "Places to enter: ", "You could equip: "}

// classifyLine decides how a narration line is styled.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "[trace]"):
		return kindTrace
	case listPrefix(line) != "":
		return kindYouSee
	case strings.HasPrefix(line, "Exits:"), line == "There are no exits.":
		return kindExits
	case strings.Contains(line, " says: "):
		return kindDialogue
	default:
		return kindRoomDesc
	}
}

func listPrefix(line string) string {
	for _, p := range listPrefixes {
		if strings.HasPrefix(line, p) {
			return p
		}
	}
	return ""
}

// render styles one unwrapped line. List lines get their names in bold and
// host messages are bracketed.
func render(rl rawLine) string {
	style := palette[rl.kind]
	switch rl.kind {
	case kindYouSee:
		if p := listPrefix(rl.text); p != "" {
			return style.Render(p) + styleListNames.Render(rl.text[len(p):])
		}
	case kindSystem:
		return style.Render("[" + rl.text + "]")
	}
	return style.Render(rl.text)
}
