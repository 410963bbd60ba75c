package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleOk      = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	styleMissing = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	styleName    = lipgloss.NewStyle().Width(10)
	styleDetail  = lipgloss.NewStyle().Faint(true)
)

// Render formats the report for the terminal.
func Render(r Report) string {
	var b strings.Builder
	for _, c := range r.Checks {
		var badge string
		switch c.State {
		case StateOk:
			badge = styleOk.Render("✓ ok")
		case StateMissing:
			badge = styleMissing.Render("– missing")
		default:
			badge = styleError.Render("✗ error")
		}
		fmt.Fprintf(&b, "%s %s  %s\n", styleName.Render(c.Name), badge, styleDetail.Render(c.Detail))
	}
	return b.String()
}
