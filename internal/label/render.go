package label

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"pcs-pro/internal/model"
)

// Render draws a terminal preview of the printable tag. Pixel font sizes
// map onto terminal emphasis tiers: large titles render bold (and
// underlined past 32px), large body text renders bold.
func Render(ls model.LabelSettings, item model.Item, width int) string {
	if width < 24 {
		width = 24
	}
	bodyW := width - 4 // border + padding

	titleStyle := lipgloss.NewStyle().Bold(ls.TitleSize >= 20)
	if ls.TitleSize >= 32 {
		titleStyle = titleStyle.Underline(true)
	}
	bodyStyle := lipgloss.NewStyle().Bold(ls.BodySize >= 18)
	mutedStyle := lipgloss.NewStyle().Faint(true)

	lines := []string{
		titleStyle.Render(truncate(ls.Title, bodyW)),
		bodyStyle.Render(truncate("Room: "+ls.Room, bodyW)),
		bodyStyle.Render(truncate("Weight: "+ls.Weight, bodyW)),
	}
	if strings.TrimSpace(ls.Notes) != "" {
		lines = append(lines, bodyStyle.Render(truncate(ls.Notes, bodyW)))
	}
	if item.IsHighValue {
		lines = append(lines, lipgloss.NewStyle().Bold(true).Render("HIGH VALUE"))
	}
	lines = append(lines, "", mutedStyle.Render(truncate(Code(item), bodyW)))

	box := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		Padding(0, 1).
		Width(width - 2)
	return box.Render(strings.Join(lines, "\n"))
}

func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return xansi.Truncate(s, w, "…")
}
