package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Theme styles the parts of a rendered table. Styling never changes
// the layout contract: widths and borders are computed on the unstyled
// text, so a styled table lines up with its plain rendering.
type Theme struct {
	Name    string
	Border  lipgloss.Style
	Heading lipgloss.Style
	Key     lipgloss.Style
	Value   lipgloss.Style
}

// DefaultTheme returns the colored terminal theme.
func DefaultTheme() Theme {
	return Theme{
		Name:    "default",
		Border:  lipgloss.NewStyle().Foreground(lipgloss.Color("242")), // gray
		Heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")), // blue
		Key:     lipgloss.NewStyle().Foreground(lipgloss.Color("75")), // pale blue
		Value:   lipgloss.NewStyle(),
	}
}

// MonoTheme returns a monochrome theme.
func MonoTheme() Theme {
	return Theme{
		Name:    "mono",
		Border:  lipgloss.NewStyle(),
		Heading: lipgloss.NewStyle().Bold(true),
		Key:     lipgloss.NewStyle(),
		Value:   lipgloss.NewStyle(),
	}
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	switch name {
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}

// cellStyle picks the style for the cell at layout row ri, column ci.
func (th Theme) cellStyle(ri, ci int) lipgloss.Style {
	switch {
	case ri == 0:
		return th.Heading
	case ci == 0:
		return th.Key
	default:
		return th.Value
	}
}

// RenderStyled renders the same layout as Render with theme styles
// applied per cell.
func (t *Table) RenderStyled(theme Theme) string {
	widths := t.columnWidths()
	sep := theme.Border.Render("|")
	rows := make([]string, 0, len(t.data))
	for ri, row := range t.data {
		var sb strings.Builder
		sb.WriteString(sep)
		for ci, cell := range row {
			text := runewidth.FillRight(cellText(cell), widths[ci])
			sb.WriteString(" ")
			sb.WriteString(theme.cellStyle(ri, ci).Render(text))
			sb.WriteString(" ")
			sb.WriteString(sep)
		}
		rows = append(rows, sb.String())
	}
	border := theme.Border.Render(strings.Repeat("-", runewidth.StringWidth(t.formatRow(t.data[0], widths))))
	out := make([]string, 0, len(rows)+3)
	out = append(out, border, rows[0], border)
	out = append(out, rows[1:]...)
	out = append(out, border)
	return strings.Join(out, "\n")
}
