package report

import "github.com/charmbracelet/lipgloss"

// Styles for grouped text output, matching the tool's traditional color
// scheme: maps green, names cyan bold, coordinates bold.
var (
	styleMapName = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2"))

	styleEntityName = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)

	styleCoord = lipgloss.NewStyle().
			Bold(true)

	styleHeading = lipgloss.NewStyle().
			Bold(true)
)

func (r *Renderer) styleMap(s string) string {
	if r.Crit.NoColor {
		return s
	}
	return styleMapName.Render(s)
}

func (r *Renderer) styleName(s string) string {
	if r.Crit.NoColor {
		return s
	}
	return styleEntityName.Render(s)
}

func (r *Renderer) stylePos(s string) string {
	if r.Crit.NoColor {
		return s
	}
	return styleCoord.Render(s)
}

func (r *Renderer) styleHeader(s string) string {
	if r.Crit.NoColor {
		return s
	}
	return styleHeading.Render(s)
}
