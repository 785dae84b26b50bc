package report

import "github.com/charmbracelet/lipgloss"

// Color palette: bright ANSI colors, so the strip reads on dark and light
// terminals alike.
var (
	totalColor = lipgloss.Color("10") // bright green
	sizeColor  = lipgloss.Color("13") // bright magenta
	countColor = lipgloss.Color("14") // bright cyan
	gapColor   = lipgloss.Color("9")  // bright red
)

type styles struct {
	total lipgloss.Style
	size  lipgloss.Style
	count lipgloss.Style
	gap   lipgloss.Style
}

func palette(noColor bool) styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return styles{plain, plain, plain, plain}
	}
	bold := lipgloss.NewStyle().Bold(true)
	return styles{
		total: bold.Foreground(totalColor),
		size:  bold.Foreground(sizeColor),
		count: bold.Foreground(countColor),
		gap:   bold.Foreground(gapColor),
	}
}
