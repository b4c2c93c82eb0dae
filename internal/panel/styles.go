package panel

import "github.com/charmbracelet/lipgloss"

var (
	colorRed    = lipgloss.Color("#ff5555")
	colorDim    = lipgloss.Color("#6272a4")
	colorBorder = lipgloss.Color("#44475a")
	colorAccent = lipgloss.Color("#bd93f9")
	colorFg     = lipgloss.Color("#f8f8f2")
)

var (
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	focusedPaneStyle = paneStyle.
				BorderForeground(colorAccent)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	lineNumberStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Width(5).
			Align(lipgloss.Right).
			PaddingRight(1)

	answerStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)
