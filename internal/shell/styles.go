package shell

import "github.com/charmbracelet/lipgloss"

var (
	accentColor = lipgloss.AdaptiveColor{Light: "4", Dark: "12"}
	dimColor    = lipgloss.AdaptiveColor{Light: "240", Dark: "245"}
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	echoStyle   = lipgloss.NewStyle().Foreground(dimColor)
	noticeStyle = lipgloss.NewStyle().Foreground(accentColor)
	outputStyle = lipgloss.NewStyle()
)

// styleFor returns the style for a transcript entry kind.
func styleFor(k entryKind) lipgloss.Style {
	switch k {
	case entryEcho:
		return echoStyle
	case entryNotice:
		return noticeStyle
	default:
		return outputStyle
	}
}
