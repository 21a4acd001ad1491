package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	// Colors
	TextPrimary lipgloss.AdaptiveColor
	TextMuted   lipgloss.AdaptiveColor
	Success     lipgloss.AdaptiveColor
	Warn        lipgloss.AdaptiveColor
	Error       lipgloss.AdaptiveColor
	Border      lipgloss.AdaptiveColor
	BorderHi    lipgloss.AdaptiveColor

	// Chrome
	TopBar      lipgloss.Style
	TopBarTitle lipgloss.Style
	TopBarBadge lipgloss.Style
	TopBarMeta  lipgloss.Style
	Pane        lipgloss.Style
	PaneFocused lipgloss.Style
	PaneTitle   lipgloss.Style
	PaneTitleF  lipgloss.Style
	Footer      lipgloss.Style
	InputLabel  lipgloss.Style
	InputLabelF lipgloss.Style
	StatusOK    lipgloss.Style
	StatusWarn  lipgloss.Style
	MetricLine  lipgloss.Style
	Hint        lipgloss.Style

	// SERP result palette, mirroring the page being simulated.
	SerpTitle      lipgloss.Style
	SerpTitleOver  lipgloss.Style
	SerpURL        lipgloss.Style
	SerpDesc       lipgloss.Style
	SerpDescOver   lipgloss.Style
	SerpStars      lipgloss.Style
	SerpRatingText lipgloss.Style
	SerpFAQ        lipgloss.Style
}

func NewTheme() Theme {
	if os.Getenv("SERPSIM_NO_COLOR") == "1" {
		return newNoColorTheme()
	}
	return newDefaultTheme()
}

func newDefaultTheme() Theme {
	t := Theme{
		TextPrimary: lipgloss.AdaptiveColor{Light: "#1d2433", Dark: "#f2f2f2"},
		TextMuted:   lipgloss.AdaptiveColor{Light: "#4a5568", Dark: "#c7c7c7"},
		Success:     lipgloss.AdaptiveColor{Light: "#0f766e", Dark: "#46d1b7"},
		Warn:        lipgloss.AdaptiveColor{Light: "#b45309", Dark: "#f4b27d"},
		Error:       lipgloss.AdaptiveColor{Light: "#b42318", Dark: "#ff7a7a"},
		Border:      lipgloss.AdaptiveColor{Light: "#cbd5e0", Dark: "#3a3a3a"},
		BorderHi:    lipgloss.AdaptiveColor{Light: "#1f6feb", Dark: "#7aa2ff"},
	}

	t.TopBar = lipgloss.NewStyle().Foreground(t.TextMuted)
	t.TopBarTitle = lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary)
	t.TopBarBadge = lipgloss.NewStyle().Bold(true).Foreground(t.BorderHi)
	t.TopBarMeta = lipgloss.NewStyle().Foreground(t.TextMuted)

	t.Pane = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(t.Border).Padding(0, 1)
	t.PaneFocused = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(t.BorderHi).Padding(0, 1)
	t.PaneTitle = lipgloss.NewStyle().Bold(true).Foreground(t.TextMuted)
	t.PaneTitleF = lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary)
	t.Footer = lipgloss.NewStyle().Foreground(t.TextMuted)
	t.InputLabel = lipgloss.NewStyle().Foreground(t.TextMuted)
	t.InputLabelF = lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary)
	t.StatusOK = lipgloss.NewStyle().Foreground(t.Success)
	t.StatusWarn = lipgloss.NewStyle().Bold(true).Foreground(t.Warn)
	t.MetricLine = lipgloss.NewStyle().Foreground(t.TextPrimary)
	t.Hint = lipgloss.NewStyle().Foreground(t.TextMuted)

	// Classic result-page colors: blue link, green breadcrumb, gray body.
	t.SerpTitle = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.AdaptiveColor{Light: "#1a0dab", Dark: "#8ab4f8"})
	t.SerpTitleOver = t.SerpTitle.Foreground(t.Error)
	t.SerpURL = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#006621", Dark: "#5bb974"})
	t.SerpDesc = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#4d5156", Dark: "#bdc1c6"})
	t.SerpDescOver = lipgloss.NewStyle().Foreground(t.Error)
	t.SerpStars = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#ffc700", Dark: "#ffc700"})
	t.SerpRatingText = t.SerpDesc
	t.SerpFAQ = t.SerpTitle.Underline(false)
	return t
}

func newNoColorTheme() Theme {
	t := Theme{
		TextPrimary: lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"},
		TextMuted:   lipgloss.AdaptiveColor{Light: "#333333", Dark: "#dddddd"},
		Border:      lipgloss.AdaptiveColor{Light: "#555555", Dark: "#777777"},
		BorderHi:    lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"},
	}

	t.TopBar = lipgloss.NewStyle().Foreground(t.TextPrimary)
	t.TopBarTitle = lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary)
	t.TopBarBadge = lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary)
	t.TopBarMeta = lipgloss.NewStyle().Foreground(t.TextMuted)

	t.Pane = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(t.Border).Padding(0, 1)
	t.PaneFocused = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(t.BorderHi).Padding(0, 1)
	t.PaneTitle = lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary)
	t.PaneTitleF = lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary)
	t.Footer = lipgloss.NewStyle().Foreground(t.TextMuted)
	t.InputLabel = lipgloss.NewStyle().Foreground(t.TextMuted)
	t.InputLabelF = lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary)
	t.StatusOK = lipgloss.NewStyle().Foreground(t.TextPrimary)
	t.StatusWarn = lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary)
	t.MetricLine = lipgloss.NewStyle().Foreground(t.TextPrimary)
	t.Hint = lipgloss.NewStyle().Foreground(t.TextMuted)

	t.SerpTitle = lipgloss.NewStyle().Underline(true).Foreground(t.TextPrimary)
	t.SerpTitleOver = lipgloss.NewStyle().Underline(true).Bold(true).Foreground(t.TextPrimary)
	t.SerpURL = lipgloss.NewStyle().Foreground(t.TextMuted)
	t.SerpDesc = lipgloss.NewStyle().Foreground(t.TextMuted)
	t.SerpDescOver = lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary)
	t.SerpStars = lipgloss.NewStyle().Foreground(t.TextPrimary)
	t.SerpRatingText = t.SerpDesc
	t.SerpFAQ = lipgloss.NewStyle().Foreground(t.TextPrimary)
	return t
}
