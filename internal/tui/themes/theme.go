package themes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	Header        lipgloss.Style
	HeaderTitle   lipgloss.Style
	Selected      lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusPending lipgloss.Style
	Italic        lipgloss.Style
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Muted         lipgloss.Style
	RoundedBox    lipgloss.Style
	StatBox       lipgloss.Style
	StatNumber    lipgloss.Style
	InfoCard      lipgloss.Style
	Sidebar       lipgloss.Style
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	Error         lipgloss.Color
	Warning       lipgloss.Color
	Success       lipgloss.Color
}

func build(primary, secondary, border, foreground, muted, success, warning, errColor, info lipgloss.Color) Theme {
	return Theme{
		Primary:    primary,
		Secondary:  secondary,
		Border:     border,
		Foreground: foreground,
		Success:    success,
		Warning:    warning,
		Error:      errColor,

		// Text styles
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(secondary),
		Normal: lipgloss.NewStyle().
			Foreground(foreground),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(foreground),
		Italic: lipgloss.NewStyle().
			Italic(true).
			Foreground(muted),
		Muted: lipgloss.NewStyle().
			Foreground(muted),
		Selected: lipgloss.NewStyle().
			Background(primary).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true),

		// Component styles
		Header: lipgloss.NewStyle().
			Background(primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(1, 2).
			MarginBottom(1),
		HeaderTitle: lipgloss.NewStyle().
			Bold(true),
		RoundedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		StatBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Align(lipgloss.Center).
			Width(22).
			Padding(0, 1),
		StatNumber: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),
		InfoCard: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(info).
			PaddingLeft(1),
		Sidebar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(border).
			PaddingRight(1).
			Width(24),

		// Status styles
		StatusSuccess: lipgloss.NewStyle().
			Foreground(success).
			Bold(true),
		StatusWarning: lipgloss.NewStyle().
			Foreground(warning).
			Bold(true),
		StatusError: lipgloss.NewStyle().
			Foreground(errColor).
			Bold(true),
		StatusInfo: lipgloss.NewStyle().
			Foreground(info).
			Bold(true),
		StatusPending: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),
	}
}

// Default is the green field theme.
var Default = build(
	lipgloss.Color("#2d5016"),
	lipgloss.Color("#4a7c2c"),
	lipgloss.Color("#4a7c2c"),
	lipgloss.Color("#f5f5f5"),
	lipgloss.Color("#8a8a8a"),
	lipgloss.Color("#4caf50"),
	lipgloss.Color("#f59e0b"),
	lipgloss.Color("#ef4444"),
	lipgloss.Color("#4a7c2c"),
)

// Harvest is a warm wheat-toned theme.
var Harvest = build(
	lipgloss.Color("#b7791f"),
	lipgloss.Color("#d69e2e"),
	lipgloss.Color("#744210"),
	lipgloss.Color("#fffaf0"),
	lipgloss.Color("#a0aec0"),
	lipgloss.Color("#68d391"),
	lipgloss.Color("#f6ad55"),
	lipgloss.Color("#fc8181"),
	lipgloss.Color("#63b3ed"),
)

// ByName returns the theme registered under name. An empty name selects
// Default.
func ByName(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default", "field":
		return Default, nil
	case "harvest":
		return Harvest, nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q", name)
	}
}
