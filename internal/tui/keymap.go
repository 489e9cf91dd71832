package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Next  key.Binding
	Prev  key.Binding

	// Actions
	Select  key.Binding
	Confirm key.Binding
	Back    key.Binding

	// Pages
	Dashboard     key.Binding
	NewAssessment key.Binding
	Goals         key.Binding
	Weather       key.Binding
	Market        key.Binding
	Community     key.Binding

	// Application
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "previous"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "next"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("Shift+Tab", "previous field"),
		),

		// Actions
		Select: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "select"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "continue"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "back"),
		),

		// Pages
		Dashboard: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "dashboard"),
		),
		NewAssessment: key.NewBinding(
			key.WithKeys("2", "n"),
			key.WithHelp("2/n", "new assessment"),
		),
		Goals: key.NewBinding(
			key.WithKeys("3", "g"),
			key.WithHelp("3/g", "goals"),
		),
		Weather: key.NewBinding(
			key.WithKeys("4", "w"),
			key.WithHelp("4/w", "weather"),
		),
		Market: key.NewBinding(
			key.WithKeys("5", "m"),
			key.WithHelp("5/m", "market prices"),
		),
		Community: key.NewBinding(
			key.WithKeys("6", "c"),
			key.WithHelp("6/c", "community"),
		),

		// Application
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Confirm, k.Back, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Next, k.Prev, k.Select, k.Confirm},
		{k.Dashboard, k.NewAssessment, k.Goals},
		{k.Weather, k.Market, k.Community},
		{k.Back, k.Help, k.Quit, k.ForceQuit},
	}
}
