package components

import (
	"strings"

	"github.com/Veraticus/smart-farming/internal/tui/themes"
)

// OptionPicker cycles through a fixed list of choices. It starts with
// nothing chosen.
type OptionPicker struct {
	label   string
	options []string
	index   int
	focused bool
}

// NewOptionPicker creates a picker over options.
func NewOptionPicker(label string, options []string) OptionPicker {
	return OptionPicker{
		label:   label,
		options: options,
		index:   -1,
	}
}

// Next moves to the following option, wrapping at the end.
func (p *OptionPicker) Next() {
	if len(p.options) == 0 {
		return
	}
	p.index = (p.index + 1) % len(p.options)
}

// Prev moves to the preceding option, wrapping at the start.
func (p *OptionPicker) Prev() {
	if len(p.options) == 0 {
		return
	}
	if p.index <= 0 {
		p.index = len(p.options) - 1
		return
	}
	p.index--
}

// Value returns the chosen option or "" when nothing is chosen.
func (p OptionPicker) Value() string {
	if p.index < 0 || p.index >= len(p.options) {
		return ""
	}
	return p.options[p.index]
}

// Focus marks the picker as the active field.
func (p *OptionPicker) Focus() { p.focused = true }

// Blur clears focus.
func (p *OptionPicker) Blur() { p.focused = false }

// View renders the label and current choice.
func (p OptionPicker) View(theme themes.Theme) string {
	var b strings.Builder

	b.WriteString(theme.Bold.Render(p.label))
	b.WriteString("\n")

	value := p.Value()
	if value == "" {
		value = theme.StatusPending.Render("select...")
	}

	if p.focused {
		b.WriteString(theme.Selected.Render(" ◀ ") + " " + value + " " + theme.Selected.Render(" ▶ "))
	} else {
		b.WriteString("    " + value)
	}

	return b.String()
}
