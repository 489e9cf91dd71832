package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/smart-farming/internal/model"
	"github.com/Veraticus/smart-farming/internal/session"
	"github.com/Veraticus/smart-farming/internal/tui/themes"
)

// Form fields in focus order.
const (
	FieldName = iota
	FieldProvince
	FieldSeason
	FieldCropStage
	FieldSubmit
	fieldCount
)

const (
	pickerProvince = iota
	pickerSeason
	pickerCropStage
)

// ProfileFormModel is the farm profile questionnaire.
type ProfileFormModel struct {
	theme     themes.Theme
	name      textinput.Model
	err       string
	pickers   [3]OptionPicker
	focus     int
	width     int
	submitted bool
}

// NewProfileFormModel creates an empty form with the name field focused.
func NewProfileFormModel(theme themes.Theme) ProfileFormModel {
	name := textinput.New()
	name.Placeholder = "Enter your name"
	name.Prompt = "› "
	name.CharLimit = 64
	name.Width = 40
	name.Focus()

	return ProfileFormModel{
		theme: theme,
		name:  name,
		pickers: [3]OptionPicker{
			NewOptionPicker("📍 Province", toStrings(model.Provinces)),
			NewOptionPicker("🌤️ Current Season", toStrings(model.Seasons)),
			NewOptionPicker("🌱 Crop Stage", toStrings(model.CropStages)),
		},
		focus: FieldName,
	}
}

// Init starts the cursor blink.
func (m ProfileFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m ProfileFormModel) Update(msg tea.Msg) (ProfileFormModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "down":
			return m, m.setFocus(m.focus + 1)
		case "shift+tab", "up":
			return m, m.setFocus(m.focus - 1)
		case "enter":
			if m.focus == FieldSubmit {
				m.submitted = true
				return m, nil
			}
			return m, m.setFocus(m.focus + 1)
		case "left", "h":
			if p := m.focusedPicker(); p != nil {
				p.Prev()
				return m, nil
			}
		case "right", "l", " ":
			if p := m.focusedPicker(); p != nil {
				p.Next()
				return m, nil
			}
		}
	}

	if m.focus != FieldName {
		return m, nil
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

func (m *ProfileFormModel) focusedPicker() *OptionPicker {
	switch m.focus {
	case FieldProvince:
		return &m.pickers[pickerProvince]
	case FieldSeason:
		return &m.pickers[pickerSeason]
	case FieldCropStage:
		return &m.pickers[pickerCropStage]
	default:
		return nil
	}
}

func (m *ProfileFormModel) setFocus(field int) tea.Cmd {
	m.focus = (field + fieldCount) % fieldCount

	for i := range m.pickers {
		m.pickers[i].Blur()
	}
	if p := m.focusedPicker(); p != nil {
		p.Focus()
	}

	if m.focus == FieldName {
		return m.name.Focus()
	}
	m.name.Blur()
	return nil
}

// Focus returns the focused field.
func (m ProfileFormModel) Focus() int {
	return m.focus
}

// IsSubmitted reports whether the user pressed submit since the last
// Acknowledge.
func (m ProfileFormModel) IsSubmitted() bool {
	return m.submitted
}

// Acknowledge clears the submitted flag.
func (m ProfileFormModel) Acknowledge() ProfileFormModel {
	m.submitted = false
	return m
}

// Input returns the form values.
func (m ProfileFormModel) Input() session.ProfileInput {
	return session.ProfileInput{
		Name:      m.name.Value(),
		Province:  m.pickers[pickerProvince].Value(),
		Season:    m.pickers[pickerSeason].Value(),
		CropStage: m.pickers[pickerCropStage].Value(),
	}
}

// SetError sets the inline error shown under the form.
func (m ProfileFormModel) SetError(message string) ProfileFormModel {
	m.err = message
	return m
}

// Error returns the inline error.
func (m ProfileFormModel) Error() string {
	return m.err
}

// Resize sets the available width.
func (m *ProfileFormModel) Resize(width int) {
	m.width = width
	m.name.Width = max(10, min(width-6, 50))
}

// View renders the form.
func (m ProfileFormModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Bold.Render("👤 Farmer Name"))
	b.WriteString("\n")
	b.WriteString(m.name.View())
	b.WriteString("\n\n")

	for _, p := range m.pickers {
		b.WriteString(p.View(m.theme))
		b.WriteString("\n\n")
	}

	button := " Continue → "
	if m.focus == FieldSubmit {
		button = m.theme.Selected.Render(button)
	} else {
		button = m.theme.RoundedBox.Render(button)
	}
	b.WriteString(button)

	if m.err != "" {
		b.WriteString("\n\n")
		b.WriteString(m.theme.StatusError.Render("✗ " + m.err))
	}

	return lipgloss.NewStyle().Width(max(m.width, 40)).Render(b.String())
}

func toStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
