package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/Veraticus/smart-farming/internal/goals"
	"github.com/Veraticus/smart-farming/internal/tui/themes"
)

// GoalsPanelModel renders overall and per-goal progress.
type GoalsPanelModel struct {
	theme themes.Theme
	bar   progress.Model
}

// NewGoalsPanelModel creates a goals panel.
func NewGoalsPanelModel(theme themes.Theme) GoalsPanelModel {
	bar := progress.New(
		progress.WithSolidFill(string(theme.Primary)),
		progress.WithoutPercentage(),
		progress.WithWidth(40),
	)

	return GoalsPanelModel{
		theme: theme,
		bar:   bar,
	}
}

// Resize sets the bar width.
func (m *GoalsPanelModel) Resize(width int) {
	m.bar.Width = max(10, min(width-4, 60))
}

// View renders summary.
func (m GoalsPanelModel) View(summary goals.Summary) string {
	var b strings.Builder

	b.WriteString(m.theme.Bold.Render("Overall Progress: "))
	b.WriteString(m.theme.StatNumber.Render(fmt.Sprintf("%d%%", summary.Percent)))
	b.WriteString("\n")
	b.WriteString(m.bar.ViewAs(float64(summary.Percent) / 100))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Subtitle.Render("Your Achievements"))
	b.WriteString("\n\n")

	for i, row := range summary.Goals {
		if i > 0 {
			b.WriteString("\n")
		}
		status := "⏳"
		if row.Completed {
			status = "✅"
		}

		b.WriteString(m.theme.Bold.Render(fmt.Sprintf("%s %s %s", row.Goal.Icon, row.Goal.Title, status)))
		b.WriteString("\n")
		b.WriteString(m.theme.Italic.Render(row.Goal.Description))
		b.WriteString("\n")
		b.WriteString(m.bar.ViewAs(row.Fraction()))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Progress: %d/%d\n", row.Current, row.Goal.Requirement))
	}

	return b.String()
}
