package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/smart-farming/internal/model"
	"github.com/Veraticus/smart-farming/internal/tui/themes"
)

// RenderProfile renders the profile summary box.
func RenderProfile(theme themes.Theme, profile model.FarmerProfile) string {
	rows := [][2]string{
		{"👤 Farmer Name", profile.Name},
		{"📍 Province", string(profile.Province)},
		{"🌤️ Season", string(profile.Season)},
		{"🌱 Crop Stage", string(profile.CropStage)},
	}
	if profile.SelectedCrop != "" {
		rows = append(rows, [2]string{"🌾 Selected Crop", string(profile.SelectedCrop)})
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		value := row[1]
		if value == "" {
			value = "N/A"
		}
		lines = append(lines, theme.Bold.Render(row[0]+":")+" "+value)
	}

	return theme.RoundedBox.Render(strings.Join(lines, "\n"))
}

// RenderRecommendations renders the four advice categories.
func RenderRecommendations(theme themes.Theme, set model.RecommendationSet, width int) string {
	sections := make([]string, 0, 4)
	cardWidth := max(width-4, 30)

	for _, category := range set.Categories() {
		var b strings.Builder
		b.WriteString(theme.Subtitle.Render(category.Icon + " " + category.Title))
		b.WriteString("\n")

		if len(category.Tips) == 0 {
			b.WriteString(theme.InfoCard.Render(theme.StatusPending.Render("No advice in this category.")))
		} else {
			tips := make([]string, len(category.Tips))
			for i, tip := range category.Tips {
				tips[i] = "• " + tip
			}
			b.WriteString(theme.InfoCard.Width(cardWidth).Render(strings.Join(tips, "\n")))
		}

		sections = append(sections, b.String())
	}

	return lipgloss.JoinVertical(lipgloss.Left, joinWithGap(sections)...)
}

// RenderBullets renders a titled info card of bullet lines.
func RenderBullets(theme themes.Theme, title string, lines []string) string {
	bullets := make([]string, len(lines))
	for i, line := range lines {
		bullets[i] = "• " + line
	}
	return theme.Subtitle.Render(title) + "\n" + theme.InfoCard.Render(strings.Join(bullets, "\n"))
}

func joinWithGap(sections []string) []string {
	out := make([]string, 0, len(sections)*2)
	for i, s := range sections {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, s)
	}
	return out
}
