package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/smart-farming/internal/model"
	"github.com/Veraticus/smart-farming/internal/session"
	"github.com/Veraticus/smart-farming/internal/tui/components"
)

// renderFullView renders the sidebar next to the active page.
func (m Model) renderFullView() string {
	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.theme.Sidebar.Render(m.renderSidebar()),
		lipgloss.NewStyle().PaddingLeft(2).Width(m.contentWidth()).Render(m.renderPage()),
	)
	return m.withHelp(body)
}

// renderCompactView renders the page with a one-line stats bar for narrow
// terminals.
func (m Model) renderCompactView() string {
	body := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderStatusLine(),
		"",
		m.renderPage(),
	)
	return m.withHelp(body)
}

func (m Model) withHelp(body string) string {
	if !m.config.ShowHelp {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, "", m.help.View(m.keymap))
}

// renderPage renders the active page.
func (m Model) renderPage() string {
	var page string

	switch m.session.View() {
	case session.ViewDashboard:
		page = m.renderDashboard()
	case session.ViewProfile:
		page = m.renderProfile()
	case session.ViewCropSelect:
		page = m.renderCropSelect()
	case session.ViewResults:
		page = m.renderResults()
	case session.ViewGoals:
		page = m.renderGoals()
	case session.ViewWeather:
		page = m.renderWeather()
	case session.ViewMarket:
		page = m.renderMarket()
	case session.ViewCommunity:
		page = m.renderCommunity()
	}

	if m.status != "" {
		page = lipgloss.JoinVertical(lipgloss.Left, page, "", m.theme.StatusError.Render("✗ "+m.status))
	}
	return page
}

func (m Model) renderHeader(title, subtitle string) string {
	content := m.theme.HeaderTitle.Render(title) + "\n" + subtitle
	return m.theme.Header.Width(m.contentWidth() - 2).Render(content)
}

func (m Model) renderSidebar() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("🇨🇦 Smart Farming"))
	b.WriteString("\n")

	current := m.currentMenuIndex()
	for i, item := range menuItems {
		line := fmt.Sprintf("%s %s", item.key, item.label)
		if i == current {
			line = m.theme.Selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	stats := m.session.Stats()
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render("📊 Quick Stats"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Total Assessments: %d\n", stats.TotalAssessments))
	b.WriteString(fmt.Sprintf("Goals Completed: %d/%d", stats.GoalsCompleted, len(model.GoalCatalog)))

	return b.String()
}

func (m Model) currentMenuIndex() int {
	switch m.session.View() {
	case session.ViewDashboard:
		return 0
	case session.ViewProfile, session.ViewCropSelect:
		return 1
	case session.ViewGoals:
		return 2
	case session.ViewWeather:
		return 3
	case session.ViewMarket:
		return 4
	case session.ViewCommunity:
		return 5
	default:
		return -1
	}
}

func (m Model) renderStatusLine() string {
	stats := m.session.Stats()
	return m.theme.Muted.Render(fmt.Sprintf(
		"🇨🇦 Smart Farming | %s | Assessments: %d | Goals: %d/%d",
		m.session.View(),
		stats.TotalAssessments,
		stats.GoalsCompleted,
		len(model.GoalCatalog),
	))
}

func (m Model) renderDashboard() string {
	stats := m.session.Stats()

	statBox := func(value int, label string) string {
		return m.theme.StatBox.Render(m.theme.StatNumber.Render(fmt.Sprintf("%d", value)) + "\n" + label)
	}

	boxes := lipgloss.JoinHorizontal(
		lipgloss.Top,
		statBox(stats.TotalAssessments, "Total Assessments"),
		" ",
		statBox(stats.GoalsCompleted, "Goals Completed"),
		" ",
		statBox(stats.CropsExplored, "Crops Explored"),
	)

	challenges := make([]string, len(farmingChallenges))
	for i, c := range farmingChallenges {
		challenges[i] = c.icon + " " + m.theme.Bold.Render(c.title)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader("🇨🇦 Smart Farming Assistant", "AI-Powered Agricultural Guidance for Canadian Farmers"),
		boxes,
		"",
		m.theme.Selected.Render(" 🚀 Get Started - Create Assessment (Enter) "),
		"",
		m.theme.Subtitle.Render("⚠️ Common Farming Challenges in Canada"),
		strings.Join(challenges, "   "),
	)
}

func (m Model) renderProfile() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader("📋 Your Farm Profile", "Tell us about your farming situation"),
		m.form.View(),
		"",
		m.theme.Muted.Render("Tab to move between fields · ←/→ to choose · Esc back to dashboard"),
	)
}

func (m Model) renderCropSelect() string {
	draft, _ := m.session.Draft()
	selected := m.session.SelectedCrop()

	summary := m.theme.RoundedBox.Render(fmt.Sprintf(
		"%s\nName: %s | Province: %s | Season: %s | Stage: %s",
		m.theme.Bold.Render("💡 Based on your profile:"),
		draft.Name, draft.Province, draft.Season, draft.CropStage,
	))

	cards := make([]string, len(model.Crops))
	for i, crop := range model.Crops {
		label := crop.Icon() + "\n\n" + string(crop)
		if crop == selected {
			label += " ✓"
		}
		style := m.theme.RoundedBox.Width(14).Align(lipgloss.Center)
		if i == m.cropCursor {
			style = style.BorderForeground(m.theme.Primary).Bold(true)
		}
		cards[i] = style.Render(label)
	}

	parts := []string{
		m.renderHeader("🌱 Crop Recommendations", "Select the crop you want guidance for"),
		summary,
		"",
		m.theme.Subtitle.Render("Recommended Crops for Your Region"),
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
		"",
	}

	switch {
	case m.generating:
		parts = append(parts, m.spinner.View()+" 🤖 Generating AI-powered recommendations...")
	case selected != "":
		parts = append(parts,
			m.theme.StatusSuccess.Render("✅ Selected: "+string(selected)),
			m.theme.Selected.Render(" Get AI Recommendations → (Enter) "),
		)
	default:
		parts = append(parts, m.theme.Muted.Render("←/→ to browse · Space or Enter to select · Esc back"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderResults() string {
	latest, ok := m.session.Latest()
	if !ok || latest.Recommendations == nil {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.renderHeader("✅ Your Personalized Recommendations", "AI-generated guidance for your farm"),
			m.theme.StatusPending.Render("No assessments yet. Press 2 to start one."),
		)
	}

	parts := []string{
		m.renderHeader("✅ Your Personalized Recommendations", "AI-generated guidance for your farm"),
		components.RenderProfile(m.theme, latest.Profile),
		"",
	}

	if m.warning != "" {
		parts = append(parts, m.theme.StatusWarning.Render("⚠️ "+m.warning), "")
	}

	parts = append(parts,
		components.RenderRecommendations(m.theme, *latest.Recommendations, m.contentWidth()),
		"",
	)

	if m.warning == "" {
		parts = append(parts, m.theme.StatusSuccess.Render("🎉 Recommendations generated successfully!"))
	}
	parts = append(parts, m.theme.Muted.Render("Enter: back to dashboard"))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderGoals() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader("🎯 Goals & Achievements", "Track your farming journey"),
		m.goalsPanel.View(m.session.Summary()),
	)
}

func (m Model) renderWeather() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader("🌤️ Weather Forecast", "7-day agricultural weather outlook"),
		m.theme.RoundedBox.Render(m.theme.Bold.Render("📍 Canada - Agricultural Regions")+
			"\nGeneral weather patterns and recommendations for Canadian farming regions"),
		"",
		components.RenderBullets(m.theme, "☀️ Today's Conditions", todaysConditions),
		"",
		components.RenderBullets(m.theme, "📅 Week Ahead", weekAhead),
	)
}

func (m Model) renderMarket() string {
	rows := make([]string, len(commodityPrices))
	for i, p := range commodityPrices {
		change := m.theme.StatusSuccess.Render(p.change)
		if strings.HasPrefix(p.change, "-") {
			change = m.theme.StatusError.Render(p.change)
		}
		rows[i] = fmt.Sprintf("%s %-8s %s  %s", p.icon, p.crop, m.theme.Bold.Render(p.price), change)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader("💰 Market Prices", "Current commodity prices in Canada"),
		m.theme.RoundedBox.Render(m.theme.Bold.Render("📈 Market Trends")+
			"\nCommodity prices are updated weekly based on Canadian agricultural markets"),
		"",
		strings.Join(rows, "\n"),
	)
}

func (m Model) renderCommunity() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader("👥 Community Tips", "Shared wisdom from Canadian farmers"),
		components.RenderBullets(m.theme, "🔥 Top Tips This Week", communityTips),
	)
}
