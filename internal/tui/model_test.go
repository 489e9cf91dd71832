package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/smart-farming/internal/advisor"
	"github.com/Veraticus/smart-farming/internal/model"
	"github.com/Veraticus/smart-farming/internal/session"
	"github.com/Veraticus/smart-farming/internal/tui/components"
)

type fakeAdvisor struct {
	result   advisor.Result
	profiles []model.FarmerProfile
}

func (f *fakeAdvisor) Generate(_ context.Context, profile model.FarmerProfile) advisor.Result {
	f.profiles = append(f.profiles, profile)
	if f.result.Source == "" {
		return advisor.Result{
			Source:          model.SourceFallback,
			Recommendations: advisor.FallbackFor(profile),
		}
	}
	return f.result
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

// collect runs cmd and flattens batches into their messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func newTestModel(a Advisor) Model {
	return New(WithAdvisor(a), WithSession(session.New()), WithSize(120, 40))
}

// fillProfile walks from the dashboard to crop selection.
func fillProfile(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = press(t, m, "n")
	require.Equal(t, session.ViewProfile, m.session.View())

	m, _ = press(t, m, "Ada", "tab", "right", "tab", "right", "tab", "right", "right", "right", "tab", "enter")
	require.Equal(t, session.ViewCropSelect, m.session.View(), m.form.Error())
	return m
}

// generate selects the crop under the cursor and runs the provider command.
func generate(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = press(t, m, "enter")
	m, cmd := press(t, m, "enter")
	require.True(t, m.generating)

	var rec tea.Msg
	for _, msg := range collect(cmd) {
		if r, ok := msg.(recommendationsMsg); ok {
			rec = r
		}
	}
	require.NotNil(t, rec, "provider command did not produce recommendations")

	next, _ := m.Update(rec)
	m = next.(Model)
	require.False(t, m.generating)
	return m
}

func TestModel_FullAssessmentFlow(t *testing.T) {
	fake := &fakeAdvisor{}
	m := newTestModel(fake)

	m = fillProfile(t, m)
	draft, ok := m.session.Draft()
	require.True(t, ok)
	assert.Equal(t, model.ProvinceAlberta, draft.Province)
	assert.Equal(t, model.SeasonSpring, draft.Season)
	assert.Equal(t, model.CropStageGrowing, draft.CropStage)

	m, _ = press(t, m, "right") // Canola
	m = generate(t, m)

	assert.Equal(t, session.ViewResults, m.session.View())
	require.Len(t, fake.profiles, 1)
	assert.Equal(t, model.CropCanola, fake.profiles[0].SelectedCrop)
	assert.Equal(t, "Ada", fake.profiles[0].Name)

	assert.Equal(t, 1, m.session.Stats().TotalAssessments)
	assert.True(t, m.session.Goals().Has(model.GoalFirstAssessment))

	view := m.View()
	assert.Contains(t, view, "Your Personalized Recommendations")
	assert.Contains(t, view, "Canola")
	assert.Contains(t, view, "Recommendations generated successfully")

	m, _ = press(t, m, "enter")
	assert.Equal(t, session.ViewDashboard, m.session.View())
}

func TestModel_WarningBanner(t *testing.T) {
	fake := &fakeAdvisor{result: advisor.Result{
		Source:          model.SourceFallback,
		Warning:         advisor.UnavailableWarning("timeout"),
		Recommendations: advisor.Fallback(model.CropWheat, model.SeasonSpring, model.ProvinceAlberta),
	}}
	m := fillProfile(t, newTestModel(fake))
	m = generate(t, m)

	latest, ok := m.session.Latest()
	require.True(t, ok)
	assert.Equal(t, model.SourceFallback, latest.Source)

	view := m.View()
	assert.Contains(t, view, advisor.UnavailableWarning("timeout"))
	assert.NotContains(t, view, "Recommendations generated successfully")
}

func TestModel_InvalidProfileStaysOnForm(t *testing.T) {
	m := newTestModel(&fakeAdvisor{})
	m, _ = press(t, m, "n")

	// Jump straight to the submit button with nothing filled in.
	m, _ = press(t, m, "tab", "tab", "tab", "tab", "enter")

	assert.Equal(t, session.ViewProfile, m.session.View())
	assert.Contains(t, m.form.Error(), "Please fill in all fields")
	assert.Empty(t, m.session.Assessments())
	assert.Contains(t, m.View(), "Please fill in all fields")
}

func TestModel_TypingDoesNotNavigate(t *testing.T) {
	m := newTestModel(&fakeAdvisor{})
	m, _ = press(t, m, "n")
	require.Equal(t, components.FieldName, m.form.Focus())

	m, _ = press(t, m, "g", "w", "m", "q")

	assert.Equal(t, session.ViewProfile, m.session.View())
	assert.Equal(t, "gwmq", m.form.Input().Name)
	assert.False(t, m.quitting)
}

func TestModel_CropSelectBackClearsSelection(t *testing.T) {
	m := fillProfile(t, newTestModel(&fakeAdvisor{}))

	m, _ = press(t, m, "space")
	assert.Equal(t, model.CropWheat, m.session.SelectedCrop())
	assert.Contains(t, m.View(), "Selected: Wheat")

	m, _ = press(t, m, "esc")
	assert.Equal(t, session.ViewProfile, m.session.View())
	assert.Empty(t, m.session.SelectedCrop())
	assert.Equal(t, "Ada", m.form.Input().Name)
}

func TestModel_KeysIgnoredWhileGenerating(t *testing.T) {
	m := fillProfile(t, newTestModel(&fakeAdvisor{}))
	m, _ = press(t, m, "enter", "enter")
	require.True(t, m.generating)

	m, _ = press(t, m, "1", "esc", "q")
	assert.Equal(t, session.ViewCropSelect, m.session.View())
	assert.False(t, m.quitting)
	assert.Contains(t, m.View(), "Generating AI-powered recommendations")

	m, cmd := press(t, m, "ctrl+c")
	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_MenuNavigation(t *testing.T) {
	m := newTestModel(nil)

	tests := []struct {
		key      string
		want     session.View
		contains string
	}{
		{key: "3", want: session.ViewGoals, contains: "Goals & Achievements"},
		{key: "4", want: session.ViewWeather, contains: "Partly Cloudy"},
		{key: "5", want: session.ViewMarket, contains: "$650/tonne"},
		{key: "6", want: session.ViewCommunity, contains: "companion planting"},
		{key: "1", want: session.ViewDashboard, contains: "Common Farming Challenges in Canada"},
	}

	for _, tt := range tests {
		m, _ = press(t, m, tt.key)
		assert.Equal(t, tt.want, m.session.View(), tt.key)
		assert.Contains(t, m.View(), tt.contains, tt.key)
	}

	m, _ = press(t, m, "esc")
	assert.Equal(t, session.ViewDashboard, m.session.View())
}

func TestModel_NilAdvisorUsesFallback(t *testing.T) {
	m := fillProfile(t, newTestModel(nil))
	m = generate(t, m)

	latest, ok := m.session.Latest()
	require.True(t, ok)
	assert.Equal(t, model.SourceFallback, latest.Source)
	assert.Len(t, latest.Recommendations.WeatherAdvice, 4)
}

func TestModel_GoalsAccumulate(t *testing.T) {
	m := newTestModel(&fakeAdvisor{})
	for i := range model.Crops {
		m = fillProfile(t, m)
		for j := 0; j < i; j++ {
			m, _ = press(t, m, "right")
		}
		m = generate(t, m)
	}

	stats := m.session.Stats()
	assert.Equal(t, 4, stats.TotalAssessments)
	assert.Equal(t, 4, stats.CropsExplored)
	assert.True(t, m.session.Goals().Has(model.GoalAllCrops))

	m, _ = press(t, m, "g")
	view := m.View()
	assert.Contains(t, view, "Overall Progress: 40%")
	assert.Contains(t, view, "Progress: 4/4")
}

func TestModel_CompactLayout(t *testing.T) {
	m := newTestModel(nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 30})
	m = next.(Model)

	view := m.View()
	assert.Contains(t, view, "Assessments: 0")
	assert.NotContains(t, view, "Quick Stats")
}
