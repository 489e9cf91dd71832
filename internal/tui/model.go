package tui

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/smart-farming/internal/common"
	"github.com/Veraticus/smart-farming/internal/model"
	"github.com/Veraticus/smart-farming/internal/session"
	"github.com/Veraticus/smart-farming/internal/tui/components"
	"github.com/Veraticus/smart-farming/internal/tui/themes"
)

// Model holds the main TUI state.
type Model struct {
	theme      themes.Theme
	advisor    Advisor
	session    *session.Session
	logger     *slog.Logger
	config     Config
	keymap     KeyMap
	help       help.Model
	spinner    spinner.Model
	form       components.ProfileFormModel
	goalsPanel components.GoalsPanelModel
	warning    string
	status     string
	cropCursor int
	width      int
	height     int
	generating bool
	quitting   bool
}

// New creates the TUI model.
func New(opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newModel(cfg)
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	if cfg.Session == nil {
		cfg.Session = session.New()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = cfg.Theme.StatusInfo

	m := Model{
		theme:      cfg.Theme,
		advisor:    cfg.Advisor,
		session:    cfg.Session,
		logger:     cfg.Logger,
		config:     cfg,
		keymap:     DefaultKeyMap(),
		help:       help.New(),
		spinner:    sp,
		form:       components.NewProfileFormModel(cfg.Theme),
		goalsPanel: components.NewGoalsPanelModel(cfg.Theme),
		width:      cfg.Width,
		height:     cfg.Height,
	}
	m.handleResize()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("Smart Farming Assistant"),
		m.form.Init(),
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case spinner.TickMsg:
		if !m.generating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case recommendationsMsg:
		m.handleRecommendations(msg)
		return m, nil
	}

	if m.session.View() == session.ViewProfile {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.width < 90 {
		return m.renderCompactView()
	}
	return m.renderFullView()
}

// typing reports whether keys should go to the name field.
func (m Model) typing() bool {
	return m.session.View() == session.ViewProfile && m.form.Focus() == components.FieldName
}

// handleKey routes a key press: global keys first, then the active page.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	// The provider call is in flight; nothing else may change the session.
	if m.generating {
		return m, nil
	}

	if key.Matches(msg, m.keymap.Back) {
		m.navigate(session.ActionBack)
		return m, nil
	}

	if !m.typing() {
		if action, ok := m.menuAction(msg); ok {
			return m, m.navigate(action)
		}

		switch {
		case key.Matches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	switch m.session.View() {
	case session.ViewDashboard:
		if key.Matches(msg, m.keymap.Confirm) {
			return m, m.navigate(session.ActionNewAssessment)
		}

	case session.ViewProfile:
		return m.updateProfile(msg)

	case session.ViewCropSelect:
		return m.updateCropSelect(msg)

	case session.ViewResults:
		if key.Matches(msg, m.keymap.Confirm) {
			m.navigate(session.ActionOpenDashboard)
		}
	}

	return m, nil
}

func (m Model) menuAction(msg tea.KeyMsg) (session.Action, bool) {
	switch {
	case key.Matches(msg, m.keymap.Dashboard):
		return session.ActionOpenDashboard, true
	case key.Matches(msg, m.keymap.NewAssessment):
		return session.ActionNewAssessment, true
	case key.Matches(msg, m.keymap.Goals):
		return session.ActionOpenGoals, true
	case key.Matches(msg, m.keymap.Weather):
		return session.ActionOpenWeather, true
	case key.Matches(msg, m.keymap.Market):
		return session.ActionOpenMarket, true
	case key.Matches(msg, m.keymap.Community):
		return session.ActionOpenCommunity, true
	default:
		return 0, false
	}
}

// navigate applies action and resets page state for the destination.
func (m *Model) navigate(action session.Action) tea.Cmd {
	from := m.session.View()
	if err := m.session.Navigate(action); err != nil {
		m.logger.Debug("navigation ignored", "view", from, "action", action, "error", err)
		return nil
	}

	m.status = ""
	to := m.session.View()

	switch {
	case to == session.ViewProfile && action == session.ActionNewAssessment:
		m.form = components.NewProfileFormModel(m.theme)
		m.handleResize()
		return m.form.Init()
	case to == session.ViewProfile && from == session.ViewCropSelect:
		m.form = m.form.SetError("")
	case to == session.ViewCropSelect:
		m.cropCursor = 0
	}

	return nil
}

func (m Model) updateProfile(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)

	if !m.form.IsSubmitted() {
		return m, cmd
	}
	m.form = m.form.Acknowledge()

	if err := m.session.SubmitProfile(m.form.Input()); err != nil {
		if session.IsValidationError(err) {
			m.form = m.form.SetError(common.UserMessage(err))
			return m, cmd
		}
		common.LogError(err, "profile not accepted", nil)
		m.status = common.UserMessage(err)
		return m, cmd
	}

	m.form = m.form.SetError("")
	m.cropCursor = 0
	return m, cmd
}

func (m Model) updateCropSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Left), key.Matches(msg, m.keymap.Up):
		m.cropCursor = (m.cropCursor - 1 + len(model.Crops)) % len(model.Crops)

	case key.Matches(msg, m.keymap.Right), key.Matches(msg, m.keymap.Down), key.Matches(msg, m.keymap.Next):
		m.cropCursor = (m.cropCursor + 1) % len(model.Crops)

	case key.Matches(msg, m.keymap.Select):
		m.selectCrop()

	case key.Matches(msg, m.keymap.Confirm):
		// First press selects the crop under the cursor, the next one
		// requests recommendations.
		if m.session.SelectedCrop() != model.Crops[m.cropCursor] {
			m.selectCrop()
			return m, nil
		}
		return m.startGeneration()
	}

	return m, nil
}

func (m *Model) selectCrop() {
	if err := m.session.SelectCrop(model.Crops[m.cropCursor]); err != nil {
		m.status = common.UserMessage(err)
		return
	}
	m.status = ""
}

func (m Model) startGeneration() (tea.Model, tea.Cmd) {
	profile, err := m.session.PendingProfile()
	if err != nil {
		m.status = common.UserMessage(err)
		return m, nil
	}

	m.generating = true
	m.status = ""
	m.warning = ""
	m.logger.Info("requesting recommendations",
		"crop", profile.SelectedCrop,
		"province", profile.Province,
		"season", profile.Season)

	return m, tea.Batch(m.spinner.Tick, m.generateRecommendations(profile))
}

func (m *Model) handleRecommendations(msg recommendationsMsg) {
	m.generating = false

	assessment, err := m.session.Complete(msg.profile, msg.result)
	if err != nil {
		common.LogError(err, "failed to record assessment", common.Fields{
			"crop": msg.profile.SelectedCrop,
		})
		m.status = "Error generating recommendations. Please try again."
		return
	}

	m.warning = msg.result.Warning
	m.logger.Info("assessment recorded",
		"id", assessment.ID,
		"source", assessment.Source,
		"goals", len(m.session.Goals()))
}

// handleResize adjusts component sizes when the terminal resizes.
func (m *Model) handleResize() {
	width := m.contentWidth()
	m.form.Resize(width)
	m.goalsPanel.Resize(width)
	m.help.Width = m.width
}

func (m Model) contentWidth() int {
	if m.width >= 90 {
		return m.width - 28
	}
	return max(m.width-2, 20)
}
