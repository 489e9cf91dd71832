package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/smart-farming/internal/session"
)

// Run starts the full-screen assistant and blocks until the user quits or
// ctx is cancelled. It returns the session so callers can report on it.
func Run(ctx context.Context, opts ...Option) (*session.Session, error) {
	opts = append([]Option{WithContext(ctx)}, opts...)
	m := New(opts...)

	program := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, tea.ErrInterrupted) {
			return m.session, nil
		}
		return m.session, fmt.Errorf("TUI error: %w", err)
	}

	return m.session, nil
}
