package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/smart-farming/internal/tui"
	"github.com/Veraticus/smart-farming/internal/tui/themes"
)

func runAssistant(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	provider, err := createAdvisor(ctx)
	if err != nil {
		return err
	}

	theme, err := themes.ByName(viper.GetString("ui.theme"))
	if err != nil {
		return fmt.Errorf("invalid ui.theme: %w", err)
	}

	sess, err := tui.Run(ctx,
		tui.WithAdvisor(provider),
		tui.WithTheme(theme),
		tui.WithLogger(slog.Default()),
	)
	if err != nil {
		return err
	}

	stats := sess.Stats()
	slog.Info("session finished",
		"assessments", stats.TotalAssessments,
		"goals_completed", stats.GoalsCompleted,
		"crops_explored", stats.CropsExplored)

	return nil
}
