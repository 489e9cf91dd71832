package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/smart-farming/internal/cli"
	"github.com/Veraticus/smart-farming/internal/common"
	"github.com/Veraticus/smart-farming/internal/config"
)

var (
	cfgFile string
	version = "dev"
	logFile *os.File
)

// tuiAnnotation marks commands that own the terminal; their logs must not
// go to stderr.
const tuiAnnotation = "farm/tui"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "farm",
		Short: "🇨🇦 Smart Farming Assistant",
		Long: `Smart Farming Assistant: AI-powered agricultural guidance for Canadian farmers.

Fill in a short farm profile, pick a crop, and get weather, pest, soil and
sustainability advice. Track your progress with built-in goals.`,
		PersistentPreRunE: initConfig,
		RunE:              runAssistant,
		SilenceUsage:      true,
		Annotations:       map[string]string{tuiAnnotation: "true"},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/farm/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().String("log-file", "", "write logs to this file")
	rootCmd.PersistentFlags().String("env-file", ".env", "dotenv file with API keys")
	rootCmd.PersistentFlags().String("provider", "", "LLM provider (openai, anthropic, gemini)")

	// Bind flags to viper
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("logging.file", rootCmd.PersistentFlags().Lookup("log-file"))
	_ = viper.BindPFlag("env_file", rootCmd.PersistentFlags().Lookup("env-file"))
	_ = viper.BindPFlag("llm.provider", rootCmd.PersistentFlags().Lookup("provider"))

	rootCmd.Flags().String("theme", "", "color theme (default, harvest)")
	_ = viper.BindPFlag("ui.theme", rootCmd.Flags().Lookup("theme"))

	// Add commands
	rootCmd.AddCommand(adviseCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func main() {
	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received interrupt signal, shutting down gracefully...")
		cancel()
	}()

	err := newRootCmd().ExecuteContext(ctx)
	cancel() // Always cleanup
	closeLogFile()

	if err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
		os.Exit(1)
	}
}

// formatError prefers the user-facing message for startup failures.
func formatError(err error) string {
	var userErr *common.UserError
	if errors.As(err, &userErr) {
		return cli.FormatError(userErr.UserMessage)
	}
	return cli.FormatError(fmt.Sprintf("Error: %v", err))
}

func initConfig(cmd *cobra.Command, _ []string) error {
	// Set up config file
	if cfgFile != "" {
		viper.SetConfigFile(config.ExpandPath(cfgFile))
	} else {
		dir, err := config.ConfigDir()
		if err != nil {
			return err
		}

		// Search for config in standard locations
		viper.AddConfigPath(dir)
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("FARM")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	// Set up logging
	if err := setupLogging(cmd); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	if err := config.LoadEnvFile(viper.GetString("env_file")); err != nil {
		return err
	}

	return nil
}

func setupLogging(cmd *cobra.Command) error {
	level, err := common.ParseLevel(viper.GetString("logging.level"))
	if err != nil {
		return err
	}

	var w io.Writer = cmd.ErrOrStderr()
	if path := viper.GetString("logging.file"); path != "" {
		closeLogFile()
		f, openErr := os.OpenFile(config.ExpandPath(path), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return fmt.Errorf("failed to open log file: %w", openErr)
		}
		logFile = f
		w = f
	} else if cmd.Annotations[tuiAnnotation] == "true" {
		w = io.Discard
	}

	return common.SetupLogger(w, level, viper.GetString("logging.format"))
}

func closeLogFile() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "farm version %s\n", version)
		},
	}
}
