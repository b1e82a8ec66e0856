// Package main is the entry point for termfolio.
package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/termfolio/internal/config"
	"github.com/hy4ri/termfolio/internal/logging"
	"github.com/hy4ri/termfolio/internal/tui"
	"github.com/hy4ri/termfolio/internal/tui/state"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const version = "0.1.0"

type rootOptions struct {
	configPath string
	envFile    string
	theme      string
	noBoot     bool
	debug      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "termfolio",
		Short:         "A portfolio that lives in your terminal",
		Long:          "termfolio is a fake shell with a boot animation and a few commands about its author.\nType `help` once it has booted.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default ~/.config/termfolio/config.yaml)")
	flags.StringVar(&opts.envFile, "env-file", ".env", "file with TERMFOLIO_* overrides")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "theme for this run: latte, frappe, macchiato or mocha")
	cmd.Flags().BoolVar(&opts.noBoot, "no-boot", false, "skip the boot animation")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "write debug records to the log file")

	cmd.AddCommand(newInitCmd(opts))
	return cmd
}

// resolveConfigPath returns the --config value or the default path.
func resolveConfigPath(opts *rootOptions) (string, error) {
	if opts.configPath != "" {
		return opts.configPath, nil
	}
	path, err := config.ConfigPath()
	if err != nil {
		return "", fmt.Errorf("failed to get config path: %w", err)
	}
	return path, nil
}

// loadConfig reads the config file and applies .env and environment
// overrides.
func loadConfig(opts *rootOptions) (*config.Config, string, error) {
	path, err := resolveConfigPath(opts)
	if err != nil {
		return nil, "", err
	}
	if err := config.LoadEnvFile(opts.envFile); err != nil {
		return nil, "", err
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ApplyEnv()
	return cfg, path, nil
}

// runApp starts the terminal.
func runApp(opts *rootOptions) error {
	if opts.theme != "" {
		if _, err := state.ParseThemeName(opts.theme); err != nil {
			return err
		}
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("termfolio needs a terminal")
	}

	cfg, path, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logOpts := logging.Options{}
	if opts.debug {
		level := slog.LevelDebug
		logOpts.Level = &level
	}
	logger, closeLog, err := logging.NewFile(logOpts)
	if err != nil {
		// Logging is optional; run without it
		logger, closeLog = logging.NewDiscard(), func() error { return nil }
	}
	defer closeLog()

	app := tui.NewApp(tui.Options{
		Config:     cfg,
		ConfigPath: path,
		Theme:      opts.theme,
		SkipBoot:   opts.noBoot,
		Logger:     logger,
	})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
