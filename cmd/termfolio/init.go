package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/hy4ri/termfolio/internal/config"
	"github.com/hy4ri/termfolio/internal/tui/state"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newInitCmd(opts *rootOptions) *cobra.Command {
	var (
		theme string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a config file",
		Long:  "Create a config file. When run from a terminal without --theme it asks for the theme.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveConfigPath(opts)
			if err != nil {
				return err
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
			}

			if theme == "" && isInteractive() {
				if theme, err = pickTheme(); err != nil {
					return err
				}
			}
			if theme == "" {
				theme = string(state.DefaultTheme)
			}
			if _, err := state.ParseThemeName(theme); err != nil {
				return err
			}

			cfg := config.DefaultConfig()
			cfg.UI.Theme = theme
			if err := config.SaveTo(path, cfg); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Config file created: %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "", "theme to store: latte, frappe, macchiato or mocha")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}

func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// pickTheme asks for a theme with a select form.
func pickTheme() (string, error) {
	selected := string(state.DefaultTheme)

	options := make([]huh.Option[string], 0, len(state.ThemeNames()))
	for _, t := range state.ThemeNames() {
		options = append(options, huh.NewOption(string(t), string(t)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Description("Catppuccin flavour for the terminal. Change it later with `themes set <name>`.").
				Options(options...).
				Value(&selected),
		),
	)
	form.WithInput(os.Stdin).WithOutput(os.Stdout).WithTheme(huh.ThemeCatppuccin())
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("failed to read theme: %w", err)
	}
	return selected, nil
}
