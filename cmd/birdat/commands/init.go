package commands

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/bird-chinese-community/bird2-autotype/internal/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize birdat configuration interactively",
	Long: `Guides you through setting up birdat configuration step by step.
Creates a global config file with message language, in-place behavior and
result cache settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit()
	},
}

func runInit() error {
	cfg := config.DefaultConfig()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Message language").
				Description("Language for CLI messages and warnings").
				Options(
					huh.NewOption("Auto-detect from locale", "auto"),
					huh.NewOption("English", "en"),
					huh.NewOption("中文", "zh"),
				).
				Value(&cfg.Language),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive prompt failed: %w", err)
	}

	form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Rewrite files in place by default?").
				Description("Without this, processed text goes to stdout unless -i is passed").
				Affirmative("Yes, modify files").
				Negative("No, print to stdout").
				Value(&cfg.InPlace),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive prompt failed: %w", err)
	}

	form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Enable the result cache?").
				Description("Skips re-processing unchanged files in directory mode").
				Affirmative("Yes").
				Negative("No").
				Value(&cfg.CacheEnabled),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive prompt failed: %w", err)
	}

	path := config.GlobalPath()
	if err := cfg.Save(path); err != nil {
		return err
	}
	fmt.Printf("Configuration saved to %s\n", path)
	return nil
}
