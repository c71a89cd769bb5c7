package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/marcus/dropdown/internal/gallery"
	"github.com/marcus/dropdown/pkg/ui/env"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the interactive select gallery",
	Long: `Run the select gallery full screen with mouse support.

Fields come from the config file; without one a sample page is shown.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closer, err := setupLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	m := gallery.New(cfg, gallery.WithLogger(logger), gallery.WithEnv(env.Terminal(os.Stdout)))
	defer m.Close()

	logger.Info("gallery started", "fields", len(cfg.Fields), "config", getConfigPath())
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run gallery: %w", err)
	}

	for name, value := range m.Values() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", name, value)
	}
	return nil
}
