package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marcus/dropdown/internal/gallery"
	"github.com/marcus/dropdown/pkg/ui/env"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print a single frame of the gallery",
	Long: `Render one frame of the gallery and print it, for snapshots and docs.

Use --open to show the list of one or more fields.`,
	Example: `  dropdown render --width 80 --height 24 --open priority`,
	RunE:    runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().Int("width", 80, "Frame width in cells")
	renderCmd.Flags().Int("height", 24, "Frame height in cells")
	renderCmd.Flags().StringSlice("open", nil, "Fields to show opened")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closer, err := setupLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	open, _ := cmd.Flags().GetStringSlice("open")
	if width <= 0 || height <= 0 {
		return fmt.Errorf("width and height must be positive")
	}

	m := gallery.New(cfg, gallery.WithLogger(logger), gallery.WithEnv(env.Terminal(os.Stdout)))
	defer m.Close()

	frame, err := m.Frame(width, height, open...)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), frame)
	return nil
}
