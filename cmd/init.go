package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/marcus/dropdown/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config")
	initCmd.Flags().BoolP("interactive", "i", false, "Choose settings with a form before writing")
}

func runInit(cmd *cobra.Command, args []string) error {
	path := getConfigPath()
	force, _ := cmd.Flags().GetBool("force")
	interactive, _ := cmd.Flags().GetBool("interactive")

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg := config.Default()
	if interactive {
		if err := initForm(cfg).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
				return nil
			}
			return fmt.Errorf("init form: %w", err)
		}
	}
	if err := cfg.Save(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

// initForm edits cfg in place.
func initForm(cfg *config.Config) *huh.Form {
	guard := strconv.Itoa(cfg.GuardBand)
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Where should option lists be drawn?").
				Options(
					huh.NewOption("Root layer (above everything)", config.PortalRoot),
					huh.NewOption("Page layer (scrolls with content)", config.PortalPage),
				).
				Value(&cfg.Portal),
			huh.NewConfirm().
				Title("Close a list after choosing an option?").
				Value(&cfg.CloseOnChoose),
			huh.NewConfirm().
				Title("Use fixed placement for every field?").
				Value(&cfg.Fixed),
			huh.NewInput().
				Title("Guard band (cells)").
				Value(&guard).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 0 {
						return errors.New("enter a non-negative number")
					}
					cfg.GuardBand = n
					return nil
				}),
		),
	).WithTheme(huh.ThemeBase())
}
