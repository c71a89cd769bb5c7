package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/marcus/dropdown/internal/config"
	"github.com/marcus/dropdown/internal/workdir"
)

var (
	version string
	baseDir string

	configPath string
	logFile    string
	logLevel   string
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

var rootCmd = &cobra.Command{
	Use:   "dropdown",
	Short: "Terminal select widget gallery",
	Long: `dropdown - a select/dropdown overlay for terminal UIs.

Runs a gallery page of select fields. Lists open under their box, follow it
while the page scrolls, and close on outside clicks or when the box scrolls
out of view.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir)
	addGlobalFlags(rootCmd.PersistentFlags())
}

func addGlobalFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&configPath, "config", "c", "", "Config file (default .dropdown/config.yaml)")
	fs.StringVar(&logFile, "log-file", "", "Write JSON logs to this file")
	fs.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func initBaseDir() {
	var err error
	baseDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine working directory: %v\n", err)
		os.Exit(1)
	}
}

// getConfigPath returns the --config flag, $DROPDOWN_CONFIG, or the nearest
// config at or above the working directory.
func getConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return workdir.FindConfig(baseDir)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(getConfigPath())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// setupLogger builds the logger for a run. The terminal belongs to the UI,
// so logs go to --log-file or nowhere. The returned closer is never nil.
func setupLogger() (*slog.Logger, io.Closer, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
	}
	if logFile == "" {
		return slog.New(slog.DiscardHandler), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, f, nil
}
