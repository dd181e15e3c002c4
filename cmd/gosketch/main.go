package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/philipparndt/gosketch/pkg/config"
	"github.com/philipparndt/gosketch/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string

	cfg    = config.Default()
	logger = slog.New(slog.DiscardHandler)
)

var rootCmd = &cobra.Command{
	Use:   "gosketch",
	Short: "Interactive 2D segment and polygon sketching",
	Long: `gosketch draws line segments and reports where they cross, builds
polygons from closed vertex chains and pins polygons to each other.

Run "gosketch edit" for the interactive editor, or replay a YAML script of
pointer events with "gosketch replay".`,
	Version:           version.GetFullVersion(),
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "gosketch.toml", "path to the TOML settings file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level (debug, info, warn, error)")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		if _, err := config.ParseLevel(logLevel); err != nil {
			return err
		}
		loaded.LogLevel = logLevel
	}
	cfg = loaded
	logger = cfg.NewLogger()
	logger.Debug("configuration loaded", "path", configPath, "near", cfg.NearDistance, "snap", cfg.SnapTolerance)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
