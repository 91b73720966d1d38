package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KineticBytes/echem-cli/internal/config"
)

var (
	// Global flags (wired later to config/viper)
	cfgFile string
	debug   bool
	// Chart flags (override config if set)
	flagChartWidth  int
	flagChartHeight int

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "echem",
	Short: "Echem CLI: analyze plain-text electrochemistry instrument exports",
	Long:  `Echem is a CLI tool that ingests a plain-text instrument export, infers the experimental technique, extracts the numeric table, and composes a multi-section analysis report enriched with a built-in chemistry knowledge base.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.echem/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().IntVar(&flagChartWidth, "chart-width", 0, "rendered chart width in pixels (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagChartHeight, "chart-height", 0, "rendered chart height in pixels (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c

	// Apply CLI overrides if provided
	f := rootCmd.PersistentFlags()
	if f.Changed("chart-width") && flagChartWidth > 0 {
		cfg.ChartWidth = flagChartWidth
	}
	if f.Changed("chart-height") && flagChartHeight > 0 {
		cfg.ChartHeight = flagChartHeight
	}
}
