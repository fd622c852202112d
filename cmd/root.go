package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/taxatools/taxadist/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Settings
)

var rootCmd = &cobra.Command{
	Use:   "taxadist",
	Short: "taxadist: turn taxa/feature CSV tables into BEAST-ready distance XML",
	Long: `taxadist reads a CSV table of numeric measurements (one row per taxon,
one column per feature) and emits an XML document holding, for each feature,
the upper-diagonal pairwise distances between taxa, optionally log10-scaled.`,
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
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.taxadist/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to built-in defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		cfg = cfgpkg.Default()
		return
	}
	cfg = c
}

// activeConfig returns the loaded configuration, or the built-in defaults
// when no config has been loaded (e.g. commands driven directly in tests).
func activeConfig() *cfgpkg.Settings {
	if cfg != nil {
		return cfg
	}
	return cfgpkg.Default()
}
