// Package main is the entry point for the herostats CLI and server.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/1is1/dota-stat-calculator/internal/config"
	"github.com/1is1/dota-stat-calculator/internal/dataset"
	"github.com/1is1/dota-stat-calculator/internal/engine"
	"github.com/1is1/dota-stat-calculator/internal/engine/formula"
)

var rootCmd = &cobra.Command{
	Use:   "herostats",
	Short: "Hero derived-stat calculator and chart server",
	Long:  `herostats scrapes hero base stats, computes derived stats across levels 1-30, and serves comparison charts over HTTP.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scrapeCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(statsCmd)
}

// setupLogging installs the default text logger at the configured level.
// Log output goes to stderr so command output on stdout stays pipeable.
func setupLogging(cfg config.Config) {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))
}

// loadSnapshot reads the named dataset file, falling back to the embedded
// sample when no path is configured.
func loadSnapshot(path string) (*dataset.Snapshot, error) {
	if path == "" {
		return dataset.Sample(), nil
	}
	return dataset.Load(path)
}

// newCalculator builds the formula engine, applying coefficient overrides
// from the constants file when one is configured.
func newCalculator(constantsPath string) (engine.Calculator, error) {
	constants, err := formula.LoadConstants(constantsPath)
	if err != nil {
		return nil, err
	}
	return formula.New(&formula.Config{Constants: constants})
}
