package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gbmviz",
	Short: "Geometric Brownian Motion slope-field visualizer",
	Long: `gbmviz simulates Geometric Brownian Motion sample paths over a
drift slope field. The engine is fully deterministic: a seed and the
drift/volatility/path parameters reproduce every trajectory bit for bit.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(fieldCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
}
