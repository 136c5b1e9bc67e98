package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexiusacademia/gotruss/internal/version"
	"github.com/spf13/cobra"
)

var (
	verbose bool

	// logger writes diagnostics to stderr; reports go to stdout
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
)

var rootCmd = &cobra.Command{
	Use:   "gotruss",
	Short: "2D Truss Force Analysis Tool",
	Long: `gotruss - Go Truss Force Analyzer

A CLI tool for the static analysis of 2D pin-jointed trusses.

Given node positions, supports and nodal loads, gotruss assembles the
joint equilibrium equations and solves them for:
  - Support reactions (pin, roller-x, roller-y)
  - Member axial forces (tension positive, compression negative)
  - Governing forces under NSCP 2015 load combinations

Trusses are defined in JSON or YAML files.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gotruss v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Truss Force Analyzer                                 ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the static analysis of 2D pin-jointed trusses.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Support reactions and member axial forces")
		fmt.Println("    • Equilibrium system inspection (DOFs, matrix, rank)")
		fmt.Println("    • NSCP 2015 load combination envelopes")
		fmt.Println("    • ASCII sketches and PNG/SVG/PDF diagrams")
		fmt.Println()
		fmt.Println("  Use 'gotruss --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log solver diagnostics to stderr")
}
