// Command constructtree builds a small demonstration construct tree and
// either prints a validation report or launches the interactive
// explorer over it.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagVerbose bool
	logger      *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "constructtree",
	Short: "Inspect and explore a construct tree",
	Long: `constructtree builds a demonstration hierarchy of constructs and lets
you inspect it: print the tree with a validation report, compute a node's
deterministic address, or walk the tree interactively.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if flagVerbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(buildCmd, exploreCmd, addrCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
