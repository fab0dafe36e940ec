package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/constructhub/constructtree/explorer"
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Build the demo construct tree and walk it interactively",
	RunE:  runExplore,
}

func runExplore(cmd *cobra.Command, args []string) error {
	app, err := buildDemoTree()
	if err != nil {
		return fmt.Errorf("building demo tree: %w", err)
	}
	logger.Debug("launching explorer", "root", app.String())

	return explorer.Run(app.Node())
}
