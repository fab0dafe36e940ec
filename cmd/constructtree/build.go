package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/constructhub/constructtree/constructs"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the demo construct tree and print a styled validation report",
	RunE:  runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	app, err := buildDemoTree()
	if err != nil {
		return fmt.Errorf("building demo tree: %w", err)
	}
	logger.Debug("demo tree built", "root", app.String())

	root := toPtermTree(app.Node())
	if err := pterm.DefaultTree.WithRoot(root).Render(); err != nil {
		return fmt.Errorf("rendering tree: %w", err)
	}

	var anyFailed bool
	for _, n := range app.Node().FindAll(constructs.PreOrder) {
		problems, err := n.Validate()
		if err != nil {
			pterm.Error.Printfln("%s: %v", n.Path(), err)
			anyFailed = true
			continue
		}
		for _, p := range problems {
			pterm.Warning.Printfln("%s: %s", n.Path(), p)
			anyFailed = true
		}
	}

	if anyFailed {
		pterm.Error.Println("validation reported problems")
	} else {
		pterm.Success.Println("every construct passed validation")
	}

	return nil
}

func toPtermTree(n *constructs.Node) pterm.TreeNode {
	label := n.ID()
	if n.Scope() == nil {
		label = "<root>"
	}
	label = fmt.Sprintf("%s  %s", label, n.Addr())

	children := n.Children()
	node := pterm.TreeNode{Text: label}
	for _, c := range children {
		node.Children = append(node.Children, toPtermTree(c))
	}
	return node
}
