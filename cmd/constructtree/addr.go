package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/constructhub/constructtree/constructs"
)

var addrCmd = &cobra.Command{
	Use:   "addr [id ...]",
	Short: "Compute the deterministic address for a chain of construct ids",
	Long: `addr prints the c8-prefixed hash that ComputeAddress derives from a
chain of construct ids, the same value a Construct reports via its
own Node().Addr(). It takes the ids from root to leaf as positional
arguments and requires no tree to actually be built. A root made by
NewRoot has the empty id, so pass "" as the first argument to match
a node's Node().Addr().

Example (the Assets bucket of the demo tree):

  constructtree addr "" StorageStack Assets`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAddr,
}

func runAddr(cmd *cobra.Command, args []string) error {
	addr := constructs.ComputeAddress(args)
	fmt.Fprintln(cmd.OutOrStdout(), addr)
	return nil
}
