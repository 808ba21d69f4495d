// Command crloc traces orbits and localises the chain-recurrent set of a
// user-supplied planar map (f, g), replacing the original tool's
// start.py mode menu with cobra subcommands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var sessionPath string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "crloc",
		Short:         "Trace orbits and localise chain-recurrent sets for planar maps",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&sessionPath, "session", "", "session file path (default settings/.recent_session)")
	root.AddCommand(newOrbitCmd())
	root.AddCommand(newLocaliseCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "crloc:", err)
		os.Exit(1)
	}
}
