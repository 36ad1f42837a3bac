// Verify command for the partsbin CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/partsbin/pkg/types"
)

var verifyCmd = &cobra.Command{
	Use:   "verify IDENTIFIER...",
	Short: "Check that components exist in the catalog",
	Long: `Verify looks up each identifier and reports its stored state. Useful
after an import to spot-check that expected rows landed. Exits non-zero
when any identifier is missing.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "verify:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		missing := 0
		for _, identifier := range args {
			component, err := store.FindComponent(identifier)
			if errors.Is(err, types.ErrNotFound) {
				fmt.Printf("MISSING  %s\n", identifier)
				missing++
				continue
			}
			if err != nil {
				return fmt.Errorf("finding component %s: %w", identifier, err)
			}

			fmt.Printf("OK       ")
			printComponent(component)
		}

		if missing > 0 {
			return fmt.Errorf("%d of %d component(s) missing", missing, len(args))
		}
		fmt.Printf("All %d component(s) present\n", len(args))
		return nil
	},
}
