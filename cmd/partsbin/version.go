// Version command for the partsbin CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/partsbin/pkg/partsbin"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the partsbin version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("partsbin", partsbin.Version)
	},
}
