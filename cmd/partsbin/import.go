// Import command for the partsbin CLI.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/partsbin/pkg/importer"
)

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import components from a CSV file",
	Long: `Import reads a CSV file with an ITEM, PRICE, DESCRIPTION header and
reconciles each row against the catalog. New identifiers are inserted;
existing ones are overwritten only when the incoming price is higher, or
when the price matches and the incoming row supplies a description the
stored component lacks. Malformed rows are skipped and counted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		showRows := flagRows || flagVerbose
		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "import:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().Timestamp().Logger()
		if !flagVerbose {
			logger = logger.Level(zerolog.InfoLevel)
		}

		opts := []importer.Option{importer.WithLogger(logger)}
		if showRows {
			opts = append(opts, importer.WithRowOutcomes())
		}

		imp := importer.New(store, opts...)
		summary, err := imp.ImportFile(cmd.Context(), args[0])
		if err != nil {
			// A partial summary still describes the rows applied
			// before the failure.
			if summary != nil {
				printSummary(summary)
			}
			return fmt.Errorf("importing %s: %w", args[0], err)
		}

		if flagJSON {
			return printJSON(summary)
		}
		if showRows {
			for _, row := range summary.Rows {
				fmt.Printf("line %-5d %-20s %s\n", row.Line, row.Identifier, row.Outcome)
			}
		}
		printSummary(summary)
		return nil
	},
}

var flagRows bool

func init() {
	importCmd.Flags().BoolVar(&flagRows, "rows", false, "print per-row outcomes")
}

func printSummary(s *importer.Summary) {
	fmt.Printf("Imported %d row(s): %d inserted, %d overwritten, %d unchanged, %d skipped\n",
		s.Inserted+s.Overwritten+s.Unchanged+s.Skipped,
		s.Inserted, s.Overwritten, s.Unchanged, s.Skipped)
}
