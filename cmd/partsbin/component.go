// Component command group for the partsbin CLI.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/partsbin/pkg/importer"
	"github.com/mesh-intelligence/partsbin/pkg/types"
)

var componentCmd = &cobra.Command{
	Use:   "component",
	Short: "Manage catalog components",
}

var (
	flagDescription string
	flagPrice       string
	flagQuantity    int
	flagCategory    string
	flagContains    string
	flagLimit       int
	flagOffset      int
)

var componentAddCmd = &cobra.Command{
	Use:   "add IDENTIFIER",
	Short: "Add a component to the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "component add:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		price := decimal.Zero
		if flagPrice != "" {
			price, err = decimal.NewFromString(flagPrice)
			if err != nil {
				return fmt.Errorf("parsing price %q: %w", flagPrice, err)
			}
		}

		component := &types.Component{
			Identifier:  args[0],
			Description: flagDescription,
			Price:       price,
			Quantity:    flagQuantity,
		}

		created, err := store.InsertComponent(component)
		if err != nil {
			return fmt.Errorf("inserting component: %w", err)
		}

		// Assign a category: the --category flag wins, otherwise classify
		// from the identifier and description.
		categoryName := flagCategory
		if categoryName == "" {
			categoryName = importer.Classify(created.Identifier, created.Description)
		}
		category, err := findCategoryByName(store, categoryName)
		if err != nil {
			return fmt.Errorf("resolving category: %w", err)
		}
		if err := store.AssignCategory(created.ComponentID, category.CategoryID); err != nil {
			return fmt.Errorf("assigning category: %w", err)
		}

		created, err = store.GetComponent(created.ComponentID)
		if err != nil {
			return fmt.Errorf("reading component: %w", err)
		}

		if flagJSON {
			return printJSON(created)
		}
		printComponent(created)
		return nil
	},
}

var componentGetCmd = &cobra.Command{
	Use:   "get IDENTIFIER",
	Short: "Show a component by identifier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "component get:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		component, err := store.FindComponent(args[0])
		if err != nil {
			return fmt.Errorf("finding component: %w", err)
		}

		if flagJSON {
			return printJSON(component)
		}
		printComponent(component)
		return nil
	},
}

var componentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog components",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "component list:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		filter := types.ComponentFilter{
			IdentifierContains: flagContains,
			Category:           flagCategory,
			Limit:              flagLimit,
			Offset:             flagOffset,
		}

		components, err := store.ListComponents(filter)
		if err != nil {
			return fmt.Errorf("listing components: %w", err)
		}

		if flagJSON {
			return printJSON(components)
		}
		for _, component := range components {
			printComponent(component)
		}
		fmt.Printf("%d component(s)\n", len(components))
		return nil
	},
}

var componentUpdateCmd = &cobra.Command{
	Use:   "update IDENTIFIER",
	Short: "Update fields of a component",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "component update:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		var fields types.ComponentFields
		if cmd.Flags().Changed("description") {
			fields.Description = &flagDescription
		}
		if cmd.Flags().Changed("price") {
			price, err := decimal.NewFromString(flagPrice)
			if err != nil {
				return fmt.Errorf("parsing price %q: %w", flagPrice, err)
			}
			fields.Price = &price
		}
		if cmd.Flags().Changed("quantity") {
			fields.Quantity = &flagQuantity
		}

		updated, err := store.UpdateComponent(args[0], fields)
		if err != nil {
			return fmt.Errorf("updating component: %w", err)
		}

		if flagJSON {
			return printJSON(updated)
		}
		printComponent(updated)
		return nil
	},
}

var componentDeleteCmd = &cobra.Command{
	Use:   "delete IDENTIFIER",
	Short: "Delete a component and its category links",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "component delete:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		component, err := store.FindComponent(args[0])
		if err != nil {
			return fmt.Errorf("finding component: %w", err)
		}

		if err := store.DeleteComponent(component.Identifier); err != nil {
			return fmt.Errorf("deleting component: %w", err)
		}

		fmt.Println("Deleted component", component.Identifier)
		return nil
	},
}

var componentStockCmd = &cobra.Command{
	Use:   "stock IDENTIFIER DELTA",
	Short: "Adjust a component's stock quantity by a signed delta",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		delta, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("parsing delta %q: %w", args[1], err)
		}

		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "component stock:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		updated, err := store.AdjustQuantity(args[0], delta)
		if err != nil {
			return fmt.Errorf("adjusting quantity: %w", err)
		}

		if flagJSON {
			return printJSON(updated)
		}
		printComponent(updated)
		return nil
	},
}

func init() {
	componentAddCmd.Flags().StringVar(&flagDescription, "description", "", "component description")
	componentAddCmd.Flags().StringVar(&flagPrice, "price", "", "component price (decimal)")
	componentAddCmd.Flags().IntVar(&flagQuantity, "quantity", 0, "stock quantity")
	componentAddCmd.Flags().StringVar(&flagCategory, "category", "", "category name (classified from identifier when omitted)")

	componentListCmd.Flags().StringVar(&flagContains, "contains", "", "filter by identifier substring")
	componentListCmd.Flags().StringVar(&flagCategory, "category", "", "filter by category name")
	componentListCmd.Flags().IntVar(&flagLimit, "limit", 0, "maximum results (0 = unlimited)")
	componentListCmd.Flags().IntVar(&flagOffset, "offset", 0, "results to skip")

	componentUpdateCmd.Flags().StringVar(&flagDescription, "description", "", "new description")
	componentUpdateCmd.Flags().StringVar(&flagPrice, "price", "", "new price (decimal)")
	componentUpdateCmd.Flags().IntVar(&flagQuantity, "quantity", 0, "new stock quantity")

	componentCmd.AddCommand(componentAddCmd)
	componentCmd.AddCommand(componentGetCmd)
	componentCmd.AddCommand(componentListCmd)
	componentCmd.AddCommand(componentUpdateCmd)
	componentCmd.AddCommand(componentDeleteCmd)
	componentCmd.AddCommand(componentStockCmd)
}
