// Category command group for the partsbin CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/partsbin/pkg/types"
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage component categories",
}

var (
	flagCategoryDescription string
	flagCategoryRename      string
)

var categoryAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Create a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "category add:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		category, err := store.CreateCategory(&types.Category{
			Name:        args[0],
			Description: flagCategoryDescription,
		})
		if err != nil {
			return fmt.Errorf("creating category: %w", err)
		}

		if flagJSON {
			return printJSON(category)
		}
		fmt.Println("Created category", category.Name)
		return nil
	},
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "category list:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		categories, err := store.ListCategories()
		if err != nil {
			return fmt.Errorf("listing categories: %w", err)
		}

		if flagJSON {
			return printJSON(categories)
		}
		for _, category := range categories {
			components, err := store.ComponentsFor(category.CategoryID)
			if err != nil {
				return fmt.Errorf("counting components: %w", err)
			}
			fmt.Printf("%-24s %4d component(s)  %s\n", category.Name, len(components), category.Description)
		}
		return nil
	},
}

var categoryUpdateCmd = &cobra.Command{
	Use:   "update NAME",
	Short: "Rename a category or change its description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "category update:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		category, err := findCategoryByName(store, args[0])
		if err != nil {
			return err
		}

		name := category.Name
		if cmd.Flags().Changed("rename") {
			name = flagCategoryRename
		}
		description := category.Description
		if cmd.Flags().Changed("description") {
			description = flagCategoryDescription
		}

		updated, err := store.UpdateCategory(category.CategoryID, name, description)
		if err != nil {
			return fmt.Errorf("updating category: %w", err)
		}

		if flagJSON {
			return printJSON(updated)
		}
		fmt.Println("Updated category", updated.Name)
		return nil
	},
}

var categoryDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a category and its component links",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "category delete:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		category, err := findCategoryByName(store, args[0])
		if err != nil {
			return err
		}

		if err := store.DeleteCategory(category.CategoryID); err != nil {
			return fmt.Errorf("deleting category: %w", err)
		}

		fmt.Println("Deleted category", category.Name)
		return nil
	},
}

func init() {
	categoryAddCmd.Flags().StringVar(&flagCategoryDescription, "description", "", "category description")

	categoryUpdateCmd.Flags().StringVar(&flagCategoryRename, "rename", "", "new category name")
	categoryUpdateCmd.Flags().StringVar(&flagCategoryDescription, "description", "", "new category description")

	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryUpdateCmd)
	categoryCmd.AddCommand(categoryDeleteCmd)
}
