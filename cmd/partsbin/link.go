// Link command group for the partsbin CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Manage component-category links",
}

var linkAssignCmd = &cobra.Command{
	Use:   "assign IDENTIFIER CATEGORY",
	Short: "Link a component to a category",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "link assign:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		component, err := store.FindComponent(args[0])
		if err != nil {
			return fmt.Errorf("finding component: %w", err)
		}
		category, err := findCategoryByName(store, args[1])
		if err != nil {
			return err
		}

		if err := store.AssignCategory(component.ComponentID, category.CategoryID); err != nil {
			return fmt.Errorf("assigning category: %w", err)
		}

		fmt.Printf("Linked %s to %s\n", component.Identifier, category.Name)
		return nil
	},
}

var linkRemoveCmd = &cobra.Command{
	Use:   "remove IDENTIFIER CATEGORY",
	Short: "Remove the link between a component and a category",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "link remove:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		component, err := store.FindComponent(args[0])
		if err != nil {
			return fmt.Errorf("finding component: %w", err)
		}
		category, err := findCategoryByName(store, args[1])
		if err != nil {
			return err
		}

		if err := store.Unlink(component.ComponentID, category.CategoryID); err != nil {
			return fmt.Errorf("removing link: %w", err)
		}

		fmt.Printf("Unlinked %s from %s\n", component.Identifier, category.Name)
		return nil
	},
}

var linkCategoriesCmd = &cobra.Command{
	Use:   "categories IDENTIFIER",
	Short: "List the categories a component is linked to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "link categories:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		component, err := store.FindComponent(args[0])
		if err != nil {
			return fmt.Errorf("finding component: %w", err)
		}

		categories, err := store.CategoriesFor(component.ComponentID)
		if err != nil {
			return fmt.Errorf("listing categories: %w", err)
		}

		if flagJSON {
			return printJSON(categories)
		}
		for _, category := range categories {
			fmt.Println(category.Name)
		}
		return nil
	},
}

var linkComponentsCmd = &cobra.Command{
	Use:   "components CATEGORY",
	Short: "List the components linked to a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "link components:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		category, err := findCategoryByName(store, args[0])
		if err != nil {
			return err
		}

		components, err := store.ComponentsFor(category.CategoryID)
		if err != nil {
			return fmt.Errorf("listing components: %w", err)
		}

		if flagJSON {
			return printJSON(components)
		}
		for _, component := range components {
			printComponent(component)
		}
		return nil
	},
}

func init() {
	linkCmd.AddCommand(linkAssignCmd)
	linkCmd.AddCommand(linkRemoveCmd)
	linkCmd.AddCommand(linkCategoriesCmd)
	linkCmd.AddCommand(linkComponentsCmd)
}
