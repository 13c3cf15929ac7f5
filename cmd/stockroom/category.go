// Category commands manage the categories collection.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

var (
	categoryName        string
	categoryDescription string
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage categories",
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all categories",
	Args:  cobra.NoArgs,
	RunE:  runCategoryList,
}

var categoryGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Fetch one category by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoryGet,
}

var categoryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new category",
	Long: `Add creates a new category with the given name.

Names are unique across categories. Adding a second category with an
already used name fails.

Example:
  stockroom category add --name "Tools" --description "Hand tools"`,
	Args: cobra.NoArgs,
	RunE: runCategoryAdd,
}

var categoryUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an existing category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoryUpdate,
}

var categoryDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a category by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoryDelete,
}

var categoryCountsCmd = &cobra.Command{
	Use:   "with-product-count",
	Short: "List categories with their product counts",
	Args:  cobra.NoArgs,
	RunE:  runCategoryCounts,
}

func init() {
	categoryAddCmd.Flags().StringVar(&categoryName, "name", "", "category name (required)")
	categoryAddCmd.Flags().StringVar(&categoryDescription, "description", "", "category description")
	_ = categoryAddCmd.MarkFlagRequired("name")

	categoryUpdateCmd.Flags().StringVar(&categoryName, "name", "", "new category name")
	categoryUpdateCmd.Flags().StringVar(&categoryDescription, "description", "", "new category description")

	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryGetCmd)
	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryUpdateCmd)
	categoryCmd.AddCommand(categoryDeleteCmd)
	categoryCmd.AddCommand(categoryCountsCmd)
}

func runCategoryList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	categories, err := store.Categories().List()
	if err != nil {
		return fmt.Errorf("list categories: %w", err)
	}

	if flagJSON {
		return emitJSON(categories)
	}
	printCategoryTable(categories)
	return nil
}

func runCategoryGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	category, err := store.Categories().GetByID(id)
	if err != nil {
		return fmt.Errorf("get category: %w", err)
	}

	if flagJSON {
		return emitJSON(category)
	}
	fmt.Printf("Category %d: %s\n", category.ID, category.Name)
	if category.Description != "" {
		fmt.Println(" ", category.Description)
	}
	return nil
}

func runCategoryAdd(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	category := types.Category{
		Name:        categoryName,
		Description: categoryDescription,
	}

	id, err := store.Categories().Create(category)
	if err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	category.ID = id

	if flagJSON {
		return emitJSON(category)
	}
	fmt.Printf("Created category %d\n", id)
	return nil
}

func runCategoryUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	// Read-modify-write so flags that were not given keep their
	// stored values.
	category, err := store.Categories().GetByID(id)
	if err != nil {
		return fmt.Errorf("get category: %w", err)
	}
	if cmd.Flags().Changed("name") {
		category.Name = categoryName
	}
	if cmd.Flags().Changed("description") {
		category.Description = categoryDescription
	}

	if err := store.Categories().Update(category); err != nil {
		return fmt.Errorf("update category: %w", err)
	}

	if flagJSON {
		return emitJSON(category)
	}
	fmt.Printf("Updated category %d\n", id)
	return nil
}

func runCategoryDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	if err := store.Categories().Delete(id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	fmt.Printf("Deleted category %d\n", id)
	return nil
}

func runCategoryCounts(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	counts, err := store.Categories().ListWithProductCount()
	if err != nil {
		return fmt.Errorf("list category counts: %w", err)
	}

	if flagJSON {
		return emitJSON(counts)
	}

	if len(counts) == 0 {
		fmt.Println("No categories found.")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRODUCTS")
	for _, c := range counts {
		fmt.Fprintf(w, "%d\t%s\t%d\n", c.ID, c.Name, c.ProductCount)
	}
	return w.Flush()
}

// printCategoryTable prints categories in a human-readable table format.
func printCategoryTable(categories []types.Category) {
	if len(categories) == 0 {
		fmt.Println("No categories found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
	for _, c := range categories {
		fmt.Fprintf(w, "%d\t%s\t%s\n", c.ID, c.Name, c.Description)
	}
	w.Flush()
	fmt.Printf("Total: %d category(ies)\n", len(categories))
}
