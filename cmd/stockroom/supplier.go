// Supplier commands manage the suppliers collection.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

var (
	supplierName          string
	supplierContactPerson string
	supplierEmail         string
	supplierPhone         string
)

var supplierCmd = &cobra.Command{
	Use:   "supplier",
	Short: "Manage suppliers",
}

var supplierListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all suppliers",
	Args:  cobra.NoArgs,
	RunE:  runSupplierList,
}

var supplierGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Fetch one supplier by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runSupplierGet,
}

var supplierAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new supplier",
	Args:  cobra.NoArgs,
	RunE:  runSupplierAdd,
}

var supplierUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an existing supplier",
	Args:  cobra.ExactArgs(1),
	RunE:  runSupplierUpdate,
}

var supplierDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a supplier by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runSupplierDelete,
}

var supplierMinQuantityCmd = &cobra.Command{
	Use:   "with-min-quantity <quantity>",
	Short: "List suppliers that stock a product at or above a quantity",
	Long: `With-min-quantity lists one row per supplier and matching product
pair, so a supplier stocking several qualifying products appears once
for each of them.

Example:
  stockroom supplier with-min-quantity 20`,
	Args: cobra.ExactArgs(1),
	RunE: runSupplierMinQuantity,
}

func init() {
	supplierAddCmd.Flags().StringVar(&supplierName, "name", "", "supplier name (required)")
	supplierAddCmd.Flags().StringVar(&supplierContactPerson, "contact-person", "", "contact person")
	supplierAddCmd.Flags().StringVar(&supplierEmail, "email", "", "contact email")
	supplierAddCmd.Flags().StringVar(&supplierPhone, "phone", "", "contact phone")
	_ = supplierAddCmd.MarkFlagRequired("name")

	supplierUpdateCmd.Flags().StringVar(&supplierName, "name", "", "new supplier name")
	supplierUpdateCmd.Flags().StringVar(&supplierContactPerson, "contact-person", "", "new contact person")
	supplierUpdateCmd.Flags().StringVar(&supplierEmail, "email", "", "new contact email")
	supplierUpdateCmd.Flags().StringVar(&supplierPhone, "phone", "", "new contact phone")

	supplierCmd.AddCommand(supplierListCmd)
	supplierCmd.AddCommand(supplierGetCmd)
	supplierCmd.AddCommand(supplierAddCmd)
	supplierCmd.AddCommand(supplierUpdateCmd)
	supplierCmd.AddCommand(supplierDeleteCmd)
	supplierCmd.AddCommand(supplierMinQuantityCmd)
}

func runSupplierList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	suppliers, err := store.Suppliers().List()
	if err != nil {
		return fmt.Errorf("list suppliers: %w", err)
	}

	if flagJSON {
		return emitJSON(suppliers)
	}
	printSupplierTable(suppliers)
	return nil
}

func runSupplierGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	supplier, err := store.Suppliers().GetByID(id)
	if err != nil {
		return fmt.Errorf("get supplier: %w", err)
	}

	if flagJSON {
		return emitJSON(supplier)
	}
	fmt.Printf("Supplier %d: %s (%s, %s, %s)\n",
		supplier.ID, supplier.Name, supplier.ContactPerson, supplier.Email, supplier.Phone)
	return nil
}

func runSupplierAdd(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	supplier := types.Supplier{
		Name:          supplierName,
		ContactPerson: supplierContactPerson,
		Email:         supplierEmail,
		Phone:         supplierPhone,
	}

	id, err := store.Suppliers().Create(supplier)
	if err != nil {
		return fmt.Errorf("create supplier: %w", err)
	}
	supplier.ID = id

	if flagJSON {
		return emitJSON(supplier)
	}
	fmt.Printf("Created supplier %d\n", id)
	return nil
}

func runSupplierUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	supplier, err := store.Suppliers().GetByID(id)
	if err != nil {
		return fmt.Errorf("get supplier: %w", err)
	}
	if cmd.Flags().Changed("name") {
		supplier.Name = supplierName
	}
	if cmd.Flags().Changed("contact-person") {
		supplier.ContactPerson = supplierContactPerson
	}
	if cmd.Flags().Changed("email") {
		supplier.Email = supplierEmail
	}
	if cmd.Flags().Changed("phone") {
		supplier.Phone = supplierPhone
	}

	if err := store.Suppliers().Update(supplier); err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}

	if flagJSON {
		return emitJSON(supplier)
	}
	fmt.Printf("Updated supplier %d\n", id)
	return nil
}

func runSupplierDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	if err := store.Suppliers().Delete(id); err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}

	fmt.Printf("Deleted supplier %d\n", id)
	return nil
}

func runSupplierMinQuantity(cmd *cobra.Command, args []string) error {
	minQuantity, err := parseCount(args[0])
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	suppliers, err := store.Suppliers().ListWithMinProductQuantity(minQuantity)
	if err != nil {
		return fmt.Errorf("list suppliers by product quantity: %w", err)
	}

	if flagJSON {
		return emitJSON(suppliers)
	}
	printSupplierTable(suppliers)
	return nil
}

// printSupplierTable prints suppliers in a human-readable table format.
func printSupplierTable(suppliers []types.Supplier) {
	if len(suppliers) == 0 {
		fmt.Println("No suppliers found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCONTACT\tEMAIL\tPHONE")
	for _, s := range suppliers {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", s.ID, s.Name, s.ContactPerson, s.Email, s.Phone)
	}
	w.Flush()
	fmt.Printf("Total: %d supplier(s)\n", len(suppliers))
}
