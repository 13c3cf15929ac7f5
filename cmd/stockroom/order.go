// Order commands manage the orders collection and its queries.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

var (
	orderProductID  int
	orderQuantity   int
	orderDate       string
	orderSupplierID int
	orderStatus     string

	orderQuerySupplierID int
	orderQueryStatus     string
	orderQueryStart      string
	orderQueryEnd        string
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Manage orders",
}

var orderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all orders",
	Args:  cobra.NoArgs,
	RunE:  runOrderList,
}

var orderGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Fetch one order by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrderGet,
}

var orderAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new order",
	Long: `Add creates a new order for a product from a supplier.

The status must be one of Pending, Shipped, Delivered or Cancelled,
matched case-sensitively. Dates accept RFC 3339 or 2006-01-02.

Example:
  stockroom order add --product-id 3 --quantity 2 --date 2024-03-01 --supplier-id 1 --status Pending`,
	Args: cobra.NoArgs,
	RunE: runOrderAdd,
}

var orderUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an existing order",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrderUpdate,
}

var orderDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an order by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrderDelete,
}

var orderBySupplierCmd = &cobra.Command{
	Use:   "by-supplier",
	Short: "List orders for a supplier filtered by status",
	Args:  cobra.NoArgs,
	RunE:  runOrderBySupplier,
}

var orderByDateCmd = &cobra.Command{
	Use:   "by-date",
	Short: "List orders within an inclusive date range",
	Args:  cobra.NoArgs,
	RunE:  runOrderByDate,
}

func init() {
	orderAddCmd.Flags().IntVar(&orderProductID, "product-id", 0, "ordered product id (required)")
	orderAddCmd.Flags().IntVar(&orderQuantity, "quantity", 0, "ordered quantity")
	orderAddCmd.Flags().StringVar(&orderDate, "date", "", "order date (required)")
	orderAddCmd.Flags().IntVar(&orderSupplierID, "supplier-id", 0, "ordering supplier id")
	orderAddCmd.Flags().StringVar(&orderStatus, "status", string(types.StatusPending), "order status")
	_ = orderAddCmd.MarkFlagRequired("product-id")
	_ = orderAddCmd.MarkFlagRequired("date")

	orderUpdateCmd.Flags().IntVar(&orderProductID, "product-id", 0, "new ordered product id")
	orderUpdateCmd.Flags().IntVar(&orderQuantity, "quantity", 0, "new ordered quantity")
	orderUpdateCmd.Flags().StringVar(&orderDate, "date", "", "new order date")
	orderUpdateCmd.Flags().IntVar(&orderSupplierID, "supplier-id", 0, "new ordering supplier id")
	orderUpdateCmd.Flags().StringVar(&orderStatus, "status", "", "new order status")

	orderBySupplierCmd.Flags().IntVar(&orderQuerySupplierID, "supplier-id", 0, "supplier id (required)")
	orderBySupplierCmd.Flags().StringVar(&orderQueryStatus, "status", "", "order status (required)")
	_ = orderBySupplierCmd.MarkFlagRequired("supplier-id")
	_ = orderBySupplierCmd.MarkFlagRequired("status")

	orderByDateCmd.Flags().StringVar(&orderQueryStart, "start", "", "range start date (required)")
	orderByDateCmd.Flags().StringVar(&orderQueryEnd, "end", "", "range end date (required)")
	_ = orderByDateCmd.MarkFlagRequired("start")
	_ = orderByDateCmd.MarkFlagRequired("end")

	orderCmd.AddCommand(orderListCmd)
	orderCmd.AddCommand(orderGetCmd)
	orderCmd.AddCommand(orderAddCmd)
	orderCmd.AddCommand(orderUpdateCmd)
	orderCmd.AddCommand(orderDeleteCmd)
	orderCmd.AddCommand(orderBySupplierCmd)
	orderCmd.AddCommand(orderByDateCmd)
}

// parseDate accepts RFC 3339 timestamps or bare 2006-01-02 dates.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", value)
	}
	return t, nil
}

func runOrderList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	orders, err := store.Orders().List()
	if err != nil {
		return fmt.Errorf("list orders: %w", err)
	}

	if flagJSON {
		return emitJSON(orders)
	}
	printOrderTable(orders)
	return nil
}

func runOrderGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	order, err := store.Orders().GetByID(id)
	if err != nil {
		return fmt.Errorf("get order: %w", err)
	}

	if flagJSON {
		return emitJSON(order)
	}
	fmt.Printf("Order %d: product %d x%d from supplier %d, %s, %s\n",
		order.ID, order.ProductID, order.Quantity, order.SupplierID,
		order.OrderDate.Format("2006-01-02"), order.Status)
	return nil
}

func runOrderAdd(cmd *cobra.Command, args []string) error {
	date, err := parseDate(orderDate)
	if err != nil {
		return err
	}
	status, err := types.ParseOrderStatus(orderStatus)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	order := types.Order{
		ProductID:  orderProductID,
		Quantity:   orderQuantity,
		OrderDate:  date,
		SupplierID: orderSupplierID,
		Status:     status,
	}

	id, err := store.Orders().Create(order)
	if err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	order.ID = id

	if flagJSON {
		return emitJSON(order)
	}
	fmt.Printf("Created order %d\n", id)
	return nil
}

func runOrderUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	order, err := store.Orders().GetByID(id)
	if err != nil {
		return fmt.Errorf("get order: %w", err)
	}
	if cmd.Flags().Changed("product-id") {
		order.ProductID = orderProductID
	}
	if cmd.Flags().Changed("quantity") {
		order.Quantity = orderQuantity
	}
	if cmd.Flags().Changed("date") {
		date, err := parseDate(orderDate)
		if err != nil {
			return err
		}
		order.OrderDate = date
	}
	if cmd.Flags().Changed("supplier-id") {
		order.SupplierID = orderSupplierID
	}
	if cmd.Flags().Changed("status") {
		status, err := types.ParseOrderStatus(orderStatus)
		if err != nil {
			return err
		}
		order.Status = status
	}

	if err := store.Orders().Update(order); err != nil {
		return fmt.Errorf("update order: %w", err)
	}

	if flagJSON {
		return emitJSON(order)
	}
	fmt.Printf("Updated order %d\n", id)
	return nil
}

func runOrderDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	if err := store.Orders().Delete(id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}

	fmt.Printf("Deleted order %d\n", id)
	return nil
}

func runOrderBySupplier(cmd *cobra.Command, args []string) error {
	status, err := types.ParseOrderStatus(orderQueryStatus)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	orders, err := store.Orders().ListBySupplierAndStatus(orderQuerySupplierID, status)
	if err != nil {
		return fmt.Errorf("list orders by supplier: %w", err)
	}

	if flagJSON {
		return emitJSON(orders)
	}
	printOrderTable(orders)
	return nil
}

func runOrderByDate(cmd *cobra.Command, args []string) error {
	start, err := parseDate(orderQueryStart)
	if err != nil {
		return err
	}
	end, err := parseDate(orderQueryEnd)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	orders, err := store.Orders().ListByDateRange(start, end)
	if err != nil {
		return fmt.Errorf("list orders by date: %w", err)
	}

	if flagJSON {
		return emitJSON(orders)
	}
	printOrderTable(orders)
	return nil
}

// printOrderTable prints orders in a human-readable table format.
func printOrderTable(orders []types.Order) {
	if len(orders) == 0 {
		fmt.Println("No orders found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRODUCT\tQUANTITY\tDATE\tSUPPLIER\tSTATUS")
	for _, o := range orders {
		fmt.Fprintf(w, "%d\t%d\t%d\t%s\t%d\t%s\n",
			o.ID, o.ProductID, o.Quantity, o.OrderDate.Format("2006-01-02"), o.SupplierID, o.Status)
	}
	w.Flush()
	fmt.Printf("Total: %d order(s)\n", len(orders))
}
