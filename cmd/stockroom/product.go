// Product commands manage the products collection and its queries.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

var (
	productName        string
	productDescription string
	productQuantity    int
	productPrice       string
	productCategoryID  int
	productSupplierID  int
)

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Manage products",
}

var productListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all products",
	Args:  cobra.NoArgs,
	RunE:  runProductList,
}

var productGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Fetch one product by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductGet,
}

var productAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new product",
	Long: `Add creates a new product with the given name and price.

Names are unique across products. The category and supplier ids are
stored as given without checking that they exist.

Example:
  stockroom product add --name "Hammer" --price 9.99 --quantity 5 --category-id 1 --supplier-id 2`,
	Args: cobra.NoArgs,
	RunE: runProductAdd,
}

var productUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an existing product",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductUpdate,
}

var productDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductDelete,
}

var productByCategoryCmd = &cobra.Command{
	Use:   "by-category <name>",
	Short: "List products in a category, priciest first",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductByCategory,
}

var productByMaxQuantityCmd = &cobra.Command{
	Use:   "by-max-quantity <quantity>",
	Short: "List products stocked strictly below a quantity",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductByMaxQuantity,
}

var productDetailsCmd = &cobra.Command{
	Use:   "details <id>",
	Short: "Show a product with its category, order and supplier details",
	Long: `Details joins the product through its category and every order that
references it to the ordering supplier. A product that no order
references yields no rows.

Example:
  stockroom product details 7`,
	Args: cobra.ExactArgs(1),
	RunE: runProductDetails,
}

var productMostOrderedCmd = &cobra.Command{
	Use:   "most-ordered <min-orders>",
	Short: "List products referenced by strictly more than N orders",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductMostOrdered,
}

func init() {
	productAddCmd.Flags().StringVar(&productName, "name", "", "product name (required)")
	productAddCmd.Flags().StringVar(&productDescription, "description", "", "product description")
	productAddCmd.Flags().IntVar(&productQuantity, "quantity", 0, "stocked quantity")
	productAddCmd.Flags().StringVar(&productPrice, "price", "0", "unit price, e.g. 9.99")
	productAddCmd.Flags().IntVar(&productCategoryID, "category-id", 0, "owning category id")
	productAddCmd.Flags().IntVar(&productSupplierID, "supplier-id", 0, "supplying supplier id")
	_ = productAddCmd.MarkFlagRequired("name")

	productUpdateCmd.Flags().StringVar(&productName, "name", "", "new product name")
	productUpdateCmd.Flags().StringVar(&productDescription, "description", "", "new product description")
	productUpdateCmd.Flags().IntVar(&productQuantity, "quantity", 0, "new stocked quantity")
	productUpdateCmd.Flags().StringVar(&productPrice, "price", "", "new unit price")
	productUpdateCmd.Flags().IntVar(&productCategoryID, "category-id", 0, "new owning category id")
	productUpdateCmd.Flags().IntVar(&productSupplierID, "supplier-id", 0, "new supplying supplier id")

	productCmd.AddCommand(productListCmd)
	productCmd.AddCommand(productGetCmd)
	productCmd.AddCommand(productAddCmd)
	productCmd.AddCommand(productUpdateCmd)
	productCmd.AddCommand(productDeleteCmd)
	productCmd.AddCommand(productByCategoryCmd)
	productCmd.AddCommand(productByMaxQuantityCmd)
	productCmd.AddCommand(productDetailsCmd)
	productCmd.AddCommand(productMostOrderedCmd)
}

func runProductList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	products, err := store.Products().List()
	if err != nil {
		return fmt.Errorf("list products: %w", err)
	}

	if flagJSON {
		return emitJSON(products)
	}
	printProductTable(products)
	return nil
}

func runProductGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	product, err := store.Products().GetByID(id)
	if err != nil {
		return fmt.Errorf("get product: %w", err)
	}

	if flagJSON {
		return emitJSON(product)
	}
	fmt.Printf("Product %d: %s\n", product.ID, product.Name)
	fmt.Printf("  price %s, quantity %d, category %d, supplier %d\n",
		product.Price.String(), product.Quantity, product.CategoryID, product.SupplierID)
	return nil
}

func runProductAdd(cmd *cobra.Command, args []string) error {
	price, err := decimal.NewFromString(productPrice)
	if err != nil {
		return fmt.Errorf("invalid price %q: %w", productPrice, err)
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	product := types.Product{
		Name:        productName,
		Description: productDescription,
		Quantity:    productQuantity,
		Price:       price,
		CategoryID:  productCategoryID,
		SupplierID:  productSupplierID,
	}

	id, err := store.Products().Create(product)
	if err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	product.ID = id

	if flagJSON {
		return emitJSON(product)
	}
	fmt.Printf("Created product %d\n", id)
	return nil
}

func runProductUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	product, err := store.Products().GetByID(id)
	if err != nil {
		return fmt.Errorf("get product: %w", err)
	}
	if cmd.Flags().Changed("name") {
		product.Name = productName
	}
	if cmd.Flags().Changed("description") {
		product.Description = productDescription
	}
	if cmd.Flags().Changed("quantity") {
		product.Quantity = productQuantity
	}
	if cmd.Flags().Changed("price") {
		price, err := decimal.NewFromString(productPrice)
		if err != nil {
			return fmt.Errorf("invalid price %q: %w", productPrice, err)
		}
		product.Price = price
	}
	if cmd.Flags().Changed("category-id") {
		product.CategoryID = productCategoryID
	}
	if cmd.Flags().Changed("supplier-id") {
		product.SupplierID = productSupplierID
	}

	if err := store.Products().Update(product); err != nil {
		return fmt.Errorf("update product: %w", err)
	}

	if flagJSON {
		return emitJSON(product)
	}
	fmt.Printf("Updated product %d\n", id)
	return nil
}

func runProductDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	if err := store.Products().Delete(id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	fmt.Printf("Deleted product %d\n", id)
	return nil
}

func runProductByCategory(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	products, err := store.Products().ListByCategoryName(args[0])
	if err != nil {
		return fmt.Errorf("list products by category: %w", err)
	}

	if flagJSON {
		return emitJSON(products)
	}
	printProductTable(products)
	return nil
}

func runProductByMaxQuantity(cmd *cobra.Command, args []string) error {
	maxQuantity, err := parseCount(args[0])
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	products, err := store.Products().ListByMaxQuantity(maxQuantity)
	if err != nil {
		return fmt.Errorf("list products by max quantity: %w", err)
	}

	if flagJSON {
		return emitJSON(products)
	}
	printProductTable(products)
	return nil
}

func runProductDetails(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	details, err := store.Products().DetailsByID(id)
	if err != nil {
		return fmt.Errorf("product details: %w", err)
	}

	if flagJSON {
		return emitJSON(details)
	}

	if len(details) == 0 {
		fmt.Println("No orders reference this product.")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRODUCT\tCATEGORY\tQUANTITY\tPRICE\tSUPPLIER\tCONTACT")
	for _, d := range details {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n",
			d.Name, d.CategoryName, d.Quantity, d.Price.String(),
			d.SupplierName, d.SupplierContactPerson)
	}
	return w.Flush()
}

func runProductMostOrdered(cmd *cobra.Command, args []string) error {
	minOrders, err := parseCount(args[0])
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	products, err := store.Products().MostOrdered(minOrders)
	if err != nil {
		return fmt.Errorf("list most ordered products: %w", err)
	}

	if flagJSON {
		return emitJSON(products)
	}
	printProductTable(products)
	return nil
}

// printProductTable prints products in a human-readable table format.
func printProductTable(products []types.Product) {
	if len(products) == 0 {
		fmt.Println("No products found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tQUANTITY\tPRICE\tCATEGORY\tSUPPLIER")
	for _, p := range products {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%d\t%d\n",
			p.ID, p.Name, p.Quantity, p.Price.String(), p.CategoryID, p.SupplierID)
	}
	w.Flush()
	fmt.Printf("Total: %d product(s)\n", len(products))
}
