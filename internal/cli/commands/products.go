package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/cli/ui"
)

var (
	productsBrand    string
	productsCategory string
)

// productsCmd lists the catalog
var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "list the product catalog",
	Long: `List the product catalog as a table.

The catalog can be filtered by exact brand or category. Out-of-stock
products are highlighted.`,
	Example: `  # List the whole catalog
  $ shopctl products

  # Filter by brand or category
  $ shopctl products --brand Nike
  $ shopctl products --category Running`,
	RunE: runProducts,
}

// productCmd shows one product
var productCmd = &cobra.Command{
	Use:     "product <id>",
	Short:   "show one product",
	Example: `  $ shopctl product 1`,
	Args:    cobra.ExactArgs(1),
	RunE:    runProduct,
}

func init() {
	productsCmd.Flags().StringVar(&productsBrand, "brand", "", "Filter by exact brand")
	productsCmd.Flags().StringVar(&productsCategory, "category", "", "Filter by exact category")

	productsCmd.SilenceUsage = true
	productCmd.SilenceUsage = true
}

func runProducts(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		ui.PrintError("unexpected argument: %s", args[0])
		fmt.Printf("\nRun '%s --help' for usage.\n", cmd.CommandPath())
		return fmt.Errorf("invalid arguments")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, _, err := newClient()
	if err != nil {
		return err
	}

	products, err := apiClient.ListProducts(ctx, productsBrand, productsCategory)
	if err != nil {
		ui.PrintError("failed to list products: %v", err)
		return fmt.Errorf("list operation failed")
	}

	fmt.Println()
	fmt.Println(ui.RenderProductTable(products))
	fmt.Printf("%d product(s)\n", len(products))

	return nil
}

func runProduct(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		ui.PrintError("invalid product id: %s", args[0])
		return fmt.Errorf("invalid arguments")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, _, err := newClient()
	if err != nil {
		return err
	}

	product, err := apiClient.GetProduct(ctx, id)
	if err != nil {
		ui.PrintError("failed to get product: %v", err)
		return fmt.Errorf("get operation failed")
	}

	fmt.Println()
	fmt.Println(ui.RenderProductDetail(product))

	return nil
}
