package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/cli/ui"
)

var deleteForce bool

// deleteCmd removes a product from the catalog
var deleteCmd = &cobra.Command{
	Use:   "delete <product-id>",
	Short: "delete a product",
	Long: `Delete a product from the catalog.

By default, you will be prompted to confirm the deletion. Use --force to skip confirmation.`,
	Example: `  # Delete a product
  $ shopctl delete 3

  # Force delete without confirmation
  $ shopctl delete 3 --force`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Skip confirmation prompt")

	deleteCmd.SilenceUsage = true
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	if !deleteForce {
		product, err := apiClient.GetProduct(ctx, id)
		if err != nil {
			ui.PrintError("failed to get product: %v", err)
			return fmt.Errorf("get operation failed")
		}

		confirm := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Delete product '%s' (#%d)?", product.Name, product.ID),
		}
		if err := survey.AskOne(prompt, &confirm); err != nil {
			return fmt.Errorf("confirmation prompt failed: %w", err)
		}

		if !confirm {
			ui.PrintInfo("Deletion cancelled")
			return nil
		}
	}

	if err := apiClient.DeleteProduct(ctx, id); err != nil {
		ui.PrintError("failed to delete: %v", err)
		return fmt.Errorf("deletion failed")
	}

	ui.PrintSuccess("Successfully deleted product %d", id)
	return nil
}
