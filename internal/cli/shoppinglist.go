package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lu-kno/gogrocy/pkg/grocy"
)

// shoppingListCommand creates the shopping-list command group.
func (c *CLI) shoppingListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "shopping-list",
		Aliases: []string{"sl"},
		Short:   "Manage shopping lists",
	}

	cmd.AddCommand(c.shoppingListListCommand())
	cmd.AddCommand(c.shoppingListAddCommand())
	cmd.AddCommand(c.shoppingListClearCommand())

	return cmd
}

func (c *CLI) shoppingListListCommand() *cobra.Command {
	var details bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List shopping list items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient()
			if err != nil {
				return err
			}
			items, err := client.ShoppingList.Items(cmd.Context(), details)
			if err != nil {
				return err
			}

			t := newTable(cmd.OutOrStdout(), "ID", "PRODUCT", "AMOUNT", "DONE", "NOTE")
			for _, item := range items {
				name := "-"
				if item.Product != nil {
					name = item.Product.Name
				} else if item.ProductID != 0 {
					name = strconv.Itoa(item.ProductID)
				}
				t.row(item.ID, name, fmtAmount(item.Amount), item.Done, item.Note)
			}
			return t.flush()
		},
	}
	cmd.Flags().BoolVar(&details, "details", false, "resolve product names")
	return cmd
}

func (c *CLI) shoppingListAddCommand() *cobra.Command {
	var amount float64
	var listID int
	cmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Put a product on a shopping list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			client, err := c.newClient()
			if err != nil {
				return err
			}
			opts := grocy.AddProductOptions{ShoppingListID: listID, Amount: amount}
			if err := client.ShoppingList.AddProduct(cmd.Context(), productID, opts); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "added product %d to shopping list", productID)
			return nil
		},
	}
	cmd.Flags().Float64Var(&amount, "amount", 1, "amount to add")
	cmd.Flags().IntVar(&listID, "list", 0, "shopping list id (default first list)")
	return cmd
}

func (c *CLI) shoppingListClearCommand() *cobra.Command {
	var listID int
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every item from a shopping list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient()
			if err != nil {
				return err
			}
			if err := client.ShoppingList.Clear(cmd.Context(), listID); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "cleared shopping list %d", listID)
			return nil
		},
	}
	cmd.Flags().IntVar(&listID, "list", 1, "shopping list id")
	return cmd
}
