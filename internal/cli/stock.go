package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lu-kno/gogrocy/pkg/grocy"
)

// stockCommand creates the stock command group.
func (c *CLI) stockCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stock",
		Short: "Inspect and book product stock",
	}

	cmd.AddCommand(c.stockListCommand())
	cmd.AddCommand(c.stockVolatileCommand("due", "Products that are due soon"))
	cmd.AddCommand(c.stockVolatileCommand("overdue", "Products past their best-before date"))
	cmd.AddCommand(c.stockVolatileCommand("expired", "Products that have expired"))
	cmd.AddCommand(c.stockMissingCommand())
	cmd.AddCommand(c.stockAddCommand())
	cmd.AddCommand(c.stockConsumeCommand())
	cmd.AddCommand(c.stockOpenCommand())

	return cmd
}

func (c *CLI) stockListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List products currently in stock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient()
			if err != nil {
				return err
			}
			products, err := client.Stock.Current(cmd.Context())
			if err != nil {
				return err
			}

			t := newTable(cmd.OutOrStdout(), "ID", "NAME", "AMOUNT", "OPENED", "BEST BEFORE")
			for _, p := range products {
				t.row(p.ID, p.Name, fmtAmount(p.AvailableAmount), fmtAmount(p.AmountOpened), fmtDate(p.BestBeforeDate))
			}
			return t.flush()
		},
	}
}

// stockVolatileCommand creates one of the due/overdue/expired listings,
// which differ only in the server-side predicate.
func (c *CLI) stockVolatileCommand(use, short string) *cobra.Command {
	var details bool
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient()
			if err != nil {
				return err
			}

			var products []*grocy.Product
			switch use {
			case "due":
				products, err = client.Stock.DueProducts(cmd.Context(), details)
			case "overdue":
				products, err = client.Stock.OverdueProducts(cmd.Context(), details)
			case "expired":
				products, err = client.Stock.ExpiredProducts(cmd.Context(), details)
			}
			if err != nil {
				return err
			}

			t := newTable(cmd.OutOrStdout(), "ID", "NAME", "AMOUNT", "BEST BEFORE")
			for _, p := range products {
				t.row(p.ID, p.Name, fmtAmount(p.AvailableAmount), fmtDate(p.BestBeforeDate))
			}
			return t.flush()
		},
	}
	cmd.Flags().BoolVar(&details, "details", false, "fetch full product details")
	return cmd
}

func (c *CLI) stockMissingCommand() *cobra.Command {
	var details bool
	cmd := &cobra.Command{
		Use:   "missing",
		Short: "Products below their minimum stock amount",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient()
			if err != nil {
				return err
			}
			products, err := client.Stock.MissingProducts(cmd.Context(), details)
			if err != nil {
				return err
			}

			t := newTable(cmd.OutOrStdout(), "ID", "NAME", "MISSING", "PARTLY IN STOCK")
			for _, p := range products {
				t.row(p.ID, p.Name, fmtAmount(p.AmountMissing), p.IsPartlyInStock)
			}
			return t.flush()
		},
	}
	cmd.Flags().BoolVar(&details, "details", false, "fetch full product details")
	return cmd
}

func (c *CLI) stockAddCommand() *cobra.Command {
	var amount, price float64
	cmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Book stock of a product in",
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
			if err := client.Stock.Add(cmd.Context(), productID, amount, price, grocy.AddOptions{}); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "added %s of product %d", fmtAmount(amount), productID)
			return nil
		},
	}
	cmd.Flags().Float64Var(&amount, "amount", 1, "amount to add")
	cmd.Flags().Float64Var(&price, "price", 0, "price per unit")
	return cmd
}

func (c *CLI) stockConsumeCommand() *cobra.Command {
	var amount float64
	var spoiled bool
	cmd := &cobra.Command{
		Use:   "consume <product-id>",
		Short: "Book stock of a product out",
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
			opts := grocy.ConsumeOptions{Spoiled: spoiled}
			if err := client.Stock.Consume(cmd.Context(), productID, amount, opts); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "consumed %s of product %d", fmtAmount(amount), productID)
			return nil
		},
	}
	cmd.Flags().Float64Var(&amount, "amount", 1, "amount to consume")
	cmd.Flags().BoolVar(&spoiled, "spoiled", false, "mark the consumed amount as spoiled")
	return cmd
}

func (c *CLI) stockOpenCommand() *cobra.Command {
	var amount float64
	cmd := &cobra.Command{
		Use:   "open <product-id>",
		Short: "Mark stock of a product as opened",
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
			if err := client.Stock.Open(cmd.Context(), productID, amount, false); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "opened %s of product %d", fmtAmount(amount), productID)
			return nil
		},
	}
	cmd.Flags().Float64Var(&amount, "amount", 1, "amount to open")
	return cmd
}
