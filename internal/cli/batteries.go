package cli

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

// batteriesCommand creates the batteries command group.
func (c *CLI) batteriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batteries",
		Short: "List batteries and track charge cycles",
	}

	cmd.AddCommand(c.batteriesListCommand())
	cmd.AddCommand(c.batteriesChargeCommand())

	return cmd
}

func (c *CLI) batteriesListCommand() *cobra.Command {
	var details bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all batteries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient()
			if err != nil {
				return err
			}
			batteries, err := client.Batteries.List(cmd.Context(), details)
			if err != nil {
				return err
			}

			t := newTable(cmd.OutOrStdout(), "ID", "NAME", "LAST CHARGED", "NEXT CHARGE")
			for _, b := range batteries {
				name := b.Name
				if name == "" {
					name = "-"
				}
				t.row(b.ID, name, fmtTime(b.LastTrackedTime), fmtTime(b.NextEstimatedChargeTime))
			}
			return t.flush()
		},
	}
	cmd.Flags().BoolVar(&details, "details", false, "fetch full battery details")
	return cmd
}

func (c *CLI) batteriesChargeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "charge <battery-id>",
		Short: "Record a charge cycle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			batteryID, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			client, err := c.newClient()
			if err != nil {
				return err
			}
			if err := client.Batteries.Charge(cmd.Context(), batteryID, time.Now()); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "charged battery %d", batteryID)
			return nil
		},
	}
}
