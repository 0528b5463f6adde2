package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lu-kno/gogrocy/pkg/grocy"
)

// choresCommand creates the chores command group.
func (c *CLI) choresCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chores",
		Short: "List and track chores",
	}

	cmd.AddCommand(c.choresListCommand())
	cmd.AddCommand(c.choresExecuteCommand())

	return cmd
}

func (c *CLI) choresListCommand() *cobra.Command {
	var details bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all chores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient()
			if err != nil {
				return err
			}
			chores, err := client.Chores.List(cmd.Context(), details)
			if err != nil {
				return err
			}

			t := newTable(cmd.OutOrStdout(), "ID", "NAME", "LAST TRACKED", "NEXT DUE")
			for _, chore := range chores {
				name := chore.Name
				if name == "" {
					name = "-"
				}
				t.row(chore.ID, name, fmtTime(chore.LastTrackedTime), fmtTime(chore.NextEstimatedExecutionTime))
			}
			return t.flush()
		},
	}
	cmd.Flags().BoolVar(&details, "details", false, "fetch full chore details")
	return cmd
}

func (c *CLI) choresExecuteCommand() *cobra.Command {
	var skipped bool
	var doneBy int
	cmd := &cobra.Command{
		Use:   "execute <chore-id>",
		Short: "Record an execution of a chore",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			choreID, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			client, err := c.newClient()
			if err != nil {
				return err
			}
			opts := grocy.ExecuteOptions{DoneBy: doneBy, Skipped: skipped}
			if err := client.Chores.Execute(cmd.Context(), choreID, opts); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "tracked chore %d", choreID)
			return nil
		},
	}
	cmd.Flags().BoolVar(&skipped, "skipped", false, "record the execution as skipped")
	cmd.Flags().IntVar(&doneBy, "done-by", 0, "user id that did the chore")
	return cmd
}
