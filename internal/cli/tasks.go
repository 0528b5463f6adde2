package cli

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

// tasksCommand creates the tasks command group.
func (c *CLI) tasksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List and complete tasks",
	}

	cmd.AddCommand(c.tasksListCommand())
	cmd.AddCommand(c.tasksCompleteCommand())

	return cmd
}

func (c *CLI) tasksListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List open tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient()
			if err != nil {
				return err
			}
			tasks, err := client.Tasks.List(cmd.Context())
			if err != nil {
				return err
			}

			t := newTable(cmd.OutOrStdout(), "ID", "NAME", "DUE")
			for _, task := range tasks {
				t.row(task.ID, task.Name, fmtDate(task.DueDate))
			}
			return t.flush()
		},
	}
}

func (c *CLI) tasksCompleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <task-id>",
		Short: "Mark a task as done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			client, err := c.newClient()
			if err != nil {
				return err
			}
			if err := client.Tasks.Complete(cmd.Context(), taskID, time.Now()); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "completed task %d", taskID)
			return nil
		},
	}
}
