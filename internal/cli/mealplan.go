package cli

import (
	"github.com/spf13/cobra"
)

// mealPlanCommand creates the meal-plan command group.
func (c *CLI) mealPlanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meal-plan",
		Short: "Show the meal plan",
	}

	cmd.AddCommand(c.mealPlanListCommand())
	cmd.AddCommand(c.mealPlanSectionsCommand())

	return cmd
}

func (c *CLI) mealPlanListCommand() *cobra.Command {
	var details bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List meal plan entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient()
			if err != nil {
				return err
			}
			items, err := client.MealPlan.Items(cmd.Context(), details)
			if err != nil {
				return err
			}

			t := newTable(cmd.OutOrStdout(), "DAY", "TYPE", "WHAT", "SECTION")
			for _, item := range items {
				what := item.Note
				if item.Recipe != nil {
					what = item.Recipe.Name
				}
				section := "-"
				if item.Section != nil {
					section = item.Section.Name
				}
				t.row(fmtDate(item.Day), item.Type, what, section)
			}
			return t.flush()
		},
	}
	cmd.Flags().BoolVar(&details, "details", false, "resolve recipes and sections")
	return cmd
}

func (c *CLI) mealPlanSectionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List meal plan sections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient()
			if err != nil {
				return err
			}
			sections, err := client.MealPlan.Sections(cmd.Context())
			if err != nil {
				return err
			}

			t := newTable(cmd.OutOrStdout(), "ID", "NAME", "SORT")
			for _, s := range sections {
				t.row(s.ID, s.Name, s.SortNumber)
			}
			return t.flush()
		},
	}
}
