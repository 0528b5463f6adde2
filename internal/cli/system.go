package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// systemCommand creates the system command group.
func (c *CLI) systemCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "system",
		Short: "Inspect the Grocy server",
	}

	cmd.AddCommand(c.systemInfoCommand())
	cmd.AddCommand(c.systemTimeCommand())
	cmd.AddCommand(c.systemConfigCommand())
	cmd.AddCommand(c.systemDBChangedCommand())

	return cmd
}

func (c *CLI) systemInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print server version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient()
			if err != nil {
				return err
			}
			info, err := client.System.Info(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printKeyValue(out, "grocy:", fmt.Sprintf("%s (released %s)", info.GrocyVersion.Version, info.GrocyVersion.ReleaseDate))
			printKeyValue(out, "php:", info.PHPVersion)
			printKeyValue(out, "sqlite:", info.SQLiteVersion)
			if info.OS != "" {
				printKeyValue(out, "os:", info.OS)
			}
			return nil
		},
	}
}

func (c *CLI) systemTimeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "time",
		Short: "Print the server time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient()
			if err != nil {
				return err
			}
			st, err := client.System.Time(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printKeyValue(out, "timezone:", st.Timezone)
			printKeyValue(out, "local:", fmtTime(st.TimeLocal.Time))
			printKeyValue(out, "utc:", fmtTime(st.TimeUTC.Time))
			return nil
		},
	}
}

func (c *CLI) systemConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the server configuration as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient()
			if err != nil {
				return err
			}
			cfg, err := client.System.Config(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, cfg.Raw)
		},
	}
}

func (c *CLI) systemDBChangedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "db-changed",
		Short: "Print the time of the last database change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient()
			if err != nil {
				return err
			}
			changed, err := client.System.LastDBChanged(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), fmtTime(changed))
			return nil
		},
	}
}
