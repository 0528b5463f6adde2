package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lu-kno/gogrocy/pkg/grocy"
)

// objectsCommand creates the objects command group for generic entity CRUD.
func (c *CLI) objectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "objects",
		Short: "Raw CRUD on any Grocy entity",
		Long:  `objects reads and writes arbitrary Grocy entity collections (locations, quantity units, product groups, and so on) without the typed views of the other commands.`,
	}

	cmd.AddCommand(c.objectsListCommand())
	cmd.AddCommand(c.objectsGetCommand())
	cmd.AddCommand(c.objectsCreateCommand())
	cmd.AddCommand(c.objectsUpdateCommand())
	cmd.AddCommand(c.objectsDeleteCommand())

	return cmd
}

func (c *CLI) objectsListCommand() *cobra.Command {
	var filters []string
	cmd := &cobra.Command{
		Use:   "list <entity>",
		Short: "List objects of an entity type as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient()
			if err != nil {
				return err
			}
			objects, err := client.Generic.List(cmd.Context(), grocy.EntityType(args[0]), filters...)
			if err != nil {
				return err
			}
			return printJSON(cmd, objects)
		},
	}
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "server-side filter, e.g. name=Milk (repeatable)")
	return cmd
}

func (c *CLI) objectsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <entity> <id>",
		Short: "Print one object as JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			client, err := c.newClient()
			if err != nil {
				return err
			}
			object, err := client.Generic.Get(cmd.Context(), grocy.EntityType(args[0]), id)
			if err != nil {
				return err
			}
			return printJSON(cmd, object)
		},
	}
}

func (c *CLI) objectsCreateCommand() *cobra.Command {
	var data string
	cmd := &cobra.Command{
		Use:   "create <entity>",
		Short: "Create an object from a JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := parseObjectData(data)
			if err != nil {
				return err
			}
			client, err := c.newClient()
			if err != nil {
				return err
			}
			id, err := client.Generic.Create(cmd.Context(), grocy.EntityType(args[0]), fields)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
	cmd.Flags().StringVar(&data, "data", "", "object fields as JSON (required)")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}

func (c *CLI) objectsUpdateCommand() *cobra.Command {
	var data string
	cmd := &cobra.Command{
		Use:   "update <entity> <id>",
		Short: "Update fields of an object from a JSON document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			fields, err := parseObjectData(data)
			if err != nil {
				return err
			}
			client, err := c.newClient()
			if err != nil {
				return err
			}
			if err := client.Generic.Update(cmd.Context(), grocy.EntityType(args[0]), id, fields); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "updated %s/%d", args[0], id)
			return nil
		},
	}
	cmd.Flags().StringVar(&data, "data", "", "changed fields as JSON (required)")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}

func (c *CLI) objectsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <entity> <id>",
		Short: "Delete an object",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			client, err := c.newClient()
			if err != nil {
				return err
			}
			if err := client.Generic.Delete(cmd.Context(), grocy.EntityType(args[0]), id); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "deleted %s/%d", args[0], id)
			return nil
		},
	}
}

func parseObjectData(data string) (grocy.Object, error) {
	var fields grocy.Object
	if err := json.Unmarshal([]byte(data), &fields); err != nil {
		return nil, fmt.Errorf("parse --data: %w", err)
	}
	return fields, nil
}

// printJSON writes v as indented JSON with stable key order.
func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
