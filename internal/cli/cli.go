// Package cli implements the gogrocy command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lu-kno/gogrocy/pkg/buildinfo"
	"github.com/lu-kno/gogrocy/pkg/grocy"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "gogrocy"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	flags      Config
	debug      bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	c.debug = level == LogDebug
}

// =============================================================================
// Root Command
// =============================================================================

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "gogrocy is a command-line client for a Grocy household server",
		Long:         `gogrocy talks to the REST API of a Grocy instance: stock levels, shopping lists, chores, tasks, batteries, the meal plan, and raw entity objects.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default "+defaultConfigHint+")")
	flags.StringVar(&c.flags.URL, "url", "", "Grocy server URL")
	flags.StringVar(&c.flags.APIKey, "api-key", "", "Grocy API key")
	flags.IntVar(&c.flags.Port, "port", 0, "Grocy server port")
	flags.StringVar(&c.flags.Path, "path", "", "URL prefix for sub-path installations")
	flags.BoolVar(&c.flags.Insecure, "insecure", false, "skip TLS certificate verification")

	// Register all subcommands
	root.AddCommand(c.stockCommand())
	root.AddCommand(c.shoppingListCommand())
	root.AddCommand(c.choresCommand())
	root.AddCommand(c.tasksCommand())
	root.AddCommand(c.batteriesCommand())
	root.AddCommand(c.mealPlanCommand())
	root.AddCommand(c.objectsCommand())
	root.AddCommand(c.systemCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Client Factory
// =============================================================================

// newClient resolves the connection settings and builds an API client.
// Precedence: flags over environment over config file.
func (c *CLI) newClient() (*grocy.Client, error) {
	cfg, err := resolveConfig(c.configPath, c.flags)
	if err != nil {
		return nil, err
	}
	return grocy.New(grocy.Config{
		URL:                cfg.URL,
		APIKey:             cfg.APIKey,
		Port:               cfg.Port,
		Path:               cfg.Path,
		InsecureSkipVerify: cfg.Insecure,
		Debug:              c.debug,
		Logger:             c.Logger,
	})
}
