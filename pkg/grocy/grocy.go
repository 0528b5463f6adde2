package grocy

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
)

const (
	// DefaultPort is the port used when Config.Port is zero.
	DefaultPort = 443

	// DemoModeKey is the special API key for the public Grocy demo server.
	// It suppresses the GROCY-API-KEY header entirely.
	DemoModeKey = "demo_mode"

	apiKeyHeader = "GROCY-API-KEY"
)

// Config holds the connection settings for a Grocy server. It is read
// once at construction; a Client never mutates or re-reads it.
type Config struct {
	// URL is the server base URL without port or path, e.g.
	// "https://grocy.example.com". Required.
	URL string

	// APIKey authenticates every request via the GROCY-API-KEY header.
	// Use DemoModeKey against the public demo server.
	APIKey string

	// Port is the server port. Defaults to DefaultPort.
	Port int

	// Path is an optional URL prefix for installations served under a
	// sub-path, e.g. "grocy" for {url}:{port}/grocy/api/.
	Path string

	// InsecureSkipVerify disables TLS certificate verification. It is
	// ignored when HTTPClient is set; that client owns its TLS setup.
	InsecureSkipVerify bool

	// Debug enables request/response tracing on Logger at debug level.
	Debug bool

	// Logger receives debug traces. Defaults to log.Default.
	Logger *log.Logger

	// HTTPClient overrides the transport. Defaults to http.DefaultClient
	// semantics; the library adds no timeout of its own.
	HTTPClient *http.Client
}

// baseURL computes the endpoint root. The rule is fixed:
// {url}:{port}/api/ with no sub-path, else {url}:{port}/{path}/api/.
func (c Config) baseURL() string {
	port := c.Port
	if port == 0 {
		port = DefaultPort
	}
	url := strings.TrimRight(c.URL, "/")
	if path := strings.Trim(c.Path, "/"); path != "" {
		return fmt.Sprintf("%s:%d/%s/api/", url, port, path)
	}
	return fmt.Sprintf("%s:%d/api/", url, port)
}

// Client talks to one Grocy server. The API is grouped into services by
// entity family; all services share the client's connection settings.
//
// A Client holds no mutable state and is safe for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  *log.Logger
	debug   bool

	// Services grouped by entity family.
	Stock        *StockService
	ShoppingList *ShoppingListService
	Chores       *ChoreService
	ChoreLog     *ChoreLogService
	Tasks        *TaskService
	Batteries    *BatteryService
	MealPlan     *MealPlanService
	Recipes      *RecipeService
	Users        *UserService
	System       *SystemService
	Equipment    *EquipmentService
	Files        *FileService
	Generic      *GenericService
}

// New creates a Client for the server described by cfg.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, fmt.Errorf("grocy: server URL is required")
	}

	// A caller-supplied client is used as is, including its transport and
	// TLS setup. InsecureSkipVerify only configures the internal client.
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
		if cfg.InsecureSkipVerify {
			httpClient.Transport = &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			}
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	c := &Client{
		baseURL: cfg.baseURL(),
		apiKey:  cfg.APIKey,
		http:    httpClient,
		logger:  logger,
		debug:   cfg.Debug,
	}
	c.logf("base url: %s", c.baseURL)

	c.Stock = &StockService{client: c}
	c.ShoppingList = &ShoppingListService{client: c}
	c.Chores = &ChoreService{client: c}
	c.ChoreLog = &ChoreLogService{client: c}
	c.Tasks = &TaskService{client: c}
	c.Batteries = &BatteryService{client: c}
	c.MealPlan = &MealPlanService{client: c}
	c.Recipes = &RecipeService{client: c}
	c.Users = &UserService{client: c}
	c.System = &SystemService{client: c}
	c.Equipment = &EquipmentService{client: c}
	c.Files = &FileService{client: c}
	c.Generic = &GenericService{client: c}
	return c, nil
}

// BaseURL returns the computed endpoint root, e.g.
// "https://grocy.example.com:443/api/".
func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) logf(format string, args ...any) {
	if c.debug {
		c.logger.Debugf(format, args...)
	}
}
