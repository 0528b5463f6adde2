// Package grocy provides a typed client for the Grocy household-management
// REST API.
//
// # Overview
//
// A [Client] wraps one Grocy server and exposes the API grouped by entity
// family, mirroring the server's own endpoint layout:
//
//   - [StockService]: products in stock, stock entries, bookings, transactions
//   - [ShoppingListService]: shopping lists and their items
//   - [ChoreService] and [ChoreLogService]: chores and execution tracking
//   - [TaskService]: tasks and completion
//   - [BatteryService]: batteries and charge cycles
//   - [MealPlanService]: meal plan entries and sections
//   - [RecipeService]: recipes and fulfillment
//   - [UserService]: users and per-user settings
//   - [SystemService]: version, time, config, calendar
//   - [EquipmentService]: household equipment
//   - [FileService]: file upload and download
//   - [GenericService]: raw CRUD over any [EntityType]
//
// # Client Pattern
//
//	client, err := grocy.New(grocy.Config{
//	    URL:    "https://grocy.example.com",
//	    APIKey: os.Getenv("GROCY_API_KEY"),
//	})
//	if err != nil {
//	    return err
//	}
//	stock, err := client.Stock.Current(ctx)
//
// Every call is a single synchronous HTTP round trip. Listing operations
// that accept a getDetails flag perform one additional detail request per
// returned record ("hydration"); the extra cost is deliberate and visible.
//
// # Errors
//
// Any non-2xx response surfaces as an [*Error] carrying the HTTP status
// code and the server's error message. Transport failures are returned
// wrapped, never classified. The library performs no retries and no
// caching; callers own their own resilience policy.
package grocy
