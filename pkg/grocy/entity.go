package grocy

// EntityType identifies a Grocy object collection for generic CRUD
// operations. The values map 1:1 to the resource names under the API's
// objects/ endpoints.
type EntityType string

// The entity types exposed by the Grocy API.
const (
	EntityProducts                EntityType = "products"
	EntityProductBarcodes         EntityType = "product_barcodes"
	EntityProductGroups           EntityType = "product_groups"
	EntityChores                  EntityType = "chores"
	EntityChoresLog               EntityType = "chores_log"
	EntityBatteries               EntityType = "batteries"
	EntityBatteryChargeCycles     EntityType = "battery_charge_cycles"
	EntityLocations               EntityType = "locations"
	EntityShoppingLocations       EntityType = "shopping_locations"
	EntityQuantityUnits           EntityType = "quantity_units"
	EntityQuantityUnitConversions EntityType = "quantity_unit_conversions"
	EntityShoppingList            EntityType = "shopping_list"
	EntityShoppingLists           EntityType = "shopping_lists"
	EntityRecipes                 EntityType = "recipes"
	EntityRecipePositions         EntityType = "recipes_pos"
	EntityRecipeNestings          EntityType = "recipes_nestings"
	EntityMealPlan                EntityType = "meal_plan"
	EntityMealPlanSections        EntityType = "meal_plan_sections"
	EntityTasks                   EntityType = "tasks"
	EntityTaskCategories          EntityType = "task_categories"
	EntityEquipment               EntityType = "equipment"
	EntityStockLog                EntityType = "stock_log"
	EntityUserfields              EntityType = "userfields"
	EntityUserEntities            EntityType = "userentities"
	EntityUserObjects             EntityType = "userobjects"
	EntityAPIKeys                 EntityType = "api_keys"
)

// String returns the resource name used in object endpoint paths.
func (e EntityType) String() string { return string(e) }

// TransactionType categorizes stock movements.
type TransactionType string

// Stock transaction types known to the Grocy API.
const (
	TransactionPurchase            TransactionType = "purchase"
	TransactionConsume             TransactionType = "consume"
	TransactionInventoryCorrection TransactionType = "inventory-correction"
	TransactionProductOpened       TransactionType = "product-opened"
)
