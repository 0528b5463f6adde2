package grocy

import "encoding/json"

// Response models: one struct per raw payload shape the API returns.
// Field types use the lenient scalars from json.go because the backend
// serializes database columns loosely.

// ProductData is the products object entity.
type ProductData struct {
	ID                       Int    `json:"id"`
	Name                     string `json:"name"`
	Description              string `json:"description"`
	LocationID               Int    `json:"location_id"`
	ShoppingLocationID       Int    `json:"shopping_location_id"`
	ProductGroupID           Int    `json:"product_group_id"`
	QuIDStock                Int    `json:"qu_id_stock"`
	QuIDPurchase             Int    `json:"qu_id_purchase"`
	PictureFileName          string `json:"picture_file_name"`
	AllowPartialUnitsInStock Bool   `json:"allow_partial_units_in_stock"`
	MinStockAmount           Float  `json:"min_stock_amount"`
	DefaultBestBeforeDays    Int    `json:"default_best_before_days"`
	RowCreatedTimestamp      Time   `json:"row_created_timestamp"`
}

// QuantityUnitData is the quantity_units object entity.
type QuantityUnitData struct {
	ID                  Int    `json:"id"`
	Name                string `json:"name"`
	NamePlural          string `json:"name_plural"`
	Description         string `json:"description"`
	RowCreatedTimestamp Time   `json:"row_created_timestamp"`
}

// LocationData is the locations object entity (also used for product
// groups, which share the same shape).
type LocationData struct {
	ID                  Int    `json:"id"`
	Name                string `json:"name"`
	Description         string `json:"description"`
	RowCreatedTimestamp Time   `json:"row_created_timestamp"`
}

// ProductBarcodeData is one barcode attached to a product.
type ProductBarcodeData struct {
	Barcode string `json:"barcode"`
	Amount  Float  `json:"amount"`
}

// CurrentStockResponse is one row of GET stock.
type CurrentStockResponse struct {
	ProductID              Int         `json:"product_id"`
	Amount                 Float       `json:"amount"`
	BestBeforeDate         Date        `json:"best_before_date"`
	AmountOpened           Float       `json:"amount_opened"`
	AmountAggregated       Float       `json:"amount_aggregated"`
	AmountOpenedAggregated Float       `json:"amount_opened_aggregated"`
	IsAggregatedAmount     Bool        `json:"is_aggregated_amount"`
	Product                ProductData `json:"product"`
}

// MissingProductResponse is one row of the missing_products section of
// GET stock/volatile. Unlike CurrentStockResponse it carries the product
// id in the id field.
type MissingProductResponse struct {
	ID              Int    `json:"id"`
	Name            string `json:"name"`
	AmountMissing   Float  `json:"amount_missing"`
	IsPartlyInStock Bool   `json:"is_partly_in_stock"`
}

// VolatileStockResponse is GET stock/volatile: products that are due,
// overdue, expired, or below their minimum stock amount.
type VolatileStockResponse struct {
	DueProducts     []CurrentStockResponse   `json:"due_products"`
	OverdueProducts []CurrentStockResponse   `json:"overdue_products"`
	ExpiredProducts []CurrentStockResponse   `json:"expired_products"`
	MissingProducts []MissingProductResponse `json:"missing_products"`
}

// ProductDetailsResponse is GET stock/products/{id}.
type ProductDetailsResponse struct {
	Product                     ProductData          `json:"product"`
	LastPurchased               Time                 `json:"last_purchased"`
	LastUsed                    Time                 `json:"last_used"`
	StockAmount                 Float                `json:"stock_amount"`
	StockAmountOpened           Float                `json:"stock_amount_opened"`
	NextBestBeforeDate          Date                 `json:"next_best_before_date"`
	LastPrice                   Float                `json:"last_price"`
	QuantityUnitStock           QuantityUnitData     `json:"quantity_unit_stock"`
	DefaultQuantityUnitPurchase QuantityUnitData     `json:"default_quantity_unit_purchase"`
	Barcodes                    []ProductBarcodeData `json:"product_barcodes"`
	Location                    *LocationData        `json:"location"`
}

// StockEntryResponse is one concrete stock entry (a purchased batch).
type StockEntryResponse struct {
	ID                  Int    `json:"id"`
	ProductID           Int    `json:"product_id"`
	Amount              Float  `json:"amount"`
	BestBeforeDate      Date   `json:"best_before_date"`
	PurchasedDate       Date   `json:"purchased_date"`
	StockID             string `json:"stock_id"`
	Price               Float  `json:"price"`
	LocationID          Int    `json:"location_id"`
	ShoppingLocationID  Int    `json:"shopping_location_id"`
	OpenedDate          Date   `json:"opened_date"`
	RowCreatedTimestamp Time   `json:"row_created_timestamp"`
}

// StockLogResponse is one stock transaction log entry.
type StockLogResponse struct {
	ID              Int             `json:"id"`
	ProductID       Int             `json:"product_id"`
	Amount          Float           `json:"amount"`
	BestBeforeDate  Date            `json:"best_before_date"`
	PurchasedDate   Date            `json:"purchased_date"`
	UsedDate        Date            `json:"used_date"`
	Spoiled         Bool            `json:"spoiled"`
	StockID         string          `json:"stock_id"`
	TransactionID   string          `json:"transaction_id"`
	TransactionType TransactionType `json:"transaction_type"`
}

// StockBookingResponse is GET stock/bookings/{id}.
type StockBookingResponse struct {
	ID                  Int    `json:"id"`
	ProductID           Int    `json:"product_id"`
	Amount              Float  `json:"amount"`
	BestBeforeDate      Date   `json:"best_before_date"`
	PurchasedDate       Date   `json:"purchased_date"`
	StockID             string `json:"stock_id"`
	TransactionID       string `json:"transaction_id"`
	TransactionType     string `json:"transaction_type"`
	RowCreatedTimestamp Time   `json:"row_created_timestamp"`
}

// StockLocationResponse is one row of GET stock/products/{id}/locations.
type StockLocationResponse struct {
	ProductID  Int   `json:"product_id"`
	LocationID Int   `json:"location_id"`
	Amount     Float `json:"amount"`
}

// PriceHistoryResponse is one row of GET stock/products/{id}/price-history.
type PriceHistoryResponse struct {
	Date               Date  `json:"date"`
	Price              Float `json:"price"`
	ShoppingLocationID Int   `json:"shopping_location_id"`
}

// ShoppingListItem is one row of the shopping_list object entity.
type ShoppingListItem struct {
	ID                  Int    `json:"id"`
	ProductID           Int    `json:"product_id"`
	Note                string `json:"note"`
	Amount              Float  `json:"amount"`
	ShoppingListID      Int    `json:"shopping_list_id"`
	Done                Int    `json:"done"`
	RowCreatedTimestamp Time   `json:"row_created_timestamp"`
}

// CurrentChoreResponse is one row of GET chores: the summary with
// schedule information only.
type CurrentChoreResponse struct {
	ChoreID                    Int  `json:"chore_id"`
	LastTrackedTime            Time `json:"last_tracked_time"`
	NextEstimatedExecutionTime Time `json:"next_estimated_execution_time"`
}

// ChoreData is the chores object entity.
type ChoreData struct {
	ID                             Int            `json:"id"`
	Name                           string         `json:"name"`
	Description                    string         `json:"description"`
	PeriodType                     string         `json:"period_type"`
	PeriodConfig                   string         `json:"period_config"`
	PeriodDays                     Int            `json:"period_days"`
	TrackDateOnly                  Bool           `json:"track_date_only"`
	Rollover                       Bool           `json:"rollover"`
	AssignmentType                 string         `json:"assignment_type"`
	AssignmentConfig               string         `json:"assignment_config"`
	NextExecutionAssignedToUserID  Int            `json:"next_execution_assigned_to_user_id"`
	Userfields                     map[string]any `json:"userfields"`
}

// ChoreDetailsResponse is GET chores/{id}.
type ChoreDetailsResponse struct {
	Chore                      ChoreData `json:"chore"`
	LastTracked                Time      `json:"last_tracked"`
	NextEstimatedExecutionTime Time      `json:"next_estimated_execution_time"`
	TrackCount                 Int       `json:"track_count"`
	NextExecutionAssignedUser  *UserDto  `json:"next_execution_assigned_user"`
	LastDoneBy                 *UserDto  `json:"last_done_by"`
}

// ChoreLogResponse is one row of the chores_log object entity.
type ChoreLogResponse struct {
	ID                     Int            `json:"id"`
	ChoreID                Int            `json:"chore_id"`
	TrackedTime            Time           `json:"tracked_time"`
	DoneByUserID           Int            `json:"done_by_user_id"`
	RowCreatedTimestamp    Time           `json:"row_created_timestamp"`
	Undone                 Bool           `json:"undone"`
	UndoneTimestamp        Time           `json:"undone_timestamp"`
	Skipped                Bool           `json:"skipped"`
	ScheduledExecutionTime Time           `json:"scheduled_execution_time"`
	Userfields             map[string]any `json:"userfields"`
}

// UserDto is one Grocy user.
type UserDto struct {
	ID          Int    `json:"id"`
	Username    string `json:"username"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DisplayName string `json:"display_name"`
}

// TaskCategoryDto is the task_categories object entity.
type TaskCategoryDto struct {
	ID                  Int    `json:"id"`
	Name                string `json:"name"`
	Description         string `json:"description"`
	RowCreatedTimestamp Time   `json:"row_created_timestamp"`
}

// TaskResponse is one row of GET tasks.
type TaskResponse struct {
	ID               Int              `json:"id"`
	Name             string           `json:"name"`
	Description      string           `json:"description"`
	DueDate          Date             `json:"due_date"`
	Done             Int              `json:"done"`
	DoneTimestamp    Time             `json:"done_timestamp"`
	CategoryID       Int              `json:"category_id"`
	Category         *TaskCategoryDto `json:"category"`
	AssignedToUserID Int              `json:"assigned_to_user_id"`
	AssignedToUser   *UserDto         `json:"assigned_to_user"`
	Userfields       map[string]any   `json:"userfields"`
}

// CurrentBatteryResponse is one row of GET batteries: the summary with
// charge schedule information only.
type CurrentBatteryResponse struct {
	ID                      Int  `json:"id"`
	LastTrackedTime         Time `json:"last_tracked_time"`
	NextEstimatedChargeTime Time `json:"next_estimated_charge_time"`
}

// BatteryData is the batteries object entity.
type BatteryData struct {
	ID                  Int            `json:"id"`
	Name                string         `json:"name"`
	Description         string         `json:"description"`
	UsedIn              string         `json:"used_in"`
	ChargeIntervalDays  Int            `json:"charge_interval_days"`
	RowCreatedTimestamp Time           `json:"row_created_timestamp"`
	Userfields          map[string]any `json:"userfields"`
}

// BatteryDetailsResponse is GET batteries/{id}.
type BatteryDetailsResponse struct {
	Battery                 BatteryData `json:"battery"`
	ChargeCyclesCount       Int         `json:"charge_cycles_count"`
	LastCharged             Time        `json:"last_charged"`
	LastTrackedTime         Time        `json:"last_tracked_time"`
	NextEstimatedChargeTime Time        `json:"next_estimated_charge_time"`
}

// MealPlanResponse is one row of the meal_plan object entity.
type MealPlanResponse struct {
	ID                  Int            `json:"id"`
	Day                 Date           `json:"day"`
	Type                string         `json:"type"`
	RecipeID            Int            `json:"recipe_id"`
	RecipeServings      Int            `json:"recipe_servings"`
	Note                string         `json:"note"`
	ProductID           Int            `json:"product_id"`
	ProductAmount       Float          `json:"product_amount"`
	ProductQuID         Int            `json:"product_qu_id"`
	SectionID           Int            `json:"section_id"`
	RowCreatedTimestamp Time           `json:"row_created_timestamp"`
	Userfields          map[string]any `json:"userfields"`
}

// MealPlanSectionResponse is one row of the meal_plan_sections object
// entity.
type MealPlanSectionResponse struct {
	ID                  Int    `json:"id"`
	Name                string `json:"name"`
	SortNumber          Int    `json:"sort_number"`
	RowCreatedTimestamp Time   `json:"row_created_timestamp"`
}

// RecipeDetailsResponse is the recipes object entity.
type RecipeDetailsResponse struct {
	ID                  Int            `json:"id"`
	Name                string         `json:"name"`
	Description         string         `json:"description"`
	BaseServings        Int            `json:"base_servings"`
	DesiredServings     Int            `json:"desired_servings"`
	PictureFileName     string         `json:"picture_file_name"`
	RowCreatedTimestamp Time           `json:"row_created_timestamp"`
	Userfields          map[string]any `json:"userfields"`
}

// RecipeFulfillmentResponse is GET recipes/{id}/fulfillment.
type RecipeFulfillmentResponse struct {
	RecipeID                       Int  `json:"recipe_id"`
	NeedFulfilled                  Bool `json:"need_fulfilled"`
	NeedFulfilledWithShoppingList  Bool `json:"need_fulfilled_with_shopping_list"`
	MissingProductsCount           Int  `json:"missing_products_count"`
}

// EquipmentData is the equipment object entity.
type EquipmentData struct {
	ID                        Int            `json:"id"`
	Name                      string         `json:"name"`
	Description               string         `json:"description"`
	InstructionManualFileName string         `json:"instruction_manual_file_name"`
	RowCreatedTimestamp       Time           `json:"row_created_timestamp"`
	Userfields                map[string]any `json:"userfields"`
}

// GrocyVersionDto is the version block of GET system/info.
type GrocyVersionDto struct {
	Version     string `json:"Version"`
	ReleaseDate Date   `json:"ReleaseDate"`
}

// SystemInfoResponse is GET system/info.
type SystemInfoResponse struct {
	GrocyVersion  GrocyVersionDto `json:"grocy_version"`
	PHPVersion    string          `json:"php_version"`
	SQLiteVersion string          `json:"sqlite_version"`
	OS            string          `json:"os"`
	Client        string          `json:"client"`
}

// SystemTimeResponse is GET system/time.
type SystemTimeResponse struct {
	Timezone         string `json:"timezone"`
	TimeLocal        Time   `json:"time_local"`
	TimeLocalSqlite3 Time   `json:"time_local_sqlite3"`
	TimeUTC          Time   `json:"time_utc"`
	Timestamp        Int    `json:"timestamp"`
}

// SystemConfigResponse is GET system/config. FeatureFlags collects every
// FEATURE_FLAG_* key; Raw preserves the complete payload for settings the
// typed fields do not cover.
type SystemConfigResponse struct {
	Username      string         `json:"USER_USERNAME"`
	BasePath      string         `json:"BASE_PATH"`
	BaseURL       string         `json:"BASE_URL"`
	Mode          string         `json:"MODE"`
	DefaultLocale string         `json:"DEFAULT_LOCALE"`
	Locale        string         `json:"LOCALE"`
	Currency      string         `json:"CURRENCY"`
	FeatureFlags  map[string]any `json:"-"`
	Raw           map[string]any `json:"-"`
}

// UnmarshalJSON populates the typed fields and collects feature flags and
// the raw payload.
func (s *SystemConfigResponse) UnmarshalJSON(data []byte) error {
	type plain SystemConfigResponse
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = SystemConfigResponse(p)
	s.Raw = raw
	s.FeatureFlags = make(map[string]any)
	for key, value := range raw {
		if len(key) > len("FEATURE_FLAG_") && key[:len("FEATURE_FLAG_")] == "FEATURE_FLAG_" {
			s.FeatureFlags[key] = value
		}
	}
	return nil
}

// CreatedObjectResponse is the body returned by object-creating POSTs.
type CreatedObjectResponse struct {
	CreatedObjectID Int `json:"created_object_id"`
}
