package grocy

import (
	"context"
	"fmt"
	"time"
)

// StockService manages product stock levels, entries, and transactions.
type StockService struct {
	client *Client
}

// Current returns all products currently in stock.
func (s *StockService) Current(ctx context.Context) ([]*Product, error) {
	var raw []CurrentStockResponse
	if err := s.client.get(ctx, "stock", nil, &raw); err != nil {
		return nil, err
	}
	products := make([]*Product, 0, len(raw))
	for _, resp := range raw {
		products = append(products, productFromStock(resp))
	}
	return products, nil
}

// volatile fetches the stock warnings payload shared by the due, overdue,
// expired, and missing listings. One request per call; the server computes
// the filter predicate.
func (s *StockService) volatile(ctx context.Context) (*VolatileStockResponse, error) {
	var resp VolatileStockResponse
	if err := s.client.get(ctx, "stock/volatile", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *StockService) volatileProducts(ctx context.Context, pick func(*VolatileStockResponse) []CurrentStockResponse, getDetails bool) ([]*Product, error) {
	resp, err := s.volatile(ctx)
	if err != nil {
		return nil, err
	}
	raw := pick(resp)
	products := make([]*Product, 0, len(raw))
	for _, r := range raw {
		products = append(products, productFromStock(r))
	}
	if getDetails {
		if err := hydrateProducts(ctx, s.client, products); err != nil {
			return nil, err
		}
	}
	return products, nil
}

// DueProducts returns products that are due soon. With getDetails, each
// product is hydrated with one extra detail request.
func (s *StockService) DueProducts(ctx context.Context, getDetails bool) ([]*Product, error) {
	return s.volatileProducts(ctx, func(v *VolatileStockResponse) []CurrentStockResponse {
		return v.DueProducts
	}, getDetails)
}

// OverdueProducts returns products past their best-before date. With
// getDetails, each product is hydrated with one extra detail request.
func (s *StockService) OverdueProducts(ctx context.Context, getDetails bool) ([]*Product, error) {
	return s.volatileProducts(ctx, func(v *VolatileStockResponse) []CurrentStockResponse {
		return v.OverdueProducts
	}, getDetails)
}

// ExpiredProducts returns products that have expired. With getDetails,
// each product is hydrated with one extra detail request.
func (s *StockService) ExpiredProducts(ctx context.Context, getDetails bool) ([]*Product, error) {
	return s.volatileProducts(ctx, func(v *VolatileStockResponse) []CurrentStockResponse {
		return v.ExpiredProducts
	}, getDetails)
}

// MissingProducts returns products below their minimum stock amount. With
// getDetails, each product is hydrated with one extra detail request; the
// list-level AmountMissing and IsPartlyInStock fields survive hydration.
func (s *StockService) MissingProducts(ctx context.Context, getDetails bool) ([]*Product, error) {
	resp, err := s.volatile(ctx)
	if err != nil {
		return nil, err
	}
	products := make([]*Product, 0, len(resp.MissingProducts))
	for _, r := range resp.MissingProducts {
		products = append(products, productFromMissing(r))
	}
	if getDetails {
		if err := hydrateProducts(ctx, s.client, products); err != nil {
			return nil, err
		}
	}
	return products, nil
}

// Product returns full details for one product.
func (s *StockService) Product(ctx context.Context, productID int) (*Product, error) {
	var resp ProductDetailsResponse
	if err := s.client.get(ctx, fmt.Sprintf("stock/products/%d", productID), nil, &resp); err != nil {
		return nil, err
	}
	return productFromDetails(resp), nil
}

// ProductByBarcode returns full details for the product a barcode is
// attached to.
func (s *StockService) ProductByBarcode(ctx context.Context, barcode string) (*Product, error) {
	var resp ProductDetailsResponse
	if err := s.client.get(ctx, "stock/products/by-barcode/"+barcode, nil, &resp); err != nil {
		return nil, err
	}
	return productFromDetails(resp), nil
}

// AllProducts returns every product regardless of stock status.
func (s *StockService) AllProducts(ctx context.Context) ([]*Product, error) {
	var raw []ProductData
	if err := s.client.get(ctx, "objects/"+EntityProducts.String(), nil, &raw); err != nil {
		return nil, err
	}
	products := make([]*Product, 0, len(raw))
	for _, data := range raw {
		products = append(products, productFromData(data))
	}
	return products, nil
}

// AddOptions configures StockService.Add.
type AddOptions struct {
	BestBeforeDate  time.Time       // zero means the product's default applies
	TransactionType TransactionType // defaults to TransactionPurchase
}

// Add books the given amount of a product into stock.
func (s *StockService) Add(ctx context.Context, productID int, amount, price float64, opts AddOptions) error {
	if opts.TransactionType == "" {
		opts.TransactionType = TransactionPurchase
	}
	body := map[string]any{
		"amount":           amount,
		"transaction_type": opts.TransactionType,
		"price":            price,
	}
	if !opts.BestBeforeDate.IsZero() {
		body["best_before_date"] = formatDate(opts.BestBeforeDate)
	}
	return s.client.post(ctx, fmt.Sprintf("stock/products/%d/add", productID), body, nil)
}

// ConsumeOptions configures StockService.Consume.
type ConsumeOptions struct {
	Spoiled                     bool
	TransactionType             TransactionType // defaults to TransactionConsume
	AllowSubproductSubstitution bool
}

// Consume books the given amount of a product out of stock.
func (s *StockService) Consume(ctx context.Context, productID int, amount float64, opts ConsumeOptions) error {
	if opts.TransactionType == "" {
		opts.TransactionType = TransactionConsume
	}
	body := map[string]any{
		"amount":                        amount,
		"spoiled":                       opts.Spoiled,
		"transaction_type":              opts.TransactionType,
		"allow_subproduct_substitution": opts.AllowSubproductSubstitution,
	}
	return s.client.post(ctx, fmt.Sprintf("stock/products/%d/consume", productID), body, nil)
}

// Open marks the given amount of a product's stock as opened.
func (s *StockService) Open(ctx context.Context, productID int, amount float64, allowSubproductSubstitution bool) error {
	body := map[string]any{
		"amount":                        amount,
		"allow_subproduct_substitution": allowSubproductSubstitution,
	}
	return s.client.post(ctx, fmt.Sprintf("stock/products/%d/open", productID), body, nil)
}

// Transfer moves stock of a product between locations.
func (s *StockService) Transfer(ctx context.Context, productID int, amount float64, locationFrom, locationTo int) error {
	body := map[string]any{
		"amount":           amount,
		"location_id_from": locationFrom,
		"location_id_to":   locationTo,
	}
	return s.client.post(ctx, fmt.Sprintf("stock/products/%d/transfer", productID), body, nil)
}

// InventoryOptions configures stock inventory corrections.
type InventoryOptions struct {
	BestBeforeDate     time.Time
	ShoppingLocationID int
	LocationID         int
	Price              float64
	HasPrice           bool // Price zero is a valid correction value
}

func (o InventoryOptions) body(newAmount float64) map[string]any {
	body := map[string]any{"new_amount": newAmount}
	if !o.BestBeforeDate.IsZero() {
		body["best_before_date"] = formatDate(o.BestBeforeDate)
	}
	if o.ShoppingLocationID != 0 {
		body["shopping_location_id"] = o.ShoppingLocationID
	}
	if o.LocationID != 0 {
		body["location_id"] = o.LocationID
	}
	if o.HasPrice || o.Price != 0 {
		body["price"] = o.Price
	}
	return body
}

// Inventory corrects the stock amount of a product to newAmount and
// returns the resulting booking as a partially populated product.
func (s *StockService) Inventory(ctx context.Context, productID int, newAmount float64, opts InventoryOptions) (*Product, error) {
	var raw []StockLogResponse
	err := s.client.post(ctx, fmt.Sprintf("stock/products/%d/inventory", productID), opts.body(newAmount), &raw)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return productFromStockLog(raw[0]), nil
}

// AddByBarcode books stock in for the product a barcode is attached to.
func (s *StockService) AddByBarcode(ctx context.Context, barcode string, amount, price float64, opts AddOptions) (*Product, error) {
	body := map[string]any{
		"amount":           amount,
		"transaction_type": TransactionPurchase,
		"price":            price,
	}
	if !opts.BestBeforeDate.IsZero() {
		body["best_before_date"] = formatDate(opts.BestBeforeDate)
	}
	var raw []StockLogResponse
	if err := s.client.post(ctx, "stock/products/by-barcode/"+barcode+"/add", body, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return productFromStockLog(raw[0]), nil
}

// ConsumeByBarcode books stock out for the product a barcode is attached to.
func (s *StockService) ConsumeByBarcode(ctx context.Context, barcode string, amount float64, spoiled bool) (*Product, error) {
	body := map[string]any{
		"amount":           amount,
		"spoiled":          spoiled,
		"transaction_type": TransactionConsume,
	}
	var raw []StockLogResponse
	if err := s.client.post(ctx, "stock/products/by-barcode/"+barcode+"/consume", body, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return productFromStockLog(raw[0]), nil
}

// InventoryByBarcode corrects stock for the product a barcode is attached to.
func (s *StockService) InventoryByBarcode(ctx context.Context, barcode string, newAmount float64, opts InventoryOptions) (*Product, error) {
	var raw []StockLogResponse
	err := s.client.post(ctx, "stock/products/by-barcode/"+barcode+"/inventory", opts.body(newAmount), &raw)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return productFromStockLog(raw[0]), nil
}

// OpenByBarcode marks stock as opened for the product a barcode is
// attached to.
func (s *StockService) OpenByBarcode(ctx context.Context, barcode string, amount float64) error {
	return s.client.post(ctx, "stock/products/by-barcode/"+barcode+"/open", map[string]any{"amount": amount}, nil)
}

// TransferByBarcode moves stock between locations for the product a
// barcode is attached to.
func (s *StockService) TransferByBarcode(ctx context.Context, barcode string, amount float64, locationFrom, locationTo int) error {
	body := map[string]any{
		"amount":           amount,
		"location_id_from": locationFrom,
		"location_id_to":   locationTo,
	}
	return s.client.post(ctx, "stock/products/by-barcode/"+barcode+"/transfer", body, nil)
}

// MergeProducts merges two products, keeping the first.
func (s *StockService) MergeProducts(ctx context.Context, productIDKeep, productIDRemove int) error {
	return s.client.post(ctx, fmt.Sprintf("stock/products/%d/merge/%d", productIDKeep, productIDRemove), map[string]any{}, nil)
}

// Entry returns a single stock entry.
func (s *StockService) Entry(ctx context.Context, entryID int) (*StockEntryResponse, error) {
	var resp StockEntryResponse
	if err := s.client.get(ctx, fmt.Sprintf("stock/entry/%d", entryID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// EditEntry updates fields of a stock entry.
func (s *StockService) EditEntry(ctx context.Context, entryID int, data map[string]any) error {
	return s.client.put(ctx, fmt.Sprintf("stock/entry/%d", entryID), data, nil)
}

// ProductEntries returns all stock entries of a product.
func (s *StockService) ProductEntries(ctx context.Context, productID int) ([]StockEntryResponse, error) {
	var resp []StockEntryResponse
	if err := s.client.get(ctx, fmt.Sprintf("stock/products/%d/entries", productID), nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ProductLocations returns the locations a product is stored at.
func (s *StockService) ProductLocations(ctx context.Context, productID int) ([]StockLocationResponse, error) {
	var resp []StockLocationResponse
	if err := s.client.get(ctx, fmt.Sprintf("stock/products/%d/locations", productID), nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// PriceHistory returns the price history of a product.
func (s *StockService) PriceHistory(ctx context.Context, productID int) ([]PriceHistoryResponse, error) {
	var resp []PriceHistoryResponse
	if err := s.client.get(ctx, fmt.Sprintf("stock/products/%d/price-history", productID), nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// EntriesByLocation returns all stock entries at a location.
func (s *StockService) EntriesByLocation(ctx context.Context, locationID int) ([]StockEntryResponse, error) {
	var resp []StockEntryResponse
	if err := s.client.get(ctx, fmt.Sprintf("stock/locations/%d/entries", locationID), nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Booking returns a single stock booking.
func (s *StockService) Booking(ctx context.Context, bookingID int) (*StockBookingResponse, error) {
	var resp StockBookingResponse
	if err := s.client.get(ctx, fmt.Sprintf("stock/bookings/%d", bookingID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UndoBooking reverts a stock booking.
func (s *StockService) UndoBooking(ctx context.Context, bookingID int) error {
	return s.client.post(ctx, fmt.Sprintf("stock/bookings/%d/undo", bookingID), map[string]any{}, nil)
}

// Transactions returns all log entries belonging to a transaction.
func (s *StockService) Transactions(ctx context.Context, transactionID string) ([]StockLogResponse, error) {
	var resp []StockLogResponse
	if err := s.client.get(ctx, "stock/transactions/"+transactionID, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// UndoTransaction reverts a whole stock transaction.
func (s *StockService) UndoTransaction(ctx context.Context, transactionID string) error {
	return s.client.post(ctx, "stock/transactions/"+transactionID+"/undo", map[string]any{}, nil)
}

// ExternalBarcodeLookup queries the server's configured external barcode
// lookup plugin. The payload shape depends on the plugin.
func (s *StockService) ExternalBarcodeLookup(ctx context.Context, barcode string) (map[string]any, error) {
	var resp map[string]any
	if err := s.client.get(ctx, "stock/barcodes/external-lookup/"+barcode, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
