package grocy_test

import (
	"context"
	"strings"
	"testing"

	"github.com/lu-kno/gogrocy/internal/grocytest"
	"github.com/lu-kno/gogrocy/pkg/grocy"
)

func newClient(t *testing.T, srv *grocytest.Server) *grocy.Client {
	t.Helper()
	base, port := srv.URL()
	client, err := grocy.New(grocy.Config{URL: base, Port: port, APIKey: grocytest.APIKey})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return client
}

func seedProduct(srv *grocytest.Server, id int, name string) {
	srv.Seed("products", id, map[string]any{
		"name":                     name,
		"description":              "",
		"location_id":              1,
		"product_group_id":         1,
		"min_stock_amount":         1,
		"default_best_before_days": 0,
	})
}

func TestStockAddAndCurrent(t *testing.T) {
	srv := grocytest.New(t)
	client := newClient(t, srv)
	seedProduct(srv, 1, "Milk")

	ctx := context.Background()
	if err := client.Stock.Add(ctx, 1, 5, 1.99, grocy.AddOptions{}); err != nil {
		t.Fatalf("Add() error: %v", err)
	}

	products, err := client.Stock.Current(ctx)
	if err != nil {
		t.Fatalf("Current() error: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("Current() returned %d products, want 1", len(products))
	}
	p := products[0]
	if p.ID != 1 || p.Name != "Milk" {
		t.Errorf("product = %d %q, want 1 %q", p.ID, p.Name, "Milk")
	}
	if p.AvailableAmount != 5 {
		t.Errorf("AvailableAmount = %v, want 5", p.AvailableAmount)
	}

	log := srv.StockLog()
	if len(log) != 1 {
		t.Fatalf("stock log has %d entries, want 1", len(log))
	}
	txID, _ := log[0]["transaction_id"].(string)
	if len(txID) != 36 || strings.Count(txID, "-") != 4 {
		t.Errorf("transaction_id = %q, want a UUID", txID)
	}
}

func TestStockConsume(t *testing.T) {
	srv := grocytest.New(t)
	client := newClient(t, srv)
	seedProduct(srv, 1, "Milk")

	ctx := context.Background()
	if err := client.Stock.Add(ctx, 1, 5, 0, grocy.AddOptions{}); err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	if err := client.Stock.Consume(ctx, 1, 2, grocy.ConsumeOptions{}); err != nil {
		t.Fatalf("Consume() error: %v", err)
	}

	products, err := client.Stock.Current(ctx)
	if err != nil {
		t.Fatalf("Current() error: %v", err)
	}
	if len(products) != 1 || products[0].AvailableAmount != 3 {
		t.Fatalf("Current() after consume = %+v, want one product with amount 3", products)
	}
}

func TestStockAddUnknownProduct(t *testing.T) {
	srv := grocytest.New(t)
	client := newClient(t, srv)

	err := client.Stock.Add(context.Background(), 99, 1, 0, grocy.AddOptions{})
	apiErr, ok := grocy.AsError(err)
	if !ok {
		t.Fatalf("Add() error = %v, want API error", err)
	}
	if !apiErr.IsClientError() {
		t.Errorf("Add() unknown product status = %d, want 4xx", apiErr.StatusCode)
	}
}

func TestStockProductDetails(t *testing.T) {
	srv := grocytest.New(t)
	client := newClient(t, srv)
	seedProduct(srv, 1, "Milk")
	srv.Seed("product_barcodes", 1, map[string]any{
		"product_id": 1,
		"barcode":    "4029764001807",
		"amount":     1,
	})

	ctx := context.Background()
	if err := client.Stock.Add(ctx, 1, 4, 0, grocy.AddOptions{}); err != nil {
		t.Fatalf("Add() error: %v", err)
	}

	p, err := client.Stock.Product(ctx, 1)
	if err != nil {
		t.Fatalf("Product() error: %v", err)
	}
	if p.Name != "Milk" {
		t.Errorf("Name = %q, want %q", p.Name, "Milk")
	}
	if p.StockAmount != 4 {
		t.Errorf("StockAmount = %v, want 4", p.StockAmount)
	}
	if len(p.Barcodes) != 1 || p.Barcodes[0].Barcode != "4029764001807" {
		t.Errorf("Barcodes = %+v, want the seeded barcode", p.Barcodes)
	}
	if p.QuantityUnitStock == nil || p.QuantityUnitStock.Name == "" {
		t.Error("QuantityUnitStock not populated from details")
	}
}

func TestStockProductNotFound(t *testing.T) {
	srv := grocytest.New(t)
	client := newClient(t, srv)

	_, err := client.Stock.Product(context.Background(), 42)
	if !grocy.IsNotFound(err) {
		t.Errorf("Product() error = %v, want not-found", err)
	}
}

func TestMissingProductsHydration(t *testing.T) {
	srv := grocytest.New(t)
	client := newClient(t, srv)
	seedProduct(srv, 7, "Flour")
	seedProduct(srv, 3, "Sugar")
	srv.Volatile = map[string]any{
		"missing_products": []map[string]any{
			{"id": 7, "name": "Flour", "amount_missing": "2", "is_partly_in_stock": "1"},
			{"id": 3, "name": "Sugar", "amount_missing": 1, "is_partly_in_stock": 0},
		},
	}

	products, err := client.Stock.MissingProducts(context.Background(), true)
	if err != nil {
		t.Fatalf("MissingProducts() error: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("MissingProducts() returned %d products, want 2", len(products))
	}

	// Hydration must preserve ids, order, and the list-level aggregations.
	if products[0].ID != 7 || products[1].ID != 3 {
		t.Errorf("ids = %d, %d, want 7, 3", products[0].ID, products[1].ID)
	}
	if products[0].AmountMissing != 2 || !products[0].IsPartlyInStock {
		t.Errorf("aggregations = %v/%v, want 2/true", products[0].AmountMissing, products[0].IsPartlyInStock)
	}
	if products[0].Name != "Flour" || products[1].Name != "Sugar" {
		t.Errorf("names = %q, %q after hydration", products[0].Name, products[1].Name)
	}
	if products[0].QuantityUnitStock == nil {
		t.Error("detail fields missing after hydration")
	}
}

func TestMissingProductsHydrationFailFast(t *testing.T) {
	srv := grocytest.New(t)
	client := newClient(t, srv)
	seedProduct(srv, 1, "Flour")
	seedProduct(srv, 2, "Sugar")
	srv.Volatile = map[string]any{
		"missing_products": []map[string]any{
			{"id": 1, "name": "Flour", "amount_missing": 1, "is_partly_in_stock": 0},
			{"id": 2, "name": "Sugar", "amount_missing": 1, "is_partly_in_stock": 0},
		},
	}
	srv.FailOn("GET", "/api/stock/products/2", 500)

	_, err := client.Stock.MissingProducts(context.Background(), true)
	apiErr, ok := grocy.AsError(err)
	if !ok {
		t.Fatalf("MissingProducts() error = %v, want API error", err)
	}
	if !apiErr.IsServerError() {
		t.Errorf("status = %d, want 5xx", apiErr.StatusCode)
	}
}

func TestDueProductsWithoutDetails(t *testing.T) {
	srv := grocytest.New(t)
	client := newClient(t, srv)
	srv.Volatile = map[string]any{
		"due_products": []map[string]any{
			{
				"product_id":       5,
				"amount":           "2",
				"best_before_date": "2026-09-02",
				"product":          map[string]any{"id": 5, "name": "Yogurt"},
			},
		},
	}

	products, err := client.Stock.DueProducts(context.Background(), false)
	if err != nil {
		t.Fatalf("DueProducts() error: %v", err)
	}
	if len(products) != 1 || products[0].ID != 5 || products[0].Name != "Yogurt" {
		t.Fatalf("DueProducts() = %+v, want one product 5 Yogurt", products)
	}
	if products[0].AvailableAmount != 2 {
		t.Errorf("AvailableAmount = %v, want 2", products[0].AvailableAmount)
	}

	// Without getDetails there must be no per-product detail requests.
	for _, req := range srv.Requests() {
		if strings.HasPrefix(req, "GET /api/stock/products/") {
			t.Errorf("unexpected detail request %q", req)
		}
	}
}
