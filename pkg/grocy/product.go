package grocy

import (
	"context"
	"fmt"
	"time"
)

// ProductBarcode is one barcode attached to a product.
type ProductBarcode struct {
	Barcode string
	Amount  float64
}

// QuantityUnit describes a unit products are counted in.
type QuantityUnit struct {
	ID          int
	Name        string
	NamePlural  string
	Description string
}

// Location is a storage or shopping location.
type Location struct {
	ID          int
	Name        string
	Description string
}

// Group is a product group.
type Group struct {
	ID          int
	Name        string
	Description string
}

// Product is the domain view of a product. Depending on which call
// produced it, only a subset of fields is populated; hydration via a
// getDetails flag or StockService.Product fills in the rest. Barcodes are
// only populated after a detail fetch.
type Product struct {
	ID   int
	Name string

	// Stock summary fields (from the stock listing).
	AvailableAmount        float64
	AmountOpened           float64
	AmountAggregated       float64
	AmountOpenedAggregated float64
	IsAggregatedAmount     bool
	BestBeforeDate         time.Time

	// Missing-product fields (from the volatile stock listing). These are
	// list-level aggregations and survive hydration untouched.
	AmountMissing   float64
	IsPartlyInStock bool

	// Entity fields (from the product object).
	Description           string
	LocationID            int
	ProductGroupID        int
	MinStockAmount        float64
	DefaultBestBeforeDays int
	PictureFileName       string

	// Detail fields (from the product details endpoint).
	LastPurchased       time.Time
	LastUsed            time.Time
	StockAmount         float64
	StockAmountOpened   float64
	LastPrice           float64
	QuantityUnitStock   *QuantityUnit
	Location            *Location
	Barcodes            []ProductBarcode
}

func productFromStock(resp CurrentStockResponse) *Product {
	p := productFromData(resp.Product)
	p.ID = int(resp.ProductID)
	p.AvailableAmount = float64(resp.Amount)
	p.AmountOpened = float64(resp.AmountOpened)
	p.AmountAggregated = float64(resp.AmountAggregated)
	p.AmountOpenedAggregated = float64(resp.AmountOpenedAggregated)
	p.IsAggregatedAmount = bool(resp.IsAggregatedAmount)
	p.BestBeforeDate = resp.BestBeforeDate.Time
	return p
}

func productFromMissing(resp MissingProductResponse) *Product {
	return &Product{
		ID:              int(resp.ID),
		Name:            resp.Name,
		AmountMissing:   float64(resp.AmountMissing),
		IsPartlyInStock: bool(resp.IsPartlyInStock),
	}
}

func productFromData(data ProductData) *Product {
	return &Product{
		ID:                    int(data.ID),
		Name:                  data.Name,
		Description:           data.Description,
		LocationID:            int(data.LocationID),
		ProductGroupID:        int(data.ProductGroupID),
		MinStockAmount:        float64(data.MinStockAmount),
		DefaultBestBeforeDays: int(data.DefaultBestBeforeDays),
		PictureFileName:       data.PictureFileName,
	}
}

func productFromDetails(resp ProductDetailsResponse) *Product {
	p := productFromData(resp.Product)
	p.applyDetails(resp)
	return p
}

func productFromStockLog(resp StockLogResponse) *Product {
	return &Product{
		ID:              int(resp.ProductID),
		AvailableAmount: float64(resp.Amount),
		BestBeforeDate:  resp.BestBeforeDate.Time,
	}
}

// applyDetails merges a detail response into p. Detail fields overwrite
// and augment; the identifier and summary-only aggregations
// (AmountMissing, IsPartlyInStock, the stock amounts from the listing)
// are preserved.
func (p *Product) applyDetails(resp ProductDetailsResponse) {
	p.Name = resp.Product.Name
	p.Description = resp.Product.Description
	p.LocationID = int(resp.Product.LocationID)
	p.ProductGroupID = int(resp.Product.ProductGroupID)
	p.MinStockAmount = float64(resp.Product.MinStockAmount)
	p.DefaultBestBeforeDays = int(resp.Product.DefaultBestBeforeDays)
	p.PictureFileName = resp.Product.PictureFileName

	p.LastPurchased = resp.LastPurchased.Time
	p.LastUsed = resp.LastUsed.Time
	p.StockAmount = float64(resp.StockAmount)
	p.StockAmountOpened = float64(resp.StockAmountOpened)
	p.LastPrice = float64(resp.LastPrice)

	unit := QuantityUnit{
		ID:          int(resp.QuantityUnitStock.ID),
		Name:        resp.QuantityUnitStock.Name,
		NamePlural:  resp.QuantityUnitStock.NamePlural,
		Description: resp.QuantityUnitStock.Description,
	}
	p.QuantityUnitStock = &unit

	if resp.Location != nil {
		p.Location = &Location{
			ID:          int(resp.Location.ID),
			Name:        resp.Location.Name,
			Description: resp.Location.Description,
		}
	}

	p.Barcodes = p.Barcodes[:0]
	for _, bc := range resp.Barcodes {
		p.Barcodes = append(p.Barcodes, ProductBarcode{
			Barcode: bc.Barcode,
			Amount:  float64(bc.Amount),
		})
	}
}

// hydrateProducts issues one detail fetch per product and merges the
// result in place. Order is preserved; the first failing fetch aborts the
// whole operation.
func hydrateProducts(ctx context.Context, c *Client, products []*Product) error {
	for _, p := range products {
		var details ProductDetailsResponse
		if err := c.get(ctx, fmt.Sprintf("stock/products/%d", p.ID), nil, &details); err != nil {
			return err
		}
		p.applyDetails(details)
	}
	return nil
}
