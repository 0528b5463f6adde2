package grocy

import (
	"context"
	"fmt"
	"time"
)

// ShoppingListProduct is the domain view of one shopping list row. The
// Product field is nil until the item is hydrated; before that only
// ProductID identifies the product.
type ShoppingListProduct struct {
	ID             int
	ProductID      int
	Note           string
	Amount         float64
	ShoppingListID int
	Done           bool
	Created        time.Time
	Product        *Product
}

func shoppingListProductFromItem(item ShoppingListItem) *ShoppingListProduct {
	return &ShoppingListProduct{
		ID:             int(item.ID),
		ProductID:      int(item.ProductID),
		Note:           item.Note,
		Amount:         float64(item.Amount),
		ShoppingListID: int(item.ShoppingListID),
		Done:           item.Done != 0,
		Created:        item.RowCreatedTimestamp.Time,
	}
}

// ShoppingListService manages shopping lists and their items.
type ShoppingListService struct {
	client *Client
}

// Items returns all shopping list rows. With getDetails, each row that
// references a product is hydrated with one extra product detail request;
// free-text rows (no product reference) are returned as-is.
func (s *ShoppingListService) Items(ctx context.Context, getDetails bool, filters ...string) ([]*ShoppingListProduct, error) {
	var raw []ShoppingListItem
	if err := s.client.get(ctx, "objects/"+EntityShoppingList.String(), filters, &raw); err != nil {
		return nil, err
	}
	items := make([]*ShoppingListProduct, 0, len(raw))
	for _, item := range raw {
		items = append(items, shoppingListProductFromItem(item))
	}
	if getDetails {
		for _, item := range items {
			if item.ProductID == 0 {
				continue
			}
			var details ProductDetailsResponse
			if err := s.client.get(ctx, fmt.Sprintf("stock/products/%d", item.ProductID), nil, &details); err != nil {
				return nil, err
			}
			item.Product = productFromDetails(details)
		}
	}
	return items, nil
}

// AddProductOptions configures ShoppingListService.AddProduct.
type AddProductOptions struct {
	ShoppingListID int     // defaults to the first list
	Amount         float64 // defaults to 1
	QuantityUnitID int     // overrides the product's default unit
}

// AddProduct puts a product on a shopping list.
func (s *ShoppingListService) AddProduct(ctx context.Context, productID int, opts AddProductOptions) error {
	if opts.ShoppingListID == 0 {
		opts.ShoppingListID = 1
	}
	if opts.Amount == 0 {
		opts.Amount = 1
	}
	body := map[string]any{
		"product_id":     productID,
		"list_id":        opts.ShoppingListID,
		"product_amount": opts.Amount,
	}
	if opts.QuantityUnitID != 0 {
		body["qu_id"] = opts.QuantityUnitID
	}
	return s.client.post(ctx, "stock/shoppinglist/add-product", body, nil)
}

// RemoveProduct takes the given amount of a product off a shopping list.
func (s *ShoppingListService) RemoveProduct(ctx context.Context, productID, shoppingListID int, amount float64) error {
	body := map[string]any{
		"product_id":     productID,
		"list_id":        shoppingListID,
		"product_amount": amount,
	}
	return s.client.post(ctx, "stock/shoppinglist/remove-product", body, nil)
}

// Clear removes every item from a shopping list.
func (s *ShoppingListService) Clear(ctx context.Context, shoppingListID int) error {
	return s.client.post(ctx, "stock/shoppinglist/clear", map[string]any{"list_id": shoppingListID}, nil)
}

// AddMissingProducts puts all products below their minimum stock amount
// on a shopping list.
func (s *ShoppingListService) AddMissingProducts(ctx context.Context, shoppingListID int) error {
	return s.client.post(ctx, "stock/shoppinglist/add-missing-products", map[string]any{"list_id": shoppingListID}, nil)
}

// AddOverdueProducts puts all overdue products on a shopping list.
func (s *ShoppingListService) AddOverdueProducts(ctx context.Context, shoppingListID int) error {
	return s.client.post(ctx, "stock/shoppinglist/add-overdue-products", map[string]any{"list_id": shoppingListID}, nil)
}

// AddExpiredProducts puts all expired products on a shopping list.
func (s *ShoppingListService) AddExpiredProducts(ctx context.Context, shoppingListID int) error {
	return s.client.post(ctx, "stock/shoppinglist/add-expired-products", map[string]any{"list_id": shoppingListID}, nil)
}

// MarkItem sets the done flag of one shopping list row.
func (s *ShoppingListService) MarkItem(ctx context.Context, itemID int, done bool) error {
	flag := 0
	if done {
		flag = 1
	}
	endpoint := fmt.Sprintf("objects/%s/%d", EntityShoppingList, itemID)
	return s.client.put(ctx, endpoint, map[string]any{"done": flag}, nil)
}
