package grocy

import (
	"context"
	"fmt"
)

// RecipeFulfillment reports whether a recipe's ingredients are in stock.
type RecipeFulfillment struct {
	RecipeID                      int
	NeedFulfilled                 bool
	NeedFulfilledWithShoppingList bool
	MissingProductsCount          int
}

func fulfillmentFromResponse(resp RecipeFulfillmentResponse) *RecipeFulfillment {
	return &RecipeFulfillment{
		RecipeID:                      int(resp.RecipeID),
		NeedFulfilled:                 bool(resp.NeedFulfilled),
		NeedFulfilledWithShoppingList: bool(resp.NeedFulfilledWithShoppingList),
		MissingProductsCount:          int(resp.MissingProductsCount),
	}
}

// RecipeService manages recipes and their stock fulfillment.
type RecipeService struct {
	client *Client
}

// Get returns one recipe.
func (s *RecipeService) Get(ctx context.Context, recipeID int) (*RecipeItem, error) {
	var resp RecipeDetailsResponse
	if err := s.client.get(ctx, fmt.Sprintf("objects/%s/%d", EntityRecipes, recipeID), nil, &resp); err != nil {
		return nil, err
	}
	return recipeFromDetails(resp), nil
}

// Consume books all ingredients of a recipe out of stock.
func (s *RecipeService) Consume(ctx context.Context, recipeID int) error {
	return s.client.post(ctx, fmt.Sprintf("recipes/%d/consume", recipeID), nil, nil)
}

// Fulfillment returns the stock fulfillment status of one recipe.
func (s *RecipeService) Fulfillment(ctx context.Context, recipeID int) (*RecipeFulfillment, error) {
	var resp RecipeFulfillmentResponse
	if err := s.client.get(ctx, fmt.Sprintf("recipes/%d/fulfillment", recipeID), nil, &resp); err != nil {
		return nil, err
	}
	return fulfillmentFromResponse(resp), nil
}

// AllFulfillments returns the stock fulfillment status of every recipe.
func (s *RecipeService) AllFulfillments(ctx context.Context) ([]*RecipeFulfillment, error) {
	var raw []RecipeFulfillmentResponse
	if err := s.client.get(ctx, "recipes/fulfillment", nil, &raw); err != nil {
		return nil, err
	}
	fulfillments := make([]*RecipeFulfillment, 0, len(raw))
	for _, resp := range raw {
		fulfillments = append(fulfillments, fulfillmentFromResponse(resp))
	}
	return fulfillments, nil
}

// AddNotFulfilledToShoppingList puts a recipe's missing ingredients on
// the shopping list.
func (s *RecipeService) AddNotFulfilledToShoppingList(ctx context.Context, recipeID int) error {
	endpoint := fmt.Sprintf("recipes/%d/add-not-fulfilled-products-to-shoppinglist", recipeID)
	return s.client.post(ctx, endpoint, map[string]any{}, nil)
}

// Copy duplicates a recipe server-side.
func (s *RecipeService) Copy(ctx context.Context, recipeID int) error {
	return s.client.post(ctx, fmt.Sprintf("recipes/%d/copy", recipeID), map[string]any{}, nil)
}
