package grocy

import (
	"context"
	"fmt"
	"time"
)

// RecipeItem is the domain view of a recipe.
type RecipeItem struct {
	ID              int
	Name            string
	Description     string
	BaseServings    int
	DesiredServings int
	PictureFileName string
	Created         time.Time
	Userfields      map[string]any
}

func recipeFromDetails(resp RecipeDetailsResponse) *RecipeItem {
	return &RecipeItem{
		ID:              int(resp.ID),
		Name:            resp.Name,
		Description:     resp.Description,
		BaseServings:    int(resp.BaseServings),
		DesiredServings: int(resp.DesiredServings),
		PictureFileName: resp.PictureFileName,
		Created:         resp.RowCreatedTimestamp.Time,
		Userfields:      resp.Userfields,
	}
}

// MealPlanSection partitions a day of the meal plan.
type MealPlanSection struct {
	ID         int
	Name       string
	SortNumber int
}

func mealPlanSectionFromResponse(resp MealPlanSectionResponse) *MealPlanSection {
	return &MealPlanSection{
		ID:         int(resp.ID),
		Name:       resp.Name,
		SortNumber: int(resp.SortNumber),
	}
}

// MealPlanItem is the domain view of one meal plan entry: a day plus
// either a recipe reference, a product reference, or a free-text note.
// Recipe and Section are nil until the item is hydrated.
type MealPlanItem struct {
	ID             int
	Day            time.Time
	Type           string
	RecipeID       int
	RecipeServings int
	Note           string
	ProductID      int
	ProductAmount  float64
	SectionID      int
	Recipe         *RecipeItem
	Section        *MealPlanSection
}

func mealPlanItemFromResponse(resp MealPlanResponse) *MealPlanItem {
	return &MealPlanItem{
		ID:             int(resp.ID),
		Day:            resp.Day.Time,
		Type:           resp.Type,
		RecipeID:       int(resp.RecipeID),
		RecipeServings: int(resp.RecipeServings),
		Note:           resp.Note,
		ProductID:      int(resp.ProductID),
		ProductAmount:  float64(resp.ProductAmount),
		SectionID:      int(resp.SectionID),
	}
}

// MealPlanService manages meal plan entries and sections.
type MealPlanService struct {
	client *Client
}

// Items returns all meal plan entries. With getDetails, the referenced
// recipe and section of each entry are fetched; entries without a recipe
// reference (free-text notes) only get their section resolved.
func (s *MealPlanService) Items(ctx context.Context, getDetails bool, filters ...string) ([]*MealPlanItem, error) {
	var raw []MealPlanResponse
	if err := s.client.get(ctx, "objects/"+EntityMealPlan.String(), filters, &raw); err != nil {
		return nil, err
	}
	items := make([]*MealPlanItem, 0, len(raw))
	for _, resp := range raw {
		items = append(items, mealPlanItemFromResponse(resp))
	}
	if getDetails {
		for _, item := range items {
			if item.RecipeID != 0 {
				var recipe RecipeDetailsResponse
				if err := s.client.get(ctx, fmt.Sprintf("objects/%s/%d", EntityRecipes, item.RecipeID), nil, &recipe); err != nil {
					return nil, err
				}
				item.Recipe = recipeFromDetails(recipe)
			}
			if item.SectionID != 0 {
				section, err := s.Section(ctx, item.SectionID)
				if err != nil {
					return nil, err
				}
				item.Section = section
			}
		}
	}
	return items, nil
}

// Sections returns all meal plan sections.
func (s *MealPlanService) Sections(ctx context.Context, filters ...string) ([]*MealPlanSection, error) {
	var raw []MealPlanSectionResponse
	if err := s.client.get(ctx, "objects/"+EntityMealPlanSections.String(), filters, &raw); err != nil {
		return nil, err
	}
	sections := make([]*MealPlanSection, 0, len(raw))
	for _, resp := range raw {
		sections = append(sections, mealPlanSectionFromResponse(resp))
	}
	return sections, nil
}

// Section returns one meal plan section, or nil if the id is unknown.
func (s *MealPlanService) Section(ctx context.Context, sectionID int) (*MealPlanSection, error) {
	filter := fmt.Sprintf("id=%d", sectionID)
	var raw []MealPlanSectionResponse
	if err := s.client.get(ctx, "objects/"+EntityMealPlanSections.String(), []string{filter}, &raw); err != nil {
		return nil, err
	}
	if len(raw) != 1 {
		return nil, nil
	}
	return mealPlanSectionFromResponse(raw[0]), nil
}
