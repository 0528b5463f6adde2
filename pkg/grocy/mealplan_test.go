package grocy_test

import (
	"context"
	"testing"
	"time"

	"github.com/lu-kno/gogrocy/internal/grocytest"
)

func TestMealPlanItemsHydrated(t *testing.T) {
	srv := grocytest.New(t)
	client := newClient(t, srv)
	srv.Seed("recipes", 4, map[string]any{
		"name":             "Lasagna",
		"description":      "",
		"base_servings":    4,
		"desired_servings": 4,
	})
	srv.Seed("meal_plan_sections", 2, map[string]any{
		"name":        "Dinner",
		"sort_number": 20,
	})
	srv.Seed("meal_plan", 1, map[string]any{
		"day":             "2026-09-01",
		"type":            "recipe",
		"recipe_id":       4,
		"recipe_servings": 2,
		"section_id":      2,
	})
	srv.Seed("meal_plan", 2, map[string]any{
		"day":        "2026-09-01",
		"type":       "note",
		"note":       "leftovers",
		"section_id": 2,
	})

	items, err := client.MealPlan.Items(context.Background(), true)
	if err != nil {
		t.Fatalf("Items() error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Items() returned %d entries, want 2", len(items))
	}

	recipe := items[0]
	if !recipe.Day.Equal(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Day = %v, want 2026-09-01", recipe.Day)
	}
	if recipe.Recipe == nil || recipe.Recipe.Name != "Lasagna" {
		t.Errorf("Recipe = %+v, want Lasagna", recipe.Recipe)
	}
	if recipe.RecipeServings != 2 {
		t.Errorf("RecipeServings = %d, want 2", recipe.RecipeServings)
	}
	if recipe.Section == nil || recipe.Section.Name != "Dinner" {
		t.Errorf("Section = %+v, want Dinner", recipe.Section)
	}

	note := items[1]
	if note.Recipe != nil {
		t.Errorf("note entry resolved a recipe: %+v", note.Recipe)
	}
	if note.Note != "leftovers" {
		t.Errorf("Note = %q, want leftovers", note.Note)
	}
	if note.Section == nil || note.Section.ID != 2 {
		t.Errorf("note Section = %+v, want section 2", note.Section)
	}
}

func TestMealPlanSectionLookup(t *testing.T) {
	srv := grocytest.New(t)
	client := newClient(t, srv)
	srv.Seed("meal_plan_sections", 1, map[string]any{"name": "Breakfast", "sort_number": 10})
	srv.Seed("meal_plan_sections", 2, map[string]any{"name": "Dinner", "sort_number": 20})

	ctx := context.Background()
	section, err := client.MealPlan.Section(ctx, 2)
	if err != nil {
		t.Fatalf("Section() error: %v", err)
	}
	if section == nil || section.Name != "Dinner" {
		t.Fatalf("Section(2) = %+v, want Dinner", section)
	}

	missing, err := client.MealPlan.Section(ctx, 9)
	if err != nil {
		t.Fatalf("Section() unknown id error: %v", err)
	}
	if missing != nil {
		t.Errorf("Section(9) = %+v, want nil", missing)
	}
}
