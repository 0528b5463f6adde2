package grocy_test

import (
	"context"
	"testing"

	"github.com/lu-kno/gogrocy/internal/grocytest"
	"github.com/lu-kno/gogrocy/pkg/grocy"
)

func TestGenericCRUD(t *testing.T) {
	srv := grocytest.New(t)
	client := newClient(t, srv)
	ctx := context.Background()

	id, err := client.Generic.Create(ctx, grocy.EntityLocations, grocy.Object{
		"name":        "Pantry",
		"description": "downstairs",
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if id != 1 {
		t.Errorf("Create() id = %d, want 1", id)
	}

	obj, err := client.Generic.Get(ctx, grocy.EntityLocations, id)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if obj["name"] != "Pantry" {
		t.Errorf("Get() name = %v, want Pantry", obj["name"])
	}

	// Update sends only the changed fields; others must survive.
	if err := client.Generic.Update(ctx, grocy.EntityLocations, id, grocy.Object{"name": "Cellar"}); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	obj, err = client.Generic.Get(ctx, grocy.EntityLocations, id)
	if err != nil {
		t.Fatalf("Get() after update error: %v", err)
	}
	if obj["name"] != "Cellar" {
		t.Errorf("name after update = %v, want Cellar", obj["name"])
	}
	if obj["description"] != "downstairs" {
		t.Errorf("description after partial update = %v, want downstairs", obj["description"])
	}

	if err := client.Generic.Delete(ctx, grocy.EntityLocations, id); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := client.Generic.Get(ctx, grocy.EntityLocations, id); !grocy.IsNotFound(err) {
		t.Errorf("Get() after delete error = %v, want not-found", err)
	}
	if err := client.Generic.Delete(ctx, grocy.EntityLocations, id); !grocy.IsNotFound(err) {
		t.Errorf("Delete() twice error = %v, want not-found", err)
	}
}

func TestGenericCreateAssignsSequentialIDs(t *testing.T) {
	srv := grocytest.New(t)
	client := newClient(t, srv)
	ctx := context.Background()

	first, err := client.Generic.Create(ctx, grocy.EntityLocations, grocy.Object{"name": "A"})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	second, err := client.Generic.Create(ctx, grocy.EntityLocations, grocy.Object{"name": "B"})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if second != first+1 {
		t.Errorf("ids = %d, %d, want sequential", first, second)
	}
}

func TestGenericListWithFilters(t *testing.T) {
	srv := grocytest.New(t)
	client := newClient(t, srv)
	srv.Seed("locations", 1, map[string]any{"name": "Pantry"})
	srv.Seed("locations", 2, map[string]any{"name": "Fridge"})

	ctx := context.Background()
	all, err := client.Generic.List(ctx, grocy.EntityLocations)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("List() returned %d objects, want 2", len(all))
	}

	filtered, err := client.Generic.List(ctx, grocy.EntityLocations, "name=Fridge")
	if err != nil {
		t.Fatalf("List() with filter error: %v", err)
	}
	if len(filtered) != 1 || filtered[0]["name"] != "Fridge" {
		t.Errorf("filtered List() = %+v, want only Fridge", filtered)
	}
}

func TestGenericUnauthorized(t *testing.T) {
	srv := grocytest.New(t)
	base, port := srv.URL()
	client, err := grocy.New(grocy.Config{URL: base, Port: port, APIKey: "wrong"})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	_, listErr := client.Generic.List(context.Background(), grocy.EntityLocations)
	apiErr, ok := grocy.AsError(listErr)
	if !ok {
		t.Fatalf("List() error = %v, want API error", listErr)
	}
	if apiErr.StatusCode != 401 {
		t.Errorf("status = %d, want 401", apiErr.StatusCode)
	}
}
