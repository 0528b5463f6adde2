package grocy_test

import (
	"context"
	"testing"
	"time"

	"github.com/lu-kno/gogrocy/internal/grocytest"
	"github.com/lu-kno/gogrocy/pkg/grocy"
)

func TestBatteryListHydrated(t *testing.T) {
	srv := grocytest.New(t)
	client := newClient(t, srv)
	srv.Seed("batteries", 1, map[string]any{
		"name":        "Smoke detector",
		"description": "hallway",
		"used_in":     "smoke detector hallway",
	})

	batteries, err := client.Batteries.List(context.Background(), true)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(batteries) != 1 {
		t.Fatalf("List() returned %d batteries, want 1", len(batteries))
	}
	b := batteries[0]
	if b.ID != 1 || b.Name != "Smoke detector" {
		t.Errorf("battery = %d %q, want 1 %q", b.ID, b.Name, "Smoke detector")
	}
}

func TestBatteryCharge(t *testing.T) {
	srv := grocytest.New(t)
	client := newClient(t, srv)
	srv.Seed("batteries", 1, map[string]any{"name": "Smoke detector"})

	ctx := context.Background()
	tracked := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	if err := client.Batteries.Charge(ctx, 1, tracked); err != nil {
		t.Fatalf("Charge() error: %v", err)
	}

	b, err := client.Batteries.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if b.ChargeCyclesCount != 1 {
		t.Errorf("ChargeCyclesCount = %d, want 1", b.ChargeCyclesCount)
	}
}

func TestBatteryChargeUnknown(t *testing.T) {
	srv := grocytest.New(t)
	client := newClient(t, srv)

	err := client.Batteries.Charge(context.Background(), 5, time.Now())
	if !grocy.IsNotFound(err) {
		t.Errorf("Charge() error = %v, want not-found", err)
	}
}
