package grocy_test

import (
	"context"
	"testing"
	"time"

	"github.com/lu-kno/gogrocy/internal/grocytest"
	"github.com/lu-kno/gogrocy/pkg/grocy"
)

func seedChore(srv *grocytest.Server, id int, name string) {
	srv.Seed("chores", id, map[string]any{
		"name":            name,
		"description":     "",
		"period_type":     "manually",
		"period_config":   "",
		"period_days":     0,
		"track_date_only": 0,
		"rollover":        0,
		"assignment_type": "no-assignment",
	})
}

func TestChoreList(t *testing.T) {
	srv := grocytest.New(t)
	client := newClient(t, srv)
	seedChore(srv, 1, "Vacuum")

	chores, err := client.Chores.List(context.Background(), false)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(chores) != 1 || chores[0].ID != 1 {
		t.Fatalf("List() = %+v, want one chore with id 1", chores)
	}
	// The summary listing carries no entity fields.
	if chores[0].Name != "" {
		t.Errorf("Name = %q before hydration, want empty", chores[0].Name)
	}
}

func TestChoreListHydrated(t *testing.T) {
	srv := grocytest.New(t)
	client := newClient(t, srv)
	seedChore(srv, 1, "Vacuum")
	seedChore(srv, 2, "Dishes")

	chores, err := client.Chores.List(context.Background(), true)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(chores) != 2 {
		t.Fatalf("List() returned %d chores, want 2", len(chores))
	}
	names := map[int]string{1: "Vacuum", 2: "Dishes"}
	for _, chore := range chores {
		if chore.Name != names[chore.ID] {
			t.Errorf("chore %d name = %q, want %q", chore.ID, chore.Name, names[chore.ID])
		}
	}
}

func TestChoreExecuteAndGet(t *testing.T) {
	srv := grocytest.New(t)
	client := newClient(t, srv)
	seedChore(srv, 1, "Vacuum")

	ctx := context.Background()
	tracked := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	if err := client.Chores.Execute(ctx, 1, grocy.ExecuteOptions{TrackedTime: tracked}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	chore, err := client.Chores.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if chore.Name != "Vacuum" {
		t.Errorf("Name = %q, want Vacuum", chore.Name)
	}
	if chore.TrackCount != 1 {
		t.Errorf("TrackCount = %d, want 1", chore.TrackCount)
	}
}

func TestChoreRepeatedExecutionsReportLatest(t *testing.T) {
	srv := grocytest.New(t)
	client := newClient(t, srv)
	seedChore(srv, 1, "Vacuum")

	ctx := context.Background()
	first := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	second := time.Date(2026, 8, 15, 9, 0, 0, 0, time.UTC)
	for _, tracked := range []time.Time{first, second} {
		if err := client.Chores.Execute(ctx, 1, grocy.ExecuteOptions{TrackedTime: tracked}); err != nil {
			t.Fatalf("Execute(%v) error: %v", tracked, err)
		}
	}

	chore, err := client.Chores.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if !chore.LastTrackedTime.Equal(second) {
		t.Errorf("LastTrackedTime = %v, want %v", chore.LastTrackedTime, second)
	}
}

func TestChoreExecuteUnknown(t *testing.T) {
	srv := grocytest.New(t)
	client := newClient(t, srv)

	err := client.Chores.Execute(context.Background(), 9, grocy.ExecuteOptions{})
	if !grocy.IsNotFound(err) {
		t.Errorf("Execute() error = %v, want not-found", err)
	}
}

func TestChoreLogList(t *testing.T) {
	srv := grocytest.New(t)
	client := newClient(t, srv)
	seedChore(srv, 1, "Vacuum")

	ctx := context.Background()
	tracked := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	if err := client.Chores.Execute(ctx, 1, grocy.ExecuteOptions{TrackedTime: tracked, Skipped: true}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	entries, err := client.ChoreLog.List(ctx)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("List() returned %d entries, want 1", len(entries))
	}
	entry := entries[0]
	if entry.ChoreID != 1 {
		t.Errorf("ChoreID = %d, want 1", entry.ChoreID)
	}
	if !entry.TrackedTime.Equal(tracked) {
		t.Errorf("TrackedTime = %v, want %v", entry.TrackedTime, tracked)
	}
	if !entry.Skipped {
		t.Error("Skipped = false, want true")
	}
}
