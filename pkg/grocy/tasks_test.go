package grocy_test

import (
	"context"
	"testing"
	"time"

	"github.com/lu-kno/gogrocy/internal/grocytest"
)

func TestTaskListAndComplete(t *testing.T) {
	srv := grocytest.New(t)
	client := newClient(t, srv)
	srv.Seed("tasks", 1, map[string]any{
		"name":        "Water plants",
		"description": "",
		"due_date":    "2026-09-05",
		"done":        0,
	})

	ctx := context.Background()
	tasks, err := client.Tasks.List(ctx)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("List() returned %d tasks, want 1", len(tasks))
	}
	task := tasks[0]
	if task.Name != "Water plants" || task.Done {
		t.Errorf("task = %+v, want open task %q", task, "Water plants")
	}
	wantDue := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	if !task.DueDate.Equal(wantDue) {
		t.Errorf("DueDate = %v, want %v", task.DueDate, wantDue)
	}

	done := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	if err := client.Tasks.Complete(ctx, 1, done); err != nil {
		t.Fatalf("Complete() error: %v", err)
	}

	// The open-task listing must no longer include it.
	tasks, err = client.Tasks.List(ctx)
	if err != nil {
		t.Fatalf("List() after complete error: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("List() after complete returned %d tasks, want 0", len(tasks))
	}

	got, err := client.Tasks.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if !got.Done {
		t.Error("Done = false after complete")
	}
	if !got.DoneTimestamp.Equal(done) {
		t.Errorf("DoneTimestamp = %v, want %v", got.DoneTimestamp, done)
	}
}
