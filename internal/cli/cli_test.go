package cli

import (
	"bytes"
	"context"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/lu-kno/gogrocy/internal/grocytest"
)

func TestRootCommandWiring(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()

	if root.Use != "gogrocy" {
		t.Errorf("Use = %q, want gogrocy", root.Use)
	}

	want := []string{"stock", "shopping-list", "chores", "tasks", "batteries", "meal-plan", "objects", "system", "completion"}
	have := map[string]bool{}
	for _, cmd := range root.Commands() {
		have[cmd.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("root command is missing subcommand %q", name)
		}
	}
}

// runCommand executes the CLI against a fake server and returns stdout.
func runCommand(t *testing.T, srv *grocytest.Server, args ...string) (string, error) {
	t.Helper()
	base, port := srv.URL()
	root := New(io.Discard, LogInfo).RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append(args,
		"--url", base,
		"--port", strconv.Itoa(port),
		"--api-key", grocytest.APIKey,
	))

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestObjectsListCommand(t *testing.T) {
	srv := grocytest.New(t)
	srv.Seed("locations", 1, map[string]any{"name": "Pantry"})

	out, err := runCommand(t, srv, "objects", "list", "locations")
	if err != nil {
		t.Fatalf("objects list error: %v", err)
	}
	if !strings.Contains(out, "Pantry") {
		t.Errorf("output %q does not contain the seeded object", out)
	}
}

func TestObjectsCreateCommand(t *testing.T) {
	srv := grocytest.New(t)

	out, err := runCommand(t, srv, "objects", "create", "locations", "--data", `{"name":"Cellar"}`)
	if err != nil {
		t.Fatalf("objects create error: %v", err)
	}
	if strings.TrimSpace(out) != "1" {
		t.Errorf("objects create printed %q, want the new id 1", out)
	}
	if srv.Object("locations", 1) == nil {
		t.Error("object was not created on the server")
	}
}

func TestObjectsCreateRejectsBadJSON(t *testing.T) {
	srv := grocytest.New(t)

	_, err := runCommand(t, srv, "objects", "create", "locations", "--data", `{not json`)
	if err == nil {
		t.Error("objects create should reject malformed --data")
	}
}

func TestSystemInfoCommand(t *testing.T) {
	srv := grocytest.New(t)

	out, err := runCommand(t, srv, "system", "info")
	if err != nil {
		t.Fatalf("system info error: %v", err)
	}
	if !strings.Contains(out, "grocy:") || !strings.Contains(out, "php:") {
		t.Errorf("unexpected system info output: %q", out)
	}
}

func TestTasksListCommand(t *testing.T) {
	srv := grocytest.New(t)
	srv.Seed("tasks", 1, map[string]any{
		"name":     "Water plants",
		"due_date": "2026-09-05",
		"done":     0,
	})

	out, err := runCommand(t, srv, "tasks", "list")
	if err != nil {
		t.Fatalf("tasks list error: %v", err)
	}
	if !strings.Contains(out, "NAME") {
		t.Errorf("output %q is missing the table header", out)
	}
	if !strings.Contains(out, "Water plants") || !strings.Contains(out, "2026-09-05") {
		t.Errorf("unexpected tasks list output: %q", out)
	}
}

func TestChoresExecuteCommand(t *testing.T) {
	srv := grocytest.New(t)
	srv.Seed("chores", 1, map[string]any{"name": "Vacuum"})

	out, err := runCommand(t, srv, "chores", "execute", "1")
	if err != nil {
		t.Fatalf("chores execute error: %v", err)
	}
	if srv.Object("chores_log", 1) == nil {
		t.Error("execution was not logged on the server")
	}
	if !strings.Contains(out, "tracked chore 1") {
		t.Errorf("output %q is missing the confirmation line", out)
	}
}

func TestMissingURLFails(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"system", "info", "--config", "/nonexistent/config.toml"})

	if err := root.ExecuteContext(context.Background()); err == nil {
		t.Error("command should fail without any server configuration")
	}
}
