package grocy_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/lu-kno/gogrocy/internal/grocytest"
)

func TestUserList(t *testing.T) {
	srv := grocytest.New(t)
	client := newClient(t, srv)
	srv.Seed("users", 1, map[string]any{
		"username":     "demo",
		"first_name":   "Demo",
		"last_name":    "User",
		"display_name": "Demo User",
	})

	users, err := client.Users.List(context.Background())
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("List() returned %d users, want 1", len(users))
	}
	if users[0].Username != "demo" || users[0].DisplayName != "Demo User" {
		t.Errorf("user = %+v, want demo", users[0])
	}
}

func TestUserCurrent(t *testing.T) {
	srv := grocytest.New(t)
	srv.Router.Get("/user", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": 1, "username": "demo"},
		})
	})
	client := newClient(t, srv)

	user, err := client.Users.Current(context.Background())
	if err != nil {
		t.Fatalf("Current() error: %v", err)
	}
	if user == nil || user.ID != 1 || user.Username != "demo" {
		t.Errorf("Current() = %+v, want user 1 demo", user)
	}
}

func TestUserSettings(t *testing.T) {
	srv := grocytest.New(t)
	settings := map[string]any{"night_mode_enabled": "1"}
	srv.Router.Get("/user/settings", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(settings)
	})
	srv.Router.Get("/user/settings/{key}", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"value": settings["night_mode_enabled"]})
	})
	var putBody map[string]any
	srv.Router.Put("/user/settings/{key}", func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&putBody)
		w.WriteHeader(http.StatusNoContent)
	})
	client := newClient(t, srv)
	ctx := context.Background()

	all, err := client.Users.Settings(ctx)
	if err != nil {
		t.Fatalf("Settings() error: %v", err)
	}
	if all["night_mode_enabled"] != "1" {
		t.Errorf("Settings() = %v", all)
	}

	value, err := client.Users.Setting(ctx, "night_mode_enabled")
	if err != nil {
		t.Fatalf("Setting() error: %v", err)
	}
	if value != "1" {
		t.Errorf("Setting() = %v, want 1", value)
	}

	if err := client.Users.SetSetting(ctx, "night_mode_enabled", "0"); err != nil {
		t.Fatalf("SetSetting() error: %v", err)
	}
	if putBody["value"] != "0" {
		t.Errorf("SetSetting() body = %v, want value 0", putBody)
	}
}
