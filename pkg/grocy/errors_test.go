package grocy

import (
	"fmt"
	"testing"
)

func TestNewError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{"grocy body", 400, `{"error_message":"amount must be > 0"}`, "amount must be > 0"},
		{"empty body", 404, ``, "Not Found"},
		{"non-json body", 503, `<html>gateway error</html>`, "Service Unavailable"},
		{"json without message", 500, `{}`, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newError(tt.status, []byte(tt.body))
			if err.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", err.StatusCode, tt.status)
			}
			if err.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMessage)
			}
		})
	}
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		status     int
		wantClient bool
		wantServer bool
	}{
		{400, true, false},
		{404, true, false},
		{499, true, false},
		{500, false, true},
		{503, false, true},
	}

	for _, tt := range tests {
		err := &Error{StatusCode: tt.status}
		if got := err.IsClientError(); got != tt.wantClient {
			t.Errorf("IsClientError() for %d = %v, want %v", tt.status, got, tt.wantClient)
		}
		if got := err.IsServerError(); got != tt.wantServer {
			t.Errorf("IsServerError() for %d = %v, want %v", tt.status, got, tt.wantServer)
		}
	}
}

func TestAsErrorWrapped(t *testing.T) {
	inner := &Error{StatusCode: 404, Message: "object not found"}
	wrapped := fmt.Errorf("load product: %w", inner)

	got, ok := AsError(wrapped)
	if !ok {
		t.Fatal("AsError() did not find the API error in the chain")
	}
	if got.StatusCode != 404 {
		t.Errorf("StatusCode = %d, want 404", got.StatusCode)
	}

	if _, ok := AsError(fmt.Errorf("plain")); ok {
		t.Error("AsError() matched a non-API error")
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(&Error{StatusCode: 404}) {
		t.Error("IsNotFound() = false for 404")
	}
	if IsNotFound(&Error{StatusCode: 400}) {
		t.Error("IsNotFound() = true for 400")
	}
	if IsNotFound(fmt.Errorf("network down")) {
		t.Error("IsNotFound() = true for a transport error")
	}
}

func TestErrorString(t *testing.T) {
	err := &Error{StatusCode: 400, Message: "amount must be > 0"}
	want := "grocy: amount must be > 0 (status 400)"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
