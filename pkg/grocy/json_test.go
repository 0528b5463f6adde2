package grocy

import (
	"encoding/json"
	"testing"
	"time"
)

func TestIntUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Int
		wantErr bool
	}{
		{"number", `12`, 12, false},
		{"numeric string", `"12"`, 12, false},
		{"negative string", `"-3"`, -3, false},
		{"zero", `0`, 0, false},
		{"null", `null`, 0, false},
		{"empty string", `""`, 0, false},
		{"garbage", `"twelve"`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Int
			err := json.Unmarshal([]byte(tt.input), &got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Unmarshal(%s) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFloatUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Float
		wantErr bool
	}{
		{"number", `0.5`, 0.5, false},
		{"numeric string", `"0.33"`, 0.33, false},
		{"integer string", `"5"`, 5, false},
		{"null", `null`, 0, false},
		{"empty string", `""`, 0, false},
		{"garbage", `"much"`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Float
			err := json.Unmarshal([]byte(tt.input), &got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestBoolUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Bool
		wantErr bool
	}{
		{"true", `true`, true, false},
		{"false", `false`, false, false},
		{"one", `1`, true, false},
		{"zero", `0`, false, false},
		{"one string", `"1"`, true, false},
		{"zero string", `"0"`, false, false},
		{"null", `null`, false, false},
		{"empty string", `""`, false, false},
		{"garbage", `"yes"`, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Bool
			err := json.Unmarshal([]byte(tt.input), &got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTimeUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"grocy format", `"2023-05-01 14:30:00"`, time.Date(2023, 5, 1, 14, 30, 0, 0, time.UTC), false},
		{"rfc3339", `"2023-05-01T14:30:00Z"`, time.Date(2023, 5, 1, 14, 30, 0, 0, time.UTC), false},
		{"no zone", `"2023-05-01T14:30:00"`, time.Date(2023, 5, 1, 14, 30, 0, 0, time.UTC), false},
		{"date only", `"2023-05-01"`, time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), false},
		{"null", `null`, time.Time{}, false},
		{"empty string", `""`, time.Time{}, false},
		{"garbage", `"yesterday"`, time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Time
			err := json.Unmarshal([]byte(tt.input), &got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.input, got.Time, tt.want)
			}
		})
	}
}

func TestTimeMarshal(t *testing.T) {
	out, err := json.Marshal(Time{time.Date(2023, 5, 1, 14, 30, 0, 0, time.UTC)})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(out) != `"2023-05-01 14:30:00"` {
		t.Errorf("Marshal() = %s, want %q", out, "2023-05-01 14:30:00")
	}

	out, err = json.Marshal(Time{})
	if err != nil {
		t.Fatalf("Marshal() zero error: %v", err)
	}
	if string(out) != "null" {
		t.Errorf("Marshal() zero = %s, want null", out)
	}
}

func TestDateUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"date", `"2023-05-01"`, time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)},
		{"never expires sentinel", `"2999-12-31"`, time.Date(2999, 12, 31, 0, 0, 0, 0, time.UTC)},
		{"datetime fallback", `"2023-05-01 14:30:00"`, time.Date(2023, 5, 1, 14, 30, 0, 0, time.UTC)},
		{"null", `null`, time.Time{}},
		{"empty string", `""`, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Date
			if err := json.Unmarshal([]byte(tt.input), &got); err != nil {
				t.Fatalf("Unmarshal(%s) error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.input, got.Time, tt.want)
			}
		})
	}
}

func TestDateMarshal(t *testing.T) {
	out, err := json.Marshal(Date{time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(out) != `"2023-05-01"` {
		t.Errorf("Marshal() = %s, want %q", out, "2023-05-01")
	}
}
