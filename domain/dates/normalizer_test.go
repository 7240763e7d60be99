package dates

import (
	"testing"
	"time"
)

func TestNormalizeCell(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty cell", input: "", expected: ""},
		{name: "whitespace only", input: "   ", expected: ""},
		{name: "ISO date reorders fields", input: "2025-01-31", expected: "31/01/2025"},
		{name: "ISO date without zero padding keeps fields", input: "2025-1-5", expected: "5/1/2025"},
		{name: "display format passes through", input: "31/01/2025", expected: "31/01/2025"},
		{name: "serial number converts from epoch", input: "45688", expected: "31/01/2025"},
		{name: "serial number next day", input: "45689", expected: "01/02/2025"},
		{name: "arbitrary text passes through", input: "janeiro", expected: "janeiro"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeCell(tt.input)
			if got != tt.expected {
				t.Errorf("NormalizeCell(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalize_NativeDate(t *testing.T) {
	d := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)
	if got := Normalize(d); got != "31/01/2025" {
		t.Errorf("Normalize(time.Time) = %q, want 31/01/2025", got)
	}
}

func TestNormalize_NumericSerial(t *testing.T) {
	if got := Normalize(float64(45688)); got != "31/01/2025" {
		t.Errorf("Normalize(45688.0) = %q, want 31/01/2025", got)
	}
	if got := Normalize(45688); got != "31/01/2025" {
		t.Errorf("Normalize(45688) = %q, want 31/01/2025", got)
	}
}

func TestNormalize_Nil(t *testing.T) {
	if got := Normalize(nil); got != "" {
		t.Errorf("Normalize(nil) = %q, want empty string", got)
	}
}

func TestFromSerial_EpochReference(t *testing.T) {
	// Serial 25569 is exactly the Unix epoch.
	if got := FromSerial(25569); got != "01/01/1970" {
		t.Errorf("FromSerial(25569) = %q, want 01/01/1970", got)
	}
}
