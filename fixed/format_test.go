package fixed

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
)

// TestString verifies shortest round-trip formatting
func TestString(t *testing.T) {
	tests := []struct {
		in   Q64
		want string
	}{
		{Zero, "0"},
		{One, "1"},
		{NegHalf, "-0.5"},
		{Eps, "0.00000001"},
		{Min, "-2147483648"},
		{FromInt(-42), "-42"},
		{Scale >> 2, "0.25"},
	}

	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}

// TestStringRoundTrip verifies Parse(String(x)) == x across the range
func TestStringRoundTrip(t *testing.T) {
	values := []Q64{Pi, NegPi, E, Delta, NegDelta, Max, Min, Sqrt2, One.Div(FromInt(3))}
	for _, v := range values {
		back, err := Parse(v.String())
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", v.String(), err)
		}
		if back != v {
			t.Errorf("Round trip of %d via %q gave %d", v, v.String(), back)
		}
	}
}

// TestParse verifies rounding and error reporting
func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Q64
	}{
		{"1e-8", Eps},
		{"-2.5", FromInt(-5).DivInt(2)},
		{"0.1", 429496730},
		{" 3 ", FromInt(3)},
		{"-2147483648", Min},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q): expected %d, got %d", tt.in, tt.want, got)
		}
	}

	if _, err := Parse("abc"); !errors.Is(err, ErrSyntax) {
		t.Errorf("Expected ErrSyntax, got %v", err)
	}
	if _, err := Parse("2147483648"); !errors.Is(err, ErrRange) {
		t.Errorf("Expected ErrRange, got %v", err)
	}
	if _, err := Parse("inf"); !errors.Is(err, ErrRange) {
		t.Errorf("Expected ErrRange for inf, got %v", err)
	}
}

// TestTextMarshal verifies Q64 survives JSON encoding as a string
func TestTextMarshal(t *testing.T) {
	type wrapper struct {
		Angle Q64 `json:"angle"`
	}

	data, err := json.Marshal(wrapper{Angle: Half})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"angle":"0.5"}` {
		t.Errorf("Expected {\"angle\":\"0.5\"}, got %s", data)
	}

	var w wrapper
	if err := json.Unmarshal([]byte(`{"angle":"3.1415926537"}`), &w); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if w.Angle != Pi {
		t.Errorf("Expected Pi, got %v", w.Angle)
	}
}
