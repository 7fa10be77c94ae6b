package nba

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"
)

func TestParseMinutesShapes(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want float64
	}{
		{"clock string", `"34:30"`, 34.5},
		{"clock string zero", `"0:00"`, 0},
		{"clock string seconds only", `"0:45"`, 0.75},
		{"integer string", `"35"`, 35},
		{"bare number", `28.5`, 28.5},
		{"bare integer", `31`, 31},
		{"null", `null`, 0},
		{"absent", ``, 0},
		{"empty string", `""`, 0},
		{"non-numeric text", `"DNP"`, 0},
		{"bad clock minutes", `"x:30"`, 0},
		{"bad clock seconds", `"12:xx"`, 0},
		{"double clock", `"12:30:45"`, 0},
		{"object", `{"minutes":12}`, 0},
		{"array", `[12]`, 0},
		{"bool", `true`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseMinutes(json.RawMessage(tc.raw))
			if math.Abs(got-tc.want) > 1e-12 {
				t.Fatalf("ParseMinutes(%s) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestParseMinutesClockProperty(t *testing.T) {
	for m := 0; m <= 48; m += 7 {
		for s := 0; s < 60; s += 11 {
			raw := json.RawMessage(fmt.Sprintf(`"%d:%02d"`, m, s))
			want := float64(m) + float64(s)/60
			if got := ParseMinutes(raw); math.Abs(got-want) > 1e-12 {
				t.Fatalf("ParseMinutes(%s) = %v, want %v", raw, got, want)
			}
		}
	}
}

func TestHasMinutes(t *testing.T) {
	if HasMinutes(nil) {
		t.Fatal("nil raw value should not count as present")
	}
	if HasMinutes(json.RawMessage(`null`)) {
		t.Fatal("null should not count as present")
	}
	if !HasMinutes(json.RawMessage(`""`)) {
		t.Fatal("empty string is present (it parses to 0 but was sent)")
	}
	if !HasMinutes(json.RawMessage(`"12:00"`)) {
		t.Fatal("clock string should count as present")
	}
}
