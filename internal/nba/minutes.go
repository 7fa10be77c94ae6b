package nba

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// minuteKind classifies the heterogeneous "min" field before any parsing
// happens, instead of sniffing types mid-parse.
type minuteKind int

const (
	minAbsent minuteKind = iota // missing, null, or empty string
	minNumber                   // bare JSON number
	minText                     // quoted integer, e.g. "34"
	minClock                    // quoted clock string, e.g. "34:21"
	minOther                    // any other shape
)

// HasMinutes reports whether a raw min value is present at all.
// A stat line with no minutes field is not a game appearance.
func HasMinutes(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && !bytes.Equal(raw, []byte("null"))
}

// classifyMinutes tags the raw value and, for the textual kinds, returns
// the unquoted string.
func classifyMinutes(raw json.RawMessage) (minuteKind, string) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return minAbsent, ""
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return minOther, ""
		}
		switch {
		case s == "":
			return minAbsent, ""
		case strings.Contains(s, ":"):
			return minClock, s
		default:
			return minText, s
		}
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		return minOther, ""
	}
	return minNumber, string(raw)
}

// ParseMinutes normalizes a raw minutes value to fractional minutes.
// "34:30" -> 34.5, "34" -> 34, 34.5 -> 34.5. Absent, null, empty, or
// unparseable values all come back as 0; the function never fails.
func ParseMinutes(raw json.RawMessage) float64 {
	kind, s := classifyMinutes(raw)
	switch kind {
	case minNumber:
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return n
	case minText:
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0
		}
		return float64(n)
	case minClock:
		left, right, _ := strings.Cut(s, ":")
		mins, err := strconv.Atoi(left)
		if err != nil {
			return 0
		}
		secs, err := strconv.Atoi(right)
		if err != nil {
			return 0
		}
		return float64(mins) + float64(secs)/60
	default:
		return 0
	}
}
