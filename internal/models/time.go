package models

import (
	"time"
)

// Timestamps are stored inside document bodies as epoch milliseconds and
// round-trip externally as ISO-8601 strings.

func NowMillis() int64 {
	return time.Now().UnixMilli()
}

func MillisToISO(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(time.RFC3339)
}

// CanonicalTime renders a stored timestamp value to its ISO-8601 string
// form. JSON numbers decode as float64; a string value is assumed to be
// ISO already.
func CanonicalTime(v any) (string, bool) {
	switch t := v.(type) {
	case float64:
		return MillisToISO(int64(t)), true
	case int64:
		return MillisToISO(t), true
	case string:
		return t, true
	default:
		return "", false
	}
}
