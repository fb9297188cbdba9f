// Where: cli/internal/domain/value/value.go
// What: Value conversion helpers for loosely typed feed data.
// Why: Keep parsing logic concise without infrastructure dependencies.
package value

import (
	"fmt"
	"strings"
)

// AsMap converts a value to map form when possible.
func AsMap(value any) map[string]any {
	if value == nil {
		return nil
	}
	if m, ok := value.(map[string]any); ok {
		return m
	}
	return nil
}

// AsSlice returns the value as a slice, or nil when it is not one.
// Scalars are not wrapped: feed arrays are either arrays or absent.
func AsSlice(value any) []any {
	if v, ok := value.([]any); ok {
		return v
	}
	return nil
}

// AsString returns the string representation of a value.
func AsString(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

// AsStringDefault returns a string representation or the fallback.
func AsStringDefault(value any, fallback string) string {
	if out := AsString(value); out != "" {
		return out
	}
	return fallback
}

// AsBool reports whether value is the boolean true.
func AsBool(value any) bool {
	b, ok := value.(bool)
	return ok && b
}

// IsTruthy mirrors JSON truthiness: nil, false, 0 and "" are falsy.
func IsTruthy(value any) bool {
	switch typed := value.(type) {
	case nil:
		return false
	case bool:
		return typed
	case string:
		return typed != ""
	case float64:
		return typed != 0
	case int:
		return typed != 0
	case int64:
		return typed != 0
	}
	return true
}

// HasPrefixFold reports whether s begins with prefix, ignoring case.
func HasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// HasSuffixFold reports whether s ends with suffix, ignoring case.
func HasSuffixFold(s, suffix string) bool {
	return len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix)
}

// CopyMap returns a shallow copy of a string-keyed map.
func CopyMap[V any](src map[string]V) map[string]V {
	if src == nil {
		return nil
	}
	out := make(map[string]V, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
