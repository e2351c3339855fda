package commerce

import (
	"encoding/json"
	"strconv"
)

// Field readers over decoded JSON maps. The platform is loose about key
// names across API versions, so every reader takes the variants in
// priority order.

func pickField(m map[string]any, keys ...string) any {
	if m == nil {
		return nil
	}
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func stringField(m map[string]any, keys ...string) string {
	switch v := pickField(m, keys...).(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

func intField(m map[string]any, keys ...string) int {
	switch v := pickField(m, keys...).(type) {
	case float64:
		return int(v)
	case int:
		return v
	case json.Number:
		n, _ := v.Int64()
		return int(n)
	case string:
		n, _ := strconv.Atoi(v)
		return n
	default:
		return 0
	}
}

func listField(m map[string]any, keys ...string) []any {
	if list, ok := pickField(m, keys...).([]any); ok {
		return list
	}
	return nil
}
