// SPDX-FileCopyrightText: Copyright 2025 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package gateway

// missingFields returns the required fields that are absent or blank in the
// body, in declaration order. All missing fields are reported, not just the
// first.
func missingFields(body map[string]any, required []string) []string {
	var missing []string
	for _, name := range required {
		if isBlank(body[name]) {
			missing = append(missing, name)
		}
	}
	return missing
}

// isBlank reports whether a decoded JSON value counts as missing. An empty
// string is deliberately treated the same as an absent field: the provider
// rejects blank credentials anyway, so they are stopped here before any
// provider call.
func isBlank(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return !val
	case float64:
		return val == 0
	case []any:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	default:
		return false
	}
}
