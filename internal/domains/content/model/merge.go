package model

import "strings"

// Merge folds partial into existing, key by key, without ever blanking a
// previously-set value. The admin form resubmits every field on save, so a
// field the admin left empty arrives as an empty string or list and must be
// treated as "no change", not "clear". Lists replace wholesale when
// non-empty; nested maps merge recursively. Neither input is mutated.
func Merge(existing, partial EventContent) EventContent {
	merged := make(EventContent, len(existing))
	for key, value := range existing {
		merged[key] = value
	}

	for key, value := range partial {
		mergeKey(merged, key, value)
	}

	return merged
}

func mergeKey(target map[string]any, key string, incoming any) {
	switch value := incoming.(type) {
	case nil:
		return
	case string:
		if value == "" {
			return
		}

		target[key] = value
	case []any:
		if listIsBlank(value) {
			return
		}

		target[key] = value
	case []string:
		if stringListIsBlank(value) {
			return
		}

		target[key] = value
	case map[string]any:
		if len(value) == 0 {
			return
		}

		current, ok := target[key].(map[string]any)
		if !ok {
			current = map[string]any{}
		} else {
			copied := make(map[string]any, len(current))
			for k, v := range current {
				copied[k] = v
			}
			current = copied
		}

		for k, v := range value {
			mergeKey(current, k, v)
		}

		target[key] = current
	case EventContent:
		mergeKey(target, key, map[string]any(value))
	default:
		target[key] = value
	}
}

// listIsBlank reports whether the list is empty or holds only blank strings,
// which is what an untouched multi-value form field submits.
func listIsBlank(list []any) bool {
	for _, item := range list {
		str, ok := item.(string)
		if !ok || strings.TrimSpace(str) != "" {
			return false
		}
	}

	return true
}

func stringListIsBlank(list []string) bool {
	for _, item := range list {
		if strings.TrimSpace(item) != "" {
			return false
		}
	}

	return true
}
