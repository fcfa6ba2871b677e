package rcfile

import (
	"sort"
	"strings"
)

// The downstream argument parser treats "." as a path separator, so key
// names carry ":" instead.
const (
	reservedSeparator  = "."
	alternateSeparator = ":"
)

// normalizeKeys returns a copy of v where every mapping key has its "."
// characters replaced with ":". The rewrite is deep: map values are
// normalized recursively, and maps found inside slices are normalized too,
// at any depth. Non-container values are returned unchanged.
//
// Keys are visited in sorted order so that a collision between a
// normalized key and an existing one resolves the same way on every run.
func normalizeKeys(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			out[strings.ReplaceAll(k, reservedSeparator, alternateSeparator)] = normalizeKeys(val[k])
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = normalizeKeys(elem)
		}
		return out
	default:
		return v
	}
}
