package rcfile

import (
	"fmt"

	"dario.cat/mergo"

	"github.com/lhci/lhci/pkg/types"
)

// mergeOptions deep-merges overlay on top of base and returns the result.
// Plain maps merge key-by-key; arrays and scalars are replaced wholesale
// by the overlay. Neither input is mutated: base is deep-copied first so
// the merge never writes into a caller's nested maps.
func mergeOptions(base, overlay types.OptionsMap) (types.OptionsMap, error) {
	merged := make(types.OptionsMap, len(base))
	for k, v := range base {
		merged[k] = copyTree(v)
	}
	if err := mergo.Merge(&merged, overlay, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("merging options: %w", err)
	}
	return merged, nil
}

// copyTree returns a deep copy of the maps and slices of v. Scalars are
// shared; they are immutable to this package.
func copyTree(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[k] = copyTree(elem)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = copyTree(elem)
		}
		return out
	default:
		return v
	}
}
