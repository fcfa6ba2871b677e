// Package types contains the shared data types exchanged between the rc
// file subsystem and the rest of the CLI.
package types

// RcFile is the parsed on-disk representation of a lighthouserc file: an
// arbitrary key tree with an optional "ci" sub-object holding the
// assert/collect/upload/server sections and an optional extends reference.
// Keys are already normalized by the time an RcFile is handed out.
type RcFile map[string]any

// CI returns the "ci" sub-object, or an empty map when it is absent or not
// an object.
func (r RcFile) CI() map[string]any {
	ci, ok := r["ci"].(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return ci
}

// OptionsMap is the flat mapping of normalized option names to values
// produced by flattening an rc file together with its extends chain.
type OptionsMap map[string]any
