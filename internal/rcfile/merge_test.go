package rcfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lhci/lhci/pkg/types"
)

func TestMergeOptionsOverlayWins(t *testing.T) {
	base := types.OptionsMap{"a": 1, "b": 1}
	overlay := types.OptionsMap{"b": 2, "c": 3}

	merged, err := mergeOptions(base, overlay)
	require.NoError(t, err)

	assert.Equal(t, types.OptionsMap{"a": 1, "b": 2, "c": 3}, merged)
}

func TestMergeOptionsDeepMergesMaps(t *testing.T) {
	base := types.OptionsMap{
		"settings": map[string]any{"preset": "desktop", "locale": "en-US"},
	}
	overlay := types.OptionsMap{
		"settings": map[string]any{"preset": "mobile"},
	}

	merged, err := mergeOptions(base, overlay)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"preset": "mobile",
		"locale": "en-US",
	}, merged["settings"])
}

func TestMergeOptionsReplacesArrays(t *testing.T) {
	base := types.OptionsMap{"url": []any{"a", "b"}}
	overlay := types.OptionsMap{"url": []any{"c"}}

	merged, err := mergeOptions(base, overlay)
	require.NoError(t, err)

	assert.Equal(t, []any{"c"}, merged["url"])
}

func TestMergeOptionsDoesNotMutateInputs(t *testing.T) {
	base := types.OptionsMap{"settings": map[string]any{"preset": "desktop"}}
	overlay := types.OptionsMap{"settings": map[string]any{"preset": "mobile"}}

	_, err := mergeOptions(base, overlay)
	require.NoError(t, err)

	assert.Equal(t, "desktop", base["settings"].(map[string]any)["preset"])
	assert.Equal(t, "mobile", overlay["settings"].(map[string]any)["preset"])
}
