package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runLhci(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestConfigCommandExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lighthouserc.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"ci": {"collect": {"numberOfRuns": 3}}}`), 0644))

	out := runLhci(t, "config", "--config", path)

	var options map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &options))
	assert.Equal(t, float64(3), options["numberOfRuns"])
}

func TestConfigCommandOptOutFlag(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lighthouserc.json"),
		[]byte(`{"ci": {"collect": {"numberOfRuns": 3}}}`), 0644))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	out := runLhci(t, "config", "--config", "", "--no-lighthouserc")

	assert.JSONEq(t, `{}`, out)
}

func TestConfigCommandExplicitBeatsOptOut(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rc.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"ci": {"upload": {"target": "lhci"}}}`), 0644))

	out := runLhci(t, "config", "--config", path, "--no-lighthouserc")

	var options map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &options))
	assert.Equal(t, "lhci", options["target"])
}
