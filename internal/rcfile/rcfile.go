package rcfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/lhci/lhci/pkg/types"
)

// rcSectionNames lists the ci sections flattened into the options map, in
// spread order. A later section's keys win at the top level.
var rcSectionNames = []string{"assert", "collect", "upload", "server"}

// LoadRcFile reads and decodes the rc file at path. JSON files are
// JSONC-tolerant: comments and trailing commas are stripped before
// decoding. The .yml/.yaml variants decode through yaml.v3. Key names are
// normalized before the tree is returned. Read and decode failures are
// reported as *ParseError.
func LoadRcFile(path string) (types.RcFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	var tree map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
	default:
		if err := json.Unmarshal(jsonc.ToJSON(data), &tree); err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
	}

	return types.RcFile(normalizeKeys(tree).(map[string]any)), nil
}

// ConvertToOptions flattens the ci sections of rc into a single options
// map. When the file declares ci.extends, the referenced file is resolved
// relative to pathToFile's directory, loaded recursively, and the current
// file's options are deep-merged on top of the inherited base.
func ConvertToOptions(rc types.RcFile, pathToFile string) (types.OptionsMap, error) {
	visited := map[string]bool{}
	if abs, err := filepath.Abs(pathToFile); err == nil {
		visited[abs] = true
	}
	return convertToOptions(rc, pathToFile, visited)
}

// LoadAndParseRcFile loads the rc file at path and flattens it, following
// its extends chain. This is the entry point collaborating packages use
// for a single file. A chain that revisits a file fails with
// ErrCircularExtends.
func LoadAndParseRcFile(path string) (types.OptionsMap, error) {
	return loadAndParse(path, map[string]bool{})
}

// loadAndParse tracks every file visited along the extends chain so a
// self- or mutually-referential configuration fails instead of recursing
// until the stack runs out.
func loadAndParse(path string, visited map[string]bool) (types.OptionsMap, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	if visited[abs] {
		return nil, fmt.Errorf("%w: %s", ErrCircularExtends, path)
	}
	visited[abs] = true

	rc, err := LoadRcFile(path)
	if err != nil {
		return nil, err
	}
	return convertToOptions(rc, path, visited)
}

func convertToOptions(rc types.RcFile, pathToFile string, visited map[string]bool) (types.OptionsMap, error) {
	ci := rc.CI()

	options := types.OptionsMap{}
	for _, section := range rcSectionNames {
		sub, ok := ci[section].(map[string]any)
		if !ok {
			continue
		}
		for k, v := range sub {
			options[k] = v
		}
	}

	extends, ok := ci["extends"].(string)
	if !ok || extends == "" {
		return options, nil
	}

	// The extends reference is relative to the declaring file, not to the
	// working directory.
	basePath := extends
	if !filepath.IsAbs(basePath) {
		basePath = filepath.Join(filepath.Dir(pathToFile), basePath)
	}

	base, err := loadAndParse(basePath, visited)
	if err != nil {
		return nil, err
	}
	return mergeOptions(base, options)
}
