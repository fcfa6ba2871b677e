package rcfile

import (
	"os"
	"path/filepath"
)

// rcFileNames lists the recognized rc file names in preference order. The
// dotted name is kept for projects that predate the undotted convention;
// the YAML variants decode through the same loader.
var rcFileNames = []string{
	"lighthouserc.json",
	".lighthouserc.json",
	"lighthouserc.yml",
	"lighthouserc.yaml",
}

// findInDirectory returns the first recognized rc file present in dir.
func findInDirectory(dir string) (string, bool) {
	for _, name := range rcFileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// FindRcFile locates an rc file starting from startDir. An empty startDir
// means the process working directory. When recursive is true the search
// walks parent directories until a file is found or the filesystem root is
// reached; the root is detected by its parent resolving to itself.
func FindRcFile(startDir string, recursive bool) (string, bool) {
	dir := startDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", false
		}
		dir = wd
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	for {
		if path, ok := findInDirectory(dir); ok {
			return path, true
		}
		if !recursive {
			return "", false
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
