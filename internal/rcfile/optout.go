package rcfile

import (
	"os"
	"regexp"
	"strings"

	"github.com/caarlos0/env/v11"
)

// optOutPattern matches the argument form of the opt-out signal, with an
// optional hyphen between "no" and "lighthouserc".
var optOutPattern = regexp.MustCompile(`(?i)^--no-?lighthouserc$`)

// detectionEnv carries the environment signals relevant to rc detection.
type detectionEnv struct {
	NoLighthouseRc string `env:"LHCI_NO_LIGHTHOUSERC"`
}

// HasOptedOutOfRcDetection reports whether rc auto-detection is disabled,
// either by LHCI_NO_LIGHTHOUSERC being set to a non-empty value in environ
// or by an argument matching --no-lighthouserc or --nolighthouserc,
// case-insensitively. A nil environ falls back to the process environment;
// tests pass an explicit map. Pure predicate, no side effects.
func HasOptedOutOfRcDetection(args []string, environ map[string]string) bool {
	var cfg detectionEnv
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err == nil && cfg.NoLighthouseRc != "" {
		return true
	}
	for _, arg := range args {
		if optOutPattern.MatchString(arg) {
			return true
		}
	}
	return false
}

// ResolveRcFilePath decides which rc file, if any, the caller should load.
// An explicit path is returned unchanged without touching the filesystem.
// Otherwise a recursive search runs from cwd, unless the caller has opted
// out of detection, in which case no path is returned at all.
func ResolveRcFilePath(explicitPath, cwd string, args []string, environ map[string]string) (string, bool) {
	if explicitPath != "" {
		return explicitPath, true
	}
	if HasOptedOutOfRcDetection(args, environ) {
		return "", false
	}
	return FindRcFile(cwd, true)
}

// ProcessEnviron converts os.Environ-style "KEY=value" pairs into the map
// form the resolver consumes.
func ProcessEnviron() map[string]string {
	environ := make(map[string]string)
	for _, kv := range os.Environ() {
		if i := strings.IndexByte(kv, '='); i > 0 {
			environ[kv[:i]] = kv[i+1:]
		}
	}
	return environ
}
