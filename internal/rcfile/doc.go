// Package rcfile resolves and loads a project's lighthouserc file.
//
// The package's responsibility ends at producing a flat options mapping:
// it locates an rc file, decodes it, normalizes key names, flattens the ci
// sections, and follows a single-level extends chain. It never validates
// option values and never executes any CI behavior.
//
// # File Discovery
//
// FindRcFile checks each recognized file name in a directory, in
// preference order:
//
//	lighthouserc.json
//	.lighthouserc.json  (legacy)
//	lighthouserc.yml
//	lighthouserc.yaml
//
// In recursive mode the search walks parent directories until a file is
// found or the filesystem root is reached. ResolveRcFilePath wraps the
// search with the opt-out signals: an explicit path always wins, and
// auto-detection is skipped entirely when LHCI_NO_LIGHTHOUSERC is set or
// an argument matches --no-lighthouserc / --nolighthouserc.
//
// # Formats
//
// JSON files are JSONC-tolerant: comments and trailing commas are stripped
// with tidwall/jsonc before decoding. The .yml/.yaml variants decode
// through yaml.v3 into the same generic tree.
//
// # Key Normalization
//
// Every mapping key has "." replaced with ":" before the tree is handed
// out, so that option names never collide with the dot notation of the
// downstream argument parser. The rewrite is deep and follows object
// values into arrays.
//
// # Flattening and Inheritance
//
// ConvertToOptions spreads ci.assert, ci.collect, ci.upload and ci.server
// left-to-right into one flat map. When ci.extends names a base file, the
// reference is resolved against the directory of the file that declares
// it, the base is loaded recursively, and the current file's options are
// deep-merged on top: plain maps merge key-by-key, arrays and scalars are
// replaced wholesale by the extending file. A chain that revisits a file
// fails with ErrCircularExtends instead of recursing forever.
//
// # Determinism
//
// Files are read fresh on every call and nothing is cached. The working
// directory, argument list, and environment are explicit parameters, with
// process defaults applied only at the CLI boundary.
package rcfile
