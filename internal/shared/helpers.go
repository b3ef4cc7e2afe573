// Package shared provides common path utilities used across multiple
// packages in the urdf-locator codebase.
package shared

import (
	"path/filepath"
	"strings"
)

// NormalizeSlashes converts OS-specific separators to forward slashes.
// Asset-tree paths are slash-delimited regardless of platform.
func NormalizeSlashes(path string) string {
	return strings.ReplaceAll(filepath.ToSlash(path), "\\", "/")
}

// SwapExtension replaces the path's extension with newExt. newExt must
// include the leading dot. A path without an extension is returned
// unchanged.
func SwapExtension(path string, newExt string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return path
	}
	return strings.TrimSuffix(path, ext) + newExt
}

// BaseWithoutExtension returns the final path element with any
// extension removed.
func BaseWithoutExtension(path string) string {
	base := filepath.Base(NormalizeSlashes(path))
	return strings.TrimSuffix(base, filepath.Ext(base))
}
