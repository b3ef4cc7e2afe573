// Package testutil provides shared test helpers used across integration,
// e2e, and unit test packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// RepoRoot returns the absolute path to the repository root by walking
// up from the current working directory. It fails the test if the
// working directory cannot be determined.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}

// WritePackage creates <root>/<name>/package.xml declaring the given
// package name and returns the package directory.
func WritePackage(t *testing.T, root string, name string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	manifest := "<package format=\"3\"><name>" + name + "</name></package>"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.xml"), []byte(manifest), 0644))
	return dir
}
