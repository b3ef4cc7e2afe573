package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceValidateSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api_version: v1
kind: importer-settings
metadata:
  name: ur5-import
package_root: Robots/ur5
`), 0644))

	service := NewService()
	result, err := service.Validate(t.Context(), ValidateRequest{SettingsPath: path})
	require.NoError(t, err)
	assert.Equal(t, "ur5-import", result.Name)
}

func TestServiceValidateRejectsBadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api_version: v1
kind: importer-settings
metadata:
  name: bad
search_paths:
  - relative/path
`), 0644))

	service := NewService()
	_, err := service.Validate(t.Context(), ValidateRequest{SettingsPath: path})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestServiceValidateRequiresPath(t *testing.T) {
	service := NewService()
	_, err := service.Validate(t.Context(), ValidateRequest{})
	require.Error(t, err)
}

func TestServiceMaterialPath(t *testing.T) {
	service := NewService()
	result, err := service.MaterialPath(t.Context(), MaterialRequest{
		MaterialName: "foo/bar/baz.png",
		AssetRoot:    t.TempDir(),
		PackageRoot:  "Robots/ur5",
	})
	require.NoError(t, err)
	assert.Equal(t, "Robots/ur5/Materials/baz.mat", result.Path)
}

func TestServiceMaterialPathRequiresName(t *testing.T) {
	service := NewService()
	_, err := service.MaterialPath(t.Context(), MaterialRequest{
		AssetRoot:   t.TempDir(),
		PackageRoot: "Robots/ur5",
	})
	require.Error(t, err)
}

func TestServiceRootsUsesSettings(t *testing.T) {
	workspace := t.TempDir()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api_version: v1
kind: importer-settings
metadata:
  name: ur5-import
search_paths:
  - `+workspace+`
`), 0644))

	service := NewService()
	result, err := service.Roots(t.Context(), RootsRequest{SettingsPath: path})
	require.NoError(t, err)
	require.NotEmpty(t, result.Roots)
	assert.Equal(t, workspace, result.Roots[0])
}
