package core

import (
	"context"
	"path/filepath"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"urdf-locator/internal/types"
)

// ValidateSettings checks an importer settings spec for the fields the
// locator depends on.
func ValidateSettings(ctx context.Context, settings types.Settings) error {
	assert.NotEmpty(ctx, settings.APIVersion, "api_version must be set")
	assert.NotEmpty(ctx, string(settings.Kind), "kind must be set")
	assert.NotEmpty(ctx, settings.Metadata.Name, "metadata.name must be set")
	if settings.Kind != types.SettingsKindImporter {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("settings kind must be importer-settings")
	}
	for _, ext := range settings.MeshExtensions {
		ext = strings.TrimSpace(ext)
		if len(ext) < 2 || !strings.HasPrefix(ext, ".") {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("mesh_extensions entries must start with a dot")
		}
	}
	for _, root := range settings.SearchPaths {
		if !filepath.IsAbs(root) {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("search_paths entries must be absolute")
		}
	}
	if settings.PackageRoot != "" && filepath.IsAbs(settings.PackageRoot) {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package_root must be relative to the asset tree")
	}
	return nil
}
