package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"urdf-locator/internal/core"
)

func (s Service) MaterialPath(ctx context.Context, req MaterialRequest) (MaterialResult, error) {
	if strings.TrimSpace(req.MaterialName) == "" {
		return MaterialResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("material name is required")
	}
	settings, err := s.loadSettings(ctx, req.SettingsPath)
	if err != nil {
		return MaterialResult{}, err
	}
	packageRoot := strings.TrimSpace(req.PackageRoot)
	if packageRoot == "" {
		packageRoot = settings.PackageRoot
	}
	if packageRoot == "" {
		return MaterialResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package root is required")
	}
	assetRoot, err := s.assetRootAbs(req.AssetRoot, settings)
	if err != nil {
		return MaterialResult{}, err
	}

	assetDB := s.AssetDB(assetRoot)
	index := core.NewIndex(s.Workspace, s.Manifest, nil)
	locator := core.NewLocator(index, assetDB)
	if err := locator.SetPackageRoot(filepath.Join(assetRoot, filepath.FromSlash(packageRoot)), false); err != nil {
		return MaterialResult{}, err
	}
	return MaterialResult{Path: locator.MaterialAssetPath(req.MaterialName)}, nil
}
