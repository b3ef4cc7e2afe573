package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"urdf-locator/internal/core"
	"urdf-locator/internal/types"
)

const defaultAssetRoot = "Assets"

func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	if len(req.References) == 0 {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one asset reference is required")
	}

	settings, err := s.loadSettings(ctx, req.SettingsPath)
	if err != nil {
		return ResolveResult{}, err
	}

	packageRoot := strings.TrimSpace(req.PackageRoot)
	if packageRoot == "" {
		packageRoot = settings.PackageRoot
	}
	if packageRoot == "" {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package root is required")
	}

	assetRoot, err := s.assetRootAbs(req.AssetRoot, settings)
	if err != nil {
		return ResolveResult{}, err
	}

	assetDB := s.AssetDB(assetRoot)
	index := core.NewIndex(s.Workspace, s.Manifest, s.deriveRoots(req.SearchRoots, settings))
	locator := core.NewLocator(index, assetDB)
	if len(settings.MeshExtensions) > 0 {
		locator.SetMeshExtensions(settings.MeshExtensions)
	}

	// A previous package root means the caller is correcting an earlier
	// misconfiguration: material assets move along with the root.
	if prev := strings.TrimSpace(req.PrevPackageRoot); prev != "" {
		if err := locator.SetPackageRoot(filepath.Join(assetRoot, filepath.FromSlash(prev)), false); err != nil {
			return ResolveResult{}, err
		}
		if err := locator.SetPackageRoot(filepath.Join(assetRoot, filepath.FromSlash(packageRoot)), true); err != nil {
			return ResolveResult{}, err
		}
	} else {
		if err := locator.SetPackageRoot(filepath.Join(assetRoot, filepath.FromSlash(packageRoot)), false); err != nil {
			return ResolveResult{}, err
		}
	}

	result := ResolveResult{PackageRoot: locator.PackageRoot()}
	for _, ref := range req.References {
		asset, err := locator.Resolve(ctx, ref, req.ConvertToPrefab)
		if err != nil {
			return ResolveResult{}, err
		}
		result.References = append(result.References, ResolvedReference{
			Reference: ref,
			Asset:     asset,
		})
	}
	return result, nil
}

func (s Service) loadSettings(ctx context.Context, path string) (types.Settings, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return types.Settings{}, nil
	}
	settings, err := s.Settings.Load(path)
	if err != nil {
		return types.Settings{}, err
	}
	if err := core.ValidateSettings(ctx, settings); err != nil {
		return types.Settings{}, err
	}
	return settings, nil
}

func (s Service) assetRootAbs(requested string, settings types.Settings) (string, error) {
	root := strings.TrimSpace(requested)
	if root == "" {
		root = settings.AssetRoot
	}
	if root == "" {
		root = defaultAssetRoot
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to resolve asset root").
			WithCause(err)
	}
	return abs, nil
}

// deriveRoots prefers an explicit request override, then prepends any
// settings-supplied workspaces to the environment-derived roots so
// project workspaces shadow system installs.
func (s Service) deriveRoots(requested []string, settings types.Settings) []string {
	if len(requested) > 0 {
		return requested
	}
	roots := append([]string(nil), settings.SearchPaths...)
	return append(roots, s.SearchPaths.Roots()...)
}
