package core

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"urdf-locator/internal/ports"
	"urdf-locator/internal/shared"
	"urdf-locator/internal/types"
)

const (
	schemePackage = "package://"
	schemeFile    = "file://"

	materialsFolder = "Materials"
	materialExt     = ".mat"
	prefabExt       = ".prefab"
)

var defaultMeshExtensions = []string{".stl"}

// Locator resolves URI-like asset references and manages the package
// root inside the asset tree. It owns all resolution state; callers
// construct one per import operation.
type Locator struct {
	Index  *Index
	Assets ports.AssetDatabasePort

	packageRoot string
	meshExts    map[string]struct{}
}

func NewLocator(index *Index, assets ports.AssetDatabasePort) *Locator {
	locator := &Locator{
		Index:    index,
		Assets:   assets,
		meshExts: map[string]struct{}{},
	}
	locator.SetMeshExtensions(defaultMeshExtensions)
	return locator
}

// SetMeshExtensions replaces the set of mesh extensions that are
// rewritten to generated prefab assets. Extensions are matched
// case-insensitively and must include the leading dot.
func (l *Locator) SetMeshExtensions(exts []string) {
	l.meshExts = make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		l.meshExts[ext] = struct{}{}
	}
}

// PackageRoot returns the current asset-tree-relative package root, or
// empty before SetPackageRoot has been called.
func (l *Locator) PackageRoot() string {
	return l.packageRoot
}

// SetPackageRoot converts the given absolute path to an asset-tree-
// relative one, stores it as the package root, and ensures a Materials
// subfolder exists under it. With correctPrior set, a Materials folder
// under the previous root is relocated to the new one first.
func (l *Locator) SetPackageRoot(absPath string, correctPrior bool) error {
	rel, err := l.assetRelative(absPath)
	if err != nil {
		return err
	}
	prev := l.packageRoot
	l.packageRoot = rel

	newMaterials := path.Join(rel, materialsFolder)
	if correctPrior && prev != "" && prev != rel {
		oldMaterials := path.Join(prev, materialsFolder)
		if l.Assets.IsValidFolder(oldMaterials) {
			if err := l.Assets.MoveAsset(oldMaterials, newMaterials); err != nil {
				return err
			}
		}
	}
	if !l.Assets.IsValidFolder(newMaterials) {
		if err := l.Assets.CreateFolder(rel, materialsFolder); err != nil {
			return err
		}
	}
	return nil
}

// Resolve converts a URI-like asset reference into a concrete
// location. Recognized forms are package://, file://, bare relative
// paths, and the legacy ../ prefix, which is rewritten to a package
// reference to stop manual traversal out of the asset root.
//
// file:// results are absolute and flagged FileURI; indexed packages
// outside the asset tree resolve to absolute paths; everything else is
// returned relative to the package root.
func (l *Locator) Resolve(ctx context.Context, ref string, convertToPrefab bool) (types.ResolvedAsset, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return types.ResolvedAsset{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("asset reference is empty")
	}
	ref = l.guardTraversal(ref)

	switch {
	case strings.HasPrefix(ref, schemeFile):
		resolved := shared.NormalizeSlashes(strings.TrimPrefix(ref, schemeFile))
		if convertToPrefab {
			resolved = l.convertMeshExtension(resolved)
		}
		return types.ResolvedAsset{Path: resolved, FileURI: true}, nil

	case strings.HasPrefix(ref, schemePackage):
		return l.resolvePackage(ctx, strings.TrimPrefix(ref, schemePackage), convertToPrefab)

	default:
		resolved := shared.NormalizeSlashes(ref)
		if convertToPrefab {
			resolved = l.convertMeshExtension(resolved)
		}
		return types.ResolvedAsset{Path: path.Join(l.packageRoot, resolved)}, nil
	}
}

// guardTraversal rewrites a leading ../ to a package reference so a
// hand-written relative path cannot escape the asset root.
func (l *Locator) guardTraversal(ref string) string {
	if strings.HasPrefix(ref, schemeFile) || strings.HasPrefix(ref, schemePackage) {
		return ref
	}
	if !strings.HasPrefix(ref, "../") {
		return ref
	}
	rewritten := schemePackage + strings.TrimPrefix(ref, "../")
	log.Warn().
		Str("reference", ref).
		Str("rewritten", rewritten).
		Msg("blocking manual path traversal outside the asset root")
	return rewritten
}

func (l *Locator) resolvePackage(ctx context.Context, rest string, convertToPrefab bool) (types.ResolvedAsset, error) {
	rest = strings.TrimPrefix(shared.NormalizeSlashes(rest), "/")
	if rest == "" {
		return types.ResolvedAsset{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package reference has no path")
	}

	// The whole remainder may already live under the package root, in
	// which case no discovery is needed.
	if l.IsValidAssetPath(path.Join(l.packageRoot, rest)) {
		resolved := rest
		if convertToPrefab {
			resolved = l.convertMeshExtension(resolved)
		}
		return types.ResolvedAsset{Path: path.Join(l.packageRoot, resolved)}, nil
	}

	name, remainder := splitPackageName(rest)
	dir, ok := l.Index.Lookup(ctx, name)
	if !ok {
		return types.ResolvedAsset{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("package not found: " + name)
	}
	resolved := shared.NormalizeSlashes(filepath.Join(dir, filepath.FromSlash(remainder)))
	if convertToPrefab {
		resolved = l.convertMeshExtension(resolved)
	}
	return types.ResolvedAsset{Path: resolved}, nil
}

// IsValidAssetPath reports whether the path names an existing file or
// directory. Relative paths are taken against the asset tree root.
// Editor and runtime modes share this single check.
func (l *Locator) IsValidAssetPath(assetPath string) bool {
	abs := filepath.FromSlash(assetPath)
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(l.Assets.AssetRoot(), abs)
	}
	_, err := os.Stat(abs)
	return err == nil
}

// MaterialAssetPath returns the material asset location for a material
// name, discarding any directory components and prior extension.
func (l *Locator) MaterialAssetPath(materialName string) string {
	base := shared.BaseWithoutExtension(materialName)
	return path.Join(l.packageRoot, materialsFolder, base+materialExt)
}

func (l *Locator) convertMeshExtension(assetPath string) string {
	ext := strings.ToLower(filepath.Ext(assetPath))
	if _, ok := l.meshExts[ext]; !ok {
		return assetPath
	}
	return shared.SwapExtension(assetPath, prefabExt)
}

func (l *Locator) assetRelative(absPath string) (string, error) {
	root := l.Assets.AssetRoot()
	rel, err := filepath.Rel(root, filepath.FromSlash(absPath))
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package root must be inside the asset tree")
	}
	return shared.NormalizeSlashes(rel), nil
}

func splitPackageName(rest string) (string, string) {
	if idx := strings.Index(rest, "/"); idx >= 0 {
		return rest[:idx], rest[idx+1:]
	}
	return rest, ""
}
