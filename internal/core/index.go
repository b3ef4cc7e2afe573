package core

import (
	"context"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog/log"

	"urdf-locator/internal/ports"
	"urdf-locator/internal/types"
)

// Index is the package discovery cache: a mapping from package name to
// the directory containing its package.xml. Crawls are additive and
// never evict entries except by overwrite, so a package that moved on
// disk keeps serving its last known directory until re-discovered.
type Index struct {
	Workspace ports.WorkspacePort
	Manifest  ports.ManifestPort

	roots    []string
	packages map[string]string
}

func NewIndex(workspace ports.WorkspacePort, manifest ports.ManifestPort, roots []string) *Index {
	return &Index{
		Workspace: workspace,
		Manifest:  manifest,
		roots:     append([]string(nil), roots...),
		packages:  map[string]string{},
	}
}

// Roots returns the search roots this index crawls. The slice is a
// copy; the roots themselves never change after construction.
func (x *Index) Roots() []string {
	return append([]string(nil), x.roots...)
}

// Crawl scans every search root for package.xml manifests and records
// each declared package name against its containing directory.
// Failures are per-manifest and per-root: a malformed manifest or an
// unreadable root is logged and skipped, never fatal.
func (x *Index) Crawl(ctx context.Context) {
	for _, root := range x.roots {
		manifests, err := x.Workspace.FindManifests(root)
		if err != nil {
			log.Warn().Err(err).Str("root", root).Msg("skipping unreadable search root")
			continue
		}
		for _, manifest := range manifests {
			name, err := x.Manifest.PackageName(manifest)
			if err != nil {
				log.Warn().Err(err).Str("manifest", manifest).Msg("skipping manifest")
				continue
			}
			x.record(name, filepath.Dir(manifest))
		}
	}
}

func (x *Index) record(name string, dir string) {
	existing, ok := x.packages[name]
	if ok && existing == dir {
		log.Info().Str("package", name).Str("dir", dir).Msg("package already indexed")
		return
	}
	if ok {
		log.Warn().
			Str("package", name).
			Str("old", existing).
			Str("new", dir).
			Msg("package location overridden")
	}
	x.packages[name] = dir
}

// Lookup returns the indexed directory for a package. A miss triggers
// exactly one crawl before re-checking; a post-crawl miss logs the
// roots that were searched and returns the empty sentinel.
func (x *Index) Lookup(ctx context.Context, name string) (string, bool) {
	if dir, ok := x.packages[name]; ok {
		return dir, true
	}
	x.Crawl(ctx)
	if dir, ok := x.packages[name]; ok {
		return dir, true
	}
	log.Error().
		Str("package", name).
		Strs("roots", x.roots).
		Msg("package not found in any search root")
	return "", false
}

// Len reports the number of indexed packages.
func (x *Index) Len() int {
	return len(x.packages)
}

// Entries returns a name-sorted snapshot of the index.
func (x *Index) Entries() []types.PackageEntry {
	entries := make([]types.PackageEntry, 0, len(x.packages))
	for name, dir := range x.packages {
		entries = append(entries, types.PackageEntry{Name: name, Dir: dir})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}
