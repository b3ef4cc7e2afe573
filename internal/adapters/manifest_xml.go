package adapters

import (
	"encoding/xml"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"urdf-locator/internal/ports"
)

// ManifestAdapter parses package.xml files and caches the extracted
// package name keyed by path and mod time, so repeated crawls over an
// unchanged workspace do not re-read manifests.
type ManifestAdapter struct {
	mu    sync.Mutex
	cache map[string]manifestCacheEntry
}

func NewManifestAdapter() *ManifestAdapter {
	return &ManifestAdapter{cache: map[string]manifestCacheEntry{}}
}

type manifestXML struct {
	Name string `xml:"name"`
}

type manifestCacheEntry struct {
	modTime time.Time
	name    string
}

func (a *ManifestAdapter) PackageName(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read package.xml").
			WithCause(err)
	}
	a.mu.Lock()
	if entry, ok := a.cache[path]; ok && entry.modTime.Equal(info.ModTime()) {
		a.mu.Unlock()
		return a.nameOrError(entry.name)
	}
	a.mu.Unlock()

	content, err := os.ReadFile(path)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read package.xml").
			WithCause(err)
	}
	var manifest manifestXML
	if err := xml.Unmarshal(content, &manifest); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse package.xml").
			WithCause(err)
	}
	entry := manifestCacheEntry{
		modTime: info.ModTime(),
		name:    strings.TrimSpace(manifest.Name),
	}

	a.mu.Lock()
	a.cache[path] = entry
	a.mu.Unlock()
	return a.nameOrError(entry.name)
}

func (a *ManifestAdapter) nameOrError(name string) (string, error) {
	if name == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package.xml has no name element")
	}
	return name, nil
}

var _ ports.ManifestPort = (*ManifestAdapter)(nil)
