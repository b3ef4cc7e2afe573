package app

import "urdf-locator/internal/types"

type CrawlRequest struct {
	SearchRoots  []string
	SettingsPath string
}

type CrawlResult struct {
	Roots   []string
	Entries []types.PackageEntry
}

type ResolveRequest struct {
	References      []string
	AssetRoot       string
	PackageRoot     string
	PrevPackageRoot string
	SearchRoots     []string
	SettingsPath    string
	ConvertToPrefab bool
}

type ResolvedReference struct {
	Reference string
	Asset     types.ResolvedAsset
}

type ResolveResult struct {
	PackageRoot string
	References  []ResolvedReference
}

type RootsRequest struct {
	SettingsPath string
}

type RootsResult struct {
	Roots []string
}

type ValidateRequest struct {
	SettingsPath string
}

type ValidateResult struct {
	Name string
}

type MaterialRequest struct {
	MaterialName string
	AssetRoot    string
	PackageRoot  string
	SettingsPath string
}

type MaterialResult struct {
	Path string
}
