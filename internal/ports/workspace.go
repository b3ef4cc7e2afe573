package ports

// WorkspacePort discovers package.xml manifests within a search root.
type WorkspacePort interface {
	FindManifests(root string) ([]string, error)
}

// ManifestPort extracts the declared package name from a package.xml.
type ManifestPort interface {
	// PackageName returns the first <name> element in the manifest's
	// default namespace. A readable manifest without a name yields a
	// typed error so callers can skip it without aborting a crawl.
	PackageName(path string) (string, error)
}

// SearchPathPort derives the ordered list of directories to crawl for
// package manifests.
type SearchPathPort interface {
	Roots() []string
}
