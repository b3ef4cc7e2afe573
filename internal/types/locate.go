package types

// PackageEntry is one row of the discovery cache: a package name and
// the directory containing its package.xml.
type PackageEntry struct {
	Name string
	Dir  string
}

// ResolvedAsset is the outcome of resolving one asset reference.
// Path is relative to the asset tree when the asset lives under the
// package root, and absolute when it points outside it (file URIs and
// packages discovered on the host machine). FileURI marks results from
// file:// references, which bypass the package root entirely.
type ResolvedAsset struct {
	Path    string
	FileURI bool
}
