package ports

// AssetDatabasePort is the host-engine collaborator that owns the
// managed asset tree. In an editor embedding this is backed by the
// engine's asset database; the CLI uses a plain filesystem adapter.
type AssetDatabasePort interface {
	// IsValidFolder reports whether path names an existing folder
	// inside the asset tree. Paths are asset-tree-relative.
	IsValidFolder(path string) bool

	// CreateFolder creates folder name under parent. Parent must
	// already exist.
	CreateFolder(parent string, name string) error

	// MoveAsset relocates an asset or folder within the asset tree.
	MoveAsset(src string, dst string) error

	// IsRuntimeMode reports whether the host is running outside the
	// editor (sandboxed player/runtime).
	IsRuntimeMode() bool

	// AssetRoot returns the absolute filesystem path of the asset
	// tree root.
	AssetRoot() string
}
