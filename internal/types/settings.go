package types

type SettingsKind string

const SettingsKindImporter SettingsKind = "importer-settings"

// Settings is the optional YAML settings spec for the locator. It
// supplies extra package search roots and overrides for the asset
// root, the package root, and the convertible mesh extensions.
type Settings struct {
	APIVersion string           `yaml:"api_version"`
	Kind       SettingsKind     `yaml:"kind"`
	Metadata   SettingsMetadata `yaml:"metadata"`

	AssetRoot      string   `yaml:"asset_root"`
	PackageRoot    string   `yaml:"package_root"`
	SearchPaths    []string `yaml:"search_paths"`
	MeshExtensions []string `yaml:"mesh_extensions"`
}

type SettingsMetadata struct {
	Name string `yaml:"name"`
}
