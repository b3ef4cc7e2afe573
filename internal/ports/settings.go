package ports

import "urdf-locator/internal/types"

// SettingsPort loads importer settings specs.
type SettingsPort interface {
	Load(path string) (types.Settings, error)
}
