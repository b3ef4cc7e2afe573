package app

import (
	"urdf-locator/internal/adapters"
	"urdf-locator/internal/ports"
)

type Service struct {
	Workspace   ports.WorkspacePort
	Manifest    ports.ManifestPort
	SearchPaths ports.SearchPathPort
	Settings    ports.SettingsPort
	AssetDB     func(root string) ports.AssetDatabasePort
}

func NewService() Service {
	return Service{
		Workspace:   adapters.NewWorkspaceAdapter(),
		Manifest:    adapters.NewManifestAdapter(),
		SearchPaths: adapters.NewSearchPathAdapter(),
		Settings:    adapters.NewSettingsFileAdapter(),
		AssetDB: func(root string) ports.AssetDatabasePort {
			return adapters.NewDirAssetDatabase(root)
		},
	}
}
