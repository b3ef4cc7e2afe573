package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"urdf-locator/internal/ports"
	"urdf-locator/internal/types"
)

type SettingsFileAdapter struct{}

func NewSettingsFileAdapter() SettingsFileAdapter {
	return SettingsFileAdapter{}
}

func (a SettingsFileAdapter) Load(path string) (types.Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Settings{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("settings file not found").
			WithCause(err)
	}
	var settings types.Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return types.Settings{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse settings yaml").
			WithCause(err)
	}
	if settings.Kind != types.SettingsKindImporter {
		return types.Settings{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("settings kind is not importer-settings")
	}
	return settings, nil
}

var _ ports.SettingsPort = SettingsFileAdapter{}
