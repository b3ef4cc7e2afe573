package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	if strings.TrimSpace(req.SettingsPath) == "" {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("settings file path is required")
	}
	settings, err := s.loadSettings(ctx, req.SettingsPath)
	if err != nil {
		return ValidateResult{}, err
	}
	return ValidateResult{Name: settings.Metadata.Name}, nil
}
