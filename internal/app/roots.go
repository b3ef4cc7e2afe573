package app

import "context"

func (s Service) Roots(ctx context.Context, req RootsRequest) (RootsResult, error) {
	settings, err := s.loadSettings(ctx, req.SettingsPath)
	if err != nil {
		return RootsResult{}, err
	}
	return RootsResult{Roots: s.deriveRoots(nil, settings)}, nil
}
