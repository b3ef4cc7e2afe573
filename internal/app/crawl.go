package app

import (
	"context"

	"urdf-locator/internal/core"
)

func (s Service) Crawl(ctx context.Context, req CrawlRequest) (CrawlResult, error) {
	settings, err := s.loadSettings(ctx, req.SettingsPath)
	if err != nil {
		return CrawlResult{}, err
	}
	index := core.NewIndex(s.Workspace, s.Manifest, s.deriveRoots(req.SearchRoots, settings))
	index.Crawl(ctx)
	return CrawlResult{
		Roots:   index.Roots(),
		Entries: index.Entries(),
	}, nil
}
