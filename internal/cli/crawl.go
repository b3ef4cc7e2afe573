package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"urdf-locator/internal/app"
)

type crawlOptions struct {
	SearchRoots []string
	Settings    string
}

func newCrawlCommand() *cobra.Command {
	opts := crawlOptions{}
	cmd := &cobra.Command{
		Use:   "crawl",
		Short: "Crawl search roots and list discovered packages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCrawl(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringSliceVar(&opts.SearchRoots, "search-root", nil, "Package search root(s), overrides derivation")
	cmd.Flags().StringVar(&opts.Settings, "settings", "", "Importer settings file")
	_ = viper.BindPFlag("search_roots", cmd.Flags().Lookup("search-root"))
	_ = viper.BindPFlag("settings", cmd.Flags().Lookup("settings"))
	return cmd
}

func runCrawl(ctx context.Context, cmd *cobra.Command, opts crawlOptions) error {
	service := newAppService()
	result, err := service.Crawl(ctx, app.CrawlRequest{
		SearchRoots:  resolveStrings(cmd, opts.SearchRoots, "search_roots", "search-root"),
		SettingsPath: resolveString(cmd, opts.Settings, "settings", "settings"),
	})
	if err != nil {
		return err
	}
	for _, entry := range result.Entries {
		fmt.Printf("%s\t%s\n", entry.Name, entry.Dir)
	}
	fmt.Printf("discovered %d package(s) in %d root(s)\n", len(result.Entries), len(result.Roots))
	return nil
}
