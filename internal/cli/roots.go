package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"urdf-locator/internal/app"
)

type rootsOptions struct {
	Settings string
}

func newRootsCommand() *cobra.Command {
	opts := rootsOptions{}
	cmd := &cobra.Command{
		Use:   "roots",
		Short: "Show the derived package search roots",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRoots(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Settings, "settings", "", "Importer settings file")
	_ = viper.BindPFlag("settings", cmd.Flags().Lookup("settings"))
	return cmd
}

func runRoots(ctx context.Context, cmd *cobra.Command, opts rootsOptions) error {
	service := newAppService()
	result, err := service.Roots(ctx, app.RootsRequest{
		SettingsPath: resolveString(cmd, opts.Settings, "settings", "settings"),
	})
	if err != nil {
		return err
	}
	for _, root := range result.Roots {
		fmt.Println(root)
	}
	return nil
}
