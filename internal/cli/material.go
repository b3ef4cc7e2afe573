package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"urdf-locator/internal/app"
)

type materialOptions struct {
	AssetRoot   string
	PackageRoot string
	Settings    string
}

func newMaterialCommand() *cobra.Command {
	opts := materialOptions{}
	cmd := &cobra.Command{
		Use:   "material <name>",
		Short: "Show the material asset path for a material name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMaterial(cmd.Context(), cmd, opts, args[0])
		},
	}
	cmd.Flags().StringVar(&opts.AssetRoot, "asset-root", "", "Asset tree root directory")
	cmd.Flags().StringVar(&opts.PackageRoot, "package-root", "", "Package root, relative to the asset tree")
	cmd.Flags().StringVar(&opts.Settings, "settings", "", "Importer settings file")
	_ = viper.BindPFlag("asset_root", cmd.Flags().Lookup("asset-root"))
	_ = viper.BindPFlag("package_root", cmd.Flags().Lookup("package-root"))
	_ = viper.BindPFlag("settings", cmd.Flags().Lookup("settings"))
	return cmd
}

func runMaterial(ctx context.Context, cmd *cobra.Command, opts materialOptions, name string) error {
	service := newAppService()
	result, err := service.MaterialPath(ctx, app.MaterialRequest{
		MaterialName: name,
		AssetRoot:    resolveString(cmd, opts.AssetRoot, "asset_root", "asset-root"),
		PackageRoot:  resolveString(cmd, opts.PackageRoot, "package_root", "package-root"),
		SettingsPath: resolveString(cmd, opts.Settings, "settings", "settings"),
	})
	if err != nil {
		return err
	}
	fmt.Println(result.Path)
	return nil
}
