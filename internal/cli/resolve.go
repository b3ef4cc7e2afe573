package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"urdf-locator/internal/app"
)

type resolveOptions struct {
	AssetRoot       string
	PackageRoot     string
	PrevPackageRoot string
	SearchRoots     []string
	Settings        string
	KeepMeshExt     bool
}

func newResolveCommand() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve <reference>...",
		Short: "Resolve package://, file://, and relative asset references",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd.Context(), cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.AssetRoot, "asset-root", "", "Asset tree root directory")
	cmd.Flags().StringVar(&opts.PackageRoot, "package-root", "", "Package root, relative to the asset tree")
	cmd.Flags().StringVar(&opts.PrevPackageRoot, "prev-package-root", "", "Previous package root to migrate materials from")
	cmd.Flags().StringSliceVar(&opts.SearchRoots, "search-root", nil, "Package search root(s), overrides derivation")
	cmd.Flags().StringVar(&opts.Settings, "settings", "", "Importer settings file")
	cmd.Flags().BoolVar(&opts.KeepMeshExt, "keep-mesh-ext", false, "Do not rewrite mesh extensions to .prefab")

	_ = viper.BindPFlag("asset_root", cmd.Flags().Lookup("asset-root"))
	_ = viper.BindPFlag("package_root", cmd.Flags().Lookup("package-root"))
	_ = viper.BindPFlag("prev_package_root", cmd.Flags().Lookup("prev-package-root"))
	_ = viper.BindPFlag("search_roots", cmd.Flags().Lookup("search-root"))
	_ = viper.BindPFlag("settings", cmd.Flags().Lookup("settings"))
	_ = viper.BindPFlag("keep_mesh_ext", cmd.Flags().Lookup("keep-mesh-ext"))

	return cmd
}

func runResolve(ctx context.Context, cmd *cobra.Command, opts resolveOptions, refs []string) error {
	service := newAppService()
	result, err := service.Resolve(ctx, app.ResolveRequest{
		References:      refs,
		AssetRoot:       resolveString(cmd, opts.AssetRoot, "asset_root", "asset-root"),
		PackageRoot:     resolveString(cmd, opts.PackageRoot, "package_root", "package-root"),
		PrevPackageRoot: resolveString(cmd, opts.PrevPackageRoot, "prev_package_root", "prev-package-root"),
		SearchRoots:     resolveStrings(cmd, opts.SearchRoots, "search_roots", "search-root"),
		SettingsPath:    resolveString(cmd, opts.Settings, "settings", "settings"),
		ConvertToPrefab: !resolveBool(cmd, opts.KeepMeshExt, "keep_mesh_ext", "keep-mesh-ext"),
	})
	if err != nil {
		return err
	}
	for _, ref := range result.References {
		kind := "asset"
		if ref.Asset.FileURI {
			kind = "file"
		}
		fmt.Printf("%s\t%s\t%s\n", ref.Reference, kind, ref.Asset.Path)
	}
	return nil
}
