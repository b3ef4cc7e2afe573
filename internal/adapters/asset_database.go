package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"urdf-locator/internal/ports"
)

// DirAssetDatabase backs the asset-database port with a plain
// directory tree. The CLI uses it directly; an engine embedding
// supplies its own implementation instead.
type DirAssetDatabase struct {
	Root string
}

func NewDirAssetDatabase(root string) DirAssetDatabase {
	return DirAssetDatabase{Root: root}
}

func (d DirAssetDatabase) IsValidFolder(path string) bool {
	info, err := os.Stat(d.abs(path))
	return err == nil && info.IsDir()
}

func (d DirAssetDatabase) CreateFolder(parent string, name string) error {
	if err := os.MkdirAll(filepath.Join(d.abs(parent), name), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create asset folder").
			WithCause(err)
	}
	return nil
}

func (d DirAssetDatabase) MoveAsset(src string, dst string) error {
	if err := os.MkdirAll(filepath.Dir(d.abs(dst)), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create destination folder").
			WithCause(err)
	}
	if err := os.Rename(d.abs(src), d.abs(dst)); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to move asset").
			WithCause(err)
	}
	return nil
}

func (d DirAssetDatabase) IsRuntimeMode() bool {
	return false
}

func (d DirAssetDatabase) AssetRoot() string {
	return d.Root
}

func (d DirAssetDatabase) abs(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(d.Root, filepath.FromSlash(path))
}

var _ ports.AssetDatabasePort = DirAssetDatabase{}
