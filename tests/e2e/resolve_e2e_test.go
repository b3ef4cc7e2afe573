package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urdf-locator/tests/testutil"
)

func TestResolveCommandE2E(t *testing.T) {
	root := testutil.RepoRoot(t)
	workspace := t.TempDir()
	testutil.WritePackage(t, workspace, "ur_description")
	assetRoot := t.TempDir()

	cmd := exec.Command("go", "run", "./cmd/urdf-locator", "resolve",
		"--asset-root", assetRoot,
		"--package-root", "Robots/ur5",
		"--search-root", workspace,
		"package://ur_description/meshes/base.stl",
		"model.stl",
	)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))

	output := string(out)
	assert.Contains(t, output, "meshes/base.prefab")
	assert.Contains(t, output, "Robots/ur5/model.prefab")
	assert.DirExists(t, filepath.Join(assetRoot, "Robots", "ur5", "Materials"))
}

func TestCrawlCommandE2E(t *testing.T) {
	root := testutil.RepoRoot(t)
	workspace := t.TempDir()
	pkgDir := testutil.WritePackage(t, workspace, "gripper")

	cmd := exec.Command("go", "run", "./cmd/urdf-locator", "crawl",
		"--search-root", workspace,
	)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))

	assert.Contains(t, string(out), "gripper\t"+pkgDir)
	assert.True(t, strings.Contains(string(out), "discovered 1 package(s)"))
}
