package adapters

import (
	"os"
	"path/filepath"
	"strings"

	"urdf-locator/internal/ports"
)

// PackagePathEnvVar lists package search roots, delimited by the
// platform path-list separator.
const PackagePathEnvVar = "ROS_PACKAGE_PATH"

const workspaceMarkerFile = ".catkin_workspace"

var defaultSearchRoots = []string{"/opt/ros"}

// SearchPathAdapter derives the ordered manifest search roots. The
// environment variable wins outright when set; otherwise a fixed
// system install path is used, extended with the source workspace the
// running executable lives in, when one can be detected.
type SearchPathAdapter struct {
	// Executable overrides os.Executable for workspace detection.
	Executable func() (string, error)

	// Getenv overrides os.Getenv.
	Getenv func(string) string
}

func NewSearchPathAdapter() SearchPathAdapter {
	return SearchPathAdapter{}
}

func (a SearchPathAdapter) Roots() []string {
	getenv := a.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if value := strings.TrimSpace(getenv(PackagePathEnvVar)); value != "" {
		return filepath.SplitList(value)
	}

	roots := append([]string(nil), defaultSearchRoots...)
	if workspace := a.detectWorkspaceSource(); workspace != "" {
		roots = append(roots, workspace)
	}
	return roots
}

// detectWorkspaceSource checks whether the running executable lives
// inside a source workspace (a path containing a src/ segment whose
// parent carries the workspace marker file) and returns that src
// directory, or empty when no workspace is found.
func (a SearchPathAdapter) detectWorkspaceSource() string {
	executable := a.Executable
	if executable == nil {
		executable = os.Executable
	}
	exe, err := executable()
	if err != nil {
		return ""
	}
	dir := filepath.ToSlash(filepath.Dir(exe))
	marker := "/src/"
	idx := strings.Index(dir, marker)
	if idx < 0 {
		if strings.HasSuffix(dir, "/src") {
			idx = len(dir) - len("/src")
		} else {
			return ""
		}
	}
	workspaceRoot := filepath.FromSlash(dir[:idx])
	if _, err := os.Stat(filepath.Join(workspaceRoot, workspaceMarkerFile)); err != nil {
		return ""
	}
	return filepath.Join(workspaceRoot, "src")
}

var _ ports.SearchPathPort = SearchPathAdapter{}
