package cli

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------- Command tree tests ----------

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCommand()
	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	expected := []string{"resolve", "crawl", "roots", "validate", "material"}
	for _, name := range expected {
		assert.Contains(t, names, name, "missing subcommand: %s", name)
	}
}

func TestRootCommandVersion(t *testing.T) {
	root := newRootCommand()
	assert.Equal(t, "dev", root.Version)
}

func TestResolveCommandFlags(t *testing.T) {
	cmd := newResolveCommand()
	flags := []string{
		"asset-root", "package-root", "prev-package-root",
		"search-root", "settings", "keep-mesh-ext",
	}
	for _, name := range flags {
		flag := cmd.Flags().Lookup(name)
		assert.NotNil(t, flag, "missing flag: %s", name)
	}
}

func TestCrawlCommandFlags(t *testing.T) {
	cmd := newCrawlCommand()
	assert.NotNil(t, cmd.Flags().Lookup("search-root"))
	assert.NotNil(t, cmd.Flags().Lookup("settings"))
}

func TestMaterialCommandFlags(t *testing.T) {
	cmd := newMaterialCommand()
	assert.NotNil(t, cmd.Flags().Lookup("asset-root"))
	assert.NotNil(t, cmd.Flags().Lookup("package-root"))
}

// ---------- Helper function tests ----------

func TestResolveString(t *testing.T) {
	tests := []struct {
		name     string
		cmd      *cobra.Command
		value    string
		expected string
	}{
		{
			name:     "nil cmd with value returns value",
			cmd:      nil,
			value:    "explicit",
			expected: "explicit",
		},
		{
			name:     "nil cmd empty value returns empty",
			cmd:      nil,
			value:    "",
			expected: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveString(tt.cmd, tt.value, "test_key", "test-flag")
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveStringsNilCmd(t *testing.T) {
	got := resolveStrings(nil, []string{"a", "b"}, "test_key", "test-flag")
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestResolveBoolNilCmd(t *testing.T) {
	assert.True(t, resolveBool(nil, true, "test_key", "test-flag"))
	assert.False(t, resolveBool(nil, false, "test_key", "test-flag"))
}

func TestFlagChangedNilCmd(t *testing.T) {
	assert.False(t, flagChanged(nil, "anything"))
}

// ---------- Exit code tests ----------

func TestExitCodeForError(t *testing.T) {
	invalid := errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("bad input")
	require.Equal(t, 2, exitCodeForError(invalid))

	missing := errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg("package not found: ur5")
	require.Equal(t, 4, exitCodeForError(missing))

	absent := errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg("settings file not found")
	require.Equal(t, 5, exitCodeForError(absent))

	internal := errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("boom")
	require.Equal(t, 5, exitCodeForError(internal))
}
