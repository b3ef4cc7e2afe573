package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSlashes(t *testing.T) {
	assert.Equal(t, "a/b/c", NormalizeSlashes(`a\b\c`))
	assert.Equal(t, "a/b/c", NormalizeSlashes("a/b/c"))
}

func TestSwapExtension(t *testing.T) {
	assert.Equal(t, "meshes/base.prefab", SwapExtension("meshes/base.stl", ".prefab"))
	assert.Equal(t, "base.prefab", SwapExtension("base.stereolitho", ".prefab"))
	assert.Equal(t, "noext", SwapExtension("noext", ".prefab"))
}

func TestBaseWithoutExtension(t *testing.T) {
	assert.Equal(t, "baz", BaseWithoutExtension("foo/bar/baz.png"))
	assert.Equal(t, "baz", BaseWithoutExtension(`foo\bar\baz.png`))
	assert.Equal(t, "plain", BaseWithoutExtension("plain"))
}
