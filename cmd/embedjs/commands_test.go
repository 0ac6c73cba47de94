package embedjs

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webfig/embedjs/pkg/bundle"
	"github.com/webfig/embedjs/pkg/errors"
)

// setupWebBackend creates a web-backend fixture on disk with the
// resize-observer package already installed, so no npm invocation is
// needed.
func setupWebBackend(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "js"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "js", "bundle.js"),
		[]byte("/* app */\n"+bundle.MagicMarker), 0644))

	pkgDir := filepath.Join(root, "node_modules", "@jsxtools", "resize-observer")
	require.NoError(t, os.MkdirAll(pkgDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(pkgDir, "index.js"),
		[]byte("module.exports=function(){return 1;}\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(pkgDir, "LICENSE.md"),
		[]byte("MIT License\n"), 0644))

	return root
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_Build(t *testing.T) {
	root := setupWebBackend(t)
	licenseDir := t.TempDir()

	output, err := runCommand(t, root, licenseDir)
	require.NoError(t, err)

	assert.Contains(t, output, "Embedding")
	assert.Contains(t, output, "_JSXTOOLS_RESIZE_OBSERVER")

	content, err := os.ReadFile(filepath.Join(root, "js", "bundle.js"))
	require.NoError(t, err)
	assert.Contains(t, string(content),
		"var _JSXTOOLS_RESIZE_OBSERVER=function(){return 1;} // eslint-disable-line")

	license, err := os.ReadFile(filepath.Join(licenseDir, "LICENSE_JSXTOOLS_RESIZE_OBSERVER"))
	require.NoError(t, err)
	assert.Equal(t, "MIT License\n", string(license))
}

func TestRootCmd_Build_MarkerMissing(t *testing.T) {
	root := setupWebBackend(t)
	original := "/* no marker here */\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "js", "bundle.js"),
		[]byte(original), 0644))

	_, err := runCommand(t, root, t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMarkerMissing))

	content, readErr := os.ReadFile(filepath.Join(root, "js", "bundle.js"))
	require.NoError(t, readErr)
	assert.Equal(t, original, string(content))
}

func TestRootCmd_Build_DryRun(t *testing.T) {
	root := setupWebBackend(t)
	original := "/* app */\n" + bundle.MagicMarker

	output, err := runCommand(t, "--dry-run", root, t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, output, "DRY RUN MODE")

	content, readErr := os.ReadFile(filepath.Join(root, "js", "bundle.js"))
	require.NoError(t, readErr)
	assert.Equal(t, original, string(content))
}

func TestRootCmd_Build_CustomPackagesFile(t *testing.T) {
	root := setupWebBackend(t)

	pkgDir := filepath.Join(root, "node_modules", "left-pad")
	require.NoError(t, os.MkdirAll(pkgDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(pkgDir, "index.js"),
		[]byte("module.exports=function(s,n){return s;}\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(pkgDir, "LICENSE"),
		[]byte("WTFPL\n"), 0644))

	packagesFile := filepath.Join(t.TempDir(), "packages.toml")
	require.NoError(t, os.WriteFile(packagesFile, []byte(`
[[packages]]
name = "left-pad"
source = "index.js"
license = "LICENSE"
`), 0644))

	_, err := runCommand(t, "--packages", packagesFile, root, t.TempDir())
	require.NoError(t, err)

	content, readErr := os.ReadFile(filepath.Join(root, "js", "bundle.js"))
	require.NoError(t, readErr)
	assert.Contains(t, string(content), "var LEFT_PAD=function")
	assert.NotContains(t, string(content), "_JSXTOOLS_RESIZE_OBSERVER")
}

func TestRootCmd_RejectsExtraArgs(t *testing.T) {
	_, err := runCommand(t, "a", "b", "c")
	require.Error(t, err)
}

func TestListCmd(t *testing.T) {
	output, err := runCommand(t, "list")
	require.NoError(t, err)

	assert.Contains(t, output, "Packages to embed")
	assert.Contains(t, output, "built-in registry")
	assert.Contains(t, output, "@jsxtools/resize-observer")
	assert.Contains(t, output, "_JSXTOOLS_RESIZE_OBSERVER")
	assert.Contains(t, output, "index.js")
}

func TestListCmd_CustomPackagesFile(t *testing.T) {
	packagesFile := filepath.Join(t.TempDir(), "packages.toml")
	require.NoError(t, os.WriteFile(packagesFile, []byte(`
[[packages]]
name = "left-pad"
source = "index.js"
license = "LICENSE"
`), 0644))

	output, err := runCommand(t, "list", "--packages", packagesFile)
	require.NoError(t, err)

	assert.Contains(t, output, packagesFile)
	assert.Contains(t, output, "left-pad")
	assert.Contains(t, output, "LEFT_PAD")
	assert.NotContains(t, output, "@jsxtools/resize-observer")
}

func TestVersionCmd(t *testing.T) {
	output, err := runCommand(t, "version")
	require.NoError(t, err)

	assert.Contains(t, output, "embedjs version")
}
