// Package testutil provides shared fakes and fixture helpers for
// embedjs tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/webfig/embedjs/pkg/errors"
	"github.com/webfig/embedjs/pkg/types"
)

// FakeInstaller implements types.Installer without touching the network
// or spawning processes. When ToolMissing is set, Install fails the way
// the real installer does when npm is absent from the system. Otherwise
// it records the call and writes the configured files into the target
// package directory, simulating a successful install.
type FakeInstaller struct {
	FS          types.FS
	ToolMissing bool

	// Files to materialize under node_modules/<name>/ on install,
	// keyed by relative path.
	Files map[string]string

	// Calls records every (name, dir) pair Install was invoked with.
	Calls [][2]string
}

func (f *FakeInstaller) Install(name, dir string) error {
	f.Calls = append(f.Calls, [2]string{name, dir})

	if f.ToolMissing {
		return errors.Newf(errors.ErrToolMissing,
			"npm must be installed to fetch %s", name)
	}

	pkgDir := filepath.Join(dir, "node_modules", name)
	if err := f.FS.MkdirAll(pkgDir, 0755); err != nil {
		return err
	}
	for rel, content := range f.Files {
		if err := f.FS.WriteFile(filepath.Join(pkgDir, rel), []byte(content), 0644); err != nil {
			return err
		}
	}
	return nil
}

var _ types.Installer = (*FakeInstaller)(nil)

// CreatePackageTree writes an installed-package fixture under
// root/node_modules/<pkg.Name>/ with the given source and license
// content.
func CreatePackageTree(t *testing.T, fs types.FS, root string, pkg types.Package, source, license string) {
	t.Helper()

	pkgDir := filepath.Join(root, "node_modules", pkg.Name)
	require.NoError(t, fs.MkdirAll(pkgDir, 0755))
	require.NoError(t, fs.WriteFile(filepath.Join(pkgDir, pkg.Source), []byte(source), 0644))
	require.NoError(t, fs.WriteFile(filepath.Join(pkgDir, pkg.License), []byte(license), 0644))
}
