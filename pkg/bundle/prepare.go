package bundle

import (
	"path/filepath"

	"github.com/webfig/embedjs/pkg/errors"
	"github.com/webfig/embedjs/pkg/types"
)

// Prepare locates pkg's source and license files under
// root/node_modules, invoking the installer first when the source is
// absent. After the install attempt both files must exist; a file that
// is still missing is fatal.
func Prepare(fs types.FS, inst types.Installer, root string, pkg types.Package) (source, license string, err error) {
	pkgDir := filepath.Join(root, "node_modules", pkg.Name)
	source = filepath.Join(pkgDir, pkg.Source)
	license = filepath.Join(pkgDir, pkg.License)

	if _, statErr := fs.Stat(source); statErr != nil {
		if err := inst.Install(pkg.Name, root); err != nil {
			return "", "", err
		}
	}

	if _, statErr := fs.Stat(source); statErr != nil {
		return "", "", errors.Newf(errors.ErrArtifactMissing,
			"%s package is missing source in %s", pkg.Name, pkg.Source).
			WithDetail("package", pkg.Name)
	}
	if _, statErr := fs.Stat(license); statErr != nil {
		return "", "", errors.Newf(errors.ErrArtifactMissing,
			"%s package is missing license in %s", pkg.Name, pkg.License).
			WithDetail("package", pkg.Name)
	}

	return source, license, nil
}
