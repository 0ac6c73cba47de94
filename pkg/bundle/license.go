package bundle

import (
	"path/filepath"

	"github.com/webfig/embedjs/pkg/errors"
	"github.com/webfig/embedjs/pkg/types"
)

// CopyLicense copies pkg's license file into outDir under the name
// LICENSE<SAFE_NAME>, silently overwriting any previous copy. It
// returns the destination path.
func CopyLicense(fs types.FS, pkg types.Package, licensePath, outDir string) (string, error) {
	data, err := fs.ReadFile(licensePath)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileRead,
			"failed to read license for %s", pkg.Name)
	}

	if err := fs.MkdirAll(outDir, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite,
			"failed to create license directory %s", outDir)
	}

	dest := filepath.Join(outDir, "LICENSE"+pkg.SafeName())
	if err := fs.WriteFile(dest, data, 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite,
			"failed to write license to %s", dest)
	}
	return dest, nil
}
