package registry

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/webfig/embedjs/pkg/errors"
	"github.com/webfig/embedjs/pkg/types"
)

// Registry is an ordered sequence of package descriptors.
type Registry []types.Package

// Default returns the built-in registry of packages to embed.
func Default() Registry {
	return Registry{
		// Polyfill/ponyfill for ResizeObserver.
		{
			Name:    "@jsxtools/resize-observer",
			Source:  "index.js",
			License: "LICENSE.md",
		},
	}
}

// registryFile is the on-disk shape of a registry TOML file:
//
//	[[packages]]
//	name = "@jsxtools/resize-observer"
//	source = "index.js"
//	license = "LICENSE.md"
type registryFile struct {
	Packages []types.Package `toml:"packages"`
}

// Load reads a registry from a TOML file. Entry order in the file is
// preserved.
func Load(fs types.FS, path string) (Registry, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRegistryLoad,
			"failed to read registry file %s", path)
	}

	var file registryFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrapf(err, errors.ErrRegistryLoad,
			"failed to parse registry file %s", path)
	}

	reg := Registry(file.Packages)
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return reg, nil
}

// Validate checks that every entry carries a name, a source path and a
// license path. Duplicate safe names are not rejected here; see the
// package documentation of pkg/bundle for the consequences.
func (r Registry) Validate() error {
	if len(r) == 0 {
		return errors.New(errors.ErrRegistryInvalid, "registry contains no packages")
	}
	for i, pkg := range r {
		if pkg.Name == "" {
			return errors.Newf(errors.ErrRegistryInvalid,
				"registry entry %d has no package name", i)
		}
		if pkg.Source == "" {
			return errors.Newf(errors.ErrRegistryInvalid,
				"package %s has no source path", pkg.Name)
		}
		if pkg.License == "" {
			return errors.Newf(errors.ErrRegistryInvalid,
				"package %s has no license path", pkg.Name)
		}
	}
	return nil
}
