package bundle

import (
	"bytes"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/webfig/embedjs/pkg/errors"
	"github.com/webfig/embedjs/pkg/filesystem"
	"github.com/webfig/embedjs/pkg/installer"
	"github.com/webfig/embedjs/pkg/logging"
	"github.com/webfig/embedjs/pkg/registry"
	"github.com/webfig/embedjs/pkg/types"
)

// MagicMarker is the exact line that must exist in the bundle file.
// Everything after it is replaced with generated content on every run,
// which makes the build idempotent.
const MagicMarker = "///////////////// REMAINING CONTENT GENERATED BY embedjs /////////////////\n"

// DefaultBundlePath is the bundle file location relative to the
// web-backend root.
const DefaultBundlePath = "js/bundle.js"

// Options configures a Builder. Zero-value fields fall back to the real
// filesystem, the npm installer, the built-in registry and the default
// bundle path.
type Options struct {
	FS         types.FS
	Installer  types.Installer
	Registry   registry.Registry
	BundlePath string
	DryRun     bool
	Logger     *zerolog.Logger
}

// Builder runs the embedding pipeline against a web-backend root.
type Builder struct {
	fs         types.FS
	installer  types.Installer
	registry   registry.Registry
	bundlePath string
	dryRun     bool
	logger     zerolog.Logger
}

// New creates a builder instance
func New(opts Options) *Builder {
	var logger zerolog.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	} else {
		logger = logging.GetLogger("bundle")
	}

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	inst := opts.Installer
	if inst == nil {
		inst = installer.NewNpm()
	}

	reg := opts.Registry
	if reg == nil {
		reg = registry.Default()
	}

	bundlePath := opts.BundlePath
	if bundlePath == "" {
		bundlePath = DefaultBundlePath
	}

	return &Builder{
		fs:         fs,
		installer:  inst,
		registry:   reg,
		bundlePath: bundlePath,
		dryRun:     opts.DryRun,
		logger:     logger,
	}
}

// Result reports what a build embedded (or, in dry-run mode, would
// have embedded).
type Result struct {
	BundlePath string
	DryRun     bool
	Packages   []PackageResult
}

// PackageResult describes one embedded package.
type PackageResult struct {
	Package     types.Package
	VarName     string
	SourcePath  string
	LicenseDest string
	Lines       int
}

// Build embeds every registered package into the bundle file under
// root and copies each package's license into licenseDir.
//
// The bundle file is read first and must contain the magic marker
// line; the retained prefix ends at the marker. All packages are then
// prepared and transformed before the first write, so a missing tool
// or artifact leaves the bundle untouched. The write itself replaces
// everything after the marker and is not transactional.
func (b *Builder) Build(root, licenseDir string) (*Result, error) {
	bundlePath := filepath.Join(root, b.bundlePath)

	content, err := b.fs.ReadFile(bundlePath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead,
			"failed to read bundle file %s", bundlePath)
	}

	prefix, found := prefixThroughMarker(content)
	if !found {
		return nil, errors.Newf(errors.ErrMarkerMissing,
			"the bundle file must have the exact line: %s", MagicMarker).
			WithDetail("path", bundlePath)
	}

	result := &Result{
		BundlePath: bundlePath,
		DryRun:     b.dryRun,
	}

	var out bytes.Buffer
	out.Write(prefix)

	type pending struct {
		pkg     types.Package
		license string
	}
	var licenses []pending

	for _, pkg := range b.registry {
		source, license, err := Prepare(b.fs, b.installer, root, pkg)
		if err != nil {
			return nil, err
		}

		lines, err := EmbeddedLines(b.fs, pkg, source)
		if err != nil {
			return nil, err
		}
		for _, line := range lines {
			out.WriteString(line)
		}

		licenses = append(licenses, pending{pkg: pkg, license: license})
		result.Packages = append(result.Packages, PackageResult{
			Package:    pkg,
			VarName:    pkg.SafeName(),
			SourcePath: source,
			Lines:      len(lines),
		})
	}

	if b.dryRun {
		b.logger.Info().
			Str("bundle", bundlePath).
			Int("packages", len(result.Packages)).
			Msg("Dry run, bundle not written")
		return result, nil
	}

	if err := b.fs.WriteFile(bundlePath, out.Bytes(), 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite,
			"failed to write bundle file %s", bundlePath)
	}

	for i, p := range licenses {
		dest, err := CopyLicense(b.fs, p.pkg, p.license, licenseDir)
		if err != nil {
			return nil, err
		}
		result.Packages[i].LicenseDest = dest
	}

	b.logger.Info().
		Str("bundle", bundlePath).
		Int("packages", len(result.Packages)).
		Msg("Bundle written")

	return result, nil
}

// prefixThroughMarker returns content truncated at the end of the
// magic marker line. The marker must be a whole line including its
// terminator.
func prefixThroughMarker(content []byte) ([]byte, bool) {
	start := 0
	for start < len(content) {
		nl := bytes.IndexByte(content[start:], '\n')
		if nl < 0 {
			break
		}
		end := start + nl + 1
		if string(content[start:end]) == MagicMarker {
			return content[:end], true
		}
		start = end
	}
	return nil, false
}
