package types

import "io/fs"

// FS is the filesystem interface used throughout embedjs.
// Implementations live in pkg/filesystem; tests use the afero-backed
// one so no real files are touched.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
}

// Installer fetches a JavaScript package into a directory's
// node_modules tree. The real implementation shells out to npm;
// tests substitute fakes that materialize files in memory.
type Installer interface {
	// Install fetches the named package into dir without recording it
	// in the dependency manifest. A failed install is not an error by
	// itself: callers re-check for the files they need afterwards.
	// The only fatal condition is the installer binary being absent.
	Install(name, dir string) error
}
