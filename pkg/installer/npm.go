// Package installer shells out to npm to fetch packages that are not
// yet present under node_modules.
package installer

import (
	"os"
	"os/exec"

	"github.com/rs/zerolog"

	"github.com/webfig/embedjs/pkg/errors"
	"github.com/webfig/embedjs/pkg/logging"
	"github.com/webfig/embedjs/pkg/types"
)

// Npm implements types.Installer using the npm binary.
type Npm struct {
	logger zerolog.Logger
}

// NewNpm creates an installer backed by the npm binary on PATH.
func NewNpm() *Npm {
	return &Npm{logger: logging.GetLogger("installer")}
}

// Install runs `npm install --no-save <name>` in dir. The exact version
// is expected to be pinned in package.json already, hence --no-save.
//
// A non-zero exit from npm is logged but not returned as an error: the
// caller re-checks for the files it needs and reports what is still
// missing, which gives a more useful message than npm's exit status.
// The npm binary being absent from the system is fatal.
func (n *Npm) Install(name, dir string) error {
	if _, err := exec.LookPath("npm"); err != nil {
		return errors.Wrapf(err, errors.ErrToolMissing,
			"npm must be installed to fetch %s", name)
	}

	args := []string{"install", "--no-save", name}
	logging.LogCommand("npm", args)

	cmd := exec.Command("npm", args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		n.logger.Warn().
			Err(err).
			Str("package", name).
			Str("dir", dir).
			Msg("npm install failed")
	}

	return nil
}

var _ types.Installer = (*Npm)(nil)
