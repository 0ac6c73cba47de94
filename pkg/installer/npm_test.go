package installer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webfig/embedjs/pkg/errors"
)

func TestNpm_Install_ToolMissing(t *testing.T) {
	// With an empty PATH the npm binary cannot be located, which is
	// the one condition Install treats as fatal.
	t.Setenv("PATH", "")

	inst := NewNpm()
	err := inst.Install("@jsxtools/resize-observer", t.TempDir())

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrToolMissing))
	assert.Contains(t, err.Error(), "npm must be installed to fetch @jsxtools/resize-observer")
}
