// pkg/types/package_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test package descriptor and safe name derivation

package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/webfig/embedjs/pkg/types"
)

func TestPackage_SafeName(t *testing.T) {
	tests := []struct {
		name     string
		pkgName  string
		expected string
	}{
		{
			name:     "scoped package with slash and dash",
			pkgName:  "@jsxtools/resize-observer",
			expected: "_JSXTOOLS_RESIZE_OBSERVER",
		},
		{
			name:     "plain package name",
			pkgName:  "foo",
			expected: "FOO",
		},
		{
			name:     "dashed package name",
			pkgName:  "left-pad",
			expected: "LEFT_PAD",
		},
		{
			name:     "scoped package without dash",
			pkgName:  "@babel/core",
			expected: "_BABEL_CORE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg := types.Package{Name: tt.pkgName}
			assert.Equal(t, tt.expected, pkg.SafeName())
		})
	}
}

func TestPackage_SafeName_Deterministic(t *testing.T) {
	pkg := types.Package{Name: "@jsxtools/resize-observer"}
	first := pkg.SafeName()
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, pkg.SafeName())
	}
}

func TestPackage_Structure(t *testing.T) {
	pkg := types.Package{
		Name:    "@jsxtools/resize-observer",
		Source:  "index.js",
		License: "LICENSE.md",
	}

	assert.Equal(t, "@jsxtools/resize-observer", pkg.Name)
	assert.Equal(t, "index.js", pkg.Source)
	assert.Equal(t, "LICENSE.md", pkg.License)
}
