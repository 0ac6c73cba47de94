package types

import (
	"regexp"
	"strings"
)

// Package describes one JavaScript dependency to embed: the name in a
// form npm understands, plus the paths of the source and license files
// within the installed package.
type Package struct {
	Name    string `toml:"name"`
	Source  string `toml:"source"`
	License string `toml:"license"`
}

var safeNameSeparators = regexp.MustCompile(`[@/-]`)

// SafeName derives the JavaScript variable name the package is embedded
// under: the package name split on '@', '/' and '-', joined with
// underscores and upper-cased. It is also used as the suffix of the
// copied license file.
func (p Package) SafeName() string {
	return strings.ToUpper(strings.Join(safeNameSeparators.Split(p.Name, -1), "_"))
}
