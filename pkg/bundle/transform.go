package bundle

import (
	"strings"

	"github.com/webfig/embedjs/pkg/errors"
	"github.com/webfig/embedjs/pkg/logging"
	"github.com/webfig/embedjs/pkg/types"
)

const (
	// exportIdiom is the module-export text rewritten into a plain
	// variable declaration. The match is textual, not syntactic: the
	// embedded sources are minified builds whose shape is stable.
	exportIdiom = "module.exports=function"

	prettierIgnoreLine = "// prettier-ignore\n"
	eslintDisableTail  = " // eslint-disable-line\n"
)

// EmbeddedLines rewrites pkg's source file into the lines appended to
// the bundle: a prettier-ignore header, then every source line with
// the export idiom replaced by `var <SAFE_NAME>=function` and a lint
// suppression appended. Each returned line includes its terminator.
func EmbeddedLines(fs types.FS, pkg types.Package, sourcePath string) ([]string, error) {
	name := pkg.SafeName()

	content, err := fs.ReadFile(sourcePath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead,
			"failed to read source for %s", pkg.Name)
	}

	logger := logging.GetLogger("bundle")
	logger.Info().
		Str("source", sourcePath).
		Str("name", name).
		Msg("Embedding package source")

	replacement := "var " + name + "=function"

	lines := []string{prettierIgnoreLine}
	for _, line := range sourceLines(string(content)) {
		lines = append(lines, strings.ReplaceAll(line, exportIdiom, replacement)+eslintDisableTail)
	}
	return lines, nil
}

// sourceLines splits content into lines without terminators. A trailing
// newline does not produce an empty final line.
func sourceLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n")
}
