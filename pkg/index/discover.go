package index

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/matzehuels/cargoimport/pkg/errors"
)

// DefaultPattern matches crate files in every registry under
// ~/.cargo/registry/index. It reaches "3/a/abc" and "se/rd/serde" style
// entries but not one- and two-letter crates ("1/a", "2/ab").
const DefaultPattern = "*/*/*/*"

// Discover returns the index files under fs matching pattern, sorted.
// Directories and paths with a hidden component (".git", ".cache") are
// skipped, as a shell glob would.
func Discover(fs billy.Filesystem, pattern string) ([]string, error) {
	if err := errors.ValidatePattern(pattern); err != nil {
		return nil, err
	}

	matches, err := util.Glob(fs, pattern)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDiscovery, err, "glob %q", pattern)
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		if hidden(m) {
			continue
		}
		fi, err := fs.Stat(m)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeDiscovery, err, "stat %s", m)
		}
		if fi.IsDir() {
			continue
		}
		files = append(files, m)
	}
	slices.Sort(files)
	return files, nil
}

func hidden(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if strings.HasPrefix(part, ".") && part != "." {
			return true
		}
	}
	return false
}
