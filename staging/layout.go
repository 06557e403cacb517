package staging

import (
	stderrors "errors"
	iofs "io/fs"

	"github.com/docforge/convertd"
	"github.com/docforge/convertd/errors"
)

// Fixed virtual layout the engine expects. All four directories must exist
// before the first conversion; ParamsPath is overwritten per request.
const (
	Root       = "/working"
	MediaDir   = Root + "/media"
	FontsDir   = Root + "/fonts"
	ThemesDir  = Root + "/themes"
	ParamsPath = Root + "/params.xml"
)

// Dirs lists the layout directories in creation order.
var Dirs = []string{Root, MediaDir, FontsDir, ThemesDir}

// InputPath returns the staging path for a sanitized input file name.
func InputPath(sanitized string) string {
	return Root + "/" + sanitized
}

// EnsureLayout creates the fixed directory layout. Creation is idempotent:
// already-existing directories are not an error. Any other failure is fatal.
func EnsureLayout(fs convertd.FS) error {
	for _, dir := range Dirs {
		if err := fs.MkdirAll(dir); err != nil {
			if isExist(err) {
				continue
			}
			return errors.StagingIO(dir, err)
		}
	}
	return nil
}

// isExist tolerates engines whose mkdir reports pre-existing directories.
func isExist(err error) bool {
	return stderrors.Is(err, iofs.ErrExist)
}
