package convert

import (
	"go.uber.org/zap"

	"github.com/docforge/convertd"
	"github.com/docforge/convertd/errors"
	"github.com/docforge/convertd/staging"
)

// CollectMedia walks the media staging directory after a conversion and
// returns the embedded assets keyed by "media/<name>".
//
// Absence of media is a valid and common case: a directory that cannot be
// listed yields an empty mapping. Individual unreadable files are logged and
// skipped; they never abort an otherwise-successful conversion.
func CollectMedia(fs convertd.FS, logger *zap.Logger) map[string][]byte {
	assets := make(map[string][]byte)

	names, err := fs.ReadDir(staging.MediaDir)
	if err != nil {
		logger.Debug("no media directory listing", zap.Error(err))
		return assets
	}

	for _, name := range names {
		if name == "." || name == ".." {
			continue
		}
		path := staging.MediaDir + "/" + name
		data, err := fs.ReadFile(path)
		if err != nil {
			logger.Warn("skipping unreadable media file",
				zap.Error(errors.MediaRead(path, err)))
			continue
		}
		assets["media/"+name] = data
	}

	return assets
}
