package convert

import (
	"context"
	"os"
	"path/filepath"

	"github.com/docforge/convertd/errors"
)

// File is a produced artifact ready for persistence, with the save-target
// metadata a host dialog needs.
type File struct {
	Name        string
	MIME        string
	Description string
	Data        []byte
}

// Delivery persists a produced file. Implementations may return
// errors.ErrSaveCancelled when the user aborts; callers must treat that as a
// flow outcome, not a failure.
type Delivery interface {
	Deliver(ctx context.Context, file File) error
}

// DirDelivery writes produced files into a host directory.
type DirDelivery string

func (d DirDelivery) Deliver(ctx context.Context, file File) error {
	path := filepath.Join(string(d), file.Name)
	if err := os.WriteFile(path, file.Data, 0o644); err != nil {
		return errors.New(errors.PhaseDeliver, errors.KindStagingIO).
			Path(path).
			Cause(err).
			Build()
	}
	return nil
}

// discard drops the produced file; used when no delivery is configured.
type discard struct{}

func (discard) Deliver(ctx context.Context, file File) error { return nil }
