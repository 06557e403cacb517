package engine

import (
	"context"
	"os"

	"github.com/docforge/convertd/errors"
)

// Source acquires the engine's wasm binary. Acquisition happens at most once
// per successful lifecycle initialization.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// FileSource reads the engine module from a host path.
type FileSource string

func (s FileSource) Fetch(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(string(s))
	if err != nil {
		return nil, errors.EngineLoad("read engine module", err)
	}
	return data, nil
}

// BytesSource serves an engine module already held in memory, typically
// embedded in the binary.
type BytesSource []byte

func (s BytesSource) Fetch(ctx context.Context) ([]byte, error) {
	if len(s) == 0 {
		return nil, errors.EngineLoad("empty engine module", nil)
	}
	return s, nil
}
