package convertd

import "context"

// FS is the narrow filesystem capability the conversion engine exposes once
// initialized. All staging paths are virtual, rooted at the engine's working
// directory. Implementations must treat MkdirAll as idempotent.
type FS interface {
	MkdirAll(path string) error
	ReadDir(path string) ([]string, error)
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
}

// Handle is the initialized engine capability. It is owned by the lifecycle
// for the process lifetime; callers borrow it per conversion and must not
// retain it across calls.
type Handle interface {
	// FS returns the engine's staging filesystem.
	FS() FS

	// Invoke runs the engine entrypoint against a parameter document already
	// staged at paramsPath. The returned status code is zero on success; any
	// non-zero code is an engine-reported conversion failure. The error is
	// non-nil only when the entrypoint could not be driven at all.
	Invoke(ctx context.Context, paramsPath string) (int32, error)
}
