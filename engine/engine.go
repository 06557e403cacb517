package engine

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"github.com/tetratelabs/wazero/sys"
	"go.uber.org/zap"

	"github.com/docforge/convertd"
	"github.com/docforge/convertd/errors"
	"github.com/docforge/convertd/staging"
	"github.com/docforge/convertd/vfs"
)

// Config holds configuration for engine creation
type Config struct {
	// MemoryLimitPages sets the maximum engine memory in pages (64KB each).
	// 0 means the runtime default (65536 pages = 4GB).
	MemoryLimitPages uint32

	// Argv0 is the program name the engine sees. Defaults to "x2t".
	Argv0 string
}

const defaultArgv0 = "x2t"

// Engine compiles and instantiates the conversion engine module on a shared
// wazero runtime. It is safe for concurrent use; the handles it produces are
// not, see the concurrency notes on the root package.
type Engine struct {
	runtime wazero.Runtime
	argv0   string
	logger  *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger. The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New creates a wazero-backed engine host with WASI instantiated.
func New(ctx context.Context, cfg *Config, opts ...Option) (*Engine, error) {
	runtimeCfg := wazero.NewRuntimeConfig()
	argv0 := defaultArgv0

	if cfg != nil {
		if cfg.MemoryLimitPages > 0 {
			runtimeCfg = runtimeCfg.WithMemoryLimitPages(cfg.MemoryLimitPages)
		}
		if cfg.Argv0 != "" {
			argv0 = cfg.Argv0
		}
	}

	r := wazero.NewRuntimeWithConfig(ctx, runtimeCfg)
	wasi_snapshot_preview1.MustInstantiate(ctx, r)

	e := &Engine{runtime: r, argv0: argv0, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Close releases the underlying runtime. The engine handle is unusable after.
func (e *Engine) Close(ctx context.Context) error {
	return e.runtime.Close(ctx)
}

// Loader returns the loading procedure a Lifecycle drives: fetch the module
// from src, compile it, and root the staging tree at stagingDir.
func (e *Engine) Loader(src Source, stagingDir string) LoadFunc {
	return func(ctx context.Context) (convertd.Handle, error) {
		wasmBytes, err := src.Fetch(ctx)
		if err != nil {
			return nil, err
		}

		compiled, err := e.runtime.CompileModule(ctx, wasmBytes)
		if err != nil {
			return nil, errors.EngineLoad("compile engine module", err)
		}

		e.logger.Info("engine module compiled",
			zap.Int("size", len(wasmBytes)),
			zap.String("staging", stagingDir))

		return &handle{
			engine:   e,
			compiled: compiled,
			fs:       vfs.NewDir(stagingDir, staging.Root),
		}, nil
	}
}

// handle is the initialized engine capability. One Invoke is one
// instantiation of the compiled module.
type handle struct {
	engine   *Engine
	compiled wazero.CompiledModule
	fs       *vfs.Dir
}

var _ convertd.Handle = (*handle)(nil)

func (h *handle) FS() convertd.FS {
	return h.fs
}

func (h *handle) Invoke(ctx context.Context, paramsPath string) (int32, error) {
	cfg := wazero.NewModuleConfig().
		WithName("").
		WithArgs(h.engine.argv0, paramsPath).
		WithFSConfig(wazero.NewFSConfig().
			WithDirMount(h.fs.Root(), staging.Root))

	mod, err := h.engine.runtime.InstantiateModule(ctx, h.compiled, cfg)
	if mod != nil {
		defer mod.Close(ctx)
	}
	if err != nil {
		if exitErr, ok := err.(*sys.ExitError); ok {
			return int32(exitErr.ExitCode()), nil
		}
		return -1, fmt.Errorf("invoke entrypoint: %w", err)
	}
	return 0, nil
}
