package engine

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/docforge/convertd/errors"
)

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.wasm")
	if err := os.WriteFile(path, []byte{0x00, 0x61, 0x73, 0x6d}, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	data, err := FileSource(path).Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(data) != 4 {
		t.Errorf("unexpected module bytes: %v", data)
	}
}

func TestFileSource_Missing(t *testing.T) {
	_, err := FileSource(filepath.Join(t.TempDir(), "nope.wasm")).Fetch(context.Background())
	if err == nil {
		t.Fatal("expected error for missing module")
	}
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Kind != errors.KindEngineLoad {
		t.Fatalf("expected engine_load, got %v", err)
	}
}

func TestBytesSource(t *testing.T) {
	data, err := BytesSource([]byte{1, 2, 3}).Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(data) != 3 {
		t.Errorf("unexpected bytes: %v", data)
	}

	if _, err := BytesSource(nil).Fetch(context.Background()); err == nil {
		t.Error("empty source should fail")
	}
}

func TestLoader_RejectsInvalidModule(t *testing.T) {
	ctx := context.Background()
	eng, err := New(ctx, nil)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	defer eng.Close(ctx)

	load := eng.Loader(BytesSource([]byte("not a wasm module")), t.TempDir())
	_, err = load(ctx)
	if err == nil {
		t.Fatal("expected compile failure")
	}
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Kind != errors.KindEngineLoad {
		t.Fatalf("expected engine_load, got %v", err)
	}
}

func TestNew_ConfigDefaults(t *testing.T) {
	ctx := context.Background()
	eng, err := New(ctx, &Config{MemoryLimitPages: 1024, Argv0: "converter"})
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	defer eng.Close(ctx)

	if eng.argv0 != "converter" {
		t.Errorf("argv0 = %q", eng.argv0)
	}

	deflt, err := New(ctx, nil)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	defer deflt.Close(ctx)
	if deflt.argv0 != defaultArgv0 {
		t.Errorf("default argv0 = %q", deflt.argv0)
	}
}
