package convert

import (
	stderrors "errors"
	"testing"

	"go.uber.org/zap"

	"github.com/docforge/convertd/staging"
	"github.com/docforge/convertd/vfs"
)

func TestCollectMedia_EmptyDirectory(t *testing.T) {
	fs := vfs.NewMem()
	if err := staging.EnsureLayout(fs); err != nil {
		t.Fatalf("layout: %v", err)
	}

	assets := CollectMedia(fs, zap.NewNop())
	if len(assets) != 0 {
		t.Errorf("expected no assets, got %v", assets)
	}
}

func TestCollectMedia_MissingDirectoryYieldsEmpty(t *testing.T) {
	fs := vfs.NewMem() // no layout at all

	assets := CollectMedia(fs, zap.NewNop())
	if assets == nil || len(assets) != 0 {
		t.Errorf("missing media dir must yield an empty mapping, got %v", assets)
	}
}

func TestCollectMedia_KeysAndContent(t *testing.T) {
	fs := vfs.NewMem()
	if err := staging.EnsureLayout(fs); err != nil {
		t.Fatalf("layout: %v", err)
	}
	for name, data := range map[string][]byte{
		"image1.png":  {1},
		"image2.jpeg": {2, 2},
	} {
		if err := fs.WriteFile(staging.MediaDir+"/"+name, data); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	assets := CollectMedia(fs, zap.NewNop())
	if len(assets) != 2 {
		t.Fatalf("expected 2 assets, got %v", assets)
	}
	if len(assets["media/image2.jpeg"]) != 2 {
		t.Errorf("unexpected content: %v", assets)
	}
}

// failReadFS fails reads of one specific path.
type failReadFS struct {
	*vfs.Mem
	fail string
}

func (f *failReadFS) ReadFile(path string) ([]byte, error) {
	if path == f.fail {
		return nil, stderrors.New("io error")
	}
	return f.Mem.ReadFile(path)
}

func TestCollectMedia_SkipsUnreadableFile(t *testing.T) {
	mem := vfs.NewMem()
	if err := staging.EnsureLayout(mem); err != nil {
		t.Fatalf("layout: %v", err)
	}
	for _, name := range []string{"good.png", "bad.png"} {
		if err := mem.WriteFile(staging.MediaDir+"/"+name, []byte("x")); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	fs := &failReadFS{Mem: mem, fail: staging.MediaDir + "/bad.png"}
	assets := CollectMedia(fs, zap.NewNop())
	if len(assets) != 1 {
		t.Fatalf("expected the readable asset only, got %v", assets)
	}
	if _, ok := assets["media/good.png"]; !ok {
		t.Errorf("readable asset missing: %v", assets)
	}
}
