package editor

import (
	"context"

	"go.uber.org/zap"

	"github.com/docforge/convertd/convert"
	"github.com/docforge/convertd/engine"
	"github.com/docforge/convertd/errors"
	"github.com/docforge/convertd/format"
	"github.com/docforge/convertd/staging"
)

// Command names emitted to the editor.
const (
	CmdOpenDocument      = "open-document"
	CmdSetImageURLs      = "set-image-urls"
	CmdSaveCallback      = "save-callback"
	CmdWriteFileCallback = "write-file-callback"
)

// Command is one named instruction for the editor.
type Command struct {
	Name    string
	Payload any
}

// Emitter delivers commands into the editor's event loop.
type Emitter interface {
	Emit(ctx context.Context, cmd Command) error
}

// OpenDocumentPayload carries a converted binary into the editor.
type OpenDocumentPayload struct {
	FileName string
	Category format.Category
	Data     []byte
}

// SaveCallbackPayload reports the outcome of a save event. Code zero means
// saved or cancelled; non-zero is a failure.
type SaveCallbackPayload struct {
	Code int32
}

// WriteFileCallbackPayload reports the outcome of a write-file event.
type WriteFileCallbackPayload struct {
	Path string
	Code int32
}

// Bridge translates editor events into conversions and conversion results
// into editor commands.
type Bridge struct {
	lifecycle *engine.Lifecycle
	orch      *convert.Orchestrator
	emitter   Emitter
	logger    *zap.Logger
}

// BridgeOption configures a Bridge.
type BridgeOption func(*Bridge)

// WithBridgeLogger sets the bridge logger. The default is a no-op logger.
func WithBridgeLogger(l *zap.Logger) BridgeOption {
	return func(b *Bridge) { b.logger = l }
}

// NewBridge creates a bridge over the lifecycle and orchestrator.
func NewBridge(lc *engine.Lifecycle, orch *convert.Orchestrator, em Emitter, opts ...BridgeOption) *Bridge {
	b := &Bridge{
		lifecycle: lc,
		orch:      orch,
		emitter:   em,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// OpenDocument converts a source document and pushes it into the editor,
// followed by the extracted media mapping when the document has any.
func (b *Bridge) OpenDocument(ctx context.Context, fileName string, data []byte) error {
	res, err := b.orch.DocumentToBinary(ctx, fileName, data)
	if err != nil {
		return err
	}

	if err := b.emitter.Emit(ctx, Command{
		Name: CmdOpenDocument,
		Payload: OpenDocumentPayload{
			FileName: res.OutputFileName,
			Category: res.Category,
			Data:     res.Payload,
		},
	}); err != nil {
		return err
	}

	if len(res.Media) > 0 {
		return b.emitter.Emit(ctx, Command{
			Name:    CmdSetImageURLs,
			Payload: res.Media,
		})
	}
	return nil
}

// HandleSave services the editor's save event: the payload is converted to
// the format named by code and handed to the orchestrator's delivery. The
// editor always receives a save-callback; a user-cancelled save reports
// success.
func (b *Bridge) HandleSave(ctx context.Context, code int, payload []byte, originalName string) error {
	ext, ok := format.ExtensionForCode(code)
	if !ok {
		b.callback(ctx, CmdSaveCallback, SaveCallbackPayload{Code: 1})
		return errors.New(errors.PhaseClassify, errors.KindUnsupportedFormat).
			Detail("unknown output format code %d", code).
			Build()
	}

	_, err := b.orch.BinaryToDocument(ctx, payload, originalName, ext)
	switch {
	case errors.IsCancelled(err):
		b.callback(ctx, CmdSaveCallback, SaveCallbackPayload{Code: 0})
		return nil
	case err != nil:
		b.callback(ctx, CmdSaveCallback, SaveCallbackPayload{Code: 1})
		return err
	default:
		b.callback(ctx, CmdSaveCallback, SaveCallbackPayload{Code: 0})
		return nil
	}
}

// HandleWriteFile services the editor's write-file event, used for pasted
// images: the bytes land in the media staging directory under a sanitized
// name and the editor gets back the addressable media path.
func (b *Bridge) HandleWriteFile(ctx context.Context, fileName string, data []byte) error {
	h, err := b.lifecycle.Handle(ctx)
	if err != nil {
		b.callback(ctx, CmdWriteFileCallback, WriteFileCallbackPayload{Code: 1})
		return err
	}

	name := staging.Sanitize(fileName)
	path := staging.MediaDir + "/" + name
	if err := h.FS().WriteFile(path, data); err != nil {
		b.callback(ctx, CmdWriteFileCallback, WriteFileCallbackPayload{Code: 1})
		return errors.StagingIO(path, err)
	}

	b.callback(ctx, CmdWriteFileCallback, WriteFileCallbackPayload{
		Path: "media/" + name,
		Code: 0,
	})
	return nil
}

// callback emits best-effort: a failed callback is logged, never escalated
// over the event it reports on.
func (b *Bridge) callback(ctx context.Context, name string, payload any) {
	if err := b.emitter.Emit(ctx, Command{Name: name, Payload: payload}); err != nil {
		b.logger.Warn("editor callback failed",
			zap.String("command", name),
			zap.Error(err))
	}
}
