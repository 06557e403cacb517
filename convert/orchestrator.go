package convert

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/docforge/convertd/engine"
	"github.com/docforge/convertd/errors"
	"github.com/docforge/convertd/format"
	"github.com/docforge/convertd/staging"
)

// Orchestrator drives conversions against a lifecycle-managed engine. Either
// operation may be the first call in the process; it simply absorbs the
// initialization latency.
//
// Conversions are not serialized here: the engine is a single shared
// resource, and callers invoking conversions concurrently must coordinate
// among themselves. Staging paths are rewritten, never appended, between
// requests.
type Orchestrator struct {
	lifecycle *engine.Lifecycle
	delivery  Delivery
	logger    *zap.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithDelivery sets the persistence target for BinaryToDocument output.
func WithDelivery(d Delivery) Option {
	return func(o *Orchestrator) { o.delivery = d }
}

// WithLogger sets the orchestrator logger. The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Orchestrator) { o.logger = l }
}

// New creates an Orchestrator over lc.
func New(lc *engine.Lifecycle, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		lifecycle: lc,
		delivery:  discard{},
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// DocumentToBinary converts a source document into the engine's normalized
// binary representation and collects any media the engine extracted.
// Unsupported extensions fail before anything is staged.
func (o *Orchestrator) DocumentToBinary(ctx context.Context, fileName string, data []byte) (*Result, error) {
	category, err := format.Classify(extensionOf(fileName))
	if err != nil {
		return nil, err
	}

	h, err := o.lifecycle.Handle(ctx)
	if err != nil {
		return nil, err
	}

	logger := o.logger.With(
		zap.String("conversion_id", uuid.NewString()),
		zap.String("file", fileName))

	sanitized := staging.Sanitize(fileName)
	src := staging.InputPath(sanitized)
	dst := src + ".bin"

	fs := h.FS()
	if err := fs.WriteFile(src, data); err != nil {
		return nil, errors.StagingIO(src, err)
	}

	params := staging.BuildParams(staging.Request{
		FileFrom: src,
		FileTo:   dst,
		ThemeDir: staging.ThemesDir,
	})
	if err := fs.WriteFile(staging.ParamsPath, params); err != nil {
		return nil, errors.StagingIO(staging.ParamsPath, err)
	}

	logger.Info("converting document to binary",
		zap.String("src", src),
		zap.String("dst", dst),
		zap.String("category", category.String()))

	status, err := h.Invoke(ctx, staging.ParamsPath)
	if err != nil {
		return nil, err
	}
	if status != 0 {
		return nil, errors.ConversionFailed(status)
	}

	payload, err := fs.ReadFile(dst)
	if err != nil {
		return nil, errors.New(errors.PhaseCollect, errors.KindStagingIO).
			Path(dst).
			Cause(err).
			Build()
	}

	media := CollectMedia(fs, logger)
	logger.Info("conversion complete",
		zap.Int("payload", len(payload)),
		zap.Int("media", len(media)))

	return &Result{
		OutputFileName: sanitized + ".bin",
		Category:       category,
		Payload:        payload,
		Media:          media,
	}, nil
}

// BinaryToDocument converts a normalized binary payload back into a document
// of the target format and hands the produced file to the configured
// delivery. A delivery that returns errors.ErrSaveCancelled is passed
// through; check errors.IsCancelled before treating the error as fatal.
func (o *Orchestrator) BinaryToDocument(ctx context.Context, payload []byte, originalName, targetExt string) (*Result, error) {
	ext := format.Normalize(targetExt)
	if ext == "" {
		return nil, errors.InvalidInput(errors.PhaseClassify, "empty target extension")
	}

	h, err := o.lifecycle.Handle(ctx)
	if err != nil {
		return nil, err
	}

	logger := o.logger.With(
		zap.String("conversion_id", uuid.NewString()),
		zap.String("file", originalName),
		zap.String("target", ext))

	base := baseName(staging.Sanitize(originalName))
	src := staging.InputPath(base + ".bin")
	outName := base + "." + ext
	dst := staging.InputPath(outName)

	fs := h.FS()
	if err := fs.WriteFile(src, payload); err != nil {
		return nil, errors.StagingIO(src, err)
	}

	req := staging.Request{
		FileFrom: src,
		FileTo:   dst,
		ThemeDir: staging.ThemesDir,
	}
	if ext == "pdf" {
		req.FontDir = staging.FontsDir
	}
	if err := fs.WriteFile(staging.ParamsPath, staging.BuildParams(req)); err != nil {
		return nil, errors.StagingIO(staging.ParamsPath, err)
	}

	logger.Info("converting binary to document",
		zap.String("src", src),
		zap.String("dst", dst))

	status, err := h.Invoke(ctx, staging.ParamsPath)
	if err != nil {
		return nil, err
	}
	if status != 0 {
		return nil, errors.ConversionFailed(status)
	}

	out, err := fs.ReadFile(dst)
	if err != nil {
		return nil, errors.New(errors.PhaseCollect, errors.KindStagingIO).
			Path(dst).
			Cause(err).
			Build()
	}

	mime, description := format.SaveTarget(ext)
	result := &Result{
		OutputFileName: outName,
		Category:       categoryFor(ext, originalName),
		Payload:        out,
	}

	if err := o.delivery.Deliver(ctx, File{
		Name:        outName,
		MIME:        mime,
		Description: description,
		Data:        out,
	}); err != nil {
		if errors.IsCancelled(err) {
			logger.Info("save cancelled by user")
			return result, err
		}
		return nil, err
	}

	logger.Info("document delivered", zap.Int("size", len(out)))
	return result, nil
}

// categoryFor derives the result category from the target extension, falling
// back to the original name for output-only targets such as pdf.
func categoryFor(targetExt, originalName string) format.Category {
	if c, err := format.Classify(targetExt); err == nil {
		return c
	}
	if c, err := format.Classify(extensionOf(originalName)); err == nil {
		return c
	}
	return format.Text
}

// extensionOf returns the substring after the last dot, or "" when there is
// no extension.
func extensionOf(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return ""
}

// baseName strips the extension a sanitized name always carries.
func baseName(sanitized string) string {
	if i := strings.LastIndex(sanitized, "."); i >= 0 {
		return sanitized[:i]
	}
	return sanitized
}
